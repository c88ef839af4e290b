package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/notebot/internal/subject"
)

var errEmptyResponse = errors.New("empty response from Gemini")

// Correct asks Gemini to clean up a speech-to-text transcript
func (g *implGenerator) Correct(ctx context.Context, text string) (string, error) {
	out, err := g.callGemini(ctx, genai.Text(fmt.Sprintf(correctPrompt, text)))
	if err != nil {
		return "", fmt.Errorf("correct text: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// Summarize builds a subject-specific academic summary
func (g *implGenerator) Summarize(ctx context.Context, text, subjectName string) (string, error) {
	prompt := fmt.Sprintf(summaryPrompt, subjectName, text, subject.Outline(subjectName))
	out, err := g.callGemini(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// Title proposes a title from the first excerptChars characters of content
func (g *implGenerator) Title(ctx context.Context, content string) (string, error) {
	out, err := g.callGemini(ctx, genai.Text(fmt.Sprintf(titlePrompt, excerpt(content, g.excerptChars))))
	if err != nil {
		return "", fmt.Errorf("generate title: %w", err)
	}

	title := cleanTitle(out)
	if title == "" {
		return "", fmt.Errorf("generate title: %w", errEmptyResponse)
	}
	return title, nil
}

// TranscribeAudio sends the recording inline and returns Gemini's transcript
func (g *implGenerator) TranscribeAudio(ctx context.Context, audio []byte, mimeType, language string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(fmt.Sprintf(transcribePrompt, language)),
			genai.NewPartFromBytes(audio, mimeType),
		}, genai.RoleUser),
	}

	out, err := g.callGemini(ctx, contents)
	if err != nil {
		return "", fmt.Errorf("transcribe audio: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// callGemini sends contents to Gemini and returns the response text.
// Rotates API keys on 429 / quota errors.
func (g *implGenerator) callGemini(ctx context.Context, contents []*genai.Content) (string, error) {
	attempts := len(g.apiKeys)
	var lastErr error

	for range attempts {
		keyIndex, key := g.key()

		result, err := g.generate(ctx, key, g.model, contents)
		if err != nil {
			if isRateLimited(err) {
				g.logger.Warn(ctx, "Key %d rate limited, rotating...", keyIndex+1)
				g.rotateKey(keyIndex)
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		text := responseText(result)
		if text == "" {
			return "", errEmptyResponse
		}
		return text, nil
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (g *implGenerator) key() (int, string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.currentKey, g.apiKeys[g.currentKey]
}

// rotateKey moves past the key at index unless another call already did.
func (g *implGenerator) rotateKey(index int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.currentKey == index {
		g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
	}
}

func isRateLimited(err error) bool {
	errMsg := err.Error()
	return strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED")
}

func responseText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}
	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			text.WriteString(part.Text)
		}
	}
	return text.String()
}

// excerpt returns at most n characters of s.
func excerpt(s string, n int) string {
	runes := []rune(s)
	if n <= 0 || len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// cleanTitle keeps the first non-empty line and strips markdown and quotes.
func cleanTitle(s string) string {
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "# ")
		line = strings.ReplaceAll(line, "**", "")
		line = strings.Trim(line, "\"'“”*` ")
		if line != "" {
			return line
		}
	}
	return ""
}
