package notebook

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Process orchestrates the recording-to-draft pipeline
func (n *implNotebook) Process(ctx context.Context, audioPath, subject string) (Draft, error) {
	startTime := time.Now()
	subject = n.subjectOrDefault(subject)

	n.logger.Info(ctx, "Processing recording: %s (subject: %s)", audioPath, subject)

	// Step 1: Archive the upload
	archived, err := n.archiveAudio(ctx, audioPath)
	if err != nil {
		return Draft{}, fmt.Errorf("save audio: %w", err)
	}

	// Failed drafts still carry AudioFile so callers can discard the copy
	draft := Draft{
		Subject:   subject,
		AudioFile: archived,
	}

	// Step 2: Speech to text
	transcript, err := n.transcribe(ctx, archived)
	if err != nil {
		return draft, fmt.Errorf("transcribe: %w", err)
	}
	draft.Transcript = transcript
	draft.Content = transcript

	// Step 3: Correct the transcript, keeping the raw text on failure
	if corrected, err := n.correct(ctx, transcript); err != nil {
		n.logger.Warn(ctx, "Text correction failed, keeping raw transcript: %v", err)
	} else if corrected != "" {
		draft.Content = corrected
		draft.Corrected = corrected != transcript
	}

	// Step 4: Subject-specific summary
	summary, err := n.summarize(ctx, draft.Content, subject)
	if err != nil {
		return draft, fmt.Errorf("%w: %w", ErrSummaryFailed, err)
	}
	draft.Summary = summary

	n.logger.Info(ctx, "Draft ready in %s: %d characters, corrected=%t", time.Since(startTime).Round(time.Millisecond), len([]rune(draft.Content)), draft.Corrected)
	return draft, nil
}

func (n *implNotebook) archiveAudio(ctx context.Context, audioPath string) (string, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return n.store.SaveAudio(ctx, filepath.Base(audioPath), f)
}

func (n *implNotebook) transcribe(ctx context.Context, audioPath string) (string, error) {
	stepCtx, cancel := n.stepContext(ctx)
	defer cancel()

	text, err := n.transcriber.Transcribe(stepCtx, audioPath)
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyTranscript
	}
	return text, nil
}

func (n *implNotebook) correct(ctx context.Context, text string) (string, error) {
	if n.generator == nil {
		return "", errNoGenerator
	}
	stepCtx, cancel := n.stepContext(ctx)
	defer cancel()

	return n.generator.Correct(stepCtx, text)
}

func (n *implNotebook) summarize(ctx context.Context, text, subject string) (string, error) {
	if n.generator == nil {
		return "", errNoGenerator
	}
	stepCtx, cancel := n.stepContext(ctx)
	defer cancel()

	summary, err := n.generator.Summarize(stepCtx, text, subject)
	if err != nil {
		return "", err
	}
	if summary = strings.TrimSpace(summary); summary == "" {
		return "", errors.New("empty summary")
	}
	return summary, nil
}

func (n *implNotebook) stepContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, n.cfg.Performance.StepTimeout)
}

func (n *implNotebook) subjectOrDefault(subject string) string {
	if subject = strings.TrimSpace(subject); subject != "" {
		return subject
	}
	return n.cfg.Notes.DefaultSubject
}
