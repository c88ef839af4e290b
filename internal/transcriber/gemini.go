package transcriber

import (
	"context"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/notebot/internal/storage"
)

// maxInlineAudio is the request size Gemini accepts for inline audio.
const maxInlineAudio = 20 << 20

func (g *geminiTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	mimeType, err := storage.DetectAudioFileMIME(audioPath)
	if err != nil {
		return "", fmt.Errorf("detect audio type: %w", err)
	}

	audio, err := os.ReadFile(audioPath)
	if err != nil {
		return "", fmt.Errorf("read audio: %w", err)
	}
	if len(audio) > maxInlineAudio {
		return "", fmt.Errorf("audio %s is %d bytes, gemini backend accepts at most %d", audioPath, len(audio), maxInlineAudio)
	}

	g.logger.Info(ctx, "Transcribing with Gemini (%s, %d bytes): %s", mimeType, len(audio), audioPath)
	return g.generator.TranscribeAudio(ctx, audio, mimeType, g.language)
}
