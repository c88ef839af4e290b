package generator

import "context"

// Generator is the generative-text collaborator behind correction,
// summarization, titling and audio transcription.
type Generator interface {
	// Correct fixes spelling, grammar and punctuation of a raw transcript.
	Correct(ctx context.Context, text string) (string, error)
	// Summarize produces a structured summary following the subject's outline.
	Summarize(ctx context.Context, text, subject string) (string, error)
	// Title proposes a short title from the beginning of content.
	Title(ctx context.Context, content string) (string, error)
	// TranscribeAudio returns the spoken text of an audio recording.
	TranscribeAudio(ctx context.Context, audio []byte, mimeType, language string) (string, error)
}
