package transcriber

import "context"

// Transcriber converts a recording on disk to text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}
