package notebook

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/notebot/internal/storage"
)

var (
	// ErrEmptyTranscript is returned when speech-to-text produced no text.
	ErrEmptyTranscript = errors.New("transcription produced no text")
	// ErrSummaryFailed wraps a failed summarization.
	ErrSummaryFailed = errors.New("summary generation failed")
)

// Draft is a processed recording waiting for confirmation.
type Draft struct {
	Subject    string
	AudioFile  string
	Transcript string
	// Content is the corrected transcript, or Transcript when correction failed.
	Content   string
	Corrected bool
	Summary   string
}

// NewNote is the input of Save.
type NewNote struct {
	Subject   string `validate:"required"`
	Content   string `validate:"required"`
	Summary   string `validate:"required"`
	AudioFile string
}

// Notebook runs the lecture-to-note workflow.
type Notebook interface {
	// Process archives a recording, transcribes it, corrects the text and
	// summarizes it for subject. Nothing is persisted besides the audio copy.
	// On errors after archiving the returned Draft still names that copy.
	Process(ctx context.Context, audioPath, subject string) (Draft, error)
	// Save titles the note and appends it to the store.
	Save(ctx context.Context, note NewNote) (storage.Note, error)
	// SaveDraft is Save for a processed Draft.
	SaveDraft(ctx context.Context, draft Draft) (storage.Note, error)
	// Ingest processes and saves an inbox file without confirmation, then removes it.
	Ingest(ctx context.Context, path string) error
}
