package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// Columns is the fixed header of the notes store, in file order.
var Columns = []string{"subject", "title", "content", "summary", "date", "audio_file"}

const (
	// DateLayout is the format of the date column.
	DateLayout = "2006-01-02 15:04:05"
	// FileStampLayout is the timestamp embedded in generated file names.
	FileStampLayout = "20060102_150405"
	// TextExt is the extension of companion text exports.
	TextExt = ".txt"
)

// AudioExtensions lists the recording formats the store accepts and counts.
var AudioExtensions = []string{".mp3", ".wav", ".m4a", ".ogg", ".flac"}

var (
	// ErrCorruptStore is returned by Load when the store exists but cannot be parsed.
	ErrCorruptStore = errors.New("notes store is corrupt")
	// ErrNotAudio is returned by SaveAudio for uploads that are not audio recordings.
	ErrNotAudio = errors.New("not an audio file")
)

// Note is one row of the store.
type Note struct {
	Subject   string    `json:"subject"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Summary   string    `json:"summary"`
	Date      time.Time `json:"date"`
	AudioFile string    `json:"audio_file,omitempty"`
	// TextFile is the companion export written by Append. It is not persisted.
	TextFile string `json:"-"`
}

// Stats summarizes what is on disk. Every field is zero when it cannot be read.
type Stats struct {
	NoteCount        int     `json:"note_count"`
	AudioCount       int     `json:"audio_count"`
	TextCount        int     `json:"text_count"`
	TotalAudioBytes  int64   `json:"total_audio_bytes"`
	TotalAudioSizeMB float64 `json:"total_audio_size_mb"`
}

// Locations are the absolute paths of the storage areas.
type Locations struct {
	NotesFile string `json:"notes_file"`
	AudioDir  string `json:"audio_dir"`
	TextDir   string `json:"text_dir"`
}

// Store persists notes to a CSV file plus per-note companion exports.
type Store interface {
	// Init creates the data directories and an empty store. It is idempotent.
	Init(ctx context.Context) error
	// Append adds one note and rewrites the store. A zero Date is stamped with the current time.
	Append(ctx context.Context, note Note) (Note, error)
	// Load returns every note in file order. A missing store yields no notes and no error.
	Load(ctx context.Context) ([]Note, error)
	// LoadAll is Load without the error: unreadable stores read as empty.
	LoadAll(ctx context.Context) []Note
	Stats(ctx context.Context) Stats
	// SaveAudio copies an uploaded recording into the audio directory and returns its path.
	SaveAudio(ctx context.Context, originalName string, r io.Reader) (string, error)
	Locations() Locations
}
