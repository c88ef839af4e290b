package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Load reads every note from the store in file order.
func (s *implStore) Load(ctx context.Context) ([]Note, error) {
	data, err := os.ReadFile(s.paths.NotesFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read notes store: %w", err)
	}

	notes, err := decodeNotes(data)
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// LoadAll keeps listings renderable: any read error yields an empty slice
func (s *implStore) LoadAll(ctx context.Context) []Note {
	notes, err := s.Load(ctx)
	if err != nil {
		s.logger.Warn(ctx, "Failed to read notes, showing none: %v", err)
		return []Note{}
	}
	if notes == nil {
		return []Note{}
	}
	s.logger.Debug(ctx, "Loaded %d notes", len(notes))
	return notes
}

// Append adds note to the store and writes its companion exports.
func (s *implStore) Append(ctx context.Context, note Note) (Note, error) {
	if note.Date.IsZero() {
		note.Date = s.now()
	}
	// Stored dates have second resolution
	note.Date = note.Date.Truncate(time.Second)
	// encoding/csv reads \r\n inside quoted fields back as \n
	note.Title = normalizeNewlines(note.Title)
	note.Content = normalizeNewlines(note.Content)
	note.Summary = normalizeNewlines(note.Summary)

	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.Load(ctx)
	if err != nil {
		s.logger.Warn(ctx, "Existing notes store unreadable, starting a new one: %v", err)
		s.quarantine(ctx, note)
		notes = nil
	} else {
		s.logger.Debug(ctx, "Existing notes: %d", len(notes))
	}

	notes = append(notes, note)

	data, err := encodeNotes(notes)
	if err != nil {
		return Note{}, fmt.Errorf("encode notes: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.paths.NotesFile), 0755); err != nil {
		return Note{}, fmt.Errorf("create store directory: %w", err)
	}
	if err := writeFileAtomic(s.paths.NotesFile, data, 0644); err != nil {
		return Note{}, fmt.Errorf("write notes store: %w", err)
	}
	s.logger.Info(ctx, "Saved note %q (%s), total notes: %d", note.Title, note.Subject, len(notes))

	// The note is persisted at this point; exports are best effort
	textPath, err := s.writeCompanion(note)
	if err != nil {
		s.logger.Warn(ctx, "Failed to write companion text for %q: %v", note.Title, err)
	} else {
		note.TextFile = textPath
		s.logger.Info(ctx, "Wrote companion text: %s", textPath)
	}

	if s.exportDocx {
		docxPath, err := s.writeDocx(note)
		if err != nil {
			s.logger.Warn(ctx, "Failed to write docx for %q: %v", note.Title, err)
		} else {
			s.logger.Info(ctx, "Wrote docx: %s", docxPath)
		}
	}

	return note, nil
}

// quarantine moves an unreadable store aside so the rewrite doesn't destroy it
func (s *implStore) quarantine(ctx context.Context, note Note) {
	dest := fmt.Sprintf("%s.corrupt-%s", s.paths.NotesFile, note.Date.Format(FileStampLayout))
	if err := os.Rename(s.paths.NotesFile, dest); err != nil {
		s.logger.Warn(ctx, "Failed to move unreadable store aside: %v", err)
		return
	}
	s.logger.Warn(ctx, "Moved unreadable store to %s", dest)
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
