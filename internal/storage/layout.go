package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Init creates required directories and the store header if they don't exist.
func (s *implStore) Init(ctx context.Context) error {
	dirs := []string{
		s.paths.Data,
		s.paths.Audio,
		filepath.Dir(s.paths.NotesFile),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.paths.NotesFile, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, fs.ErrExist) {
		s.logger.Debug(ctx, "Notes store already present: %s", s.paths.NotesFile)
		return nil
	}
	if err != nil {
		return fmt.Errorf("create notes store: %w", err)
	}

	data, err := encodeNotes(nil)
	if err != nil {
		f.Close()
		return fmt.Errorf("encode header: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close notes store: %w", err)
	}

	s.logger.Info(ctx, "Created notes store: %s", s.paths.NotesFile)
	return nil
}

func (s *implStore) Locations() Locations {
	return Locations{
		NotesFile: absPath(s.paths.NotesFile),
		AudioDir:  absPath(s.paths.Audio),
		TextDir:   absPath(s.paths.Text),
	}
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
