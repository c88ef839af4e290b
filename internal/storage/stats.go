package storage

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const bytesPerMB = 1024 * 1024

// Stats counts notes, recordings and text exports. It never fails: each
// figure falls back to zero when its source cannot be read.
func (s *implStore) Stats(ctx context.Context) Stats {
	var st Stats

	if notes, err := s.Load(ctx); err != nil {
		s.logger.Warn(ctx, "Stats: cannot read notes store: %v", err)
	} else {
		st.NoteCount = len(notes)
	}

	audio, err := listFiles(s.paths.Audio, IsAudioFile)
	if err != nil {
		s.logger.Debug(ctx, "Stats: cannot list audio dir: %v", err)
	}
	for _, f := range audio {
		info, err := f.Info()
		if err != nil {
			continue
		}
		st.AudioCount++
		st.TotalAudioBytes += info.Size()
	}
	st.TotalAudioSizeMB = math.Round(float64(st.TotalAudioBytes)/bytesPerMB*100) / 100

	text, err := listFiles(s.paths.Text, func(name string) bool {
		return strings.EqualFold(filepath.Ext(name), TextExt)
	})
	if err != nil {
		s.logger.Debug(ctx, "Stats: cannot list text dir: %v", err)
	}
	st.TextCount = len(text)

	return st
}

// IsAudioFile checks if the file has a supported audio extension
func IsAudioFile(path string) bool {
	return slices.Contains(AudioExtensions, strings.ToLower(filepath.Ext(path)))
}

func listFiles(dir string, match func(name string) bool) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []os.DirEntry
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if match(e.Name()) {
			files = append(files, e)
		}
	}
	return files, nil
}
