package storage

import (
	"fmt"
	"os"
	"strings"
)

const companionTemplate = `TIÊU ĐỀ: %s
MÔN HỌC: %s
THỜI GIAN: %s

TÓM TẮT:
%s

NỘI DUNG ĐẦY ĐỦ:
%s
`

// companionBase is the export file name without extension, derived from the note's own date.
func companionBase(note Note) string {
	return "note_" + note.Date.Format(FileStampLayout)
}

// writeCompanion writes the plain-text export of note into the text directory
func (s *implStore) writeCompanion(note Note) (string, error) {
	if err := os.MkdirAll(s.paths.Text, 0755); err != nil {
		return "", fmt.Errorf("create text dir: %w", err)
	}

	f, err := createUnique(s.paths.Text, companionBase(note), TextExt)
	if err != nil {
		return "", fmt.Errorf("create text file: %w", err)
	}

	body := fmt.Sprintf(companionTemplate,
		note.Title,
		note.Subject,
		note.Date.Format(DateLayout),
		strings.TrimSpace(note.Summary),
		strings.TrimSpace(note.Content),
	)
	if _, err := f.WriteString(body); err != nil {
		f.Close()
		return "", fmt.Errorf("write text file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close text file: %w", err)
	}

	return f.Name(), nil
}
