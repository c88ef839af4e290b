package notebook

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/notebot/internal/subject"
)

// subjectSeparator splits an inbox file name into subject and the rest,
// e.g. "Vật lý__week3.mp3".
const subjectSeparator = "__"

// Ingest handles a file dropped into the inbox
func (n *implNotebook) Ingest(ctx context.Context, path string) error {
	subj := SubjectFromFilename(path, n.cfg.Notes.DefaultSubject)

	draft, err := n.Process(ctx, path, subj)
	if err != nil {
		n.discardAudio(ctx, draft.AudioFile)
		return fmt.Errorf("process %s: %w", filepath.Base(path), err)
	}

	note, err := n.SaveDraft(ctx, draft)
	if err != nil {
		n.discardAudio(ctx, draft.AudioFile)
		return fmt.Errorf("save %s: %w", filepath.Base(path), err)
	}

	// The recording lives in the audio directory now
	if err := os.Remove(path); err != nil {
		n.logger.Warn(ctx, "Failed to remove inbox file %s: %v", path, err)
	}

	n.logger.Info(ctx, "[DONE] %s -> %q (%s)", filepath.Base(path), note.Title, note.Subject)
	return nil
}

// discardAudio removes the archived copy of a recording that produced no
// note. The inbox file is kept, so a retry archives it again.
func (n *implNotebook) discardAudio(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		n.logger.Warn(ctx, "Failed to remove archived audio %s: %v", path, err)
		return
	}
	n.logger.Debug(ctx, "Removed archived audio %s", path)
}

// SubjectFromFilename returns the known subject named by the "<subject>__"
// prefix of path's base name, or def.
func SubjectFromFilename(path, def string) string {
	base := filepath.Base(path)
	prefix, _, found := strings.Cut(base, subjectSeparator)
	if found && subject.Known(prefix) {
		return strings.TrimSpace(prefix)
	}
	return def
}
