package notebook

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/notebot/internal/storage"
)

const fallbackTitleLayout = "02/01/2006 15:04"

var errNoGenerator = errors.New("generative service not configured")

// Save derives a title and persists the note. Title generation never fails
// the save; only store errors do.
func (n *implNotebook) Save(ctx context.Context, note NewNote) (storage.Note, error) {
	note.Subject = strings.TrimSpace(note.Subject)
	note.Content = strings.TrimSpace(note.Content)
	note.Summary = strings.TrimSpace(note.Summary)
	if err := n.validate.StructCtx(ctx, note); err != nil {
		return storage.Note{}, fmt.Errorf("invalid note: %w", err)
	}

	title := n.generatedTitle(ctx, note.Content)
	// One instant for the fallback title, the date column and the export names,
	// taken after the title call so it is close to the persist time
	now := n.now()
	if title == "" {
		title = FallbackTitle(n.cfg.Notes.TitleFallbackLabel, now)
	}

	saved, err := n.store.Append(ctx, storage.Note{
		Subject:   note.Subject,
		Title:     title,
		Content:   note.Content,
		Summary:   note.Summary,
		Date:      now,
		AudioFile: note.AudioFile,
	})
	if err != nil {
		n.logger.Error(ctx, "Failed to save note: %v", err)
		return storage.Note{}, fmt.Errorf("save note: %w", err)
	}
	return saved, nil
}

// SaveDraft persists a processed draft
func (n *implNotebook) SaveDraft(ctx context.Context, draft Draft) (storage.Note, error) {
	return n.Save(ctx, NewNote{
		Subject:   draft.Subject,
		Content:   draft.Content,
		Summary:   draft.Summary,
		AudioFile: draft.AudioFile,
	})
}

// generatedTitle returns "" when no title could be generated.
func (n *implNotebook) generatedTitle(ctx context.Context, content string) string {
	if n.generator == nil {
		return ""
	}
	stepCtx, cancel := n.stepContext(ctx)
	defer cancel()

	title, err := n.generator.Title(stepCtx, content)
	if err == nil && strings.TrimSpace(title) != "" {
		return strings.TrimSpace(title)
	}
	n.logger.Warn(ctx, "Title generation failed, using timestamp title: %v", err)
	return ""
}

// FallbackTitle is the title used when none can be generated.
func FallbackTitle(label string, t time.Time) string {
	return label + " " + t.Format(fallbackTitleLayout)
}
