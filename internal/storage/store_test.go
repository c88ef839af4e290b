package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/notebot/internal/config"
	"github.com/nguyentantai21042004/notebot/internal/logger"
)

var baseTime = time.Date(2025, 3, 14, 9, 30, 0, 0, time.Local)

// steppingClock returns a clock that advances one second per call.
func steppingClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	next := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := next
		next = next.Add(time.Second)
		return t
	}
}

func newTestStore(t *testing.T, opts ...Option) (Store, config.PathsConfig) {
	t.Helper()
	cfg := &config.Config{Transcriber: config.TranscriberConfig{Backend: config.BackendGemini}}
	cfg.Paths.Data = filepath.Join(t.TempDir(), "data")
	require.NoError(t, cfg.Validate())

	opts = append([]Option{WithClock(steppingClock(baseTime))}, opts...)
	return New(cfg, logger.Nop(), opts...), cfg.Paths
}

func sampleNote(i int) Note {
	return Note{
		Subject: "Vật lý",
		Title:   fmt.Sprintf("Bài %d", i),
		Content: fmt.Sprintf("Nội dung %d, có dấu phẩy\nvà xuống dòng", i),
		Summary: fmt.Sprintf("## Tóm tắt %d\n- \"trích dẫn\"", i),
	}
}

func TestInitCreatesHeaderOnly(t *testing.T) {
	ctx := context.Background()
	store, paths := newTestStore(t)

	require.NoError(t, store.Init(ctx))

	assert.DirExists(t, paths.Data)
	assert.DirExists(t, paths.Audio)

	data, err := os.ReadFile(paths.NotesFile)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, utf8BOM), "store should start with a UTF-8 BOM")
	assert.Equal(t, "subject,title,content,summary,date,audio_file\n", string(data[len(utf8BOM):]))

	notes, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestInitIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store, paths := newTestStore(t)

	require.NoError(t, store.Init(ctx))
	_, err := store.Append(ctx, sampleNote(1))
	require.NoError(t, err)

	before, err := os.ReadFile(paths.NotesFile)
	require.NoError(t, err)

	require.NoError(t, store.Init(ctx))
	require.NoError(t, store.Init(ctx))

	after, err := os.ReadFile(paths.NotesFile)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestInitFailsWhenDataDirIsAFile(t *testing.T) {
	ctx := context.Background()
	store, paths := newTestStore(t)

	require.NoError(t, os.WriteFile(paths.Data, []byte("x"), 0644))
	assert.Error(t, store.Init(ctx))
}

func TestAppendKeepsOrderAndCount(t *testing.T) {
	ctx := context.Background()
	store, paths := newTestStore(t)
	require.NoError(t, store.Init(ctx))

	const n = 5
	for i := 0; i < n; i++ {
		saved, err := store.Append(ctx, sampleNote(i))
		require.NoError(t, err)
		assert.FileExists(t, saved.TextFile)
	}

	notes := store.LoadAll(ctx)
	require.Len(t, notes, n)
	for i, note := range notes {
		want := sampleNote(i)
		assert.Equal(t, want.Title, note.Title)
		assert.Equal(t, want.Content, note.Content, "embedded commas and newlines must round-trip")
		assert.Equal(t, want.Summary, note.Summary)
		if i > 0 {
			assert.False(t, note.Date.Before(notes[i-1].Date), "dates must be non-decreasing")
		}
	}

	entries, err := os.ReadDir(paths.Text)
	require.NoError(t, err)
	assert.Len(t, entries, n)
}

func TestAppendUsesOneInstantForDateAndCompanion(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	when := time.Date(2024, 11, 2, 18, 4, 5, 987, time.Local)
	note := sampleNote(1)
	note.Date = when

	saved, err := store.Append(ctx, note)
	require.NoError(t, err)

	assert.Equal(t, when.Truncate(time.Second), saved.Date)
	assert.Equal(t, "note_20241102_180405.txt", filepath.Base(saved.TextFile))

	notes, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.True(t, notes[0].Date.Equal(saved.Date))
}

func TestAppendStampsCurrentTime(t *testing.T) {
	ctx := context.Background()
	store, paths := newTestStore(t)

	saved, err := store.Append(ctx, sampleNote(1))
	require.NoError(t, err)
	assert.True(t, saved.Date.Equal(baseTime))

	data, err := os.ReadFile(paths.NotesFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "2025-03-14 09:30:00")
}

func TestCompanionContent(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	note := sampleNote(7)
	note.AudioFile = "data/audio/audio_20250314_093000.wav"
	saved, err := store.Append(ctx, note)
	require.NoError(t, err)

	data, err := os.ReadFile(saved.TextFile)
	require.NoError(t, err)
	text := string(data)

	assert.True(t, strings.HasPrefix(text, "TIÊU ĐỀ: Bài 7\nMÔN HỌC: Vật lý\nTHỜI GIAN: 2025-03-14 09:30:00\n"))
	assert.Contains(t, text, "TÓM TẮT:\n"+note.Summary)
	assert.Contains(t, text, "NỘI DUNG ĐẦY ĐỦ:\n"+note.Content)

	notes, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, note.AudioFile, notes[0].AudioFile)
}

func TestAppendCRLFRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	note := sampleNote(1)
	note.Content = "dòng 1\r\ndòng 2\rdòng 3"
	note.Summary = "## Tóm tắt\r\n- ý chính"
	saved, err := store.Append(ctx, note)
	require.NoError(t, err)
	assert.Equal(t, "dòng 1\ndòng 2\ndòng 3", saved.Content)
	assert.Equal(t, "## Tóm tắt\n- ý chính", saved.Summary)

	notes := store.LoadAll(ctx)
	require.Len(t, notes, 1)
	assert.Equal(t, saved.Content, notes[0].Content)
	assert.Equal(t, saved.Summary, notes[0].Summary)

	data, err := os.ReadFile(saved.TextFile)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "\r")
	assert.Contains(t, string(data), "NỘI DUNG ĐẦY ĐỦ:\n"+saved.Content)
}

func TestCompanionSameSecondGetsSuffix(t *testing.T) {
	ctx := context.Background()
	store, paths := newTestStore(t, WithClock(func() time.Time { return baseTime }))

	first, err := store.Append(ctx, sampleNote(1))
	require.NoError(t, err)
	second, err := store.Append(ctx, sampleNote(2))
	require.NoError(t, err)

	assert.Equal(t, "note_20250314_093000.txt", filepath.Base(first.TextFile))
	assert.Equal(t, "note_20250314_093000_2.txt", filepath.Base(second.TextFile))

	entries, err := os.ReadDir(paths.Text)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Len(t, store.LoadAll(ctx), 2)
}

func TestCompanionFailureStillPersists(t *testing.T) {
	ctx := context.Background()
	store, paths := newTestStore(t)
	require.NoError(t, store.Init(ctx))

	// A regular file where the text directory should be
	require.NoError(t, os.WriteFile(paths.Text, []byte("blocked"), 0644))

	saved, err := store.Append(ctx, sampleNote(1))
	require.NoError(t, err)
	assert.Empty(t, saved.TextFile)
	assert.Len(t, store.LoadAll(ctx), 1)
}

func TestLoadMissingStore(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	notes, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)

	all := store.LoadAll(ctx)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestCorruptStore(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"wrong header", "a,b,c\n1,2,3\n"},
		{"short row", "subject,title,content,summary,date,audio_file\nToán học,t,c,s\n"},
		{"bad date", "subject,title,content,summary,date,audio_file\nToán học,t,c,s,yesterday,\n"},
		{"bad quoting", "subject,title,content,summary,date,audio_file\n\"unterminated,t,c,s,2025-01-01 00:00:00,\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store, paths := newTestStore(t)
			require.NoError(t, store.Init(ctx))
			require.NoError(t, os.WriteFile(paths.NotesFile, []byte(tt.content), 0644))

			_, err := store.Load(ctx)
			assert.True(t, errors.Is(err, ErrCorruptStore), "got %v", err)
			assert.Empty(t, store.LoadAll(ctx))
			assert.Zero(t, store.Stats(ctx).NoteCount)

			saved, err := store.Append(ctx, sampleNote(1))
			require.NoError(t, err, "a corrupt store must not fail the save")

			notes, err := store.Load(ctx)
			require.NoError(t, err)
			require.Len(t, notes, 1)
			assert.Equal(t, "Bài 1", notes[0].Title)

			quarantined := fmt.Sprintf("%s.corrupt-%s", paths.NotesFile, saved.Date.Format(FileStampLayout))
			data, err := os.ReadFile(quarantined)
			require.NoError(t, err, "corrupt store should be moved aside")
			assert.Equal(t, tt.content, string(data))
		})
	}
}

func TestStoreWithoutBOMStillReads(t *testing.T) {
	ctx := context.Background()
	store, paths := newTestStore(t)
	require.NoError(t, store.Init(ctx))

	content := "subject,title,content,summary,date,audio_file\nLịch sử,Điện Biên Phủ,c,s,2024-05-07 08:00:00,\n"
	require.NoError(t, os.WriteFile(paths.NotesFile, []byte(content), 0644))

	notes, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Điện Biên Phủ", notes[0].Title)
	assert.Empty(t, notes[0].AudioFile)
}

func TestConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	require.NoError(t, store.Init(ctx))

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := store.Append(ctx, sampleNote(i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Len(t, store.LoadAll(ctx), n, "serialized appends must not lose rows")
}

func TestDocxExport(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{Transcriber: config.TranscriberConfig{Backend: config.BackendGemini}}
	cfg.Paths.Data = filepath.Join(t.TempDir(), "data")
	cfg.Notes.ExportDocx = true
	require.NoError(t, cfg.Validate())

	store := New(cfg, logger.Nop(), WithClock(steppingClock(baseTime)))
	saved, err := store.Append(ctx, sampleNote(3))
	require.NoError(t, err)

	docxPath := strings.TrimSuffix(saved.TextFile, TextExt) + ".docx"
	info, err := os.Stat(docxPath)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	// docx files are not counted as text exports
	assert.Equal(t, 1, store.Stats(ctx).TextCount)
}

func TestLocations(t *testing.T) {
	store, paths := newTestStore(t)
	loc := store.Locations()

	assert.True(t, filepath.IsAbs(loc.NotesFile))
	assert.Equal(t, filepath.Base(paths.NotesFile), filepath.Base(loc.NotesFile))
	assert.Equal(t, filepath.Base(paths.Audio), filepath.Base(loc.AudioDir))
	assert.Equal(t, filepath.Base(paths.Text), filepath.Base(loc.TextDir))
}
