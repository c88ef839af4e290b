package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/notebot/internal/config"
	"github.com/nguyentantai21042004/notebot/internal/logger"
	"github.com/nguyentantai21042004/notebot/internal/notebook"
	"github.com/nguyentantai21042004/notebot/internal/storage"
)

func TestFilterNotes(t *testing.T) {
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	notes := []storage.Note{
		{Subject: "Toán học", Title: "a", Date: base},
		{Subject: "Vật lý", Title: "b", Date: base.Add(time.Hour)},
		{Subject: "Toán học", Title: "c", Date: base.Add(2 * time.Hour)},
	}

	all := filterNotes(notes, "", 0)
	assert.Equal(t, []string{"c", "b", "a"}, titles(all))

	math := filterNotes(notes, " Toán học ", 0)
	assert.Equal(t, []string{"c", "a"}, titles(math))

	limited := filterNotes(notes, "", 1)
	assert.Equal(t, []string{"c"}, titles(limited))

	assert.Equal(t, []string{"a", "b", "c"}, titles(notes), "input must not be reordered")
}

func titles(notes []storage.Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.Title
	}
	return out
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"có\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"y", true},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		got := confirm(strings.NewReader(tt.input), &out, "? ")
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		assert.Equal(t, "? ", out.String())
	}
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "một hai ba", preview("một\nhai   ba", 20))
	assert.Equal(t, "mộ...", preview("một hai", 2))
}

func TestPrintNote(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local)
	n := storage.Note{
		Subject:   "Vật lý",
		Title:     "Động lực học",
		Summary:   "Định luật Newton",
		Content:   "Nội dung chi tiết",
		Date:      now.Add(-2 * time.Hour),
		AudioFile: "/data/audio/audio_20240301_100000.wav",
	}

	var short bytes.Buffer
	printNote(&short, n, false, now)
	assert.Contains(t, short.String(), "Động lực học - Vật lý")
	assert.Contains(t, short.String(), "2024-03-01 10:00:00")
	assert.Contains(t, short.String(), "Định luật Newton")
	assert.NotContains(t, short.String(), "Nội dung chi tiết")
	assert.Contains(t, short.String(), "audio_20240301_100000.wav")

	var full bytes.Buffer
	printNote(&full, n, true, now)
	assert.Contains(t, full.String(), "Nội dung chi tiết")
}

func TestPrintJSON(t *testing.T) {
	var out bytes.Buffer
	err := printJSON(&out, storage.Note{Subject: "Khác", Title: "<x>", TextFile: "hidden.txt"})
	assert.NoError(t, err)
	assert.Contains(t, out.String(), `"title": "<x>"`)
	assert.NotContains(t, out.String(), "hidden.txt")
	assert.NotContains(t, out.String(), "audio_file")
}

func newSaveFixture(t *testing.T) (*config.Config, storage.Store, notebook.Notebook, string) {
	t.Helper()
	cfg := &config.Config{Transcriber: config.TranscriberConfig{Backend: config.BackendGemini}}
	cfg.Paths.Data = filepath.Join(t.TempDir(), "data")
	require.NoError(t, cfg.Validate())

	store := storage.New(cfg, logger.Nop())
	require.NoError(t, store.Init(context.Background()))
	nb := notebook.New(cfg, store, nil, nil, logger.Nop())

	src := filepath.Join(t.TempDir(), "lecture.wav")
	header := []byte("RIFF\x24\x08\x00\x00WAVEfmt \x10\x00\x00\x00\x01\x00\x01\x00\x80\x3e\x00\x00\x00\x7d\x00\x00\x02\x00\x10\x00data\x00\x08\x00\x00")
	require.NoError(t, os.WriteFile(src, append(header, make([]byte, 256)...), 0644))
	return cfg, store, nb, src
}

func TestSaveNoteWithAudio(t *testing.T) {
	cfg, store, nb, src := newSaveFixture(t)

	note, err := saveNote(context.Background(), store, nb, notebook.NewNote{
		Subject: "Vật lý",
		Content: "Định luật Newton",
		Summary: "## Tóm tắt",
	}, src)
	require.NoError(t, err)
	assert.FileExists(t, note.AudioFile)
	assert.Equal(t, cfg.Paths.Audio, filepath.Dir(note.AudioFile))
	assert.True(t, strings.HasPrefix(note.Title, "Bài ghi "), "fallback title without a generator")
}

func TestSaveNoteInvalidDiscardsAudio(t *testing.T) {
	cfg, store, nb, src := newSaveFixture(t)

	_, err := saveNote(context.Background(), store, nb, notebook.NewNote{
		Subject: "Vật lý",
		Content: "   ",
		Summary: "## Tóm tắt",
	}, src)
	require.Error(t, err)

	entries, err := os.ReadDir(cfg.Paths.Audio)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.FileExists(t, src)
	assert.Empty(t, store.LoadAll(context.Background()))
}
