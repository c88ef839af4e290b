package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsEmptyEnvironment(t *testing.T) {
	store, _ := newTestStore(t)
	assert.Equal(t, Stats{}, store.Stats(context.Background()))
}

func TestStatsAfterInit(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	require.NoError(t, store.Init(ctx))
	assert.Equal(t, Stats{}, store.Stats(ctx))
}

func TestStatsOneNoteOneAudio(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	require.NoError(t, store.Init(ctx))

	const size = 1536 * 1024 // 1.5 MB
	audio := append(wavHeader(), bytes.Repeat([]byte{0}, size-len(wavHeader()))...)
	audioPath, err := store.SaveAudio(ctx, "lecture.wav", bytes.NewReader(audio))
	require.NoError(t, err)

	note := sampleNote(1)
	note.AudioFile = audioPath
	_, err = store.Append(ctx, note)
	require.NoError(t, err)

	st := store.Stats(ctx)
	assert.Equal(t, 1, st.NoteCount)
	assert.Equal(t, 1, st.AudioCount)
	assert.Equal(t, 1, st.TextCount)
	assert.Equal(t, int64(size), st.TotalAudioBytes)
	assert.Equal(t, 1.5, st.TotalAudioSizeMB)
}

func TestStatsFiltersExtensionsAndRounds(t *testing.T) {
	ctx := context.Background()
	store, paths := newTestStore(t)
	require.NoError(t, store.Init(ctx))
	require.NoError(t, os.MkdirAll(paths.Text, 0755))

	files := map[string]int{
		filepath.Join(paths.Audio, "a.mp3"):       1000,
		filepath.Join(paths.Audio, "b.WAV"):       2345,
		filepath.Join(paths.Audio, "c.txt"):       999999,
		filepath.Join(paths.Audio, ".hidden.mp3"): 5000,
		filepath.Join(paths.Text, "note_1.txt"):   10,
		filepath.Join(paths.Text, "note_1.docx"):  10,
	}
	for path, size := range files {
		require.NoError(t, os.WriteFile(path, make([]byte, size), 0644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(paths.Audio, "sub.mp3"), 0755))

	st := store.Stats(ctx)
	assert.Equal(t, 2, st.AudioCount)
	assert.Equal(t, int64(3345), st.TotalAudioBytes)
	assert.Equal(t, 0.0, st.TotalAudioSizeMB, "3345 bytes rounds to 0.00 MB")
	assert.Equal(t, 1, st.TextCount)
}

func TestIsAudioFile(t *testing.T) {
	assert.True(t, IsAudioFile("x/lecture.mp3"))
	assert.True(t, IsAudioFile("LECTURE.WAV"))
	assert.True(t, IsAudioFile("a.flac"))
	assert.False(t, IsAudioFile("notes.txt"))
	assert.False(t, IsAudioFile("noext"))
}
