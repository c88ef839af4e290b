package storage

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wavHeader returns the leading bytes of a PCM WAV file.
func wavHeader() []byte {
	h := []byte("RIFF\x24\x08\x00\x00WAVEfmt \x10\x00\x00\x00\x01\x00\x01\x00\x80\x3e\x00\x00\x00\x7d\x00\x00\x02\x00\x10\x00data\x00\x08\x00\x00")
	return append(h, make([]byte, 64)...)
}

func TestSaveAudioKeepsBytesAndExtension(t *testing.T) {
	ctx := context.Background()
	store, paths := newTestStore(t)

	payload := append(wavHeader(), bytes.Repeat([]byte{1, 2, 3}, 5000)...)
	path, err := store.SaveAudio(ctx, "Bài giảng 1.WAV", bytes.NewReader(payload))
	require.NoError(t, err)

	assert.Equal(t, paths.Audio, filepath.Dir(path))
	assert.Equal(t, "audio_20250314_093000.wav", filepath.Base(path))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestSaveAudioSameSecond(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, WithClock(func() time.Time { return baseTime }))

	first, err := store.SaveAudio(ctx, "a.wav", bytes.NewReader(wavHeader()))
	require.NoError(t, err)
	second, err := store.SaveAudio(ctx, "b.wav", bytes.NewReader(wavHeader()))
	require.NoError(t, err)

	assert.Equal(t, "audio_20250314_093000.wav", filepath.Base(first))
	assert.Equal(t, "audio_20250314_093000_2.wav", filepath.Base(second))
}

func TestSaveAudioRejectsNonAudio(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content []byte
	}{
		{"text renamed to mp3", "notes.mp3", []byte("this is plainly a text document, not audio\n")},
		{"unsupported extension", "lecture.txt", wavHeader()},
		{"empty upload", "empty.wav", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, paths := newTestStore(t)
			_, err := store.SaveAudio(context.Background(), tt.file, bytes.NewReader(tt.content))
			assert.True(t, errors.Is(err, ErrNotAudio), "got %v", err)

			entries, _ := os.ReadDir(paths.Audio)
			assert.Empty(t, entries)
		})
	}
}

func TestDetectAudioMIME(t *testing.T) {
	mt, err := DetectAudioMIME("x.wav", wavHeader())
	require.NoError(t, err)
	assert.Contains(t, mt, "audio/")

	mt, err = DetectAudioMIME("x.mp3", []byte{0x00, 0x01, 0x02, 0xfe, 0xff, 0x00, 0x10})
	require.NoError(t, err)
	assert.Equal(t, "audio/mpeg", mt, "unrecognized binary falls back to the extension")
}

func TestDetectAudioFileMIME(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rec.wav")
	require.NoError(t, os.WriteFile(path, wavHeader(), 0644))

	mt, err := DetectAudioFileMIME(path)
	require.NoError(t, err)
	assert.Contains(t, mt, "audio/")

	_, err = DetectAudioFileMIME(filepath.Join(t.TempDir(), "missing.wav"))
	assert.Error(t, err)
}
