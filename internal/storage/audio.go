package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// sniffLen is how much of an upload is inspected to detect its type.
const sniffLen = 3072

var audioMIME = map[string]string{
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".m4a":  "audio/mp4",
	".ogg":  "audio/ogg",
	".flac": "audio/flac",
}

// SaveAudio stores the upload unmodified as audio_<timestamp><ext>
func (s *implStore) SaveAudio(ctx context.Context, originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]

	if _, err := DetectAudioMIME(originalName, head); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.paths.Audio, 0755); err != nil {
		return "", fmt.Errorf("create audio dir: %w", err)
	}

	base := "audio_" + s.now().Format(FileStampLayout)
	f, err := createUnique(s.paths.Audio, base, ext)
	if err != nil {
		return "", fmt.Errorf("create audio file: %w", err)
	}

	written, err := io.Copy(f, io.MultiReader(bytes.NewReader(head), r))
	if err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("write audio file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("close audio file: %w", err)
	}

	s.logger.Info(ctx, "Saved audio file: %s (%d bytes)", f.Name(), written)
	return f.Name(), nil
}

// DetectAudioMIME returns the MIME type of a recording from its leading bytes,
// falling back to the extension when the content is not recognized.
// Unsupported extensions and recognizably non-audio content yield ErrNotAudio.
func DetectAudioMIME(name string, head []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(name))
	fallback, ok := audioMIME[ext]
	if !ok {
		return "", fmt.Errorf("%w: unsupported extension %q", ErrNotAudio, ext)
	}
	if len(head) == 0 {
		return "", fmt.Errorf("%w: %s is empty", ErrNotAudio, name)
	}

	mt := mimetype.Detect(head)
	switch {
	case strings.HasPrefix(mt.String(), "audio/"):
		return mt.String(), nil
	case mt.Is("application/octet-stream"):
		return fallback, nil
	case ext == ".m4a" && mt.Is("video/mp4"), ext == ".ogg" && mt.Is("application/ogg"):
		return fallback, nil
	default:
		return "", fmt.Errorf("%w: %s looks like %s", ErrNotAudio, name, mt.String())
	}
}

// DetectAudioFileMIME is DetectAudioMIME for a file on disk.
func DetectAudioFileMIME(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", err
	}
	return DetectAudioMIME(path, head[:n])
}
