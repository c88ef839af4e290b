package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	wavName          = "audio.wav"
	transcriptPrefix = "transcript"
)

// Transcribe converts the recording to 16kHz mono WAV and runs whisper.cpp on it
func (w *whisperTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	modelPath, err := w.model()
	if err != nil {
		return "", err
	}

	absAudio, err := filepath.Abs(audioPath)
	if err != nil {
		return "", fmt.Errorf("resolve audio path: %w", err)
	}

	if err := os.MkdirAll(w.cfg.Paths.Temp, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	// Isolated work dir per recording so concurrent runs don't collide
	workDir, err := os.MkdirTemp(w.cfg.Paths.Temp, "transcribe-*")
	if err != nil {
		return "", fmt.Errorf("create work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	if err := w.extractAudio(ctx, absAudio, filepath.Join(workDir, wavName)); err != nil {
		return "", err
	}

	w.logger.Info(ctx, "Starting transcription with %d threads: %s", w.cfg.Whisper.Threads, audioPath)

	// -otxt: plain text output, no timestamps
	// -l: force language (prevents hallucination)
	// -bo 5: best of 5 for better accuracy
	args := []string{
		"-m", modelPath,
		"-f", wavName,
		"-otxt",
		"-l", w.cfg.Transcriber.Language,
		"-t", strconv.Itoa(w.cfg.Whisper.Threads),
		"-bo", "5",
		"--output-file", transcriptPrefix,
	}
	if w.cfg.Whisper.Prompt != "" {
		args = append(args, "--prompt", w.cfg.Whisper.Prompt)
	}
	if !w.cfg.Whisper.UseGPU {
		args = append(args, "-ng")
	}

	if _, err := w.executor.ExecuteInDir(ctx, workDir, w.cfg.Whisper.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	data, err := os.ReadFile(filepath.Join(workDir, transcriptPrefix+".txt"))
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}

	text := joinLines(string(data))
	w.logger.Info(ctx, "Transcription completed: %d characters", len([]rune(text)))
	return text, nil
}

// extractAudio converts any supported recording to the 16kHz mono PCM WAV whisper expects
func (w *whisperTranscriber) extractAudio(ctx context.Context, src, dst string) error {
	w.logger.Debug(ctx, "Converting audio for whisper: %s", src)

	args := []string{
		"-i", src,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		dst,
	}

	if _, err := w.executor.Execute(ctx, w.cfg.FFmpeg.BinaryPath, args...); err != nil {
		return fmt.Errorf("ffmpeg convert audio: %w", err)
	}
	return nil
}

// model resolves and checks the whisper model file once per process.
func (w *whisperTranscriber) model() (string, error) {
	w.modelOnce.Do(func() {
		path, err := filepath.Abs(w.cfg.Whisper.ModelPath)
		if err != nil {
			w.modelErr = fmt.Errorf("resolve whisper model: %w", err)
			return
		}
		if _, err := os.Stat(path); err != nil {
			w.modelErr = fmt.Errorf("whisper model: %w", err)
			return
		}
		w.modelPath = path
	})
	return w.modelPath, w.modelErr
}

// joinLines collapses whisper's line-per-segment output into one paragraph.
func joinLines(s string) string {
	var parts []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}
