package config

import (
	"fmt"
	"path/filepath"
	"time"
)

type Config struct {
	Paths       PathsConfig       `yaml:"paths"`
	Transcriber TranscriberConfig `yaml:"transcriber"`
	Whisper     WhisperConfig     `yaml:"whisper"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Notes       NotesConfig       `yaml:"notes"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type PathsConfig struct {
	Data      string `yaml:"data"`
	Audio     string `yaml:"audio"`
	NotesFile string `yaml:"notes_file"`
	Text      string `yaml:"text"`
	Inbox     string `yaml:"inbox"`
	Temp      string `yaml:"temp"`
}

type TranscriberConfig struct {
	Backend  string `yaml:"backend"`
	Language string `yaml:"language"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
	UseGPU     bool   `yaml:"use_gpu"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"api_keys"`
}

type NotesConfig struct {
	TitleFallbackLabel string `yaml:"title_fallback_label"`
	TitleExcerptChars  int    `yaml:"title_excerpt_chars"`
	ExportDocx         bool   `yaml:"export_docx"`
	DefaultSubject     string `yaml:"default_subject"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int           `yaml:"max_concurrent"`
	StepTimeout   time.Duration `yaml:"step_timeout"`
}

const (
	BackendWhisper = "whisper"
	BackendGemini  = "gemini"
)

// Validate checks required fields and fills defaults for everything optional.
func (c *Config) Validate() error {
	if c.Paths.Data == "" {
		c.Paths.Data = "data"
	}
	if c.Paths.Audio == "" {
		c.Paths.Audio = filepath.Join(c.Paths.Data, "audio")
	}
	if c.Paths.NotesFile == "" {
		c.Paths.NotesFile = filepath.Join(c.Paths.Data, "notes.csv")
	}
	if c.Paths.Text == "" {
		c.Paths.Text = filepath.Join(c.Paths.Data, "notes")
	}
	if c.Paths.Inbox == "" {
		c.Paths.Inbox = filepath.Join(c.Paths.Data, "inbox")
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = filepath.Join(c.Paths.Data, "temp")
	}

	if c.Transcriber.Backend == "" {
		c.Transcriber.Backend = BackendWhisper
	}
	if c.Transcriber.Language == "" {
		c.Transcriber.Language = "vi"
	}
	switch c.Transcriber.Backend {
	case BackendWhisper:
		if c.Whisper.ModelPath == "" {
			return fmt.Errorf("whisper.model_path is required")
		}
		if c.Whisper.BinaryPath == "" {
			return fmt.Errorf("whisper.binary_path is required")
		}
	case BackendGemini:
	default:
		return fmt.Errorf("transcriber.backend %q is not supported (whisper, gemini)", c.Transcriber.Backend)
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 8
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}

	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.0-flash"
	}

	if c.Notes.TitleFallbackLabel == "" {
		c.Notes.TitleFallbackLabel = "Bài ghi"
	}
	if c.Notes.TitleExcerptChars == 0 {
		c.Notes.TitleExcerptChars = 500
	}
	if c.Notes.TitleExcerptChars < 0 {
		return fmt.Errorf("notes.title_excerpt_chars must be positive")
	}
	if c.Notes.DefaultSubject == "" {
		c.Notes.DefaultSubject = "Khác"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not supported", c.Logging.Level)
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format %q is not supported (text, json)", c.Logging.Format)
	}

	if c.Performance.MaxConcurrent <= 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Performance.StepTimeout <= 0 {
		c.Performance.StepTimeout = 10 * time.Minute
	}

	return nil
}
