package transcriber

import (
	"fmt"
	"sync"

	"github.com/nguyentantai21042004/notebot/internal/config"
	"github.com/nguyentantai21042004/notebot/internal/generator"
	"github.com/nguyentantai21042004/notebot/internal/logger"
	"github.com/nguyentantai21042004/notebot/pkg/executor"
)

type whisperTranscriber struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger

	modelOnce sync.Once
	modelPath string
	modelErr  error
}

type geminiTranscriber struct {
	generator generator.Generator
	language  string
	logger    logger.Logger
}

// New creates the Transcriber selected by transcriber.backend.
// The result is safe for concurrent use and meant to be built once per process.
func New(cfg *config.Config, exec executor.Executor, gen generator.Generator, log logger.Logger) (Transcriber, error) {
	switch cfg.Transcriber.Backend {
	case config.BackendWhisper, "":
		return &whisperTranscriber{
			cfg:      cfg,
			executor: exec,
			logger:   log,
		}, nil
	case config.BackendGemini:
		if gen == nil {
			return nil, fmt.Errorf("transcriber: gemini backend needs a generator")
		}
		return &geminiTranscriber{
			generator: gen,
			language:  cfg.Transcriber.Language,
			logger:    log,
		}, nil
	default:
		return nil, fmt.Errorf("transcriber: unknown backend %q (supported: whisper, gemini)", cfg.Transcriber.Backend)
	}
}
