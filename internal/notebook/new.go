package notebook

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/nguyentantai21042004/notebot/internal/config"
	"github.com/nguyentantai21042004/notebot/internal/generator"
	"github.com/nguyentantai21042004/notebot/internal/logger"
	"github.com/nguyentantai21042004/notebot/internal/storage"
	"github.com/nguyentantai21042004/notebot/internal/transcriber"
)

type implNotebook struct {
	cfg         *config.Config
	store       storage.Store
	transcriber transcriber.Transcriber
	generator   generator.Generator
	logger      logger.Logger
	validate    *validator.Validate
	now         func() time.Time
}

// Option customizes a Notebook.
type Option func(*implNotebook)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(n *implNotebook) {
		n.now = now
	}
}

// New creates a Notebook. gen may be nil, in which case titles always use the fallback
// and Process fails at the correction/summary steps.
func New(cfg *config.Config, store storage.Store, tr transcriber.Transcriber, gen generator.Generator, log logger.Logger, opts ...Option) Notebook {
	n := &implNotebook{
		cfg:         cfg,
		store:       store,
		transcriber: tr,
		generator:   gen,
		logger:      log,
		validate:    validator.New(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}
