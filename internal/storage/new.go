package storage

import (
	"sync"
	"time"

	"github.com/nguyentantai21042004/notebot/internal/config"
	"github.com/nguyentantai21042004/notebot/internal/logger"
)

type implStore struct {
	paths      config.PathsConfig
	exportDocx bool
	logger     logger.Logger
	now        func() time.Time

	// mu serializes read-modify-write cycles of the notes file.
	mu sync.Mutex
}

// Option customizes a Store.
type Option func(*implStore)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *implStore) {
		s.now = now
	}
}

// New creates a Store rooted at the configured paths.
func New(cfg *config.Config, log logger.Logger, opts ...Option) Store {
	s := &implStore{
		paths:      cfg.Paths,
		exportDocx: cfg.Notes.ExportDocx,
		logger:     log,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
