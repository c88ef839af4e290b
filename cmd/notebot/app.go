package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/notebot/internal/config"
	"github.com/nguyentantai21042004/notebot/internal/generator"
	"github.com/nguyentantai21042004/notebot/internal/logger"
	"github.com/nguyentantai21042004/notebot/internal/notebook"
	"github.com/nguyentantai21042004/notebot/internal/storage"
	"github.com/nguyentantai21042004/notebot/internal/transcriber"
	"github.com/nguyentantai21042004/notebot/pkg/executor"
)

// app holds the dependencies shared by the commands.
type app struct {
	cfg   *config.Config
	log   logger.Logger
	store storage.Store
}

// newApp loads configuration and prepares storage. Failing to create the
// data directories is fatal for every command.
func newApp(ctx context.Context, cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	log := newLogger(cfg)
	store := storage.New(cfg, log)
	if err := store.Init(ctx); err != nil {
		return nil, fmt.Errorf("initialize storage: %w", err)
	}

	return &app{cfg: cfg, log: log, store: store}, nil
}

// notebook wires the workflow. With requireGenerator false a missing API key
// only degrades titles to the timestamp fallback.
func (a *app) notebook(ctx context.Context, requireGenerator bool) (notebook.Notebook, error) {
	gen, err := generator.New(a.cfg, a.log)
	if err != nil {
		if requireGenerator || !errors.Is(err, generator.ErrNoAPIKey) {
			return nil, err
		}
		a.log.Warn(ctx, "%v: titles will use the timestamp fallback", err)
		gen = nil
	}

	var tr transcriber.Transcriber
	if gen != nil || a.cfg.Transcriber.Backend == config.BackendWhisper {
		tr, err = transcriber.New(a.cfg, executor.New(), gen, a.log)
		if err != nil {
			return nil, err
		}
	}

	return notebook.New(a.cfg, a.store, tr, gen, a.log), nil
}
