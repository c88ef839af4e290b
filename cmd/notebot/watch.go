package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/notebot/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Process recordings dropped into the inbox directory",
	Long: `watch monitors the inbox directory and saves a note for every recording
that appears there. Name files <subject>__<anything>.<ext> to set the subject;
other files use the default subject.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		a, err := newApp(ctx, cmd)
		if err != nil {
			return err
		}

		inbox := a.cfg.Paths.Inbox
		if err := os.MkdirAll(inbox, 0755); err != nil {
			return fmt.Errorf("create inbox: %w", err)
		}

		nb, err := a.notebook(ctx, true)
		if err != nil {
			return err
		}

		w, err := watcher.New(inbox, nb.Ingest, a.log, a.cfg.Performance.MaxConcurrent)
		if err != nil {
			return err
		}
		defer w.Stop()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)

		errChan := make(chan error, 1)
		go func() {
			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				errChan <- err
			}
		}()

		a.log.Info(ctx, "Watching inbox: %s", inbox)
		a.log.Info(ctx, "Transcriber: %s, concurrent: %d", a.cfg.Transcriber.Backend, a.cfg.Performance.MaxConcurrent)
		a.log.Info(ctx, "Press Ctrl+C to stop")

		select {
		case sig := <-sigChan:
			a.log.Info(ctx, "Received signal: %v, shutting down", sig)
			cancel()
			return nil
		case err := <-errChan:
			return fmt.Errorf("watcher: %w", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
