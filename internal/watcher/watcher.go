package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/notebot/internal/logger"
	"github.com/nguyentantai21042004/notebot/internal/storage"
)

type implWatcher struct {
	inboxDir      string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	inflight      *inflight
	settle        time.Duration
	wg            sync.WaitGroup
}

// Start handles recordings already in the inbox, then monitors it for new ones
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Inbox watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inboxDir)
	w.logger.Info(ctx, "Supported formats: %s", strings.Join(storage.AudioExtensions, ", "))

	if err := w.scanExisting(ctx); err != nil {
		w.logger.Warn(ctx, "Failed to scan inbox: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "Inbox watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			// Only process CREATE events
			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !storage.IsAudioFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-audio file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New recording detected: %s", event.Name)
			if err := w.dispatch(ctx, event.Name); err != nil {
				return err
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// dispatch runs the handler in a goroutine once a slot is free.
// A path is handled at most once while its handler is running.
func (w *implWatcher) dispatch(ctx context.Context, path string) error {
	if !w.inflight.claim(path) {
		w.logger.Debug(ctx, "Already handling %s", path)
		return nil
	}

	// Small delay to ensure file is fully written
	select {
	case <-time.After(w.settle):
	case <-ctx.Done():
		w.inflight.unclaim(path)
		return ctx.Err()
	}

	if err := w.inflight.acquire(ctx, path); err != nil {
		return err
	}
	w.logger.Debug(ctx, "Handling %s (%d running)", path, w.inflight.running())

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer w.inflight.done(path)

		if err := w.handler(ctx, path); err != nil {
			w.logger.Error(ctx, "Failed to process %s: %v", path, err)
		}
	}()
	return nil
}

func (w *implWatcher) scanExisting(ctx context.Context) error {
	entries, err := os.ReadDir(w.inboxDir)
	if err != nil {
		return err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if storage.IsAudioFile(e.Name()) {
			files = append(files, filepath.Join(w.inboxDir, e.Name()))
		}
	}
	sort.Strings(files)

	if len(files) > 0 {
		w.logger.Info(ctx, "Found %d recordings already in the inbox", len(files))
	}
	for _, f := range files {
		if err := w.dispatch(ctx, f); err != nil {
			return err
		}
	}
	return nil
}
