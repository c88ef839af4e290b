package watcher

import (
	"context"
	"sync"
)

// inflight tracks inbox files being handled. A path can be claimed once until
// it is released, and at most cap(slots) handlers hold a slot at a time.
type inflight struct {
	slots chan struct{}

	mu    sync.Mutex
	paths map[string]bool
}

func newInflight(maxConcurrent int) *inflight {
	return &inflight{
		slots: make(chan struct{}, maxConcurrent),
		paths: make(map[string]bool),
	}
}

// claim reports whether path was free and marks it taken.
func (f *inflight) claim(path string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.paths[path] {
		return false
	}
	f.paths[path] = true
	return true
}

// acquire waits for a handler slot for a claimed path. On cancellation the
// claim is dropped.
func (f *inflight) acquire(ctx context.Context, path string) error {
	select {
	case f.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		f.unclaim(path)
		return ctx.Err()
	}
}

// done frees the slot and the claim taken for path.
func (f *inflight) done(path string) {
	<-f.slots
	f.unclaim(path)
}

func (f *inflight) unclaim(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.paths, path)
}

func (f *inflight) running() int {
	return len(f.slots)
}
