package hosts

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrSuperseded reports that a newer call with the same key arrived while
// this one was still waiting out the debounce window.
var ErrSuperseded = errors.New("superseded by a newer call")

// Debouncer holds callers for a quiet window per key. When keystrokes arrive
// in quick succession only the last one proceeds; the earlier ones are
// released with ErrSuperseded so no upstream request is fired for them.
type Debouncer struct {
	window time.Duration

	mu      sync.Mutex
	pending map[string]chan struct{}
}

// NewDebouncer creates a debouncer with the given quiet window.
func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{
		window:  window,
		pending: make(map[string]chan struct{}),
	}
}

// Wait blocks until the window elapses without a newer call for key.
func (d *Debouncer) Wait(ctx context.Context, key string) error {
	if d.window <= 0 {
		return nil
	}

	cancel := make(chan struct{})

	d.mu.Lock()
	if prev, ok := d.pending[key]; ok {
		close(prev)
	}
	d.pending[key] = cancel
	d.mu.Unlock()

	timer := time.NewTimer(d.window)
	defer timer.Stop()

	select {
	case <-timer.C:
		d.mu.Lock()
		if d.pending[key] == cancel {
			delete(d.pending, key)
		}
		d.mu.Unlock()
		return nil
	case <-cancel:
		return ErrSuperseded
	case <-ctx.Done():
		d.mu.Lock()
		if d.pending[key] == cancel {
			delete(d.pending, key)
		}
		d.mu.Unlock()
		return ctx.Err()
	}
}
