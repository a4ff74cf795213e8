package watcher

import (
	"sync"
	"time"
)

// Debouncer delays processing until file activity settles. Rapid events for
// the same file coalesce into a single callback after the delay expires.
type Debouncer struct {
	delay    time.Duration
	pending  map[string]*time.Timer
	callback func(path string)
	mu       sync.Mutex
}

// NewDebouncer creates a Debouncer with the specified delay and callback.
func NewDebouncer(delay time.Duration, callback func(path string)) *Debouncer {
	return &Debouncer{
		delay:    delay,
		pending:  make(map[string]*time.Timer),
		callback: callback,
	}
}

// Add schedules a file for processing after the debounce delay. A pending
// timer for the same path is reset.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if timer, exists := d.pending[path]; exists {
		timer.Stop()
	}

	d.pending[path] = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		delete(d.pending, path)
		d.mu.Unlock()

		// Invoke the callback outside the lock to avoid potential deadlocks
		if d.callback != nil {
			d.callback(path)
		}
	})
}

// Cancel removes a pending file from processing. A non-pending file is a
// no-op.
func (d *Debouncer) Cancel(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if timer, exists := d.pending[path]; exists {
		timer.Stop()
		delete(d.pending, path)
	}
}

// CancelAll cancels all pending file processing, preventing callbacks from
// firing during shutdown.
func (d *Debouncer) CancelAll() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for path, timer := range d.pending {
		timer.Stop()
		delete(d.pending, path)
	}
}

// PendingCount returns the number of files currently pending processing.
func (d *Debouncer) PendingCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// IsPending returns true if the specified file is currently pending.
func (d *Debouncer) IsPending(path string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, exists := d.pending[path]
	return exists
}
