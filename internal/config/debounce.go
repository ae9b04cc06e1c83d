package config

import (
	"sync"
	"time"
)

// DefaultDebounceDuration is the default reload debounce window.
const DefaultDebounceDuration = 100 * time.Millisecond

// debouncer coalesces rapid events into a single callback invocation.
type debouncer struct {
	duration time.Duration
	timer    *time.Timer
	mu       sync.Mutex
	seq      uint64
}

func newDebouncer(duration time.Duration) *debouncer {
	if duration <= 0 {
		duration = DefaultDebounceDuration
	}
	return &debouncer{duration: duration}
}

// trigger schedules callback after the debounce duration, replacing any
// callback scheduled earlier.
func (d *debouncer) trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, func() {
		d.mu.Lock()
		// A timer that fired while being replaced must not run.
		stale := seq != d.seq
		if !stale {
			d.timer = nil
		}
		d.mu.Unlock()
		if !stale {
			callback()
		}
	})
}

// cancel drops any pending callback.
func (d *debouncer) cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
