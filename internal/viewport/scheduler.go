package viewport

import (
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultFPS matches Bubble Tea's default renderer frame rate.
const DefaultFPS = 60

// Scheduler defers work to the next refresh tick.
type Scheduler interface {
	// Schedule runs fn on the next tick. cancel prevents fn from running if
	// it has not started yet; calling cancel more than once is safe.
	Schedule(fn func()) (cancel func())
}

// FrameScheduler runs work on a fixed frame clock. Work scheduled at any
// point within a frame runs at that frame's end.
type FrameScheduler struct {
	interval time.Duration
	epoch    time.Time
}

// Ensure FrameScheduler implements Scheduler.
var _ Scheduler = (*FrameScheduler)(nil)

// NewFrameScheduler creates a FrameScheduler ticking fps times per second.
// If fps is 0 or negative, DefaultFPS is used.
func NewFrameScheduler(fps int) *FrameScheduler {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &FrameScheduler{
		interval: time.Second / time.Duration(fps),
		epoch:    time.Now(),
	}
}

// Interval returns the frame duration.
func (s *FrameScheduler) Interval() time.Duration {
	return s.interval
}

// Schedule implements Scheduler.
func (s *FrameScheduler) Schedule(fn func()) func() {
	delay := s.interval - time.Since(s.epoch)%s.interval

	var cancelled atomic.Bool
	t := time.AfterFunc(delay, func() {
		// Stop returns false once the timer has fired, so the flag also
		// covers a cancel that lands between firing and this check.
		if cancelled.Load() {
			return
		}
		fn()
	})
	return func() {
		cancelled.Store(true)
		t.Stop()
	}
}

// ManualScheduler holds scheduled work until Flush is called. The Bubble Tea
// model flushes it from its frame tick; tests flush it directly.
type ManualScheduler struct {
	mu    sync.Mutex
	next  uint64
	tasks map[uint64]func()
}

// Ensure ManualScheduler implements Scheduler.
var _ Scheduler = (*ManualScheduler)(nil)

// NewManualScheduler creates an empty ManualScheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{tasks: make(map[uint64]func())}
}

// Schedule implements Scheduler.
func (s *ManualScheduler) Schedule(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.next
	s.next++
	s.tasks[id] = fn
	return func() {
		s.mu.Lock()
		delete(s.tasks, id)
		s.mu.Unlock()
	}
}

// Pending returns the number of tasks waiting for the next Flush.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Flush runs every pending task in scheduling order and returns how many ran.
// Tasks scheduled while flushing wait for the next Flush.
func (s *ManualScheduler) Flush() int {
	s.mu.Lock()
	ids := make([]uint64, 0, len(s.tasks))
	for id := range s.tasks {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	tasks := make([]func(), 0, len(ids))
	for _, id := range ids {
		tasks = append(tasks, s.tasks[id])
		delete(s.tasks, id)
	}
	s.mu.Unlock()

	for _, fn := range tasks {
		fn()
	}
	return len(tasks)
}
