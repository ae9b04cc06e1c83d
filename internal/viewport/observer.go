package viewport

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"
)

// Observer publishes the width of a Surface as a State.
//
// With a nil Surface there is nothing to measure: the State stays
// {Ready: false, Width: 0} and Start attaches nothing.
type Observer struct {
	surface Surface
	sched   Scheduler
	logger  *log.Logger

	mu         sync.Mutex
	state      State
	started    bool
	stopped    bool
	cancelTick func()
	tickSeq    uint64
	unwatch    func()
	stopAfter  func() bool
	subs       map[int]func(State)
	nextSub    int
}

// Option configures an Observer.
type Option func(*Observer)

// WithScheduler sets the Scheduler used to coalesce resize notifications.
// The default is NewFrameScheduler(DefaultFPS).
func WithScheduler(s Scheduler) Option {
	return func(o *Observer) { o.sched = s }
}

// WithLogger sets the logger for measurement failures. The default discards.
func WithLogger(l *log.Logger) Option {
	return func(o *Observer) { o.logger = l }
}

// NewObserver creates an Observer for s. s may be nil.
//
// When s is non-nil the width is read once up front so the pre-start State
// already carries a width, but Ready stays false until Start.
func NewObserver(s Surface, opts ...Option) *Observer {
	o := &Observer{
		surface: s,
		logger:  log.New(io.Discard, "", 0),
		subs:    make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.sched == nil {
		o.sched = NewFrameScheduler(DefaultFPS)
	}
	if s != nil {
		if w, err := s.Width(); err == nil {
			o.state.Width = w
		}
	}
	return o
}

// Measurable reports whether the Observer has a surface to measure.
func (o *Observer) Measurable() bool {
	return o.surface != nil
}

// State returns the latest published State.
func (o *Observer) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Subscribe registers fn to receive every published State.
// fn runs outside the Observer's lock; a panic in fn is recovered.
func (o *Observer) Subscribe(fn func(State)) (unsubscribe func()) {
	o.mu.Lock()
	defer o.mu.Unlock()
	id := o.nextSub
	o.nextSub++
	o.subs[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			o.mu.Lock()
			delete(o.subs, id)
			o.mu.Unlock()
		})
	}
}

// Start measures the surface, publishes {Ready: true}, and subscribes to
// resize notifications. The subscription ends when ctx is done or Stop is
// called. Start is a no-op without a surface, after Stop, or when already
// started.
func (o *Observer) Start(ctx context.Context) error {
	if o.surface == nil {
		return nil
	}

	o.mu.Lock()
	if o.started || o.stopped {
		o.mu.Unlock()
		return nil
	}
	o.started = true
	o.mu.Unlock()

	if err := o.measure(); err != nil {
		o.mu.Lock()
		o.started = false
		o.mu.Unlock()
		return fmt.Errorf("viewport: initial measurement: %w", err)
	}

	unwatch, err := o.surface.Watch(o.notify)
	if err != nil {
		o.Stop()
		return fmt.Errorf("viewport: watch resize: %w", err)
	}

	o.mu.Lock()
	if o.stopped {
		o.mu.Unlock()
		unwatch()
		return nil
	}
	o.unwatch = unwatch
	if ctx != nil {
		o.stopAfter = context.AfterFunc(ctx, o.Stop)
	}
	o.mu.Unlock()
	return nil
}

// Stop cancels any pending re-measurement and detaches the resize
// subscription. It is safe to call more than once and before Start.
func (o *Observer) Stop() {
	o.mu.Lock()
	o.stopped = true
	cancelTick, unwatch, stopAfter := o.cancelTick, o.unwatch, o.stopAfter
	o.cancelTick, o.unwatch, o.stopAfter = nil, nil, nil
	o.mu.Unlock()

	if cancelTick != nil {
		cancelTick()
	}
	if unwatch != nil {
		unwatch()
	}
	if stopAfter != nil {
		stopAfter()
	}
}

// notify handles a resize notification: the pending re-measurement, if any,
// is replaced by one on the next tick.
func (o *Observer) notify() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.stopped {
		return
	}
	if o.cancelTick != nil {
		o.cancelTick()
	}
	o.tickSeq++
	seq := o.tickSeq
	o.cancelTick = o.sched.Schedule(func() { o.tick(seq) })
}

// tick re-measures unless a later notify replaced it. A replaced tick can
// still get here when it fired just as it was cancelled.
func (o *Observer) tick(seq uint64) {
	o.mu.Lock()
	if o.stopped || seq != o.tickSeq {
		o.mu.Unlock()
		return
	}
	o.cancelTick = nil
	o.mu.Unlock()

	if err := o.measure(); err != nil {
		o.logger.Printf("viewport.Observer: re-measure failed, keeping width %d: %v", o.State().Width, err)
	}
}

// measure reads the surface and publishes the result to subscribers.
func (o *Observer) measure() error {
	w, err := o.surface.Width()
	if err != nil {
		return err
	}

	o.mu.Lock()
	if o.stopped {
		o.mu.Unlock()
		return nil
	}
	o.state = State{Ready: true, Width: w}
	st := o.state
	subs := make([]func(State), 0, len(o.subs))
	for _, fn := range o.subs {
		subs = append(subs, fn)
	}
	o.mu.Unlock()

	for _, fn := range subs {
		safeCall(func() { fn(st) })
	}
	return nil
}

// safeCall calls fn with panic recovery. One subscriber failing shouldn't block others.
func safeCall(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}
