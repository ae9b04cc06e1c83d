package breakpoint

import (
	"context"
	"sync"

	"termbreak/internal/viewport"
)

// Tracker combines the scoped Config with a viewport.Observer and hands out
// Resolver snapshots. It also reports changes of the resolved label.
type Tracker struct {
	obs   *viewport.Observer
	cache TableCache

	// checkMu serializes check so transitions are computed and delivered in
	// the order the snapshots were taken.
	checkMu sync.Mutex

	mu        sync.Mutex
	cfg       Config
	last      string
	listeners map[int]func(from, to string)
	nextID    int
	unsub     func()
}

// NewTracker reads the Config provided to ctx and follows obs.
// It returns ErrNoProvider when ctx carries no Config.
func NewTracker(ctx context.Context, obs *viewport.Observer) (*Tracker, error) {
	cfg, err := FromContext(ctx)
	if err != nil {
		return nil, err
	}
	t := &Tracker{
		obs:       obs,
		cfg:       cfg,
		listeners: make(map[int]func(from, to string)),
	}
	if r := t.Resolver(); r.Ready() {
		t.last = r.Current()
	}
	t.unsub = obs.Subscribe(func(viewport.State) { t.check() })
	return t, nil
}

// Config returns the Config currently in use.
func (t *Tracker) Config() Config {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cfg
}

// Observer returns the width observer the Tracker follows.
func (t *Tracker) Observer() *viewport.Observer {
	return t.obs
}

// Resolver returns a snapshot for the latest width and Config.
func (t *Tracker) Resolver() *Resolver {
	t.mu.Lock()
	cfg := t.cfg
	t.mu.Unlock()

	table := t.cache.Table(cfg.Breakpoints)
	return NewResolver(cfg, table, t.obs.State(), t.obs.Measurable())
}

// Reconfigure replaces the Config, e.g. after the config file is reloaded.
// The table is rebuilt because the mapping changed.
func (t *Tracker) Reconfigure(cfg Config) {
	t.mu.Lock()
	t.cfg = cfg
	t.mu.Unlock()
	t.check()
}

// OnChange registers fn to be called with the old and new label whenever the
// resolved breakpoint changes between two measured widths. Listeners run one
// at a time and must not call Reconfigure.
func (t *Tracker) OnChange(fn func(from, to string)) (remove func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.nextID
	t.nextID++
	t.listeners[id] = fn
	return func() {
		t.mu.Lock()
		delete(t.listeners, id)
		t.mu.Unlock()
	}
}

// Close stops following the observer. It does not stop the observer itself.
func (t *Tracker) Close() {
	t.unsub()
}

// check notifies listeners when the label differs from the last measured one.
// Labels resolved before the first measurement are provisional and never
// reported.
func (t *Tracker) check() {
	t.checkMu.Lock()
	defer t.checkMu.Unlock()

	r := t.Resolver()
	if !r.Ready() {
		return
	}
	current := r.Current()

	t.mu.Lock()
	from := t.last
	t.last = current
	if from == "" || current == from {
		t.mu.Unlock()
		return
	}
	fns := make([]func(from, to string), 0, len(t.listeners))
	for _, fn := range t.listeners {
		fns = append(fns, fn)
	}
	t.mu.Unlock()

	for _, fn := range fns {
		fn(from, current)
	}
}
