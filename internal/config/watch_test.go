package config

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"termbreak/internal/breakpoint"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reloads struct {
	mu   sync.Mutex
	opts []breakpoint.Options
	errs []error
}

func (r *reloads) handle(o breakpoint.Options, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.errs = append(r.errs, err)
		return
	}
	r.opts = append(r.opts, o)
}

func (r *reloads) counts() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.opts), len(r.errs)
}

func (r *reloads) last() breakpoint.Options {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.opts[len(r.opts)-1]
}

func startWatch(t *testing.T, path string, rec *reloads) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, path, WatchOptions{Debounce: 50 * time.Millisecond}, rec.handle) }()
	t.Cleanup(func() {
		cancel()
		assert.NoError(t, <-done)
	})
	// Give the watcher time to register the directory.
	time.Sleep(50 * time.Millisecond)
}

func TestWatch_ReloadsOnceAfterBurst(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breakpoints.yaml")
	writeFile(t, path, "breakpoints:\n  a: 10\n")
	rec := &reloads{}
	startWatch(t, path, rec)

	for i := 0; i < 5; i++ {
		writeFile(t, path, "breakpoints:\n  a: 10\n  b: 20\n")
	}

	require.Eventually(t, func() bool {
		n, _ := rec.counts()
		return n > 0
	}, 2*time.Second, 10*time.Millisecond)
	time.Sleep(150 * time.Millisecond)

	n, errs := rec.counts()
	assert.Equal(t, 1, n)
	assert.Equal(t, 0, errs)
	assert.Equal(t, breakpoint.Mapping{"a": 10, "b": 20}, rec.last().Breakpoints)
}

func TestWatch_ReportsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breakpoints.yaml")
	writeFile(t, path, "breakpoints:\n  a: 10\n")
	rec := &reloads{}
	startWatch(t, path, rec)

	writeFile(t, path, "breakpoints:\n  a: -1\n")

	require.Eventually(t, func() bool {
		_, errs := rec.counts()
		return errs > 0
	}, 2*time.Second, 10*time.Millisecond)
	n, _ := rec.counts()
	assert.Equal(t, 0, n)
}

func TestWatch_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "breakpoints.yaml")
	writeFile(t, path, "breakpoints:\n  a: 10\n")
	rec := &reloads{}
	startWatch(t, path, rec)

	writeFile(t, filepath.Join(dir, "other.yaml"), "x: 1\n")
	time.Sleep(200 * time.Millisecond)

	n, errs := rec.counts()
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, errs)
}

func TestDebouncer_Cancel(t *testing.T) {
	d := newDebouncer(20 * time.Millisecond)
	ran := make(chan struct{}, 1)
	d.trigger(func() { ran <- struct{}{} })
	d.cancel()

	select {
	case <-ran:
		t.Fatal("cancelled callback ran")
	case <-time.After(80 * time.Millisecond):
	}
}
