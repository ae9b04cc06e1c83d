package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"termbreak/internal/breakpoint"

	"github.com/fsnotify/fsnotify"
)

// WatchOptions tunes Watch.
type WatchOptions struct {
	// Debounce is the quiet period after the last write before reloading.
	// Zero means DefaultDebounceDuration.
	Debounce time.Duration
}

// Watch reloads path after it changes and calls fn with the result until ctx
// is done. fn receives the load error instead when the new file is invalid,
// so the caller can keep its previous configuration.
//
// The parent directory is watched so editors that replace the file by
// renaming are handled.
func Watch(ctx context.Context, path string, opts WatchOptions, fn func(breakpoint.Options, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config watch: %w", err)
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("config watch %q: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("config watch %q: %w", path, err)
	}

	d := newDebouncer(opts.Debounce)
	defer d.cancel()

	reload := func() {
		o, err := Load(abs)
		fn(o, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				d.trigger(reload)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fn(breakpoint.Options{}, fmt.Errorf("config watch: %w", err))
		}
	}
}
