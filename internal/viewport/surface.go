package viewport

import (
	"errors"
	"sync"
)

// ErrNoSurface is returned when a surface cannot be measured at all.
var ErrNoSurface = errors.New("viewport: no display surface")

// Surface is something with a measurable width that announces resizes.
type Surface interface {
	// Width returns the current width in columns.
	Width() (int, error)
	// Watch calls notify on every resize until stop is called.
	// notify may be called from any goroutine.
	Watch(notify func()) (stop func(), err error)
}

// Manual is a Surface whose width is pushed in by the caller, for example
// from a tea.WindowSizeMsg.
type Manual struct {
	mu       sync.Mutex
	width    int
	watchers map[int]func()
	next     int
}

// Ensure Manual implements Surface.
var _ Surface = (*Manual)(nil)

// NewManual creates a Manual surface reporting width.
func NewManual(width int) *Manual {
	return &Manual{width: width, watchers: make(map[int]func())}
}

// Width implements Surface.
func (m *Manual) Width() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.width, nil
}

// Watch implements Surface.
func (m *Manual) Watch(notify func()) (func(), error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.next
	m.next++
	m.watchers[id] = notify

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.watchers, id)
			m.mu.Unlock()
		})
	}, nil
}

// Resize sets the width and notifies every watcher.
func (m *Manual) Resize(width int) {
	m.mu.Lock()
	m.width = width
	notify := make([]func(), 0, len(m.watchers))
	for _, fn := range m.watchers {
		notify = append(notify, fn)
	}
	m.mu.Unlock()

	for _, fn := range notify {
		fn()
	}
}

// Watchers returns the number of active watchers.
func (m *Manual) Watchers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.watchers)
}
