package viewport

import (
	"fmt"
	"os"
	"time"

	"github.com/creack/pty"
	"golang.org/x/term"
)

// pollInterval is used where the platform has no resize signal.
const pollInterval = 250 * time.Millisecond

// Terminal is a Surface backed by a terminal file descriptor.
type Terminal struct {
	f *os.File
}

// Ensure Terminal implements Surface.
var _ Surface = (*Terminal)(nil)

// DetectTerminal returns a Terminal for f, or nil when f is not a terminal
// (output piped to a file, CI logs, a daemon). A nil result is the
// "no display surface" case: pass it to NewObserver as-is.
func DetectTerminal(f *os.File) Surface {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return nil
	}
	return &Terminal{f: f}
}

// Width implements Surface.
func (t *Terminal) Width() (int, error) {
	ws, err := pty.GetsizeFull(t.f)
	if err != nil {
		return 0, fmt.Errorf("terminal size: %w", err)
	}
	return int(ws.Cols), nil
}

// Watch implements Surface.
func (t *Terminal) Watch(notify func()) (func(), error) {
	return watchResize(t, notify), nil
}

// pollWidth calls notify whenever s reports a different width, checking every
// interval until done is closed.
func pollWidth(s Surface, interval time.Duration, notify func(), done <-chan struct{}) {
	last, _ := s.Width()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			w, err := s.Width()
			if err != nil || w == last {
				continue
			}
			last = w
			notify()
		}
	}
}
