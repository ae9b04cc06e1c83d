package viewport

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/GianlucaP106/gotmux/gotmux"
)

// TmuxPane is a Surface measuring a tmux pane. tmux does not signal a
// process about panes other than its own, so resizes are detected by polling.
type TmuxPane struct {
	tmux     *gotmux.Tmux
	paneID   string
	interval time.Duration
}

// Ensure TmuxPane implements Surface.
var _ Surface = (*TmuxPane)(nil)

// NewTmuxPane creates a surface for paneID (e.g. "%3"). An empty paneID means
// the pane this process runs in, taken from TMUX_PANE.
func NewTmuxPane(paneID string) (*TmuxPane, error) {
	if paneID == "" {
		paneID = os.Getenv("TMUX_PANE")
	}
	if paneID == "" {
		return nil, fmt.Errorf("tmux pane: %w: TMUX_PANE is not set", ErrNoSurface)
	}
	t, err := gotmux.DefaultTmux()
	if err != nil {
		return nil, fmt.Errorf("tmux pane: connect: %w", err)
	}
	return &TmuxPane{tmux: t, paneID: paneID, interval: pollInterval}, nil
}

// Width implements Surface.
func (p *TmuxPane) Width() (int, error) {
	panes, err := p.tmux.ListAllPanes()
	if err != nil {
		return 0, fmt.Errorf("tmux list panes: %w", err)
	}
	for _, pane := range panes {
		if pane.Id == p.paneID {
			return pane.Width, nil
		}
	}
	return 0, fmt.Errorf("tmux pane %s: %w", p.paneID, ErrNoSurface)
}

// Watch implements Surface.
func (p *TmuxPane) Watch(notify func()) (func(), error) {
	done := make(chan struct{})
	go pollWidth(p, p.interval, notify, done)

	var once sync.Once
	return func() { once.Do(func() { close(done) }) }, nil
}
