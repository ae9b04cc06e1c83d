package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"termbreak/internal/breakpoint"
	"termbreak/internal/telemetry"
	"termbreak/internal/viewport"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Options configures a Model.
type Options struct {
	// FPS is the refresh rate resize notifications are coalesced to.
	// Zero means viewport.DefaultFPS.
	FPS int
	// Tracer records breakpoint transitions and reloads. May be nil.
	Tracer *telemetry.Tracer
}

// Model is the root inspector model. Bubble Tea's WindowSizeMsg is the resize
// notification; the re-measure it schedules runs on the next frame tick.
type Model struct {
	ctx     context.Context
	surface *viewport.Manual
	sched   *viewport.ManualScheduler
	obs     *viewport.Observer
	tracker *breakpoint.Tracker
	tracer  *telemetry.Tracer

	frame        time.Duration
	framePending bool

	width, height int
	panels        []Panel
	focus         FocusManager
	keys          KeyMap
	help          help.Model

	lastChange string
	reloadErr  error
	configPath string
}

// NewModel creates a Model using the Config provided to ctx. It returns
// breakpoint.ErrNoProvider outside a provider scope.
func NewModel(ctx context.Context, opts Options) (*Model, error) {
	fps := opts.FPS
	if fps <= 0 {
		fps = viewport.DefaultFPS
	}
	surface := viewport.NewManual(0)
	sched := viewport.NewManualScheduler()
	obs := viewport.NewObserver(surface, viewport.WithScheduler(sched))

	tracker, err := breakpoint.NewTracker(ctx, obs)
	if err != nil {
		return nil, fmt.Errorf("ui: %w", err)
	}

	m := &Model{
		ctx:     ctx,
		surface: surface,
		sched:   sched,
		obs:     obs,
		tracker: tracker,
		tracer:  opts.Tracer,
		frame:   time.Second / time.Duration(fps),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		panels: []Panel{
			{ID: "summary", Title: "Breakpoint", View: &SummaryView{}},
			{ID: "table", Title: "Table", View: &TableView{}},
			{ID: "matrix", Title: "Comparisons", View: &MatrixView{}},
		},
	}
	m.focus = FocusManager{Current: "summary", Order: []string{"summary", "table", "matrix"}}
	m.help.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHighlight)).Bold(true)
	m.help.Styles.ShortDesc = Styles.Muted
	m.help.Styles.FullKey = m.help.Styles.ShortKey
	m.help.Styles.FullDesc = Styles.Muted

	tracker.OnChange(func(from, to string) {
		m.lastChange = fmt.Sprintf("%s → %s", from, to)
		m.tracer.RecordTransition(m.ctx, from, to, m.tracker.Resolver())
	})
	return m, nil
}

// Ensure Model implements tea.Model.
var _ tea.Model = (*Model)(nil)

// Resolver returns the current breakpoint snapshot.
func (m *Model) Resolver() *breakpoint.Resolver {
	return m.tracker.Resolver()
}

// Close detaches the observer. Bubble Tea does not call it; the owner does
// after the program exits.
func (m *Model) Close() {
	m.tracker.Close()
	m.obs.Stop()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.broadcast()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Focus):
			m.focus.Next()
		case key.Matches(msg, m.keys.FocusBack):
			m.focus.Prev()
		case key.Matches(msg, m.keys.Guard):
			cfg := m.tracker.Config()
			cfg.GuardSSR = !cfg.GuardSSR
			m.tracker.Reconfigure(cfg)
			return m, m.broadcast()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.surface.Resize(msg.Width)
		if !m.obs.State().Ready {
			// First size: measure immediately, like an effect on mount.
			if err := m.obs.Start(m.ctx); err != nil {
				m.reloadErr = err
			}
			return m, m.broadcast()
		}
		return m, m.scheduleFrame()

	case frameMsg:
		m.framePending = false
		if m.sched.Flush() > 0 {
			return m, m.broadcast()
		}
		return m, nil

	case ConfigMsg:
		m.configPath = msg.Path
		m.tracer.RecordReload(m.ctx, msg.Path, msg.Config, msg.Err)
		if msg.Err != nil {
			m.reloadErr = msg.Err
			return m, nil
		}
		m.reloadErr = nil
		m.tracker.Reconfigure(msg.Config)
		return m, m.broadcast()

	case ResolvedMsg:
		var cmds []tea.Cmd
		for i := range m.panels {
			v, cmd := m.panels[i].View.Update(msg)
			m.panels[i].View = v
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}
	return m, nil
}

// scheduleFrame arms the frame tick unless one is already pending.
func (m *Model) scheduleFrame() tea.Cmd {
	if m.framePending || m.sched.Pending() == 0 {
		return nil
	}
	m.framePending = true
	return tea.Tick(m.frame, func(time.Time) tea.Msg { return frameMsg{} })
}

// broadcast sends a fresh snapshot to the panels.
func (m *Model) broadcast() tea.Cmd {
	r := m.tracker.Resolver()
	return func() tea.Msg { return ResolvedMsg{Resolver: r} }
}

// View implements tea.Model.
func (m *Model) View() string {
	r := m.tracker.Resolver()
	layout := LayoutFor(r)

	var b strings.Builder
	header := Styles.Title.Render("termbreak")
	header += Styles.Muted.Render(fmt.Sprintf("  layout %s", layout.Name()))
	if m.lastChange != "" {
		header += Styles.Muted.Render("  last change " + m.lastChange)
	}
	b.WriteString(header)
	b.WriteString("\n")

	width := m.width
	if width <= 0 {
		width = 80
	}
	b.WriteString(layout.Arrange(width, &m.focus, m.panels))
	b.WriteString("\n")

	if m.reloadErr != nil {
		b.WriteString(Styles.Error.Render("config: " + m.reloadErr.Error()))
		b.WriteString("\n")
	} else if m.configPath != "" {
		b.WriteString(Styles.Muted.Render("config: " + m.configPath))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
