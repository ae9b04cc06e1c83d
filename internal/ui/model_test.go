package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"termbreak/internal/breakpoint"
	"termbreak/internal/telemetry"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// terminalColumns is a mapping sized for terminal columns rather than pixels.
var terminalColumns = breakpoint.Mapping{"narrow": 80, "medium": 120, "wide": 160, "full": 200}

func newTestModel(t *testing.T, opts Options) *Model {
	t.Helper()
	ctx := breakpoint.Provide(context.Background(), breakpoint.Options{
		Breakpoints:       terminalColumns,
		DefaultBreakpoint: "medium",
	})
	m, err := NewModel(ctx, opts)
	require.NoError(t, err)
	t.Cleanup(m.Close)
	return m
}

// deliver runs cmd and feeds resulting ResolvedMsgs back into the model, the
// way the Bubble Tea runtime would.
func deliver(m *Model, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	if msg, ok := cmd().(ResolvedMsg); ok {
		m.Update(msg)
	}
}

func TestNewModel_RequiresProvider(t *testing.T) {
	_, err := NewModel(context.Background(), Options{})
	assert.ErrorIs(t, err, breakpoint.ErrNoProvider)
}

func TestModel_GuardedUntilFirstSize(t *testing.T) {
	m := newTestModel(t, Options{})
	deliver(m, m.Init())

	r := m.Resolver()
	assert.False(t, r.Ready())
	assert.True(t, r.Guarded())
	assert.Contains(t, m.View(), "comparisons report false")
	assert.Contains(t, m.View(), "layout stack")
}

func TestModel_FirstSizeMeasuresImmediately(t *testing.T) {
	m := newTestModel(t, Options{})

	_, cmd := m.Update(tea.WindowSizeMsg{Width: 130, Height: 40})
	deliver(m, cmd)

	r := m.Resolver()
	assert.True(t, r.Ready())
	assert.Equal(t, 130, r.Width())
	assert.Equal(t, "wide", r.Current())
	assert.Contains(t, m.View(), "layout split")
}

func TestModel_ResizeBurstCoalescesToFrame(t *testing.T) {
	m := newTestModel(t, Options{})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	_, first := m.Update(tea.WindowSizeMsg{Width: 150, Height: 40})
	assert.NotNil(t, first, "the first resize arms the frame tick")
	for w := 151; w <= 159; w++ {
		_, cmd := m.Update(tea.WindowSizeMsg{Width: w, Height: 40})
		assert.Nil(t, cmd, "a pending frame absorbs further resizes")
	}
	assert.Equal(t, 100, m.Resolver().Width(), "nothing published before the frame")

	_, cmd := m.Update(frameMsg{})
	deliver(m, cmd)
	assert.Equal(t, 159, m.Resolver().Width())
	assert.Equal(t, "wide", m.Resolver().Current())

	// An idle frame publishes nothing.
	_, cmd = m.Update(frameMsg{})
	assert.Nil(t, cmd)
}

func TestModel_RecordsTransitions(t *testing.T) {
	exp := tracetest.NewInMemoryExporter()
	tracer := telemetry.NewWithProvider(sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp)))
	m := newTestModel(t, Options{Tracer: tracer})

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m.Update(tea.WindowSizeMsg{Width: 190, Height: 40})
	m.Update(frameMsg{})

	spans := exp.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "breakpoint.change", spans[0].Name)
	assert.Contains(t, m.View(), "medium → full")
}

func TestModel_ConfigReload(t *testing.T) {
	m := newTestModel(t, Options{})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	require.Equal(t, "medium", m.Resolver().Current())

	cfg := breakpoint.Options{Breakpoints: breakpoint.Mapping{"small": 90, "big": 300}}.Resolve()
	_, cmd := m.Update(ConfigMsg{Path: "bp.yaml", Config: cfg})
	deliver(m, cmd)
	assert.Equal(t, "big", m.Resolver().Current())
	assert.Contains(t, m.View(), "config: bp.yaml")

	_, cmd = m.Update(ConfigMsg{Path: "bp.yaml", Err: errors.New("bad width")})
	assert.Nil(t, cmd)
	assert.Equal(t, "big", m.Resolver().Current(), "a rejected reload keeps the previous config")
	assert.Contains(t, m.View(), "bad width")
}

func TestModel_ToggleGuard(t *testing.T) {
	m := newTestModel(t, Options{})
	require.True(t, m.Resolver().Guarded())

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	assert.False(t, m.Resolver().Guarded())
	assert.False(t, m.tracker.Config().GuardSSR)
}

func TestModel_FocusAndQuit(t *testing.T) {
	m := newTestModel(t, Options{})

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "table", m.focus.Current)
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "summary", m.focus.Current)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_PanelsRenderTable(t *testing.T) {
	m := newTestModel(t, Options{})
	_, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	deliver(m, cmd)

	view := m.View()
	for _, label := range []string{"narrow", "medium", "wide", "full"} {
		assert.Contains(t, view, label)
	}
	assert.True(t, strings.Contains(view, "▸ medium"), "current row is marked")
	assert.Contains(t, view, "between(narrow, wide)")
}
