package ui

import (
	"testing"

	"termbreak/internal/breakpoint"
	"termbreak/internal/viewport"

	"github.com/stretchr/testify/assert"
)

func resolverAt(width int, ready bool) *breakpoint.Resolver {
	cfg := breakpoint.Options{Breakpoints: terminalColumns}.Resolve()
	return breakpoint.NewResolver(cfg, breakpoint.BuildTable(cfg.Breakpoints), viewport.State{Ready: ready, Width: width}, true)
}

func TestLayoutFor(t *testing.T) {
	tests := []struct {
		width int
		ready bool
		want  string
	}{
		{60, true, "stack"},
		{120, true, "stack"},
		{121, true, "split"},
		{250, true, "split"},
		{250, false, "stack"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LayoutFor(resolverAt(tt.width, tt.ready)).Name(), "width %d", tt.width)
	}
}

func TestLayoutFor_SingleBreakpointStacks(t *testing.T) {
	cfg := breakpoint.Config{Breakpoints: breakpoint.Mapping{"only": 100}}
	r := breakpoint.NewResolver(cfg, breakpoint.BuildTable(cfg.Breakpoints), viewport.State{Ready: true, Width: 500}, true)
	assert.Equal(t, "stack", LayoutFor(r).Name())
}
