package ui

import (
	"fmt"
	"strings"

	"termbreak/internal/breakpoint"
	"termbreak/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
)

// maxLabelWidth caps the label column so long labels don't push the
// numbers out of narrow panels.
const maxLabelWidth = 16

// TableView lists the sorted breakpoints with their intervals and marks the
// current one.
type TableView struct {
	r *breakpoint.Resolver
}

// Ensure TableView implements View.
var _ View = (*TableView)(nil)

// Init implements View.
func (t *TableView) Init() tea.Cmd { return nil }

// Update implements View.
func (t *TableView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(ResolvedMsg); ok {
		t.r = msg.Resolver
	}
	return t, nil
}

// View implements View.
func (t *TableView) View() string {
	if t.r == nil {
		return ""
	}
	table := t.r.Table()
	if len(table) == 0 {
		return Styles.Muted.Render("no breakpoints configured")
	}

	labelWidth := textutil.MaxWidth(table.Labels(), maxLabelWidth)

	var b strings.Builder
	for i, e := range table {
		upper := fmt.Sprintf("%d]", e.MaxWidth)
		if i == len(table)-1 {
			upper = fmt.Sprintf("%d] ∪ (%d, ∞)", e.MaxWidth, e.MaxWidth)
		}
		line := fmt.Sprintf("%s  (%d, %s", textutil.Fit(e.Label, labelWidth), table.PrevMax(i), upper)
		if e.Label == t.r.Current() {
			b.WriteString(Styles.Current.Render("▸ " + line))
		} else {
			b.WriteString(Styles.Normal.Render("  " + line))
		}
		if i < len(table)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
