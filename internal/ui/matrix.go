package ui

import (
	"fmt"
	"strings"

	"termbreak/internal/breakpoint"
	"termbreak/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
)

// comparison is one column of the matrix.
type comparison struct {
	header string
	eval   func(r *breakpoint.Resolver, label string) (bool, error)
}

var comparisons = []comparison{
	{">", (*breakpoint.Resolver).GreaterThan},
	{">=", (*breakpoint.Resolver).GreaterEqualThan},
	{"<", (*breakpoint.Resolver).SmallerThan},
	{"<=", (*breakpoint.Resolver).SmallerEqualThan},
	{"==", (*breakpoint.Resolver).Equal},
	{"!=", (*breakpoint.Resolver).NotEqual},
}

// MatrixView evaluates every comparison helper against every label.
type MatrixView struct {
	r *breakpoint.Resolver
}

// Ensure MatrixView implements View.
var _ View = (*MatrixView)(nil)

// Init implements View.
func (m *MatrixView) Init() tea.Cmd { return nil }

// Update implements View.
func (m *MatrixView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(ResolvedMsg); ok {
		m.r = msg.Resolver
	}
	return m, nil
}

// View implements View.
func (m *MatrixView) View() string {
	if m.r == nil || len(m.r.Table()) == 0 {
		return ""
	}
	labels := m.r.Table().Labels()
	labelWidth := textutil.MaxWidth(labels, maxLabelWidth)

	var b strings.Builder
	b.WriteString(Styles.Muted.Render(textutil.Fit("", labelWidth)))
	for _, c := range comparisons {
		b.WriteString(Styles.Muted.Render(fmt.Sprintf(" %3s", c.header)))
	}
	for _, label := range labels {
		b.WriteString("\n")
		b.WriteString(textutil.Fit(label, labelWidth))
		for _, c := range comparisons {
			// Labels come from the table, so they are always known.
			ok := breakpoint.Must(c.eval(m.r, label))
			b.WriteString("   " + mark(ok))
		}
	}
	return b.String()
}
