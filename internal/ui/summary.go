package ui

import (
	"fmt"
	"strings"

	"termbreak/internal/breakpoint"

	tea "github.com/charmbracelet/bubbletea"
)

// SummaryView shows the current breakpoint, width and readiness.
type SummaryView struct {
	r *breakpoint.Resolver
}

// Ensure SummaryView implements View.
var _ View = (*SummaryView)(nil)

// Init implements View.
func (s *SummaryView) Init() tea.Cmd { return nil }

// Update implements View.
func (s *SummaryView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(ResolvedMsg); ok {
		s.r = msg.Resolver
	}
	return s, nil
}

// View implements View.
func (s *SummaryView) View() string {
	if s.r == nil {
		return Styles.Muted.Render("waiting for first measurement…")
	}
	var lines []string

	current := s.r.Current()
	if current == "" {
		current = "none"
	}
	lines = append(lines, fmt.Sprintf("current %s  width %d  ready %s",
		Styles.Badge.Render(current), s.r.Width(), yesNo(s.r.Ready())))

	if s.r.Guarded() {
		lines = append(lines, Styles.Warning.Render("width not measured yet: comparisons report false"))
	}

	if lo, hi, ok := neighbors(s.r); ok {
		between := breakpoint.Must(s.r.Between(lo, hi))
		lines = append(lines, fmt.Sprintf("between(%s, %s) %s", lo, hi, mark(between)))
	}
	return strings.Join(lines, "\n")
}

// neighbors returns the labels on either side of the current one, clamped
// to the table ends.
func neighbors(r *breakpoint.Resolver) (lo, hi string, ok bool) {
	table := r.Table()
	i := table.Index(r.Current())
	if i < 0 {
		return "", "", false
	}
	lo, hi = table[max(i-1, 0)].Label, table[min(i+1, len(table)-1)].Label
	return lo, hi, true
}

func yesNo(b bool) string {
	if b {
		return Styles.True.Render("yes")
	}
	return Styles.Muted.Render("no")
}

func mark(b bool) string {
	if b {
		return Styles.True.Render("✓")
	}
	return Styles.Muted.Render("·")
}
