package ui

import (
	"strings"

	"termbreak/internal/breakpoint"

	"github.com/charmbracelet/lipgloss"
)

// Layout arranges rendered panels within the available width.
type Layout interface {
	Name() string
	Arrange(width int, focus *FocusManager, panels []Panel) string
}

// StackLayout renders panels top to bottom at full width.
type StackLayout struct{}

// SplitLayout renders the first panel on the left and the rest stacked on
// the right.
type SplitLayout struct{}

// LayoutFor picks a layout for the resolved breakpoint: the narrower half of
// the table stacks, the wider half splits. Until the width is trustworthy the
// stacked layout is used.
func LayoutFor(r *breakpoint.Resolver) Layout {
	table := r.Table()
	if r.Guarded() || len(table) < 2 {
		return StackLayout{}
	}
	pivot := table[(len(table)-1)/2].Label
	if breakpoint.Must(r.GreaterThan(pivot)) {
		return SplitLayout{}
	}
	return StackLayout{}
}

// Name implements Layout.
func (StackLayout) Name() string { return "stack" }

// Arrange implements Layout.
func (StackLayout) Arrange(width int, focus *FocusManager, panels []Panel) string {
	rendered := make([]string, 0, len(panels))
	for _, p := range panels {
		rendered = append(rendered, renderPanel(p, width, focus.Focused(p.ID)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

// Name implements Layout.
func (SplitLayout) Name() string { return "split" }

// Arrange implements Layout.
func (SplitLayout) Arrange(width int, focus *FocusManager, panels []Panel) string {
	if len(panels) < 2 {
		return StackLayout{}.Arrange(width, focus, panels)
	}
	leftWidth := width / 2
	left := renderPanel(panels[0], leftWidth, focus.Focused(panels[0].ID))
	right := StackLayout{}.Arrange(width-leftWidth, focus, panels[1:])
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// renderPanel draws p inside a border of the given outer width.
func renderPanel(p Panel, width int, focused bool) string {
	style := Styles.Panel
	if focused {
		style = Styles.Focused
	}
	// Style.Width covers content and padding but not the border.
	inner := width - style.GetHorizontalBorderSize()
	if inner < 1 {
		inner = 1
	}
	var b strings.Builder
	if p.Title != "" {
		b.WriteString(Styles.Title.Render(p.Title))
		b.WriteString("\n")
	}
	b.WriteString(p.View.View())
	return style.Width(inner).Render(b.String())
}
