// Package textutil measures and fits breakpoint labels to terminal columns.
package textutil

import (
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks a truncated label.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// MaxWidth returns the widest of labels, capped at limit when limit > 0.
func MaxWidth(labels []string, limit int) int {
	w := 0
	for _, l := range labels {
		w = max(w, Width(l))
	}
	if limit > 0 {
		w = min(w, limit)
	}
	return w
}

// Truncate shortens s to at most cols columns, ending in Ellipsis when cut.
func Truncate(s string, cols int) string {
	if cols <= 0 {
		return ""
	}
	if Width(s) <= cols {
		return s
	}
	return runewidth.Truncate(s, cols, Ellipsis)
}

// Fit truncates or right-pads s to exactly cols columns.
func Fit(s string, cols int) string {
	s = Truncate(s, cols)
	return runewidth.FillRight(s, cols)
}
