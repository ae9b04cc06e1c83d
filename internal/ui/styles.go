package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, the current breakpoint
	ColorHighlight = "205" // Magenta - for the focused panel
	ColorDanger    = "196" // Red - for errors
	ColorMuted     = "241" // Gray - for hints, false cells
	ColorText      = "252" // Light gray - for normal text
	ColorWarning   = "208" // Orange - for the guard notice
)

// Styles contains shared style definitions used across panels.
var Styles = struct {
	Title   lipgloss.Style // Bold accent color - for the header
	Badge   lipgloss.Style // Current breakpoint label
	Panel   lipgloss.Style // Unfocused panel border
	Focused lipgloss.Style // Focused panel border
	Current lipgloss.Style // Current row in the table
	True    lipgloss.Style // Comparison cell that holds
	Muted   lipgloss.Style // Dimmed text
	Normal  lipgloss.Style // Normal text
	Warning lipgloss.Style // Guard notice
	Error   lipgloss.Style // Config reload errors
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Badge: lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color(ColorAccent)),
	Panel: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	Focused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Current: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	True: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Warning: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
}
