package ui

import tea "github.com/charmbracelet/bubbletea"

// View is one inspector panel. Panels keep the last ResolvedMsg they saw and
// render from that snapshot alone; they never query the tracker themselves.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
