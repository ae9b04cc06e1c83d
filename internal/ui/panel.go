package ui

// Panel hosts a View under a stable ID within a layout.
type Panel struct {
	ID    string
	Title string
	View  View
}
