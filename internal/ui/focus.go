package ui

// FocusManager tracks and rotates focus across panels.
type FocusManager struct {
	Current string   // ID of the currently focused panel
	Order   []string // Tab order for focus rotation
}

// Next advances focus to the next panel in order and returns its ID.
func (f *FocusManager) Next() string {
	return f.step(1)
}

// Prev moves focus to the previous panel in order and returns its ID.
func (f *FocusManager) Prev() string {
	return f.step(-1)
}

func (f *FocusManager) step(delta int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := 0
	for i, id := range f.Order {
		if id == f.Current {
			idx = (i + delta + n) % n
			break
		}
	}
	f.Current = f.Order[idx]
	return f.Current
}

// Focused reports whether id has focus.
func (f *FocusManager) Focused(id string) bool {
	return f.Current == id
}
