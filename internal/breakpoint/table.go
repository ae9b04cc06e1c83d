package breakpoint

import (
	"cmp"
	"reflect"
	"slices"
	"sync"
)

// Entry is one row of a Table.
type Entry struct {
	Label    string
	MaxWidth int
}

// Table is a Mapping sorted ascending by MaxWidth. Entry i covers the
// half-open interval (PrevMax(i), MaxWidth]; widths beyond the last
// MaxWidth belong to the last entry.
type Table []Entry

// BuildTable sorts m ascending by width. Equal widths are ordered by label.
// A nil or empty mapping yields an empty table.
func BuildTable(m Mapping) Table {
	t := make(Table, 0, len(m))
	for label, w := range m {
		t = append(t, Entry{Label: label, MaxWidth: w})
	}
	slices.SortFunc(t, func(a, b Entry) int {
		if c := cmp.Compare(a.MaxWidth, b.MaxWidth); c != 0 {
			return c
		}
		return cmp.Compare(a.Label, b.Label)
	})
	return t
}

// Index returns the position of label, or -1.
func (t Table) Index(label string) int {
	return slices.IndexFunc(t, func(e Entry) bool { return e.Label == label })
}

// PrevMax returns the MaxWidth of the entry before i, or 0 for the first entry.
func (t Table) PrevMax(i int) int {
	if i <= 0 {
		return 0
	}
	return t[i-1].MaxWidth
}

// Labels returns the labels in table order.
func (t Table) Labels() []string {
	labels := make([]string, len(t))
	for i, e := range t {
		labels[i] = e.Label
	}
	return labels
}

// Locate returns the label whose interval contains width, scanning from the
// widest entry down. Widths beyond every entry resolve to the last one.
// ok is false only for an empty table.
func (t Table) Locate(width int) (label string, ok bool) {
	for i := len(t) - 1; i >= 0; i-- {
		if width > t.PrevMax(i) && width <= t[i].MaxWidth {
			return t[i].Label, true
		}
	}
	if len(t) == 0 {
		return "", false
	}
	return t[len(t)-1].Label, true
}

// TableCache memoizes BuildTable by mapping identity: the table is rebuilt
// only when a different map value is passed in. The cached map is retained
// so its address cannot be reused by another map.
type TableCache struct {
	mu    sync.Mutex
	m     Mapping
	table Table
	valid bool
}

// Table returns the sorted table for m.
func (c *TableCache) Table(m Mapping) Table {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid && sameMapping(c.m, m) {
		return c.table
	}
	c.m = m
	c.table = BuildTable(m)
	c.valid = true
	return c.table
}

func sameMapping(a, b Mapping) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
