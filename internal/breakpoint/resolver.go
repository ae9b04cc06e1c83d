package breakpoint

import "termbreak/internal/viewport"

// Resolver answers breakpoint queries for one width measurement.
// It is an immutable snapshot; build a new one when the width or Config changes.
type Resolver struct {
	cfg        Config
	table      Table
	state      viewport.State
	measurable bool
	guard      bool
	current    string
}

// NewResolver builds a Resolver. measurable is false when there is no display
// surface, in which case the width is never consulted for Current.
func NewResolver(cfg Config, table Table, state viewport.State, measurable bool) *Resolver {
	r := &Resolver{
		cfg:        cfg,
		table:      table,
		state:      state,
		measurable: measurable,
		guard:      cfg.GuardSSR && !state.Ready,
	}
	r.current = r.resolve()
	return r
}

func (r *Resolver) resolve() string {
	if !r.measurable {
		if r.cfg.DefaultBreakpoint != "" {
			return r.cfg.DefaultBreakpoint
		}
		if len(r.table) > 0 {
			return r.table[0].Label
		}
		return ""
	}
	if label, ok := r.table.Locate(r.state.Width); ok {
		return label
	}
	return r.cfg.DefaultBreakpoint
}

// Current returns the label whose interval contains the width.
func (r *Resolver) Current() string { return r.current }

// Ready reports whether the width has been measured.
func (r *Resolver) Ready() bool { return r.state.Ready }

// Width returns the width the Resolver was built with.
func (r *Resolver) Width() int { return r.state.Width }

// Guarded reports whether comparisons are suppressed because the width is
// not measured yet and GuardSSR is set.
func (r *Resolver) Guarded() bool { return r.guard }

// Table returns the sorted breakpoints.
func (r *Resolver) Table() Table { return r.table }

// Lookup returns the MaxWidth of label.
func (r *Resolver) Lookup(label string) (int, error) {
	w, ok := r.cfg.Breakpoints[label]
	if !ok {
		return 0, notFound(label, r.table)
	}
	return w, nil
}

// interval returns label's (prevMax, maxWidth] bounds.
func (r *Resolver) interval(label string) (lo, hi int, err error) {
	hi, err = r.Lookup(label)
	if err != nil {
		return 0, 0, err
	}
	return r.table.PrevMax(r.table.Index(label)), hi, nil
}

// GreaterThan reports width > MaxWidth(label).
func (r *Resolver) GreaterThan(label string) (bool, error) {
	hi, err := r.Lookup(label)
	if err != nil || r.guard {
		return false, err
	}
	return r.state.Width > hi, nil
}

// GreaterEqualThan reports width >= MaxWidth(label).
func (r *Resolver) GreaterEqualThan(label string) (bool, error) {
	hi, err := r.Lookup(label)
	if err != nil || r.guard {
		return false, err
	}
	return r.state.Width >= hi, nil
}

// SmallerThan reports that the width lies below label's interval.
func (r *Resolver) SmallerThan(label string) (bool, error) {
	lo, _, err := r.interval(label)
	if err != nil || r.guard {
		return false, err
	}
	return r.state.Width <= lo, nil
}

// SmallerEqualThan reports width <= MaxWidth(label).
func (r *Resolver) SmallerEqualThan(label string) (bool, error) {
	hi, err := r.Lookup(label)
	if err != nil || r.guard {
		return false, err
	}
	return r.state.Width <= hi, nil
}

// Equal reports that the width lies in label's interval.
func (r *Resolver) Equal(label string) (bool, error) {
	lo, hi, err := r.interval(label)
	if err != nil || r.guard {
		return false, err
	}
	return r.state.Width > lo && r.state.Width <= hi, nil
}

// NotEqual is the negation of Equal, so it reports true while guarded.
func (r *Resolver) NotEqual(label string) (bool, error) {
	eq, err := r.Equal(label)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

// Between reports that the width lies in the envelope spanning the intervals
// of a and b, in either order: (min(prev(a), prev(b)), max(max(a), max(b))].
func (r *Resolver) Between(a, b string) (bool, error) {
	aMin, aMax, err := r.interval(a)
	if err != nil {
		return false, err
	}
	bMin, bMax, err := r.interval(b)
	if err != nil || r.guard {
		return false, err
	}
	lo, hi := min(aMin, bMin), max(aMax, bMax)
	return r.state.Width > lo && r.state.Width <= hi, nil
}
