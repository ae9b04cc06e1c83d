package breakpoint

import "maps"

// Mapping maps a breakpoint label to the upper bound of its range, in columns.
type Mapping map[string]int

// Config is a fully resolved breakpoint configuration.
// A Config is never mutated after it is built; overrides produce a new value.
type Config struct {
	Breakpoints       Mapping
	DefaultBreakpoint string
	// GuardSSR makes every comparison helper report false until the width
	// has been measured at least once.
	GuardSSR bool
}

// Options is a partial Config used to override the defaults for a scope.
// Unset fields (nil map, empty label, nil GuardSSR) fall back to Defaults().
type Options struct {
	Breakpoints       Mapping `yaml:"breakpoints"`
	DefaultBreakpoint string  `yaml:"default_breakpoint"`
	GuardSSR          *bool   `yaml:"guard_ssr"`
}

var defaults = Config{
	Breakpoints: Mapping{
		"xs":  560,
		"sm":  768,
		"md":  960,
		"lg":  1024,
		"xl":  1280,
		"xxl": 1600,
	},
	DefaultBreakpoint: "md",
	GuardSSR:          true,
}

// TerminalBreakpoints returns a mapping sized in terminal columns, for UIs
// where the pixel-sized defaults would always resolve to the smallest label.
func TerminalBreakpoints() Mapping {
	return Mapping{
		"narrow":   80,
		"compact":  100,
		"standard": 120,
		"full":     140,
	}
}

// Defaults returns a copy of the built-in configuration.
func Defaults() Config {
	return Config{
		Breakpoints:       maps.Clone(defaults.Breakpoints),
		DefaultBreakpoint: defaults.DefaultBreakpoint,
		GuardSSR:          defaults.GuardSSR,
	}
}

// Bool returns a pointer to b, for setting Options.GuardSSR.
func Bool(b bool) *bool { return &b }

// Apply merges o over base field by field and returns the result.
// A non-nil but empty Breakpoints map is kept as-is.
func (o Options) Apply(base Config) Config {
	cfg := base
	if o.Breakpoints != nil {
		cfg.Breakpoints = o.Breakpoints
	}
	if o.DefaultBreakpoint != "" {
		cfg.DefaultBreakpoint = o.DefaultBreakpoint
	}
	if o.GuardSSR != nil {
		cfg.GuardSSR = *o.GuardSSR
	}
	return cfg
}

// Merge layers over on top of o: every field set in over wins.
func (o Options) Merge(over Options) Options {
	if over.Breakpoints != nil {
		o.Breakpoints = over.Breakpoints
	}
	if over.DefaultBreakpoint != "" {
		o.DefaultBreakpoint = over.DefaultBreakpoint
	}
	if over.GuardSSR != nil {
		o.GuardSSR = over.GuardSSR
	}
	return o
}

// Resolve merges o over Defaults().
func (o Options) Resolve() Config {
	return o.Apply(Defaults())
}
