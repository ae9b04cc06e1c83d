package ui

import "termbreak/internal/breakpoint"

// ResolvedMsg carries a fresh breakpoint snapshot to the panels.
type ResolvedMsg struct {
	Resolver *breakpoint.Resolver
}

// ConfigMsg is sent when the config file has been reloaded.
// Err is set when the new file was rejected; the previous Config stays.
type ConfigMsg struct {
	Path   string
	Config breakpoint.Config
	Err    error
}

// frameMsg is the refresh tick that flushes pending re-measurements.
type frameMsg struct{}
