// Package viewport observes the width of a display surface (a terminal, a
// tmux pane, or a Bubble Tea program) and publishes it as a State.
//
// An Observer re-measures its Surface at most once per refresh tick: every
// resize notification cancels the pending measurement and schedules a new
// one on the Scheduler, so a burst of notifications produces one update.
package viewport
