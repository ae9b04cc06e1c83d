// Package ui is a Bubble Tea inspector for breakpoint resolution.
//
// Core pieces:
//   - Model: root tea.Model; turns tea.WindowSizeMsg into resize
//     notifications and flushes the coalesced re-measure on a frame tick
//   - View: a panel's Init/Update/View (Elm-style), fed ResolvedMsg
//   - Layout: stacks or splits panels depending on the current breakpoint
//   - FocusManager: rotates focus across panels
package ui
