// Package breakpoint resolves which named width breakpoint applies to a
// terminal UI and answers comparison queries against the configured labels.
//
// Core pieces:
//   - Config / Options: the breakpoint mapping, default label and SSR guard,
//     supplied to a call tree with Provide and read back with FromContext
//   - Table: the mapping sorted ascending by width, memoized by TableCache
//   - Resolver: an immutable snapshot answering Current, Equal, Between, ...
//   - Tracker: ties a scoped Config to a viewport.Observer and hands out
//     Resolver snapshots as the width changes
package breakpoint
