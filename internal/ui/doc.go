// Package ui implements the Bubble Tea terminal interface for pawdeck.
//
// The model renders from an immutable state.Snapshot and never mutates
// slices directly: every action becomes a store operation run as a
// tea.Cmd, whose outcome flows back through the snapshot on the next
// refresh. Cart quantity edits are the one exception, applied to the
// store synchronously before the confirming request is issued.
package ui
