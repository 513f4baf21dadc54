// Package tui provides the interactive pieces of gitlingo.
//
// It handles:
//   - Yes/no confirmation before destructive actions (using survey on a terminal)
//   - Launching the configured editor on a file
//   - Terminal detection (using go-isatty)
package tui
