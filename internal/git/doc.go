// Package git provides low-level Git operations.
//
// It wraps git command execution and provides a Go-friendly interface for:
//   - Remote synchronization (clone, fetch, pull, push)
//   - Branch management (checkout, create, current branch, listing)
//   - Working copy queries and updates (status, stage, commit, reset)
//   - Working copy state detection for a workspace path
//
// This package should be the only place where direct git commands are executed.
package git
