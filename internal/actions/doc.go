// Package actions provides the repository operations behind each gitlingo command.
//
// Each action corresponds to a command (sync, checkout, commit, open, branches,
// push-branch) and reconciles the working copy under the active path with its remote.
//
// Key patterns:
//   - Actions accept runtime.Context which provides the git runner, Splog and Localizer
//   - Actions never return errors: every failure becomes a localized Failure outcome
//   - Every outcome is appended to the activity log before it is returned
//
// Dependencies:
//   - git: Version-control operations and working copy inspection
//   - tui: Confirmation prompts and the editor
package actions
