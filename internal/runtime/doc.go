// Package runtime provides the execution context for gitlingo commands.
//
// It encapsulates the dependencies resolved once per invocation: configuration,
// the logger, the localizer for the detected language, the git runner, and the
// interactive collaborators.
package runtime
