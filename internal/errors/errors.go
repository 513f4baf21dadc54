// Package errors provides sentinel errors and custom error types for gitlingo.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrOperationCanceled indicates that the user declined a confirmation prompt
	ErrOperationCanceled = errors.New("operation canceled")

	// ErrNotGitRepository indicates that a directory has no .git subdirectory
	ErrNotGitRepository = errors.New("not a git repository")

	// ErrDetachedHead indicates that HEAD does not point at a named branch
	ErrDetachedHead = errors.New("HEAD is detached")

	// ErrCheckoutFailed indicates that neither the requested nor the fallback branch could be checked out
	ErrCheckoutFailed = errors.New("checkout failed")

	// ErrEditorNotInstalled indicates that the configured editor binary is not on PATH
	ErrEditorNotInstalled = errors.New("editor not installed")

	// ErrTranslationUnavailable indicates that a translation could not be produced
	ErrTranslationUnavailable = errors.New("translation unavailable")

	// ErrDetectionUnavailable indicates that the language detector could not produce a result
	ErrDetectionUnavailable = errors.New("language detection unavailable")

	// ErrInvalidRepoName indicates that a repository name would escape the workspace
	ErrInvalidRepoName = errors.New("invalid repository name")

	// ErrInvalidFileName indicates that a file name is not a single path element
	ErrInvalidFileName = errors.New("invalid file name")
)

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// Stderr returns the trimmed standard error text of the first GitCommandError in err's chain.
// When there is none, the error text itself is returned.
func Stderr(err error) string {
	if err == nil {
		return ""
	}
	var gitErr *GitCommandError
	if errors.As(err, &gitErr) && strings.TrimSpace(gitErr.Stderr) != "" {
		return strings.TrimSpace(gitErr.Stderr)
	}
	return err.Error()
}

// FileSystemError represents a failure touching a path in the workspace
type FileSystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileSystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileSystemError) Unwrap() error {
	return e.Err
}

// NewFileSystemError creates a new FileSystemError
func NewFileSystemError(op, path string, err error) *FileSystemError {
	return &FileSystemError{Op: op, Path: path, Err: err}
}

// CheckoutError represents a failure to check out both a branch and its fallback
type CheckoutError struct {
	Branch      string
	Fallback    string
	BranchErr   error
	FallbackErr error
}

func (e *CheckoutError) Error() string {
	return fmt.Sprintf("failed to checkout both '%s' and fallback branch '%s'", e.Branch, e.Fallback)
}

// Is returns true if the target error is ErrCheckoutFailed
func (e *CheckoutError) Is(target error) bool {
	return target == ErrCheckoutFailed
}

// Unwrap returns both underlying checkout errors
func (e *CheckoutError) Unwrap() []error {
	return []error{e.BranchErr, e.FallbackErr}
}

// NewCheckoutError creates a new CheckoutError
func NewCheckoutError(branch, fallback string, branchErr, fallbackErr error) *CheckoutError {
	return &CheckoutError{
		Branch:      branch,
		Fallback:    fallback,
		BranchErr:   branchErr,
		FallbackErr: fallbackErr,
	}
}
