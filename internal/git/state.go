package git

import (
	"fmt"
	"os"
	"path/filepath"

	gitlingoerrors "gitlingo.dev/gitlingo/internal/errors"
)

// WorkingCopyState describes what currently occupies a clone path
type WorkingCopyState int

const (
	// StateAbsent means nothing exists at the path
	StateAbsent WorkingCopyState = iota
	// StateValidGitRepo means the path is a directory with a .git subdirectory
	StateValidGitRepo
	// StatePresentNotGitRepo means the path is a directory without a .git subdirectory
	StatePresentNotGitRepo
)

// String returns a human-readable representation of the state
func (s WorkingCopyState) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StateValidGitRepo:
		return "valid-git-repo"
	case StatePresentNotGitRepo:
		return "present-not-git-repo"
	default:
		return "unknown"
	}
}

// StateOf inspects path: does it exist as a directory, and does it contain a .git directory?
// A non-directory at path is reported as a FileSystemError.
func StateOf(path string) (WorkingCopyState, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return StateAbsent, nil
	}
	if err != nil {
		return StateAbsent, gitlingoerrors.NewFileSystemError("stat", path, err)
	}
	if !info.IsDir() {
		return StateAbsent, gitlingoerrors.NewFileSystemError("stat", path, fmt.Errorf("not a directory"))
	}

	if IsGitRepo(path) {
		return StateValidGitRepo, nil
	}
	return StatePresentNotGitRepo, nil
}

// IsGitRepo reports whether path contains a .git subdirectory
func IsGitRepo(path string) bool {
	info, err := os.Stat(filepath.Join(path, ".git"))
	return err == nil && info.IsDir()
}
