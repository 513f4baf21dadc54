package actions_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlingo.dev/gitlingo/internal/actions"
	gitlingoerrors "gitlingo.dev/gitlingo/internal/errors"
)

func gitError(stderr string) error {
	return gitlingoerrors.NewGitCommandError("git", nil, "", stderr, errors.New("exit status 1"))
}

// newTarget returns a target for repository demo inside a fresh workspace
func newTarget(t *testing.T) actions.RepoTarget {
	t.Helper()
	workspace := filepath.Join(t.TempDir(), "work")
	target, err := actions.NewRepoTarget("demo", "https://git.example.com/org", workspace)
	require.NoError(t, err)
	return target
}

// makeGitDir creates an empty directory at the clone path that looks like a working copy
func makeGitDir(t *testing.T, target actions.RepoTarget) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(target.ClonePath(), ".git"), 0750))
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
	require.NoError(t, os.WriteFile(path, []byte("content\n"), 0600))
}
