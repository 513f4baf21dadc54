package actions_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlingo.dev/gitlingo/internal/actions"
)

func TestFindFile(t *testing.T) {
	t.Run("finds a nested file", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "src", "cobol", "hello.cbl"))

		path, ok, err := actions.FindFile(root, "hello.cbl")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, filepath.Join(root, "src", "cobol", "hello.cbl"), path)
	})

	t.Run("first match wins", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "b", "x.txt"))
		writeFile(t, filepath.Join(root, "a", "x.txt"))

		path, ok, err := actions.FindFile(root, "x.txt")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, filepath.Join(root, "a", "x.txt"), path)
	})

	t.Run("skips the .git directory", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, ".git", "config"))

		_, ok, err := actions.FindFile(root, "config")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("directories do not match", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "docs", "index.md"))

		_, ok, err := actions.FindFile(root, "docs")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("a missing root finds nothing", func(t *testing.T) {
		_, ok, err := actions.FindFile(filepath.Join(t.TempDir(), "absent"), "x.txt")
		require.NoError(t, err)
		require.False(t, ok)
	})
}
