package actions

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	gitlingoerrors "gitlingo.dev/gitlingo/internal/errors"
	"gitlingo.dev/gitlingo/internal/runtime"
)

// FindFile walks root for a file called name and returns the first match.
// .git directories are not searched. A missing root finds nothing.
func FindFile(root, name string) (string, bool, error) {
	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}

	var found string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() == name {
			found = path
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", false, gitlingoerrors.NewFileSystemError("walk", root, err)
	}
	return found, found != "", nil
}

// findFileLogged is FindFile with the search and its result written to the activity log
func findFileLogged(ctx *runtime.Context, root, name string) (string, bool, error) {
	ctx.Splog.Info(ctx.T("Searching for file '%s' in repository '%s'", name, root))
	path, ok, err := FindFile(root, name)
	switch {
	case err != nil:
		return "", false, err
	case ok:
		ctx.Splog.Info(ctx.T("File found: %s", path))
	default:
		ctx.Splog.Info(ctx.T("File '%s' not found in repository '%s'", name, root))
	}
	return path, ok, nil
}
