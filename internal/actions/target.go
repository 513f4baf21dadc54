package actions

import (
	"fmt"
	"path/filepath"
	"strings"

	gitlingoerrors "gitlingo.dev/gitlingo/internal/errors"
)

// RepoTarget identifies a remote repository and where its working copy lives
type RepoTarget struct {
	RepoName  string
	BaseURL   string
	LocalPath string
}

// NewRepoTarget validates repoName so that the clone path stays a direct child of localPath
func NewRepoTarget(repoName, baseURL, localPath string) (RepoTarget, error) {
	switch {
	case repoName == "", repoName == ".", repoName == "..":
		return RepoTarget{}, fmt.Errorf("%w: %q", gitlingoerrors.ErrInvalidRepoName, repoName)
	case strings.ContainsAny(repoName, `/\`):
		return RepoTarget{}, fmt.Errorf("%w: %q contains a path separator", gitlingoerrors.ErrInvalidRepoName, repoName)
	}
	return RepoTarget{RepoName: repoName, BaseURL: baseURL, LocalPath: localPath}, nil
}

// ValidateFileName checks that fileName is a single path element, so files created
// for it stay at the clone root
func ValidateFileName(fileName string) error {
	switch {
	case fileName == "", fileName == ".", fileName == "..":
		return fmt.Errorf("%w: %q", gitlingoerrors.ErrInvalidFileName, fileName)
	case strings.ContainsAny(fileName, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", gitlingoerrors.ErrInvalidFileName, fileName)
	}
	return nil
}

// RemoteURL returns <base_url>/<repo_name>.git
func (t RepoTarget) RemoteURL() string {
	return strings.TrimSuffix(t.BaseURL, "/") + "/" + t.RepoName + ".git"
}

// ClonePath returns <local_path>/<repo_name>
func (t RepoTarget) ClonePath() string {
	return filepath.Join(t.LocalPath, t.RepoName)
}
