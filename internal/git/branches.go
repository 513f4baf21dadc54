package git

import (
	"context"
)

// Branch describes a local or remote-tracking branch
type Branch struct {
	Name    string
	Hash    string
	Remote  bool
	Current bool
}

// ListBranches lists local and remote-tracking branches of the repository at repoPath.
// The refs are read with go-git rather than by parsing `git branch -a`.
func (r *CommandRunner) ListBranches(_ context.Context, repoPath string) ([]Branch, error) {
	repo, err := OpenRepository(repoPath)
	if err != nil {
		return nil, err
	}
	return repo.AllBranches()
}
