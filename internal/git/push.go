package git

import (
	"context"
	"fmt"
)

// Push pushes branchName to remote. With setUpstream the branch is pushed with -u
// so later pulls track it.
func (r *CommandRunner) Push(ctx context.Context, repoPath, remote, branchName string, setUpstream bool) error {
	args := []string{"push"}
	if setUpstream {
		args = append(args, "-u")
	}
	args = append(args, remote, branchName)

	_, err := r.RunInDir(ctx, repoPath, args...)
	if err != nil {
		return fmt.Errorf("failed to push branch %s: %w", branchName, err)
	}
	return nil
}
