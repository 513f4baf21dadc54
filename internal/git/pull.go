package git

import (
	"context"
	"fmt"
)

// FetchPrune fetches from the default remote, pruning remote-tracking refs
// whose branches were deleted upstream so they cannot block a later pull.
func (r *CommandRunner) FetchPrune(ctx context.Context, repoPath string) error {
	_, err := r.RunInDir(ctx, repoPath, "fetch", "--prune")
	if err != nil {
		return fmt.Errorf("failed to fetch: %w", err)
	}
	return nil
}

// Pull pulls the current branch from its upstream
func (r *CommandRunner) Pull(ctx context.Context, repoPath string) error {
	_, err := r.RunInDir(ctx, repoPath, "pull")
	if err != nil {
		return fmt.Errorf("failed to pull: %w", err)
	}
	return nil
}
