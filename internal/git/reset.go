package git

import (
	"context"
	"fmt"
)

// HardReset performs a hard reset of the working copy to a revision
func (r *CommandRunner) HardReset(ctx context.Context, repoPath, revision string) error {
	_, err := r.RunInDir(ctx, repoPath, "reset", "--hard", revision)
	if err != nil {
		return fmt.Errorf("failed to hard reset to %s: %w", revision, err)
	}
	return nil
}
