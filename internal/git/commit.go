package git

import (
	"context"
	"fmt"
)

// Commit creates a commit with the given message from the staged changes
func (r *CommandRunner) Commit(ctx context.Context, repoPath, message string) error {
	_, err := r.RunInDir(ctx, repoPath, "commit", "-m", message)
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
