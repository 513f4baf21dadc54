package git

import (
	"context"
	"fmt"
	"strings"
)

// Status returns the porcelain status of the working copy. Empty means clean.
func (r *CommandRunner) Status(ctx context.Context, repoPath string) (string, error) {
	output, err := r.RunInDir(ctx, repoPath, "status", "--porcelain")
	if err != nil {
		return "", fmt.Errorf("failed to read status: %w", err)
	}
	return output, nil
}

// HasChanges reports whether a porcelain status lists any pending change
func HasChanges(status string) bool {
	return strings.TrimSpace(status) != ""
}

// StageAll stages all changes including untracked files
func (r *CommandRunner) StageAll(ctx context.Context, repoPath string) error {
	_, err := r.RunInDir(ctx, repoPath, "add", "-A")
	if err != nil {
		return fmt.Errorf("failed to stage all changes: %w", err)
	}
	return nil
}
