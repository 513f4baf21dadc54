package git

import (
	"context"
	"fmt"

	gitlingoerrors "gitlingo.dev/gitlingo/internal/errors"
)

// Checkout checks out an existing branch. It never creates one.
func (r *CommandRunner) Checkout(ctx context.Context, repoPath, branchName string) error {
	_, err := r.RunInDir(ctx, repoPath, "checkout", branchName)
	if err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", branchName, err)
	}
	return nil
}

// CreateAndCheckoutBranch creates and checks out a new branch
func (r *CommandRunner) CreateAndCheckoutBranch(ctx context.Context, repoPath, branchName string) error {
	_, err := r.RunInDir(ctx, repoPath, "checkout", "-b", branchName)
	if err != nil {
		return fmt.Errorf("failed to create and checkout branch %s: %w", branchName, err)
	}
	return nil
}

// CurrentBranch resolves the symbolic ref of HEAD.
// A detached HEAD yields an error matching ErrDetachedHead.
func (r *CommandRunner) CurrentBranch(ctx context.Context, repoPath string) (string, error) {
	branch, err := r.RunInDir(ctx, repoPath, "symbolic-ref", "--short", "HEAD")
	if err != nil {
		return "", fmt.Errorf("%w: %w", gitlingoerrors.ErrDetachedHead, err)
	}
	return branch, nil
}
