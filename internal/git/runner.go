package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	gitlingoerrors "gitlingo.dev/gitlingo/internal/errors"
)

// Runner defines the git operations used by the actions.
// Every repository-scoped method takes the path of the working copy it operates on.
type Runner interface {
	// Remote synchronization
	Clone(ctx context.Context, url, dir string) error
	FetchPrune(ctx context.Context, repoPath string) error
	Pull(ctx context.Context, repoPath string) error
	HardReset(ctx context.Context, repoPath, revision string) error
	Push(ctx context.Context, repoPath, remote, branchName string, setUpstream bool) error

	// Branch management
	Checkout(ctx context.Context, repoPath, branchName string) error
	CreateAndCheckoutBranch(ctx context.Context, repoPath, branchName string) error
	CurrentBranch(ctx context.Context, repoPath string) (string, error)
	ListBranches(ctx context.Context, repoPath string) ([]Branch, error)

	// Working copy
	Status(ctx context.Context, repoPath string) (string, error)
	StageAll(ctx context.Context, repoPath string) error
	Commit(ctx context.Context, repoPath, message string) error
}

// CommandRunner handles execution of git commands
type CommandRunner struct {
	// Timeout bounds each command when the caller's context has no deadline. Zero means no bound.
	Timeout time.Duration
}

// NewCommandRunner creates a new CommandRunner
func NewCommandRunner(timeout time.Duration) *CommandRunner {
	return &CommandRunner{Timeout: timeout}
}

var _ Runner = (*CommandRunner)(nil)

// Run executes a git command with the given context and returns the trimmed output
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, "", args...)
}

// RunInDir executes a git command against the repository at repoPath using git -C.
func (r *CommandRunner) RunInDir(ctx context.Context, repoPath string, args ...string) (string, error) {
	return r.runInternal(ctx, repoPath, args...)
}

func (r *CommandRunner) runInternal(ctx context.Context, repoPath string, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if _, ok := ctx.Deadline(); !ok && r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	fullArgs := args
	if repoPath != "" {
		fullArgs = append([]string{"-C", repoPath}, args...)
	}

	cmd := exec.CommandContext(ctx, "git", fullArgs...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", gitlingoerrors.NewGitCommandError("git", fullArgs, stdout.String(), stderr.String(), ctx.Err())
		}
		return "", gitlingoerrors.NewGitCommandError("git", fullArgs, stdout.String(), stderr.String(), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}
