package actions

import (
	"os"
	"path/filepath"

	gitlingoerrors "gitlingo.dev/gitlingo/internal/errors"
	"gitlingo.dev/gitlingo/internal/git"
	"gitlingo.dev/gitlingo/internal/runtime"
)

// CommitOptions contains options for the commit command
type CommitOptions struct {
	Target   RepoTarget
	FileName string
	Message  string
}

// CommitAction makes sure FileName exists in the working copy, then commits every
// pending change with Message and pushes the current branch. A clean working copy
// is reported as a successful no-op.
//
// An existing working copy is used as-is; it is not pulled first.
func CommitAction(ctx *runtime.Context, opts CommitOptions) Outcome {
	target := opts.Target
	clonePath := target.ClonePath()
	ctx.Splog.Info(ctx.T("Starting process for repository: %s", target.RepoName))

	if err := ValidateFileName(opts.FileName); err != nil {
		return report(ctx, Failed(ctx.T("Invalid file name '%s'.", opts.FileName)).withCause(err))
	}

	if outcome, ok := ensureClone(ctx, target); !ok {
		return report(ctx, outcome)
	}

	if outcome, ok := ensureFile(ctx, clonePath, opts.FileName); !ok {
		return report(ctx, outcome)
	}

	branch, outcome, ok := ensureOnBranch(ctx, clonePath)
	if !ok {
		return report(ctx, outcome)
	}

	ctx.Splog.Info(ctx.T("Checking for pending changes"))
	status, err := ctx.Git.Status(ctx.Context, clonePath)
	if err != nil {
		return report(ctx, gitFailure(ctx, err))
	}
	if !git.HasChanges(status) {
		return report(ctx, Succeeded(ctx.T("No changes detected. Please make changes before committing.")))
	}

	ctx.Splog.Info(ctx.T("Staging all changes"))
	if err := ctx.Git.StageAll(ctx.Context, clonePath); err != nil {
		return report(ctx, gitFailure(ctx, err))
	}

	ctx.Splog.Info(ctx.T("Committing changes with message: %s", opts.Message))
	if err := ctx.Git.Commit(ctx.Context, clonePath, opts.Message); err != nil {
		return report(ctx, gitFailure(ctx, err))
	}

	ctx.Splog.Info(ctx.T("Pushing changes to the remote repository"))
	if err := ctx.Git.Push(ctx.Context, clonePath, ctx.Config.Remote, branch, false); err != nil {
		return report(ctx, gitFailure(ctx, err))
	}
	return report(ctx, Succeeded(ctx.T("Changes pushed to the remote repository successfully.")))
}

func gitFailure(ctx *runtime.Context, err error) Outcome {
	return Failed(ctx.T("Error during Git operations: %s", gitlingoerrors.Stderr(err))).withCause(err)
}

// ensureClone clones the target when nothing is at its clone path
func ensureClone(ctx *runtime.Context, target RepoTarget) (Outcome, bool) {
	clonePath := target.ClonePath()
	state, err := git.StateOf(clonePath)
	if err != nil {
		return Failed(ctx.T("Error reading repository state for %s: %s", clonePath, err)).withCause(err), false
	}

	switch state {
	case git.StateAbsent:
		ctx.Splog.Info(ctx.T("Cloning repository from %s to %s", target.RemoteURL(), clonePath))
		if err := ctx.Git.Clone(ctx.Context, target.RemoteURL(), clonePath); err != nil {
			return Failed(ctx.T("Error cloning repository.")).WithError(err), false
		}
		ctx.Splog.Info(ctx.T("Repository cloned successfully."))
	case git.StatePresentNotGitRepo:
		return Failed(ctx.T("Error: %s is not a valid Git repository.", clonePath)).withCause(gitlingoerrors.ErrNotGitRepository), false
	default:
		ctx.Splog.Info(ctx.T("Repository %s already exists at %s", target.RepoName, clonePath))
		ctx.Splog.Warn(ctx.T("Working copy reused as-is; remote changes were not pulled before committing."))
	}
	return Outcome{}, true
}

// ensureFile creates an empty fileName at the clone root unless it exists somewhere in the clone
func ensureFile(ctx *runtime.Context, clonePath, fileName string) (Outcome, bool) {
	_, found, err := findFileLogged(ctx, clonePath, fileName)
	if err != nil {
		return Failed(ctx.T("Error creating file %s: %s", fileName, err)).withCause(err), false
	}
	if found {
		ctx.Splog.Info(ctx.T("File %s found in repository", fileName))
		return Outcome{}, true
	}

	path := filepath.Join(clonePath, fileName)
	if err := os.WriteFile(path, nil, 0644); err != nil {
		fsErr := gitlingoerrors.NewFileSystemError("create", path, err)
		return Failed(ctx.T("Error creating file %s: %s", fileName, err)).withCause(fsErr), false
	}
	ctx.Splog.Info(ctx.T("File %s not found. Created new file at %s", fileName, path))
	return Outcome{}, true
}

// ensureOnBranch returns the current branch, first moving a detached HEAD onto the
// configured detached-head branch
func ensureOnBranch(ctx *runtime.Context, clonePath string) (string, Outcome, bool) {
	branch, err := ctx.Git.CurrentBranch(ctx.Context, clonePath)
	if err == nil {
		ctx.Splog.Info(ctx.T("Currently on branch: %s", branch))
		return branch, Outcome{}, true
	}

	ctx.Splog.Info(ctx.T("Repository is in a detached HEAD state."))
	branch = ctx.Config.DetachedBranch
	if err := ctx.Git.CreateAndCheckoutBranch(ctx.Context, clonePath, branch); err != nil {
		return "", Failed(ctx.T("Error creating branch %s: %s", branch, gitlingoerrors.Stderr(err))).withCause(err), false
	}
	ctx.Splog.Info(ctx.T("Switched to a new branch: %s", branch))
	return branch, Outcome{}, true
}
