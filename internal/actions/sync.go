package actions

import (
	"os"

	gitlingoerrors "gitlingo.dev/gitlingo/internal/errors"
	"gitlingo.dev/gitlingo/internal/git"
	"gitlingo.dev/gitlingo/internal/runtime"
)

// SyncOptions contains options for the sync command
type SyncOptions struct {
	Target RepoTarget
	// Branch is the reset target used when pulling fails. Empty uses the configured default.
	Branch string
}

// SyncAction makes sure an up-to-date working copy exists at the target's clone path.
//
//	absent               clone
//	git repository       fetch --prune, then pull (reset to <remote>/<branch> on failure)
//	other directory      ask, then delete and clone
func SyncAction(ctx *runtime.Context, opts SyncOptions) Outcome {
	clonePath := opts.Target.ClonePath()

	state, err := git.StateOf(clonePath)
	if err != nil {
		return report(ctx, Failed(ctx.T("Error reading repository state for %s: %s", clonePath, err)).withCause(err))
	}
	ctx.Splog.Debug("Working copy %s is %s", clonePath, state)

	switch state {
	case git.StateValidGitRepo:
		branch := opts.Branch
		if branch == "" {
			branch = ctx.Config.DefaultBranch
		}
		return pullLatest(ctx, clonePath, branch)
	case git.StatePresentNotGitRepo:
		deleted, outcome := deleteFolder(ctx, clonePath)
		if !deleted {
			return report(ctx, outcome)
		}
	}
	return report(ctx, cloneRepo(ctx, opts.Target))
}

func cloneRepo(ctx *runtime.Context, target RepoTarget) Outcome {
	ctx.Splog.Info(ctx.T("Cloning repository..."))
	if err := ctx.Git.Clone(ctx.Context, target.RemoteURL(), target.ClonePath()); err != nil {
		return Failed(ctx.T("Error cloning repository.")).WithError(err)
	}
	return Succeeded(ctx.T("Repository cloned successfully."))
}

// pullLatest reports its own outcome so that the failure is logged before the recovery attempt
func pullLatest(ctx *runtime.Context, clonePath, branch string) Outcome {
	ctx.Splog.Info(ctx.T("Repository already cloned. Pulling latest changes..."))

	err := ctx.Git.FetchPrune(ctx.Context, clonePath)
	if err == nil {
		err = ctx.Git.Pull(ctx.Context, clonePath)
	}
	if err == nil {
		return report(ctx, Succeeded(ctx.T("Latest changes pulled successfully.")))
	}

	failed := report(ctx, Failed(ctx.T("Error pulling latest changes.")).WithError(err))

	// The reset does not change the outcome; it only leaves the copy usable.
	revision := ctx.Config.Remote + "/" + branch
	ctx.Splog.Info(ctx.T("Attempting best-effort recovery: resetting to %s", revision))
	if resetErr := ctx.Git.HardReset(ctx.Context, clonePath, revision); resetErr != nil {
		ctx.Splog.Warn(ctx.T("Best-effort recovery failed: %s", gitlingoerrors.Stderr(resetErr)))
	} else {
		ctx.Splog.Info(ctx.T("Best-effort recovery succeeded: working copy reset to %s.", revision))
	}
	return failed
}

// deleteFolder asks before removing a directory that is in the way of a clone
func deleteFolder(ctx *runtime.Context, path string) (bool, Outcome) {
	confirmed, err := ctx.Confirmer.Confirm(ctx.T("The folder '%s' is not a git repository. Do you want to delete it? (yes/no): ", path))
	if err != nil {
		ctx.Splog.Debug("Confirmation failed: %v", err)
	}
	if err != nil || !confirmed {
		return false, Failed(ctx.T("Operation canceled.")).withCause(gitlingoerrors.ErrOperationCanceled)
	}

	if err := os.RemoveAll(path); err != nil {
		fsErr := gitlingoerrors.NewFileSystemError("remove", path, err)
		return false, Failed(ctx.T("Error deleting folder '%s'.", path)).WithError(fsErr)
	}
	ctx.Splog.Info(ctx.T("Folder deleted."))
	return true, Outcome{}
}
