package actions

import (
	gitlingoerrors "gitlingo.dev/gitlingo/internal/errors"
	"gitlingo.dev/gitlingo/internal/runtime"
)

// PushBranchOptions contains options for the push-branch command
type PushBranchOptions struct {
	Target RepoTarget
	Branch string
}

// PushBranchAction publishes Branch and sets its upstream
func PushBranchAction(ctx *runtime.Context, opts PushBranchOptions) Outcome {
	clonePath := opts.Target.ClonePath()
	if outcome, ok := requireGitRepo(ctx, clonePath); !ok {
		return report(ctx, outcome)
	}

	if err := ctx.Git.Push(ctx.Context, clonePath, ctx.Config.Remote, opts.Branch, true); err != nil {
		return report(ctx, Failed(ctx.T("Error pushing branch '%s': %s", opts.Branch, gitlingoerrors.Stderr(err))).withCause(err))
	}
	return report(ctx, Succeeded(ctx.T("Branch '%s' pushed to remote repository.", opts.Branch)))
}
