package actions

import (
	"fmt"

	gitlingoerrors "gitlingo.dev/gitlingo/internal/errors"
	"gitlingo.dev/gitlingo/internal/git"
	"gitlingo.dev/gitlingo/internal/runtime"
)

// BranchesOptions contains options for the branches command
type BranchesOptions struct {
	Target RepoTarget
}

// BranchesAction lists the local and remote-tracking branches of the working copy
func BranchesAction(ctx *runtime.Context, opts BranchesOptions) (Outcome, []git.Branch) {
	clonePath := opts.Target.ClonePath()
	if outcome, ok := requireGitRepo(ctx, clonePath); !ok {
		return report(ctx, outcome), nil
	}

	branches, err := ctx.Git.ListBranches(ctx.Context, clonePath)
	if err != nil {
		return report(ctx, Failed(ctx.T("Error listing branches in %s: %s", clonePath, gitlingoerrors.Stderr(err))).withCause(err)), nil
	}

	for _, b := range branches {
		ctx.Splog.Info(FormatBranch(b))
	}
	return report(ctx, Succeeded(ctx.T("Listed branches in repository %s.", clonePath))), branches
}

// FormatBranch renders a branch the way `git branch -a` does
func FormatBranch(b git.Branch) string {
	marker := " "
	if b.Current {
		marker = "*"
	}
	name := b.Name
	if b.Remote {
		name = "remotes/" + name
	}
	return fmt.Sprintf("%s %s", marker, name)
}
