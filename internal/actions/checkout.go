package actions

import (
	gitlingoerrors "gitlingo.dev/gitlingo/internal/errors"
	"gitlingo.dev/gitlingo/internal/git"
	"gitlingo.dev/gitlingo/internal/runtime"
)

// CheckoutOptions contains options for the checkout command
type CheckoutOptions struct {
	Target RepoTarget
	Branch string
	// Fallback is tried when Branch cannot be checked out. Empty uses the configured fallback.
	Fallback string
}

// CheckoutAction switches the working copy to Branch, or to the fallback branch when
// that fails. Branches are never created.
func CheckoutAction(ctx *runtime.Context, opts CheckoutOptions) Outcome {
	clonePath := opts.Target.ClonePath()
	if outcome, ok := requireGitRepo(ctx, clonePath); !ok {
		return report(ctx, outcome)
	}

	branchErr := ctx.Git.Checkout(ctx.Context, clonePath, opts.Branch)
	if branchErr == nil {
		return report(ctx, Succeeded(ctx.T("Checked out branch '%s'.", opts.Branch)))
	}
	ctx.Splog.Error(ctx.T("Error checking out branch '%s': %s", opts.Branch, gitlingoerrors.Stderr(branchErr)))

	fallback := opts.Fallback
	if fallback == "" {
		fallback = ctx.Config.FallbackBranch
	}
	fallbackErr := ctx.Git.Checkout(ctx.Context, clonePath, fallback)
	if fallbackErr == nil {
		return report(ctx, Succeeded(ctx.T("Checked out fallback branch '%s' successfully.", fallback)))
	}
	ctx.Splog.Error(ctx.T("Error checking out branch '%s': %s", fallback, gitlingoerrors.Stderr(fallbackErr)))

	err := gitlingoerrors.NewCheckoutError(opts.Branch, fallback, branchErr, fallbackErr)
	return report(ctx, Failed(ctx.T("Failed to checkout both '%s' and fallback branch '%s'.", opts.Branch, fallback)).withCause(err))
}

// requireGitRepo logs whether path is a git repository and returns the failure to report when it is not
func requireGitRepo(ctx *runtime.Context, path string) (Outcome, bool) {
	isRepo := git.IsGitRepo(path)
	ctx.Splog.Info(ctx.T("Checked if %s is a Git repository: %t", path, isRepo))
	if !isRepo {
		return Failed(ctx.T("Error: %s is not a valid Git repository.", path)).withCause(gitlingoerrors.ErrNotGitRepository), false
	}
	return Outcome{}, true
}
