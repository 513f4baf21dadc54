package actions

import (
	"errors"

	gitlingoerrors "gitlingo.dev/gitlingo/internal/errors"
	"gitlingo.dev/gitlingo/internal/runtime"
)

// OpenOptions contains options for the open command
type OpenOptions struct {
	Target   RepoTarget
	FileName string
}

// OpenAction finds FileName in the working copy and opens it in the configured editor
func OpenAction(ctx *runtime.Context, opts OpenOptions) Outcome {
	target := opts.Target
	clonePath := target.ClonePath()
	ctx.Splog.Info(ctx.T("Starting process for repository: %s at %s", target.RepoName, target.BaseURL))
	ctx.Splog.Info(ctx.T("Local repository path: %s", clonePath))

	path, found, err := findFileLogged(ctx, clonePath, opts.FileName)
	if err != nil {
		return report(ctx, Failed(ctx.T("File '%s' not found in repository '%s'.", opts.FileName, target.RepoName)).WithError(err))
	}
	if !found {
		return report(ctx, Failed(ctx.T("File '%s' not found in repository '%s'.", opts.FileName, target.RepoName)))
	}

	ctx.Splog.Info(ctx.T("Attempting to open file in editor: %s", path))
	if err := ctx.Editor.Open(ctx.Context, path); err != nil {
		if errors.Is(err, gitlingoerrors.ErrEditorNotInstalled) {
			return report(ctx, Failed(ctx.T("Editor '%s' is not installed.", ctx.Editor.Name())).withCause(err))
		}
		return report(ctx, Failed(ctx.T("Error opening file in editor: %s", err)).withCause(err))
	}
	ctx.Splog.Info(ctx.T("File opened successfully in editor: %s", path))
	return report(ctx, Succeeded(ctx.T("Successfully opened: %s", path)))
}
