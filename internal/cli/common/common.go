// Package common provides shared helper functions for CLI commands.
package common

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gitlingo.dev/gitlingo/internal/actions"
	"gitlingo.dev/gitlingo/internal/runtime"
	"gitlingo.dev/gitlingo/internal/tui"
)

// ErrCommandFailed is returned by a command whose outcome was a failure. The
// status line has already been printed, so callers only set the exit code.
var ErrCommandFailed = errors.New("command failed")

// GlobalFlags holds the persistent flags of the root command and the base
// runtime options every command starts from.
type GlobalFlags struct {
	ConfigPath    string
	Debug         bool
	TranslatorURL string

	// Base is copied for every invocation before flags and arguments are applied.
	Base runtime.Options
}

// Invocation is the repository-scoped part of a command line.
type Invocation struct {
	RepoName   string
	BaseURL    string
	ActivePath string
	Probe      string
}

// NewContext builds the runtime context for one command invocation.
func (g *GlobalFlags) NewContext(cmd *cobra.Command, activePath, probe string) (*runtime.Context, error) {
	opts := g.Base
	opts.ActivePath = activePath
	opts.Probe = probe
	opts.ConfigPath = g.ConfigPath
	opts.Debug = g.Debug
	opts.TranslatorURL = g.TranslatorURL
	if opts.Console == nil {
		opts.Console = cmd.ErrOrStderr()
	}
	if opts.Stdout == nil {
		opts.Stdout = cmd.OutOrStdout()
	}
	if opts.Confirmer == nil {
		opts.Confirmer = newConfirmer(cmd)
	}
	return runtime.NewContext(cmd.Context(), opts)
}

// Run builds the context and target for inv, runs fn and prints its outcome.
// A failure outcome is reported as ErrCommandFailed.
func Run(cmd *cobra.Command, g *GlobalFlags, inv Invocation, fn func(ctx *runtime.Context, target actions.RepoTarget) actions.Outcome) error {
	ctx, err := g.NewContext(cmd, inv.ActivePath, inv.Probe)
	if err != nil {
		return err
	}

	defer reportLogErr(cmd, ctx)

	target, err := actions.NewRepoTarget(inv.RepoName, inv.BaseURL, inv.ActivePath)
	if err != nil {
		ctx.Splog.Error("%v", err)
		ctx.Printer.Result(false, err.Error())
		return ErrCommandFailed
	}

	outcome := fn(ctx, target)
	ctx.Printer.Result(outcome.Success, outcome.Message)
	if !outcome.Success {
		return ErrCommandFailed
	}
	return nil
}

// reportLogErr warns on stderr when a log message could not be written. It does not
// change the command's outcome.
func reportLogErr(cmd *cobra.Command, ctx *runtime.Context) {
	if err := ctx.Splog.Err(); err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to write log: %v\n", err)
	}
}

func newConfirmer(cmd *cobra.Command) tui.Confirmer {
	in := cmd.InOrStdin()
	interactive := false
	if f, ok := in.(*os.File); ok {
		interactive = tui.IsTerminal(f) && tui.IsTerminal(os.Stdout)
	}
	return &tui.StdinConfirmer{In: in, Out: cmd.ErrOrStderr(), Interactive: interactive}
}
