package actions

import (
	gitlingoerrors "gitlingo.dev/gitlingo/internal/errors"
	"gitlingo.dev/gitlingo/internal/runtime"
)

// Outcome is the localized result of an action
type Outcome struct {
	Success bool
	Message string
	// Detail is the tool output explaining a failure. It is logged, not printed.
	Detail string
	Err    error
}

// Succeeded creates a successful outcome
func Succeeded(msg string) Outcome {
	return Outcome{Success: true, Message: msg}
}

// Failed creates a failed outcome
func Failed(msg string) Outcome {
	return Outcome{Message: msg}
}

// WithError attaches err and its git stderr to the outcome
func (o Outcome) WithError(err error) Outcome {
	o.Err = err
	o.Detail = gitlingoerrors.Stderr(err)
	return o
}

// withCause records err without adding detail, for messages that already describe it
func (o Outcome) withCause(err error) Outcome {
	o.Err = err
	return o
}

// report appends the outcome to the activity log and returns it
func report(ctx *runtime.Context, o Outcome) Outcome {
	switch {
	case o.Success:
		ctx.Splog.Info(o.Message)
	case o.Detail != "":
		ctx.Splog.Error("%s - %s", o.Message, o.Detail)
	default:
		ctx.Splog.Error(o.Message)
	}
	return o
}
