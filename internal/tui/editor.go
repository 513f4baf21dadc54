package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	gitlingoerrors "gitlingo.dev/gitlingo/internal/errors"
)

// DefaultEditor is launched when no editor is configured.
const DefaultEditor = "code"

// Editor opens a file for the user.
type Editor interface {
	Name() string
	Open(ctx context.Context, path string) error
}

// ExecEditor launches an editor binary found on PATH with the file as its only argument.
type ExecEditor struct {
	Command string
}

// NewExecEditor creates an editor for command. An empty command uses DefaultEditor.
func NewExecEditor(command string) *ExecEditor {
	if command == "" {
		command = DefaultEditor
	}
	return &ExecEditor{Command: command}
}

// Name returns the editor command.
func (e *ExecEditor) Name() string {
	return e.Command
}

// Open runs the editor on path and waits for it to exit.
func (e *ExecEditor) Open(ctx context.Context, path string) error {
	bin, err := exec.LookPath(e.Command)
	if err != nil {
		return fmt.Errorf("%w: %s", gitlingoerrors.ErrEditorNotInstalled, e.Command)
	}

	cmd := exec.CommandContext(ctx, bin, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("editor exited with error: %w", err)
		}
		return fmt.Errorf("failed to start editor: %w", err)
	}
	return nil
}
