package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// StdinConfirmer asks on the terminal when there is one and otherwise reads a
// single line from In. Only the literal answer "yes" (any case) confirms.
type StdinConfirmer struct {
	In  io.Reader
	Out io.Writer

	// Interactive selects the survey prompt. NewStdinConfirmer sets it from isatty.
	Interactive bool

	reader *bufio.Reader
}

// NewStdinConfirmer creates a confirmer on the process standard streams
func NewStdinConfirmer() *StdinConfirmer {
	return &StdinConfirmer{
		In:          os.Stdin,
		Out:         os.Stdout,
		Interactive: IsTTY(),
	}
}

// Confirm asks prompt and reports whether the answer was "yes".
func (c *StdinConfirmer) Confirm(prompt string) (bool, error) {
	if c.Interactive {
		return c.confirmSurvey(prompt)
	}
	return c.confirmLine(prompt)
}

func (c *StdinConfirmer) confirmSurvey(prompt string) (bool, error) {
	var answer string
	err := survey.AskOne(&survey.Input{Message: strings.TrimSpace(prompt)}, &answer)
	if errors.Is(err, terminal.InterruptErr) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	return IsYes(answer), nil
}

func (c *StdinConfirmer) confirmLine(prompt string) (bool, error) {
	if c.Out != nil {
		_, _ = fmt.Fprint(c.Out, prompt)
	}
	if c.In == nil {
		return false, nil
	}
	if c.reader == nil {
		c.reader = bufio.NewReader(c.In)
	}
	line, err := c.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	return IsYes(line), nil
}

// IsYes reports whether answer is "yes", ignoring case and surrounding space.
func IsYes(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "yes")
}

// StaticConfirmer answers every prompt with Answer and records the prompts.
type StaticConfirmer struct {
	Answer  bool
	Err     error
	Prompts []string
}

// Confirm records prompt and returns the fixed answer.
func (c *StaticConfirmer) Confirm(prompt string) (bool, error) {
	c.Prompts = append(c.Prompts, prompt)
	return c.Answer, c.Err
}
