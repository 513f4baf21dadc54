package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer renders the final status line of a command.
type Printer struct {
	writer  io.Writer
	success lipgloss.Style
	failure lipgloss.Style
}

// NewPrinter creates a status printer for w. Colors are dropped when w is not a terminal.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		writer:  w,
		success: r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		failure: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

// Result prints msg styled for success or failure.
func (p *Printer) Result(success bool, msg string) {
	style := p.failure
	if success {
		style = p.success
	}
	_, _ = fmt.Fprintln(p.writer, style.Render(msg))
}

// Plain prints msg without styling.
func (p *Printer) Plain(msg string) {
	_, _ = fmt.Fprintln(p.writer, msg)
}
