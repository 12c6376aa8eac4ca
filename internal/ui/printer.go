// Package ui renders ga's terminal output.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Printer writes step, success, info and error lines. Colors are only
// emitted when the destination is a terminal and NO_COLOR is unset.
type Printer struct {
	w        io.Writer
	arrow    *color.Color
	step     *color.Color
	mark     *color.Color
	success  *color.Color
	info     *color.Color
	errLabel *color.Color
}

func NewPrinter(w io.Writer) *Printer {
	p := &Printer{
		w:        w,
		arrow:    color.New(color.FgBlue, color.Bold),
		step:     color.New(color.FgCyan),
		mark:     color.New(color.FgGreen, color.Bold),
		success:  color.New(color.FgGreen),
		info:     color.New(color.FgYellow),
		errLabel: color.New(color.FgRed, color.Bold),
	}
	if color.NoColor || !IsTerminal(w) {
		for _, c := range []*color.Color{p.arrow, p.step, p.mark, p.success, p.info, p.errLabel} {
			c.DisableColor()
		}
	}
	return p
}

// Writer returns the underlying destination.
func (p *Printer) Writer() io.Writer {
	return p.w
}

// Step announces an operation that is about to run.
func (p *Printer) Step(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.arrow.Sprint("→"), p.step.Sprintf(format, args...))
}

func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.mark.Sprint("✓"), p.success.Sprintf(format, args...))
}

func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.info.Sprint("•"), p.info.Sprintf(format, args...))
}

// Relay copies raw git output through unchanged apart from trailing newlines.
func (p *Printer) Relay(output string) {
	output = strings.TrimRight(output, "\r\n")
	if output == "" {
		return
	}
	fmt.Fprintln(p.w, output)
}

func (p *Printer) Error(err error) {
	fmt.Fprintf(p.w, "%s %v\n", p.errLabel.Sprint("Error:"), err)
}
