package workflow

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// NewPrompter picks a terminal input field when in is a TTY and a plain line
// reader otherwise, so piped input still works.
func NewPrompter(in *os.File, out io.Writer) Prompter {
	if term.IsTerminal(int(in.Fd())) {
		return &HuhPrompter{Input: in, Output: out}
	}
	return NewLinePrompter(in, out)
}

// HuhPrompter asks for a line of text with a charmbracelet/huh input field.
type HuhPrompter struct {
	Input  io.Reader
	Output io.Writer
}

func (p *HuhPrompter) ReadLine(ctx context.Context, title string) (string, error) {
	var value string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title(title).Value(&value),
	)).WithShowHelp(false)
	if p.Input != nil {
		form = form.WithInput(p.Input)
	}
	if p.Output != nil {
		form = form.WithOutput(p.Output)
	}

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrPromptCancelled
		}
		return "", err
	}
	return value, nil
}

// LinePrompter writes the title and reads one newline-terminated line.
type LinePrompter struct {
	reader *bufio.Reader
	writer io.Writer
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{reader: bufio.NewReader(in), writer: out}
}

type lineResult struct {
	line string
	err  error
}

func (p *LinePrompter) ReadLine(ctx context.Context, title string) (string, error) {
	if p.writer != nil {
		if _, err := fmt.Fprintf(p.writer, "%s: ", title); err != nil {
			return "", err
		}
	}

	// The read runs in its own goroutine so an interrupt is not stuck behind a
	// blocking stdin read. On cancel the goroutine is abandoned, still blocked
	// on the reader; the process exits right after.
	done := make(chan lineResult, 1)
	go func() {
		line, err := p.reader.ReadString('\n')
		done <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		if res.err != nil {
			if errors.Is(res.err, io.EOF) {
				if res.line == "" {
					return "", ErrPromptCancelled
				}
			} else {
				return "", fmt.Errorf("failed to read user input: %w", res.err)
			}
		}
		return strings.TrimRight(res.line, "\r\n"), nil
	}
}
