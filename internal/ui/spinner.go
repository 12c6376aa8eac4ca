package ui

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner wraps briandowns/spinner and stays silent unless w is a terminal.
type Spinner struct {
	s *spinner.Spinner
}

// NewSpinner creates a spinner that writes to w.
func NewSpinner(w io.Writer, message string) *Spinner {
	if !IsTerminal(w) {
		return &Spinner{}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message
	return &Spinner{s: s}
}

func (sp *Spinner) Start() {
	if sp.s != nil {
		sp.s.Start()
	}
}

func (sp *Spinner) Stop() {
	if sp.s != nil {
		sp.s.Stop()
	}
}
