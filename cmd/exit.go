package cmd

import (
	"context"
	"errors"
	"io"

	"github.com/samzong/ga/internal/ui"
	"github.com/samzong/ga/internal/workflow"
)

// Process exit codes. Each failing pipeline stage has its own code so
// scripts can tell them apart.
const (
	ExitSuccess        = 0
	ExitFailure        = 1
	ExitNotARepository = 2
	ExitEmptyMessage   = 3
	ExitStagingFailed  = 4
	ExitCommitFailed   = 5
	ExitPushFailed     = 6
	ExitInterrupted    = 130
)

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	case errors.Is(err, workflow.ErrNotARepository), errors.Is(err, workflow.ErrInvalidBranch):
		return ExitNotARepository
	case errors.Is(err, workflow.ErrEmptyMessage):
		return ExitEmptyMessage
	case errors.Is(err, workflow.ErrStagingFailed):
		return ExitStagingFailed
	case errors.Is(err, workflow.ErrCommitFailed):
		return ExitCommitFailed
	case errors.Is(err, workflow.ErrPushFailed):
		return ExitPushFailed
	default:
		return ExitFailure
	}
}

// PrintError writes err to w with a highlighted "Error:" label.
func PrintError(w io.Writer, err error) {
	ui.NewPrinter(w).Error(err)
}
