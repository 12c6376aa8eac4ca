package workflow

import (
	"errors"

	"github.com/samzong/ga/internal/gitcmd"
)

var (
	ErrNotARepository  = errors.New("not a git repository")
	ErrInvalidBranch   = errors.New("invalid target branch")
	ErrEmptyMessage    = errors.New("commit message cannot be empty")
	ErrPromptCancelled = errors.New("prompt cancelled")
	ErrStagingFailed   = errors.New("git add failed")
	ErrCommitFailed    = errors.New("git commit failed")
	ErrPushFailed      = errors.New("git push failed")
)

// Step names the pipeline stage an error came from.
type Step string

const (
	StepValidate Step = "validate"
	StepStage    Step = "stage"
	StepMessage  Step = "message"
	StepCommit   Step = "commit"
	StepPush     Step = "push"
)

// StageError is returned for every pipeline failure. Result holds the git
// output when the failure came from a git command.
type StageError struct {
	Step   Step
	Result gitcmd.Result
	Err    error
}

func (e *StageError) Error() string {
	return e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}
