// Package workflow runs ga's stage → commit → push pipeline.
package workflow

import (
	"context"

	"github.com/samzong/ga/internal/git"
	"github.com/samzong/ga/internal/gitcmd"
)

// GitClient abstracts git operations for testability.
type GitClient interface {
	IsInsideRepository(path string) bool
	StageAll(ctx context.Context) (gitcmd.Result, error)
	Commit(ctx context.Context, message string, opts git.CommitOptions) (gitcmd.Result, error)
	Push(ctx context.Context, remote, branch string) (gitcmd.Result, error)
}

// Prompter reads one line of text from the user. It returns
// ErrPromptCancelled when the user aborts or input is exhausted.
type Prompter interface {
	ReadLine(ctx context.Context, title string) (string, error)
}
