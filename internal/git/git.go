// Package git wraps the git operations ga performs on the working tree.
package git

import (
	"context"
	"errors"

	gogit "github.com/go-git/go-git/v5"
	"go.uber.org/zap"

	"github.com/samzong/ga/internal/gitcmd"
)

type Options struct {
	// Dir is the working directory git runs in. Empty means the process cwd.
	Dir    string
	Logger *zap.Logger
}

// commitEnv pins git's messages to English so an empty commit can be
// recognised from its output whatever the user's locale.
var commitEnv = []string{"LC_ALL=C"}

type Client struct {
	runner gitcmd.Runner
	logger *zap.Logger
}

// CommitOptions controls the flags passed to git commit.
type CommitOptions struct {
	Signoff  bool
	NoVerify bool
}

func NewClient(opts Options) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		runner: gitcmd.Runner{Dir: opts.Dir, Logger: logger},
		logger: logger,
	}
}

// IsInsideRepository reports whether path, or any parent of it, holds git
// metadata. No subprocess is spawned. Metadata that exists but cannot be
// read still counts; git itself reports the real problem later.
func (c *Client) IsInsideRepository(path string) bool {
	_, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err == nil {
		return true
	}
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		return false
	}
	c.logger.Debug("git metadata found but unreadable", zap.String("path", path), zap.Error(err))
	return true
}

// StageAll stages every change in the working tree, including deletions and
// untracked files, regardless of which subdirectory ga was started from.
func (c *Client) StageAll(ctx context.Context) (gitcmd.Result, error) {
	return c.runner.Run(ctx, "add", "--all")
}

func (c *Client) Commit(ctx context.Context, message string, opts CommitOptions) (gitcmd.Result, error) {
	return c.commitRunner().Run(ctx, buildCommitArgs(message, opts)...)
}

func (c *Client) commitRunner() gitcmd.Runner {
	return c.runner.WithEnv(commitEnv...)
}

func (c *Client) Push(ctx context.Context, remote, branch string) (gitcmd.Result, error) {
	return c.runner.Run(ctx, "push", remote, branch)
}

func buildCommitArgs(message string, opts CommitOptions) []string {
	args := []string{"commit"}
	if opts.Signoff {
		args = append(args, "-s")
	}
	if opts.NoVerify {
		args = append(args, "--no-verify")
	}
	return append(args, "-m", message)
}
