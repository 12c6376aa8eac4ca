package workflow

import (
	"context"

	"github.com/samzong/ga/internal/git"
	"github.com/samzong/ga/internal/gitcmd"
)

type pushCall struct {
	remote string
	branch string
}

type commitCall struct {
	message string
	opts    git.CommitOptions
}

// fakeGitClient returns scripted results and records every call.
type fakeGitClient struct {
	insideRepo bool

	stageResult  gitcmd.Result
	stageErr     error
	commitResult gitcmd.Result
	commitErr    error
	pushResult   gitcmd.Result
	pushErr      error

	probedPaths []string
	stageCalls  int
	commitCalls []commitCall
	pushCalls   []pushCall
}

func newFakeGitClient() *fakeGitClient {
	return &fakeGitClient{insideRepo: true}
}

func (f *fakeGitClient) IsInsideRepository(path string) bool {
	f.probedPaths = append(f.probedPaths, path)
	return f.insideRepo
}

func (f *fakeGitClient) StageAll(context.Context) (gitcmd.Result, error) {
	f.stageCalls++
	return f.stageResult, f.stageErr
}

func (f *fakeGitClient) Commit(_ context.Context, message string, opts git.CommitOptions) (gitcmd.Result, error) {
	f.commitCalls = append(f.commitCalls, commitCall{message: message, opts: opts})
	return f.commitResult, f.commitErr
}

func (f *fakeGitClient) Push(_ context.Context, remote, branch string) (gitcmd.Result, error) {
	f.pushCalls = append(f.pushCalls, pushCall{remote: remote, branch: branch})
	return f.pushResult, f.pushErr
}

// scriptedPrompter answers every ReadLine with the same reply.
type scriptedPrompter struct {
	reply string
	err   error
	calls int
}

func (p *scriptedPrompter) ReadLine(context.Context, string) (string, error) {
	p.calls++
	return p.reply, p.err
}
