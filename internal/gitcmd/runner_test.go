package gitcmd

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
}

func TestResultDetail(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   string
	}{
		{name: "prefers stderr", result: Result{Stdout: []byte("out"), Stderr: []byte(" err \n")}, want: "err"},
		{name: "falls back to stdout", result: Result{Stdout: []byte("nothing to commit\n")}, want: "nothing to commit"},
		{name: "empty", result: Result{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.Detail())
		})
	}
}

func TestResultSucceeded(t *testing.T) {
	assert.True(t, Result{}.Succeeded())
	assert.False(t, Result{ExitCode: 128}.Succeeded())
}

func TestRunCapturesOutput(t *testing.T) {
	requireGit(t)

	result, err := Runner{}.Run(context.Background(), "--version")
	require.NoError(t, err)
	assert.True(t, result.Succeeded())
	assert.Contains(t, result.StdoutString(true), "git version")
}

func TestRunReportsExitCode(t *testing.T) {
	requireGit(t)

	core, logs := observer.New(zap.DebugLevel)
	runner := Runner{Dir: t.TempDir(), Logger: zap.New(core), Env: []string{"GIT_CEILING_DIRECTORIES=/"}}

	result, err := runner.Run(context.Background(), "rev-parse", "--git-dir")
	require.NoError(t, err)
	assert.False(t, result.Succeeded())
	assert.NotZero(t, result.ExitCode)
	assert.NotEmpty(t, result.StderrString(true))
	assert.Equal(t, 1, logs.FilterMessage(commandFailureMessage).Len())
}

func TestRunnerWithEnv(t *testing.T) {
	base := Runner{Env: make([]string, 1, 4)}
	base.Env[0] = "GIT_CEILING_DIRECTORIES=/"

	first := base.WithEnv("GIT_AUTHOR_NAME=First Author")
	second := base.WithEnv("GIT_AUTHOR_NAME=Second Author")

	assert.Equal(t, []string{"GIT_CEILING_DIRECTORIES=/"}, base.Env)
	assert.Equal(t, []string{"GIT_CEILING_DIRECTORIES=/", "GIT_AUTHOR_NAME=First Author"}, first.Env)
	assert.Equal(t, []string{"GIT_CEILING_DIRECTORIES=/", "GIT_AUTHOR_NAME=Second Author"}, second.Env)
}

func TestRunnerWithEnvReachesGit(t *testing.T) {
	requireGit(t)

	runner := Runner{Dir: t.TempDir()}.WithEnv(
		"GIT_AUTHOR_NAME=Env Author",
		"GIT_AUTHOR_EMAIL=env@example.com",
	)
	result, err := runner.Run(context.Background(), "var", "GIT_AUTHOR_IDENT")
	require.NoError(t, err)
	require.True(t, result.Succeeded(), result.Detail())
	assert.Contains(t, result.StdoutString(true), "Env Author <env@example.com>")
}

func TestRunCancelledContext(t *testing.T) {
	requireGit(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Runner{}.Run(ctx, "--version")
	assert.ErrorIs(t, err, context.Canceled)
}
