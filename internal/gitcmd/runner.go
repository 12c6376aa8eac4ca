package gitcmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

const (
	commandStartMessage   = "git command starting"
	commandSuccessMessage = "git command completed"
	commandFailureMessage = "git command returned non-zero status"
	commandErrorMessage   = "git command could not run"
)

// Runner executes git commands with shared logging and output handling.
type Runner struct {
	Dir    string
	Env    []string
	Logger *zap.Logger
}

// Result contains the exit status and captured stdout/stderr for a git command.
type Result struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Succeeded reports whether the command exited with status zero.
func (r Result) Succeeded() bool {
	return r.ExitCode == 0
}

func (r Result) StdoutString(trim bool) string {
	output := string(r.Stdout)
	if trim {
		return strings.TrimSpace(output)
	}
	return output
}

func (r Result) StderrString(trim bool) string {
	output := string(r.Stderr)
	if trim {
		return strings.TrimSpace(output)
	}
	return output
}

// Detail returns the most useful diagnostic text: stderr, or stdout when
// stderr is empty.
func (r Result) Detail() string {
	if detail := r.StderrString(true); detail != "" {
		return detail
	}
	return r.StdoutString(true)
}

// WithEnv returns a copy of r that adds env to the variables it already sets.
func (r Runner) WithEnv(env ...string) Runner {
	merged := make([]string, 0, len(r.Env)+len(env))
	merged = append(merged, r.Env...)
	r.Env = append(merged, env...)
	return r
}

func (r Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

func (r Runner) command(ctx context.Context, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, "git", args...)
	if r.Dir != "" {
		cmd.Dir = r.Dir
	}
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}
	return cmd
}

// Run executes a git command and captures stdout/stderr.
//
// A non-zero exit is reported through Result.ExitCode with a nil error. The
// error is reserved for commands that could not be started or were killed
// because ctx was cancelled.
func (r Runner) Run(ctx context.Context, args ...string) (Result, error) {
	log := r.logger()
	log.Debug(commandStartMessage,
		zap.Strings("arguments", args),
		zap.String("working_directory", r.Dir),
	)

	cmd := r.command(ctx, args...)
	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	result := Result{Stdout: outBuf.Bytes(), Stderr: errBuf.Bytes()}
	if err == nil {
		log.Debug(commandSuccessMessage, zap.Strings("arguments", args), zap.Int("exit_code", 0))
		return result, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		log.Debug(commandErrorMessage, zap.Strings("arguments", args), zap.Error(ctxErr))
		return result, ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		log.Debug(commandFailureMessage,
			zap.Strings("arguments", args),
			zap.Int("exit_code", result.ExitCode),
			zap.String("stderr", result.StderrString(true)),
		)
		return result, nil
	}

	log.Debug(commandErrorMessage, zap.Strings("arguments", args), zap.Error(err))
	return result, err
}
