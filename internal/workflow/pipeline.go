package workflow

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/samzong/ga/internal/config"
	"github.com/samzong/ga/internal/git"
	"github.com/samzong/ga/internal/gitcmd"
	"github.com/samzong/ga/internal/gitutil"
	"github.com/samzong/ga/internal/ui"
)

// State is a position in the pipeline. Failed is reachable from every
// non-terminal state and is final.
type State int

const (
	StateStart State = iota
	StateValidated
	StateStaged
	StateMessageResolved
	StateCommitted
	StatePushed
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateValidated:
		return "validated"
	case StateStaged:
		return "staged"
	case StateMessageResolved:
		return "message_resolved"
	case StateCommitted:
		return "committed"
	case StatePushed:
		return "pushed"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome summarises a finished run.
type Outcome struct {
	State           State
	NothingToCommit bool
	Message         string
}

type Options struct {
	Out    io.Writer
	Logger *zap.Logger
	// WorkDir is probed for git metadata. Empty means the process cwd.
	WorkDir string
}

// Pipeline stages all changes, commits them and pushes the result, stopping
// at the first failure. Nothing already done is rolled back.
type Pipeline struct {
	git      GitClient
	prompter Prompter
	cfg      config.RunConfig
	printer  *ui.Printer
	logger   *zap.Logger
	workDir  string
	state    State
}

func NewPipeline(gitClient GitClient, prompter Prompter, cfg config.RunConfig, opts Options) *Pipeline {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		git:      gitClient,
		prompter: prompter,
		cfg:      cfg,
		printer:  ui.NewPrinter(out),
		logger:   logger,
		workDir:  opts.WorkDir,
		state:    StateStart,
	}
}

// State returns the state the pipeline is currently in.
func (p *Pipeline) State() State {
	return p.state
}

func (p *Pipeline) Run(ctx context.Context) (Outcome, error) {
	if err := p.validate(); err != nil {
		return p.fail(err)
	}
	p.advance(StateValidated)

	if err := p.stage(ctx); err != nil {
		return p.fail(err)
	}
	p.advance(StateStaged)

	message, err := p.resolveMessage(ctx)
	if err != nil {
		return p.fail(err)
	}
	p.advance(StateMessageResolved)

	committed, err := p.commit(ctx, message)
	if err != nil {
		return p.fail(err)
	}
	if !committed {
		p.advance(StateDone)
		return Outcome{State: p.state, NothingToCommit: true, Message: message}, nil
	}
	p.advance(StateCommitted)

	if err := p.push(ctx); err != nil {
		return p.fail(err)
	}
	p.advance(StatePushed)

	fmt.Fprintln(p.printer.Writer())
	p.printer.Success("Successfully pushed the code!")
	p.advance(StateDone)
	return Outcome{State: p.state, Message: message}, nil
}

func (p *Pipeline) advance(next State) {
	p.logger.Debug("pipeline state changed",
		zap.Stringer("from", p.state),
		zap.Stringer("to", next),
	)
	p.state = next
}

func (p *Pipeline) fail(err error) (Outcome, error) {
	p.logger.Debug("pipeline failed", zap.Stringer("state", p.state), zap.Error(err))
	p.state = StateFailed
	return Outcome{State: StateFailed}, err
}

func (p *Pipeline) validate() error {
	dir := p.workDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return &StageError{Step: StepValidate, Err: fmt.Errorf("failed to get current directory: %w", err)}
		}
		dir = wd
	}

	if !p.git.IsInsideRepository(dir) {
		return &StageError{
			Step: StepValidate,
			Err:  fmt.Errorf("%w: no .git directory found in %s or any parent", ErrNotARepository, dir),
		}
	}

	if err := gitutil.ValidateBranchName(p.cfg.Branch); err != nil {
		return &StageError{Step: StepValidate, Err: fmt.Errorf("%w: %w", ErrInvalidBranch, err)}
	}
	return nil
}

func (p *Pipeline) stage(ctx context.Context) error {
	p.printer.Step("Running git add --all")

	result, err := p.git.StageAll(ctx)
	if err := p.checkResult(StepStage, "", result, err, ErrStagingFailed); err != nil {
		return err
	}

	p.relay(result)
	p.printer.Success("Staged all changes")
	return nil
}

func (p *Pipeline) resolveMessage(ctx context.Context) (string, error) {
	if !p.cfg.HasMessage() && p.prompter != nil {
		p.printer.Step("Commit message required")
	}

	message, err := ResolveMessage(ctx, p.cfg.Message, p.prompter)
	if err != nil {
		return "", &StageError{Step: StepMessage, Err: err}
	}
	return message, nil
}

// commit reports false, with a nil error, when git had nothing to commit.
func (p *Pipeline) commit(ctx context.Context, message string) (bool, error) {
	p.printer.Step("Committing with message: %q", message)

	result, err := p.git.Commit(ctx, message, git.CommitOptions{
		Signoff:  p.cfg.Signoff(),
		NoVerify: p.cfg.NoVerify,
	})
	if err == nil && IsNothingToCommit(result) {
		p.relay(result)
		p.printer.Info("Nothing to commit, working tree clean")
		return false, nil
	}
	if err := p.checkResult(StepCommit, "", result, err, ErrCommitFailed); err != nil {
		return false, err
	}

	p.relay(result)
	p.printer.Success("Commit created")
	return true, nil
}

func (p *Pipeline) push(ctx context.Context) error {
	target := fmt.Sprintf("%s/%s", p.cfg.Remote, p.cfg.Branch)
	p.printer.Step("Pushing to %s", target)

	sp := ui.NewSpinner(p.printer.Writer(), "Pushing to "+target)
	if !p.cfg.Verbose {
		sp.Start()
	}
	result, err := p.git.Push(ctx, p.cfg.Remote, p.cfg.Branch)
	sp.Stop()

	if err := p.checkResult(StepPush, "push to "+target, result, err, ErrPushFailed); err != nil {
		return err
	}

	p.relay(result)
	p.printer.Success("Pushed to %s", target)
	return nil
}

// checkResult turns a git invocation that could not run, or that exited
// non-zero, into a StageError quoting git's own output.
func (p *Pipeline) checkResult(step Step, action string, result gitcmd.Result, err error, kind error) error {
	if err != nil {
		return &StageError{Step: step, Result: result, Err: fmt.Errorf("%w: %w", kind, err)}
	}
	if !result.Succeeded() {
		return &StageError{Step: step, Result: result, Err: gitutil.WrapGitError(action, result, kind)}
	}
	return nil
}

func (p *Pipeline) relay(result gitcmd.Result) {
	if !p.cfg.Verbose {
		return
	}
	p.printer.Relay(result.StdoutString(false))
	p.printer.Relay(result.StderrString(false))
}
