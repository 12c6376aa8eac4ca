package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/samzong/ga/internal/config"
	"github.com/samzong/ga/internal/git"
	"github.com/samzong/ga/internal/logging"
	"github.com/samzong/ga/internal/workflow"
)

var rootCmd = &cobra.Command{
	Use:   "ga",
	Short: "ga - Git add, commit and push in one step",
	Long: `ga is a CLI tool that stages all changes, commits them and pushes the ` +
		`result to a remote branch with a single command.

Examples:
  ga -m "fix: typo"            # add, commit and push to origin/main
  ga -m "feat: login" -o dev   # push to origin/dev instead
  ga                           # prompt for the commit message`,
	Version:       fmt.Sprintf("%s (built at %s)", Version, BuildTime),
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runAddCommitPush(cmd)
	},
}

// SetContext sets the context used for every git subprocess and prompt.
func SetContext(ctx context.Context) {
	rootCmd.SetContext(ctx)
}

func Execute() error {
	return rootCmd.Execute()
}

// RootCmd exposes the root command for documentation generation.
func RootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	flags := rootCmd.Flags()
	flags.StringP(config.MessageFlag, "m", "", "Commit message (prompted for when omitted)")
	flags.StringP("origin", "o", config.DefaultBranch, "Branch to push to")
	flags.String("remote", config.DefaultRemote, "Remote to push to")
	flags.BoolP("verbose", "v", false, "Print the output of each git command")
	flags.Bool("no-signoff", false, "Do not add a Signed-off-by trailer to the commit")
	flags.Bool("no-verify", false, "Skip pre-commit and commit-msg hooks")
	flags.String("log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	flags.BoolP("version", "V", false, "Print version information and exit")
}

func runAddCommitPush(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger, err := logging.New(errWriter(), cfg.LogLevel, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("run_id", uuid.NewString()))
	logger.Debug("ga started",
		zap.String("remote", cfg.Remote),
		zap.String("branch", cfg.Branch),
		zap.Bool("message_supplied", cfg.HasMessage()),
	)

	gitClient := git.NewClient(git.Options{Logger: logger})
	prompter := workflow.NewPrompter(os.Stdin, outWriter())
	pipeline := workflow.NewPipeline(gitClient, prompter, cfg, workflow.Options{
		Out:    outWriter(),
		Logger: logger,
	})

	outcome, err := pipeline.Run(cmd.Context())
	logger.Debug("ga finished",
		zap.Stringer("state", outcome.State),
		zap.Bool("nothing_to_commit", outcome.NothingToCommit),
	)
	return err
}
