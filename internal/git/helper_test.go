package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samzong/ga/internal/gitcmd"
)

// requireIntegration skips tests that shell out to a real git binary unless
// they were explicitly requested.
func requireIntegration(t *testing.T) {
	t.Helper()
	if os.Getenv("RUN_INTEGRATION_TESTS") != "1" {
		t.Skip("Skipping integration test")
	}
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("Git not available")
	}
}

// isolateGitConfig keeps the user's global and system git configuration
// (signing, hooks, default branch) out of the test.
func isolateGitConfig(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Setenv("GIT_CONFIG_GLOBAL", filepath.Join(home, "gitconfig"))
}

func mustGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	result, err := gitcmd.Runner{Dir: dir}.Run(context.Background(), args...)
	require.NoError(t, err)
	require.Truef(t, result.Succeeded(), "git %v failed: %s", args, result.Detail())
}

// createTempRepo creates a repository on branch main with a bare "origin"
// remote, both inside temporary directories.
func createTempRepo(t *testing.T) (repoDir string, remoteDir string) {
	t.Helper()
	isolateGitConfig(t)

	remoteDir = t.TempDir()
	mustGit(t, remoteDir, "init", "--bare", "--quiet")

	repoDir = t.TempDir()
	mustGit(t, repoDir, "init", "--quiet")
	mustGit(t, repoDir, "symbolic-ref", "HEAD", "refs/heads/main")
	mustGit(t, repoDir, "config", "user.name", "Test")
	mustGit(t, repoDir, "config", "user.email", "test@test.com")
	mustGit(t, repoDir, "config", "commit.gpgsign", "false")
	mustGit(t, repoDir, "remote", "add", "origin", remoteDir)
	return repoDir, remoteDir
}
