package workflow

import (
	"strings"

	"github.com/samzong/ga/internal/gitcmd"
)

// Phrases git prints (on stdout, exit status 1) when a commit has nothing to
// record. git does not expose a structured signal for this, so the check is a
// text match against its English output.
var nothingToCommitPhrases = []string{
	"nothing to commit",
	"nothing added to commit",
	"no changes added to commit",
}

// IsNothingToCommit reports whether a failed git commit failed only because
// the index matched HEAD.
func IsNothingToCommit(result gitcmd.Result) bool {
	if result.Succeeded() {
		return false
	}
	output := strings.ToLower(result.StdoutString(false) + "\n" + result.StderrString(false))
	for _, phrase := range nothingToCommitPhrases {
		if strings.Contains(output, phrase) {
			return true
		}
	}
	return false
}
