package gitutil

import (
	"fmt"

	"github.com/samzong/ga/internal/gitcmd"
)

// WrapGitError builds an error that quotes git's own output verbatim when
// there is any, falling back to the exit status. action is optional context
// placed in front of the message.
func WrapGitError(action string, result gitcmd.Result, err error) error {
	detail := result.Detail()
	if detail == "" && result.ExitCode != 0 {
		detail = fmt.Sprintf("exit status %d", result.ExitCode)
	}

	switch {
	case action != "" && detail != "":
		return fmt.Errorf("%s: %w: %s", action, err, detail)
	case action != "":
		return fmt.Errorf("%s: %w", action, err)
	case detail != "":
		return fmt.Errorf("%w: %s", err, detail)
	default:
		return err
	}
}
