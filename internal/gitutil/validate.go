package gitutil

import (
	"errors"
	"fmt"
	"strings"
)

// ValidateBranchName rejects push targets that git check-ref-format would
// refuse, so a bad --origin fails before anything is staged.
func ValidateBranchName(name string) error {
	if name == "" {
		return errors.New("branch name cannot be empty")
	}
	if strings.HasPrefix(name, "-") {
		return fmt.Errorf("branch name cannot start with '-': %s", name)
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("branch name cannot contain '..': %s", name)
	}
	if strings.Contains(name, "@{") {
		return fmt.Errorf("branch name cannot contain '@{': %s", name)
	}
	if strings.HasSuffix(name, "/") || strings.HasSuffix(name, ".") || strings.HasSuffix(name, ".lock") {
		return fmt.Errorf("branch name has an invalid ending: %s", name)
	}
	for _, ch := range []string{" ", "~", "^", ":", "?", "*", "[", "\\"} {
		if strings.Contains(name, ch) {
			return fmt.Errorf("branch name contains invalid character %q: %s", ch, name)
		}
	}
	for _, r := range name {
		if r < 0x20 || r == 0x7f {
			return fmt.Errorf("branch name contains a control character: %q", name)
		}
	}
	return nil
}
