package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const messagePromptTitle = "Enter commit message"

// ResolveMessage returns message when it is non-blank, without touching the
// prompter. Otherwise it asks the prompter once; a missing prompter, a
// cancelled prompt or a blank answer all yield ErrEmptyMessage.
func ResolveMessage(ctx context.Context, message string, prompter Prompter) (string, error) {
	if strings.TrimSpace(message) != "" {
		return message, nil
	}
	if prompter == nil {
		return "", fmt.Errorf("%w: no interactive input available, use -m", ErrEmptyMessage)
	}

	input, err := prompter.ReadLine(ctx, messagePromptTitle)
	if err != nil {
		if errors.Is(err, ErrPromptCancelled) {
			return "", fmt.Errorf("%w: %w", ErrEmptyMessage, err)
		}
		return "", fmt.Errorf("%w: failed to read input: %w", ErrEmptyMessage, err)
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return "", ErrEmptyMessage
	}
	return input, nil
}
