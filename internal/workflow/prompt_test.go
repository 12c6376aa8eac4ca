package workflow

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePrompter(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "reads one line", input: "fix: typo\nextra\n", want: "fix: typo"},
		{name: "strips CRLF", input: "fix: typo\r\n", want: "fix: typo"},
		{name: "last line without newline", input: "fix: typo", want: "fix: typo"},
		{name: "empty line", input: "\n", want: ""},
		{name: "no input", input: "", wantErr: ErrPromptCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			prompter := NewLinePrompter(strings.NewReader(tt.input), &out)

			got, err := prompter.ReadLine(context.Background(), "Enter commit message")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Enter commit message: ", out.String())
		})
	}
}

func TestLinePrompter_ContextCancelled(t *testing.T) {
	reader, writer := io.Pipe()
	defer writer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLinePrompter(reader, nil).ReadLine(ctx, "Enter commit message")
	assert.ErrorIs(t, err, context.Canceled)
}
