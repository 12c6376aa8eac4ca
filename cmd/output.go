package cmd

import (
	"io"
	"os"
)

// Writers are resolved through rootCmd at call time so tests can capture
// output with SetOut/SetErr. They are assigned in init to avoid an
// initialization cycle with rootCmd.
var (
	outWriterFunc = func() io.Writer { return os.Stdout }
	errWriterFunc = func() io.Writer { return os.Stderr }
)

func init() {
	outWriterFunc = func() io.Writer { return rootCmd.OutOrStdout() }
	errWriterFunc = func() io.Writer { return rootCmd.ErrOrStderr() }
}

func outWriter() io.Writer {
	return outWriterFunc()
}

func errWriter() io.Writer {
	return errWriterFunc()
}
