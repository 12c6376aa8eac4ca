// Command gendoc writes the ga man pages.
package main

import (
	"fmt"
	"os"

	"github.com/samzong/ga/cmd"
	"github.com/spf13/cobra/doc"
)

func main() {
	dir := "./docs/man"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating directory: %v\n", err)
		os.Exit(1)
	}

	header := &doc.GenManHeader{
		Title:   "GA",
		Section: "1",
		Source:  "ga " + cmd.Version,
		Manual:  "GA Manual",
	}

	rootCmd := cmd.RootCmd()
	rootCmd.DisableAutoGenTag = true
	if err := doc.GenManTree(rootCmd, header, dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man pages: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Man pages generated in %s\n", dir)
}
