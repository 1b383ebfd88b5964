// Package cmd implements the CLI commands for markpress using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "markpress",
	Short: "markpress — publish a Markdown blog as standalone HTML",
	Long: `markpress converts a directory of Markdown posts into styled,
standalone HTML pages, with optional PDF and JSON outputs.

Usage:
  markpress build <directory> [flags]
  markpress convert <file.md> [flags]
  markpress import <url> [flags]
  markpress watch <directory> [flags]
  markpress preview <file.md>`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
