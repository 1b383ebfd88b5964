// Package cmd — convert command.
// Single-file conversion: the original helper the batch build calls
// per file, exposed directly for one-off use.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/markpress/core/output"
	"github.com/gaurav-prasanna/markpress/core/scan"
	"github.com/gaurav-prasanna/markpress/core/site"
)

var convertOpts buildOptions

var convertCmd = &cobra.Command{
	Use:   "convert <file.md>",
	Short: "Convert a single Markdown post",
	Long: `Convert renders one Markdown file into a standalone HTML page written
alongside the source (or under --output_dir).

Examples:
  markpress convert posts/generators.md
  markpress convert posts/generators.md --css ../style.css
  markpress convert posts/generators.md --pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	addBuildFlags(convertCmd, &convertOpts)
	// Batch-only flags make no sense for a single file.
	convertCmd.Flags().MarkHidden("index")
	convertCmd.Flags().MarkHidden("recursive")
	convertCmd.Flags().MarkHidden("drafts")
}

func runConvert(cmd *cobra.Command, args []string) error {
	source := args[0]
	opts := convertOpts

	if err := validateFormat(opts); err != nil {
		return err
	}
	if !scan.IsMarkdown(source) {
		return fmt.Errorf("not a Markdown file: %s", source)
	}
	if _, err := os.Stat(source); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s", source)
		}
		return fmt.Errorf("checking %s: %w", source, err)
	}

	root := filepath.Dir(source)

	cfg, err := site.LoadConfig(root)
	if err != nil {
		return err
	}
	if opts.CSS == "" {
		opts.CSS = cfg.Stylesheet
	}

	renderer, err := selectRenderer(opts, cfg)
	if err != nil {
		return err
	}

	writer, err := output.New(opts.OutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	p, err := loadPost(source)
	if err != nil {
		return err
	}

	data, err := renderer.Render(p)
	if err != nil {
		return err
	}

	path, err := writer.Write(root, source, data, renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	return nil
}
