// Package cmd — preview command.
// Renders a post to the terminal for a quick read before publishing.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/markpress/core/scan"
)

var previewWidth int

var previewCmd = &cobra.Command{
	Use:   "preview <file.md>",
	Short: "Render a post in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().IntVar(&previewWidth, "width", 80, "Word-wrap width")
}

func runPreview(cmd *cobra.Command, args []string) error {
	source := args[0]
	if !scan.IsMarkdown(source) {
		return fmt.Errorf("not a Markdown file: %s", source)
	}

	// Parse so the frontmatter block doesn't render as a table.
	p, err := loadPost(source)
	if err != nil {
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(previewWidth),
	)
	if err != nil {
		return fmt.Errorf("creating terminal renderer: %w", err)
	}

	out, err := renderer.Render(string(p.Body))
	if err != nil {
		return fmt.Errorf("rendering %s: %w", source, err)
	}

	fmt.Fprint(os.Stdout, out)
	return nil
}
