// Package cmd — build command.
// This is the main command that orchestrates the publishing pipeline:
// scan → parse → render → write, plus optional index generation.
//
// It handles flag validation, renderer selection, and per-post error
// reporting: a post that fails to convert gets a ✗ line and the build
// moves on, matching the original batch script.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gaurav-prasanna/markpress/core"
	"github.com/gaurav-prasanna/markpress/core/output"
	"github.com/gaurav-prasanna/markpress/core/post"
	"github.com/gaurav-prasanna/markpress/core/render"
	"github.com/gaurav-prasanna/markpress/core/scan"
	"github.com/gaurav-prasanna/markpress/core/site"
	"github.com/gaurav-prasanna/markpress/internal/logging"
)

// buildOptions collects the flags shared by build, convert, and watch.
type buildOptions struct {
	CSS           string
	OutputDir     string
	PDF           bool
	JSON          bool
	Index         bool
	SelfContained bool
	Recursive     bool
	Drafts        bool
	Verbose       bool
}

var buildOpts buildOptions

var buildCmd = &cobra.Command{
	Use:   "build <directory>",
	Short: "Convert every Markdown post in a directory",
	Long: `Build converts every Markdown file in the given directory into a
standalone HTML page written alongside its source (or under --output_dir).

Examples:
  markpress build ./posts
  markpress build ./posts --css style.css
  markpress build ./posts --recursive --index --output_dir ./public
  markpress build ./posts --self_contained --css style.css
  markpress build ./posts --pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	addBuildFlags(buildCmd, &buildOpts)
}

// addBuildFlags binds the shared pipeline flags onto a command.
func addBuildFlags(cmd *cobra.Command, o *buildOptions) {
	f := cmd.Flags()
	f.StringVar(&o.CSS, "css", "", "Stylesheet to attach to generated pages")
	f.StringVar(&o.OutputDir, "output_dir", "", "Output directory (default: alongside sources)")
	f.BoolVar(&o.PDF, "pdf", false, "Output PDF instead of HTML")
	f.BoolVar(&o.JSON, "json", false, "Output structured JSON instead of HTML")
	f.BoolVar(&o.Index, "index", false, "Generate index.html listing all posts")
	f.BoolVar(&o.SelfContained, "self_contained", false, "Embed styles and highlight code server-side (no CDN assets)")
	f.BoolVar(&o.Recursive, "recursive", false, "Descend into subdirectories")
	f.BoolVar(&o.Drafts, "drafts", false, "Include draft posts")
	f.BoolVar(&o.Verbose, "verbose", false, "Enable debug logging")
}

func runBuild(cmd *cobra.Command, args []string) error {
	return buildDirectory(args[0], buildOpts)
}

// buildDirectory runs the full batch pipeline over root.
// Per-post failures are reported and counted but never abort the run.
func buildDirectory(root string, opts buildOptions) error {
	logger := logging.New(opts.Verbose)
	defer logger.Sync()

	if err := validateFormat(opts); err != nil {
		return err
	}

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

	scanner := scan.New(opts.Recursive)
	if opts.OutputDir != "" {
		if abs, err := filepath.Abs(opts.OutputDir); err == nil {
			scanner.Exclude[abs] = true
		}
	}

	sources, err := scanner.Discover(root)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Found %d posts in %s\n", len(sources), root)

	var entries []site.IndexEntry
	var errCount int

	for i, src := range sources {
		fmt.Fprintf(os.Stdout, "[%d/%d] Processing %s\n", i+1, len(sources), src)

		p, err := loadPost(src)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ Error: %v\n", err)
			errCount++
			continue
		}

		if p.Meta.Draft && !opts.Drafts {
			logger.Debug("skipping draft", zap.String("source", src))
			fmt.Fprintf(os.Stdout, "  - Skipped: draft\n")
			continue
		}

		data, err := renderer.Render(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ Error: %v\n", err)
			errCount++
			continue
		}

		path, err := writer.Write(root, src, data, renderer.Extension())
		if err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ Write error: %v\n", err)
			errCount++
			continue
		}
		fmt.Fprintf(os.Stdout, "  ✓ Written: %s\n", path)

		entries = append(entries, indexEntry(root, opts, p, path))
	}

	if opts.Index && !opts.PDF && !opts.JSON {
		data, err := site.RenderIndex(cfg, entries, opts.CSS)
		if err != nil {
			return err
		}
		path, err := writer.WriteFile(root, "index.html", data)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	}

	if errCount > 0 {
		fmt.Fprintf(os.Stderr, "\n%d/%d posts failed\n", errCount, len(sources))
	}
	return nil
}

// loadPost reads and parses a single Markdown source.
func loadPost(path string) (*core.Post, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", path, err)
	}
	return post.Parse(path, source, info.ModTime())
}

// indexEntry builds the index row for a written post. The href is the
// written path relative to where index.html will live.
func indexEntry(root string, opts buildOptions, p *core.Post, written string) site.IndexEntry {
	indexDir := opts.OutputDir
	if indexDir == "" {
		indexDir = root
	}
	href, err := filepath.Rel(indexDir, written)
	if err != nil {
		href = filepath.Base(written)
	}
	return site.IndexEntry{
		Title:   p.Meta.Title,
		Href:    filepath.ToSlash(href),
		Date:    p.Meta.Date,
		Summary: p.Meta.Summary,
		Tags:    p.Meta.Tags,
	}
}

// validateFormat checks that at most one alternate output format is chosen.
func validateFormat(opts buildOptions) error {
	if opts.PDF && opts.JSON {
		return fmt.Errorf("--pdf and --json are mutually exclusive")
	}
	return nil
}

// selectRenderer creates the appropriate Renderer based on flags.
// HTML is the default; --pdf and --json switch formats.
func selectRenderer(opts buildOptions, cfg site.Config) (core.Renderer, error) {
	switch {
	case opts.PDF:
		return render.NewPDFRenderer(), nil
	case opts.JSON:
		return render.NewJSONRenderer(), nil
	}

	htmlOpts := render.HTMLOptions{
		SelfContained:  opts.SelfContained,
		HighlightStyle: cfg.HighlightStyle,
	}
	if opts.CSS != "" {
		if opts.SelfContained {
			css, err := os.ReadFile(opts.CSS)
			if err != nil {
				return nil, fmt.Errorf("reading stylesheet: %w", err)
			}
			htmlOpts.InlineCSS = css
		} else {
			htmlOpts.Stylesheet = opts.CSS
		}
	}
	return render.NewHTMLRenderer(htmlOpts), nil
}
