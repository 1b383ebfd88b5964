// Package cmd — import command.
// Pulls a published article into the blog as a Markdown post:
// fetch → extract main content → normalize to Markdown → synthesize
// frontmatter → write <slug>.md.
package cmd

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gaurav-prasanna/markpress/core/extract"
	"github.com/gaurav-prasanna/markpress/core/fetch"
	"github.com/gaurav-prasanna/markpress/core/normalize"
	"github.com/gaurav-prasanna/markpress/core/output"
	"github.com/gaurav-prasanna/markpress/core/post"
)

var importOutputDir string

var importCmd = &cobra.Command{
	Use:   "import <url>",
	Short: "Import a web article as a Markdown post",
	Long: `Import fetches a webpage, extracts its main content, converts it to
Markdown, and writes it as a post with synthesized frontmatter.

Examples:
  markpress import https://example.com/articles/generators
  markpress import https://example.com/articles/generators --output_dir ./posts`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVar(&importOutputDir, "output_dir", "", "Directory for the imported post (default: current directory)")
}

// importFrontMatter is the metadata block prepended to imported posts.
type importFrontMatter struct {
	Title     string `yaml:"title"`
	Date      string `yaml:"date"`
	Language  string `yaml:"language,omitempty"`
	SourceURL string `yaml:"source_url"`
}

func runImport(cmd *cobra.Command, args []string) error {
	rawURL := args[0]

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid URL: %s (must include scheme, e.g. https://example.com)", rawURL)
	}

	fetcher := fetch.New()
	extractor := extract.New()
	normalizer := normalize.New()

	result, err := fetcher.Fetch(cmd.Context(), rawURL)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	content, err := extractor.Extract(result.HTML)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	markdown, err := normalizer.Normalize(content)
	if err != nil {
		return fmt.Errorf("normalize: %w", err)
	}

	title, lang := pageMeta(result.HTML)
	if title == "" {
		title = parsed.Host + parsed.Path
	}

	fm := importFrontMatter{
		Title:     title,
		Date:      time.Now().UTC().Format("2006-01-02"),
		Language:  lang,
		SourceURL: rawURL,
	}
	fmData, err := yaml.Marshal(fm)
	if err != nil {
		return fmt.Errorf("building frontmatter: %w", err)
	}

	var doc strings.Builder
	doc.WriteString("---\n")
	doc.Write(fmData)
	doc.WriteString("---\n\n")
	doc.WriteString(strings.TrimSpace(markdown))
	doc.WriteString("\n")

	writer, err := output.New(importOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	path, err := writer.WriteFile(".", post.Slugify(title)+".md", []byte(doc.String()))
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Imported: %s\n", path)
	return nil
}

// pageMeta pulls the document title and lang attribute from raw HTML.
func pageMeta(html string) (title, lang string) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", ""
	}
	title = strings.TrimSpace(doc.Find("title").First().Text())
	lang, _ = doc.Find("html").Attr("lang")
	return title, strings.TrimSpace(lang)
}
