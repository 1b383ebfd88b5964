// Package render provides output renderers for the markpress pipeline.
// This file implements the HTML renderer: goldmark converts the post
// body, then a standalone page template wraps it with the head assets
// (stylesheet, syntax highlighting).
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/gaurav-prasanna/markpress/core"
)

// highlight.js assets injected into the head when pages rely on
// client-side highlighting. Goldmark's own highlighting stays off in
// that mode so hljs sees plain <pre><code> blocks.
const (
	highlightCSSURL = "https://cdnjs.cloudflare.com/ajax/libs/highlight.js/11.9.0/styles/default.min.css"
	highlightJSURL  = "https://cdnjs.cloudflare.com/ajax/libs/highlight.js/11.9.0/highlight.min.js"
)

// HTMLOptions configures the HTML renderer.
type HTMLOptions struct {
	// Stylesheet is an href linked from the head. Empty means no
	// stylesheet link.
	Stylesheet string
	// InlineCSS is embedded in a <style> element instead of linked.
	// Used by self-contained mode.
	InlineCSS []byte
	// SelfContained replaces the CDN highlight.js assets with
	// server-side chroma highlighting so pages work offline.
	SelfContained bool
	// HighlightStyle is the chroma style for self-contained mode.
	HighlightStyle string
}

// HTMLRenderer renders a post as a standalone HTML document.
// The renderer is stateless after construction and safe to reuse
// across posts.
type HTMLRenderer struct {
	opts   HTMLOptions
	engine goldmark.Markdown
	tmpl   *template.Template
}

// NewHTMLRenderer creates an HTMLRenderer. Defaults: "github" chroma
// style in self-contained mode, CDN highlight.js otherwise.
func NewHTMLRenderer(opts HTMLOptions) *HTMLRenderer {
	if opts.HighlightStyle == "" {
		opts.HighlightStyle = "github"
	}

	exts := []goldmark.Extender{
		extension.GFM,
		extension.Linkify,
		extension.TaskList,
	}
	if opts.SelfContained {
		exts = append(exts, highlighting.NewHighlighting(
			highlighting.WithStyle(opts.HighlightStyle),
		))
	}

	// Articles embed raw HTML (details/summary blocks, embedded
	// playgrounds), so unsafe rendering is intentional.
	engine := goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	return &HTMLRenderer{
		opts:   opts,
		engine: engine,
		tmpl:   template.Must(template.New("page").Parse(pageTemplate)),
	}
}

// pageData feeds the standalone page template.
type pageData struct {
	Lang         string
	Title        string
	Stylesheet   string
	InlineCSS    template.CSS
	Highlight    bool
	HighlightCSS string
	HighlightJS  string
	Body         template.HTML
}

// Render converts the post body to HTML and wraps it into a complete
// standalone document.
func (r *HTMLRenderer) Render(post *core.Post) ([]byte, error) {
	var body bytes.Buffer
	if err := r.engine.Convert(post.Body, &body); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}

	data := pageData{
		Lang:         post.Meta.Language,
		Title:        post.Meta.Title,
		Stylesheet:   r.opts.Stylesheet,
		InlineCSS:    template.CSS(r.opts.InlineCSS),
		Highlight:    !r.opts.SelfContained,
		HighlightCSS: highlightCSSURL,
		HighlightJS:  highlightJSURL,
		Body:         template.HTML(body.String()),
	}
	if data.Lang == "" {
		data.Lang = "en"
	}

	var out bytes.Buffer
	if err := r.tmpl.Execute(&out, data); err != nil {
		return nil, fmt.Errorf("assembling page: %w", err)
	}
	return out.Bytes(), nil
}

// Extension returns the file extension for HTML output.
func (r *HTMLRenderer) Extension() string {
	return ".html"
}

// pageTemplate is the standalone document shell. Output contains no
// timestamps or build identifiers, keeping rebuilds byte-identical.
const pageTemplate = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
{{if .Stylesheet}}<link rel="stylesheet" href="{{.Stylesheet}}">
{{end}}{{if .InlineCSS}}<style>
{{.InlineCSS}}
</style>
{{end}}{{if .Highlight}}<link rel="stylesheet" href="{{.HighlightCSS}}">
<script src="{{.HighlightJS}}" defer></script>
<script>document.addEventListener("DOMContentLoaded", function () { hljs.highlightAll(); });</script>
{{end}}</head>
<body>
<main>
{{.Body}}</main>
</body>
</html>
`
