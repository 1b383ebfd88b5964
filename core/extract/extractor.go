// Package extract implements the Extractor interface for the import
// pipeline. It isolates the article body from a full HTML page by:
//  1. Finding the best content container (<main>, <article>, or <body>)
//  2. Removing noise elements (nav, footer, scripts, ads, media)
//
// Code blocks survive extraction untouched; they are the substance of
// the articles this tool imports.
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are HTML elements removed before extraction.
// These contribute nothing to the article text.
var noiseSelectors = []string{
	"script", "style", "noscript",
	"nav", "footer", "header",
	"iframe", "video", "audio",
	"svg", "canvas",
	"form", "button", "input", "select", "textarea",
	".sidebar", ".menu", ".navigation", ".ads", ".advertisement",
	".comments", ".share", ".related-posts",
}

// ArticleExtractor strips noise from HTML and returns the article fragment.
type ArticleExtractor struct{}

// New creates an ArticleExtractor.
func New() *ArticleExtractor {
	return &ArticleExtractor{}
}

// Extract takes raw HTML and returns a cleaned HTML fragment containing
// only the article content.
func (e *ArticleExtractor) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	// Remove noise elements first (operates on the whole document).
	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	// Find the best content container in priority order.
	// <main> is the most semantically correct, then <article>, then <body>.
	var content *goquery.Selection
	for _, tag := range []string{"main", "article", "body"} {
		sel := doc.Find(tag)
		if sel.Length() > 0 {
			content = sel.First()
			break
		}
	}

	if content == nil {
		return "", fmt.Errorf("no content container found in HTML")
	}

	result, err := goquery.OuterHtml(content)
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}

	return result, nil
}
