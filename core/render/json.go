// Package render — JSON renderer.
// Builds the structured feed-entry output for a post. Parses the
// Markdown body to extract structural information (headings, links,
// code blocks, tables, lists) without rendering it.
package render

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/markpress/core"
)

// JSONRenderer produces a structured JSON record per post.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render converts the post into its JSON feed-entry form.
func (r *JSONRenderer) Render(post *core.Post) ([]byte, error) {
	markdown := string(post.Body)

	headings := extractHeadings(markdown)
	links := extractLinks(markdown)
	sections := buildSections(markdown, headings)

	entry := core.PostJSON{
		Metadata: post.Meta,
		Content: core.PostContent{
			Text:     stripMarkdown(markdown),
			Markdown: markdown,
			Sections: sections,
		},
		Structure: core.PostStructure{
			Headings:   headings,
			Links:      links,
			CodeBlocks: countCodeBlocks(markdown),
			Tables:     countTables(markdown),
			Lists:      countLists(markdown),
		},
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

// --- Markdown parsing helpers ---

var headingRegex = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)

func extractHeadings(md string) []core.Heading {
	matches := headingRegex.FindAllStringSubmatch(md, -1)
	headings := make([]core.Heading, 0, len(matches))
	for _, m := range matches {
		headings = append(headings, core.Heading{
			Level: len(m[1]),
			Text:  strings.TrimSpace(m[2]),
		})
	}
	return headings
}

// linkRegex matches Markdown links [text](url).
var linkRegex = regexp.MustCompile(`\[([^\]]*)\]\(([^)]+)\)`)

func extractLinks(md string) []core.Link {
	matches := linkRegex.FindAllStringSubmatch(md, -1)
	links := make([]core.Link, 0, len(matches))
	for _, m := range matches {
		links = append(links, core.Link{
			Text: m[1],
			Href: m[2],
		})
	}
	return links
}

func buildSections(md string, headings []core.Heading) []core.Section {
	if len(headings) == 0 {
		return nil
	}

	lines := strings.Split(md, "\n")
	sections := make([]core.Section, 0, len(headings))
	headingIdx := 0

	var currentSection *core.Section
	var sectionLines []string

	for _, line := range lines {
		if headingRegex.MatchString(line) && headingIdx < len(headings) {
			// Flush previous section.
			if currentSection != nil {
				currentSection.Text = strings.TrimSpace(strings.Join(sectionLines, "\n"))
				sections = append(sections, *currentSection)
			}
			currentSection = &core.Section{
				Heading: headings[headingIdx].Text,
				Level:   headings[headingIdx].Level,
			}
			sectionLines = nil
			headingIdx++
		} else if currentSection != nil {
			sectionLines = append(sectionLines, line)
		}
	}
	// Flush last section.
	if currentSection != nil {
		currentSection.Text = strings.TrimSpace(strings.Join(sectionLines, "\n"))
		sections = append(sections, *currentSection)
	}

	return sections
}

// countCodeBlocks counts fenced code blocks (``` delimited).
func countCodeBlocks(md string) int {
	return strings.Count(md, "```") / 2
}

// countTables counts Markdown tables by looking for separator rows (|---|).
var tableRowRegex = regexp.MustCompile(`(?m)^\|[-:| ]+\|$`)

func countTables(md string) int {
	return len(tableRowRegex.FindAllString(md, -1))
}

// countLists counts list items (lines starting with -, *, or 1.).
var listItemRegex = regexp.MustCompile(`(?m)^[\s]*[-*]\s|^[\s]*\d+\.\s`)

func countLists(md string) int {
	return len(listItemRegex.FindAllString(md, -1))
}

// stripMarkdown removes common Markdown formatting to produce plain text.
func stripMarkdown(md string) string {
	text := md
	// Remove heading markers.
	text = headingRegex.ReplaceAllString(text, "$2")
	// Remove bold/italic.
	text = regexp.MustCompile(`\*{1,3}([^*]+)\*{1,3}`).ReplaceAllString(text, "$1")
	// Remove links, keep text.
	text = linkRegex.ReplaceAllString(text, "$1")
	// Remove code block fences.
	text = strings.ReplaceAll(text, "```", "")
	// Remove inline code.
	text = regexp.MustCompile("`([^`]+)`").ReplaceAllString(text, "$1")
	// Collapse whitespace.
	text = regexp.MustCompile(`\n{3,}`).ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}
