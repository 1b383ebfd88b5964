// Package core defines the pipeline types and interfaces for markpress.
// Each stage of the publishing pipeline is a clean, testable interface.
package core

import (
	"context"
	"time"
)

// PostMeta holds the metadata of a post, parsed from frontmatter or
// derived from the source file.
type PostMeta struct {
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Date      time.Time `json:"date"`
	Author    string    `json:"author,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	Summary   string    `json:"summary,omitempty"`
	Language  string    `json:"language"`
	Draft     bool      `json:"draft,omitempty"`
	SourceURL string    `json:"source_url,omitempty"` // set for imported posts
}

// Post is a single Markdown source ready for rendering.
type Post struct {
	SourcePath string
	Meta       PostMeta
	Body       []byte // Markdown body without frontmatter
	Modified   time.Time
}

// FetchResult holds the raw HTML and response metadata from a fetch
// performed by the import pipeline.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// Section represents a heading-delimited section of a post body.
type Section struct {
	Heading string `json:"heading"`
	Level   int    `json:"level"`
	Text    string `json:"text"`
}

// Heading represents a single heading found in a post body.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Link represents a hyperlink found in a post body.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// PostContent holds the textual content of a post in its JSON form.
type PostContent struct {
	Text     string    `json:"text"`
	Markdown string    `json:"markdown"`
	Sections []Section `json:"sections"`
}

// PostStructure holds structural counts parsed from a post body.
type PostStructure struct {
	Headings   []Heading `json:"headings"`
	Links      []Link    `json:"links"`
	CodeBlocks int       `json:"code_blocks"`
	Tables     int       `json:"tables"`
	Lists      int       `json:"lists"`
}

// PostJSON is the complete JSON output for a single post (feed entry).
type PostJSON struct {
	Metadata  PostMeta      `json:"metadata"`
	Content   PostContent   `json:"content"`
	Structure PostStructure `json:"structure"`
}

// Renderer converts a parsed post into a final output format.
type Renderer interface {
	Render(post *Post) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".html", ".pdf").
	Extension() string
}

// Fetcher retrieves raw HTML from a URL (import pipeline).
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Extractor pulls the main article content from raw HTML, stripping noise.
type Extractor interface {
	Extract(html string) (string, error)
}

// Normalizer converts extracted HTML into Markdown, the canonical
// source format for posts.
type Normalizer interface {
	Normalize(html string) (string, error)
}
