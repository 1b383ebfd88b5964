// Package post parses Markdown sources into posts.
// Frontmatter is optional: articles written before markpress existed
// carry no metadata block, so every field has a derivation fallback.
package post

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/gaurav-prasanna/markpress/core"
)

// frontMatterEnvelope is the YAML shape accepted at the top of a post.
type frontMatterEnvelope struct {
	Title     string    `yaml:"title"`
	Slug      string    `yaml:"slug"`
	Date      time.Time `yaml:"date"`
	Author    string    `yaml:"author"`
	Tags      []string  `yaml:"tags"`
	Summary   string    `yaml:"summary"`
	Language  string    `yaml:"language"`
	Draft     bool      `yaml:"draft"`
	SourceURL string    `yaml:"source_url"`
}

// Parse builds a core.Post from the raw bytes of a Markdown source.
// Missing metadata is derived: title from the first H1 then the
// filename, slug from the filename, date from the modification time.
func Parse(path string, source []byte, modified time.Time) (*core.Post, error) {
	var env frontMatterEnvelope

	body, err := frontmatter.Parse(bytes.NewReader(source), &env)
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	meta := core.PostMeta{
		Title:     env.Title,
		Slug:      env.Slug,
		Date:      env.Date,
		Author:    env.Author,
		Tags:      env.Tags,
		Summary:   env.Summary,
		Language:  env.Language,
		Draft:     env.Draft,
		SourceURL: env.SourceURL,
	}

	if meta.Title == "" {
		meta.Title = firstHeading(body)
	}
	if meta.Title == "" {
		meta.Title = titleFromFilename(path)
	}
	if meta.Slug == "" {
		meta.Slug = Slugify(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	}
	if meta.Date.IsZero() {
		meta.Date = modified
	}
	if meta.Language == "" {
		meta.Language = "en"
	}

	return &core.Post{
		SourcePath: path,
		Meta:       meta,
		Body:       body,
		Modified:   modified,
	}, nil
}

// firstHeading returns the text of the first H1 in the body, if any.
func firstHeading(body []byte) string {
	for _, line := range strings.Split(string(body), "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, "# "))
		}
	}
	return ""
}

// titleFromFilename turns "module-imports.md" into "Module imports".
func titleFromFilename(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	base = strings.ReplaceAll(base, "-", " ")
	base = strings.ReplaceAll(base, "_", " ")
	base = strings.TrimSpace(base)
	if base == "" {
		return ""
	}
	return strings.ToUpper(base[:1]) + base[1:]
}

// Slugify converts a title or filename into a URL-safe slug.
// Runs of non-alphanumeric characters collapse into single hyphens.
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, ch := range strings.ToLower(s) {
		switch {
		case (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9'):
			b.WriteRune(ch)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
