// Package scan — source filtering rules.
// Provides helpers to decide which files and directories take part
// in a build.
package scan

import (
	"path/filepath"
	"strings"
)

// markdownExtensions are the file extensions treated as post sources.
var markdownExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
}

// IsMarkdown reports whether the path looks like a Markdown post source.
func IsMarkdown(path string) bool {
	return markdownExtensions[strings.ToLower(filepath.Ext(path))]
}

// IsSkippedDir reports whether a directory is excluded from discovery.
// Hidden directories and underscore-prefixed directories (drafts,
// templates, vendored assets) never contain publishable posts.
func IsSkippedDir(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

// OutputName derives an output filename from a source path by
// substituting the extension. Example: posts/generators.md → generators.html
func OutputName(source string, ext string) string {
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ext
}
