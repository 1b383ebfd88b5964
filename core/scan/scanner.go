// Package scan discovers Markdown post sources for the build pipeline.
// Discovery is deterministic: results come back in lexical path order,
// so repeated builds process files in the same sequence.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Scanner finds post sources under a root directory.
type Scanner struct {
	Recursive bool
	// Exclude holds absolute directory paths that are never descended
	// into (e.g. the output directory of the current build).
	Exclude map[string]bool
}

// New creates a Scanner. With recursive false only the root directory
// itself is searched, matching the original one-level batch behavior.
func New(recursive bool) *Scanner {
	return &Scanner{
		Recursive: recursive,
		Exclude:   make(map[string]bool),
	}
}

// Discover returns the Markdown sources under root in lexical order.
// A nonexistent or non-directory root is an error.
func (s *Scanner) Discover(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("directory does not exist: %s", root)
		}
		return nil, fmt.Errorf("checking directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", root)
	}

	if !s.Recursive {
		return s.discoverFlat(root)
	}
	return s.discoverTree(root)
}

// discoverFlat lists Markdown files directly under root.
func (s *Scanner) discoverFlat(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", root, err)
	}

	var sources []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if IsMarkdown(entry.Name()) {
			sources = append(sources, filepath.Join(root, entry.Name()))
		}
	}
	sort.Strings(sources)
	return sources, nil
}

// discoverTree walks the whole tree under root, honoring skip rules.
func (s *Scanner) discoverTree(root string) ([]string, error) {
	var sources []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == root {
				return nil
			}
			if IsSkippedDir(d.Name()) || s.excluded(path) {
				return filepath.SkipDir
			}
			return nil
		}
		if IsMarkdown(path) {
			sources = append(sources, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	sort.Strings(sources)
	return sources, nil
}

func (s *Scanner) excluded(path string) bool {
	if len(s.Exclude) == 0 {
		return false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	return s.Exclude[abs]
}
