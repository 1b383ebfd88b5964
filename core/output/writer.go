// Package output handles file naming and writing for rendered posts.
// By default an artifact lands alongside its source with the same base
// name; with an output directory configured, the source tree is
// mirrored under it. Writes are atomic so a rebuild never leaves a
// half-written page behind.
package output

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
)

// Writer writes rendered output to disk.
type Writer struct {
	// OutputDir, when non-empty, receives all artifacts, mirroring the
	// layout of sources relative to the build root. When empty,
	// artifacts are written beside their sources.
	OutputDir string
}

// New creates a Writer. A non-empty outputDir is created eagerly so
// flag errors surface before the first file is processed.
func New(outputDir string) (*Writer, error) {
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}
	return &Writer{OutputDir: outputDir}, nil
}

// Write stores data for the given source file and returns the path
// written. root is the build root used to compute mirror paths; it is
// ignored when writing beside the source.
func (w *Writer) Write(root, source string, data []byte, ext string) (string, error) {
	path, err := w.target(root, source, ext)
	if err != nil {
		return "", err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// WriteFile stores data at an explicit path inside the output
// directory (or the build root when none is set). Used for site-level
// artifacts like index.html.
func (w *Writer) WriteFile(root, name string, data []byte) (string, error) {
	dir := w.OutputDir
	if dir == "" {
		dir = root
	}
	path := filepath.Join(dir, name)
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// target computes the destination path for a source file.
func (w *Writer) target(root, source string, ext string) (string, error) {
	base := strings.TrimSuffix(source, filepath.Ext(source)) + ext

	if w.OutputDir == "" {
		return base, nil
	}

	rel, err := filepath.Rel(root, base)
	if err != nil {
		return "", fmt.Errorf("resolving output path for %s: %w", source, err)
	}
	if strings.HasPrefix(rel, "..") {
		// Source outside the build root (single-file convert): flatten.
		rel = filepath.Base(base)
	}
	return filepath.Join(w.OutputDir, rel), nil
}
