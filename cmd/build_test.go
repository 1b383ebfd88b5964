package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFixture(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestBuildRequiresDirectoryArg(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"build"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected an error when the directory argument is missing")
	}
}

func TestBuildNonexistentDirectory(t *testing.T) {
	err := buildDirectory(filepath.Join(t.TempDir(), "nope"), buildOptions{})
	if err == nil {
		t.Fatal("expected an error for a nonexistent directory")
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("expected explanatory message, got %q", err.Error())
	}
}

func TestBuildConvertsOnlyMarkdown(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, filepath.Join(dir, "a.md"), "# A\n\nprose\n")
	writeFixture(t, filepath.Join(dir, "b.txt"), "not a post\n")

	if err := buildDirectory(dir, buildOptions{}); err != nil {
		t.Fatalf("buildDirectory failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "a.html")); err != nil {
		t.Errorf("a.html missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "b.html")); !os.IsNotExist(err) {
		t.Error("b.txt must not produce an output file")
	}
}

func TestBuildStylesheetFlag(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, filepath.Join(dir, "a.md"), "# A\n")

	if err := buildDirectory(dir, buildOptions{CSS: "style.css"}); err != nil {
		t.Fatalf("buildDirectory failed: %v", err)
	}
	page, err := os.ReadFile(filepath.Join(dir, "a.html"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(page), `<link rel="stylesheet" href="style.css">`) {
		t.Error("expected stylesheet link in generated head")
	}

	// Without the flag there is no stylesheet link.
	if err := buildDirectory(dir, buildOptions{}); err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}
	page, err = os.ReadFile(filepath.Join(dir, "a.html"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if strings.Contains(string(page), `href="style.css"`) {
		t.Error("unexpected stylesheet link without --css")
	}
}

func TestBuildIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, filepath.Join(dir, "a.md"), "# A\n\nbody\n")

	if err := buildDirectory(dir, buildOptions{}); err != nil {
		t.Fatalf("first build failed: %v", err)
	}
	first, err := os.ReadFile(filepath.Join(dir, "a.html"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	if err := buildDirectory(dir, buildOptions{}); err != nil {
		t.Fatalf("second build failed: %v", err)
	}
	second, err := os.ReadFile(filepath.Join(dir, "a.html"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("re-running build must regenerate identical output")
	}
}

func TestBuildSkipsDrafts(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, filepath.Join(dir, "draft.md"), "---\ntitle: WIP\ndraft: true\n---\n\nnot ready\n")

	if err := buildDirectory(dir, buildOptions{}); err != nil {
		t.Fatalf("buildDirectory failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "draft.html")); !os.IsNotExist(err) {
		t.Error("draft post must be skipped")
	}

	if err := buildDirectory(dir, buildOptions{Drafts: true}); err != nil {
		t.Fatalf("buildDirectory --drafts failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "draft.html")); err != nil {
		t.Error("--drafts should include draft posts")
	}
}

func TestBuildOutputDirAndIndex(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "public")
	writeFixture(t, filepath.Join(dir, "posts", "old.md"), "---\ntitle: Old\ndate: 2025-06-01T00:00:00Z\n---\n\nold\n")
	writeFixture(t, filepath.Join(dir, "posts", "new.md"), "---\ntitle: New\ndate: 2026-02-01T00:00:00Z\n---\n\nnew\n")

	opts := buildOptions{OutputDir: out, Index: true}
	if err := buildDirectory(filepath.Join(dir, "posts"), opts); err != nil {
		t.Fatalf("buildDirectory failed: %v", err)
	}

	for _, name := range []string{"old.html", "new.html", "index.html"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("%s missing: %v", name, err)
		}
	}

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatalf("reading index: %v", err)
	}
	page := string(index)
	if !strings.Contains(page, `<a href="new.html">New</a>`) {
		t.Errorf("index missing entry link:\n%s", page)
	}
	if strings.Index(page, "New") > strings.Index(page, "Old") {
		t.Error("index must list newest posts first")
	}
}

func TestBuildRejectsConflictingFormats(t *testing.T) {
	err := buildDirectory(t.TempDir(), buildOptions{PDF: true, JSON: true})
	if err == nil {
		t.Fatal("expected an error for --pdf with --json")
	}
}

func TestBuildPDFFormat(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, filepath.Join(dir, "a.md"), "# A\n\nbody\n")

	if err := buildDirectory(dir, buildOptions{PDF: true}); err != nil {
		t.Fatalf("buildDirectory failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "a.pdf"))
	if err != nil {
		t.Fatalf("a.pdf missing: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("expected a PDF header")
	}
}

func TestBuildReadsSiteConfig(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, filepath.Join(dir, "markpress.yml"), "title: Notes\nstylesheet: notes.css\n")
	writeFixture(t, filepath.Join(dir, "a.md"), "# A\n")

	if err := buildDirectory(dir, buildOptions{}); err != nil {
		t.Fatalf("buildDirectory failed: %v", err)
	}
	page, err := os.ReadFile(filepath.Join(dir, "a.html"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(page), `href="notes.css"`) {
		t.Error("stylesheet from markpress.yml not applied")
	}
}
