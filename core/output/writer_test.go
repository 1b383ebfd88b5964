package output

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteBesideSource(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "a.md")
	if err := os.WriteFile(source, []byte("# A"), 0644); err != nil {
		t.Fatalf("fixture: %v", err)
	}

	w, err := New("")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	path, err := w.Write(dir, source, []byte("<html></html>"), ".html")
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if path != filepath.Join(dir, "a.html") {
		t.Errorf("expected output beside source, got %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}

func TestWriteMirrorsTree(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "public")
	source := filepath.Join(dir, "posts", "nested", "a.md")
	if err := os.MkdirAll(filepath.Dir(source), 0755); err != nil {
		t.Fatalf("fixture: %v", err)
	}
	if err := os.WriteFile(source, []byte("# A"), 0644); err != nil {
		t.Fatalf("fixture: %v", err)
	}

	w, err := New(out)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	path, err := w.Write(filepath.Join(dir, "posts"), source, []byte("x"), ".html")
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	want := filepath.Join(out, "nested", "a.html")
	if path != want {
		t.Errorf("expected %s, got %s", want, path)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}

func TestWriteIdempotent(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "a.md")
	if err := os.WriteFile(source, []byte("# A"), 0644); err != nil {
		t.Fatalf("fixture: %v", err)
	}

	w, err := New("")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := w.Write(dir, source, []byte("same"), ".html"); err != nil {
			t.Fatalf("Write run %d failed: %v", i+1, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "a.html"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data) != "same" {
		t.Errorf("unexpected content after rewrite: %q", data)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	w, err := New("")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	path, err := w.WriteFile(dir, "index.html", []byte("<html></html>"))
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if path != filepath.Join(dir, "index.html") {
		t.Errorf("expected index in root, got %s", path)
	}
}
