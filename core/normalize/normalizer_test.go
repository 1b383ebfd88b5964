package normalize

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	html := `<h1>Generators</h1><p>Lazy <strong>by default</strong>.</p><pre><code>function* gen() {}</code></pre>`

	got, err := New().Normalize(html)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	if !strings.Contains(got, "# Generators") {
		t.Errorf("expected markdown heading, got:\n%s", got)
	}
	if !strings.Contains(got, "**by default**") {
		t.Errorf("expected bold markdown, got:\n%s", got)
	}
	if !strings.Contains(got, "function* gen()") {
		t.Errorf("code content lost, got:\n%s", got)
	}
}
