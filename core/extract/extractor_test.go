package extract

import (
	"strings"
	"testing"
)

const pageWithMain = `<!DOCTYPE html>
<html>
<head><title>Post</title><script>analytics()</script></head>
<body>
<nav>Home | About</nav>
<main>
<h1>Generators</h1>
<p>Lazy by default.</p>
<pre><code>function* gen() {}</code></pre>
</main>
<footer>© 2026</footer>
</body>
</html>`

func TestExtractPrefersMain(t *testing.T) {
	got, err := New().Extract(pageWithMain)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if !strings.Contains(got, "Lazy by default.") {
		t.Error("article text missing from extraction")
	}
	if !strings.Contains(got, "function* gen()") {
		t.Error("code block must survive extraction")
	}
	for _, noise := range []string{"Home | About", "© 2026", "analytics()"} {
		if strings.Contains(got, noise) {
			t.Errorf("noise %q leaked into extraction", noise)
		}
	}
}

func TestExtractFallsBackToBody(t *testing.T) {
	got, err := New().Extract("<html><body><p>just text</p></body></html>")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if !strings.Contains(got, "just text") {
		t.Error("body fallback lost the content")
	}
}
