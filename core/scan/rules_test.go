package scan

import "testing"

func TestIsMarkdown(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"post.md", true},
		{"post.markdown", true},
		{"POST.MD", true},
		{"post.txt", false},
		{"post.html", false},
		{"md", false},
		{"dir/post.md", true},
	}
	for _, tt := range tests {
		if got := IsMarkdown(tt.path); got != tt.want {
			t.Errorf("IsMarkdown(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestIsSkippedDir(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"_drafts", true},
		{".git", true},
		{"posts", false},
		{".", false},
		{"..", false},
	}
	for _, tt := range tests {
		if got := IsSkippedDir(tt.name); got != tt.want {
			t.Errorf("IsSkippedDir(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		source string
		ext    string
		want   string
	}{
		{"posts/generators.md", ".html", "generators.html"},
		{"try-pattern.markdown", ".html", "try-pattern.html"},
		{"a.md", ".pdf", "a.pdf"},
	}
	for _, tt := range tests {
		if got := OutputName(tt.source, tt.ext); got != tt.want {
			t.Errorf("OutputName(%q, %q) = %q, want %q", tt.source, tt.ext, got, tt.want)
		}
	}
}

func TestQueueDedupesPending(t *testing.T) {
	q := NewQueue()
	q.Add("a.md")
	q.Add("b.md")
	q.Add("a.md") // still pending, ignored

	if q.Len() != 2 {
		t.Fatalf("expected 2 queued, got %d", q.Len())
	}
	if got := q.Next(); got != "a.md" {
		t.Errorf("expected a.md first, got %s", got)
	}

	// Once popped, the same path can be queued again.
	q.Add("a.md")
	if got := q.Next(); got != "b.md" {
		t.Errorf("expected b.md, got %s", got)
	}
	if got := q.Next(); got != "a.md" {
		t.Errorf("expected re-queued a.md, got %s", got)
	}
	if q.HasNext() {
		t.Error("queue should be empty")
	}
}
