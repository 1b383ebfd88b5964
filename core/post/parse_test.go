package post

import (
	"testing"
	"time"
)

var modTime = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func TestParseFrontMatter(t *testing.T) {
	source := []byte(`---
title: "Generators in TypeScript"
slug: ts-generators
date: 2026-01-02T00:00:00Z
author: Gaurav
tags: [typescript, generators]
summary: Lazy sequences without the ceremony.
draft: true
---

Body text here.
`)

	p, err := Parse("posts/generators.md", source, modTime)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if p.Meta.Title != "Generators in TypeScript" {
		t.Errorf("title: got %q", p.Meta.Title)
	}
	if p.Meta.Slug != "ts-generators" {
		t.Errorf("slug: got %q", p.Meta.Slug)
	}
	if p.Meta.Date.Year() != 2026 || p.Meta.Date.Month() != time.January {
		t.Errorf("date: got %v", p.Meta.Date)
	}
	if !p.Meta.Draft {
		t.Error("expected draft")
	}
	if len(p.Meta.Tags) != 2 {
		t.Errorf("tags: got %v", p.Meta.Tags)
	}
	if string(p.Body) == string(source) {
		t.Error("frontmatter block should be stripped from the body")
	}
}

func TestParseWithoutFrontMatter(t *testing.T) {
	source := []byte("# Module imports, revisited\n\nSome prose.\n")

	p, err := Parse("posts/module-imports.md", source, modTime)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if p.Meta.Title != "Module imports, revisited" {
		t.Errorf("expected title from first H1, got %q", p.Meta.Title)
	}
	if p.Meta.Slug != "module-imports" {
		t.Errorf("expected slug from filename, got %q", p.Meta.Slug)
	}
	if !p.Meta.Date.Equal(modTime) {
		t.Errorf("expected date from modification time, got %v", p.Meta.Date)
	}
	if p.Meta.Language != "en" {
		t.Errorf("expected default language en, got %q", p.Meta.Language)
	}
}

func TestParseTitleFromFilename(t *testing.T) {
	p, err := Parse("posts/random-numbers.md", []byte("No headings at all.\n"), modTime)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if p.Meta.Title != "Random numbers" {
		t.Errorf("expected title from filename, got %q", p.Meta.Title)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Generators in TypeScript", "generators-in-typescript"},
		{"The \"Try\" pattern!", "the-try-pattern"},
		{"  spaced  out  ", "spaced-out"},
		{"already-a-slug", "already-a-slug"},
		{"Ünïcöde bits", "n-c-de-bits"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
