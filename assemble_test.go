package flow2tex

import (
	"strings"
	"testing"
)

func TestAssembleFullDocument(t *testing.T) {
	t.Parallel()

	tmpl := DefaultTemplates()
	fragments := []string{"first fragment", "second fragment"}

	doc, err := assemble(tmpl, fragments, "CS 450 / Fall 2026", "Worksheet 3", false)
	if err != nil {
		t.Fatalf("assemble() error: %v", err)
	}

	for _, want := range []string{
		`\documentclass[11pt]{article}`,
		"CS 450 / Fall 2026",
		"Worksheet 3",
		"first fragment",
		"second fragment",
		`\end{document}`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}

	if !strings.Contains(doc, "first fragment"+fragmentSeparator+"second fragment") {
		t.Errorf("fragments not separated by exactly one blank line:\n%s", doc)
	}
}

func TestAssembleQuestionsOnly(t *testing.T) {
	t.Parallel()

	tmpl := DefaultTemplates()
	fragments := []string{"one", "two", "three"}

	doc, err := assemble(tmpl, fragments, "ignored header", "ignored title", true)
	if err != nil {
		t.Fatalf("assemble() error: %v", err)
	}

	want := "one\n\ntwo\n\nthree\n"
	if doc != want {
		t.Errorf("assemble() = %q, want %q", doc, want)
	}
	if strings.Contains(doc, `\documentclass`) || strings.Contains(doc, "ignored") {
		t.Errorf("questions-only document carries preamble or banner:\n%s", doc)
	}
}

// Assembly must preserve input order exactly, whatever it is.
func TestAssembleOrder(t *testing.T) {
	t.Parallel()

	tmpl := DefaultTemplates()
	permutations := [][]string{
		{"alpha", "beta", "gamma"},
		{"gamma", "alpha", "beta"},
		{"beta", "gamma", "alpha"},
	}

	for _, fragments := range permutations {
		doc, err := assemble(tmpl, fragments, "h", "t", false)
		if err != nil {
			t.Fatalf("assemble() error: %v", err)
		}

		last := -1
		for _, frag := range fragments {
			idx := strings.Index(doc, frag)
			if idx < 0 {
				t.Fatalf("fragment %q missing from document", frag)
			}
			if idx < last {
				t.Errorf("fragment %q out of order for input %v", frag, fragments)
			}
			last = idx
		}
	}
}

func TestAssembleNoFragments(t *testing.T) {
	t.Parallel()

	tmpl := DefaultTemplates()
	doc, err := assemble(tmpl, nil, "h", "t", false)
	if err != nil {
		t.Fatalf("assemble() error: %v", err)
	}
	if !strings.Contains(doc, `\begin{document}`) || !strings.Contains(doc, `\end{document}`) {
		t.Errorf("empty fragment list should still produce a complete document:\n%s", doc)
	}
}
