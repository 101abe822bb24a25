package flow2tex

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

// newTestService builds a Service with the fake converter injected.
func newTestService(conv markupConverter, diag io.Writer) *Service {
	opts := []Option{}
	if diag != nil {
		opts = append(opts, WithDiagnostics(diag))
	} else {
		opts = append(opts, WithDiagnostics(io.Discard))
	}
	s := New(opts...)
	s.translator = newTranslator(conv)
	return s
}

func TestConvertSinglePage(t *testing.T) {
	t.Parallel()

	conv := &fakeConverter{}
	svc := newTestService(conv, nil)

	flow := Flow{Pages: []Page{{Type: TypePage, ID: "p1", Content: strPtr("Hello")}}}
	doc, err := svc.Convert(context.Background(), Input{Flow: flow, SinglePage: true})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}

	// Single-page mode returns the translator's output, unwrapped.
	if doc != "Hello" {
		t.Errorf("Convert() = %q, want %q", doc, "Hello")
	}
	if len(conv.calls) != 1 || conv.calls[0] != "Hello" {
		t.Errorf("converter calls = %v, want [Hello]", conv.calls)
	}
}

func TestConvertSinglePageRequiresOnePage(t *testing.T) {
	t.Parallel()

	svc := newTestService(&fakeConverter{}, nil)
	flow := Flow{Pages: []Page{
		{Type: TypePage, ID: "a", Content: strPtr("one")},
		{Type: TypePage, ID: "b", Content: strPtr("two")},
	}}

	_, err := svc.Convert(context.Background(), Input{Flow: flow, SinglePage: true})
	if !errors.Is(err, ErrSinglePage) {
		t.Errorf("Convert() error = %v, want ErrSinglePage", err)
	}
}

func TestConvertSinglePageWrapped(t *testing.T) {
	t.Parallel()

	svc := newTestService(&fakeConverter{}, nil)
	flow := Flow{Pages: []Page{{
		Type:   TypeTextQuestion,
		ID:     "q1",
		Title:  strPtr("Warm-up"),
		Prompt: strPtr("Explain X"),
	}}}

	doc, err := svc.Convert(context.Background(), Input{Flow: flow, SinglePage: true, WrapProblems: true})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if !strings.HasPrefix(doc, `\begin{examtronproblem}{Warm-up}`) {
		t.Errorf("fragment not wrapped:\n%s", doc)
	}
}

func TestConvertEmptyFlow(t *testing.T) {
	t.Parallel()

	svc := newTestService(&fakeConverter{}, nil)
	_, err := svc.Convert(context.Background(), Input{})
	if !errors.Is(err, ErrEmptyFlow) {
		t.Errorf("Convert() error = %v, want ErrEmptyFlow", err)
	}
}

// An unrecognized page type is skipped with a diagnostic; the rest of the
// flow still renders and the run does not abort.
func TestConvertSkipsUnknownType(t *testing.T) {
	t.Parallel()

	var diag bytes.Buffer
	svc := newTestService(&fakeConverter{}, &diag)
	flow := Flow{Pages: []Page{
		{Type: "UnknownType", ID: "x1"},
		{Type: TypePage, ID: "p1", Content: strPtr("survivor")},
	}}

	doc, err := svc.Convert(context.Background(), Input{Flow: flow, QuestionsOnly: true})
	if err != nil {
		t.Fatalf("Convert() error = %v, want nil", err)
	}
	if want := "survivor\n"; doc != want {
		t.Errorf("Convert() = %q, want %q (exactly one fragment)", doc, want)
	}
	if !strings.Contains(diag.String(), "UnknownType") {
		t.Errorf("diagnostic missing: %q", diag.String())
	}
}

// Grouping has no rendering effect beyond ordering: a grouped flow and its
// manual flattening produce identical documents.
func TestConvertGroupedEqualsFlattened(t *testing.T) {
	t.Parallel()

	pages := []Page{
		{Type: TypePage, ID: "a", Content: strPtr("one")},
		{Type: TypeTextQuestion, ID: "b", Prompt: strPtr("two")},
		{Type: TypePage, ID: "c", Content: strPtr("three")},
	}
	grouped := Flow{Groups: []Group{
		{ID: "g1", Pages: pages[:2]},
		{ID: "g2", Pages: pages[2:]},
	}}
	flat := Flow{Pages: pages}

	input := Input{Header: "h", Title: "t", WrapProblems: true}

	input.Flow = grouped
	docGrouped, err := newTestService(&fakeConverter{}, nil).Convert(context.Background(), input)
	if err != nil {
		t.Fatalf("Convert(grouped) error: %v", err)
	}

	input.Flow = flat
	docFlat, err := newTestService(&fakeConverter{}, nil).Convert(context.Background(), input)
	if err != nil {
		t.Fatalf("Convert(flat) error: %v", err)
	}

	if docGrouped != docFlat {
		t.Errorf("grouped and flattened flows differ:\n%s\n---\n%s", docGrouped, docFlat)
	}
}

func TestConvertQuestionsOnlySeparation(t *testing.T) {
	t.Parallel()

	svc := newTestService(&fakeConverter{}, nil)
	flow := Flow{Pages: []Page{
		{Type: TypePage, ID: "a", Content: strPtr("one")},
		{Type: TypePage, ID: "b", Content: strPtr("two")},
		{Type: TypePage, ID: "c", Content: strPtr("three")},
	}}

	doc, err := svc.Convert(context.Background(), Input{Flow: flow, QuestionsOnly: true})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}

	want := "one\n\ntwo\n\nthree\n"
	if doc != want {
		t.Errorf("Convert() = %q, want %q", doc, want)
	}
	if strings.Contains(doc, `\documentclass`) {
		t.Errorf("questions-only output carries a preamble:\n%s", doc)
	}
}

func TestConvertFullDocument(t *testing.T) {
	t.Parallel()

	svc := newTestService(&fakeConverter{}, nil)
	flow := Flow{Pages: []Page{
		{Type: TypeTextQuestion, ID: "q1", Prompt: strPtr("Explain X")},
	}}

	doc, err := svc.Convert(context.Background(), Input{
		Flow:   flow,
		Header: "CS 450 / Fall 2026",
		Title:  "Midterm",
	})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}

	for _, want := range []string{
		`\documentclass[11pt]{article}`,
		"CS 450 / Fall 2026",
		"Midterm",
		"Explain X",
		textAnswerSpace,
		`\end{document}`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

// A conversion failure on any page aborts the whole run; no partial
// document is emitted.
func TestConvertAbortsOnConversionFailure(t *testing.T) {
	t.Parallel()

	conv := &fakeConverter{err: ErrMarkupConversion}
	svc := newTestService(conv, nil)
	flow := Flow{Pages: []Page{
		{Type: TypePage, ID: "a", Content: strPtr("one")},
		{Type: TypePage, ID: "b", Content: strPtr("two")},
	}}

	doc, err := svc.Convert(context.Background(), Input{Flow: flow})
	if !errors.Is(err, ErrMarkupConversion) {
		t.Errorf("Convert() error = %v, want ErrMarkupConversion", err)
	}
	if doc != "" {
		t.Errorf("Convert() returned a partial document: %q", doc)
	}
}

func TestWithTimeoutPanicsOnNonPositive(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithTimeout(0) did not panic")
		}
	}()
	WithTimeout(0)
}

func TestWithTimeoutApplies(t *testing.T) {
	t.Parallel()

	s := New(WithTimeout(2 * time.Minute))
	if s.cfg.timeout != 2*time.Minute {
		t.Errorf("timeout = %v, want 2m", s.cfg.timeout)
	}
}
