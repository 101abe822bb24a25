package flow2tex

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Service orchestrates the flow-to-LaTeX pipeline: flatten, render each
// page, optionally wrap, assemble. One Convert call produces one document.
type Service struct {
	cfg        serviceConfig
	translator *translator
	templates  Templates
	diag       io.Writer
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
func New(opts ...Option) *Service {
	s := &Service{
		cfg:       serviceConfig{timeout: defaultTimeout},
		templates: DefaultTemplates(),
		diag:      os.Stderr,
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create the translator if not injected (e.g., by tests)
	if s.translator == nil {
		s.translator = newTranslator(newPandocConverter())
	}

	return s
}

// Convert renders the flow and returns the assembled LaTeX document.
// The context is used for cancellation; the service timeout bounds the
// whole pass, pandoc subprocesses included.
func (s *Service) Convert(ctx context.Context, input Input) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.timeout)
	defer cancel()

	pages := input.Flow.Flatten()
	if len(pages) == 0 {
		return "", ErrEmptyFlow
	}

	r := &renderer{translator: s.translator, diag: s.diag}

	if input.SinglePage {
		return s.convertSinglePage(ctx, r, pages, input)
	}

	fragments := make([]string, 0, len(pages))
	for _, page := range pages {
		fragment, ok, err := r.renderPage(ctx, page)
		if err != nil {
			return "", err
		}
		if !ok {
			continue
		}
		fragments = append(fragments, finishFragment(fragment, input.WrapProblems))
	}

	return assemble(s.templates, fragments, input.Header, input.Title, input.QuestionsOnly)
}

// convertSinglePage renders the flow's only page and returns its fragment
// as the whole output, bypassing assembly.
func (s *Service) convertSinglePage(ctx context.Context, r *renderer, pages []Page, input Input) (string, error) {
	if len(pages) != 1 {
		return "", fmt.Errorf("%w: flow has %d", ErrSinglePage, len(pages))
	}

	fragment, ok, err := r.renderPage(ctx, pages[0])
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return finishFragment(fragment, input.WrapProblems), nil
}

// finishFragment applies the optional problem wrapper.
func finishFragment(fragment Fragment, wrap bool) string {
	if !wrap {
		return fragment.Body
	}
	return wrapProblem(fragment.Body, fragment.Title)
}
