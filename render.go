package flow2tex

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Vertical answer-space allowances per question kind. Handwritten answers
// need room on paper that the on-line forms never show.
const (
	textAnswerSpace   = `\vspace*{2cm}`
	inlineAnswerSpace = `\vspace*{1cm}`
	codeAnswerSpace   = `\vspace*{3cm}`
	uploadAnswerSpace = `\vspace*{5cm}`
)

// renderer turns pages into LaTeX fragments. Rendering is a pure function
// of the page: no state is carried from one page to the next.
type renderer struct {
	translator *translator
	diag       io.Writer
}

// renderPage converts one page into a fragment. ok reports whether the page
// produced one: an unrecognized type emits a diagnostic and yields nothing,
// and is the only non-fatal failure. Any error aborts the whole run.
func (r *renderer) renderPage(ctx context.Context, page Page) (Fragment, bool, error) {
	body, ok, err := r.renderBody(ctx, page)
	if err != nil || !ok {
		return Fragment{}, ok, err
	}
	return Fragment{Body: body, Title: resolveTitle(page)}, true, nil
}

// renderBody dispatches on the page type tag.
func (r *renderer) renderBody(ctx context.Context, page Page) (string, bool, error) {
	switch page.Type {
	case TypePage:
		content, err := required(page, page.Content, ErrMissingContent)
		if err != nil {
			return "", false, err
		}
		body, err := r.translator.Translate(ctx, content)
		return body, true, err

	case TypeTextQuestion, TypeSurveyTextQuestion:
		prompt, err := r.translatePrompt(ctx, page)
		if err != nil {
			return "", false, err
		}
		return prompt + "\n" + textAnswerSpace, true, nil

	case TypeInlineMultiQuestion:
		return r.renderInlineMulti(ctx, page)

	case TypePythonCodeQuestion, TypePythonCodeQuestionWithHumanTextFeedback:
		return r.renderCode(ctx, page)

	case TypeFileUploadQuestion:
		prompt, err := r.translatePrompt(ctx, page)
		if err != nil {
			return "", false, err
		}
		return prompt + "\n" + uploadAnswerSpace, true, nil

	case TypeChoiceQuestion, TypeMultipleChoiceQuestion, TypeSurveyChoiceQuestion:
		return r.renderChoices(ctx, page)

	default:
		fmt.Fprintf(r.diag, "flow2tex: page %q: unrecognized page type %q, skipping\n", page.ID, page.Type)
		return "", false, nil
	}
}

// renderInlineMulti translates the question text and substitutes each blank
// marker with a drawn answer box. Markers that never match are left alone;
// the question then renders without blanks.
func (r *renderer) renderInlineMulti(ctx context.Context, page Page) (string, bool, error) {
	question, err := required(page, page.Question, ErrMissingQuestion)
	if err != nil {
		return "", false, err
	}
	questionTex, err := r.translator.Translate(ctx, question)
	if err != nil {
		return "", false, err
	}
	questionTex = substituteBlanks(chomp(questionTex))

	prompt, err := r.translatePrompt(ctx, page)
	if err != nil {
		return "", false, err
	}
	return prompt + "\n\n" + questionTex + "\n" + inlineAnswerSpace, true, nil
}

// renderCode appends the starter code in a verbatim block. Code must render
// byte-for-byte as authored, so it bypasses markup translation entirely.
func (r *renderer) renderCode(ctx context.Context, page Page) (string, bool, error) {
	prompt, err := r.translatePrompt(ctx, page)
	if err != nil {
		return "", false, err
	}
	body := prompt
	if page.InitialCode != nil {
		code := *page.InitialCode
		if !strings.HasSuffix(code, "\n") {
			code += "\n"
		}
		body += "\n\\begin{verbatim}\n" + code + "\\end{verbatim}"
	}
	return body + "\n" + codeAnswerSpace, true, nil
}

// renderChoices translates the prompt and each non-null choice into a
// bounded item list, preserving authored order. Null choices are skipped
// entirely and contribute no item.
func (r *renderer) renderChoices(ctx context.Context, page Page) (string, bool, error) {
	prompt, err := r.translatePrompt(ctx, page)
	if err != nil {
		return "", false, err
	}

	items := make([]string, 0, len(page.Choices))
	for _, choice := range page.Choices {
		if choice == nil {
			continue
		}
		choiceTex, err := r.translator.Translate(ctx, markCorrectChoices(*choice))
		if err != nil {
			return "", false, err
		}
		items = append(items, `\item `+chomp(choiceTex))
	}

	body := prompt + "\n\\begin{itemize}\n" + strings.Join(items, "\n") + "\n\\end{itemize}"
	return body, true, nil
}

// translatePrompt fetches and translates the required prompt field.
func (r *renderer) translatePrompt(ctx context.Context, page Page) (string, error) {
	prompt, err := required(page, page.Prompt, ErrMissingPrompt)
	if err != nil {
		return "", err
	}
	tex, err := r.translator.Translate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return chomp(tex), nil
}

// resolveTitle picks the explicit page title, falls back to the first
// heading of the prompt markup, then to the empty string.
func resolveTitle(page Page) string {
	if page.Title != nil {
		return *page.Title
	}
	if page.Prompt != nil {
		return ExtractTitle(*page.Prompt)
	}
	return ""
}

// required returns the field value or the variant's missing-field error.
func required(page Page, field *string, sentinel error) (string, error) {
	if field == nil {
		return "", fmt.Errorf("%w: %s page %q", sentinel, page.Type, page.ID)
	}
	return *field, nil
}

// wrapProblem bounds one fragment in a titled problem environment so the
// typesetting toolchain can number and extract problems. The body passes
// through untouched.
func wrapProblem(body, title string) string {
	return `\begin{examtronproblem}{` + title + `}` + "\n" + body + "\n" + `\end{examtronproblem}`
}

// chomp drops trailing newlines from converted markup; spacing between
// blocks is owned by the renderer and assembler, not the engine.
func chomp(s string) string {
	return strings.TrimRight(s, "\n")
}
