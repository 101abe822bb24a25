package flow2tex

import (
	"fmt"
	"strings"
	"text/template"
)

// fragmentSeparator sits between consecutive fragments in both templates.
const fragmentSeparator = "\n\n"

// Template delimiters: LaTeX source is full of braces, so the default
// {{ }} pair is swapped for << >>.
const (
	delimLeft  = "<<"
	delimRight = ">>"
)

// fullDocumentText is the complete-worksheet template: preamble, banner
// populated from header/title, fragment body, terminator.
const fullDocumentText = `\documentclass[11pt]{article}
\usepackage[T1]{fontenc}
\usepackage[utf8]{inputenc}
\usepackage{graphicx}
\usepackage{amsmath}
\usepackage[margin=1in]{geometry}
\setlength{\parindent}{0pt}
\setlength{\parskip}{5pt}
\newcommand{\correct}{\marginpar{\large$\Longrightarrow$}}
\newenvironment{examtronproblem}[1]%
{\medskip\par\noindent\textbf{#1}\par\nobreak\smallskip}%
{\par\medskip}
\begin{document}

\begin{center}
{\Large\bfseries <<.Header>>}\\[1ex]
{\large <<.Title>>}
\end{center}
\hrule
\bigskip

<<.Body>>

\end{document}
`

// questionsOnlyText emits the fragments alone, for inclusion in a document
// that supplies its own preamble.
const questionsOnlyText = `<<.Body>>
`

// Templates holds the parsed top-level document templates. Build once
// (DefaultTemplates) and pass explicitly; never mutated after parse.
type Templates struct {
	full          *template.Template
	questionsOnly *template.Template
}

// DefaultTemplates returns the built-in template pair. The literals are
// fixed, so a parse failure is a programmer error and panics via Must.
func DefaultTemplates() Templates {
	return Templates{
		full:          mustTemplate("document", fullDocumentText),
		questionsOnly: mustTemplate("questions-only", questionsOnlyText),
	}
}

func mustTemplate(name, text string) *template.Template {
	return template.Must(template.New(name).Delims(delimLeft, delimRight).Parse(text))
}

// documentData feeds the top-level templates.
type documentData struct {
	Header string
	Title  string
	Body   string
}

// assemble substitutes the ordered fragments into one of the two templates.
// Fragment order is exactly the input order; nothing is reordered, merged,
// or dropped here.
func assemble(tmpl Templates, fragments []string, header, title string, questionsOnly bool) (string, error) {
	t := tmpl.full
	if questionsOnly {
		t = tmpl.questionsOnly
	}

	data := documentData{
		Header: header,
		Title:  title,
		Body:   strings.Join(fragments, fragmentSeparator),
	}

	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrAssemble, err)
	}
	return sb.String(), nil
}
