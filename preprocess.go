package flow2tex

import "regexp"

// Precompiled patterns for markup preprocessing.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Compress multiple blank lines to max 2
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

// preprocessMarkup normalizes authored markup before conversion. Flow files
// are edited on mixed platforms and page fields often end with stray blank
// runs from YAML block scalars.
func preprocessMarkup(markup string) string {
	markup = normalizeLineEndings(markup)
	return compressBlankLines(markup)
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(markup string) string {
	return crlfOrCR.ReplaceAllString(markup, "\n")
}

// compressBlankLines limits consecutive blank lines to 2 maximum.
func compressBlankLines(markup string) string {
	return multipleBlankLines.ReplaceAllString(markup, "\n\n")
}
