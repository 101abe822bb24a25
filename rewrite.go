package flow2tex

import (
	"regexp"
	"strings"
)

// These rewrites target syntax injected by the course configuration layer,
// not prose markup, so they stay out of the conversion engine: resource
// namespace prefixes on include directives, fill-in-the-blank tokens, and
// the correct-choice marker.

// includeHeight is the display height applied to every rewritten image
// include, namespaced paths carry no sizing of their own.
const includeHeight = "4cm"

var (
	// media:X resolves under the media/ subdirectory of the output tree.
	mediaIncludePattern = regexp.MustCompile(`\\includegraphics\{media:(.*?)\}`)

	// repo:X resolves against the course repository root, path kept verbatim.
	repoIncludePattern = regexp.MustCompile(`\\includegraphics\{repo:(.*?)\}`)

	// Fill-in blanks are authored as [[name]]; pandoc escapes the brackets,
	// so the token arrives in LaTeX as {[}{[}name{]}{]}.
	blankMarkerPattern = regexp.MustCompile(`\{\[\}\{\[\}\w+\{\]\}\{\]\}`)
)

// blankBox is the drawn answer box substituted for each blank marker.
const blankBox = `\framebox[10em]{\rule{0pt}{3.5ex}}`

// correctMarker tags a choice as correct in authored markup.
const correctMarker = "~CORRECT~"

// correctDirective replaces correctMarker before conversion; pandoc passes
// raw LaTeX commands through, so the directive survives translation.
const correctDirective = `\correct{}`

// RewriteResourcePaths resolves namespaced include-graphics targets to
// physical paths. Every occurrence is rewritten; the rewritten form no
// longer matches the input patterns, so applying the rewrite twice is a
// no-op.
func RewriteResourcePaths(tex string) string {
	tex = mediaIncludePattern.ReplaceAllString(tex, `\includegraphics[height=`+includeHeight+`]{media/$1}`)
	return repoIncludePattern.ReplaceAllString(tex, `\includegraphics[height=`+includeHeight+`]{$1}`)
}

// substituteBlanks replaces every escaped blank marker with a drawn box.
// A marker that never matches (malformed token) is left as-is: the question
// renders with no blank rather than failing.
func substituteBlanks(tex string) string {
	return blankMarkerPattern.ReplaceAllLiteralString(tex, blankBox)
}

// markCorrectChoices swaps the literal correctness marker for its LaTeX
// directive. Applied to choice markup before conversion.
func markCorrectChoices(markup string) string {
	return strings.ReplaceAll(markup, correctMarker, correctDirective)
}
