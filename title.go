package flow2tex

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// titleScanLines bounds how far into a prompt the title search looks.
// Headings buried deeper in the markup belong to the body, not the page.
const titleScanLines = 10

// titleMarkdown is safe for concurrent use; parsing only, never rendered.
var titleMarkdown = goldmark.New()

// ExtractTitle returns the text of the first heading within the leading
// lines of a markup block, or "" if there is none.
func ExtractTitle(markup string) string {
	source := []byte(leadingLines(markup, titleScanLines))
	doc := titleMarkdown.Parser().Parse(text.NewReader(source))

	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if _, ok := n.(*ast.Heading); ok {
			title = nodeText(n, source)
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(title)
}

// leadingLines returns at most n leading lines of s.
func leadingLines(s string, n int) string {
	lines := strings.SplitN(s, "\n", n+1)
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}

// nodeText collects the literal text beneath an AST node.
func nodeText(n ast.Node, source []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(source))
		case *ast.String:
			sb.Write(t.Value)
		default:
			sb.WriteString(nodeText(c, source))
		}
	}
	return sb.String()
}
