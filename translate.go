package flow2tex

import "context"

// translator converts one rich-text markup block into LaTeX source and
// resolves resource references to their physical locations. It is the single
// seam where logical namespaces (media:, repo:) become output-tree paths.
type translator struct {
	converter markupConverter
}

func newTranslator(converter markupConverter) *translator {
	return &translator{converter: converter}
}

// Translate preprocesses the markup, converts it through the engine, and
// rewrites resource references in the result.
func (t *translator) Translate(ctx context.Context, markup string) (string, error) {
	tex, err := t.converter.ToLaTeX(ctx, preprocessMarkup(markup))
	if err != nil {
		return "", err
	}
	return RewriteResourcePaths(tex), nil
}
