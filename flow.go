package flow2tex

import (
	"fmt"

	"github.com/alnah/go-flow2tex/internal/yamlutil"
)

// ParseFlow decodes a flow description from YAML. Unknown keys are ignored:
// flow files double as grading configuration for the course platform, and
// this tool only reads the page structure.
func ParseFlow(data []byte) (Flow, error) {
	var f Flow
	if err := yamlutil.Unmarshal(data, &f); err != nil {
		return Flow{}, fmt.Errorf("%w: %v", ErrFlowParse, err)
	}
	return f, nil
}

// Flatten returns the flow's pages in document order. For a grouped flow
// that is group order, then page order within each group. Grouping has no
// effect on rendering beyond ordering.
func (f Flow) Flatten() []Page {
	if len(f.Groups) == 0 {
		return f.Pages
	}
	var pages []Page
	for _, g := range f.Groups {
		pages = append(pages, g.Pages...)
	}
	return pages
}
