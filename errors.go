package flow2tex

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyFlow        = errors.New("flow contains no pages")
	ErrSinglePage       = errors.New("single-page mode requires exactly one page")
	ErrFlowParse        = errors.New("failed to parse flow")
	ErrMarkupConversion = errors.New("markup conversion failed")
	ErrAssemble         = errors.New("document template rendering failed")

	// Missing required page fields. A page whose variant needs a field it
	// does not carry aborts the whole render; no partial document is emitted.
	ErrMissingContent  = errors.New("page has no content")
	ErrMissingPrompt   = errors.New("page has no prompt")
	ErrMissingQuestion = errors.New("page has no question")
)
