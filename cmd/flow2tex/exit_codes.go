package main

import (
	"errors"
	"os"

	flow2tex "github.com/alnah/go-flow2tex"
	"github.com/alnah/go-flow2tex/internal/config"
)

// Exit codes for flow2tex CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or flow data
	ExitIO      = 3 // File not found, permission denied
	ExitPandoc  = 4 // Markup conversion (pandoc) errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Pandoc errors (exit 4)
	if errors.Is(err, flow2tex.ErrMarkupConversion) {
		return ExitPandoc
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadFlow) ||
		errors.Is(err, ErrWriteDocument) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/flow data errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, flow2tex.ErrEmptyFlow) ||
		errors.Is(err, flow2tex.ErrSinglePage) ||
		errors.Is(err, flow2tex.ErrFlowParse) ||
		errors.Is(err, flow2tex.ErrMissingContent) ||
		errors.Is(err, flow2tex.ErrMissingPrompt) ||
		errors.Is(err, flow2tex.ErrMissingQuestion) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidTimeout) {
		return ExitUsage
	}

	return ExitGeneral
}
