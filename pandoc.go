package flow2tex

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/alnah/go-flow2tex/internal/fileutil"
)

// markupConverter abstracts rich-text markup to LaTeX conversion.
type markupConverter interface {
	ToLaTeX(ctx context.Context, markup string) (string, error)
}

// commandRunner abstracts command execution to enable testing without real
// subprocesses.
type commandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
}

// execRunner implements commandRunner using os/exec.
type execRunner struct{}

func (r *execRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return "", "", fmt.Errorf("creating stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return "", "", fmt.Errorf("starting command: %w", err)
	}

	stderrContent, err := io.ReadAll(stderrPipe)
	if err != nil {
		return "", "", fmt.Errorf("reading stderr: %w", err)
	}

	err = cmd.Wait()
	return stdout.String(), string(stderrContent), err
}

// pandocConverter converts Markdown to LaTeX by invoking the Pandoc CLI.
// Pandoc's markdown reader passes raw LaTeX through untouched, which the
// renderer relies on for injected directives.
type pandocConverter struct {
	runner commandRunner
}

// newPandocConverter creates a pandocConverter with a real command runner.
func newPandocConverter() *pandocConverter {
	return &pandocConverter{runner: &execRunner{}}
}

// ToLaTeX converts a Markdown block to LaTeX source. Empty input converts
// to empty output without spawning a subprocess.
func (c *pandocConverter) ToLaTeX(ctx context.Context, markup string) (string, error) {
	if markup == "" {
		return "", nil
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(markup, "md")
	if err != nil {
		return "", err
	}
	defer cleanup()

	stdout, stderr, err := c.runner.Run(ctx, "pandoc", tmpPath, "-f", "markdown", "-t", "latex")
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrMarkupConversion, strings.TrimSpace(stderr), err)
	}

	return stdout, nil
}
