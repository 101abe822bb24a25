package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	flow2tex "github.com/alnah/go-flow2tex"
	"github.com/alnah/go-flow2tex/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input specified")
	ErrReadFlow         = errors.New("failed to read flow file")
	ErrWriteDocument    = errors.New("failed to write document")
	ErrInvalidExtension = errors.New("file must have .yml or .yaml extension")
	ErrInvalidTimeout   = errors.New("invalid timeout")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// stdoutPath selects stdout as the output destination.
const stdoutPath = "-"

// runConvertCmd orchestrates one flow conversion.
func runConvertCmd(args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		return err
	}

	// Load configuration
	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	if len(positional) == 0 {
		return ErrNoInput
	}
	inputPath := positional[0]

	if err := validateFlowExtension(inputPath); err != nil {
		return err
	}

	data, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadFlow, err)
	}

	flow, err := flow2tex.ParseFlow(data)
	if err != nil {
		return err
	}

	// Banner title: flag/config, then the flow's own title
	title := cfg.Document.Title
	if title == "" {
		title = flow.Title
	}

	opts, err := serviceOptions(flags, env)
	if err != nil {
		return err
	}
	svc := flow2tex.New(opts...)

	start := env.Now()
	doc, err := svc.Convert(context.Background(), flow2tex.Input{
		Flow:          flow,
		Header:        cfg.Document.Header,
		Title:         title,
		SinglePage:    flags.singlePage,
		WrapProblems:  cfg.Render.Problems,
		QuestionsOnly: cfg.Render.QuestionsOnly,
	})
	if err != nil {
		return err
	}

	outputPath := resolveOutputPath(inputPath, flags.output, cfg)
	if outputPath == stdoutPath {
		fmt.Fprint(env.Stdout, doc)
		return nil
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, []byte(doc), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDocument, err)
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", inputPath, outputPath, time.Since(start).Round(time.Millisecond))
	} else if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", outputPath)
	}
	return nil
}

// serviceOptions builds the library options from CLI flags.
func serviceOptions(flags *convertFlags, env *Environment) ([]flow2tex.Option, error) {
	opts := []flow2tex.Option{flow2tex.WithDiagnostics(env.Stderr)}
	if flags.common.quiet {
		opts = []flow2tex.Option{flow2tex.WithDiagnostics(io.Discard)}
	}
	if flags.timeout != "" {
		d, err := time.ParseDuration(flags.timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimeout, flags.timeout)
		}
		opts = append(opts, flow2tex.WithTimeout(d))
	}
	return opts, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.header != "" {
		cfg.Document.Header = flags.header
	}
	if flags.title != "" {
		cfg.Document.Title = flags.title
	}
	if flags.problems {
		cfg.Render.Problems = true
	}
	if flags.questionsOnly {
		cfg.Render.QuestionsOnly = true
	}
}

// resolveOutputPath determines the .tex output path for a flow file.
func resolveOutputPath(inputPath, flagOutput string, cfg *config.Config) string {
	output := flagOutput
	if output == "" {
		output = cfg.Output.DefaultDir
	}

	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	switch {
	case output == "":
		return filepath.Join(filepath.Dir(inputPath), base+".tex")
	case output == stdoutPath:
		return stdoutPath
	case strings.HasSuffix(output, ".tex"):
		return output
	default:
		return filepath.Join(output, base+".tex")
	}
}

// validateFlowExtension checks that the file has a .yml or .yaml extension.
func validateFlowExtension(path string) error {
	ext := filepath.Ext(path)
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}
