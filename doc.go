// Package flow2tex converts course-assessment flow descriptions into
// print-ready LaTeX worksheets.
//
// # Quick Start
//
// Parse a flow file and convert it:
//
//	flow, err := flow2tex.ParseFlow(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	svc := flow2tex.New()
//	doc, err := svc.Convert(ctx, flow2tex.Input{
//	    Flow:   flow,
//	    Header: "CS 450 / Fall 2026",
//	    Title:  "Worksheet 3",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("worksheet.tex", []byte(doc), 0644)
//
// # Conversion Pipeline
//
// The conversion is a single synchronous pass:
//
//  1. Flatten the flow's groups into one ordered page list
//  2. Render each page through its type-specific strategy (markup is
//     translated to LaTeX via pandoc; resource references are resolved)
//  3. Optionally wrap each fragment in a titled problem environment
//  4. Substitute the fragments into a top-level document template
//
// A page with an unrecognized type is skipped with a diagnostic on the
// configured writer; every other failure aborts the conversion.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := flow2tex.New(
//	    flow2tex.WithTimeout(2 * time.Minute),
//	    flow2tex.WithDiagnostics(logWriter),
//	)
//
// Per-conversion options are passed via Input: WrapProblems bounds each
// page in an examtronproblem environment, QuestionsOnly drops the document
// preamble and banner, SinglePage renders a one-page flow without assembly.
//
// # Pandoc Requirement
//
// Markup conversion shells out to pandoc, which must be on PATH. Run
// "flow2tex doctor" to verify the installation.
package flow2tex
