package core

import (
	"fmt"
	"io"
	"os"
)

// Report accumulates per-file outcomes across one run. Per-file problems
// are collected here instead of aborting the batch; the CLI prints the
// report at the end and still exits zero when only warnings occurred.
type Report struct {
	Processed int // files visited
	Updated   int // files with at least one changed field
	Skipped   int // files skipped (missing sidecar, not in batch, ...)
	Failed    int // files the engine could not open or write

	Notes    []string // dry-run and informational lines
	Warnings []string
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{}
}

// Notef records an informational line, e.g. what a dry run would change.
func (r *Report) Notef(format string, args ...any) {
	r.Notes = append(r.Notes, fmt.Sprintf(format, args...))
}

// Warnf records a per-file or data-quality warning.
func (r *Report) Warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Print renders the run summary.
func (r *Report) Print(w io.Writer) {
	for _, n := range r.Notes {
		fmt.Fprintln(w, n)
	}
	for _, warn := range r.Warnings {
		fmt.Fprintln(w, "! "+warn)
	}
	fmt.Fprintf(w, "processed %d, updated %d, skipped %d, failed %d\n",
		r.Processed, r.Updated, r.Skipped, r.Failed)
}

// PrintSuccess prints a success message.
func PrintSuccess(msg string) {
	fmt.Println("✓ " + msg)
}

// PrintError prints an error to stderr.
func PrintError(msg string) {
	fmt.Fprintln(os.Stderr, "✗ Error: "+msg)
}
