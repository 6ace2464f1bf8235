// Package report renders brace scan results as human-readable text.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/vvka-141/bracecheck/pkg/bracecheck"
)

// Writer prints scan findings to an underlying io.Writer.
//
// The plain layout is:
//
//	Extra closing brace at line 3, column 0: }
//	Total opening braces: 2
//	Total closing braces: 2
//	Unclosed blocks: 1
//
//	Unclosed blocks:
//	  Line 7, Col 4: .card
//
// Extra closing brace lines are written by ExtraClose while the scan runs;
// the remaining lines are written by Summary once it has finished.
type Writer struct {
	out   io.Writer
	warn  *color.Color
	label *color.Color
	err   error
}

// NewWriter creates a Writer. When useColor is false the output is plain text.
func NewWriter(out io.Writer, useColor bool) *Writer {
	w := &Writer{
		out:   out,
		warn:  color.New(color.FgYellow, color.Bold),
		label: color.New(color.FgRed, color.Bold),
	}
	if useColor {
		w.warn.EnableColor()
		w.label.EnableColor()
	} else {
		w.warn.DisableColor()
		w.label.DisableColor()
	}
	return w
}

// ExtraClose writes one extra closing brace finding. It has the signature of
// braces.ExtraCloseFunc so it can be handed to the scan directly.
func (w *Writer) ExtraClose(e bracecheck.ExtraClose) {
	w.printf("%s at line %d, column %d: %s\n", w.warn.Sprint("Extra closing brace"), e.Line, e.Column, e.Text)
}

// Summary writes the totals and, if any blocks are left open, their listing in
// the order they were opened. It returns the first write error seen by w.
func (w *Writer) Summary(result bracecheck.Result) error {
	w.printf("Total opening braces: %d\n", result.Opening)
	w.printf("Total closing braces: %d\n", result.Closing)
	w.printf("Unclosed blocks: %d\n", len(result.Unclosed))

	if len(result.Unclosed) > 0 {
		w.printf("\n%s\n", w.label.Sprint("Unclosed blocks:"))
		for _, open := range result.Unclosed {
			w.printf("  Line %d, Col %d: %s\n", open.Line, open.Column, open.Context)
		}
	}
	return w.err
}

// Err returns the first write error seen by w.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) printf(format string, args ...interface{}) {
	if w.err != nil {
		return
	}
	if _, err := fmt.Fprintf(w.out, format, args...); err != nil {
		w.err = fmt.Errorf("failed to write report: %w", err)
	}
}
