package bracecheck

import (
	"errors"
	"fmt"
)

// OpenBrace records an opening brace that is still waiting for its match.
type OpenBrace struct {
	// Line is the 1-based line number of the brace.
	Line int
	// Column is the 0-based character offset of the brace within its line.
	Column int
	// Context is the stripped text preceding the brace on its line,
	// cut down to its trailing characters when longer than the context width.
	Context string
}

// ExtraClose records a closing brace seen while no opening brace was pending.
type ExtraClose struct {
	// Line is the 1-based line number of the brace.
	Line int
	// Column is the 0-based character offset of the brace within its line.
	Column int
	// Text is the whole line with surrounding whitespace stripped.
	Text string
}

// Result is the outcome of a completed brace scan.
type Result struct {
	// Opening is the number of '{' characters seen.
	Opening int
	// Closing is the number of '}' characters seen.
	Closing int
	// Unclosed holds the opening braces left pending at end of input, oldest first.
	Unclosed []OpenBrace
	// Extra holds the closing braces that had no pending opening brace, in scan order.
	Extra []ExtraClose
}

// Balanced reports whether the scan found neither unclosed blocks nor extra closing braces.
func (r Result) Balanced() bool {
	return len(r.Unclosed) == 0 && len(r.Extra) == 0
}

// CheckConfig contains all parameters needed for a single check run.
type CheckConfig struct {
	// Path is the stylesheet to scan (required)
	Path string

	// Encoding is the WHATWG label of the input text encoding.
	// Empty means DefaultEncoding.
	Encoding string

	// ContextWidth is the maximum number of characters kept as opening brace context.
	ContextWidth int

	// FailOnImbalance turns unbalanced results into ErrImbalanced.
	FailOnImbalance bool
}

// Validate checks that the configuration is usable.
func (c *CheckConfig) Validate() error {
	var errs []error

	if c.Path == "" {
		errs = append(errs, fmt.Errorf("Path is required: %w", ErrInvalidConfig))
	}

	if c.ContextWidth < 1 {
		errs = append(errs, fmt.Errorf("context width must be at least 1, got %d: %w", c.ContextWidth, ErrInvalidConfig))
	}

	return errors.Join(errs...)
}
