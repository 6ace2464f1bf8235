package bracecheck

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := scanner.ScanFile(path, nil)
//	if errors.Is(err, bracecheck.ErrInputUnreadable) {
//	    // Handle a missing or undecodable stylesheet
//	}
var (
	// ErrInputUnreadable indicates the input file is missing, unreadable,
	// or its contents could not be decoded.
	ErrInputUnreadable = errors.New("input unreadable")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownEncoding indicates the requested text encoding is not recognized.
	ErrUnknownEncoding = errors.New("unknown encoding")

	// ErrImbalanced indicates the scan found extra closing braces or unclosed blocks.
	// Only returned when the caller opted into failing on imbalance.
	ErrImbalanced = errors.New("unbalanced braces")
)

// usageErrorPatterns are fragments of the messages cobra and pflag produce
// for command line misuse.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts 1 arg(s)",
	"accepts at most",
	"missing required argument",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInputUnreadable):
		return ExitInputUnreadable
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrUnknownEncoding):
		return ExitConfigError
	case errors.Is(err, ErrImbalanced):
		return ExitImbalanced
	}

	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
