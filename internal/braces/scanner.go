package braces

import (
	"strings"
	"unicode/utf8"

	"github.com/vvka-141/bracecheck/pkg/bracecheck"
)

// Options tunes a scan.
type Options struct {
	// ContextWidth is the maximum number of characters kept as the context of
	// an opening brace. Values below 1 fall back to bracecheck.DefaultContextWidth.
	ContextWidth int
}

// ExtraCloseFunc receives extra closing braces as soon as they are found.
type ExtraCloseFunc func(bracecheck.ExtraClose)

// Scan runs the brace balance scan over lines. Each line may keep its line
// terminator; terminators never affect counts or columns.
//
// onExtra, if non-nil, is called for every extra closing brace in scan order,
// before Scan returns. The same events are also collected in Result.Extra.
func Scan(lines []string, opts Options, onExtra ExtraCloseFunc) bracecheck.Result {
	width := opts.ContextWidth
	if width < 1 {
		width = bracecheck.DefaultContextWidth
	}

	var (
		result bracecheck.Result
		stack  []bracecheck.OpenBrace
	)

	for i, line := range lines {
		lineNum := i + 1
		col := 0
		for offset, r := range line {
			switch r {
			case '{':
				result.Opening++
				stack = append(stack, bracecheck.OpenBrace{
					Line:    lineNum,
					Column:  col,
					Context: Context(line[:offset], width),
				})
			case '}':
				result.Closing++
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
					break
				}
				extra := bracecheck.ExtraClose{
					Line:   lineNum,
					Column: col,
					Text:   strings.TrimSpace(line),
				}
				result.Extra = append(result.Extra, extra)
				if onExtra != nil {
					onExtra(extra)
				}
			}
			col++
		}
	}

	result.Unclosed = stack
	return result
}

// Context returns prefix with surrounding whitespace stripped, keeping only
// its last width characters when it is longer than that.
func Context(prefix string, width int) string {
	return lastRunes(strings.TrimSpace(prefix), width)
}

// lastRunes returns the trailing n runes of s.
func lastRunes(s string, n int) string {
	excess := utf8.RuneCountInString(s) - n
	if excess <= 0 {
		return s
	}
	for i := range s {
		if excess == 0 {
			return s[i:]
		}
		excess--
	}
	return ""
}
