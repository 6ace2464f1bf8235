package cli

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/vvka-141/bracecheck/pkg/bracecheck"
)

// useColor decides whether the report written to out gets ANSI colour.
// In auto mode colour is used only for a terminal and only when NO_COLOR is unset.
func useColor(mode string, out io.Writer) bool {
	switch mode {
	case bracecheck.ColorOn:
		return true
	case bracecheck.ColorOff:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := out.(*os.File)
	return ok && isTerminal(f)
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
