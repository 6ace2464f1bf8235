// Package braces implements the curly-brace balance scan.
//
// The scan is a single pass over a sequence of lines. Every '{' pushes an
// open record (line, column, context) on a LIFO stack and every '}' pops one.
// A '}' met with an empty stack is reported as an extra closing brace the
// moment it is seen; whatever is left on the stack at the end of input is
// reported as unclosed.
//
// The scan knows nothing about CSS syntax: braces inside strings and comments
// are counted exactly like structural braces.
//
// Columns are 0-based and counted in characters (runes), not bytes, so a
// brace after non-ASCII text reports the same column an editor would show.
// Line numbers are 1-based.
package braces
