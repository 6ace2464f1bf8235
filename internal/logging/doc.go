// Package logging provides concrete implementations of the bracecheck.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted messages to stderr with thread-safe output
//   - NullLogger: Discards all messages (useful for testing)
//
// Log output never goes to stdout, which is reserved for the brace report.
package logging
