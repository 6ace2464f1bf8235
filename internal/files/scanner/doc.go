// Package scanner runs the brace balance scan over files.
//
// The scanner package is responsible for:
//   - Reading the stylesheet through a filesystem.FileSystemProvider
//   - Decoding its bytes with the configured text encoding
//   - Splitting the text into lines with universal newline handling
//   - Feeding the lines to the braces package
//
// Read and decode failures are reported as bracecheck.ErrInputUnreadable.
// The file is read completely and released before the scan starts.
package scanner
