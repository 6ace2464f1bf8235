// Package filesystem provides the file access abstraction used to read stylesheets.
//
// Key interfaces:
//   - FileSystemProvider: reads file content and metadata
//   - FileInfo: file metadata, an alias of fs.FileInfo
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
