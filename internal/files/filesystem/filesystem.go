package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// FileSystemProvider gives read access to files.
type FileSystemProvider interface {
	// ReadFile reads the whole file at the given path.
	// The underlying handle is released before ReadFile returns.
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)
}
