// Package files provides file-related functionality organized into sub-packages:
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//   - scanner: Reads and decodes a stylesheet and runs the brace scan over its lines
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/bracecheck/internal/files/scanner"
//	    "github.com/vvka-141/bracecheck/pkg/bracecheck"
//	)
//
//	s := scanner.NewScanner(logger)
//	result, err := s.ScanFile(bracecheck.CheckConfig{
//	    Path:         "src/index.css",
//	    ContextWidth: bracecheck.DefaultContextWidth,
//	}, nil)
package files
