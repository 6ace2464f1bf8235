package scanner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vvka-141/bracecheck/internal/braces"
	"github.com/vvka-141/bracecheck/internal/files/filesystem"
	"github.com/vvka-141/bracecheck/internal/logging"
	"github.com/vvka-141/bracecheck/internal/textenc"
	"github.com/vvka-141/bracecheck/pkg/bracecheck"
)

// Scanner reads stylesheets and checks their brace balance.
// Scanner is safe for concurrent use by multiple goroutines as long as
// the provided fsProvider and logger are also thread-safe.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
	logger     bracecheck.Logger
}

// NewScanner creates a new file scanner backed by the OS filesystem.
// A nil logger discards all messages.
func NewScanner(logger bracecheck.Logger) *Scanner {
	return NewScannerWithFS(filesystem.NewOSFileSystem(), logger)
}

// NewScannerWithFS creates a new file scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider, logger bracecheck.Logger) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Scanner{
		fsProvider: fsProvider,
		logger:     logger,
	}
}

// ScanFile reads cfg.Path and runs the brace scan over its lines.
// onExtra is forwarded to braces.Scan and sees extra closing braces as they are found.
//
// Returns:
//   - bracecheck.Result: counts, unclosed blocks and extra closing braces
//   - error: wraps bracecheck.ErrInputUnreadable when the file cannot be read or
//     decoded, bracecheck.ErrUnknownEncoding for an unrecognized encoding label
func (s *Scanner) ScanFile(cfg bracecheck.CheckConfig, onExtra braces.ExtraCloseFunc) (bracecheck.Result, error) {
	text, err := s.readText(cfg.Path, cfg.Encoding)
	if err != nil {
		return bracecheck.Result{}, err
	}

	lines := SplitLines(text)
	s.logger.Verbose("Scanning %s: %d line(s)", cfg.Path, len(lines))

	result := braces.Scan(lines, braces.Options{ContextWidth: cfg.ContextWidth}, onExtra)

	s.logger.Verbose("Scan complete: %d opening, %d closing, %d unclosed, %d extra",
		result.Opening, result.Closing, len(result.Unclosed), len(result.Extra))
	return result, nil
}

// readText loads and decodes the file at path.
func (s *Scanner) readText(path, encoding string) (string, error) {
	// An unknown label is a configuration error, checked before touching the file.
	if _, err := textenc.Lookup(encoding); err != nil {
		return "", err
	}

	info, err := s.fsProvider.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", bracecheck.ErrInputUnreadable, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", bracecheck.ErrInputUnreadable, path)
	}

	data, err := s.fsProvider.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", bracecheck.ErrInputUnreadable, err)
	}
	s.logger.Verbose("Read %s (%d bytes)", path, len(data))

	text, err := textenc.Decode(data, encoding)
	if err != nil {
		if errors.Is(err, bracecheck.ErrInputUnreadable) {
			return "", fmt.Errorf("%s: %w", path, err)
		}
		return "", err
	}
	return text, nil
}

var newlineNormalizer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// SplitLines splits text into lines, each keeping its "\n" terminator.
// "\r\n" and lone "\r" are treated as line breaks and normalized to "\n".
// Empty text has no lines; a final line without terminator is kept as is.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = newlineNormalizer.Replace(text)
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
