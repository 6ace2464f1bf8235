package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/bracecheck/internal/files/filesystem"
	"github.com/vvka-141/bracecheck/pkg/bracecheck"
)

func newTestScanner(files map[string]string) *Scanner {
	mfs := filesystem.NewMemoryFileSystem("/project")
	for path, content := range files {
		mfs.AddFile(path, content)
	}
	return NewScannerWithFS(mfs, nil)
}

func checkConfig(path string) bracecheck.CheckConfig {
	return bracecheck.CheckConfig{Path: path, ContextWidth: bracecheck.DefaultContextWidth}
}

func TestScanFile_Balanced(t *testing.T) {
	s := newTestScanner(map[string]string{
		"src/index.css": ".a {\n  color: red;\n}\n@media print {\n  .b { display: none; }\n}\n",
	})

	result, err := s.ScanFile(checkConfig("/project/src/index.css"), nil)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Opening)
	assert.Equal(t, 3, result.Closing)
	assert.True(t, result.Balanced())
}

func TestScanFile_ReportsExtraClosingBracesInOrder(t *testing.T) {
	s := newTestScanner(map[string]string{
		"index.css": "}\n.a { }\n  } .b\n",
	})

	var seen []bracecheck.ExtraClose
	result, err := s.ScanFile(checkConfig("index.css"), func(e bracecheck.ExtraClose) {
		seen = append(seen, e)
	})
	require.NoError(t, err)

	require.Equal(t, []bracecheck.ExtraClose{
		{Line: 1, Column: 0, Text: "}"},
		{Line: 3, Column: 2, Text: "} .b"},
	}, seen)
	assert.Equal(t, seen, result.Extra)
}

func TestScanFile_EmptyFile(t *testing.T) {
	s := newTestScanner(map[string]string{"empty.css": ""})

	result, err := s.ScanFile(checkConfig("empty.css"), nil)
	require.NoError(t, err)
	assert.Equal(t, bracecheck.Result{}, result)
}

func TestScanFile_CRLFLineEndings(t *testing.T) {
	s := newTestScanner(map[string]string{
		"win.css": "a {\r\n\r\nb {\r\n}\r\n",
	})

	result, err := s.ScanFile(checkConfig("win.css"), nil)
	require.NoError(t, err)

	require.Len(t, result.Unclosed, 1)
	assert.Equal(t, bracecheck.OpenBrace{Line: 1, Column: 2, Context: "a"}, result.Unclosed[0])
}

func TestScanFile_MissingFile(t *testing.T) {
	s := newTestScanner(nil)

	_, err := s.ScanFile(checkConfig("missing.css"), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, bracecheck.ErrInputUnreadable), "got %v", err)
}

func TestScanFile_Directory(t *testing.T) {
	s := newTestScanner(map[string]string{"src/index.css": "{}"})

	_, err := s.ScanFile(checkConfig("src"), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, bracecheck.ErrInputUnreadable), "got %v", err)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestScanFile_InvalidUTF8(t *testing.T) {
	s := newTestScanner(map[string]string{"bad.css": "a { content: \"\xff\" }"})

	_, err := s.ScanFile(checkConfig("bad.css"), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, bracecheck.ErrInputUnreadable), "got %v", err)
	assert.Contains(t, err.Error(), "bad.css")
}

func TestScanFile_Latin1(t *testing.T) {
	s := newTestScanner(map[string]string{"latin.css": ".caf\xe9 {"})

	cfg := checkConfig("latin.css")
	cfg.Encoding = "latin1"
	result, err := s.ScanFile(cfg, nil)
	require.NoError(t, err)

	require.Len(t, result.Unclosed, 1)
	assert.Equal(t, ".café", result.Unclosed[0].Context)
	assert.Equal(t, 6, result.Unclosed[0].Column)
}

func TestScanFile_UnknownEncodingIsNotInputError(t *testing.T) {
	s := newTestScanner(map[string]string{"a.css": "{}"})

	cfg := checkConfig("a.css")
	cfg.Encoding = "no-such-encoding"
	_, err := s.ScanFile(cfg, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, bracecheck.ErrUnknownEncoding), "got %v", err)
	assert.False(t, errors.Is(err, bracecheck.ErrInputUnreadable))
}

func TestScanFile_CustomContextWidth(t *testing.T) {
	s := newTestScanner(map[string]string{"a.css": ".navigation-menu {"})

	cfg := checkConfig("a.css")
	cfg.ContextWidth = 4
	result, err := s.ScanFile(cfg, nil)
	require.NoError(t, err)

	require.Len(t, result.Unclosed, 1)
	assert.Equal(t, "menu", result.Unclosed[0].Context)
}

func TestScanFile_OSFileSystem(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "style.css")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("x", 80)+"{\n"), 0644))

	result, err := NewScanner(nil).ScanFile(checkConfig(path), nil)
	require.NoError(t, err)

	require.Len(t, result.Unclosed, 1)
	assert.Equal(t, strings.Repeat("x", 50), result.Unclosed[0].Context)
}

func TestNewScannerWithFS_NilProviderPanics(t *testing.T) {
	assert.Panics(t, func() { NewScannerWithFS(nil, nil) })
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"single without newline", "a{b}c", []string{"a{b}c"}},
		{"trailing newline", "a\nb\n", []string{"a\n", "b\n"}},
		{"no trailing newline", "a\nb", []string{"a\n", "b"}},
		{"blank lines", "\n\n", []string{"\n", "\n"}},
		{"crlf", "a\r\nb\r\n", []string{"a\n", "b\n"}},
		{"lone cr", "a\rb", []string{"a\n", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.text))
		})
	}
}
