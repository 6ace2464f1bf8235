// Package textenc decodes raw stylesheet bytes into text.
package textenc

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"

	"github.com/vvka-141/bracecheck/pkg/bracecheck"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Lookup resolves a WHATWG encoding label such as "utf-8", "latin1" or
// "shift_jis". An empty label resolves to bracecheck.DefaultEncoding.
func Lookup(label string) (encoding.Encoding, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		label = bracecheck.DefaultEncoding
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", label, bracecheck.ErrUnknownEncoding)
	}
	return enc, nil
}

// Decode converts data from the encoding named by label to a UTF-8 string.
// A leading UTF-8 byte order mark is dropped. Input that is not valid UTF-8
// when label names UTF-8 fails with bracecheck.ErrInputUnreadable.
func Decode(data []byte, label string) (string, error) {
	enc, err := Lookup(label)
	if err != nil {
		return "", err
	}

	if enc == unicode.UTF8 {
		data = bytes.TrimPrefix(data, utf8BOM)
		if !utf8.Valid(data) {
			return "", fmt.Errorf("content is not valid UTF-8: %w", bracecheck.ErrInputUnreadable)
		}
		return string(data), nil
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode content: %v: %w", err, bracecheck.ErrInputUnreadable)
	}
	return string(decoded), nil
}
