// Package text is the input boundary in front of the tokenizer: it
// validates and canonicalizes raw input, and groups token lists into
// sentences for batch hand-off to a downstream tagger.
package text

import (
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ErrEmptyText is returned when the input text is empty or whitespace-only.
var ErrEmptyText = errors.New("text is empty")

// ErrInvalidUTF8 is returned when the input is not valid UTF-8. Malformed
// encodings are rejected here; the tokenizer itself assumes fully decoded
// Unicode input and never fails.
var ErrInvalidUTF8 = errors.New("text is not valid UTF-8")

// Normalize prepares raw input text for tokenization.
// It rejects invalid UTF-8, normalizes line endings to \n, applies Unicode
// NFC so that token offsets are stable across equivalent encodings, trims
// surrounding whitespace, and rejects empty or whitespace-only input.
// Token offsets produced downstream refer to the normalized string.
func Normalize(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", ErrInvalidUTF8
	}

	// Normalize line endings: CRLF → LF, then bare CR → LF.
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	s = norm.NFC.String(s)
	s = strings.TrimSpace(s)

	if s == "" {
		return "", ErrEmptyText
	}

	return s, nil
}
