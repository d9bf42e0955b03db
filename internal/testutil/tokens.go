// Package testutil provides shared assertion helpers for tokenizer tests.
//
// The helpers check the structural contracts every token list must honor,
// so individual tests only spell out the expected token texts.
package testutil

import (
	"testing"
	"unicode"

	"github.com/example/go-nlptok/internal/tokenizer"
)

// AssertTexts fails the test when the token texts differ from want.
func AssertTexts(tb testing.TB, got []tokenizer.Token, want ...string) {
	tb.Helper()

	texts := tokenizer.Texts(got)
	if len(texts) != len(want) {
		tb.Fatalf("got %d tokens %q, want %d %q", len(texts), texts, len(want), want)
	}
	for i := range want {
		if texts[i] != want[i] {
			tb.Fatalf("token %d = %q, want %q (full list %q)", i, texts[i], want[i], texts)
		}
	}
}

// AssertInvariants checks the structural properties that must hold for any
// token list produced from src: offsets are valid half-open rune spans in
// ascending, non-overlapping order, and the union of token spans covers
// every non-whitespace rune of src.
func AssertInvariants(tb testing.TB, src string, tokens []tokenizer.Token) {
	tb.Helper()

	runes := []rune(src)
	prevEnd := 0
	covered := make([]bool, len(runes))

	for i, t := range tokens {
		if t.Begin >= t.End {
			tb.Fatalf("token %d %v: empty or inverted span", i, t)
		}
		if t.Begin < prevEnd {
			tb.Fatalf("token %d %v overlaps previous token (prev end %d)", i, t, prevEnd)
		}
		if t.End > len(runes) {
			tb.Fatalf("token %d %v: span exceeds input length %d", i, t, len(runes))
		}
		for j := t.Begin; j < t.End; j++ {
			covered[j] = true
		}
		prevEnd = t.End
	}

	for j, r := range runes {
		if !unicode.IsSpace(r) && !covered[j] {
			tb.Fatalf("rune %d %q of %q not covered by any token", j, r, src)
		}
	}
}
