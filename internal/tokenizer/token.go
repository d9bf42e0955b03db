package tokenizer

import "fmt"

// Token is a single linguistic token together with its provenance in the
// source string. Begin and End are code-point (rune) indices, half-open:
// for tokens that were not repaired by a merge rule,
// string([]rune(src)[t.Begin:t.End]) == t.Text. Merged tokens may span
// skipped whitespace between their parts; their offsets still cover the
// full source region they were built from.
type Token struct {
	Text  string
	Begin int
	End   int
}

// String returns a debug representation, e.g. "n't"[2:5].
func (t Token) String() string {
	return fmt.Sprintf("%q[%d:%d]", t.Text, t.Begin, t.End)
}

// Texts returns the token texts in order.
func Texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}
