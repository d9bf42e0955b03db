// Package tokenizer splits raw Unicode text into linguistic tokens with
// code-point offsets into the source string.
//
// Two implementations are provided: SpaceTokenizer, which splits on
// whitespace only, and English, a rule-based tokenizer that additionally
// handles punctuation, hyperlinks, contractions, units, and similar
// constructs. Both are pure functions of their input: tokenizing never
// fails, and the same input always yields the same token list. All rule
// tables are built once at construction time and are read-only afterwards,
// so a single tokenizer is safe for concurrent use by multiple goroutines.
//
// Inputs are assumed to be valid UTF-8; decoding problems are rejected at
// the boundary by the text package before a tokenizer ever sees them.
package tokenizer

import "unicode"

// Tokenizer converts text into an ordered list of non-overlapping tokens.
// Token offsets are monotonically increasing code-point indices into text.
type Tokenizer interface {
	Tokenize(text string) []Token
}

// SpaceTokenizer splits text on whitespace runs. Whitespace itself is
// skipped and never emitted as a token.
type SpaceTokenizer struct{}

// Tokenize returns one token per maximal non-whitespace run.
func (SpaceTokenizer) Tokenize(text string) []Token {
	var out []Token
	src := []rune(text)

	begin := -1
	for i, r := range src {
		if unicode.IsSpace(r) {
			if begin >= 0 {
				out = append(out, Token{Text: string(src[begin:i]), Begin: begin, End: i})
				begin = -1
			}
		} else if begin < 0 {
			begin = i
		}
	}
	if begin >= 0 {
		out = append(out, Token{Text: string(src[begin:]), Begin: begin, End: len(src)})
	}

	return out
}
