package text

import (
	"github.com/example/go-nlptok/internal/tokenizer"
)

// Segment groups a token list into sentences. A sentence ends at a token
// made entirely of final marks (., !, ?, …); closing quotes and brackets
// that immediately follow the mark stay attached to the sentence. Tokens
// after the last boundary form a final, unterminated sentence.
//
// Abbreviation periods never end a sentence: the tokenizer folds them into
// their word ("etc."), so they are not standalone final-mark tokens here.
//
// The returned slices share the backing array of tokens.
func Segment(tokens []tokenizer.Token) [][]tokenizer.Token {
	var sentences [][]tokenizer.Token

	begin := 0
	for i := 0; i < len(tokens); i++ {
		if !isFinalMarkToken(tokens[i].Text) {
			continue
		}

		end := i + 1
		for end < len(tokens) && isClosingToken(tokens[end].Text) {
			end++
		}

		sentences = append(sentences, tokens[begin:end])
		begin = end
		i = end - 1
	}

	if begin < len(tokens) {
		sentences = append(sentences, tokens[begin:])
	}

	return sentences
}

// isFinalMarkToken reports whether every rune of the token is a
// sentence-final mark.
func isFinalMarkToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch r {
		case '.', '!', '?', '…', '‼', '⁇', '⁈', '⁉':
		default:
			return false
		}
	}
	return true
}

// isClosingToken reports whether the token is a single closing quote or
// bracket that should remain part of the sentence it terminates.
func isClosingToken(s string) bool {
	r := []rune(s)
	if len(r) != 1 {
		return false
	}
	switch r[0] {
	case ')', ']', '}', '>', '"', '\'', '’', '”', '»':
		return true
	}
	return false
}
