// Package tagger defines the contract between the tokenizer and the
// remote part-of-speech tagging services that consume its output. The
// services are external collaborators: this package carries no transport,
// no model loading, and no inference — only the shapes both sides agree on.
package tagger

import (
	"context"
	"fmt"

	"github.com/example/go-nlptok/internal/tokenizer"
)

// Tagger labels sentence batches of tokens. The model identifier selects
// among the service's independently trained variants and is passed through
// unchanged; this side attaches no meaning to it.
//
// Implementations must return one tag slice per input sentence, with one
// tag per token, in token order.
type Tagger interface {
	Tag(ctx context.Context, model string, sentences [][]tokenizer.Token) ([][]string, error)
}

// Tagged pairs a token with its assigned label.
type Tagged struct {
	Token tokenizer.Token
	Tag   string
}

// Zip pairs sentence batches with their tag batches, validating that the
// shapes agree. It is the checkpoint for a tagger response before the
// result is handed to callers.
func Zip(sentences [][]tokenizer.Token, tags [][]string) ([][]Tagged, error) {
	if len(sentences) != len(tags) {
		return nil, fmt.Errorf("tagger returned %d sentences, want %d", len(tags), len(sentences))
	}

	out := make([][]Tagged, len(sentences))
	for i, sent := range sentences {
		if len(sent) != len(tags[i]) {
			return nil, fmt.Errorf("sentence %d: tagger returned %d tags for %d tokens", i, len(tags[i]), len(sent))
		}
		out[i] = make([]Tagged, len(sent))
		for j, tok := range sent {
			out[i][j] = Tagged{Token: tok, Tag: tags[i][j]}
		}
	}

	return out, nil
}
