package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/example/go-nlptok/internal/config"
	textpkg "github.com/example/go-nlptok/internal/text"
	"github.com/example/go-nlptok/internal/tokenizer"
)

// readInputText resolves the input, in order of preference: the --text
// flag, a file argument, then stdin.
func readInputText(text string, args []string, stdin io.Reader) (string, error) {
	if strings.TrimSpace(text) != "" {
		return text, nil
	}

	if len(args) > 0 {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}
		return string(b), nil
	}

	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	if strings.TrimSpace(string(b)) == "" {
		return "", fmt.Errorf("either provide --text, an input file, or pipe text on stdin")
	}
	return string(b), nil
}

// loadAndTokenize runs the shared front half of the subcommands: input
// resolution, boundary normalization, tokenizer selection, tokenization.
func loadAndTokenize(text string, args []string, kind string) (string, []tokenizer.Token, error) {
	raw, err := readInputText(text, args, os.Stdin)
	if err != nil {
		return "", nil, err
	}

	normalized, err := textpkg.Normalize(raw)
	if err != nil {
		return "", nil, err
	}

	tok, err := selectTokenizer(kind)
	if err != nil {
		return "", nil, err
	}

	return normalized, tok.Tokenize(normalized), nil
}

func selectTokenizer(kind string) (tokenizer.Tokenizer, error) {
	normalized, err := config.NormalizeKind(kind)
	if err != nil {
		return nil, err
	}
	switch normalized {
	case config.KindEnglish:
		return tokenizer.NewEnglish(), nil
	case config.KindSpace:
		return tokenizer.SpaceTokenizer{}, nil
	default:
		return nil, fmt.Errorf("unsupported tokenizer %q", kind)
	}
}
