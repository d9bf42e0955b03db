package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/example/go-nlptok/internal/config"
	"github.com/example/go-nlptok/internal/tokenizer"
	"github.com/spf13/cobra"
)

func newTokenizeCmd() *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "tokenize [file]",
		Short: "Tokenize text from --text, a file, or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := config.NormalizeFormat(activeCfg.Output.Format)
			if err != nil {
				return err
			}

			input, tokens, err := loadAndTokenize(text, args, activeCfg.Tokenizer.Kind)
			if err != nil {
				return err
			}
			slog.Debug("tokenized input", "chars", len(input), "tokens", len(tokens))

			return writeTokens(os.Stdout, format, tokens)
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Text to tokenize (reads stdin when empty)")

	return cmd
}

// writeTokens renders a token list: one "text<TAB>begin<TAB>end" line per
// token for TSV, or a single JSON array.
func writeTokens(w io.Writer, format string, tokens []tokenizer.Token) error {
	switch format {
	case config.FormatJSON:
		return writeTokensJSON(w, tokens)
	default:
		for _, t := range tokens {
			if _, err := fmt.Fprintf(w, "%s\t%d\t%d\n", t.Text, t.Begin, t.End); err != nil {
				return fmt.Errorf("write token: %w", err)
			}
		}
		return nil
	}
}

type tokenJSON struct {
	Text  string `json:"text"`
	Begin int    `json:"begin"`
	End   int    `json:"end"`
}

func writeTokensJSON(w io.Writer, tokens []tokenizer.Token) error {
	out := make([]tokenJSON, len(tokens))
	for i, t := range tokens {
		out[i] = tokenJSON{Text: t.Text, Begin: t.Begin, End: t.End}
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode tokens: %w", err)
	}
	return nil
}
