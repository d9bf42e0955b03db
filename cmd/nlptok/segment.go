package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/example/go-nlptok/internal/config"
	textpkg "github.com/example/go-nlptok/internal/text"
	"github.com/example/go-nlptok/internal/tokenizer"
	"github.com/spf13/cobra"
)

func newSegmentCmd() *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "segment [file]",
		Short: "Tokenize and group tokens into sentences",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := config.NormalizeFormat(activeCfg.Output.Format)
			if err != nil {
				return err
			}

			_, tokens, err := loadAndTokenize(text, args, activeCfg.Tokenizer.Kind)
			if err != nil {
				return err
			}

			sentences := textpkg.Segment(tokens)
			slog.Debug("segmented input", "tokens", len(tokens), "sentences", len(sentences))

			return writeSentences(os.Stdout, format, sentences)
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Text to segment (reads stdin when empty)")

	return cmd
}

// writeSentences renders sentences: one space-joined token line per
// sentence for TSV, or a JSON array of token arrays.
func writeSentences(w io.Writer, format string, sentences [][]tokenizer.Token) error {
	switch format {
	case config.FormatJSON:
		out := make([][]tokenJSON, len(sentences))
		for i, sent := range sentences {
			out[i] = make([]tokenJSON, len(sent))
			for j, t := range sent {
				out[i][j] = tokenJSON{Text: t.Text, Begin: t.Begin, End: t.End}
			}
		}
		if err := json.NewEncoder(w).Encode(out); err != nil {
			return fmt.Errorf("encode sentences: %w", err)
		}
		return nil
	default:
		for _, sent := range sentences {
			if _, err := fmt.Fprintln(w, strings.Join(tokenizer.Texts(sent), " ")); err != nil {
				return fmt.Errorf("write sentence: %w", err)
			}
		}
		return nil
	}
}
