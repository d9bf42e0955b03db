package text

import (
	"reflect"
	"strings"
	"testing"

	"github.com/example/go-nlptok/internal/testutil"
	"github.com/example/go-nlptok/internal/tokenizer"
)

func TestSegment(t *testing.T) {
	eng := tokenizer.NewEnglish()

	tests := []struct {
		name  string
		input string
		want  [][]string // token texts per sentence
	}{
		{
			name:  "no tokens",
			input: "",
			want:  nil,
		},
		{
			name:  "single sentence",
			input: "He left.",
			want:  [][]string{{"He", "left", "."}},
		},
		{
			name:  "two sentences",
			input: "He left. She stayed.",
			want: [][]string{
				{"He", "left", "."},
				{"She", "stayed", "."},
			},
		},
		{
			name:  "question and exclamation",
			input: "Really?! Yes!",
			want: [][]string{
				{"Really", "?!"},
				{"Yes", "!"},
			},
		},
		{
			name:  "unterminated tail sentence",
			input: "Done. And then",
			want: [][]string{
				{"Done", "."},
				{"And", "then"},
			},
		},
		{
			name:  "abbreviation periods do not end sentences",
			input: "Mr. Smith met Dr. Jones.",
			want: [][]string{
				{"Mr.", "Smith", "met", "Dr.", "Jones", "."},
			},
		},
		{
			name:  "closing quote stays attached",
			input: `He said "Stop!" Then he left.`,
			want: [][]string{
				{"He", "said", `"`, "Stop", "!", `"`},
				{"Then", "he", "left", "."},
			},
		},
		{
			name:  "closing bracket stays attached",
			input: "It worked (finally!) Next step.",
			want: [][]string{
				{"It", "worked", "(", "finally", "!", ")"},
				{"Next", "step", "."},
			},
		},
		{
			name:  "ellipsis ends a sentence",
			input: "Wait... Go.",
			want: [][]string{
				{"Wait", "..."},
				{"Go", "."},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := eng.Tokenize(tt.input)
			got := Segment(tokens)

			var gotTexts [][]string
			for _, sent := range got {
				gotTexts = append(gotTexts, tokenizer.Texts(sent))
			}

			if !reflect.DeepEqual(gotTexts, tt.want) {
				t.Fatalf("Segment(%q) = %v, want %v", tt.input, gotTexts, tt.want)
			}
		})
	}
}

func TestSegmentCoversAllTokens(t *testing.T) {
	eng := tokenizer.NewEnglish()
	input := "One. Two! Three? And the rest"

	tokens := eng.Tokenize(input)
	testutil.AssertInvariants(t, input, tokens)
	testutil.AssertTexts(t, tokens, "One", ".", "Two", "!", "Three", "?", "And", "the", "rest")

	sentences := Segment(tokens)

	var flat []tokenizer.Token
	for _, sent := range sentences {
		flat = append(flat, sent...)
	}

	if !reflect.DeepEqual(flat, tokens) {
		t.Fatalf("flattened sentences %v != token list %v", flat, tokens)
	}

	joined := strings.Join(tokenizer.Texts(flat), " ")
	if joined == "" {
		t.Fatal("expected non-empty segmentation")
	}
}
