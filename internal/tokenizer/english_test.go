package tokenizer_test

import (
	"reflect"
	"sync"
	"testing"

	"github.com/example/go-nlptok/internal/testutil"
	"github.com/example/go-nlptok/internal/tokenizer"
)

func TestEnglishTokenize(t *testing.T) {
	e := tokenizer.NewEnglish()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: "   \t\n  ",
			want:  nil,
		},
		{
			name:  "single word",
			input: "hello",
			want:  []string{"hello"},
		},
		{
			name:  "single character",
			input: "?",
			want:  []string{"?"},
		},
		{
			name:  "alphanumeric run stays whole",
			input: "abc123xyz",
			want:  []string{"abc123xyz"},
		},
		{
			name:  "separator skip",
			input: "a  b",
			want:  []string{"a", "b"},
		},
		{
			name:  "trailing punctuation",
			input: "Hello, world!",
			want:  []string{"Hello", ",", "world", "!"},
		},
		{
			name:  "negated contraction",
			input: "don't",
			want:  []string{"do", "n't"},
		},
		{
			name:  "curly quote contraction",
			input: "don’t",
			want:  []string{"do", "n’t"},
		},
		{
			name:  "will contraction",
			input: "I'll",
			want:  []string{"I", "'ll"},
		},
		{
			name:  "uppercase contraction",
			input: "HE'S",
			want:  []string{"HE", "'S"},
		},
		{
			name:  "leading apostrophe stays attached",
			input: "y'all",
			want:  []string{"y'all"},
		},
		{
			name:  "apostrophe-front merge",
			input: "'cause",
			want:  []string{"'cause"},
		},
		{
			name:  "apostrophe-front merge short tail",
			input: "'em",
			want:  []string{"'em"},
		},
		{
			name:  "hyperlink atomicity",
			input: "see http://example.com/page now",
			want:  []string{"see", "http://example.com/page", "now"},
		},
		{
			name:  "hyperlink with query",
			input: "https://x.y/z?a=1",
			want:  []string{"https://x.y/z?a=1"},
		},
		{
			name:  "email address",
			input: "mail choi@demo.example.org today",
			want:  []string{"mail", "choi@demo.example.org", "today"},
		},
		{
			name:  "email with trailing period",
			input: "choi@example.cloud.",
			want:  []string{"choi@example.cloud", "."},
		},
		{
			name:  "html entity",
			input: "a&amp;b",
			want:  []string{"a", "&amp;", "b"},
		},
		{
			name:  "numeric html entity",
			input: "&#123;",
			want:  []string{"&#123;"},
		},
		{
			name:  "emoticon",
			input: "nice :-)",
			want:  []string{"nice", ":-)"},
		},
		{
			name:  "heart emoticon",
			input: "<3",
			want:  []string{"<3"},
		},
		{
			name:  "list item",
			input: "[1] intro",
			want:  []string{"[1]", "intro"},
		},
		{
			name:  "list item with letter",
			input: "(1a)",
			want:  []string{"(1a)"},
		},
		{
			name:  "currency binds to digits",
			input: "$5",
			want:  []string{"$5"},
		},
		{
			name:  "currency stands alone before word",
			input: "$ five",
			want:  []string{"$", "five"},
		},
		{
			name:  "currency inside token binds",
			input: "US$20",
			want:  []string{"US$20"},
		},
		{
			name:  "currency after word stands alone",
			input: "20€",
			want:  []string{"20", "€"},
		},
		{
			name:  "hash binds to digits",
			input: "#1",
			want:  []string{"#1"},
		},
		{
			name:  "hash stands alone before word",
			input: "#topic",
			want:  []string{"#", "topic"},
		},
		{
			name:  "thousands separators",
			input: "1,000,000",
			want:  []string{"1,000,000"},
		},
		{
			name:  "short group splits on comma",
			input: "1,00",
			want:  []string{"1", ",", "00"},
		},
		{
			name:  "clock colon",
			input: "12:30",
			want:  []string{"12:30"},
		},
		{
			name:  "leading minus",
			input: "-1",
			want:  []string{"-1"},
		},
		{
			name:  "leading plus",
			input: "+1",
			want:  []string{"+1"},
		},
		{
			name:  "leading decimal point",
			input: ".5",
			want:  []string{".5"},
		},
		{
			name:  "two-digit year",
			input: "'97",
			want:  []string{"'97"},
		},
		{
			name:  "unit split",
			input: "10kg",
			want:  []string{"10", "kg"},
		},
		{
			name:  "unit split centimeters",
			input: "1cm",
			want:  []string{"1", "cm"},
		},
		{
			name:  "concatenated word split",
			input: "cannot",
			want:  []string{"can", "not"},
		},
		{
			name:  "concatenated word split keeps case",
			input: "Gonna",
			want:  []string{"Gon", "na"},
		},
		{
			name:  "final mark between words",
			input: "hello.World",
			want:  []string{"hello", ".", "World"},
		},
		{
			name:  "acronym ampersand",
			input: "AT&T",
			want:  []string{"AT&T"},
		},
		{
			name:  "acronym slash",
			input: "I/O",
			want:  []string{"I/O"},
		},
		{
			name:  "spelled-out word",
			input: "p-u-s-h",
			want:  []string{"p-u-s-h"},
		},
		{
			name:  "phone number",
			input: "212-555-0199",
			want:  []string{"212-555-0199"},
		},
		{
			name:  "hyphen prefix",
			input: "e-mail",
			want:  []string{"e-mail"},
		},
		{
			name:  "hyphen suffix",
			input: "nation-wide",
			want:  []string{"nation-wide"},
		},
		{
			name:  "plain hyphen compound splits",
			input: "well-known",
			want:  []string{"well", "-", "known"},
		},
		{
			name:  "dotted abbreviation keeps period",
			input: "U.S.",
			want:  []string{"U.S."},
		},
		{
			name:  "title abbreviation keeps period",
			input: "Mr. Smith",
			want:  []string{"Mr.", "Smith"},
		},
		{
			name:  "middle initial keeps period",
			input: "J. Smith",
			want:  []string{"J.", "Smith"},
		},
		{
			name:  "number sign word before digit",
			input: "No. 5",
			want:  []string{"No.", "5"},
		},
		{
			name:  "number sign word before word",
			input: "No. Thanks",
			want:  []string{"No", ".", "Thanks"},
		},
		{
			name:  "brackets split out",
			input: "(hello)",
			want:  []string{"(", "hello", ")"},
		},
		{
			name:  "double quotes split out",
			input: `"quoted"`,
			want:  []string{`"`, "quoted", `"`},
		},
		{
			name:  "final mark run stays together",
			input: "Really?!",
			want:  []string{"Really", "?!"},
		},
		{
			name:  "ellipsis",
			input: "wait...",
			want:  []string{"wait", "..."},
		},
		{
			name:  "accented words",
			input: "naïve café",
			want:  []string{"naïve", "café"},
		},
		{
			name:  "sentence mix",
			input: "He said it's $5, not 10kg!",
			want:  []string{"He", "said", "it", "'s", "$5", ",", "not", "10", "kg", "!"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Tokenize(tt.input)

			testutil.AssertTexts(t, got, tt.want...)
			testutil.AssertInvariants(t, tt.input, got)
		})
	}
}

func TestEnglishTokenizeOffsets(t *testing.T) {
	e := tokenizer.NewEnglish()

	tests := []struct {
		name  string
		input string
		want  []tokenizer.Token
	}{
		{
			name:  "contraction offsets",
			input: "don't",
			want: []tokenizer.Token{
				{Text: "do", Begin: 0, End: 2},
				{Text: "n't", Begin: 2, End: 5},
			},
		},
		{
			name:  "offsets count code points not bytes",
			input: "café bar",
			want: []tokenizer.Token{
				{Text: "café", Begin: 0, End: 4},
				{Text: "bar", Begin: 5, End: 8},
			},
		},
		{
			name:  "merged abbreviation extends span",
			input: "Mr. Smith",
			want: []tokenizer.Token{
				{Text: "Mr.", Begin: 0, End: 3},
				{Text: "Smith", Begin: 4, End: 9},
			},
		},
		{
			name:  "unit split partitions span",
			input: "10kg",
			want: []tokenizer.Token{
				{Text: "10", Begin: 0, End: 2},
				{Text: "kg", Begin: 2, End: 4},
			},
		},
		{
			name:  "hyperlink spans trailing text",
			input: "go http://a.b/c",
			want: []tokenizer.Token{
				{Text: "go", Begin: 0, End: 2},
				{Text: "http://a.b/c", Begin: 3, End: 15},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestEnglishTokenizeDeterministic(t *testing.T) {
	e := tokenizer.NewEnglish()
	input := "Mr. Smith paid $5 for 10kg of e-mail at http://a.b/c, 'cause he can."

	first := e.Tokenize(input)
	for i := 0; i < 10; i++ {
		if got := e.Tokenize(input); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d produced %v, want %v", i, got, first)
		}
	}
}

func TestEnglishTokenizeConcurrent(t *testing.T) {
	e := tokenizer.NewEnglish()
	inputs := []string{
		"He said it's $5, not 10kg!",
		"see http://example.com/page now",
		"'cause y'all cannot wait...",
		"AT&T vs. I/O on 212-555-0199",
	}

	want := make([][]tokenizer.Token, len(inputs))
	for i, in := range inputs {
		want[i] = e.Tokenize(in)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, in := range inputs {
				if got := e.Tokenize(in); !reflect.DeepEqual(got, want[i]) {
					t.Errorf("concurrent Tokenize(%q) = %v, want %v", in, got, want[i])
				}
			}
		}()
	}
	wg.Wait()
}
