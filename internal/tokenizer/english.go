package tokenizer

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// English is the rule-based tokenizer for English text. It recursively
// narrows each whitespace-delimited span through three stages: a trivial
// fast path for single characters and purely alphanumeric runs, an ordered
// table of structural regex patterns, and a per-rune symbol-class walk.
// Every resolved sub-span passes through the repair rules in repair.go
// before it reaches the output.
//
// Construct with NewEnglish; the zero value is not usable. A constructed
// English is immutable and safe for concurrent use.
type English struct {
	res   *resources
	rules []extractRule

	reAbbrev   *regexp.Regexp
	reUnit     *regexp.Regexp
	reFinalMid *regexp.Regexp
}

// extractRule is one entry of the ordered structural pattern table. Rules
// are tried in table order and the first match within the span wins;
// leftmost matches of later rules never override earlier rules.
type extractRule struct {
	re    *regexp.Regexp
	group int  // submatch emitted as the atomic token
	tail  bool // claim from the match start through the end of the span
}

var (
	reNetworkProtocol = regexp.MustCompile(`(http|https|ftp|sftp|ssh|ssl|telnet|smtp|pop3|imap|imap4|sip)://`)
	reEmoticon        = regexp.MustCompile(`(:\w+:|<[\\/]?3|[\(\)\\\|\*\$][-\^]?[:=;]|[:=;B8]([-\^]+)?[3DOPp@\$\*\(\)\\/\|]+)(\W|$)`)
	reEmail           = regexp.MustCompile(`[\w\-.]+(:\S+)?@(([A-Za-z0-9\-]+\.)+[A-Za-z]{2,12}|\d{1,3}(\.\d{1,3}){3})`)
	reHTMLEntity      = regexp.MustCompile(`&([A-Za-z]+|#[Xx]?\d+);`)
	reListItem        = regexp.MustCompile(`([\[\(\{<]+)(\d+[A-Za-z]?|[A-Za-z]\d*|\W+)(\.(\d+|[A-Za-z]))*([\]\)\}>])+`)
	reApostrophe      = regexp.MustCompile(`(?i)[a-z](n['` + "’" + `]t|['` + "’" + `](ll|nt|re|ve|[dmstz]))(\W|$)`)
)

// NewEnglish builds the tokenizer, compiling its pattern table and loading
// the embedded word-set resources. The result is shared read-only state.
func NewEnglish() *English {
	return &English{
		res: loadResources(),
		rules: []extractRule{
			{re: reHTMLEntity},
			{re: reEmail},
			{re: reNetworkProtocol, tail: true},
			{re: reEmoticon, group: 1},
			{re: reListItem},
			{re: reApostrophe, group: 1},
		},
		reAbbrev:   regexp.MustCompile(`^[A-Za-z0-9]([.\-][A-Za-z0-9])*$`),
		reUnit:     regexp.MustCompile(`(?i)\d([acdfkmnpyz]?[mg]|[ap]\.m|ch|cwt|d|drc|ft|fur|gr|h|in|lb|lea|mi|ms|oz|pg|qtr|yd)$`),
		reFinalMid: regexp.MustCompile(`^([A-Za-z]{3,})([.?!]+)([A-Za-z]{3,})$`),
	}
}

// Tokenize splits text into tokens with code-point offsets. Whitespace is
// skipped and never emitted. Every input, including empty and
// whitespace-only strings, yields a well-defined (possibly empty) list.
func (e *English) Tokenize(text string) []Token {
	var out []Token
	src := []rune(text)

	begin := -1
	for i, r := range src {
		if unicode.IsSpace(r) {
			if begin >= 0 {
				e.resolve(&out, src, begin, i)
				begin = -1
			}
		} else if begin < 0 {
			begin = i
		}
	}
	if begin >= 0 {
		e.resolve(&out, src, begin, len(src))
	}

	return out
}

// resolve tokenizes src[begin:end) and appends the result to out. It
// reports whether anything was added. Recursion always proceeds on proper
// sub-spans, so it terminates: each stage consumes at least one rune.
func (e *English) resolve(out *[]Token, src []rune, begin, end int) bool {
	if begin >= end || end > len(src) {
		return false
	}

	if e.trivial(out, src, begin, end) {
		return true
	}
	if e.extract(out, src, begin, end) {
		return true
	}
	if e.walkSymbols(out, src, begin, end) {
		return true
	}

	// No rule claimed anything; keep the span as a single token.
	e.add(out, src, begin, end)
	return true
}

// trivial handles the fast path: single-rune spans and spans made entirely
// of letters and numbers become one token.
func (e *English) trivial(out *[]Token, src []rune, begin, end int) bool {
	if end-begin == 1 || isAlnumRun(src[begin:end]) {
		e.add(out, src, begin, end)
		return true
	}
	return false
}

// extract tries the structural pattern table against the span. The first
// matching rule emits its claimed region as an atomic token and recurses
// on the unclaimed remainder to the left and right.
func (e *English) extract(out *[]Token, src []rune, begin, end int) bool {
	span := string(src[begin:end])

	for _, rule := range e.rules {
		if rule.tail {
			m := rule.re.FindStringIndex(span)
			if m == nil {
				continue
			}
			// Hyperlinks run to the end of the span: trailing slashes,
			// dots, and query punctuation all belong to the URL.
			idx := begin + runeIndex(span, m[0])
			e.resolve(out, src, begin, idx)
			e.add(out, src, idx, end)
			return true
		}

		m := rule.re.FindStringSubmatchIndex(span)
		if m == nil || m[2*rule.group] < 0 {
			continue
		}
		idx := begin + runeIndex(span, m[2*rule.group])
		last := begin + runeIndex(span, m[2*rule.group+1])

		e.resolve(out, src, begin, idx)
		e.add(out, src, idx, last)
		e.resolve(out, src, last, end)
		return true
	}

	return false
}

// runeIndex converts a byte offset into s to a code-point offset.
func runeIndex(s string, byteOff int) int {
	return utf8.RuneCountInString(s[:byteOff])
}
