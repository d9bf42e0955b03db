package tokenizer

import (
	"strings"
	"unicode"
)

// Token repair: the sole write path to the output list. Every insertion
// first tries the merge rules against the most recent output tokens, then
// the split rules against the incoming token in isolation, and only then
// appends as-is. Regex-extracted and symbol-segmented tokens go through
// the same three phases.

// add inserts src[begin:end) through the repair rules.
func (e *English) add(out *[]Token, src []rune, begin, end int) {
	e.addToken(out, string(src[begin:end]), begin, end)
}

func (e *English) addToken(out *[]Token, text string, begin, end int) {
	if e.mergeToken(out, text, begin, end) {
		return
	}
	if e.splitToken(out, text, begin, end) {
		return
	}
	*out = append(*out, Token{Text: text, Begin: begin, End: end})
}

// ---------------------------------------------------------------- merge

// mergeToken re-attaches the incoming token to its predecessor(s) when a
// naive split separated a contraction, abbreviation period, acronym
// infix, or hyphenated compound. It reports whether the token was
// consumed by a merge.
func (e *English) mergeToken(out *[]Token, text string, begin, end int) bool {
	v := *out

	if len(v) > 0 {
		prev := strings.ToLower(v[len(v)-1].Text)
		curr := strings.ToLower(text)

		if e.apostropheFront(prev, curr) || e.abbreviation(prev, curr) {
			last := &v[len(v)-1]
			last.Text += text
			last.End = end
			return true
		}
	}

	if len(v) >= 2 {
		p2, p1 := v[len(v)-2], v[len(v)-1]
		prev := strings.ToLower(p2.Text)
		curr := strings.ToLower(p1.Text)
		next := strings.ToLower(text)

		if acronym(p2.Text, curr, text) || e.hyphenated(prev, curr, next) {
			v[len(v)-2] = Token{Text: p2.Text + p1.Text + text, Begin: p2.Begin, End: end}
			*out = v[:len(v)-1]
			return true
		}

		// "No" "." before a digit: fold the period into the preceding
		// token; the digit itself is still inserted normally.
		if prev == "no" && curr == "." && firstRuneIsDigit(next) {
			v[len(v)-2].Text += p1.Text
			v[len(v)-2].End = p1.End
			*out = v[:len(v)-1]
		}
	}

	return false
}

// apostropheFront matches a standalone leading apostrophe followed by a
// known contraction tail ('cause, 'em, 'til, ...).
func (e *English) apostropheFront(prev, curr string) bool {
	r := []rune(prev)
	return len(r) == 1 && isSingleQuote(r[0]) && e.res.apostropheFront[curr]
}

// abbreviation folds a period into a preceding dotted sequence (a.b.c) or
// known abbreviation (mr, etc, ...).
func (e *English) abbreviation(prev, curr string) bool {
	return curr == "." && (e.reAbbrev.MatchString(prev) || e.res.abbreviationPeriod[prev])
}

// acronym joins infix &, | or / between short or fully uppercase parts:
// AT&T, I/O. prev and next keep their original case for the upper check.
func acronym(prev, curr, next string) bool {
	if len(curr) != 1 || !strings.ContainsAny(curr, "&|/") {
		return false
	}
	p, n := []rune(prev), []rune(next)
	return (len(p) <= 2 && len(n) <= 2) || (isUpperWord(prev) && isUpperWord(next))
}

// hyphenated joins a standalone hyphen between parts that form one word:
// phone-number groups (000-000-0000), letter spelling (p-u-s-h), and
// known hyphen prefixes/suffixes (e-mail, carefree-style compounds).
// All arguments are lowercased.
func (e *English) hyphenated(prev, curr, next string) bool {
	c := []rune(curr)
	if len(c) != 1 || !isHyphen(c[0]) {
		return false
	}

	p, n := []rune(prev), []rune(next)
	switch {
	case isDigitRun(p, len(p)-3, len(p)) && (len(p) == 3 || isHyphen(p[len(p)-4])) && isDigitRun(n, 0, len(n)):
		return true // 000-0000, 000-000-0000
	case isAlnum(p[len(p)-1]) && (len(p) == 1 || isHyphen(p[len(p)-2])) && len(n) == 1 && isAlnum(n[0]):
		return true // p-u-s-h
	}
	return (e.res.hyphenPrefix[prev] && isAlnumRun(n)) || (e.res.hyphenSuffix[next] && isAlnumRun(p))
}

// ---------------------------------------------------------------- split

// splitToken breaks a composite incoming token apart: value+unit pairs,
// concatenated words, and a final mark wedged between two words. Split
// parts are appended directly; they are not re-eligible for repair.
func (e *English) splitToken(out *[]Token, text string, begin, end int) bool {
	return e.splitUnit(out, text, begin, end) ||
		e.splitConcatWord(out, text, begin) ||
		e.splitFinalMark(out, text, begin)
}

// splitUnit breaks a number immediately followed by a unit abbreviation:
// 10kg -> 10, kg.
func (e *English) splitUnit(out *[]Token, text string, begin, end int) bool {
	m := e.reUnit.FindStringSubmatchIndex(text)
	if m == nil {
		return false
	}

	idx := begin + runeIndex(text, m[2])
	*out = append(*out,
		Token{Text: text[:m[2]], Begin: begin, End: idx},
		Token{Text: text[m[2]:m[3]], Begin: idx, End: end},
	)
	return true
}

// splitConcatWord breaks known fused words at their recorded boundaries:
// cannot -> can, not.
func (e *English) splitConcatWord(out *[]Token, text string, begin int) bool {
	cuts, ok := e.res.concatWords[strings.ToLower(text)]
	if !ok {
		return false
	}

	r := []rune(text)
	i := 0
	for _, j := range cuts {
		*out = append(*out, Token{Text: string(r[i:j]), Begin: begin + i, End: begin + j})
		i = j
	}
	return true
}

// splitFinalMark breaks a sentence-final mark glued between two words:
// hello.World -> hello, ., World. The token is first considered as a
// whole so the boundary is drawn only once both sides are known.
func (e *English) splitFinalMark(out *[]Token, text string, begin int) bool {
	m := e.reFinalMid.FindStringSubmatchIndex(text)
	if m == nil {
		return false
	}

	for g := 1; g <= 3; g++ {
		i, j := m[2*g], m[2*g+1]
		*out = append(*out, Token{Text: text[i:j], Begin: begin + i, End: begin + j})
	}
	return true
}

func isUpperWord(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

func firstRuneIsDigit(s string) bool {
	for _, r := range s {
		return unicode.IsDigit(r)
	}
	return false
}
