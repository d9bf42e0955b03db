package tokenizer

import "unicode"

// Symbol-class segmentation: walk the span rune by rune and split out the
// first symbol run whose rule family declares it complete. Each family is
// a (classifier, runComplete) predicate pair driving the same walk, so
// edge and currency behavior are specializations rather than separate
// loops. After a split the remainders re-enter the resolver.

// classify reports whether a rune belongs to the family; runComplete
// decides, with full span context, whether the run tok[i:j] should be
// split out at this position.
type symbolRule struct {
	classify    func(r rune) bool
	runComplete func(tok []rune, i, j int) bool
}

func (e *English) symbolRules() [3]symbolRule {
	return [3]symbolRule{
		// Separator symbols always split, wherever they appear.
		{classify: isSeparatorSymbol, runComplete: func([]rune, int, int) bool { return true }},
		// Edge symbols split only at span edges or next to punctuation.
		{classify: isEdgeSymbol, runComplete: edgeRunComplete},
		// Currency-like symbols bind to an immediately following digit
		// and stand alone everywhere else.
		{classify: isCurrencyLike, runComplete: currencyRunComplete},
	}
}

// walkSymbols scans src[begin:end) for the first splittable symbol run.
// On a split the run becomes its own token (via the repair rules) and the
// left/right remainders are resolved recursively.
func (e *English) walkSymbols(out *[]Token, src []rune, begin, end int) bool {
	tok := src[begin:end]
	rules := e.symbolRules()

	for i := range tok {
		if skipSymbol(tok, i) {
			continue
		}
		for _, rule := range rules {
			if !rule.classify(tok[i]) {
				continue
			}
			j := lastSequenceIndex(tok, i)
			if !rule.runComplete(tok, i, j) {
				continue
			}

			e.resolve(out, src, begin, begin+i)
			e.add(out, src, begin+i, begin+j)
			e.resolve(out, src, begin+j, end)
			return true
		}
	}

	return false
}

// skipSymbol reports whether the symbol at tok[i] is part of the current
// run and must not trigger a split: numeric signs and decimal points,
// thousands separators, clock colons, and two-digit-year apostrophes.
func skipSymbol(tok []rune, i int) bool {
	switch c := tok[i]; {
	case c == '.' || c == '+': // .1, +1
		return isDigitAt(tok, i+1)
	case c == '-': // -1
		return i == 0 && isDigitAt(tok, i+1)
	case c == ',': // 1,000,000
		return isDigitAt(tok, i-1) && isDigitRun(tok, i+1, i+4) && !isDigitAt(tok, i+4)
	case c == ':': // 1:2
		return isDigitAt(tok, i-1) && isDigitAt(tok, i+1)
	case isSingleQuote(c): // '97
		return isDigitRun(tok, i+1, i+3) && !isDigitAt(tok, i+3)
	}
	return false
}

// lastSequenceIndex scans forward from i and returns the exclusive end of
// the homogeneous run starting there: a run of final marks if tok[i] is
// one, otherwise a run of the identical rune.
func lastSequenceIndex(tok []rune, i int) int {
	c := tok[i]
	finalMark := isFinalMark(c)

	for j := i + 1; j < len(tok); j++ {
		if finalMark {
			if !isFinalMark(tok[j]) {
				return j
			}
		} else if tok[j] != c {
			return j
		}
	}

	return len(tok)
}

func isSeparatorSymbol(r rune) bool {
	switch r {
	case ',', ';', ':', '~', '&', '|', '/':
		return true
	}
	return isBracket(r) || isArrow(r) || isDoubleQuote(r) || isHyphen(r)
}

func isEdgeSymbol(r rune) bool {
	return isSingleQuote(r) || isFinalMark(r)
}

func isCurrencyLike(r rune) bool {
	return r == '#' || isCurrency(r)
}

func edgeRunComplete(tok []rune, i, j int) bool {
	return i+1 < j || i == 0 || j == len(tok) || isPunct(tok[i-1]) || isPunct(tok[j])
}

func currencyRunComplete(tok []rune, i, j int) bool {
	// A lone currency mark directly before a digit binds to the number
	// ($5 stays whole); any other position stands alone.
	return i+1 < j || j == len(tok) || !unicode.IsDigit(tok[j])
}
