package tokenizer

import "unicode"

// Single-rune classifiers used by the symbol walk and the repair rules.
// Classification depends only on the rune itself; context-sensitive
// decisions (lookahead, neighbors) live in symbol.go.

func isSingleQuote(r rune) bool {
	switch r {
	case '\'', '`', '‘', '’', 'ʼ':
		return true
	}
	return false
}

func isDoubleQuote(r rune) bool {
	switch r {
	case '"', '“', '”', '„', '‟', '«', '»':
		return true
	}
	return false
}

func isBracket(r rune) bool {
	switch r {
	case '(', ')', '[', ']', '{', '}', '<', '>':
		return true
	}
	return false
}

func isHyphen(r rune) bool {
	// ASCII hyphen-minus plus the U+2010..U+2015 dash block.
	return r == '-' || (r >= '‐' && r <= '―')
}

func isArrow(r rune) bool {
	// Arrows, supplemental arrows A/B, and miscellaneous symbols-and-arrows.
	return (r >= '←' && r <= '⇿') ||
		(r >= '⟰' && r <= '⟿') ||
		(r >= '⤀' && r <= '⥿') ||
		(r >= '⬀' && r <= '⯿')
}

// isFinalMark reports whether r is a sentence-final punctuation mark.
func isFinalMark(r rune) bool {
	switch r {
	case '.', '!', '?', '…', '‼', '⁇', '⁈', '⁉':
		return true
	}
	return false
}

// isCurrency reports whether r carries the Unicode currency-symbol property.
func isCurrency(r rune) bool {
	return unicode.Is(unicode.Sc, r)
}

func isPunct(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// isAlnumRun reports whether every rune in rs is a letter or a number.
// Empty runs are not alphanumeric.
func isAlnumRun(rs []rune) bool {
	if len(rs) == 0 {
		return false
	}
	for _, r := range rs {
		if !isAlnum(r) {
			return false
		}
	}
	return true
}

// isDigitAt reports whether rs[i] exists and is a decimal digit.
func isDigitAt(rs []rune, i int) bool {
	return 0 <= i && i < len(rs) && unicode.IsDigit(rs[i])
}

// isDigitRun reports whether rs[i:j] is a non-empty run of decimal digits
// that lies fully inside rs.
func isDigitRun(rs []rune, i, j int) bool {
	if i < 0 || i >= j || j > len(rs) {
		return false
	}
	for ; i < j; i++ {
		if !unicode.IsDigit(rs[i]) {
			return false
		}
	}
	return true
}
