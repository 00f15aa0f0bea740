package tokenizer

const (
	nonASCIIApostropheRightQuote = '’' // RIGHT SINGLE QUOTATION MARK
	nonASCIIApostropheFullwidth  = '＇' // FULLWIDTH APOSTROPHE
)

func isNonASCIIApostrophe(c rune) bool {
	return c == nonASCIIApostropheRightQuote || c == nonASCIIApostropheFullwidth
}

func isApostrophe(c rune) bool {
	return c == '\'' || isNonASCIIApostrophe(c)
}

// letterType classifies c for the TR29 algorithm. The apostrophe
// sentinel is checked first so that U+0027, U+2019 and U+FF07 all
// collapse onto LetterTypeApostrophe regardless of their membership in
// Single_Quote/MidNumLet; every other property table is consulted in
// a fixed order and the first match wins.
func letterType(c rune) LetterType {
	switch {
	case isApostrophe(c):
		return LetterTypeApostrophe
	case crTable.contains(c):
		return LetterTypeCR
	case lfTable.contains(c):
		return LetterTypeLF
	case newlineTable.contains(c):
		return LetterTypeNewline
	case extendTable.contains(c):
		return LetterTypeExtend
	case regionalIndicatorTable.contains(c):
		return LetterTypeRegionalIndicator
	case formatTable.contains(c):
		return LetterTypeFormat
	case katakanaTable.contains(c):
		return LetterTypeKatakana
	case hebrewLetterTable.contains(c):
		return LetterTypeHebrewLetter
	case aLetterTable.contains(c):
		return LetterTypeALetter
	case singleQuoteTable.contains(c):
		return LetterTypeSingleQuote
	case doubleQuoteTable.contains(c):
		return LetterTypeDoubleQuote
	case midNumLetTable.contains(c):
		return LetterTypeMidNumLet
	case midLetterTable.contains(c):
		return LetterTypeMidLetter
	case midNumTable.contains(c):
		return LetterTypeMidNum
	case numericTable.contains(c):
		return LetterTypeNumeric
	case extendNumLetTable.contains(c):
		return LetterTypeExtendNumLet
	default:
		return LetterTypeOther
	}
}

// isSimpleBreak is the word-break predicate for the simple algorithm.
// prevWasApostrophe reports whether the previously seen codepoint was
// an apostrophe (prevLetter == LetterTypeSingleQuote), the only piece
// of history the simple algorithm keeps.
func isSimpleBreak(c rune, apostrophe, prevWasApostrophe bool) bool {
	switch {
	case apostrophe:
		return prevWasApostrophe
	case c < 0x80:
		return asciiWordBreaks[c]
	case c >= 0x2000 && c <= 0x206F:
		return true
	default:
		return whiteSpaceTable.contains(c) ||
			dashTable.contains(c) ||
			quotationMarkTable.contains(c) ||
			terminalPunctuationTable.contains(c) ||
			sTermTable.contains(c) ||
			patternWhiteSpaceTable.contains(c)
	}
}
