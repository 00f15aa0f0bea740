package tokenizer

// LetterType classifies a codepoint for the purposes of the TR29 word
// boundary algorithm. The simple algorithm only ever uses None and
// SingleQuote (see classify.go).
type LetterType int

const (
	LetterTypeNone LetterType = iota
	LetterTypeCR
	LetterTypeLF
	LetterTypeNewline
	LetterTypeExtend
	LetterTypeRegionalIndicator
	LetterTypeFormat
	LetterTypeKatakana
	LetterTypeHebrewLetter
	LetterTypeALetter
	LetterTypeSingleQuote
	LetterTypeDoubleQuote
	LetterTypeMidNumLet
	LetterTypeMidLetter
	LetterTypeMidNum
	LetterTypeNumeric
	LetterTypeExtendNumLet
	// LetterTypeApostrophe is a sentinel for ASCII ' and the two
	// non-ASCII apostrophe codepoints; it short-circuits the rest of
	// letterType's classification (see classify.go) and is distinct
	// from the TR29 Single_Quote/Double_Quote properties.
	LetterTypeApostrophe
	LetterTypeOther
)

func (lt LetterType) String() string {
	switch lt {
	case LetterTypeNone:
		return "None"
	case LetterTypeCR:
		return "CR"
	case LetterTypeLF:
		return "LF"
	case LetterTypeNewline:
		return "Newline"
	case LetterTypeExtend:
		return "Extend"
	case LetterTypeRegionalIndicator:
		return "RegionalIndicator"
	case LetterTypeFormat:
		return "Format"
	case LetterTypeKatakana:
		return "Katakana"
	case LetterTypeHebrewLetter:
		return "HebrewLetter"
	case LetterTypeALetter:
		return "ALetter"
	case LetterTypeSingleQuote:
		return "SingleQuote"
	case LetterTypeDoubleQuote:
		return "DoubleQuote"
	case LetterTypeMidNumLet:
		return "MidNumLet"
	case LetterTypeMidLetter:
		return "MidLetter"
	case LetterTypeMidNum:
		return "MidNum"
	case LetterTypeNumeric:
		return "Numeric"
	case LetterTypeExtendNumLet:
		return "ExtendNumLet"
	case LetterTypeApostrophe:
		return "Apostrophe"
	case LetterTypeOther:
		return "Other"
	default:
		return "Invalid"
	}
}
