package tokenizer

// isNonToken reports whether lt should be silently skipped when it
// appears before any token content has been accumulated. Everything
// is a non-token run except the categories that can actually start a
// word.
func isNonToken(lt LetterType) bool {
	switch lt {
	case LetterTypeRegionalIndicator, LetterTypeKatakana, LetterTypeHebrewLetter,
		LetterTypeALetter, LetterTypeNumeric:
		return false
	default:
		return true
	}
}

// letterBoundary is the per-category UAX #29 word-boundary rule table,
// implemented as a switch rather than an array of function pointers
// indexed by category ordinal. It is only ever called when
// prev != LetterTypeNone.
func letterBoundary(lt, prev, prevPrev LetterType) bool {
	switch lt {
	case LetterTypeNone:
		panic("tokenizer: letterBoundary called with LetterTypeNone")
	case LetterTypeCR, LetterTypeLF, LetterTypeNewline:
		return true
	case LetterTypeExtend, LetterTypeFormat:
		return false
	case LetterTypeRegionalIndicator:
		return prev != LetterTypeRegionalIndicator
	case LetterTypeKatakana:
		return prev != LetterTypeKatakana && prev != LetterTypeExtendNumLet
	case LetterTypeHebrewLetter:
		if prev == LetterTypeHebrewLetter {
			return false
		}
		if prevPrev == LetterTypeHebrewLetter && isOneOf(prev,
			LetterTypeSingleQuote, LetterTypeApostrophe, LetterTypeMidLetter, LetterTypeDoubleQuote) {
			return false
		}
		if prev == LetterTypeNumeric || prev == LetterTypeExtendNumLet {
			return false
		}
		return true
	case LetterTypeALetter:
		if prev == LetterTypeALetter {
			return false
		}
		if prevPrev == LetterTypeALetter && isOneOf(prev,
			LetterTypeSingleQuote, LetterTypeApostrophe, LetterTypeMidLetter) {
			return false
		}
		if prev == LetterTypeNumeric || prev == LetterTypeExtendNumLet {
			return false
		}
		return true
	case LetterTypeSingleQuote:
		if isOneOf(prev, LetterTypeALetter, LetterTypeHebrewLetter) {
			return false
		}
		return prev != LetterTypeNumeric
	case LetterTypeDoubleQuote:
		return prev != LetterTypeDoubleQuote
	case LetterTypeMidNumLet:
		// Diverges from WB6/WB7: MidNumLet always breaks here. The
		// apostrophe exception those rules carve out is handled by the
		// separate Apostrophe category, not this one.
		return true
	case LetterTypeMidLetter:
		return !isOneOf(prev, LetterTypeALetter, LetterTypeHebrewLetter)
	case LetterTypeMidNum:
		return prev != LetterTypeNumeric
	case LetterTypeNumeric:
		if prev == LetterTypeNumeric {
			return false
		}
		if isOneOf(prev, LetterTypeALetter, LetterTypeHebrewLetter) {
			return false
		}
		if prevPrev == LetterTypeNumeric && isOneOf(prev,
			LetterTypeMidNum, LetterTypeMidNumLet, LetterTypeSingleQuote) {
			return false
		}
		return prev != LetterTypeExtendNumLet
	case LetterTypeExtendNumLet:
		return !isOneOf(prev, LetterTypeALetter, LetterTypeHebrewLetter,
			LetterTypeNumeric, LetterTypeKatakana, LetterTypeExtendNumLet)
	case LetterTypeApostrophe:
		return !isOneOf(prev, LetterTypeALetter, LetterTypeHebrewLetter)
	case LetterTypeOther:
		return true
	default:
		panic("tokenizer: letterBoundary called with unknown LetterType")
	}
}

func isOneOf(lt LetterType, candidates ...LetterType) bool {
	for _, c := range candidates {
		if lt == c {
			return true
		}
	}
	return false
}

// isOnePastEnd reports whether the buffer's trailing codepoint is a
// WB6/WB7/WB11/WB12 false positive that finalize must drop.
func isOnePastEnd(prev LetterType) bool {
	return isOneOf(prev, LetterTypeMidLetter, LetterTypeMidNumLet,
		LetterTypeApostrophe, LetterTypeSingleQuote, LetterTypeMidNum)
}

// foundWordBoundary decides whether lt starts a new word given the
// current category history. When it returns false, it has already
// updated that history as a side effect (a no-op for Extend/Format).
func (t *Tokenizer) foundWordBoundary(lt LetterType) bool {
	if t.prevLetter != LetterTypeNone && letterBoundary(lt, t.prevLetter, t.prevPrevLetter) {
		return true
	}

	if lt == LetterTypeExtend || lt == LetterTypeFormat {
		return false
	}
	if t.prevLetter != LetterTypeNone {
		t.prevPrevLetter = t.prevLetter
	}
	t.prevLetter = lt
	return false
}

// finalizeTR29 trims a WB6/7/WB11/12 false positive off the buffer's
// tail if present, resets the category history, and returns the
// finished token. The returned slice aliases the handle's buffer, the
// same borrowed-view contract nextSimple's callers get.
func (t *Tokenizer) finalizeTR29() []byte {
	if isOnePastEnd(t.prevLetter) {
		t.buf.TrimLastRune()
	}
	if t.buf.Len() == 0 {
		panic("tokenizer: TR29 finalize produced an empty token")
	}

	t.prevLetter = LetterTypeNone
	t.prevPrevLetter = LetterTypeNone

	tok := t.buf.Bytes()
	t.buf.Reset()
	return tok
}

// nextTR29 implements the streaming TR29 word-boundary engine.
func (t *Tokenizer) nextTR29(chunk []byte) (Status, int, []byte) {
	limit := completePrefixLen(chunk)

	i, startSkip := 0, 0
	for i < limit {
		charStart := i
		c, size := decodeRune(chunk[i:])
		i += size
		lt := letterType(c)

		if t.prevLetter == LetterTypeNone && isNonToken(lt) {
			startSkip = i
			continue
		}

		if t.foundWordBoundary(lt) {
			t.buf.AppendTruncated(chunk[startSkip:charStart])
			return TokenReady, i, t.finalizeTR29()
		}
	}

	t.buf.AppendTruncated(chunk[startSkip:i])

	if len(chunk) == 0 && t.buf.Len() > 0 {
		return TokenReady, 0, t.finalizeTR29()
	}

	return NeedMore, i, nil
}
