package tokenizer

// nextSimple implements the simple word-break algorithm. It only ever
// keeps prevLetter in {None, SingleQuote}, tracking whether the
// codepoint just seen was an apostrophe so a run of apostrophes
// collapses to a single break.
func (t *Tokenizer) nextSimple(chunk []byte) (Status, int, []byte) {
	limit := completePrefixLen(chunk)

	i, start := 0, 0
	for i < limit {
		c, size := decodeRune(chunk[i:])
		apostrophe := isApostrophe(c)

		if isSimpleBreak(c, apostrophe, t.prevLetter == LetterTypeSingleQuote) {
			t.buf.AppendTruncated(chunk[start:i])
			if t.buf.Len() > 0 {
				if tok := t.buf.TrimApostrophes(); len(tok) > 0 {
					t.buf.Reset()
					t.prevLetter = LetterTypeNone
					return TokenReady, i + size, tok
				}
				t.buf.Reset()
			}
			start = i + size
			t.prevLetter = LetterTypeNone
		} else if apostrophe {
			t.prevLetter = LetterTypeSingleQuote
		} else {
			t.prevLetter = LetterTypeNone
		}

		i += size
	}

	t.buf.AppendTruncated(chunk[start:i])

	if len(chunk) == 0 && t.buf.Len() > 0 {
		if tok := t.buf.TrimApostrophes(); len(tok) > 0 {
			t.buf.Reset()
			t.prevLetter = LetterTypeNone
			return TokenReady, 0, tok
		}
		t.buf.Reset()
	}

	return NeedMore, i, nil
}
