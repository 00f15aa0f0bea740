package tokenizer

import "testing"

func newTR29(t *testing.T, pairs ...string) *Tokenizer {
	t.Helper()
	tok, err := New(append([]string{"algorithm", "tr29"}, pairs...)...)
	if err != nil {
		t.Fatal(err)
	}
	return tok
}

// WB6/WB7 keep an apostrophe between letters.
func TestTR29ApostropheKeepsContraction(t *testing.T) {
	assertTokens(t, drain(t, newTR29(t), "can't"), []string{"can't"})
}

// A comma between two words always breaks.
func TestTR29CommaBetweenWordsBreaks(t *testing.T) {
	assertTokens(t, drain(t, newTR29(t), "hello,world"), []string{"hello", "world"})
}

// WB11/WB12 keep a comma inside a number run.
func TestTR29CommaInsideNumberStays(t *testing.T) {
	assertTokens(t, drain(t, newTR29(t), "1,000"), []string{"1,000"})
}

// A trailing period is never absorbed into the preceding word.
func TestTR29TrailingPeriodTrimmed(t *testing.T) {
	assertTokens(t, drain(t, newTR29(t), "abc."), []string{"abc"})
}

// A Katakana run segments as its own token; the exact tail behavior
// depends on the property tables in use, but isNonToken's leading-run
// skip means a pure-Other run (Hiragana, here) that never touches a
// token-starting category is discarded as a separator rather than
// emitted as its own token or one-codepoint tokens.
func TestTR29KatakanaRunSegmentsOnItsOwn(t *testing.T) {
	assertTokens(t, drain(t, newTR29(t), "カタカナです"), []string{"カタカナ"})
}

func TestTR29LeadingNonTokenRunIsSkipped(t *testing.T) {
	// A leading run of punctuation with no token-starting category
	// (ALetter/HebrewLetter/Katakana/RegionalIndicator/Numeric) is
	// discarded, not emitted.
	assertTokens(t, drain(t, newTR29(t), "...hello"), []string{"hello"})
}

func TestTR29NewlineBreaks(t *testing.T) {
	assertTokens(t, drain(t, newTR29(t), "foo\nbar"), []string{"foo", "bar"})
}

func TestTR29ChunkInvariance(t *testing.T) {
	const input = "can't stop 1,000 words. hello,world カタカナ ok."

	whole := newTR29(t)
	oneShot := drain(t, whole, input)

	for split := 1; split < len(input); split++ {
		got := drainChunks(t, newTR29(t), []string{input[:split], input[split:]})
		assertTokens(t, got, oneShot)
	}
}

func TestTR29LengthCap(t *testing.T) {
	tok := newTR29(t, "maxlen", "5")
	assertTokens(t, drain(t, tok, "abcdefghij"), []string{"abcde"})
}

func TestTR29ResetIsIdempotent(t *testing.T) {
	tok := newTR29(t)
	if _, _, _, err := tok.Next([]byte("can")); err != nil {
		t.Fatal(err)
	}
	tok.Reset()
	assertTokens(t, drain(t, tok, "fresh"), []string{"fresh"})
}
