package tokenizer

import "unicode/utf8"

// completePrefixLen reports how many leading bytes of data form a
// sequence of complete UTF-8 codepoints: a caller feeding chunked
// input uses this to decide how many bytes may be safely consumed
// this call, deferring a trailing partial codepoint to the next one.
// Input is assumed to be valid UTF-8; the caller is responsible for
// that.
func completePrefixLen(data []byte) int {
	n := len(data)
	if n == 0 {
		return 0
	}

	// Find where the last rune in data starts, scanning back at most
	// utf8.UTFMax bytes (a codepoint is never wider than that).
	i := n - 1
	for i > 0 && i > n-utf8.UTFMax && !utf8.RuneStart(data[i]) {
		i--
	}
	if !utf8.RuneStart(data[i]) {
		// More continuation bytes than any valid rune has; the input
		// is malformed rather than merely chunk-truncated.
		return n
	}

	if utf8.FullRune(data[i:]) {
		return n // the last rune is already complete
	}
	return i // the last rune is a partial prefix, defer it
}

// decodeRune reads exactly one codepoint from the front of data. It
// panics on malformed UTF-8, an invariant violation that should be
// unreachable; callers must have already bounded data with
// completePrefixLen so that only complete codepoints are ever handed
// here.
func decodeRune(data []byte) (rune, int) {
	c, size := utf8.DecodeRune(data)
	if c == utf8.RuneError && size <= 1 {
		panic(errMalformedUTF8)
	}
	return c, size
}
