package tokenizer

// asciiWordBreaks is the fast path for simple-mode classification of
// codepoints below 0x80: asciiWordBreaks[c] is true when c is a word
// break. 0x00-0x1F break; 0x20-0x2F break except ' (0x27, handled as
// an apostrophe by the caller); 0x30-0x39 (digits) and
// 0x41-0x5A/0x61-0x7A (letters) do not break; 0x3A-0x3F, 0x40 and
// 0x5B-0x5E break; 0x5F (_) and 0x60 (`) do not break; 0x7B-0x7E
// break; 0x7F does not break.
var asciiWordBreaks = [128]bool{}

func init() {
	for c := 0; c < 0x20; c++ {
		asciiWordBreaks[c] = true
	}
	for c := 0x20; c <= 0x2F; c++ {
		asciiWordBreaks[c] = c != '\''
	}
	for c := 0x3A; c <= 0x40; c++ {
		asciiWordBreaks[c] = true
	}
	for c := 0x5B; c <= 0x5E; c++ {
		asciiWordBreaks[c] = true
	}
	for c := 0x7B; c <= 0x7E; c++ {
		asciiWordBreaks[c] = true
	}
	// 0x30-0x39, 0x41-0x5A, 0x5F, 0x60, 0x61-0x7A, 0x7F default to
	// false (not a break) and need no explicit assignment.
}
