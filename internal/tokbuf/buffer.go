// Package tokbuf provides the growable, length-capped byte buffer the
// tokenizer accumulates the current token into.
package tokbuf

import "unicode/utf8"

const (
	nonASCIIApostropheRightQuote = '’' // RIGHT SINGLE QUOTATION MARK
	nonASCIIApostropheFullwidth  = '＇' // FULLWIDTH APOSTROPHE
)

// Buffer accumulates a single token, never growing past MaxLength
// bytes. Bytes are appended in source order; any non-ASCII apostrophe
// (U+2019, U+FF07) encountered while appending is folded to a plain
// ASCII '\'' so that downstream code only ever has to deal with one
// apostrophe byte value.
type Buffer struct {
	MaxLength int
	buf       []byte
}

// Len reports the number of bytes currently buffered.
func (b *Buffer) Len() int { return len(b.buf) }

// Reset empties the buffer without releasing its backing array.
func (b *Buffer) Reset() { b.buf = b.buf[:0] }

// Bytes returns the buffer's contents. The slice aliases the buffer's
// internal storage and is only valid until the next call to
// AppendTruncated or Reset.
func (b *Buffer) Bytes() []byte { return b.buf }

// AppendTruncated appends as much of src as fits within MaxLength,
// folding any non-ASCII apostrophe it walks over to a plain ASCII '.
// Truncation is measured against src's byte length before folding: if
// the cap is reached mid-codepoint, that codepoint's remaining bytes
// are simply not considered, and a folded apostrophe can make the
// buffer end up shorter than MaxLength even after using up the whole
// budget.
func (b *Buffer) AppendTruncated(src []byte) {
	room := b.MaxLength - len(b.buf)
	if room <= 0 {
		return
	}
	take := len(src)
	if take > room {
		take = room
	}

	pos, flushed := 0, 0
	for pos < take {
		c, size := utf8.DecodeRune(src[pos:])
		if c == nonASCIIApostropheRightQuote || c == nonASCIIApostropheFullwidth {
			b.buf = append(b.buf, src[flushed:pos]...)
			b.buf = append(b.buf, '\'')
			flushed = pos + size
		}
		pos += size
	}
	if flushed < take {
		b.buf = append(b.buf, src[flushed:take]...)
	}
}

// TrimLastRune drops the last codepoint from the buffer. It is used
// by the TR29 finalize step to undo a WB6/7/WB11/12 false positive.
// The buffer must be non-empty. When AppendTruncated's cap has cut a
// multi-byte codepoint, the buffer ends in that codepoint's lead bytes,
// and those are what TrimLastRune drops.
func (b *Buffer) TrimLastRune() {
	n := len(b.buf)
	for n > 0 && isUTF8Continuation(b.buf[n-1]) {
		n--
	}
	if n > 0 {
		n--
	}
	b.buf = b.buf[:n]
}

func isUTF8Continuation(c byte) bool {
	return c&0xC0 == 0x80
}

// TrimApostrophes strips leading and trailing ASCII apostrophes from
// the buffer in place, for the simple algorithm's post-processing
// step. It returns the trimmed content; the returned slice aliases
// the buffer and is only valid until the next mutation.
func (b *Buffer) TrimApostrophes() []byte {
	data := b.buf
	start, end := 0, len(data)
	for end > start && data[end-1] == '\'' {
		end--
	}
	for start < end && data[start] == '\'' {
		start++
	}
	return data[start:end]
}
