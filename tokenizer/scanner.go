package tokenizer

import "bufio"

// SplitFunc adapts a Tokenizer to bufio.Scanner, the idiomatic Go
// entry point for token-at-a-time streaming over an io.Reader. It is
// not part of the create/reset/next/destroy handle API; it is a
// convenience layered on top, in the shape of clipperhouse's uax29
// phrase segmenter's split functions.
//
// A bufio.Scanner using SplitFunc should be given a buffer at least
// MaxLength bytes long via Scanner.Buffer; the default 64KiB initial
// buffer comfortably covers this package's default maxlen.
func (t *Tokenizer) SplitFunc() bufio.SplitFunc {
	return func(data []byte, atEOF bool) (advance int, token []byte, err error) {
		consumed := 0
		for {
			chunk := data[consumed:]
			if len(chunk) == 0 && !atEOF {
				// Nothing buffered yet and more input may still arrive:
				// ask the Scanner to read more before we feed Next an
				// empty (flush) chunk.
				return consumed, nil, nil
			}

			status, skip, tok, nerr := t.Next(chunk)
			if nerr != nil {
				return 0, nil, nerr
			}
			consumed += skip

			if status == TokenReady {
				out := make([]byte, len(tok))
				copy(out, tok)
				return consumed, out, nil
			}

			if len(chunk) == 0 {
				// That was the end-of-stream flush call and it produced
				// nothing more: truly done.
				return consumed, nil, nil
			}
			if skip == 0 && len(chunk) > 0 {
				// Next needs bytes past what data currently holds (a
				// split codepoint at the end of the buffer); wait for
				// more unless this really is the end of input, in
				// which case chunk ends in a codepoint that will never
				// complete and decodeRune would panic on it.
				if atEOF {
					return consumed, nil, errMalformedUTF8
				}
				return consumed, nil, nil
			}
		}
	}
}
