// Package tokenizer implements a streaming word-boundary tokenizer for
// full-text search indexing. It consumes arbitrary UTF-8 byte chunks
// and emits a sequence of tokens, using either a fast ASCII-table-
// driven splitter (AlgorithmSimple) or an adaptation of Unicode Annex
// #29 word-boundary rules tailored for FTS (AlgorithmTR29).
package tokenizer

import "github.com/k0kubun/fts-tokenize/internal/tokbuf"

// Status reports what a call to Next did.
type Status int

const (
	// NeedMore means Next consumed skip bytes and produced no token;
	// the caller should advance by skip and call Next again with the
	// remainder (or, at end of input, with an empty chunk). A trailing
	// partial codepoint is left unconsumed; it has to be passed again
	// together with the bytes that follow it.
	NeedMore Status = iota
	// TokenReady means Next produced a token after consuming skip
	// bytes.
	TokenReady
)

// Tokenizer is the mutable streaming handle: it owns a token buffer
// and, in TR29 mode, a two-entry category history. It is not safe for
// concurrent use; each handle belongs to one logical caller.
type Tokenizer struct {
	settings settings
	buf      tokbuf.Buffer

	prevLetter     LetterType
	prevPrevLetter LetterType
}

// New creates a Tokenizer from an ordered (key, value, key, value,
// ...) settings list. Recognized keys are "maxlen" (positive integer,
// default 30), "algorithm" ("simple", the default, or "tr29"),
// "search" (accepted and ignored), and "recover" (see settings.go). An
// unrecognized key or an invalid value for a recognized one returns a
// *ConfigError and no Tokenizer.
func New(pairs ...string) (*Tokenizer, error) {
	s, err := parseSettings(pairs)
	if err != nil {
		return nil, err
	}
	t := &Tokenizer{settings: s}
	t.buf.MaxLength = s.maxLength
	t.Reset()
	return t, nil
}

// Algorithm reports which engine this handle was configured with.
func (t *Tokenizer) Algorithm() Algorithm { return t.settings.algorithm }

// MaxLength reports the configured token length cap in bytes.
func (t *Tokenizer) MaxLength() int { return t.settings.maxLength }

// Reset empties the token buffer and clears the category history,
// leaving the handle observationally equivalent to a freshly created
// one with the same settings.
func (t *Tokenizer) Reset() {
	t.buf.Reset()
	t.prevLetter = LetterTypeNone
	t.prevPrevLetter = LetterTypeNone
}

// Close releases the handle's internal buffer. After Close, the
// Tokenizer must not be used again.
func (t *Tokenizer) Close() error {
	t.buf = tokbuf.Buffer{}
	return nil
}

// Next feeds the next chunk of input. A call with len(chunk) == 0
// signals end-of-input and flushes any token pending in the buffer;
// callers must keep calling Next(nil) until it returns
// (NeedMore, 0, nil, nil) to drain every trailing token. Reset and
// Close both silently discard a non-flushed buffer.
//
// The returned token, in both algorithms, is a slice into the
// handle's internal buffer: it is only valid until the next call to
// Next, Reset or Close. Callers that need to retain it must copy it.
//
// Next panics on malformed UTF-8 unless the handle was created with
// the "recover" setting, in which case the panic is recovered into a
// returned error and the handle is left in the state it was in before
// the call.
func (t *Tokenizer) Next(chunk []byte) (status Status, skip int, token []byte, err error) {
	if t.settings.recover {
		saved := append([]byte(nil), t.buf.Bytes()...)
		prev, prevPrev := t.prevLetter, t.prevPrevLetter
		defer func() {
			if r := recover(); r != nil {
				if e, ok := r.(error); ok {
					t.buf.Reset()
					t.buf.AppendTruncated(saved)
					t.prevLetter, t.prevPrevLetter = prev, prevPrev
					err = e
					status, skip, token = NeedMore, 0, nil
					return
				}
				panic(r)
			}
		}()
	}

	if t.settings.algorithm == AlgorithmTR29 {
		status, skip, token = t.nextTR29(chunk)
		return status, skip, token, nil
	}
	status, skip, token = t.nextSimple(chunk)
	return status, skip, token, nil
}
