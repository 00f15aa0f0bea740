package tokbuf

import "testing"

func TestAppendTruncatedWithinCap(t *testing.T) {
	var b Buffer
	b.MaxLength = 30
	b.AppendTruncated([]byte("hello"))
	if got := string(b.Bytes()); got != "hello" {
		t.Fatalf("Bytes() = %q, want %q", got, "hello")
	}
}

func TestAppendTruncatedCapsLength(t *testing.T) {
	var b Buffer
	b.MaxLength = 10
	b.AppendTruncated([]byte("aaaaaaaaaaaaaaaaaaaa"))
	if got := b.Len(); got != 10 {
		t.Fatalf("Len() = %d, want 10", got)
	}
	b.AppendTruncated([]byte("more"))
	if got := b.Len(); got != 10 {
		t.Fatalf("Len() after further append = %d, want 10 (buffer already full)", got)
	}
}

func TestAppendTruncatedFoldsNonASCIIApostrophe(t *testing.T) {
	var b Buffer
	b.MaxLength = 30
	b.AppendTruncated([]byte("don’t"))
	if got := string(b.Bytes()); got != "don't" {
		t.Fatalf("Bytes() = %q, want %q", got, "don't")
	}
}

func TestAppendTruncatedAcrossMultipleCalls(t *testing.T) {
	var b Buffer
	b.MaxLength = 30
	b.AppendTruncated([]byte("foo"))
	b.AppendTruncated([]byte("bar"))
	if got := string(b.Bytes()); got != "foobar" {
		t.Fatalf("Bytes() = %q, want %q", got, "foobar")
	}
}

func TestResetEmptiesBuffer(t *testing.T) {
	var b Buffer
	b.MaxLength = 30
	b.AppendTruncated([]byte("hello"))
	b.Reset()
	if got := b.Len(); got != 0 {
		t.Fatalf("Len() after Reset = %d, want 0", got)
	}
}

func TestTrimLastRuneASCII(t *testing.T) {
	var b Buffer
	b.MaxLength = 30
	b.AppendTruncated([]byte("abc:"))
	b.TrimLastRune()
	if got := string(b.Bytes()); got != "abc" {
		t.Fatalf("Bytes() = %q, want %q", got, "abc")
	}
}

func TestTrimLastRuneMultiByte(t *testing.T) {
	var b Buffer
	b.MaxLength = 30
	b.AppendTruncated([]byte("naïve…")) // trailing HORIZONTAL ELLIPSIS, 3 bytes
	b.TrimLastRune()
	if got := string(b.Bytes()); got != "naïve" {
		t.Fatalf("Bytes() = %q, want %q", got, "naïve")
	}
}

func TestTrimApostrophesStripsBothEnds(t *testing.T) {
	var b Buffer
	b.MaxLength = 30
	b.AppendTruncated([]byte("'abc'"))
	if got := string(b.TrimApostrophes()); got != "abc" {
		t.Fatalf("TrimApostrophes() = %q, want %q", got, "abc")
	}
}

func TestTrimApostrophesAllApostrophes(t *testing.T) {
	var b Buffer
	b.MaxLength = 30
	b.AppendTruncated([]byte("'''"))
	if got := b.TrimApostrophes(); len(got) != 0 {
		t.Fatalf("TrimApostrophes() = %q, want empty", got)
	}
}

func TestTrimApostrophesNoApostrophes(t *testing.T) {
	var b Buffer
	b.MaxLength = 30
	b.AppendTruncated([]byte("abc"))
	if got := string(b.TrimApostrophes()); got != "abc" {
		t.Fatalf("TrimApostrophes() = %q, want %q", got, "abc")
	}
}
