package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k0kubun/fts-tokenize/tokenizer"
)

func TestRunWritesOneTokenPerLine(t *testing.T) {
	tok, err := tokenizer.New()
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(tok, strings.NewReader("Hello, world!"), &out, false))

	assert.Equal(t, "Hello\nworld\n", out.String())
}

func TestRunTR29(t *testing.T) {
	tok, err := tokenizer.New("algorithm", "tr29")
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(tok, strings.NewReader("can't stop"), &out, false))

	assert.Equal(t, "can't\nstop\n", out.String())
}

func TestRunDebugIncludesTokenText(t *testing.T) {
	tok, err := tokenizer.New()
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(tok, strings.NewReader("foo bar"), &out, true))

	assert.Contains(t, out.String(), "foo")
	assert.Contains(t, out.String(), "bar")
}

func TestRunEmptyInputProducesNoTokens(t *testing.T) {
	tok, err := tokenizer.New()
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(tok, strings.NewReader(""), &out, false))

	assert.Empty(t, out.String())
}
