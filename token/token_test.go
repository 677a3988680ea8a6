package token

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test looking up values succeeds, then fails
func TestLookup(t *testing.T) {
	for key, val := range keywords {
		assert.Equal(t, val, LookupIdentifier(key), key)

		// Keywords are case sensitive.
		if strings.ToUpper(key) != key {
			assert.Equal(t, Type(IDENT), LookupIdentifier(strings.ToUpper(key)), key)
		}
	}
	assert.Equal(t, Type(ARROW), LookupIdentifier("->"))
	assert.Equal(t, Type(IDENT), LookupIdentifier("type"))
	assert.Equal(t, Type(IDENT), LookupIdentifier("+"))
}

func TestByteSize(t *testing.T) {
	tok := Token{Type: IDENT, Text: "foo", LeadingTrivia: "\n  ", TrailingTrivia: " "}
	assert.Equal(t, 7, tok.ByteSize())
	assert.Equal(t, "\n  foo ", tok.SourceText())
	assert.True(t, tok.LeadingTrivia.ContainsNewline())
	assert.False(t, tok.TrailingTrivia.ContainsNewline())

	implicit := Synthesize(SEMICOLON)
	assert.True(t, implicit.IsImplicit())
	assert.Equal(t, 0, implicit.ByteSize())
	assert.Equal(t, "", implicit.SourceText())
	assert.Equal(t, ";", implicit.Describe())
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "foo", New(IDENT, "foo").Describe())
	assert.Equal(t, "end of file", Synthesize(EOF).Describe())
	assert.Equal(t, "identifier", Type(IDENT).Text())
	assert.Equal(t, "where", Type(WHERE).Text())
}

func TestLineTable(t *testing.T) {
	table := NewLineTable("a.strata", "module A\n  where\r\nx")
	tests := []struct {
		offset int
		line   int
		column int
	}{
		{0, 1, 1},
		{7, 1, 8},
		{8, 1, 9},
		{9, 2, 1},
		{11, 2, 3},
		{18, 3, 1},
		{100, 3, 2},
		{-4, 1, 1},
	}
	for _, tt := range tests {
		loc := table.Location(tt.offset)
		assert.Equal(t, tt.line, loc.Line, "offset %d", tt.offset)
		assert.Equal(t, tt.column, loc.Column, "offset %d", tt.offset)
		assert.Equal(t, "a.strata", loc.File)
	}
	assert.Equal(t, 3, table.LineCount())
	assert.Equal(t, "module A", table.Line(1))
	assert.Equal(t, "  where", table.Line(2))
	assert.Equal(t, "x", table.Line(3))
	assert.Equal(t, "", table.Line(4))
	assert.Equal(t, "a.strata:2:3", table.Location(11).String())
}

func TestStreamRoundTrip(t *testing.T) {
	tokens := []Token{
		New(MODULE, "module"),
		{Type: IDENT, Text: "A", LeadingTrivia: " "},
		Synthesize(LBRACE),
		{Type: EOF, LeadingTrivia: "\n"},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteStream(&buf, tokens))
	assert.Contains(t, buf.String(), `"presence":"implicit"`)

	decoded, err := ReadStream(&buf)
	require.NoError(t, err)
	assert.Equal(t, tokens, decoded)
	assert.Equal(t, "module A\n", Source(decoded))
}

func TestReadStreamErrors(t *testing.T) {
	_, err := ReadStream(strings.NewReader(`[{"type":"BOGUS","text":"x"}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown token type")

	_, err = ReadStream(strings.NewReader(`[{"type":";","text":";","presence":"implicit","leading":" "}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "carries trivia")

	_, err = ReadStream(strings.NewReader(`{`))
	require.Error(t, err)
}
