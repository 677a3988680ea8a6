// Package tokentest builds token streams from short source snippets. It is a
// fixture for tests; the real lexer and layout pass live upstream.
package tokentest

import (
	"strings"
	"unicode/utf8"

	"github.com/strata-lang/strata/token"
)

// Scan splits src into tokens.
//
// Whitespace and "--" line comments are trivia. Spaces and tabs following a
// token on the same line are its trailing trivia; everything else, including
// line breaks, is leading trivia of the next token. The markers "<{", "<}"
// and "<;" produce implicit braces and semicolons with no trivia. The stream
// always ends with an EOF token holding any remaining trivia.
func Scan(src string) []token.Token {
	var tokens []token.Token
	var pending strings.Builder
	i := 0
	for {
		start := i
		i = skipTrivia(src, i)
		pending.WriteString(src[start:i])
		if i >= len(src) {
			return append(tokens, token.Token{Type: token.EOF, LeadingTrivia: token.Trivia(pending.String())})
		}
		if typ, ok := marker(src[i:]); ok {
			tokens = append(tokens, token.Synthesize(typ))
			i += 2
			continue
		}
		text := word(src[i:])
		i += len(text)
		trailing := i
		for i < len(src) && (src[i] == ' ' || src[i] == '\t') {
			i++
		}
		tokens = append(tokens, token.Token{
			Type:           token.LookupIdentifier(text),
			Text:           text,
			LeadingTrivia:  token.Trivia(pending.String()),
			TrailingTrivia: token.Trivia(src[trailing:i]),
		})
		pending.Reset()
	}
}

// Source returns the text a token stream was scanned from, minus markers.
func Source(tokens []token.Token) string {
	return token.Source(tokens)
}

func skipTrivia(src string, i int) int {
	for i < len(src) {
		switch {
		case src[i] == ' ' || src[i] == '\t' || src[i] == '\n' || src[i] == '\r':
			i++
		case strings.HasPrefix(src[i:], "--"):
			for i < len(src) && src[i] != '\n' {
				i++
			}
		default:
			return i
		}
	}
	return i
}

func marker(s string) (token.Type, bool) {
	switch {
	case strings.HasPrefix(s, "<{"):
		return token.LBRACE, true
	case strings.HasPrefix(s, "<}"):
		return token.RBRACE, true
	case strings.HasPrefix(s, "<;"):
		return token.SEMICOLON, true
	}
	return "", false
}

const delimiters = "(){};.\\"

func isDelimiter(r rune) bool {
	return r == '∀' || strings.ContainsRune(delimiters, r)
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// word returns the token text at the start of s: a single delimiter or a
// maximal run of other non-space characters.
func word(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if isDelimiter(r) {
		return s[:size]
	}
	end := 0
	for end < len(s) {
		r, size := utf8.DecodeRuneInString(s[end:])
		if isSpace(r) || isDelimiter(r) {
			break
		}
		if _, ok := marker(s[end:]); ok && end > 0 {
			break
		}
		end += size
	}
	return s[:end]
}
