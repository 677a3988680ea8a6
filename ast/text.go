package ast

import "strings"

// SourceText returns the exact source text covered by node, trivia included.
// Implicit tokens contribute nothing.
func SourceText(node Node) string {
	var sb strings.Builder
	for tok := range Tokens(node) {
		sb.WriteString(tok.SourceText())
	}
	return sb.String()
}

// TriviaFreeText returns the source text of node without the leading trivia
// of its first token and the trailing trivia of its last token.
func TriviaFreeText(node Node) string {
	var present []*Token
	for tok := range Tokens(node) {
		if !tok.IsImplicit() {
			present = append(present, tok)
		}
	}
	var sb strings.Builder
	for i, tok := range present {
		if i > 0 {
			sb.WriteString(string(tok.LeadingTrivia))
		}
		sb.WriteString(tok.Text)
		if i < len(present)-1 {
			sb.WriteString(string(tok.TrailingTrivia))
		}
	}
	return sb.String()
}

// Span returns the byte offsets of the first and last text bytes covered by
// node, excluding the outer trivia. A node made only of implicit tokens has
// an empty span at its insertion point; ok is false for a node with no
// tokens at all.
func Span(node Node) (start, end int, ok bool) {
	var first, last, firstImplicit *Token
	for tok := range Tokens(node) {
		if tok.IsImplicit() {
			if firstImplicit == nil {
				firstImplicit = tok
			}
			continue
		}
		if first == nil {
			first = tok
		}
		last = tok
	}
	switch {
	case first != nil:
		return first.TextStart(), last.TextEnd(), true
	case firstImplicit != nil:
		return firstImplicit.Offset, firstImplicit.Offset, true
	}
	return 0, 0, false
}
