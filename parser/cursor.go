package parser

import (
	"github.com/strata-lang/strata/ast"
	"github.com/strata-lang/strata/token"
)

// peekToken returns the token n positions from the current one, or nil if
// that position is outside the stream. Negative n looks behind.
func (p *Parser) peekToken(n int) *token.Token {
	i := p.index + n
	if i < 0 || i >= len(p.tokens) {
		return nil
	}
	return &p.tokens[i]
}

// peek returns the type of the token n positions ahead, or EOF past the end.
func (p *Parser) peek(n int) token.Type {
	if tok := p.peekToken(n); tok != nil {
		return tok.Type
	}
	return token.EOF
}

// advance moves the cursor forward n tokens.
func (p *Parser) advance(n int) {
	for ; n > 0 && p.index < len(p.tokens); n-- {
		p.offset += p.tokens[p.index].ByteSize()
		p.index++
	}
}

// currentLocation is the location of the current cursor offset.
func (p *Parser) currentLocation() token.Location {
	return p.converter.Location(p.offset)
}

// peekLocation is the location immediately after the next n tokens.
func (p *Parser) peekLocation(n int) token.Location {
	offset := p.offset
	for i := 0; i < n; i++ {
		if tok := p.peekToken(i); tok != nil {
			offset += tok.ByteSize()
		}
	}
	return p.converter.Location(offset)
}

// tokenLocation is the location of the text of the current token.
func (p *Parser) tokenLocation() token.Location {
	offset := p.offset
	if tok := p.peekToken(0); tok != nil && !tok.IsImplicit() {
		offset += len(tok.LeadingTrivia)
	}
	return p.converter.Location(offset)
}

// take consumes the current token and returns it as a tree leaf.
func (p *Parser) take() *ast.Token {
	leaf := &ast.Token{Token: *p.peekToken(0), Offset: p.offset}
	p.advance(1)
	return leaf
}

// synthesize returns an implicit leaf at the cursor without consuming input.
func (p *Parser) synthesize(typ token.Type) *ast.Token {
	return &ast.Token{Token: token.Synthesize(typ), Offset: p.offset}
}

// consume consumes the current token if it has one of the given types and
// fails otherwise. The end of the stream satisfies EOF.
func (p *Parser) consume(types ...token.Type) (*ast.Token, error) {
	tok := p.peekToken(0)
	if tok == nil {
		for _, typ := range types {
			if typ == token.EOF {
				return p.synthesize(token.EOF), nil
			}
		}
		return nil, p.unexpectedEOF()
	}
	for _, typ := range types {
		if tok.Type == typ {
			return p.take(), nil
		}
	}
	return nil, p.unexpectedToken(types...)
}

// consumeIf consumes the current token if it has the given type.
func (p *Parser) consumeIf(typ token.Type) *ast.Token {
	if tok := p.peekToken(0); tok != nil && tok.Type == typ {
		return p.take()
	}
	return nil
}

// skipUntil advances to the next token of the given type, or to the end of
// the input, and returns the number of tokens skipped.
func (p *Parser) skipUntil(typ token.Type) int {
	skipped := 0
	for p.peek(0) != typ && p.peek(0) != token.EOF {
		p.advance(1)
		skipped++
	}
	return skipped
}
