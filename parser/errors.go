package parser

import (
	"github.com/strata-lang/strata/ast"
	"github.com/strata-lang/strata/diag"
	"github.com/strata-lang/strata/token"
)

// diagnose records msg at loc and returns the diagnostic as an error.
func (p *Parser) diagnose(msg diag.Message, loc token.Location, build func(*diag.Builder)) error {
	return p.engine.Diagnose(msg, loc, build)
}

// diagnoseHere records msg at the current location, highlighting the nearest
// real token.
func (p *Parser) diagnoseHere(msg diag.Message) error {
	return p.diagnose(msg, p.currentLocation(), p.highlightAnchor())
}

// unexpectedEOF reports that the input ended inside a production.
func (p *Parser) unexpectedEOF() error {
	return p.diagnoseHere(msgUnexpectedEOF())
}

// expected reports that the named construct was expected at the cursor.
func (p *Parser) expected(name string) error {
	return p.diagnoseHere(msgExpected(name))
}

// unexpectedToken reports the current token, naming the first expected type
// if any.
func (p *Parser) unexpectedToken(expected ...token.Type) error {
	tok := p.peekToken(0)
	if tok == nil || tok.Type == token.EOF {
		return p.unexpectedEOF()
	}
	var want token.Type
	if len(expected) > 0 {
		want = expected[0]
	}
	return p.diagnoseHere(msgUnexpectedToken(*tok, want))
}

// anchor returns the nearest token at or before the cursor that appears in
// the source, scanning backward over implicit tokens only, with the offset of
// its leading trivia.
func (p *Parser) anchor() (*token.Token, int, bool) {
	offset := p.offset
	for i := 0; p.index+i >= 0; i-- {
		tok := p.peekToken(i)
		if tok == nil {
			if i == 0 {
				continue
			}
			return nil, 0, false
		}
		if i < 0 {
			offset -= tok.ByteSize()
		}
		if !tok.IsImplicit() {
			return tok, offset, true
		}
	}
	return nil, 0, false
}

// highlightAnchor returns a builder that highlights the anchor token.
func (p *Parser) highlightAnchor() func(*diag.Builder) {
	tok, offset, ok := p.anchor()
	if !ok {
		return nil
	}
	leaf := &ast.Token{Token: *tok, Offset: offset}
	r := p.rangeOf(leaf)
	return func(b *diag.Builder) {
		b.Highlight(r)
	}
}

// rangeOf converts the span of a node to a location range.
func (p *Parser) rangeOf(node ast.Node) diag.Range {
	start, end, ok := ast.Span(node)
	if !ok {
		loc := p.currentLocation()
		return diag.Range{Start: loc, End: loc}
	}
	return diag.Range{Start: p.converter.Location(start), End: p.converter.Location(end)}
}

// highlight returns a builder that highlights node.
func (p *Parser) highlight(node ast.Node) func(*diag.Builder) {
	r := p.rangeOf(node)
	return func(b *diag.Builder) {
		b.Highlight(r)
	}
}
