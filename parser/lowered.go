package parser

import (
	"github.com/strata-lang/strata/ast"
	"github.com/strata-lang/strata/token"
)

// grammar selects between the surface expression grammar and the lowered
// form used to re-parse elaborated terms. The lowered form has no let
// expressions and no braced parameters, and an atom run ends at a line break.
// Inside parentheses the surface grammar always applies.
type grammar uint8

const (
	surface grammar = iota
	lowered
)

// atLineBreak reports whether the current token starts a new line and the
// grammar ends atom runs there.
func (p *Parser) atLineBreak(g grammar) bool {
	if g != lowered {
		return false
	}
	tok := p.peekToken(0)
	return tok != nil && tok.LeadingTrivia.ContainsNewline()
}

// atArrow reports whether the current token is an arrow that continues the
// current expression.
func (p *Parser) atArrow(g grammar) bool {
	return p.peek(0) == token.ARROW && !p.atLineBreak(g)
}

func wrapExpr[T ast.Expr](expr T, err error) (ast.Expr, error) {
	if err != nil {
		return nil, err
	}
	return expr, nil
}

func wrapBasicExpr[T ast.BasicExpr](expr T, err error) (ast.BasicExpr, error) {
	if err != nil {
		return nil, err
	}
	return expr, nil
}
