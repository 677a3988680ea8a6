package parser

import (
	"github.com/strata-lang/strata/ast"
	"github.com/strata-lang/strata/token"
)

// isStartOfBasicExpr reports whether the current token can begin an atom.
func (p *Parser) isStartOfBasicExpr(g grammar) bool {
	switch p.peek(0) {
	case token.UNDERSCORE, token.TYPE, token.LPAREN, token.RECORD, token.IDENT:
		return true
	case token.LBRACE:
		return g == surface
	}
	return false
}

// parseExpr parses a lambda, a quantifier, a let expression or a run of atoms
// and arrows. A run of one element is returned as that atom; longer runs form
// an application.
func (p *Parser) parseExpr(g grammar) (ast.Expr, error) {
	defer p.leave()
	if err := p.enter(); err != nil {
		return nil, err
	}
	switch p.peek(0) {
	case token.BACKSLASH:
		return wrapExpr(p.parseLambdaExpr(g))
	case token.FORALL, token.FORALL_SYMBOL:
		return wrapExpr(p.parseQuantifiedExpr(g))
	case token.LET:
		if g == surface {
			return wrapExpr(p.parseLetExpr())
		}
	}
	return p.finishParsingExpr(g, nil)
}

// finishParsingExpr continues a run of atoms and arrows that starts with
// exprs.
func (p *Parser) finishParsingExpr(g grammar, exprs []ast.BasicExpr) (ast.Expr, error) {
	for {
		if len(exprs) > 0 && p.atLineBreak(g) {
			break
		}
		if p.atArrow(g) {
			arrow := &ast.QualifiedNamePiece{Name: p.take()}
			exprs = append(exprs, &ast.NamedBasicExpr{Name: ast.NewQualifiedName(arrow)})
			continue
		}
		if !p.isStartOfBasicExpr(g) {
			break
		}
		more, _, err := p.parseBasicExprs(g, "expression")
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, more...)
	}
	switch len(exprs) {
	case 0:
		return nil, p.expected("expression")
	case 1:
		return exprs[0], nil
	}
	return &ast.ApplicationExpr{Exprs: ast.NewBasicExprList(exprs...)}, nil
}

// parseBasicExprs parses a non-empty run of atoms along with the location of
// each. what names the construct in the error when the run is empty.
func (p *Parser) parseBasicExprs(g grammar, what string) ([]ast.BasicExpr, []token.Location, error) {
	var exprs []ast.BasicExpr
	var locs []token.Location
	for p.isStartOfBasicExpr(g) {
		if len(exprs) > 0 && p.atLineBreak(g) {
			break
		}
		locs = append(locs, p.tokenLocation())
		expr, err := p.parseBasicExpr(g)
		if err != nil {
			return nil, nil, err
		}
		exprs = append(exprs, expr)
	}
	if len(exprs) == 0 {
		return nil, nil, p.expected(what)
	}
	return exprs, locs, nil
}

func (p *Parser) parseBasicExprList(g grammar) (*ast.BasicExprList, error) {
	exprs, _, err := p.parseBasicExprs(g, "list of expressions")
	if err != nil {
		return nil, err
	}
	return ast.NewBasicExprList(exprs...), nil
}

func (p *Parser) parseBasicExpr(g grammar) (ast.BasicExpr, error) {
	defer p.leave()
	if err := p.enter(); err != nil {
		return nil, err
	}
	switch p.peek(0) {
	case token.UNDERSCORE:
		return &ast.UnderscoreExpr{Underscore: p.take()}, nil
	case token.TYPE:
		return &ast.TypeBasicExpr{TypeToken: p.take()}, nil
	case token.LPAREN:
		return p.parseParenthesizedExpr(g)
	case token.LBRACE:
		if g == surface {
			return wrapBasicExpr(p.parseTypedParameterGroupExpr())
		}
	case token.RECORD:
		return wrapBasicExpr(p.parseRecordExpr())
	case token.IDENT:
		name, err := p.parseQualifiedName()
		if err != nil {
			return nil, err
		}
		return &ast.NamedBasicExpr{Name: name}, nil
	}
	return nil, p.expected("expression")
}

// parseParenthesizedExpr parses "()" as an absurd pattern, "(x y : A) ..."
// as a group of typed parameters, and anything else as a parenthesized
// expression.
func (p *Parser) parseParenthesizedExpr(g grammar) (ast.BasicExpr, error) {
	lparen, err := p.consume(token.LPAREN)
	if err != nil {
		return nil, err
	}
	if rparen := p.consumeIf(token.RPAREN); rparen != nil {
		return &ast.AbsurdExpr{LeftParen: lparen, RightParen: rparen}, nil
	}
	if !p.isStartOfBasicExpr(surface) {
		expr, err := p.parseExpr(surface)
		if err != nil {
			return nil, err
		}
		return p.closeParenthesizedExpr(lparen, expr)
	}
	exprs, locs, err := p.parseBasicExprs(surface, "expression")
	if err != nil {
		return nil, err
	}
	switch p.peek(0) {
	case token.COLON:
		return p.finishParsingTypedParameterGroupExpr(g, lparen, exprs, locs)
	case token.RPAREN:
		if len(exprs) == 1 {
			return p.closeParenthesizedExpr(lparen, exprs[0])
		}
		return p.closeParenthesizedExpr(lparen, &ast.ApplicationExpr{Exprs: ast.NewBasicExprList(exprs...)})
	}
	expr, err := p.finishParsingExpr(surface, exprs)
	if err != nil {
		return nil, err
	}
	return p.closeParenthesizedExpr(lparen, expr)
}

func (p *Parser) closeParenthesizedExpr(lparen *ast.Token, expr ast.Expr) (ast.BasicExpr, error) {
	rparen, err := p.consume(token.RPAREN)
	if err != nil {
		return nil, err
	}
	return &ast.ParenthesizedExpr{LeftParen: lparen, Expr: expr, RightParen: rparen}, nil
}

// finishParsingTypedParameterGroupExpr reinterprets the atoms before ":" as
// bound names and parses the rest of the group.
func (p *Parser) finishParsingTypedParameterGroupExpr(g grammar, lparen *ast.Token, exprs []ast.BasicExpr, locs []token.Location) (ast.BasicExpr, error) {
	colon, err := p.consume(token.COLON)
	if err != nil {
		return nil, err
	}
	names := make([]*ast.QualifiedName, 0, len(exprs))
	for i, expr := range exprs {
		named, ok := expr.(*ast.NamedBasicExpr)
		if !ok {
			return nil, p.diagnose(msgExpected("identifier"), locs[i], p.highlight(expr))
		}
		names = append(names, named.Name)
	}
	ids := p.ensureAllNamesSimple(names, locs)
	typ, err := p.parseExpr(surface)
	if err != nil {
		return nil, err
	}
	rparen, err := p.consume(token.RPAREN)
	if err != nil {
		return nil, err
	}
	first := &ast.ExplicitTypedParameter{
		LeftParen:  lparen,
		Ascription: &ast.Ascription{BoundNames: ast.NewIdentifierList(ids...), Colon: colon, Type: typ},
		RightParen: rparen,
	}
	rest, err := p.parseTypedParameterList(g)
	if err != nil {
		return nil, err
	}
	params := append([]ast.TypedParameter{first}, rest.Elems()...)
	return &ast.TypedParameterGroupExpr{Parameters: ast.NewTypedParameterList(params...)}, nil
}

// parseTypedParameterGroupExpr parses a group that starts with a braced
// parameter.
func (p *Parser) parseTypedParameterGroupExpr() (*ast.TypedParameterGroupExpr, error) {
	params, err := p.parseTypedParameterList(surface)
	if err != nil {
		return nil, err
	}
	if params.Len() == 0 {
		return nil, p.expected("type ascription")
	}
	return &ast.TypedParameterGroupExpr{Parameters: params}, nil
}

// parseLambdaExpr parses: \ Bindings -> Expr
func (p *Parser) parseLambdaExpr(g grammar) (*ast.LambdaExpr, error) {
	slash, err := p.consume(token.BACKSLASH)
	if err != nil {
		return nil, err
	}
	bindings, err := p.parseBindingList(g)
	if err != nil {
		return nil, err
	}
	arrow, err := p.consume(token.ARROW)
	if err != nil {
		return nil, err
	}
	body, err := p.parseExpr(g)
	if err != nil {
		return nil, err
	}
	return &ast.LambdaExpr{Slash: slash, Bindings: bindings, Arrow: arrow, Body: body}, nil
}

// parseQuantifiedExpr parses: forall Params -> Expr
func (p *Parser) parseQuantifiedExpr(g grammar) (*ast.QuantifiedExpr, error) {
	forall, err := p.consume(token.FORALL, token.FORALL_SYMBOL)
	if err != nil {
		return nil, err
	}
	params, err := p.parseTypedParameterList(g)
	if err != nil {
		return nil, err
	}
	arrow, err := p.consume(token.ARROW)
	if err != nil {
		return nil, err
	}
	output, err := p.parseExpr(g)
	if err != nil {
		return nil, err
	}
	return &ast.QuantifiedExpr{ForallToken: forall, Parameters: params, Arrow: arrow, Output: output}, nil
}

// parseLetExpr parses: let { Decls } in Expr
func (p *Parser) parseLetExpr() (*ast.LetExpr, error) {
	let, err := p.consume(token.LET)
	if err != nil {
		return nil, err
	}
	lbrace, err := p.consume(token.LBRACE)
	if err != nil {
		return nil, err
	}
	decls, err := p.parseDeclList()
	if err != nil {
		return nil, err
	}
	rbrace, err := p.consume(token.RBRACE)
	if err != nil {
		return nil, err
	}
	in, err := p.consume(token.IN)
	if err != nil {
		return nil, err
	}
	output, err := p.parseExpr(surface)
	if err != nil {
		return nil, err
	}
	return &ast.LetExpr{LetToken: let, LeftBrace: lbrace, Decls: decls, RightBrace: rbrace, InToken: in, Output: output}, nil
}

// parseRecordExpr parses: record Atom? { Assignments }
func (p *Parser) parseRecordExpr() (*ast.RecordExpr, error) {
	record, err := p.consume(token.RECORD)
	if err != nil {
		return nil, err
	}
	var param ast.BasicExpr
	if p.peek(0) != token.LBRACE && p.isStartOfBasicExpr(surface) {
		param, err = p.parseBasicExpr(surface)
		if err != nil {
			return nil, err
		}
	}
	lbrace, err := p.consume(token.LBRACE)
	if err != nil {
		return nil, err
	}
	fields, err := p.parseRecordFieldAssignmentList()
	if err != nil {
		return nil, err
	}
	rbrace, err := p.consume(token.RBRACE)
	if err != nil {
		return nil, err
	}
	return &ast.RecordExpr{RecordToken: record, Parameter: param, LeftBrace: lbrace, Fields: fields, RightBrace: rbrace}, nil
}

func (p *Parser) parseRecordFieldAssignmentList() (*ast.RecordFieldAssignmentList, error) {
	var fields []*ast.RecordFieldAssignment
	for p.peek(0) == token.IDENT {
		name := p.take()
		equals, err := p.consume(token.EQUALS)
		if err != nil {
			return nil, err
		}
		init, err := p.parseExpr(surface)
		if err != nil {
			return nil, err
		}
		semi, err := p.consume(token.SEMICOLON)
		if err != nil {
			return nil, err
		}
		fields = append(fields, &ast.RecordFieldAssignment{Name: name, Equals: equals, Init: init, TrailingSemicolon: semi})
	}
	return ast.NewRecordFieldAssignmentList(fields...), nil
}

// parseBindingList parses the binders of a lambda: typed parameters,
// underscores and names, at least one.
func (p *Parser) parseBindingList(g grammar) (*ast.BindingList, error) {
	var bindings []ast.Binding
	for {
		switch {
		case p.isStartOfTypedParameter(g):
			param, err := p.parseTypedParameter(g)
			if err != nil {
				return nil, err
			}
			bindings = append(bindings, &ast.TypedBinding{Parameter: param})
		case p.peek(0) == token.UNDERSCORE:
			bindings = append(bindings, &ast.AnonymousBinding{Underscore: p.take()})
		case p.peek(0) == token.IDENT:
			name, err := p.parseQualifiedName()
			if err != nil {
				return nil, err
			}
			bindings = append(bindings, &ast.NamedBinding{Name: name})
		default:
			if len(bindings) == 0 {
				return nil, p.expected("binding list")
			}
			return ast.NewBindingList(bindings...), nil
		}
	}
}
