package parser

import (
	"github.com/strata-lang/strata/ast"
	"github.com/strata-lang/strata/diag"
	"github.com/strata-lang/strata/token"
)

// parseModule parses: module Name Params where { Decls } ;
func (p *Parser) parseModule() (*ast.ModuleDecl, error) {
	moduleToken, err := p.consume(token.MODULE)
	if err != nil {
		return nil, err
	}
	name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	params, err := p.parseTypedParameterList(surface)
	if err != nil {
		return nil, err
	}
	where, err := p.consume(token.WHERE)
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
	semi, err := p.consume(token.SEMICOLON)
	if err != nil {
		return nil, err
	}
	return &ast.ModuleDecl{
		ModuleToken:       moduleToken,
		Name:              name,
		Parameters:        params,
		WhereToken:        where,
		LeftBrace:         lbrace,
		Decls:             decls,
		RightBrace:        rbrace,
		TrailingSemicolon: semi,
	}, nil
}

// parseDeclList parses declarations up to a closing brace. A declaration that
// fails to parse is skipped up to and including the next semicolon.
func (p *Parser) parseDeclList() (*ast.DeclList, error) {
	defer p.leave()
	if err := p.enter(); err != nil {
		return nil, err
	}
	var decls []ast.Decl
	for p.peek(0) != token.RBRACE {
		if p.peek(0) == token.EOF {
			return nil, p.unexpectedEOF()
		}
		declLoc := p.tokenLocation()
		decl, err := p.parseDecl()
		if err != nil {
			p.synchronize(err)
			if _, err := p.consume(token.SEMICOLON); err != nil {
				return nil, err
			}
			continue
		}
		// A signature right after a data declaration with an empty
		// constructor block was most likely meant as its constructor.
		if fn, ok := decl.(*ast.FunctionDecl); ok && len(decls) > 0 {
			if data, ok := decls[len(decls)-1].(*ast.DataDecl); ok && data.Constructors.Len() == 0 {
				r := p.rangeOf(fn)
				p.diagnose(msgUnexpectedConstructor(), declLoc, func(b *diag.Builder) {
					b.Highlight(r)
					b.Note(msgIndentToMakeConstructor(), declLoc)
				})
			}
		}
		decls = append(decls, decl)
	}
	return ast.NewDeclList(decls...), nil
}

// synchronize skips to the end of the current declaration after an error.
func (p *Parser) synchronize(cause error) {
	from := p.currentLocation()
	skipped := p.skipUntil(token.SEMICOLON)
	p.logger.Debug().
		Err(cause).
		Stringer("from", from).
		Int("skipped", skipped).
		Msg("skipping to end of declaration")
}

func (p *Parser) parseDecl() (ast.Decl, error) {
	declLoc := p.tokenLocation()
	switch p.peek(0) {
	case token.MODULE:
		return wrapDecl(p.parseModule())
	case token.DATA:
		decl, err := p.parseDataDecl()
		if err != nil {
			return nil, err
		}
		if data, ok := decl.(*ast.DataDecl); ok && data.Constructors.Len() == 0 {
			r, whereRange := p.rangeOf(data), p.rangeOf(data.WhereToken)
			p.diagnose(msgEmptyDataDeclWithWhere(), declLoc, func(b *diag.Builder) {
				b.Highlight(r)
				b.Note(msgRemoveWhereClause(), declLoc, whereRange)
			})
		}
		return decl, nil
	case token.RECORD:
		return wrapDecl(p.parseRecordDecl())
	case token.OPEN:
		return wrapDecl(p.parseOpenImportDecl())
	case token.IMPORT:
		return wrapDecl(p.parseImportDecl())
	case token.INFIX, token.INFIXL, token.INFIXR:
		return p.parseFixityDecl()
	}
	if p.isStartOfBasicExpr(surface) {
		return p.parseFunctionDeclOrClause()
	}
	err := p.expected("declaration")
	p.advance(1)
	return nil, err
}

// parseOpenImportDecl parses: open import Name ;
func (p *Parser) parseOpenImportDecl() (*ast.OpenImportDecl, error) {
	open, err := p.consume(token.OPEN)
	if err != nil {
		return nil, err
	}
	imp, err := p.consume(token.IMPORT)
	if err != nil {
		return nil, err
	}
	name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	semi, err := p.consume(token.SEMICOLON)
	if err != nil {
		return nil, err
	}
	return &ast.OpenImportDecl{OpenToken: open, ImportToken: imp, Name: name, TrailingSemicolon: semi}, nil
}

// parseImportDecl parses: import Name ;
func (p *Parser) parseImportDecl() (*ast.ImportDecl, error) {
	imp, err := p.consume(token.IMPORT)
	if err != nil {
		return nil, err
	}
	name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	semi, err := p.consume(token.SEMICOLON)
	if err != nil {
		return nil, err
	}
	return &ast.ImportDecl{ImportToken: imp, Name: name, TrailingSemicolon: semi}, nil
}

// parseFixityDecl parses: infix|infixl|infixr Precedence Names ;
func (p *Parser) parseFixityDecl() (ast.Decl, error) {
	infix, err := p.consume(token.INFIX, token.INFIXL, token.INFIXR)
	if err != nil {
		return nil, err
	}
	prec, err := p.parseIdentifierToken()
	if err != nil {
		return nil, err
	}
	names, err := p.parseIdentifierList()
	if err != nil {
		return nil, err
	}
	semi, err := p.consume(token.SEMICOLON)
	if err != nil {
		return nil, err
	}
	fixity := ast.Fixity{InfixToken: infix, Precedence: prec, Names: names, TrailingSemicolon: semi}
	switch infix.Type {
	case token.INFIXL:
		return &ast.LeftFixDecl{Fixity: fixity}, nil
	case token.INFIXR:
		return &ast.RightFixDecl{Fixity: fixity}, nil
	default:
		return &ast.NonFixDecl{Fixity: fixity}, nil
	}
}

// parseRecordDecl parses: record Name Params Indices where { Elements } ;
func (p *Parser) parseRecordDecl() (*ast.RecordDecl, error) {
	record, err := p.consume(token.RECORD)
	if err != nil {
		return nil, err
	}
	name, err := p.parseIdentifierToken()
	if err != nil {
		return nil, err
	}
	params, err := p.parseTypedParameterList(surface)
	if err != nil {
		return nil, err
	}
	indices, err := p.parseTypeIndices(name, p.currentLocation())
	if err != nil {
		return nil, err
	}
	where, err := p.consume(token.WHERE)
	if err != nil {
		return nil, err
	}
	lbrace, err := p.consume(token.LBRACE)
	if err != nil {
		return nil, err
	}
	elems, err := p.parseRecordElementList()
	if err != nil {
		return nil, err
	}
	rbrace, err := p.consume(token.RBRACE)
	if err != nil {
		return nil, err
	}
	semi, err := p.consume(token.SEMICOLON)
	if err != nil {
		return nil, err
	}
	return &ast.RecordDecl{
		RecordToken:       record,
		Name:              name,
		Parameters:        params,
		Indices:           indices,
		WhereToken:        where,
		LeftBrace:         lbrace,
		Elements:          elems,
		RightBrace:        rbrace,
		TrailingSemicolon: semi,
	}, nil
}

func (p *Parser) parseRecordElementList() (*ast.DeclList, error) {
	var elems []ast.Decl
	for {
		var elem ast.Decl
		var err error
		switch p.peek(0) {
		case token.IDENT:
			elem, err = p.parseFunctionDeclOrClause()
		case token.FIELD:
			elem, err = wrapDecl(p.parseFieldDecl())
		case token.CONSTRUCTOR:
			elem, err = wrapDecl(p.parseRecordConstructorDecl())
		default:
			return ast.NewDeclList(elems...), nil
		}
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
}

// parseFieldDecl parses: field Ascription ;
func (p *Parser) parseFieldDecl() (*ast.FieldDecl, error) {
	field, err := p.consume(token.FIELD)
	if err != nil {
		return nil, err
	}
	ascription, err := p.parseAscription()
	if err != nil {
		return nil, err
	}
	semi, err := p.consume(token.SEMICOLON)
	if err != nil {
		return nil, err
	}
	return &ast.FieldDecl{FieldToken: field, Ascription: ascription, TrailingSemicolon: semi}, nil
}

// parseRecordConstructorDecl parses: constructor Name ;
func (p *Parser) parseRecordConstructorDecl() (*ast.RecordConstructorDecl, error) {
	ctor, err := p.consume(token.CONSTRUCTOR)
	if err != nil {
		return nil, err
	}
	name, err := p.parseIdentifierToken()
	if err != nil {
		return nil, err
	}
	semi, err := p.consume(token.SEMICOLON)
	if err != nil {
		return nil, err
	}
	return &ast.RecordConstructorDecl{ConstructorToken: ctor, Name: name, TrailingSemicolon: semi}, nil
}

// isStartOfTypedParameter reports whether the cursor is at "(" or "{"
// followed by an identifier. The lowered form has no braced parameters.
func (p *Parser) isStartOfTypedParameter(g grammar) bool {
	if p.peek(1) != token.IDENT {
		return false
	}
	switch p.peek(0) {
	case token.LPAREN:
		return true
	case token.LBRACE:
		return g == surface
	}
	return false
}

func (p *Parser) parseTypedParameterList(g grammar) (*ast.TypedParameterList, error) {
	var params []ast.TypedParameter
	for p.isStartOfTypedParameter(g) {
		param, err := p.parseTypedParameter(g)
		if err != nil {
			return nil, err
		}
		params = append(params, param)
	}
	return ast.NewTypedParameterList(params...), nil
}

func (p *Parser) parseTypedParameter(g grammar) (ast.TypedParameter, error) {
	switch p.peek(0) {
	case token.LPAREN:
		return wrapTypedParameter(p.parseExplicitTypedParameter())
	case token.LBRACE:
		if g == surface {
			return wrapTypedParameter(p.parseImplicitTypedParameter())
		}
	}
	return nil, p.expected("typed parameter")
}

// parseExplicitTypedParameter parses: ( Ascription )
func (p *Parser) parseExplicitTypedParameter() (*ast.ExplicitTypedParameter, error) {
	lparen, err := p.consume(token.LPAREN)
	if err != nil {
		return nil, err
	}
	ascription, err := p.parseAscription()
	if err != nil {
		return nil, err
	}
	rparen, err := p.consume(token.RPAREN)
	if err != nil {
		return nil, err
	}
	return &ast.ExplicitTypedParameter{LeftParen: lparen, Ascription: ascription, RightParen: rparen}, nil
}

// parseImplicitTypedParameter parses: { Ascription }
func (p *Parser) parseImplicitTypedParameter() (*ast.ImplicitTypedParameter, error) {
	lbrace, err := p.consume(token.LBRACE)
	if err != nil {
		return nil, err
	}
	ascription, err := p.parseAscription()
	if err != nil {
		return nil, err
	}
	rbrace, err := p.consume(token.RBRACE)
	if err != nil {
		return nil, err
	}
	return &ast.ImplicitTypedParameter{LeftBrace: lbrace, Ascription: ascription, RightBrace: rbrace}, nil
}

// parseTypeIndices parses ": Expr" after a data or record header. If the
// header ends without one, an implicit ": Type" is substituted and reported
// against the declared name.
func (p *Parser) parseTypeIndices(name *ast.Token, loc token.Location) (*ast.TypeIndices, error) {
	if p.peek(0) == token.SEMICOLON || p.peek(0) == token.WHERE {
		indices := &ast.TypeIndices{
			Colon:     p.synthesize(token.COLON),
			IndexExpr: &ast.TypeBasicExpr{TypeToken: p.synthesize(token.TYPE)},
		}
		r := p.rangeOf(name)
		p.diagnose(msgDeclRequiresIndices(name.Text), loc, func(b *diag.Builder) {
			b.Highlight(r)
			b.Note(msgAddBasicTypeIndex(), loc)
		})
		return indices, nil
	}
	colon, err := p.consume(token.COLON)
	if err != nil {
		return nil, err
	}
	expr, err := p.parseExpr(surface)
	if err != nil {
		return nil, err
	}
	return &ast.TypeIndices{Colon: colon, IndexExpr: expr}, nil
}

// parseAscription parses: Names : Expr
func (p *Parser) parseAscription() (*ast.Ascription, error) {
	names, err := p.parseIdentifierList()
	if err != nil {
		return nil, err
	}
	colon, err := p.consume(token.COLON)
	if err != nil {
		return nil, err
	}
	typ, err := p.parseExpr(surface)
	if err != nil {
		return nil, err
	}
	return &ast.Ascription{BoundNames: names, Colon: colon, Type: typ}, nil
}

// parseDataDecl parses a data declaration. With "where" it is followed by a
// constructor block; without, it is an empty data declaration.
func (p *Parser) parseDataDecl() (ast.Decl, error) {
	data, err := p.consume(token.DATA)
	if err != nil {
		return nil, err
	}
	name, err := p.parseIdentifierToken()
	if err != nil {
		return nil, err
	}
	params, err := p.parseTypedParameterList(surface)
	if err != nil {
		return nil, err
	}
	indices, err := p.parseTypeIndices(name, p.currentLocation())
	if err != nil {
		return nil, err
	}
	where := p.consumeIf(token.WHERE)
	if where == nil {
		semi, err := p.consume(token.SEMICOLON)
		if err != nil {
			return nil, err
		}
		return &ast.EmptyDataDecl{
			DataToken:         data,
			Name:              name,
			Parameters:        params,
			Indices:           indices,
			TrailingSemicolon: semi,
		}, nil
	}
	lbrace, err := p.consume(token.LBRACE)
	if err != nil {
		return nil, err
	}
	ctors, err := p.parseConstructorList()
	if err != nil {
		return nil, err
	}
	rbrace, err := p.consume(token.RBRACE)
	if err != nil {
		return nil, err
	}
	semi, err := p.consume(token.SEMICOLON)
	if err != nil {
		return nil, err
	}
	return &ast.DataDecl{
		DataToken:         data,
		Name:              name,
		Parameters:        params,
		Indices:           indices,
		WhereToken:        where,
		LeftBrace:         lbrace,
		Constructors:      ctors,
		RightBrace:        rbrace,
		TrailingSemicolon: semi,
	}, nil
}

func (p *Parser) parseConstructorList() (*ast.ConstructorList, error) {
	var ctors []*ast.ConstructorDecl
	for p.peek(0) != token.RBRACE {
		ascription, err := p.parseAscription()
		if err != nil {
			return nil, err
		}
		semi, err := p.consume(token.SEMICOLON)
		if err != nil {
			return nil, err
		}
		ctors = append(ctors, &ast.ConstructorDecl{Ascription: ascription, TrailingSemicolon: semi})
	}
	return ast.NewConstructorList(ctors...), nil
}

// parseFunctionDeclOrClause parses a run of atoms and decides by the next
// token: ":" makes a signature, "=" or "with" a clause, and anything else an
// absurd clause.
func (p *Parser) parseFunctionDeclOrClause() (ast.Decl, error) {
	exprs, locs, err := p.parseBasicExprs(surface, "list of expressions")
	if err != nil {
		return nil, err
	}
	switch p.peek(0) {
	case token.COLON:
		return wrapDecl(p.finishParsingFunctionDecl(exprs, locs))
	case token.EQUALS, token.WITH:
		return p.finishParsingFunctionClause(exprs)
	}
	semi, err := p.consume(token.SEMICOLON)
	if err != nil {
		return nil, err
	}
	return &ast.AbsurdFunctionClauseDecl{Patterns: ast.NewBasicExprList(exprs...), TrailingSemicolon: semi}, nil
}

// finishParsingFunctionDecl turns the atoms before ":" into the declared
// names. Each must be an unqualified name.
func (p *Parser) finishParsingFunctionDecl(exprs []ast.BasicExpr, locs []token.Location) (*ast.FunctionDecl, error) {
	colon, err := p.consume(token.COLON)
	if err != nil {
		return nil, err
	}
	names := make([]*ast.Token, 0, len(exprs))
	for i, expr := range exprs {
		named, ok := expr.(*ast.NamedBasicExpr)
		if !ok {
			return nil, p.diagnose(msgExpectedNameInFuncDecl(), locs[i], p.highlight(expr))
		}
		if !ast.IsSimple(named.Name) {
			return nil, p.diagnose(msgUnexpectedQualifiedName(ast.TriviaFreeText(named.Name)), locs[i], p.highlight(named.Name))
		}
		names = append(names, named.Name.At(0).Name)
	}
	typ, err := p.parseExpr(surface)
	if err != nil {
		return nil, err
	}
	semi, err := p.consume(token.SEMICOLON)
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDecl{
		Ascription:        &ast.Ascription{BoundNames: ast.NewIdentifierList(names...), Colon: colon, Type: typ},
		TrailingSemicolon: semi,
	}, nil
}

func (p *Parser) finishParsingFunctionClause(exprs []ast.BasicExpr) (ast.Decl, error) {
	patterns := ast.NewBasicExprList(exprs...)
	with := p.consumeIf(token.WITH)
	var scrutinee ast.Expr
	var withPatterns *ast.BasicExprList
	if with != nil {
		// The scrutinee is a single atom so that the pattern head that
		// follows it is not swallowed into an application.
		expr, err := p.parseBasicExpr(surface)
		if err != nil {
			return nil, err
		}
		heads, err := p.parseBasicExprList(surface)
		if err != nil {
			return nil, err
		}
		scrutinee, withPatterns = expr, heads
	}
	equals, err := p.consume(token.EQUALS)
	if err != nil {
		return nil, err
	}
	rhs, err := p.parseExpr(surface)
	if err != nil {
		return nil, err
	}
	where, err := p.maybeParseWhereClause()
	if err != nil {
		return nil, err
	}
	semi, err := p.consume(token.SEMICOLON)
	if err != nil {
		return nil, err
	}
	if with != nil {
		return &ast.WithRuleFunctionClauseDecl{
			Patterns:          patterns,
			WithToken:         with,
			WithExpr:          scrutinee,
			WithPatterns:      withPatterns,
			Equals:            equals,
			RHS:               rhs,
			Where:             where,
			TrailingSemicolon: semi,
		}, nil
	}
	return &ast.NormalFunctionClauseDecl{
		Patterns:          patterns,
		Equals:            equals,
		RHS:               rhs,
		Where:             where,
		TrailingSemicolon: semi,
	}, nil
}

// maybeParseWhereClause parses an optional: where { Decls }
func (p *Parser) maybeParseWhereClause() (*ast.FunctionWhereClauseDecl, error) {
	where := p.consumeIf(token.WHERE)
	if where == nil {
		return nil, nil
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
	return &ast.FunctionWhereClauseDecl{WhereToken: where, LeftBrace: lbrace, Decls: decls, RightBrace: rbrace}, nil
}

// parseQualifiedName parses a period-separated run of identifiers, or a
// lone underscore.
func (p *Parser) parseQualifiedName() (*ast.QualifiedName, error) {
	if p.peek(0) == token.UNDERSCORE {
		return ast.NewQualifiedName(&ast.QualifiedNamePiece{Name: p.take()}), nil
	}
	var pieces []*ast.QualifiedNamePiece
	for p.peek(0) == token.IDENT {
		name := p.take()
		period := p.consumeIf(token.PERIOD)
		pieces = append(pieces, &ast.QualifiedNamePiece{Name: name, TrailingPeriod: period})
		if period == nil {
			break
		}
	}
	if len(pieces) == 0 {
		return nil, p.unexpectedToken(token.IDENT)
	}
	return ast.NewQualifiedName(pieces...), nil
}

func (p *Parser) parseIdentifierToken() (*ast.Token, error) {
	if p.peek(0) != token.IDENT {
		return nil, p.unexpectedToken(token.IDENT)
	}
	return p.take(), nil
}

// parseIdentifierList parses a possibly empty run of names. Qualified names
// are reported and replaced by their first piece.
func (p *Parser) parseIdentifierList() (*ast.IdentifierList, error) {
	var names []*ast.QualifiedName
	var locs []token.Location
	for p.peek(0) == token.IDENT || p.peek(0) == token.UNDERSCORE {
		locs = append(locs, p.tokenLocation())
		name, err := p.parseQualifiedName()
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return ast.NewIdentifierList(p.ensureAllNamesSimple(names, locs)...), nil
}

func (p *Parser) ensureAllNamesSimple(names []*ast.QualifiedName, locs []token.Location) []*ast.Token {
	ids := make([]*ast.Token, 0, len(names))
	for i, name := range names {
		if !ast.IsSimple(name) {
			p.diagnose(msgUnexpectedQualifiedName(ast.TriviaFreeText(name)), locs[i], p.highlight(name))
		}
		ids = append(ids, name.At(0).Name)
	}
	return ids
}

func wrapDecl[T ast.Decl](decl T, err error) (ast.Decl, error) {
	if err != nil {
		return nil, err
	}
	return decl, nil
}

func wrapTypedParameter[T ast.TypedParameter](param T, err error) (ast.TypedParameter, error) {
	if err != nil {
		return nil, err
	}
	return param, nil
}
