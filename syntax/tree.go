package syntax

import (
	"fmt"
	"reflect"

	"github.com/strata-lang/strata/ast"
	"github.com/strata-lang/strata/token"
)

// TreeValidator checks the shape of a tree: every child is present, tokens
// appear in source order, and lists have the shapes the grammar produces.
type TreeValidator struct {
	// Converter maps byte offsets to locations in errors. Optional.
	Converter token.Converter

	// Contiguous requires each token to start where the previous one ended.
	// This holds for trees from parses that skipped no input.
	Contiguous bool
}

// Validate implements the Validator interface.
func (v *TreeValidator) Validate(root ast.Node) []ValidationError {
	c := &checker{v: v}
	if isNil(root) {
		c.report(root, 0, "tree is empty")
		return c.errors
	}
	c.visit(root)
	return c.errors
}

type checker struct {
	v      *TreeValidator
	errors []ValidationError

	// end is the offset just past the last token visited
	end  int
	seen bool
}

func (c *checker) report(node ast.Node, offset int, format string, args ...any) {
	loc := token.Location{Offset: offset}
	if c.v.Converter != nil {
		loc = c.v.Converter.Location(offset)
	}
	c.errors = append(c.errors, ValidationError{
		Message:  fmt.Sprintf(format, args...),
		Node:     node,
		Location: loc,
	})
}

func (c *checker) visit(node ast.Node) {
	c.check(node)
	for i, child := range node.Children() {
		if isNil(child) {
			c.report(node, c.end, "%s is missing child %d", node.Kind(), i)
			continue
		}
		c.visit(child)
	}
}

func (c *checker) check(node ast.Node) {
	switch n := node.(type) {
	case *ast.Token:
		c.checkToken(n)
	case *ast.IdentifierList:
		for _, name := range n.Elems() {
			if name != nil && name.Type != token.IDENT && name.Type != token.UNDERSCORE {
				c.report(name, name.TextStart(), "identifier list contains %s", name.Type.Text())
			}
		}
	case *ast.QualifiedName:
		if n.Len() == 0 {
			c.report(n, c.end, "qualified name has no pieces")
		}
		for i, piece := range n.Elems() {
			if piece != nil && i < n.Len()-1 && piece.TrailingPeriod == nil {
				c.report(piece, c.end, "qualified name piece %d is missing its period", i)
			}
		}
	case *ast.ApplicationExpr:
		if n.Exprs != nil && n.Exprs.Len() < 2 {
			c.report(n, c.end, "application has %d expressions", n.Exprs.Len())
		}
	case *ast.LambdaExpr:
		if n.Bindings != nil && n.Bindings.Len() == 0 {
			c.report(n, c.end, "lambda has no bindings")
		}
	case *ast.TypedParameterGroupExpr:
		if n.Parameters != nil && n.Parameters.Len() == 0 {
			c.report(n, c.end, "parameter group is empty")
		}
	}
}

func (c *checker) checkToken(tok *ast.Token) {
	if !tok.Type.Valid() {
		c.report(tok, tok.Offset, "invalid token type %q", string(tok.Type))
	}
	if tok.IsImplicit() && (tok.LeadingTrivia != "" || tok.TrailingTrivia != "") {
		c.report(tok, tok.Offset, "implicit %s carries trivia", tok.Type.Text())
	}
	if c.seen {
		switch {
		case tok.Offset < c.end:
			c.report(tok, tok.Offset, "token %q at offset %d overlaps the previous token ending at %d", tok.Text, tok.Offset, c.end)
		case c.v.Contiguous && tok.Offset > c.end:
			c.report(tok, tok.Offset, "gap of %d bytes before token %q", tok.Offset-c.end, tok.Text)
		}
	}
	c.seen = true
	if end := tok.Offset + tok.ByteSize(); end > c.end {
		c.end = end
	}
}

// isNil reports whether n is nil or a typed nil pointer.
func isNil(n ast.Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
