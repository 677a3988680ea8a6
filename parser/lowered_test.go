package parser

import (
	"testing"

	"github.com/strata-lang/strata/ast"
	"github.com/strata-lang/strata/internal/tokentest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLowered(t *testing.T) {
	expr, err := ParseLowered(tokentest.Scan("forall (A : Type) -> A -> A"))
	require.NoError(t, err)
	quantified, ok := expr.(*ast.QuantifiedExpr)
	require.True(t, ok)
	assert.Equal(t, "A -> A", ast.TriviaFreeText(quantified.Output))
}

func TestParseLoweredError(t *testing.T) {
	expr, err := ParseLowered(tokentest.Scan("let { } in x"))
	assert.Nil(t, expr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected expression")
}

func TestLoweredRunsEndAtLineBreaks(t *testing.T) {
	p := New(tokentest.Scan("f x\n  y z\nw"))

	first, err := p.ParseLoweredExpr()
	require.NoError(t, err)
	assert.Equal(t, "f x", ast.TriviaFreeText(first))

	second, err := p.ParseLoweredExpr()
	require.NoError(t, err)
	assert.Equal(t, "y z", ast.TriviaFreeText(second))

	third, err := p.ParseLoweredExpr()
	require.NoError(t, err)
	assert.IsType(t, &ast.NamedBasicExpr{}, third)
	assert.True(t, p.Done())
}

func TestLoweredArrowAfterLineBreak(t *testing.T) {
	p := New(tokentest.Scan("A\n-> B"))
	expr, err := p.ParseLoweredExpr()
	require.NoError(t, err)
	assert.Equal(t, "A", ast.TriviaFreeText(expr))
	assert.False(t, p.Done())

	// The surface grammar continues across the line break.
	p = New(tokentest.Scan("A\n-> B"))
	expr, err = p.parseExpr(surface)
	require.NoError(t, err)
	assert.Equal(t, "A\n-> B", ast.TriviaFreeText(expr))
}

func TestLoweredLambdaBody(t *testing.T) {
	p := New(tokentest.Scan("\\x -> f x\ng"))
	expr, err := p.ParseLoweredExpr()
	require.NoError(t, err)
	lambda, ok := expr.(*ast.LambdaExpr)
	require.True(t, ok)
	assert.Equal(t, "f x", ast.TriviaFreeText(lambda.Body))

	rest, err := p.ParseLoweredExpr()
	require.NoError(t, err)
	assert.Equal(t, "g", ast.TriviaFreeText(rest))
}

func TestLoweredParenthesesUseSurfaceGrammar(t *testing.T) {
	p := New(tokentest.Scan("(f\n  x)"))
	expr, err := p.ParseLoweredExpr()
	require.NoError(t, err)
	paren, ok := expr.(*ast.ParenthesizedExpr)
	require.True(t, ok)
	assert.IsType(t, &ast.ApplicationExpr{}, paren.Expr)

	p = New(tokentest.Scan("(B : let { } in Type) -> B"))
	expr, err = p.ParseLoweredExpr()
	require.NoError(t, err)
	assert.IsType(t, &ast.ApplicationExpr{}, expr)
}

func TestLoweredRejectsBracedParameters(t *testing.T) {
	p := New(tokentest.Scan("{A : Type} -> A"))
	_, err := p.ParseLoweredExpr()
	require.Error(t, err)
	assert.Equal(t, "expected expression", p.Engine().Diagnostics()[0].Message.Text)

	// Braced binders are not typed parameters in the lowered form.
	p = New(tokentest.Scan("forall {A : Type} -> A"))
	_, err = p.ParseLoweredExpr()
	require.Error(t, err)
	assert.Equal(t, "unexpected token '{' (expected '->')", p.Engine().Diagnostics()[0].Message.Text)
}

func TestParseLoweredBasicExpr(t *testing.T) {
	p := New(tokentest.Scan("Type x"))
	expr, err := p.ParseLoweredBasicExpr()
	require.NoError(t, err)
	assert.IsType(t, &ast.TypeBasicExpr{}, expr)

	expr, err = p.ParseLoweredBasicExpr()
	require.NoError(t, err)
	assert.IsType(t, &ast.NamedBasicExpr{}, expr)
	assert.True(t, p.Done())

	p = New(tokentest.Scan("{A : Type}"))
	_, err = p.ParseLoweredBasicExpr()
	require.Error(t, err)
}
