package parser

import (
	"testing"

	"github.com/strata-lang/strata/ast"
	"github.com/strata-lang/strata/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decls(t *testing.T, src string) []ast.Decl {
	t.Helper()
	return parseValid(t, inModule(src)).Decls.Elems()
}

func boundNames(a *ast.Ascription) []string {
	var names []string
	for _, name := range a.BoundNames.Elems() {
		names = append(names, name.Text)
	}
	return names
}

func TestImportDecls(t *testing.T) {
	list := decls(t, "  open import Data.Nat;\n  import Data.List;")
	require.Len(t, list, 2)

	open, ok := list[0].(*ast.OpenImportDecl)
	require.True(t, ok)
	assert.Equal(t, "Data.Nat", ast.TriviaFreeText(open.Name))
	assert.Equal(t, 2, open.Name.Len())

	imp, ok := list[1].(*ast.ImportDecl)
	require.True(t, ok)
	assert.Equal(t, "Data.List", ast.TriviaFreeText(imp.Name))
}

func TestFixityDecls(t *testing.T) {
	list := decls(t, "  infixl 6 + -;\n  infixr 5 ::;\n  infix 4 ==;")
	require.Len(t, list, 3)
	assert.IsType(t, &ast.LeftFixDecl{}, list[0])
	assert.IsType(t, &ast.RightFixDecl{}, list[1])
	assert.IsType(t, &ast.NonFixDecl{}, list[2])

	fixity := list[0].(ast.FixityDecl).Parts()
	assert.Equal(t, "6", fixity.Precedence.Text)
	require.Equal(t, 2, fixity.Names.Len())
	assert.Equal(t, "+", fixity.Names.At(0).Text)
	assert.Equal(t, "-", fixity.Names.At(1).Text)
}

func TestDataDecl(t *testing.T) {
	list := decls(t, "  data Vec (A : Type) : Nat -> Type where {\n    nil : Vec A zero;\n    cons : A -> Vec A n -> Vec A (suc n);\n  };")
	require.Len(t, list, 1)
	data, ok := list[0].(*ast.DataDecl)
	require.True(t, ok)

	assert.Equal(t, "Vec", data.Name.Text)
	assert.Equal(t, 1, data.Parameters.Len())
	assert.False(t, data.Indices.Colon.IsImplicit())
	assert.IsType(t, &ast.ApplicationExpr{}, data.Indices.IndexExpr)
	require.Equal(t, 2, data.Constructors.Len())
	assert.Equal(t, []string{"nil"}, boundNames(data.Constructors.At(0).Ascription))
	assert.Equal(t, []string{"cons"}, boundNames(data.Constructors.At(1).Ascription))
}

func TestDataDeclSharedConstructorSignature(t *testing.T) {
	list := decls(t, "  data Bool : Type where {\n    true false : Bool;\n  };")
	data := list[0].(*ast.DataDecl)
	require.Equal(t, 1, data.Constructors.Len())
	assert.Equal(t, []string{"true", "false"}, boundNames(data.Constructors.At(0).Ascription))
}

func TestEmptyDataDecl(t *testing.T) {
	list := decls(t, "  data Void : Type;")
	require.Len(t, list, 1)
	empty, ok := list[0].(*ast.EmptyDataDecl)
	require.True(t, ok)
	assert.Equal(t, "Void", empty.Name.Text)
	assert.Equal(t, "Type", ast.TriviaFreeText(empty.Indices.IndexExpr))
}

func TestDataDeclMissingIndices(t *testing.T) {
	module, diags := parse(t, inModule("  data Nat where {\n    zero : Nat;\n  };"))
	require.NotNil(t, module)
	require.Len(t, diags, 1)

	d := diags[0]
	assert.Equal(t, diag.E1007, d.Message.Code)
	assert.Equal(t, "declaration of 'Nat' is missing type ascription", d.Message.Text)
	assert.Equal(t, 2, d.Location.Line)
	assert.Equal(t, 12, d.Location.Column)
	require.Len(t, d.Highlights, 1)
	assert.Equal(t, 8, d.Highlights[0].Start.Column)
	assert.Equal(t, 11, d.Highlights[0].End.Column)
	require.Len(t, d.Notes, 1)
	assert.Equal(t, "add a type ascription; e.g. ': Type'", d.Notes[0].Message.Text)

	data, ok := module.Decls.At(0).(*ast.DataDecl)
	require.True(t, ok)
	assert.True(t, data.Indices.Colon.IsImplicit())
	index, ok := data.Indices.IndexExpr.(*ast.TypeBasicExpr)
	require.True(t, ok)
	assert.True(t, index.TypeToken.IsImplicit())
	assert.Equal(t, 1, data.Constructors.Len())
}

func TestEmptyDataDeclWithWhere(t *testing.T) {
	module, diags := parse(t, inModule("  data Void : Type where {\n  };"))
	require.NotNil(t, module)
	require.Len(t, diags, 1)
	assert.Equal(t, diag.E1008, diags[0].Message.Code)
	require.Len(t, diags[0].Notes, 1)
	assert.Equal(t, "remove 'where' to make an empty data declaration", diags[0].Notes[0].Message.Text)
	require.Len(t, diags[0].Notes[0].Highlights, 1)
	assert.Equal(t, 20, diags[0].Notes[0].Highlights[0].Start.Column)

	data, ok := module.Decls.At(0).(*ast.DataDecl)
	require.True(t, ok)
	assert.Equal(t, 0, data.Constructors.Len())
}

func TestConstructorOutsideData(t *testing.T) {
	module, diags := parse(t, inModule("  data Bool : Type where {\n  };\n  true : Bool;"))
	require.NotNil(t, module)
	assert.Equal(t, []diag.Code{diag.E1008, diag.E1010}, codes(diags))
	require.Len(t, diags[1].Notes, 1)
	assert.Equal(t, "indent this declaration to make it a constructor", diags[1].Notes[0].Message.Text)
	assert.Equal(t, 4, diags[1].Location.Line)
	assert.Equal(t, 3, diags[1].Location.Column)
	assert.Equal(t, []string{"DataDecl", "FunctionDecl"}, declKinds(module.Decls))
}

func TestRecordDecl(t *testing.T) {
	list := decls(t, "  record Pair (A B : Type) : Type where {\n    constructor mkPair;\n    field fst : A;\n    field snd : B;\n    swap : Pair B A;\n    swap = mkPair snd fst;\n  };")
	require.Len(t, list, 1)
	record, ok := list[0].(*ast.RecordDecl)
	require.True(t, ok)

	assert.Equal(t, "Pair", record.Name.Text)
	require.Equal(t, 1, record.Parameters.Len())
	param := record.Parameters.At(0).(*ast.ExplicitTypedParameter)
	assert.Equal(t, []string{"A", "B"}, boundNames(param.Ascription))
	assert.Equal(t, []string{
		"RecordConstructorDecl",
		"FieldDecl",
		"FieldDecl",
		"FunctionDecl",
		"NormalFunctionClauseDecl",
	}, declKinds(record.Elements))
	assert.Equal(t, "mkPair", record.Elements.At(0).(*ast.RecordConstructorDecl).Name.Text)
	assert.Equal(t, []string{"fst"}, boundNames(record.Elements.At(1).(*ast.FieldDecl).Ascription))
}

func TestRecordDeclMissingIndices(t *testing.T) {
	module, diags := parse(t, inModule("  record R where {\n  };"))
	require.NotNil(t, module)
	assert.Equal(t, []diag.Code{diag.E1007}, codes(diags))
	record := module.Decls.At(0).(*ast.RecordDecl)
	assert.Equal(t, 0, record.Elements.Len())
}

func TestFunctionDecl(t *testing.T) {
	list := decls(t, "  f g : Nat -> Nat;")
	fn, ok := list[0].(*ast.FunctionDecl)
	require.True(t, ok)
	assert.Equal(t, []string{"f", "g"}, boundNames(fn.Ascription))
	assert.Equal(t, "Nat -> Nat", ast.TriviaFreeText(fn.Ascription.Type))
}

func TestFunctionDeclQualifiedName(t *testing.T) {
	module, diags := parse(t, inModule("  A.f : Nat;\n  g : Nat;"))
	require.NotNil(t, module)
	require.Len(t, diags, 1)
	assert.Equal(t, diag.E1005, diags[0].Message.Code)
	assert.Equal(t, "qualified name 'A.f' is not allowed in this position", diags[0].Message.Text)
	assert.Equal(t, 3, diags[0].Location.Column)
	assert.Equal(t, []string{"FunctionDecl"}, declKinds(module.Decls))
}

func TestFunctionDeclTrailingPeriod(t *testing.T) {
	_, diags := parse(t, inModule("  A. : Nat;"))
	require.Len(t, diags, 1)
	assert.Equal(t, "qualified name 'A.' is not allowed in this position", diags[0].Message.Text)
}

func TestFunctionDeclNonName(t *testing.T) {
	_, diags := parse(t, inModule("  f (x) : Nat;"))
	require.Len(t, diags, 1)
	assert.Equal(t, diag.E1006, diags[0].Message.Code)
	assert.Equal(t, "expression may not be used as identifier in function name", diags[0].Message.Text)
	assert.Equal(t, 5, diags[0].Location.Column)
}

func TestQualifiedNameInIdentifierList(t *testing.T) {
	module, diags := parse(t, inModule("  data D : Type where {\n    A.b : D;\n  };"))
	require.NotNil(t, module)
	require.Len(t, diags, 1)
	assert.Equal(t, "qualified name 'A.b' is not allowed in this position", diags[0].Message.Text)

	data := module.Decls.At(0).(*ast.DataDecl)
	require.Equal(t, 1, data.Constructors.Len())
	assert.Equal(t, []string{"A"}, boundNames(data.Constructors.At(0).Ascription))
}

func TestFunctionClauses(t *testing.T) {
	t.Run("normal", func(t *testing.T) {
		clause, ok := decls(t, "  id x = x;")[0].(*ast.NormalFunctionClauseDecl)
		require.True(t, ok)
		assert.Equal(t, 2, clause.Patterns.Len())
		assert.Equal(t, "x", ast.TriviaFreeText(clause.RHS))
		assert.Nil(t, clause.Where)
	})
	t.Run("where", func(t *testing.T) {
		clause, ok := decls(t, "  f x = g x where {\n    g : Nat -> Nat;\n    g y = y;\n  };")[0].(*ast.NormalFunctionClauseDecl)
		require.True(t, ok)
		require.NotNil(t, clause.Where)
		assert.Equal(t, []string{"FunctionDecl", "NormalFunctionClauseDecl"}, declKinds(clause.Where.Decls))
		assert.Equal(t, "g x", ast.TriviaFreeText(clause.RHS))
	})
	t.Run("absurd", func(t *testing.T) {
		clause, ok := decls(t, "  f ();")[0].(*ast.AbsurdFunctionClauseDecl)
		require.True(t, ok)
		require.Equal(t, 2, clause.Patterns.Len())
		assert.IsType(t, &ast.AbsurdExpr{}, clause.Patterns.At(1))
	})
	t.Run("with", func(t *testing.T) {
		clause, ok := decls(t, "  f x with x true = true;")[0].(*ast.WithRuleFunctionClauseDecl)
		require.True(t, ok)
		assert.Equal(t, "x", ast.TriviaFreeText(clause.WithExpr))
		assert.Equal(t, "true", ast.TriviaFreeText(clause.WithPatterns))
		assert.Equal(t, "true", ast.TriviaFreeText(clause.RHS))
	})
	t.Run("with where", func(t *testing.T) {
		clause, ok := decls(t, "  f x with (g x) y = y where {\n    g = id;\n  };")[0].(*ast.WithRuleFunctionClauseDecl)
		require.True(t, ok)
		assert.IsType(t, &ast.ParenthesizedExpr{}, clause.WithExpr)
		require.NotNil(t, clause.Where)
		assert.Equal(t, 1, clause.Where.Decls.Len())
	})
}

func TestDeclRecovery(t *testing.T) {
	module, diags := parse(t, inModule("  f : = ;\n  g : Type;\n  ) ;\n  h : Type;"))
	require.NotNil(t, module)
	assert.Equal(t, []diag.Code{diag.E1003, diag.E1003}, codes(diags))
	assert.Equal(t, "expected expression", diags[0].Message.Text)
	assert.Equal(t, "expected declaration", diags[1].Message.Text)

	var names []string
	for _, decl := range module.Decls.Elems() {
		names = append(names, boundNames(decl.(*ast.FunctionDecl).Ascription)...)
	}
	assert.Equal(t, []string{"g", "h"}, names)
}

func TestDeclRecoveryAtEOF(t *testing.T) {
	module, diags := parse(t, inModule("  f : ("))
	assert.Nil(t, module)
	assert.Equal(t, []diag.Code{diag.E1003, diag.E1002}, codes(diags))
}

func TestNestedDeclRecovery(t *testing.T) {
	module, diags := parse(t, inModule("  f x = y where {\n    y : ) ;\n    y = x;\n  };\n  g : Type;"))
	require.NotNil(t, module)
	require.Len(t, diags, 1)
	clause := module.Decls.At(0).(*ast.NormalFunctionClauseDecl)
	require.NotNil(t, clause.Where)
	assert.Equal(t, []string{"NormalFunctionClauseDecl"}, declKinds(clause.Where.Decls))
	assert.Equal(t, 2, module.Decls.Len())
}
