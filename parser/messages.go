package parser

import (
	"fmt"

	"github.com/strata-lang/strata/diag"
	"github.com/strata-lang/strata/token"
)

func msgUnexpectedToken(tok token.Token, expected token.Type) diag.Message {
	var text string
	switch {
	case tok.IsImplicit() && tok.Type == token.LBRACE:
		text = "unexpected opening scope"
	case tok.IsImplicit() && tok.Type == token.RBRACE:
		text = "unexpected end of scope"
	case tok.IsImplicit() && tok.Type == token.SEMICOLON:
		text = "unexpected end of line"
	default:
		text = fmt.Sprintf("unexpected token '%s'", tok.Describe())
	}
	if expected != "" {
		text += fmt.Sprintf(" (expected '%s')", expected.Text())
	}
	return diag.Errorf(diag.E1001, "%s", text)
}

func msgUnexpectedEOF() diag.Message {
	return diag.Errorf(diag.E1002, "unexpected end-of-file reached")
}

func msgExpected(name string) diag.Message {
	return diag.Errorf(diag.E1003, "expected %s", name)
}

func msgExpectedTopLevelModule() diag.Message {
	return diag.Errorf(diag.E1004, "missing required top level module")
}

func msgUnexpectedQualifiedName(name string) diag.Message {
	return diag.Errorf(diag.E1005, "qualified name '%s' is not allowed in this position", name)
}

func msgExpectedNameInFuncDecl() diag.Message {
	return diag.Errorf(diag.E1006, "expression may not be used as identifier in function name")
}

func msgDeclRequiresIndices(name string) diag.Message {
	return diag.Errorf(diag.E1007, "declaration of '%s' is missing type ascription", name)
}

func msgAddBasicTypeIndex() diag.Message {
	return diag.NewNote("add a type ascription; e.g. ': Type'")
}

func msgEmptyDataDeclWithWhere() diag.Message {
	return diag.Errorf(diag.E1008, "data declaration with no constructors cannot have a 'where' clause")
}

func msgRemoveWhereClause() diag.Message {
	return diag.NewNote("remove 'where' to make an empty data declaration")
}

func msgMaxDepth(depth int) diag.Message {
	return diag.Errorf(diag.E1009, "maximum nesting depth of %d exceeded", depth)
}

func msgUnexpectedConstructor() diag.Message {
	return diag.Errorf(diag.E1010, "data constructors may only appear within the scope of a data declaration")
}

func msgIndentToMakeConstructor() diag.Message {
	return diag.NewNote("indent this declaration to make it a constructor")
}
