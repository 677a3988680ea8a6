package ast

// Kind identifies the syntactic category of a node.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindToken

	// Lists
	KindIdentifierList
	KindQualifiedName
	KindDeclList
	KindTypedParameterList
	KindConstructorList
	KindRecordFieldAssignmentList
	KindBindingList
	KindBasicExprList

	KindQualifiedNamePiece

	// Declarations
	KindModuleDecl
	KindOpenImportDecl
	KindImportDecl
	KindDataDecl
	KindEmptyDataDecl
	KindTypeIndices
	KindAscription
	KindExplicitTypedParameter
	KindImplicitTypedParameter
	KindConstructorDecl
	KindRecordDecl
	KindFieldDecl
	KindRecordConstructorDecl
	KindFunctionDecl
	KindWithRuleFunctionClauseDecl
	KindNormalFunctionClauseDecl
	KindAbsurdFunctionClauseDecl
	KindFunctionWhereClauseDecl
	KindNonFixDecl
	KindLeftFixDecl
	KindRightFixDecl

	// Expressions
	KindLambdaExpr
	KindQuantifiedExpr
	KindLetExpr
	KindApplicationExpr
	KindNamedBinding
	KindTypedBinding
	KindAnonymousBinding
	KindNamedBasicExpr
	KindUnderscoreExpr
	KindAbsurdExpr
	KindTypeBasicExpr
	KindParenthesizedExpr
	KindTypedParameterGroupExpr
	KindRecordExpr
	KindRecordFieldAssignment
)

var kindNames = [...]string{
	KindUnknown:                    "Unknown",
	KindToken:                      "Token",
	KindIdentifierList:             "IdentifierList",
	KindQualifiedName:              "QualifiedName",
	KindDeclList:                   "DeclList",
	KindTypedParameterList:         "TypedParameterList",
	KindConstructorList:            "ConstructorList",
	KindRecordFieldAssignmentList:  "RecordFieldAssignmentList",
	KindBindingList:                "BindingList",
	KindBasicExprList:              "BasicExprList",
	KindQualifiedNamePiece:         "QualifiedNamePiece",
	KindModuleDecl:                 "ModuleDecl",
	KindOpenImportDecl:             "OpenImportDecl",
	KindImportDecl:                 "ImportDecl",
	KindDataDecl:                   "DataDecl",
	KindEmptyDataDecl:              "EmptyDataDecl",
	KindTypeIndices:                "TypeIndices",
	KindAscription:                 "Ascription",
	KindExplicitTypedParameter:     "ExplicitTypedParameter",
	KindImplicitTypedParameter:     "ImplicitTypedParameter",
	KindConstructorDecl:            "ConstructorDecl",
	KindRecordDecl:                 "RecordDecl",
	KindFieldDecl:                  "FieldDecl",
	KindRecordConstructorDecl:      "RecordConstructorDecl",
	KindFunctionDecl:               "FunctionDecl",
	KindWithRuleFunctionClauseDecl: "WithRuleFunctionClauseDecl",
	KindNormalFunctionClauseDecl:   "NormalFunctionClauseDecl",
	KindAbsurdFunctionClauseDecl:   "AbsurdFunctionClauseDecl",
	KindFunctionWhereClauseDecl:    "FunctionWhereClauseDecl",
	KindNonFixDecl:                 "NonFixDecl",
	KindLeftFixDecl:                "LeftFixDecl",
	KindRightFixDecl:               "RightFixDecl",
	KindLambdaExpr:                 "LambdaExpr",
	KindQuantifiedExpr:             "QuantifiedExpr",
	KindLetExpr:                    "LetExpr",
	KindApplicationExpr:            "ApplicationExpr",
	KindNamedBinding:               "NamedBinding",
	KindTypedBinding:               "TypedBinding",
	KindAnonymousBinding:           "AnonymousBinding",
	KindNamedBasicExpr:             "NamedBasicExpr",
	KindUnderscoreExpr:             "UnderscoreExpr",
	KindAbsurdExpr:                 "AbsurdExpr",
	KindTypeBasicExpr:              "TypeBasicExpr",
	KindParenthesizedExpr:          "ParenthesizedExpr",
	KindTypedParameterGroupExpr:    "TypedParameterGroupExpr",
	KindRecordExpr:                 "RecordExpr",
	KindRecordFieldAssignment:      "RecordFieldAssignment",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return kindNames[KindUnknown]
}

// IsList reports whether nodes of this kind are list nodes.
func (k Kind) IsList() bool {
	return k >= KindIdentifierList && k <= KindBasicExprList
}
