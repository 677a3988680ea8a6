package ast

// LambdaExpr is an anonymous function: \ bindings -> body
type LambdaExpr struct {
	Slash    *Token
	Bindings *BindingList
	Arrow    *Token
	Body     Expr
}

func (x *LambdaExpr) exprNode() {}
func (x *LambdaExpr) Kind() Kind { return KindLambdaExpr }
func (x *LambdaExpr) Children() []Node {
	return []Node{x.Slash, x.Bindings, x.Arrow, x.Body}
}

// QuantifiedExpr is a dependent function type: forall (x : A) -> B
type QuantifiedExpr struct {
	ForallToken *Token
	Parameters  *TypedParameterList
	Arrow       *Token
	Output      Expr
}

func (x *QuantifiedExpr) exprNode() {}
func (x *QuantifiedExpr) Kind() Kind { return KindQuantifiedExpr }
func (x *QuantifiedExpr) Children() []Node {
	return []Node{x.ForallToken, x.Parameters, x.Arrow, x.Output}
}

// LetExpr is a local declaration block: let { decls } in e
type LetExpr struct {
	LetToken   *Token
	LeftBrace  *Token
	Decls      *DeclList
	RightBrace *Token
	InToken    *Token
	Output     Expr
}

func (x *LetExpr) exprNode() {}
func (x *LetExpr) Kind() Kind { return KindLetExpr }
func (x *LetExpr) Children() []Node {
	return []Node{x.LetToken, x.LeftBrace, x.Decls, x.RightBrace, x.InToken, x.Output}
}

// ApplicationExpr is a juxtaposition of two or more atoms. Arrows inside an
// atom run appear as NamedBasicExprs.
type ApplicationExpr struct {
	Exprs *BasicExprList
}

func (x *ApplicationExpr) exprNode() {}
func (x *ApplicationExpr) Kind() Kind { return KindApplicationExpr }
func (x *ApplicationExpr) Children() []Node {
	return []Node{x.Exprs}
}

// NamedBinding binds a name in a lambda.
type NamedBinding struct {
	Name *QualifiedName
}

func (x *NamedBinding) bindingNode()     {}
func (x *NamedBinding) Kind() Kind       { return KindNamedBinding }
func (x *NamedBinding) Children() []Node { return []Node{x.Name} }

// TypedBinding binds names with a type ascription in a lambda.
type TypedBinding struct {
	Parameter TypedParameter
}

func (x *TypedBinding) bindingNode()     {}
func (x *TypedBinding) Kind() Kind       { return KindTypedBinding }
func (x *TypedBinding) Children() []Node { return []Node{x.Parameter} }

// AnonymousBinding is an ignored lambda binder: _
type AnonymousBinding struct {
	Underscore *Token
}

func (x *AnonymousBinding) bindingNode()     {}
func (x *AnonymousBinding) Kind() Kind       { return KindAnonymousBinding }
func (x *AnonymousBinding) Children() []Node { return []Node{x.Underscore} }

// NamedBasicExpr is a reference to a possibly qualified name.
type NamedBasicExpr struct {
	Name *QualifiedName
}

func (x *NamedBasicExpr) exprNode()        {}
func (x *NamedBasicExpr) basicExprNode()   {}
func (x *NamedBasicExpr) Kind() Kind       { return KindNamedBasicExpr }
func (x *NamedBasicExpr) Children() []Node { return []Node{x.Name} }

// UnderscoreExpr is a hole: _
type UnderscoreExpr struct {
	Underscore *Token
}

func (x *UnderscoreExpr) exprNode()        {}
func (x *UnderscoreExpr) basicExprNode()   {}
func (x *UnderscoreExpr) Kind() Kind       { return KindUnderscoreExpr }
func (x *UnderscoreExpr) Children() []Node { return []Node{x.Underscore} }

// AbsurdExpr is the absurd pattern: ()
type AbsurdExpr struct {
	LeftParen  *Token
	RightParen *Token
}

func (x *AbsurdExpr) exprNode()        {}
func (x *AbsurdExpr) basicExprNode()   {}
func (x *AbsurdExpr) Kind() Kind       { return KindAbsurdExpr }
func (x *AbsurdExpr) Children() []Node { return []Node{x.LeftParen, x.RightParen} }

// TypeBasicExpr is the universe literal: Type
type TypeBasicExpr struct {
	TypeToken *Token
}

func (x *TypeBasicExpr) exprNode()        {}
func (x *TypeBasicExpr) basicExprNode()   {}
func (x *TypeBasicExpr) Kind() Kind       { return KindTypeBasicExpr }
func (x *TypeBasicExpr) Children() []Node { return []Node{x.TypeToken} }

// ParenthesizedExpr is an expression in parentheses.
type ParenthesizedExpr struct {
	LeftParen  *Token
	Expr       Expr
	RightParen *Token
}

func (x *ParenthesizedExpr) exprNode()      {}
func (x *ParenthesizedExpr) basicExprNode() {}
func (x *ParenthesizedExpr) Kind() Kind     { return KindParenthesizedExpr }
func (x *ParenthesizedExpr) Children() []Node {
	return []Node{x.LeftParen, x.Expr, x.RightParen}
}

// TypedParameterGroupExpr is a run of typed parameters in expression
// position, as in (x : A) {y : B} -> C.
type TypedParameterGroupExpr struct {
	Parameters *TypedParameterList
}

func (x *TypedParameterGroupExpr) exprNode()        {}
func (x *TypedParameterGroupExpr) basicExprNode()   {}
func (x *TypedParameterGroupExpr) Kind() Kind       { return KindTypedParameterGroupExpr }
func (x *TypedParameterGroupExpr) Children() []Node { return []Node{x.Parameters} }

// RecordExpr constructs a record: record R { x = e; }
type RecordExpr struct {
	RecordToken *Token
	Parameter   BasicExpr // optional
	LeftBrace   *Token
	Fields      *RecordFieldAssignmentList
	RightBrace  *Token
}

func (x *RecordExpr) exprNode()      {}
func (x *RecordExpr) basicExprNode() {}
func (x *RecordExpr) Kind() Kind     { return KindRecordExpr }
func (x *RecordExpr) Children() []Node {
	nodes := []Node{x.RecordToken}
	if x.Parameter != nil {
		nodes = append(nodes, x.Parameter)
	}
	return append(nodes, x.LeftBrace, x.Fields, x.RightBrace)
}

// RecordFieldAssignment is one field of a record expression: x = e;
type RecordFieldAssignment struct {
	Name              *Token
	Equals            *Token
	Init              Expr
	TrailingSemicolon *Token
}

func (x *RecordFieldAssignment) Kind() Kind { return KindRecordFieldAssignment }
func (x *RecordFieldAssignment) Children() []Node {
	return []Node{x.Name, x.Equals, x.Init, x.TrailingSemicolon}
}
