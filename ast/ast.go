// Package ast defines the concrete syntax tree produced by the parser.
//
// The tree is lossless: every token consumed by the parser, including its
// trivia, is a leaf of the tree, so the source text of a node can be
// reconstructed exactly. Nodes are immutable once the parser returns them.
package ast

import "github.com/strata-lang/strata/token"

// Node represents a portion of the syntax tree.
type Node interface {
	// Kind returns the syntactic category of the node.
	Kind() Kind

	// Children returns the node's children in source order. Absent optional
	// children are omitted.
	Children() []Node
}

// Decl represents a declaration that may appear in a declaration list.
type Decl interface {
	Node
	declNode()
}

// FunctionClauseDecl is a clause of a function definition.
type FunctionClauseDecl interface {
	Decl
	functionClauseNode()
}

// FixityDecl is an infix, infixl or infixr declaration.
type FixityDecl interface {
	Decl
	Parts() *Fixity
}

// Expr represents an expression.
type Expr interface {
	Node
	exprNode()
}

// BasicExpr is an expression atom: one that can appear in an application
// without parentheses.
type BasicExpr interface {
	Expr
	basicExprNode()
}

// TypedParameter is an explicit (parenthesized) or implicit (braced)
// parameter ascription.
type TypedParameter interface {
	Node
	typedParameterNode()
}

// Binding is a binder of a lambda expression.
type Binding interface {
	Node
	bindingNode()
}

// Token is a leaf of the syntax tree.
type Token struct {
	token.Token

	// Offset is the absolute byte offset of the start of the token's leading
	// trivia. Implicit tokens sit at the offset where they were inserted.
	Offset int
}

func (t *Token) Kind() Kind       { return KindToken }
func (t *Token) Children() []Node { return nil }

// TextStart returns the offset of the first byte of the token text.
func (t *Token) TextStart() int {
	if t.IsImplicit() {
		return t.Offset
	}
	return t.Offset + len(t.LeadingTrivia)
}

// TextEnd returns the offset immediately after the token text.
func (t *Token) TextEnd() int {
	if t.IsImplicit() {
		return t.Offset
	}
	return t.TextStart() + len(t.Text)
}

// List is an ordered, gap-free sequence of nodes of the same category.
type List[T Node] struct {
	kind  Kind
	elems []T
}

// NewList returns a list node of the given kind.
func NewList[T Node](kind Kind, elems ...T) *List[T] {
	return &List[T]{kind: kind, elems: elems}
}

func (l *List[T]) Kind() Kind { return l.kind }

func (l *List[T]) Children() []Node {
	nodes := make([]Node, len(l.elems))
	for i, e := range l.elems {
		nodes[i] = e
	}
	return nodes
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return len(l.elems) }

// At returns the i-th element.
func (l *List[T]) At(i int) T { return l.elems[i] }

// Elems returns a copy of the elements.
func (l *List[T]) Elems() []T {
	return append([]T(nil), l.elems...)
}

// IdentifierList is a list of simple name tokens.
type IdentifierList = List[*Token]

// QualifiedName is a non-empty list of name pieces separated by periods.
type QualifiedName = List[*QualifiedNamePiece]

type (
	DeclList                  = List[Decl]
	TypedParameterList        = List[TypedParameter]
	ConstructorList           = List[*ConstructorDecl]
	RecordFieldAssignmentList = List[*RecordFieldAssignment]
	BindingList               = List[Binding]
	BasicExprList             = List[BasicExpr]
)

func NewIdentifierList(names ...*Token) *IdentifierList {
	return NewList(KindIdentifierList, names...)
}

func NewQualifiedName(pieces ...*QualifiedNamePiece) *QualifiedName {
	return NewList(KindQualifiedName, pieces...)
}

func NewDeclList(decls ...Decl) *DeclList {
	return NewList(KindDeclList, decls...)
}

func NewTypedParameterList(params ...TypedParameter) *TypedParameterList {
	return NewList(KindTypedParameterList, params...)
}

func NewConstructorList(ctors ...*ConstructorDecl) *ConstructorList {
	return NewList(KindConstructorList, ctors...)
}

func NewRecordFieldAssignmentList(fields ...*RecordFieldAssignment) *RecordFieldAssignmentList {
	return NewList(KindRecordFieldAssignmentList, fields...)
}

func NewBindingList(bindings ...Binding) *BindingList {
	return NewList(KindBindingList, bindings...)
}

func NewBasicExprList(exprs ...BasicExpr) *BasicExprList {
	return NewList(KindBasicExprList, exprs...)
}

// QualifiedNamePiece is one component of a qualified name, with the period
// that follows it if any.
type QualifiedNamePiece struct {
	Name           *Token
	TrailingPeriod *Token // optional
}

func (x *QualifiedNamePiece) Kind() Kind { return KindQualifiedNamePiece }

func (x *QualifiedNamePiece) Children() []Node {
	if x.TrailingPeriod == nil {
		return []Node{x.Name}
	}
	return []Node{x.Name, x.TrailingPeriod}
}

// IsSimple reports whether the qualified name is a single piece with no
// trailing period.
func IsSimple(name *QualifiedName) bool {
	return name.Len() == 1 && name.At(0).TrailingPeriod == nil
}
