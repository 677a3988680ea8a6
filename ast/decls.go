package ast

// ModuleDecl is a module declaration: module Name Params where { Decls };
type ModuleDecl struct {
	ModuleToken       *Token
	Name              *QualifiedName
	Parameters        *TypedParameterList
	WhereToken        *Token
	LeftBrace         *Token
	Decls             *DeclList
	RightBrace        *Token
	TrailingSemicolon *Token
}

func (x *ModuleDecl) declNode() {}
func (x *ModuleDecl) Kind() Kind { return KindModuleDecl }
func (x *ModuleDecl) Children() []Node {
	return []Node{x.ModuleToken, x.Name, x.Parameters, x.WhereToken, x.LeftBrace, x.Decls, x.RightBrace, x.TrailingSemicolon}
}

// OpenImportDecl is an open import declaration: open import Name;
type OpenImportDecl struct {
	OpenToken         *Token
	ImportToken       *Token
	Name              *QualifiedName
	TrailingSemicolon *Token
}

func (x *OpenImportDecl) declNode() {}
func (x *OpenImportDecl) Kind() Kind { return KindOpenImportDecl }
func (x *OpenImportDecl) Children() []Node {
	return []Node{x.OpenToken, x.ImportToken, x.Name, x.TrailingSemicolon}
}

// ImportDecl is an import declaration: import Name;
type ImportDecl struct {
	ImportToken       *Token
	Name              *QualifiedName
	TrailingSemicolon *Token
}

func (x *ImportDecl) declNode() {}
func (x *ImportDecl) Kind() Kind { return KindImportDecl }
func (x *ImportDecl) Children() []Node {
	return []Node{x.ImportToken, x.Name, x.TrailingSemicolon}
}

// DataDecl is a data declaration with a constructor block.
type DataDecl struct {
	DataToken         *Token
	Name              *Token
	Parameters        *TypedParameterList
	Indices           *TypeIndices
	WhereToken        *Token
	LeftBrace         *Token
	Constructors      *ConstructorList
	RightBrace        *Token
	TrailingSemicolon *Token
}

func (x *DataDecl) declNode() {}
func (x *DataDecl) Kind() Kind { return KindDataDecl }
func (x *DataDecl) Children() []Node {
	return []Node{x.DataToken, x.Name, x.Parameters, x.Indices, x.WhereToken, x.LeftBrace, x.Constructors, x.RightBrace, x.TrailingSemicolon}
}

// EmptyDataDecl is a data declaration without a where clause.
type EmptyDataDecl struct {
	DataToken         *Token
	Name              *Token
	Parameters        *TypedParameterList
	Indices           *TypeIndices
	TrailingSemicolon *Token
}

func (x *EmptyDataDecl) declNode() {}
func (x *EmptyDataDecl) Kind() Kind { return KindEmptyDataDecl }
func (x *EmptyDataDecl) Children() []Node {
	return []Node{x.DataToken, x.Name, x.Parameters, x.Indices, x.TrailingSemicolon}
}

// TypeIndices is the ": Expr" that ends a data or record header. The colon
// and the expression are implicit when the source omitted them.
type TypeIndices struct {
	Colon     *Token
	IndexExpr Expr
}

func (x *TypeIndices) Kind() Kind { return KindTypeIndices }
func (x *TypeIndices) Children() []Node {
	return []Node{x.Colon, x.IndexExpr}
}

// Ascription binds a list of names to a type: a b c : Expr
type Ascription struct {
	BoundNames *IdentifierList
	Colon      *Token
	Type       Expr
}

func (x *Ascription) Kind() Kind { return KindAscription }
func (x *Ascription) Children() []Node {
	return []Node{x.BoundNames, x.Colon, x.Type}
}

// ExplicitTypedParameter is a parenthesized ascription: (x : A)
type ExplicitTypedParameter struct {
	LeftParen  *Token
	Ascription *Ascription
	RightParen *Token
}

func (x *ExplicitTypedParameter) typedParameterNode() {}
func (x *ExplicitTypedParameter) Kind() Kind          { return KindExplicitTypedParameter }
func (x *ExplicitTypedParameter) Children() []Node {
	return []Node{x.LeftParen, x.Ascription, x.RightParen}
}

// ImplicitTypedParameter is a braced ascription: {x : A}
type ImplicitTypedParameter struct {
	LeftBrace  *Token
	Ascription *Ascription
	RightBrace *Token
}

func (x *ImplicitTypedParameter) typedParameterNode() {}
func (x *ImplicitTypedParameter) Kind() Kind          { return KindImplicitTypedParameter }
func (x *ImplicitTypedParameter) Children() []Node {
	return []Node{x.LeftBrace, x.Ascription, x.RightBrace}
}

// ConstructorDecl is one constructor of a data declaration.
type ConstructorDecl struct {
	Ascription        *Ascription
	TrailingSemicolon *Token
}

func (x *ConstructorDecl) Kind() Kind { return KindConstructorDecl }
func (x *ConstructorDecl) Children() []Node {
	return []Node{x.Ascription, x.TrailingSemicolon}
}

// RecordDecl is a record declaration. Its elements are field declarations,
// a constructor declaration, and function declarations or clauses.
type RecordDecl struct {
	RecordToken       *Token
	Name              *Token
	Parameters        *TypedParameterList
	Indices           *TypeIndices
	WhereToken        *Token
	LeftBrace         *Token
	Elements          *DeclList
	RightBrace        *Token
	TrailingSemicolon *Token
}

func (x *RecordDecl) declNode() {}
func (x *RecordDecl) Kind() Kind { return KindRecordDecl }
func (x *RecordDecl) Children() []Node {
	return []Node{x.RecordToken, x.Name, x.Parameters, x.Indices, x.WhereToken, x.LeftBrace, x.Elements, x.RightBrace, x.TrailingSemicolon}
}

// FieldDecl declares record fields: field x : A;
type FieldDecl struct {
	FieldToken        *Token
	Ascription        *Ascription
	TrailingSemicolon *Token
}

func (x *FieldDecl) declNode() {}
func (x *FieldDecl) Kind() Kind { return KindFieldDecl }
func (x *FieldDecl) Children() []Node {
	return []Node{x.FieldToken, x.Ascription, x.TrailingSemicolon}
}

// RecordConstructorDecl names a record's constructor: constructor C;
type RecordConstructorDecl struct {
	ConstructorToken  *Token
	Name              *Token
	TrailingSemicolon *Token
}

func (x *RecordConstructorDecl) declNode() {}
func (x *RecordConstructorDecl) Kind() Kind { return KindRecordConstructorDecl }
func (x *RecordConstructorDecl) Children() []Node {
	return []Node{x.ConstructorToken, x.Name, x.TrailingSemicolon}
}

// FunctionDecl is a type signature: f g : A -> B;
type FunctionDecl struct {
	Ascription        *Ascription
	TrailingSemicolon *Token
}

func (x *FunctionDecl) declNode() {}
func (x *FunctionDecl) Kind() Kind { return KindFunctionDecl }
func (x *FunctionDecl) Children() []Node {
	return []Node{x.Ascription, x.TrailingSemicolon}
}

// NormalFunctionClauseDecl is a defining clause: f x = e;
type NormalFunctionClauseDecl struct {
	Patterns          *BasicExprList
	Equals            *Token
	RHS               Expr
	Where             *FunctionWhereClauseDecl // optional
	TrailingSemicolon *Token
}

func (x *NormalFunctionClauseDecl) declNode()           {}
func (x *NormalFunctionClauseDecl) functionClauseNode() {}
func (x *NormalFunctionClauseDecl) Kind() Kind          { return KindNormalFunctionClauseDecl }
func (x *NormalFunctionClauseDecl) Children() []Node {
	nodes := []Node{x.Patterns, x.Equals, x.RHS}
	if x.Where != nil {
		nodes = append(nodes, x.Where)
	}
	return append(nodes, x.TrailingSemicolon)
}

// WithRuleFunctionClauseDecl is a clause that matches on an additional
// scrutinee: f x with e p = rhs;
type WithRuleFunctionClauseDecl struct {
	Patterns          *BasicExprList
	WithToken         *Token
	WithExpr          Expr
	WithPatterns      *BasicExprList
	Equals            *Token
	RHS               Expr
	Where             *FunctionWhereClauseDecl // optional
	TrailingSemicolon *Token
}

func (x *WithRuleFunctionClauseDecl) declNode()           {}
func (x *WithRuleFunctionClauseDecl) functionClauseNode() {}
func (x *WithRuleFunctionClauseDecl) Kind() Kind          { return KindWithRuleFunctionClauseDecl }
func (x *WithRuleFunctionClauseDecl) Children() []Node {
	nodes := []Node{x.Patterns, x.WithToken, x.WithExpr, x.WithPatterns, x.Equals, x.RHS}
	if x.Where != nil {
		nodes = append(nodes, x.Where)
	}
	return append(nodes, x.TrailingSemicolon)
}

// AbsurdFunctionClauseDecl is a clause with no right-hand side: f ();
type AbsurdFunctionClauseDecl struct {
	Patterns          *BasicExprList
	TrailingSemicolon *Token
}

func (x *AbsurdFunctionClauseDecl) declNode()           {}
func (x *AbsurdFunctionClauseDecl) functionClauseNode() {}
func (x *AbsurdFunctionClauseDecl) Kind() Kind          { return KindAbsurdFunctionClauseDecl }
func (x *AbsurdFunctionClauseDecl) Children() []Node {
	return []Node{x.Patterns, x.TrailingSemicolon}
}

// FunctionWhereClauseDecl is the local declaration block of a clause.
type FunctionWhereClauseDecl struct {
	WhereToken *Token
	LeftBrace  *Token
	Decls      *DeclList
	RightBrace *Token
}

func (x *FunctionWhereClauseDecl) Kind() Kind { return KindFunctionWhereClauseDecl }
func (x *FunctionWhereClauseDecl) Children() []Node {
	return []Node{x.WhereToken, x.LeftBrace, x.Decls, x.RightBrace}
}

// Fixity holds the parts shared by the three fixity declarations.
type Fixity struct {
	InfixToken        *Token
	Precedence        *Token
	Names             *IdentifierList
	TrailingSemicolon *Token
}

func (x *Fixity) Parts() *Fixity { return x }

func (x *Fixity) children() []Node {
	return []Node{x.InfixToken, x.Precedence, x.Names, x.TrailingSemicolon}
}

// NonFixDecl is an infix declaration.
type NonFixDecl struct{ Fixity }

// LeftFixDecl is an infixl declaration.
type LeftFixDecl struct{ Fixity }

// RightFixDecl is an infixr declaration.
type RightFixDecl struct{ Fixity }

func (x *NonFixDecl) declNode()        {}
func (x *NonFixDecl) Kind() Kind       { return KindNonFixDecl }
func (x *NonFixDecl) Children() []Node { return x.children() }

func (x *LeftFixDecl) declNode()        {}
func (x *LeftFixDecl) Kind() Kind       { return KindLeftFixDecl }
func (x *LeftFixDecl) Children() []Node { return x.children() }

func (x *RightFixDecl) declNode()        {}
func (x *RightFixDecl) Kind() Kind       { return KindRightFixDecl }
func (x *RightFixDecl) Children() []Node { return x.children() }
