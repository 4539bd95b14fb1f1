package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// Nodes form a closed set: every implementation lives in this package and is
// listed below. Nodes carry no source positions and never share children.

// Node is the interface implemented by all AST nodes.
type Node interface {
	aNode() // marker method to restrict implementations to this package
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// ----------------------------------------------------------------------------
// Base node types

type node struct{}

func (*node) aNode() {}

// expr is embedded in all expression nodes.
type expr struct{ node }

func (*expr) aExpr() {}

// stmt is embedded in all statement nodes.
type stmt struct{ node }

func (*stmt) aStmt() {}

// ----------------------------------------------------------------------------
// Program

// Program is the root of every parse. Body is never empty.
type Program struct {
	node
	Body []Stmt
}

// ----------------------------------------------------------------------------
// Literals

// NumericLiteral represents a decimal integer literal.
type NumericLiteral struct {
	expr
	Value int
}

// StringLiteral represents a string literal; Value excludes the delimiters.
type StringLiteral struct {
	expr
	Value string
}

// BooleanLiteral represents true or false.
type BooleanLiteral struct {
	expr
	Value bool
}

// NullLiteral represents null.
type NullLiteral struct {
	expr
}

// ----------------------------------------------------------------------------
// Expressions

// Identifier represents a name.
type Identifier struct {
	expr
	Name string
}

// ThisExpression represents this.
type ThisExpression struct {
	expr
}

// Super represents the super keyword as the callee of a call.
type Super struct {
	expr
}

// AssignmentExpression represents Left Operator Right, where Operator is =
// or a compound assignment. Left is an *Identifier or a *MemberExpression.
type AssignmentExpression struct {
	expr
	Operator Operator
	Left     Expr
	Right    Expr
}

// BinaryExpression represents an arithmetic, relational or equality operation.
type BinaryExpression struct {
	expr
	Operator Operator
	Left     Expr
	Right    Expr
}

// LogicalExpression represents && or ||. It is kept apart from
// BinaryExpression because its right operand is evaluated conditionally.
type LogicalExpression struct {
	expr
	Operator Operator
	Left     Expr
	Right    Expr
}

// UnaryExpression represents a prefix +, - or !.
type UnaryExpression struct {
	expr
	Operator Operator
	Argument Expr
}

// MemberExpression represents Object.Property (Computed false, Property is
// an *Identifier) or Object[Property] (Computed true).
type MemberExpression struct {
	expr
	Computed bool
	Object   Expr
	Property Expr
}

// CallExpression represents Callee(Arguments...).
type CallExpression struct {
	expr
	Callee    Expr
	Arguments []Expr
}

// NewExpression represents new Callee(Arguments...).
type NewExpression struct {
	expr
	Callee    Expr
	Arguments []Expr
}

// ----------------------------------------------------------------------------
// Statements

// EmptyStatement represents a lone semicolon.
type EmptyStatement struct {
	stmt
}

// ExpressionStatement represents an expression followed by a semicolon.
type ExpressionStatement struct {
	stmt
	Expression Expr
}

// BlockStatement represents { Body... }. Body is non-nil, possibly empty.
type BlockStatement struct {
	stmt
	Body []Stmt
}

// VariableStatement represents let a = 1, b;
type VariableStatement struct {
	stmt
	Declarations []*VariableDeclaration
}

// VariableDeclaration is one declarator of a VariableStatement.
type VariableDeclaration struct {
	node
	ID   *Identifier
	Init Expr // nil if absent
}

// IfStatement represents if (Test) Consequent [else Alternate].
type IfStatement struct {
	stmt
	Test       Expr
	Consequent Stmt
	Alternate  Stmt // nil if absent
}

// WhileStatement represents while (Test) Body.
type WhileStatement struct {
	stmt
	Test Expr
	Body Stmt
}

// DoWhileStatement represents do Body while (Test);
type DoWhileStatement struct {
	stmt
	Test Expr
	Body Stmt
}

// ForStatement represents for (Init; Test; Update) Body.
// Init is nil, a *VariableStatement, or an Expr. Test and Update may be nil.
type ForStatement struct {
	stmt
	Init   Node
	Test   Expr
	Update Expr
	Body   Stmt
}

// FunctionDeclaration represents def Name(Params...) Body.
type FunctionDeclaration struct {
	stmt
	Name   *Identifier
	Params []*Identifier
	Body   *BlockStatement
}

// ReturnStatement represents return [Argument];
type ReturnStatement struct {
	stmt
	Argument Expr // nil for a bare return
}

// ClassDeclaration represents class ID [extends SuperClass] Body.
type ClassDeclaration struct {
	stmt
	ID         *Identifier
	SuperClass *Identifier // nil if absent
	Body       *BlockStatement
}
