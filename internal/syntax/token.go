// Package syntax implements lexical and syntactic analysis for minijs, a small
// JavaScript-like scripting language.
package syntax

import (
	"fmt"
	"strconv"
)

// Kind represents the type of a lexical token.
type Kind uint

const (
	// Special tokens
	_EOF Kind = iota // end of input

	// Punctuation
	_Semi   // ;
	_Lbrace // {
	_Rbrace // }
	_Lparen // (
	_Rparen // )
	_Comma  // ,
	_Dot    // .
	_Lbrack // [
	_Rbrack // ]

	// Keywords
	_Let
	_If
	_Else
	_Null
	_While
	_Do
	_For
	_Def
	_Return
	_Class
	_Extends
	_Super
	_This
	_New

	// Literals
	_Number  // 42
	_String  // "abc" or 'abc'
	_Boolean // true, false
	_Name    // identifier

	// Operators, one kind per precedence category
	_AdditiveOp       // + -
	_MultiplicativeOp // * /
	_RelationalOp     // < <= > >=
	_EqualityOp       // == !=
	_ComplexAssign    // += -= *= /=
	_SimpleAssign     // =
	_LogicalAnd       // &&
	_LogicalOr        // ||
	_LogicalNot       // !

	kindCount
)

var kindNames = [...]string{
	_EOF: "EOF",

	_Semi:   "Semicolon",
	_Lbrace: "LBrace",
	_Rbrace: "RBrace",
	_Lparen: "LParen",
	_Rparen: "RParen",
	_Comma:  "Comma",
	_Dot:    "Dot",
	_Lbrack: "LBracket",
	_Rbrack: "RBracket",

	_Let:     "let",
	_If:      "if",
	_Else:    "else",
	_Null:    "null",
	_While:   "while",
	_Do:      "do",
	_For:     "for",
	_Def:     "def",
	_Return:  "return",
	_Class:   "class",
	_Extends: "extends",
	_Super:   "super",
	_This:    "this",
	_New:     "new",

	_Number:  "Number",
	_String:  "String",
	_Boolean: "Boolean",
	_Name:    "Identifier",

	_AdditiveOp:       "Additive",
	_MultiplicativeOp: "Multiplicative",
	_RelationalOp:     "Relational",
	_EqualityOp:       "Equality",
	_ComplexAssign:    "ComplexAssign",
	_SimpleAssign:     "SimpleAssign",
	_LogicalAnd:       "LogicalAnd",
	_LogicalOr:        "LogicalOr",
	_LogicalNot:       "LogicalNot",
}

// String returns the name of the kind as used in error messages.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// IsKeyword reports whether k is a keyword kind.
func (k Kind) IsKeyword() bool {
	return k >= _Let && k <= _New
}

// IsLiteral reports whether k starts a literal production.
func (k Kind) IsLiteral() bool {
	switch k {
	case _Number, _String, _Boolean, _Null:
		return true
	}
	return false
}

// IsOperator reports whether k is one of the operator categories.
func (k Kind) IsOperator() bool {
	return k >= _AdditiveOp && k <= _LogicalNot
}

// HasPayload reports whether tokens of kind k carry a value or lexeme.
func (k Kind) HasPayload() bool {
	switch k {
	case _Number, _String, _Boolean, _Name:
		return true
	}
	return k.IsOperator()
}

// IsAssign reports whether k is a simple or compound assignment operator.
func (k Kind) IsAssign() bool {
	return k == _SimpleAssign || k == _ComplexAssign
}

// Token is a single lexical unit. Only the payload field matching Kind is set:
// Int for Number, Bool for Boolean, Lit for String, Identifier and operators.
type Token struct {
	Kind Kind
	Lit  string
	Int  int
	Bool bool
	Pos  Pos // position of the first character
}

// IsEOF reports whether t signals the end of input.
func (t Token) IsEOF() bool {
	return t.Kind == _EOF
}

// Text returns the payload of t as text: the digits of a number, true or
// false, the contents of a string, or the lexeme of an identifier or
// operator. It is empty for tokens without a payload.
func (t Token) Text() string {
	switch t.Kind {
	case _Number:
		return strconv.Itoa(t.Int)
	case _Boolean:
		return strconv.FormatBool(t.Bool)
	}
	if t.Kind.HasPayload() {
		return t.Lit
	}
	return ""
}

// String returns a short description of the token, e.g. Identifier(x) or
// ComplexAssign(+=). Payload-free tokens print as their kind.
func (t Token) String() string {
	switch t.Kind {
	case _Number:
		return fmt.Sprintf("%s(%d)", t.Kind, t.Int)
	case _Boolean:
		return fmt.Sprintf("%s(%t)", t.Kind, t.Bool)
	case _String:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Lit)
	case _Name:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Lit)
	}
	if t.Kind.IsOperator() {
		return fmt.Sprintf("%s(%s)", t.Kind, t.Lit)
	}
	return t.Kind.String()
}

// Operator is an operator symbol carried by expression nodes.
type Operator string

const (
	OpAdd Operator = "+"
	OpSub Operator = "-"
	OpMul Operator = "*"
	OpDiv Operator = "/"

	OpLss Operator = "<"
	OpLeq Operator = "<="
	OpGtr Operator = ">"
	OpGeq Operator = ">="

	OpEql Operator = "=="
	OpNeq Operator = "!="

	OpAssign    Operator = "="
	OpAddAssign Operator = "+="
	OpSubAssign Operator = "-="
	OpMulAssign Operator = "*="
	OpDivAssign Operator = "/="

	OpAndAnd Operator = "&&"
	OpOrOr   Operator = "||"
	OpNot    Operator = "!"
)

// operatorKinds maps each operator symbol to the only token kind that may carry it.
var operatorKinds = map[Operator]Kind{
	OpAdd: _AdditiveOp,
	OpSub: _AdditiveOp,
	OpMul: _MultiplicativeOp,
	OpDiv: _MultiplicativeOp,

	OpLss: _RelationalOp,
	OpLeq: _RelationalOp,
	OpGtr: _RelationalOp,
	OpGeq: _RelationalOp,

	OpEql: _EqualityOp,
	OpNeq: _EqualityOp,

	OpAssign:    _SimpleAssign,
	OpAddAssign: _ComplexAssign,
	OpSubAssign: _ComplexAssign,
	OpMulAssign: _ComplexAssign,
	OpDivAssign: _ComplexAssign,

	OpAndAnd: _LogicalAnd,
	OpOrOr:   _LogicalOr,
	OpNot:    _LogicalNot,
}

// Kind returns the token kind of the operator's category, or EOF if op is
// not a known operator.
func (op Operator) Kind() Kind {
	if k, ok := operatorKinds[op]; ok {
		return k
	}
	return _EOF
}
