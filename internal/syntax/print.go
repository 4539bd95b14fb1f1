package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a textual representation of the AST to w: one node per line,
// children indented under a label naming the field they came from.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// field prints label followed by node one level deeper. Nil nodes are skipped.
func (p *printer) field(label string, node Node) {
	if isNil(node) {
		return
	}
	p.printf("%s:\n", label)
	p.indent++
	p.print(node)
	p.indent--
}

func (p *printer) list(label string, nodes []Node) {
	if len(nodes) == 0 {
		p.printf("%s: (none)\n", label)
		return
	}
	p.printf("%s:\n", label)
	p.indent++
	for _, n := range nodes {
		p.print(n)
	}
	p.indent--
}

func (p *printer) print(node Node) {
	if isNil(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		p.printf("Program\n")
		p.indent++
		for _, s := range n.Body {
			p.print(s)
		}
		p.indent--

	// Literals and leaves
	case *NumericLiteral:
		p.printf("NumericLiteral %d\n", n.Value)
	case *StringLiteral:
		p.printf("StringLiteral %q\n", n.Value)
	case *BooleanLiteral:
		p.printf("BooleanLiteral %t\n", n.Value)
	case *NullLiteral:
		p.printf("NullLiteral\n")
	case *Identifier:
		p.printf("Identifier %s\n", n.Name)
	case *ThisExpression:
		p.printf("ThisExpression\n")
	case *Super:
		p.printf("Super\n")

	// Operations
	case *AssignmentExpression:
		p.printf("AssignmentExpression %s\n", n.Operator)
		p.operands(n.Left, n.Right)
	case *BinaryExpression:
		p.printf("BinaryExpression %s\n", n.Operator)
		p.operands(n.Left, n.Right)
	case *LogicalExpression:
		p.printf("LogicalExpression %s\n", n.Operator)
		p.operands(n.Left, n.Right)
	case *UnaryExpression:
		p.printf("UnaryExpression %s\n", n.Operator)
		p.indent++
		p.field("Argument", n.Argument)
		p.indent--

	case *MemberExpression:
		if n.Computed {
			p.printf("MemberExpression [computed]\n")
		} else {
			p.printf("MemberExpression\n")
		}
		p.indent++
		p.field("Object", n.Object)
		p.field("Property", n.Property)
		p.indent--
	case *CallExpression:
		p.printf("CallExpression\n")
		p.indent++
		p.field("Callee", n.Callee)
		p.list("Arguments", nodes(n.Arguments))
		p.indent--
	case *NewExpression:
		p.printf("NewExpression\n")
		p.indent++
		p.field("Callee", n.Callee)
		p.list("Arguments", nodes(n.Arguments))
		p.indent--

	// Statements
	case *EmptyStatement:
		p.printf("EmptyStatement\n")
	case *ExpressionStatement:
		p.printf("ExpressionStatement\n")
		p.indent++
		p.print(n.Expression)
		p.indent--
	case *BlockStatement:
		p.printf("BlockStatement\n")
		p.indent++
		for _, s := range n.Body {
			p.print(s)
		}
		p.indent--
	case *VariableStatement:
		p.printf("VariableStatement\n")
		p.indent++
		for _, d := range n.Declarations {
			p.print(d)
		}
		p.indent--
	case *VariableDeclaration:
		p.printf("VariableDeclaration %s\n", n.ID.Name)
		p.indent++
		p.field("Init", n.Init)
		p.indent--

	case *IfStatement:
		p.printf("IfStatement\n")
		p.indent++
		p.field("Test", n.Test)
		p.field("Consequent", n.Consequent)
		p.field("Alternate", n.Alternate)
		p.indent--
	case *WhileStatement:
		p.printf("WhileStatement\n")
		p.indent++
		p.field("Test", n.Test)
		p.field("Body", n.Body)
		p.indent--
	case *DoWhileStatement:
		p.printf("DoWhileStatement\n")
		p.indent++
		p.field("Body", n.Body)
		p.field("Test", n.Test)
		p.indent--
	case *ForStatement:
		p.printf("ForStatement\n")
		p.indent++
		p.field("Init", n.Init)
		p.field("Test", n.Test)
		p.field("Update", n.Update)
		p.field("Body", n.Body)
		p.indent--

	case *FunctionDeclaration:
		p.printf("FunctionDeclaration %s\n", n.Name.Name)
		p.indent++
		if len(n.Params) > 0 {
			names := make([]string, len(n.Params))
			for i, id := range n.Params {
				names[i] = id.Name
			}
			p.printf("Params: %s\n", strings.Join(names, ", "))
		}
		p.field("Body", n.Body)
		p.indent--
	case *ReturnStatement:
		p.printf("ReturnStatement\n")
		p.indent++
		p.field("Argument", n.Argument)
		p.indent--
	case *ClassDeclaration:
		if n.SuperClass != nil {
			p.printf("ClassDeclaration %s extends %s\n", n.ID.Name, n.SuperClass.Name)
		} else {
			p.printf("ClassDeclaration %s\n", n.ID.Name)
		}
		p.indent++
		p.field("Body", n.Body)
		p.indent--

	default:
		p.printf("%T\n", n)
	}
}

func (p *printer) operands(left, right Expr) {
	p.indent++
	p.field("Left", left)
	p.field("Right", right)
	p.indent--
}

func nodes[T Node](list []T) []Node {
	result := make([]Node, len(list))
	for i, n := range list {
		result[i] = n
	}
	return result
}

// isNil reports whether n is nil or a typed nil pointer such as a nil
// *Identifier stored in a Node.
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	switch n := n.(type) {
	case *Identifier:
		return n == nil
	case *BlockStatement:
		return n == nil
	case *VariableStatement:
		return n == nil
	}
	return false
}
