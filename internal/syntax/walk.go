package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order, visiting children in source
// order. Absent optional children are skipped.
// If visitor returns false, children are not visited.
func Walk(node Node, v Visitor) {
	if isNil(node) || !v(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		walkList(n.Body, v)

	case *AssignmentExpression:
		Walk(n.Left, v)
		Walk(n.Right, v)

	case *BinaryExpression:
		Walk(n.Left, v)
		Walk(n.Right, v)

	case *LogicalExpression:
		Walk(n.Left, v)
		Walk(n.Right, v)

	case *UnaryExpression:
		Walk(n.Argument, v)

	case *MemberExpression:
		Walk(n.Object, v)
		Walk(n.Property, v)

	case *CallExpression:
		Walk(n.Callee, v)
		walkList(n.Arguments, v)

	case *NewExpression:
		Walk(n.Callee, v)
		walkList(n.Arguments, v)

	case *ExpressionStatement:
		Walk(n.Expression, v)

	case *BlockStatement:
		walkList(n.Body, v)

	case *VariableStatement:
		walkList(n.Declarations, v)

	case *VariableDeclaration:
		Walk(n.ID, v)
		Walk(n.Init, v)

	case *IfStatement:
		Walk(n.Test, v)
		Walk(n.Consequent, v)
		Walk(n.Alternate, v)

	case *WhileStatement:
		Walk(n.Test, v)
		Walk(n.Body, v)

	case *DoWhileStatement:
		Walk(n.Body, v)
		Walk(n.Test, v)

	case *ForStatement:
		Walk(n.Init, v)
		Walk(n.Test, v)
		Walk(n.Update, v)
		Walk(n.Body, v)

	case *FunctionDeclaration:
		Walk(n.Name, v)
		walkList(n.Params, v)
		Walk(n.Body, v)

	case *ReturnStatement:
		Walk(n.Argument, v)

	case *ClassDeclaration:
		Walk(n.ID, v)
		Walk(n.SuperClass, v)
		Walk(n.Body, v)

	// Leaf nodes: literals, Identifier, ThisExpression, Super, EmptyStatement
	// No children to visit
	}
}

func walkList[T Node](list []T, v Visitor) {
	for _, n := range list {
		Walk(n, v)
	}
}

// Inspect traverses an AST and calls f for each node.
// Convenience wrapper around Walk.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}
