package syntax

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// NodeType returns the discriminator name of a node, e.g. "BinaryExpression".
func NodeType(n Node) string {
	switch n.(type) {
	case *Program:
		return "Program"
	case *NumericLiteral:
		return "NumericLiteral"
	case *StringLiteral:
		return "StringLiteral"
	case *BooleanLiteral:
		return "BooleanLiteral"
	case *NullLiteral:
		return "NullLiteral"
	case *Identifier:
		return "Identifier"
	case *ThisExpression:
		return "ThisExpression"
	case *Super:
		return "Super"
	case *AssignmentExpression:
		return "AssignmentExpression"
	case *BinaryExpression:
		return "BinaryExpression"
	case *LogicalExpression:
		return "LogicalExpression"
	case *UnaryExpression:
		return "UnaryExpression"
	case *MemberExpression:
		return "MemberExpression"
	case *CallExpression:
		return "CallExpression"
	case *NewExpression:
		return "NewExpression"
	case *EmptyStatement:
		return "EmptyStatement"
	case *ExpressionStatement:
		return "ExpressionStatement"
	case *BlockStatement:
		return "BlockStatement"
	case *VariableStatement:
		return "VariableStatement"
	case *VariableDeclaration:
		return "VariableDeclaration"
	case *IfStatement:
		return "IfStatement"
	case *WhileStatement:
		return "WhileStatement"
	case *DoWhileStatement:
		return "DoWhileStatement"
	case *ForStatement:
		return "ForStatement"
	case *FunctionDeclaration:
		return "FunctionDeclaration"
	case *ReturnStatement:
		return "ReturnStatement"
	case *ClassDeclaration:
		return "ClassDeclaration"
	case nil:
		return "nil"
	}
	return "Unknown"
}

// field is one key/value pair of an encoded node.
type field struct {
	key   string
	value any
}

// object is an encoded node: the "type" discriminator followed by the node's
// fields in declaration order. Absent optional children are left out; empty
// lists are kept.
type object []field

// MarshalJSON keeps the field order, which a map would lose.
func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := marshalJSON(f.key)
		if err != nil {
			return nil, err
		}
		v, err := marshalJSON(f.value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalJSON is json.Marshal without HTML escaping, so && stays readable.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// MarshalYAML builds a mapping node so the field order survives.
func (o object) MarshalYAML() (any, error) {
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, f := range o {
		k := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.key}
		v := &yaml.Node{}
		if err := v.Encode(f.value); err != nil {
			return nil, err
		}
		m.Content = append(m.Content, k, v)
	}
	return m, nil
}

// encode converts a node into its object form.
func encode(n Node) any {
	if n == nil {
		return nil
	}

	o := object{{"type", NodeType(n)}}
	add := func(key string, v any) { o = append(o, field{key, v}) }
	opt := func(key string, child Node) {
		if child != nil {
			add(key, encode(child))
		}
	}

	switch n := n.(type) {
	case *Program:
		add("body", encodeList(n.Body))

	case *NumericLiteral:
		add("value", n.Value)
	case *StringLiteral:
		add("value", n.Value)
	case *BooleanLiteral:
		add("value", n.Value)
	case *NullLiteral, *ThisExpression, *Super, *EmptyStatement:
		// no fields

	case *Identifier:
		add("name", n.Name)

	case *AssignmentExpression:
		add("operator", string(n.Operator))
		add("left", encode(n.Left))
		add("right", encode(n.Right))
	case *BinaryExpression:
		add("operator", string(n.Operator))
		add("left", encode(n.Left))
		add("right", encode(n.Right))
	case *LogicalExpression:
		add("operator", string(n.Operator))
		add("left", encode(n.Left))
		add("right", encode(n.Right))
	case *UnaryExpression:
		add("operator", string(n.Operator))
		add("argument", encode(n.Argument))

	case *MemberExpression:
		add("computed", n.Computed)
		add("object", encode(n.Object))
		add("property", encode(n.Property))
	case *CallExpression:
		add("callee", encode(n.Callee))
		add("arguments", encodeList(n.Arguments))
	case *NewExpression:
		add("callee", encode(n.Callee))
		add("arguments", encodeList(n.Arguments))

	case *ExpressionStatement:
		add("expression", encode(n.Expression))
	case *BlockStatement:
		add("body", encodeList(n.Body))
	case *VariableStatement:
		add("declarations", encodeList(n.Declarations))
	case *VariableDeclaration:
		add("id", encode(n.ID))
		opt("init", n.Init)

	case *IfStatement:
		add("test", encode(n.Test))
		add("consequent", encode(n.Consequent))
		opt("alternate", n.Alternate)
	case *WhileStatement:
		add("test", encode(n.Test))
		add("body", encode(n.Body))
	case *DoWhileStatement:
		add("test", encode(n.Test))
		add("body", encode(n.Body))
	case *ForStatement:
		opt("init", n.Init)
		opt("test", n.Test)
		opt("update", n.Update)
		add("body", encode(n.Body))

	case *FunctionDeclaration:
		add("name", encode(n.Name))
		add("params", encodeList(n.Params))
		add("body", encode(n.Body))
	case *ReturnStatement:
		opt("argument", n.Argument)
	case *ClassDeclaration:
		add("id", encode(n.ID))
		if n.SuperClass != nil {
			add("superClass", encode(n.SuperClass))
		}
		add("body", encode(n.Body))
	}

	return o
}

func encodeList[T Node](list []T) []any {
	result := make([]any, len(list))
	for i, n := range list {
		result[i] = encode(n)
	}
	return result
}
