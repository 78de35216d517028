/*
File    : esmix/parser/test_visitor.go
*/

// Package parser - test_visitor.go
// This file defines the TestingVisitor type, a visitor implementation used
// for testing AST traversal. It records a compact event per interesting
// node in traversal order; tests assert the recorded sequence against the
// expected one.
package parser

// TestingVisitor records traversal events for leaf and operator nodes.
// Everything else traverses through the embedded default behavior, so the
// event list is the in-order fringe of the tree.
type TestingVisitor struct {
	DefaultVisitor
	Events []string
}

// NewTestingVisitor creates a recording visitor dispatching to itself.
func NewTestingVisitor() *TestingVisitor {
	v := &TestingVisitor{Events: make([]string, 0)}
	v.Self = v
	return v
}

func (v *TestingVisitor) push(event string) {
	v.Events = append(v.Events, event)
}

func (v *TestingVisitor) VisitIdentifierExpressionNode(node IdentifierExpressionNode) {
	v.push("id:" + node.Name)
}

func (v *TestingVisitor) VisitVariableDeclarationNode(node VariableDeclarationNode) {
	v.push("decl:" + node.Name)
}

func (v *TestingVisitor) VisitParameterNode(node ParameterNode) {
	v.push("param:" + node.Name)
}

func (v *TestingVisitor) VisitNumberLiteralExpressionNode(node NumberLiteralExpressionNode) {
	v.push("num:" + node.Raw)
}

func (v *TestingVisitor) VisitStringLiteralExpressionNode(node StringLiteralExpressionNode) {
	v.push("str:" + node.Raw)
}

func (v *TestingVisitor) VisitBinaryExpressionNode(node BinaryExpressionNode) {
	node.Left.Accept(v)
	v.push("bin:" + node.Operator)
	node.Right.Accept(v)
}

func (v *TestingVisitor) VisitPrefixExpressionNode(node PrefixExpressionNode) {
	v.push("pre:" + node.Operator)
	node.Operand.Accept(v)
}

func (v *TestingVisitor) VisitPostfixExpressionNode(node PostfixExpressionNode) {
	node.Operand.Accept(v)
	v.push("post:" + node.Operator)
}
