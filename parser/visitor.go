/*
File    : esmix/parser/visitor.go
*/
package parser

// NodeVisitor: implements the Visitor design pattern for traversing the
// Abstract Syntax Tree (AST). Each Visit method processes a specific node
// type, enabling operations like printing, declaration collection, or
// resolution. Specialized visitors embed DefaultVisitor and override only
// the cases they care about.
type NodeVisitor interface {
	VisitProgramNode(node ProgramNode)

	// Declaration leaves and shared nodes
	VisitVariableDeclarationNode(node VariableDeclarationNode)
	VisitParameterNode(node ParameterNode)
	VisitVariableInitializationNode(node VariableInitializationNode)
	VisitCatchClauseNode(node CatchClauseNode)
	VisitCaseClauseNode(node CaseClauseNode)
	VisitDefaultClauseNode(node DefaultClauseNode)
	VisitArrayElementNode(node ArrayElementNode)
	VisitPropertyNode(node PropertyNode)

	// Statements
	VisitBlockStatementNode(node BlockStatementNode)
	VisitExpressionStatementNode(node ExpressionStatementNode)
	VisitEmptyStatementNode(node EmptyStatementNode)
	VisitIfStatementNode(node IfStatementNode)
	VisitForStatementNode(node ForStatementNode)
	VisitForInStatementNode(node ForInStatementNode)
	VisitWhileStatementNode(node WhileStatementNode)
	VisitDoWhileStatementNode(node DoWhileStatementNode)
	VisitContinueStatementNode(node ContinueStatementNode)
	VisitBreakStatementNode(node BreakStatementNode)
	VisitReturnStatementNode(node ReturnStatementNode)
	VisitThrowStatementNode(node ThrowStatementNode)
	VisitTryStatementNode(node TryStatementNode)
	VisitWithStatementNode(node WithStatementNode)
	VisitSwitchStatementNode(node SwitchStatementNode)
	VisitFunctionDeclarationNode(node FunctionDeclarationNode)
	VisitLabeledStatementNode(node LabeledStatementNode)

	// Expressions
	VisitSequenceExpressionNode(node SequenceExpressionNode)
	VisitVariableDeclarationListNode(node VariableDeclarationListNode)
	VisitAssignmentExpressionNode(node AssignmentExpressionNode)
	VisitConditionalExpressionNode(node ConditionalExpressionNode)
	VisitNewExpressionNode(node NewExpressionNode)
	VisitCallExpressionNode(node CallExpressionNode)
	VisitBinaryExpressionNode(node BinaryExpressionNode)
	VisitPrefixExpressionNode(node PrefixExpressionNode)
	VisitPostfixExpressionNode(node PostfixExpressionNode)
	VisitIdentifierExpressionNode(node IdentifierExpressionNode)
	VisitThisExpressionNode(node ThisExpressionNode)
	VisitPropertyAccessExpressionNode(node PropertyAccessExpressionNode)
	VisitFunctionLiteralNode(node FunctionLiteralNode)
	VisitNamedFunctionExpressionNode(node NamedFunctionExpressionNode)

	// Literals
	VisitBooleanLiteralExpressionNode(node BooleanLiteralExpressionNode)
	VisitStringLiteralExpressionNode(node StringLiteralExpressionNode)
	VisitNumberLiteralExpressionNode(node NumberLiteralExpressionNode)
	VisitNullLiteralExpressionNode(node NullLiteralExpressionNode)
	VisitUndefinedLiteralExpressionNode(node UndefinedLiteralExpressionNode)
	VisitArrayLiteralExpressionNode(node ArrayLiteralExpressionNode)
	VisitObjectLiteralExpressionNode(node ObjectLiteralExpressionNode)
	VisitRegExpLiteralExpressionNode(node RegExpLiteralExpressionNode)
}

// DefaultVisitor visits every child of each node it receives, in the
// structural order of the node's fields, and nothing else. Visitors embed
// it and override the handful of cases they care about.
//
// Re-entry into overridden methods is dispatched through Self, which the
// embedding visitor must point at itself; when Self is nil the default
// traversal dispatches to itself.
type DefaultVisitor struct {
	Self NodeVisitor
}

// self returns the dispatch target for child traversal.
func (d *DefaultVisitor) self() NodeVisitor {
	if d.Self != nil {
		return d.Self
	}
	return d
}

// visit dispatches a child node, ignoring nil children (absent for-loop
// parts, absent initializers, absent catch/finally).
func (d *DefaultVisitor) visit(node Node) {
	if node != nil {
		node.Accept(d.self())
	}
}

func (d *DefaultVisitor) VisitProgramNode(node ProgramNode) {
	for _, stmt := range node.Body {
		d.visit(stmt)
	}
}

func (d *DefaultVisitor) VisitVariableDeclarationNode(node VariableDeclarationNode) {
}

func (d *DefaultVisitor) VisitParameterNode(node ParameterNode) {
}

func (d *DefaultVisitor) VisitVariableInitializationNode(node VariableInitializationNode) {
	d.visit(node.Decl)
	if node.Value != nil {
		d.visit(node.Value)
	}
}

func (d *DefaultVisitor) VisitCatchClauseNode(node CatchClauseNode) {
	d.visit(node.Param)
	d.visit(node.Body)
}

func (d *DefaultVisitor) VisitCaseClauseNode(node CaseClauseNode) {
	d.visit(node.Expr)
	d.visit(node.Body)
}

func (d *DefaultVisitor) VisitDefaultClauseNode(node DefaultClauseNode) {
	d.visit(node.Body)
}

func (d *DefaultVisitor) VisitArrayElementNode(node ArrayElementNode) {
	d.visit(node.Value)
}

func (d *DefaultVisitor) VisitPropertyNode(node PropertyNode) {
	d.visit(node.Name)
	d.visit(node.Value)
}

func (d *DefaultVisitor) VisitBlockStatementNode(node BlockStatementNode) {
	for _, stmt := range node.Statements {
		d.visit(stmt)
	}
}

func (d *DefaultVisitor) VisitExpressionStatementNode(node ExpressionStatementNode) {
	d.visit(node.Expr)
}

func (d *DefaultVisitor) VisitEmptyStatementNode(node EmptyStatementNode) {
}

func (d *DefaultVisitor) VisitIfStatementNode(node IfStatementNode) {
	d.visit(node.Condition)
	d.visit(node.Then)
	d.visit(node.Else)
}

func (d *DefaultVisitor) VisitForStatementNode(node ForStatementNode) {
	if node.Init != nil {
		d.visit(node.Init)
	}
	d.visit(node.Condition)
	if node.Update != nil {
		d.visit(node.Update)
	}
	d.visit(node.Body)
}

func (d *DefaultVisitor) VisitForInStatementNode(node ForInStatementNode) {
	d.visit(node.Lhs)
	d.visit(node.Object)
	d.visit(node.Body)
}

func (d *DefaultVisitor) VisitWhileStatementNode(node WhileStatementNode) {
	d.visit(node.Condition)
	d.visit(node.Body)
}

func (d *DefaultVisitor) VisitDoWhileStatementNode(node DoWhileStatementNode) {
	d.visit(node.Body)
	d.visit(node.Condition)
}

func (d *DefaultVisitor) VisitContinueStatementNode(node ContinueStatementNode) {
}

func (d *DefaultVisitor) VisitBreakStatementNode(node BreakStatementNode) {
}

func (d *DefaultVisitor) VisitReturnStatementNode(node ReturnStatementNode) {
	d.visit(node.Value)
}

func (d *DefaultVisitor) VisitThrowStatementNode(node ThrowStatementNode) {
	d.visit(node.Expr)
}

func (d *DefaultVisitor) VisitTryStatementNode(node TryStatementNode) {
	d.visit(node.Body)
	if node.Catch != nil {
		d.visit(node.Catch)
	}
	if node.Finally != nil {
		d.visit(node.Finally)
	}
}

func (d *DefaultVisitor) VisitWithStatementNode(node WithStatementNode) {
	d.visit(node.Object)
	d.visit(node.Body)
}

func (d *DefaultVisitor) VisitSwitchStatementNode(node SwitchStatementNode) {
	d.visit(node.Key)
	for _, clause := range node.Cases {
		d.visit(clause)
	}
}

func (d *DefaultVisitor) VisitFunctionDeclarationNode(node FunctionDeclarationNode) {
	d.visit(node.Name)
	d.visit(node.Function)
}

func (d *DefaultVisitor) VisitLabeledStatementNode(node LabeledStatementNode) {
	d.visit(node.Body)
}

func (d *DefaultVisitor) VisitSequenceExpressionNode(node SequenceExpressionNode) {
	for _, expr := range node.Expressions {
		d.visit(expr)
	}
}

func (d *DefaultVisitor) VisitVariableDeclarationListNode(node VariableDeclarationListNode) {
	for _, init := range node.Declarations {
		d.visit(init)
	}
}

func (d *DefaultVisitor) VisitAssignmentExpressionNode(node AssignmentExpressionNode) {
	d.visit(node.Target)
	d.visit(node.Value)
}

func (d *DefaultVisitor) VisitConditionalExpressionNode(node ConditionalExpressionNode) {
	d.visit(node.Condition)
	d.visit(node.Then)
	d.visit(node.Else)
}

func (d *DefaultVisitor) VisitNewExpressionNode(node NewExpressionNode) {
	d.visit(node.Target)
	for _, arg := range node.Arguments {
		d.visit(arg)
	}
}

func (d *DefaultVisitor) VisitCallExpressionNode(node CallExpressionNode) {
	d.visit(node.Target)
	for _, arg := range node.Arguments {
		d.visit(arg)
	}
}

func (d *DefaultVisitor) VisitBinaryExpressionNode(node BinaryExpressionNode) {
	d.visit(node.Left)
	d.visit(node.Right)
}

func (d *DefaultVisitor) VisitPrefixExpressionNode(node PrefixExpressionNode) {
	d.visit(node.Operand)
}

func (d *DefaultVisitor) VisitPostfixExpressionNode(node PostfixExpressionNode) {
	d.visit(node.Operand)
}

func (d *DefaultVisitor) VisitIdentifierExpressionNode(node IdentifierExpressionNode) {
}

func (d *DefaultVisitor) VisitThisExpressionNode(node ThisExpressionNode) {
}

func (d *DefaultVisitor) VisitPropertyAccessExpressionNode(node PropertyAccessExpressionNode) {
	d.visit(node.Receiver)
	d.visit(node.Selector)
}

func (d *DefaultVisitor) VisitFunctionLiteralNode(node FunctionLiteralNode) {
	for _, param := range node.Parameters {
		d.visit(param)
	}
	d.visit(node.Body)
}

func (d *DefaultVisitor) VisitNamedFunctionExpressionNode(node NamedFunctionExpressionNode) {
	d.visit(node.Name)
	d.visit(node.Function)
}

func (d *DefaultVisitor) VisitBooleanLiteralExpressionNode(node BooleanLiteralExpressionNode) {
}

func (d *DefaultVisitor) VisitStringLiteralExpressionNode(node StringLiteralExpressionNode) {
}

func (d *DefaultVisitor) VisitNumberLiteralExpressionNode(node NumberLiteralExpressionNode) {
}

func (d *DefaultVisitor) VisitNullLiteralExpressionNode(node NullLiteralExpressionNode) {
}

func (d *DefaultVisitor) VisitUndefinedLiteralExpressionNode(node UndefinedLiteralExpressionNode) {
}

func (d *DefaultVisitor) VisitArrayLiteralExpressionNode(node ArrayLiteralExpressionNode) {
	for _, elem := range node.Elements {
		d.visit(elem)
	}
}

func (d *DefaultVisitor) VisitObjectLiteralExpressionNode(node ObjectLiteralExpressionNode) {
	for _, prop := range node.Properties {
		d.visit(prop)
	}
}

func (d *DefaultVisitor) VisitRegExpLiteralExpressionNode(node RegExpLiteralExpressionNode) {
}
