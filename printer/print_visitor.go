/*
File    : esmix/printer/print_visitor.go
*/

// Package printer renders a parsed program back to source text. The output
// is defensively parenthesized so that it re-parses to a structurally equal
// tree, and an annotating variant interleaves resolved-variable tags.
package printer

import (
	"bytes"
	"strconv"

	"github.com/esmix/esmix/parser"
)

const INDENT_SIZE = 2 // Number of spaces per indentation level

// PrintVisitor is a visitor that renders AST nodes as parenthesized source
// text into an output buffer.
//
// Statement visits assume the cursor is at the start of a line and end
// having written their trailing newline; expression visits append inline
// text. Compound expressions (calls, news, binaries, prefixes, postfixes,
// assignments, conditionals, sequences, property accesses) are wrapped in
// parentheses. Child dispatch goes through Self so that an embedding
// visitor keeps its overrides.
type PrintVisitor struct {
	Indent int                // Current indentation level for formatting
	Buf    bytes.Buffer       // Buffer to accumulate the rendered output
	Self   parser.NodeVisitor // Dispatch target for child traversal
}

// NewPrintVisitor creates a printing visitor dispatching to itself.
func NewPrintVisitor() *PrintVisitor {
	p := &PrintVisitor{}
	p.Self = p
	return p
}

// Print renders a program with the base printer.
func Print(program *parser.ProgramNode) string {
	v := NewPrintVisitor()
	program.Accept(v)
	return v.String()
}

// String returns the accumulated output.
func (p *PrintVisitor) String() string {
	return p.Buf.String()
}

// indent writes the current indentation to the buffer.
func (p *PrintVisitor) indent() {
	for i := 0; i < p.Indent*INDENT_SIZE; i++ {
		p.Buf.WriteString(" ")
	}
}

// printBraced renders "{ ... }" for a block whose header (if/for/try/...)
// has already been written on the current line, ending with a newline.
func (p *PrintVisitor) printBraced(node *parser.BlockStatementNode) {
	p.Buf.WriteString(" {\n")
	p.Indent++
	for _, stmt := range node.Statements {
		stmt.Accept(p.Self)
	}
	p.Indent--
	p.indent()
	p.Buf.WriteString("}\n")
}

// printSubStatement renders the body of a control statement. Blocks stay
// on the header's line; other statements move to the next line, indented,
// unless forceBlock wraps them in braces (used to disambiguate a dangling
// else).
func (p *PrintVisitor) printSubStatement(stmt parser.StatementNode, forceBlock bool) {
	if block, ok := stmt.(*parser.BlockStatementNode); ok {
		p.printBraced(block)
		return
	}
	if forceBlock {
		p.Buf.WriteString(" {\n")
		p.Indent++
		stmt.Accept(p.Self)
		p.Indent--
		p.indent()
		p.Buf.WriteString("}\n")
		return
	}
	p.Buf.WriteString("\n")
	p.Indent++
	stmt.Accept(p.Self)
	p.Indent--
}

// printArguments renders a comma-separated argument list without the
// surrounding parentheses.
func (p *PrintVisitor) printArguments(args []parser.ExpressionNode) {
	for i, arg := range args {
		if i > 0 {
			p.Buf.WriteString(", ")
		}
		arg.Accept(p.Self)
	}
}

// VisitProgramNode renders the header line and the top-level statements.
func (p *PrintVisitor) VisitProgramNode(node parser.ProgramNode) {
	p.Buf.WriteString("/* Program */\n")
	for _, stmt := range node.Body {
		stmt.Accept(p.Self)
	}
}

// VisitBlockStatementNode renders a block at statement position.
func (p *PrintVisitor) VisitBlockStatementNode(node parser.BlockStatementNode) {
	p.indent()
	p.Buf.WriteString("{\n")
	p.Indent++
	for _, stmt := range node.Statements {
		stmt.Accept(p.Self)
	}
	p.Indent--
	p.indent()
	p.Buf.WriteString("}\n")
}

// VisitExpressionStatementNode renders "expr;".
func (p *PrintVisitor) VisitExpressionStatementNode(node parser.ExpressionStatementNode) {
	p.indent()
	node.Expr.Accept(p.Self)
	p.Buf.WriteString(";\n")
}

// VisitEmptyStatementNode renders a lone semicolon.
func (p *PrintVisitor) VisitEmptyStatementNode(node parser.EmptyStatementNode) {
	p.indent()
	p.Buf.WriteString(";\n")
}

// VisitIfStatementNode renders an if statement. A then branch that is
// itself an if gets braces when the outer statement carries an else, so
// the else cannot dangle into the inner if on re-parse.
func (p *PrintVisitor) VisitIfStatementNode(node parser.IfStatementNode) {
	p.indent()
	p.Buf.WriteString("if (")
	node.Condition.Accept(p.Self)
	p.Buf.WriteString(")")

	_, thenIsIf := node.Then.(*parser.IfStatementNode)
	p.printSubStatement(node.Then, thenIsIf && node.HasElse())

	if node.HasElse() {
		p.indent()
		p.Buf.WriteString("else")
		p.printSubStatement(node.Else, false)
	}
}

// VisitForStatementNode renders a classic for loop.
func (p *PrintVisitor) VisitForStatementNode(node parser.ForStatementNode) {
	p.indent()
	p.Buf.WriteString("for (")
	if node.Init != nil {
		node.Init.Accept(p.Self)
	}
	p.Buf.WriteString("; ")
	node.Condition.Accept(p.Self)
	p.Buf.WriteString("; ")
	if node.Update != nil {
		node.Update.Accept(p.Self)
	}
	p.Buf.WriteString(")")
	p.printSubStatement(node.Body, false)
}

// VisitForInStatementNode renders a for-in loop.
func (p *PrintVisitor) VisitForInStatementNode(node parser.ForInStatementNode) {
	p.indent()
	p.Buf.WriteString("for (")
	node.Lhs.Accept(p.Self)
	p.Buf.WriteString(" in ")
	node.Object.Accept(p.Self)
	p.Buf.WriteString(")")
	p.printSubStatement(node.Body, false)
}

// VisitWhileStatementNode renders a while loop.
func (p *PrintVisitor) VisitWhileStatementNode(node parser.WhileStatementNode) {
	p.indent()
	p.Buf.WriteString("while (")
	node.Condition.Accept(p.Self)
	p.Buf.WriteString(")")
	p.printSubStatement(node.Body, false)
}

// VisitDoWhileStatementNode renders a do-while loop.
func (p *PrintVisitor) VisitDoWhileStatementNode(node parser.DoWhileStatementNode) {
	p.indent()
	p.Buf.WriteString("do")
	p.printSubStatement(node.Body, false)
	p.indent()
	p.Buf.WriteString("while (")
	node.Condition.Accept(p.Self)
	p.Buf.WriteString(");\n")
}

// VisitContinueStatementNode renders continue with its optional label.
func (p *PrintVisitor) VisitContinueStatementNode(node parser.ContinueStatementNode) {
	p.indent()
	p.Buf.WriteString("continue")
	if node.Label != "" {
		p.Buf.WriteString(" " + node.Label)
	}
	p.Buf.WriteString(";\n")
}

// VisitBreakStatementNode renders break with its optional label.
func (p *PrintVisitor) VisitBreakStatementNode(node parser.BreakStatementNode) {
	p.indent()
	p.Buf.WriteString("break")
	if node.Label != "" {
		p.Buf.WriteString(" " + node.Label)
	}
	p.Buf.WriteString(";\n")
}

// VisitReturnStatementNode renders "return value;"; a value-less return
// carries the undefined literal and prints "return (void 0);".
func (p *PrintVisitor) VisitReturnStatementNode(node parser.ReturnStatementNode) {
	p.indent()
	p.Buf.WriteString("return ")
	node.Value.Accept(p.Self)
	p.Buf.WriteString(";\n")
}

// VisitThrowStatementNode renders "throw expr;".
func (p *PrintVisitor) VisitThrowStatementNode(node parser.ThrowStatementNode) {
	p.indent()
	p.Buf.WriteString("throw ")
	node.Expr.Accept(p.Self)
	p.Buf.WriteString(";\n")
}

// VisitTryStatementNode renders a try statement with its handlers.
func (p *PrintVisitor) VisitTryStatementNode(node parser.TryStatementNode) {
	p.indent()
	p.Buf.WriteString("try")
	p.printBraced(node.Body)
	if node.Catch != nil {
		node.Catch.Accept(p.Self)
	}
	if node.Finally != nil {
		p.indent()
		p.Buf.WriteString("finally")
		p.printBraced(node.Finally)
	}
}

// VisitCatchClauseNode renders "catch (param) { ... }".
func (p *PrintVisitor) VisitCatchClauseNode(node parser.CatchClauseNode) {
	p.indent()
	p.Buf.WriteString("catch (")
	node.Param.Accept(p.Self)
	p.Buf.WriteString(")")
	p.printBraced(node.Body)
}

// VisitWithStatementNode renders a with statement.
func (p *PrintVisitor) VisitWithStatementNode(node parser.WithStatementNode) {
	p.indent()
	p.Buf.WriteString("with (")
	node.Object.Accept(p.Self)
	p.Buf.WriteString(")")
	p.printSubStatement(node.Body, false)
}

// VisitSwitchStatementNode renders a switch statement with its clauses.
func (p *PrintVisitor) VisitSwitchStatementNode(node parser.SwitchStatementNode) {
	p.indent()
	p.Buf.WriteString("switch (")
	node.Key.Accept(p.Self)
	p.Buf.WriteString(") {\n")
	p.Indent++
	for _, clause := range node.Cases {
		clause.Accept(p.Self)
	}
	p.Indent--
	p.indent()
	p.Buf.WriteString("}\n")
}

// VisitCaseClauseNode renders "case expr:" and the clause's statements.
// The statements print bare: braces would re-parse as one nested block
// inside the clause.
func (p *PrintVisitor) VisitCaseClauseNode(node parser.CaseClauseNode) {
	p.indent()
	p.Buf.WriteString("case ")
	node.Expr.Accept(p.Self)
	p.Buf.WriteString(":\n")
	p.Indent++
	for _, stmt := range node.Body.Statements {
		stmt.Accept(p.Self)
	}
	p.Indent--
}

// VisitDefaultClauseNode renders "default:" and the clause's statements.
func (p *PrintVisitor) VisitDefaultClauseNode(node parser.DefaultClauseNode) {
	p.indent()
	p.Buf.WriteString("default:\n")
	p.Indent++
	for _, stmt := range node.Body.Statements {
		stmt.Accept(p.Self)
	}
	p.Indent--
}

// VisitFunctionDeclarationNode renders a function declaration.
func (p *PrintVisitor) VisitFunctionDeclarationNode(node parser.FunctionDeclarationNode) {
	p.indent()
	p.Buf.WriteString("function ")
	node.Name.Accept(p.Self)
	p.printFunctionTail(node.Function)
	p.Buf.WriteString("\n")
}

// VisitLabeledStatementNode renders "label: statement".
func (p *PrintVisitor) VisitLabeledStatementNode(node parser.LabeledStatementNode) {
	p.indent()
	p.Buf.WriteString(node.Label + ":")
	p.printSubStatement(node.Body, false)
}

// printFunctionTail renders "(params) { body }" after the function keyword
// and optional name, without a trailing newline.
func (p *PrintVisitor) printFunctionTail(fun *parser.FunctionLiteralNode) {
	p.Buf.WriteString("(")
	for i, param := range fun.Parameters {
		if i > 0 {
			p.Buf.WriteString(", ")
		}
		param.Accept(p.Self)
	}
	p.Buf.WriteString(") {\n")
	p.Indent++
	for _, stmt := range fun.Body.Statements {
		stmt.Accept(p.Self)
	}
	p.Indent--
	p.indent()
	p.Buf.WriteString("}")
}

// VisitVariableDeclarationNode renders the declared name.
func (p *PrintVisitor) VisitVariableDeclarationNode(node parser.VariableDeclarationNode) {
	p.Buf.WriteString(node.Name)
}

// VisitParameterNode renders the parameter name.
func (p *PrintVisitor) VisitParameterNode(node parser.ParameterNode) {
	p.Buf.WriteString(node.Name)
}

// VisitVariableInitializationNode renders "name" or "name = value".
func (p *PrintVisitor) VisitVariableInitializationNode(node parser.VariableInitializationNode) {
	node.Decl.Accept(p.Self)
	if node.Value != nil {
		p.Buf.WriteString(" = ")
		node.Value.Accept(p.Self)
	}
}

// VisitVariableDeclarationListNode renders "var a = 1, b".
func (p *PrintVisitor) VisitVariableDeclarationListNode(node parser.VariableDeclarationListNode) {
	p.Buf.WriteString("var ")
	for i, init := range node.Declarations {
		if i > 0 {
			p.Buf.WriteString(", ")
		}
		init.Accept(p.Self)
	}
}

// VisitSequenceExpressionNode renders "(a, b, c)".
func (p *PrintVisitor) VisitSequenceExpressionNode(node parser.SequenceExpressionNode) {
	p.Buf.WriteString("(")
	for i, expr := range node.Expressions {
		if i > 0 {
			p.Buf.WriteString(", ")
		}
		expr.Accept(p.Self)
	}
	p.Buf.WriteString(")")
}

// VisitAssignmentExpressionNode renders "(target op= value)".
func (p *PrintVisitor) VisitAssignmentExpressionNode(node parser.AssignmentExpressionNode) {
	p.Buf.WriteString("(")
	node.Target.Accept(p.Self)
	p.Buf.WriteString(" " + node.Operator + "= ")
	node.Value.Accept(p.Self)
	p.Buf.WriteString(")")
}

// VisitConditionalExpressionNode renders "(cond ? then : else)".
func (p *PrintVisitor) VisitConditionalExpressionNode(node parser.ConditionalExpressionNode) {
	p.Buf.WriteString("(")
	node.Condition.Accept(p.Self)
	p.Buf.WriteString(" ? ")
	node.Then.Accept(p.Self)
	p.Buf.WriteString(" : ")
	node.Else.Accept(p.Self)
	p.Buf.WriteString(")")
}

// VisitNewExpressionNode renders "(new target(args))".
func (p *PrintVisitor) VisitNewExpressionNode(node parser.NewExpressionNode) {
	p.Buf.WriteString("(new ")
	node.Target.Accept(p.Self)
	p.Buf.WriteString("(")
	p.printArguments(node.Arguments)
	p.Buf.WriteString("))")
}

// VisitCallExpressionNode renders "(target(args))".
func (p *PrintVisitor) VisitCallExpressionNode(node parser.CallExpressionNode) {
	p.Buf.WriteString("(")
	node.Target.Accept(p.Self)
	p.Buf.WriteString("(")
	p.printArguments(node.Arguments)
	p.Buf.WriteString("))")
}

// VisitBinaryExpressionNode renders "(left op right)".
func (p *PrintVisitor) VisitBinaryExpressionNode(node parser.BinaryExpressionNode) {
	p.Buf.WriteString("(")
	node.Left.Accept(p.Self)
	p.Buf.WriteString(" " + node.Operator + " ")
	node.Right.Accept(p.Self)
	p.Buf.WriteString(")")
}

// VisitPrefixExpressionNode renders "(op operand)". The "prefix" marker of
// the ++/--/+/- forms is stripped; word operators keep a space before the
// operand.
func (p *PrintVisitor) VisitPrefixExpressionNode(node parser.PrefixExpressionNode) {
	op := node.Operator
	if len(op) > 6 && op[:6] == "prefix" {
		op = op[6:]
	}
	p.Buf.WriteString("(")
	p.Buf.WriteString(op)
	if op[0] >= 'a' && op[0] <= 'z' {
		p.Buf.WriteString(" ")
	}
	node.Operand.Accept(p.Self)
	p.Buf.WriteString(")")
}

// VisitPostfixExpressionNode renders "(operand op)".
func (p *PrintVisitor) VisitPostfixExpressionNode(node parser.PostfixExpressionNode) {
	p.Buf.WriteString("(")
	node.Operand.Accept(p.Self)
	p.Buf.WriteString(node.Operator)
	p.Buf.WriteString(")")
}

// VisitIdentifierExpressionNode renders the name.
func (p *PrintVisitor) VisitIdentifierExpressionNode(node parser.IdentifierExpressionNode) {
	p.Buf.WriteString(node.Name)
}

// VisitThisExpressionNode renders the this keyword.
func (p *PrintVisitor) VisitThisExpressionNode(node parser.ThisExpressionNode) {
	p.Buf.WriteString("this")
}

// VisitPropertyAccessExpressionNode renders "(receiver[selector])"; dotted
// accesses were normalized to this form by the parser.
func (p *PrintVisitor) VisitPropertyAccessExpressionNode(node parser.PropertyAccessExpressionNode) {
	p.Buf.WriteString("(")
	node.Receiver.Accept(p.Self)
	p.Buf.WriteString("[")
	node.Selector.Accept(p.Self)
	p.Buf.WriteString("])")
}

// VisitFunctionLiteralNode renders an anonymous function expression.
func (p *PrintVisitor) VisitFunctionLiteralNode(node parser.FunctionLiteralNode) {
	p.Buf.WriteString("function ")
	p.printFunctionTail(&node)
}

// VisitNamedFunctionExpressionNode renders a named function expression.
func (p *PrintVisitor) VisitNamedFunctionExpressionNode(node parser.NamedFunctionExpressionNode) {
	p.Buf.WriteString("function ")
	node.Name.Accept(p.Self)
	p.printFunctionTail(node.Function)
}

// VisitBooleanLiteralExpressionNode renders true or false.
func (p *PrintVisitor) VisitBooleanLiteralExpressionNode(node parser.BooleanLiteralExpressionNode) {
	p.Buf.WriteString(strconv.FormatBool(node.Value))
}

// VisitStringLiteralExpressionNode renders the raw literal with its quotes.
func (p *PrintVisitor) VisitStringLiteralExpressionNode(node parser.StringLiteralExpressionNode) {
	p.Buf.WriteString(node.Raw)
}

// VisitNumberLiteralExpressionNode renders the raw literal.
func (p *PrintVisitor) VisitNumberLiteralExpressionNode(node parser.NumberLiteralExpressionNode) {
	p.Buf.WriteString(node.Raw)
}

// VisitNullLiteralExpressionNode renders null.
func (p *PrintVisitor) VisitNullLiteralExpressionNode(node parser.NullLiteralExpressionNode) {
	p.Buf.WriteString("null")
}

// VisitUndefinedLiteralExpressionNode renders "(void 0)".
func (p *PrintVisitor) VisitUndefinedLiteralExpressionNode(node parser.UndefinedLiteralExpressionNode) {
	p.Buf.WriteString("(void 0)")
}

// VisitArrayLiteralExpressionNode renders the initializer, emitting one
// comma between each pair of adjacent slots (Length-1 commas in all) so
// elisions survive; no comma is added after the last slot.
func (p *PrintVisitor) VisitArrayLiteralExpressionNode(node parser.ArrayLiteralExpressionNode) {
	p.Buf.WriteString("[")
	next := 0
	for i := 0; i < node.Length; i++ {
		if i > 0 {
			p.Buf.WriteString(",")
		}
		if next < len(node.Elements) && node.Elements[next].Index == i {
			node.Elements[next].Accept(p.Self)
			next++
		}
	}
	p.Buf.WriteString("]")
}

// VisitArrayElementNode renders the slot's value.
func (p *PrintVisitor) VisitArrayElementNode(node parser.ArrayElementNode) {
	node.Value.Accept(p.Self)
}

// VisitObjectLiteralExpressionNode renders the initializer; literal keys
// print verbatim.
func (p *PrintVisitor) VisitObjectLiteralExpressionNode(node parser.ObjectLiteralExpressionNode) {
	p.Buf.WriteString("{")
	for i, prop := range node.Properties {
		if i > 0 {
			p.Buf.WriteString(", ")
		}
		prop.Accept(p.Self)
	}
	p.Buf.WriteString("}")
}

// VisitPropertyNode renders "name: value".
func (p *PrintVisitor) VisitPropertyNode(node parser.PropertyNode) {
	node.Name.Accept(p.Self)
	p.Buf.WriteString(": ")
	node.Value.Accept(p.Self)
}

// VisitRegExpLiteralExpressionNode renders the raw literal.
func (p *PrintVisitor) VisitRegExpLiteralExpressionNode(node parser.RegExpLiteralExpressionNode) {
	p.Buf.WriteString(node.Raw)
}
