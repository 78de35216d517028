/*
File    : esmix/parser/parser_expressions.go
*/
package parser

import (
	"github.com/esmix/esmix/lexer"
)

// BINARY_PRECEDENCE maps binary operator tokens to their precedence level.
// Level 1 binds loosest (||), level 10 tightest (* / %). All levels are
// left-associative.
var BINARY_PRECEDENCE = map[lexer.TokenType]int{
	lexer.OR_OP:          1,
	lexer.AND_OP:         2,
	lexer.BIT_OR_OP:      3,
	lexer.BIT_XOR_OP:     4,
	lexer.BIT_AND_OP:     5,
	lexer.EQ_OP:          6,
	lexer.NE_OP:          6,
	lexer.STRICT_EQ_OP:   6,
	lexer.STRICT_NE_OP:   6,
	lexer.LT_OP:          7,
	lexer.GT_OP:          7,
	lexer.LE_OP:          7,
	lexer.GE_OP:          7,
	lexer.INSTANCEOF_KEY: 7,
	lexer.IN_KEY:         7,
	lexer.BIT_LEFT_OP:    8,
	lexer.BIT_RIGHT_OP:   8,
	lexer.BIT_URIGHT_OP:  8,
	lexer.PLUS_OP:        9,
	lexer.MINUS_OP:       9,
	lexer.MUL_OP:         10,
	lexer.DIV_OP:         10,
	lexer.MOD_OP:         10,
}

// MAX_PRECEDENCE is the tightest binary level; above it the climber hands
// over to the unary grammar.
const MAX_PRECEDENCE = 10

// ASSIGNMENT_OPERATORS maps assignment tokens to the operator stored on the
// assignment node: "" for plain '=', the bare operator (trailing '='
// dropped) for compound assignments.
var ASSIGNMENT_OPERATORS = map[lexer.TokenType]string{
	lexer.ASSIGN_OP:         "",
	lexer.MUL_ASSIGN:        "*",
	lexer.DIV_ASSIGN:        "/",
	lexer.MOD_ASSIGN:        "%",
	lexer.PLUS_ASSIGN:       "+",
	lexer.MINUS_ASSIGN:      "-",
	lexer.BIT_LEFT_ASSIGN:   "<<",
	lexer.BIT_RIGHT_ASSIGN:  ">>",
	lexer.BIT_URIGHT_ASSIGN: ">>>",
	lexer.BIT_AND_ASSIGN:    "&",
	lexer.BIT_XOR_ASSIGN:    "^",
	lexer.BIT_OR_ASSIGN:     "|",
}

// parseExpression parses a full expression including the comma operator.
func (par *Parser) parseExpression() ExpressionNode {
	expr := par.parseAssignExpression()
	if expr == nil {
		return nil
	}
	if par.peekToken().Type != lexer.COMMA_DELIM {
		return expr
	}
	seq := &SequenceExpressionNode{baseNode: par.newBase()}
	seq.Expressions = []ExpressionNode{expr}
	for par.peekToken().Type == lexer.COMMA_DELIM {
		par.nextToken()
		next := par.parseAssignExpression()
		if next == nil {
			return nil
		}
		seq.Expressions = append(seq.Expressions, next)
	}
	return seq
}

// parseAssignExpression parses a right-associative assignment expression.
// The target must be a variable use or a property access.
func (par *Parser) parseAssignExpression() ExpressionNode {
	lhs := par.parseConditionalExpression()
	if lhs == nil {
		return nil
	}
	tok := par.peekToken()
	op, isAssign := ASSIGNMENT_OPERATORS[tok.Type]
	if !isAssign {
		return lhs
	}
	par.nextToken()
	switch lhs.(type) {
	case *IdentifierExpressionNode, *PropertyAccessExpressionNode:
	default:
		par.syntaxError("bad assignment target", tok)
		return nil
	}
	rhs := par.parseAssignExpression()
	if rhs == nil {
		return nil
	}
	return &AssignmentExpressionNode{baseNode: par.newBase(), Target: lhs, Operator: op, Value: rhs}
}

// parseConditionalExpression parses the ternary "cond ? then : else".
func (par *Parser) parseConditionalExpression() ExpressionNode {
	cond := par.parseBinaryExpression(1)
	if cond == nil {
		return nil
	}
	if par.peekToken().Type != lexer.QUESTION_OP {
		return cond
	}
	par.nextToken()
	then := par.parseAssignExpression()
	if then == nil {
		return nil
	}
	if _, ok := par.expect(lexer.COLON_DELIM); !ok {
		return nil
	}
	els := par.parseAssignExpression()
	if els == nil {
		return nil
	}
	return &ConditionalExpressionNode{baseNode: par.newBase(), Condition: cond, Then: then, Else: els}
}

// parseBinaryExpression is the precedence climber over levels 1..10. While
// the first part of a for statement is being parsed, 'in' is not consumed
// as a binary operator.
func (par *Parser) parseBinaryExpression(level int) ExpressionNode {
	if level > MAX_PRECEDENCE {
		return par.parseUnaryExpression()
	}
	lhs := par.parseBinaryExpression(level + 1)
	if lhs == nil {
		return nil
	}
	for {
		tok := par.peekToken()
		opLevel, isOp := BINARY_PRECEDENCE[tok.Type]
		if !isOp || opLevel != level {
			return lhs
		}
		if tok.Type == lexer.IN_KEY && par.inForInit {
			return lhs
		}
		par.nextToken()
		rhs := par.parseBinaryExpression(level + 1)
		if rhs == nil {
			return nil
		}
		lhs = &BinaryExpressionNode{baseNode: par.newBase(), Operator: tok.Literal, Left: lhs, Right: rhs}
	}
}

// parseUnaryExpression parses prefix operators. Word operators and '~'/'!'
// keep their literal spelling; '+', '-', '++', '--' are stored with a
// "prefix" marker so later passes can tell them from the binary and
// postfix forms.
func (par *Parser) parseUnaryExpression() ExpressionNode {
	tok := par.peekToken()
	switch tok.Type {
	case lexer.DELETE_KEY, lexer.VOID_KEY, lexer.TYPEOF_KEY, lexer.BIT_NOT_OP, lexer.NOT_OP:
		par.nextToken()
		operand := par.parseUnaryExpression()
		if operand == nil {
			return nil
		}
		return &PrefixExpressionNode{baseNode: par.newBase(), Operator: tok.Literal, Operand: operand}
	case lexer.INCR_OP, lexer.DECR_OP, lexer.PLUS_OP, lexer.MINUS_OP:
		par.nextToken()
		operand := par.parseUnaryExpression()
		if operand == nil {
			return nil
		}
		return &PrefixExpressionNode{baseNode: par.newBase(), Operator: "prefix" + tok.Literal, Operand: operand}
	}
	return par.parsePostfixExpression()
}

// parsePostfixExpression parses a left-hand-side expression and attaches a
// postfix ++/-- only when no newline precedes it (restricted production).
func (par *Parser) parsePostfixExpression() ExpressionNode {
	expr := par.parseLeftHandSideExpression()
	if expr == nil {
		return nil
	}
	tok := par.peekToken()
	if (tok.Type == lexer.INCR_OP || tok.Type == lexer.DECR_OP) && !par.isAtNewLineToken() {
		par.nextToken()
		return &PostfixExpressionNode{baseNode: par.newBase(), Operator: tok.Literal, Operand: expr}
	}
	return expr
}

// parseLeftHandSideExpression parses new expressions, calls, and access
// chains. All leading 'new' tokens are counted first; each pending 'new'
// captures an argument list only if a '(' shows up before any call parens,
// access chains extend the current target, and once all 'new's are matched
// further parens become calls on the outermost expression. Pending 'new's
// left at the end take empty argument lists.
func (par *Parser) parseLeftHandSideExpression() ExpressionNode {
	newCount := 0
	for par.peekToken().Type == lexer.NEW_KEY {
		par.nextToken()
		newCount++
	}

	expr := par.parsePrimaryExpression()
	if expr == nil {
		return nil
	}

loop:
	for {
		tok := par.peekToken()
		switch tok.Type {
		case lexer.LEFT_BRACKET:
			par.nextToken()
			saved := par.inForInit
			par.inForInit = false
			selector := par.parseExpression()
			par.inForInit = saved
			if selector == nil {
				return nil
			}
			if _, ok := par.expect(lexer.RIGHT_BRACKET); !ok {
				return nil
			}
			expr = &PropertyAccessExpressionNode{baseNode: par.newBase(), Receiver: expr, Selector: selector}
		case lexer.DOT_OP:
			// a.b is normalized to a["b"].
			par.nextToken()
			nameTok, ok := par.expect(lexer.IDENTIFIER_ID)
			if !ok {
				return nil
			}
			selector := &StringLiteralExpressionNode{baseNode: par.newBase(), Raw: "\"" + nameTok.Literal + "\""}
			expr = &PropertyAccessExpressionNode{baseNode: par.newBase(), Receiver: expr, Selector: selector}
		case lexer.LEFT_PAREN:
			args, ok := par.parseArguments()
			if !ok {
				return nil
			}
			if newCount > 0 {
				expr = &NewExpressionNode{baseNode: par.newBase(), Target: expr, Arguments: args}
				newCount--
			} else {
				expr = &CallExpressionNode{baseNode: par.newBase(), Target: expr, Arguments: args}
			}
		default:
			break loop
		}
	}

	for newCount > 0 {
		expr = &NewExpressionNode{baseNode: par.newBase(), Target: expr, Arguments: make([]ExpressionNode, 0)}
		newCount--
	}
	return expr
}

// parseArguments parses a parenthesized, comma-separated argument list.
func (par *Parser) parseArguments() ([]ExpressionNode, bool) {
	if _, ok := par.expect(lexer.LEFT_PAREN); !ok {
		return nil, false
	}
	saved := par.inForInit
	par.inForInit = false
	defer func() { par.inForInit = saved }()

	args := make([]ExpressionNode, 0)
	if par.peekToken().Type == lexer.RIGHT_PAREN {
		par.nextToken()
		return args, true
	}
	for {
		arg := par.parseAssignExpression()
		if arg == nil {
			return nil, false
		}
		args = append(args, arg)
		tok := par.nextToken()
		if tok.Type == lexer.COMMA_DELIM {
			continue
		}
		if tok.Type == lexer.RIGHT_PAREN {
			return args, true
		}
		par.unexpectedToken("expected , or )", tok)
		return nil, false
	}
}
