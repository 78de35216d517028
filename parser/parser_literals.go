/*
File    : esmix/parser/parser_literals.go
*/
package parser

import (
	"github.com/esmix/esmix/lexer"
)

// parsePrimaryExpression parses the leaves of the expression grammar:
// identifiers, keywords with literal meaning, literals, parenthesized
// expressions, array and object initializers, function expressions, and
// regular expressions (requested from the lexer when a '/' or '/=' shows
// up where an expression must start).
func (par *Parser) parsePrimaryExpression() ExpressionNode {
	tok := par.nextToken()
	switch tok.Type {
	case lexer.IDENTIFIER_ID:
		return &IdentifierExpressionNode{baseNode: par.newBase(), Name: tok.Literal}
	case lexer.THIS_KEY:
		return &ThisExpressionNode{baseNode: par.newBase()}
	case lexer.NULL_KEY:
		return &NullLiteralExpressionNode{baseNode: par.newBase()}
	case lexer.TRUE_KEY:
		return &BooleanLiteralExpressionNode{baseNode: par.newBase(), Value: true}
	case lexer.FALSE_KEY:
		return &BooleanLiteralExpressionNode{baseNode: par.newBase(), Value: false}
	case lexer.NUMBER_LIT:
		return &NumberLiteralExpressionNode{baseNode: par.newBase(), Raw: tok.Literal}
	case lexer.STRING_LIT:
		return &StringLiteralExpressionNode{baseNode: par.newBase(), Raw: tok.Literal}
	case lexer.DIV_OP, lexer.DIV_ASSIGN:
		// A slash in expression position is a regular expression; re-lex
		// from the slash.
		regex := par.Lex.LexRegExp(tok.Pos)
		if regex.Type == lexer.ERROR_TYPE {
			par.lexicalError(regex)
			return nil
		}
		return &RegExpLiteralExpressionNode{baseNode: par.newBase(), Raw: regex.Literal}
	case lexer.FUNCTION_KEY:
		return par.parseFunctionExpression()
	case lexer.LEFT_PAREN:
		saved := par.inForInit
		par.inForInit = false
		expr := par.parseExpression()
		par.inForInit = saved
		if expr == nil {
			return nil
		}
		if _, ok := par.expect(lexer.RIGHT_PAREN); !ok {
			return nil
		}
		return expr
	case lexer.LEFT_BRACKET:
		return par.parseArrayLiteralRest()
	case lexer.LEFT_BRACE:
		return par.parseObjectLiteralRest()
	default:
		par.unexpectedToken("expected expression", tok)
		return nil
	}
}

// parseFunctionExpression parses a function expression behind the consumed
// 'function' keyword. The name is optional; a named function expression
// gets its own node so the resolver can scope the name to the function
// body.
func (par *Parser) parseFunctionExpression() ExpressionNode {
	if par.peekToken().Type == lexer.IDENTIFIER_ID {
		nameTok := par.nextToken()
		name := &VariableDeclarationNode{baseNode: par.newBase(), Name: nameTok.Literal}
		fun := par.parseFunctionRest()
		if fun == nil {
			return nil
		}
		return &NamedFunctionExpressionNode{baseNode: par.newBase(), Name: name, Function: fun}
	}
	return par.parseFunctionRest()
}

// parseFunctionRest parses "(params) { body }" shared by declarations and
// expressions; returns nil after recording an error.
func (par *Parser) parseFunctionRest() *FunctionLiteralNode {
	if _, ok := par.expect(lexer.LEFT_PAREN); !ok {
		return nil
	}
	params := make([]*ParameterNode, 0)
	if par.peekToken().Type == lexer.RIGHT_PAREN {
		par.nextToken()
	} else {
		for {
			nameTok, ok := par.expect(lexer.IDENTIFIER_ID)
			if !ok {
				return nil
			}
			params = append(params, &ParameterNode{baseNode: par.newBase(), Name: nameTok.Literal})
			tok := par.nextToken()
			if tok.Type == lexer.COMMA_DELIM {
				continue
			}
			if tok.Type == lexer.RIGHT_PAREN {
				break
			}
			par.unexpectedToken("expected , or )", tok)
			return nil
		}
	}
	if _, ok := par.expect(lexer.LEFT_BRACE); !ok {
		return nil
	}
	body := par.parseBlockRest()
	if body == nil {
		return nil
	}
	return &FunctionLiteralNode{baseNode: par.newBase(), Parameters: params, Body: body}
}

// parseArrayLiteralRest parses an array initializer behind the consumed
// '['. Commas separate slots; a slot without an expression is an elision
// and contributes to the length without producing an element. A trailing
// comma is uncounted only after a non-elision element, so "[a,]" has
// length 1 while "[,]" has length 2.
func (par *Parser) parseArrayLiteralRest() ExpressionNode {
	array := &ArrayLiteralExpressionNode{baseNode: par.newBase()}
	array.Elements = make([]*ArrayElementNode, 0)

	if par.peekToken().Type == lexer.RIGHT_BRACKET {
		par.nextToken()
		return array
	}
	for {
		if par.peekToken().Type == lexer.COMMA_DELIM {
			// Elided slot, terminated by its comma.
			par.nextToken()
			array.Length++
			if par.peekToken().Type == lexer.RIGHT_BRACKET {
				par.nextToken()
				array.Length++
				return array
			}
			continue
		}

		value := par.parseAssignExpression()
		if value == nil {
			return nil
		}
		elem := &ArrayElementNode{baseNode: par.newBase(), Index: array.Length, Value: value}
		array.Elements = append(array.Elements, elem)
		array.Length++

		tok := par.nextToken()
		if tok.Type == lexer.COMMA_DELIM {
			if par.peekToken().Type == lexer.RIGHT_BRACKET {
				par.nextToken()
				return array
			}
			continue
		}
		if tok.Type == lexer.RIGHT_BRACKET {
			return array
		}
		par.unexpectedToken("expected , or ]", tok)
		return nil
	}
}

// parseObjectLiteralRest parses an object initializer behind the consumed
// '{'. Keys are identifiers (promoted to quoted string literals), strings,
// or numbers.
func (par *Parser) parseObjectLiteralRest() ExpressionNode {
	object := &ObjectLiteralExpressionNode{baseNode: par.newBase()}
	object.Properties = make([]*PropertyNode, 0)

	if par.peekToken().Type == lexer.RIGHT_BRACE {
		par.nextToken()
		return object
	}
	for {
		keyTok := par.nextToken()
		var name ExpressionNode
		switch keyTok.Type {
		case lexer.IDENTIFIER_ID:
			name = &StringLiteralExpressionNode{baseNode: par.newBase(), Raw: "\"" + keyTok.Literal + "\""}
		case lexer.STRING_LIT:
			name = &StringLiteralExpressionNode{baseNode: par.newBase(), Raw: keyTok.Literal}
		case lexer.NUMBER_LIT:
			name = &NumberLiteralExpressionNode{baseNode: par.newBase(), Raw: keyTok.Literal}
		default:
			par.unexpectedToken("expected property name", keyTok)
			return nil
		}
		if _, ok := par.expect(lexer.COLON_DELIM); !ok {
			return nil
		}
		value := par.parseAssignExpression()
		if value == nil {
			return nil
		}
		object.Properties = append(object.Properties, &PropertyNode{baseNode: par.newBase(), Name: name, Value: value})

		tok := par.nextToken()
		if tok.Type == lexer.COMMA_DELIM {
			continue
		}
		if tok.Type == lexer.RIGHT_BRACE {
			return object
		}
		par.unexpectedToken("expected , or }", tok)
		return nil
	}
}
