/*
File    : esmix/parser/parser_statements.go
*/
package parser

import (
	"github.com/esmix/esmix/lexer"
)

// parseStatement parses a single statement, dispatching on the next token.
// Returns nil after recording an error.
func (par *Parser) parseStatement() StatementNode {
	tok := par.nextToken()

	switch tok.Type {
	case lexer.LEFT_BRACE:
		return par.parseBlockRest()
	case lexer.SEMICOLON:
		return &EmptyStatementNode{baseNode: par.newBase()}
	case lexer.VAR_KEY:
		list := par.parseVariableDeclarationList()
		if list == nil {
			return nil
		}
		if !par.consumeStatementSemicolon() {
			return nil
		}
		return &ExpressionStatementNode{baseNode: par.newBase(), Expr: list}
	case lexer.IF_KEY:
		return par.parseIfStatement()
	case lexer.FOR_KEY:
		return par.parseForStatement()
	case lexer.WHILE_KEY:
		return par.parseWhileStatement()
	case lexer.DO_KEY:
		return par.parseDoWhileStatement()
	case lexer.CONTINUE_KEY:
		label := par.parseOptionalLabel()
		if !par.consumeStatementSemicolon() {
			return nil
		}
		return &ContinueStatementNode{baseNode: par.newBase(), Label: label}
	case lexer.BREAK_KEY:
		label := par.parseOptionalLabel()
		if !par.consumeStatementSemicolon() {
			return nil
		}
		return &BreakStatementNode{baseNode: par.newBase(), Label: label}
	case lexer.RETURN_KEY:
		return par.parseReturnStatement()
	case lexer.THROW_KEY:
		return par.parseThrowStatement()
	case lexer.TRY_KEY:
		return par.parseTryStatement(tok)
	case lexer.WITH_KEY:
		return par.parseWithStatement()
	case lexer.SWITCH_KEY:
		return par.parseSwitchStatement()
	case lexer.FUNCTION_KEY:
		return par.parseFunctionDeclaration()
	case lexer.IDENTIFIER_ID:
		// "name :" starts a labeled statement, anything else is an
		// expression statement beginning with the identifier.
		tokNewline := par.sawNewline
		next := par.nextToken()
		if next.Type == lexer.COLON_DELIM {
			body := par.parseStatement()
			if body == nil {
				return nil
			}
			return &LabeledStatementNode{baseNode: par.newBase(), Label: tok.Literal, Body: body}
		}
		par.pushBack(next)
		par.sawNewline = tokNewline
		par.pushBack(tok)
		return par.parseExpressionStatement()
	case lexer.EOF_TYPE, lexer.ERROR_TYPE:
		if !par.HasErrors() {
			par.unexpectedToken("expected statement", tok)
		}
		return nil
	default:
		par.pushBack(tok)
		return par.parseExpressionStatement()
	}
}

// parseBlockRest parses the statements of a block whose opening brace has
// already been consumed.
func (par *Parser) parseBlockRest() *BlockStatementNode {
	block := &BlockStatementNode{baseNode: par.newBase()}
	block.Statements = make([]StatementNode, 0)
	for {
		tok := par.peekToken()
		if tok.Type == lexer.RIGHT_BRACE {
			par.nextToken()
			return block
		}
		if tok.Type == lexer.EOF_TYPE {
			par.unexpectedToken("expected }", tok)
			return nil
		}
		stmt := par.parseStatement()
		if stmt == nil {
			return nil
		}
		block.Statements = append(block.Statements, stmt)
	}
}

// parseExpressionStatement parses an expression followed by a statement
// terminator.
func (par *Parser) parseExpressionStatement() StatementNode {
	expr := par.parseExpression()
	if expr == nil {
		return nil
	}
	if !par.consumeStatementSemicolon() {
		return nil
	}
	return &ExpressionStatementNode{baseNode: par.newBase(), Expr: expr}
}

// parseIfStatement parses the remainder of an if statement. An absent else
// branch is stored as an empty statement.
func (par *Parser) parseIfStatement() StatementNode {
	if _, ok := par.expect(lexer.LEFT_PAREN); !ok {
		return nil
	}
	cond := par.parseExpression()
	if cond == nil {
		return nil
	}
	if _, ok := par.expect(lexer.RIGHT_PAREN); !ok {
		return nil
	}
	then := par.parseStatement()
	if then == nil {
		return nil
	}
	var elseStmt StatementNode
	if par.peekToken().Type == lexer.ELSE_KEY {
		par.nextToken()
		elseStmt = par.parseStatement()
		if elseStmt == nil {
			return nil
		}
	} else {
		elseStmt = &EmptyStatementNode{baseNode: par.newBase()}
	}
	return &IfStatementNode{baseNode: par.newBase(), Condition: cond, Then: then, Else: elseStmt}
}

// parseForStatement parses both loop forms behind the 'for' keyword. The
// first part is read optimistically (a var list or an expression in
// for-init mode, where 'in' is not a binary operator), then the separator
// decides between the classic three-part loop and for-in enumeration.
func (par *Parser) parseForStatement() StatementNode {
	if _, ok := par.expect(lexer.LEFT_PAREN); !ok {
		return nil
	}

	var init ExpressionNode
	isVarList := false
	first := par.peekToken()
	switch first.Type {
	case lexer.SEMICOLON:
		init = nil
	case lexer.VAR_KEY:
		par.nextToken()
		par.inForInit = true
		list := par.parseVariableDeclarationList()
		par.inForInit = false
		if list == nil {
			return nil
		}
		init = list
		isVarList = true
	default:
		par.inForInit = true
		init = par.parseExpression()
		par.inForInit = false
		if init == nil {
			return nil
		}
	}

	sep := par.nextToken()
	switch sep.Type {
	case lexer.SEMICOLON:
		return par.parseClassicForRest(init)
	case lexer.IN_KEY:
		if init == nil {
			par.syntaxError("for-in requires a loop variable", sep)
			return nil
		}
		if isVarList {
			list := init.(*VariableDeclarationListNode)
			if len(list.Declarations) != 1 {
				par.syntaxError("for-in allows a single variable declaration", sep)
				return nil
			}
		} else {
			switch init.(type) {
			case *IdentifierExpressionNode, *PropertyAccessExpressionNode:
			default:
				par.syntaxError("bad for-in loop target", sep)
				return nil
			}
		}
		obj := par.parseExpression()
		if obj == nil {
			return nil
		}
		if _, ok := par.expect(lexer.RIGHT_PAREN); !ok {
			return nil
		}
		body := par.parseStatement()
		if body == nil {
			return nil
		}
		return &ForInStatementNode{baseNode: par.newBase(), Lhs: init, Object: obj, Body: body}
	default:
		par.unexpectedToken("expected ; or in", sep)
		return nil
	}
}

// parseClassicForRest parses "cond; update) body" of a three-part for loop.
// A missing condition defaults to the literal true.
func (par *Parser) parseClassicForRest(init ExpressionNode) StatementNode {
	var cond ExpressionNode
	if par.peekToken().Type == lexer.SEMICOLON {
		par.nextToken()
		cond = &BooleanLiteralExpressionNode{baseNode: par.newBase(), Value: true}
	} else {
		cond = par.parseExpression()
		if cond == nil {
			return nil
		}
		if _, ok := par.expect(lexer.SEMICOLON); !ok {
			return nil
		}
	}

	var update ExpressionNode
	if par.peekToken().Type == lexer.RIGHT_PAREN {
		par.nextToken()
	} else {
		update = par.parseExpression()
		if update == nil {
			return nil
		}
		if _, ok := par.expect(lexer.RIGHT_PAREN); !ok {
			return nil
		}
	}

	body := par.parseStatement()
	if body == nil {
		return nil
	}
	return &ForStatementNode{baseNode: par.newBase(), Init: init, Condition: cond, Update: update, Body: body}
}

// parseWhileStatement parses the remainder of a while loop.
func (par *Parser) parseWhileStatement() StatementNode {
	if _, ok := par.expect(lexer.LEFT_PAREN); !ok {
		return nil
	}
	cond := par.parseExpression()
	if cond == nil {
		return nil
	}
	if _, ok := par.expect(lexer.RIGHT_PAREN); !ok {
		return nil
	}
	body := par.parseStatement()
	if body == nil {
		return nil
	}
	return &WhileStatementNode{baseNode: par.newBase(), Condition: cond, Body: body}
}

// parseDoWhileStatement parses the remainder of a do-while loop.
func (par *Parser) parseDoWhileStatement() StatementNode {
	body := par.parseStatement()
	if body == nil {
		return nil
	}
	if _, ok := par.expect(lexer.WHILE_KEY); !ok {
		return nil
	}
	if _, ok := par.expect(lexer.LEFT_PAREN); !ok {
		return nil
	}
	cond := par.parseExpression()
	if cond == nil {
		return nil
	}
	if _, ok := par.expect(lexer.RIGHT_PAREN); !ok {
		return nil
	}
	if !par.consumeStatementSemicolon() {
		return nil
	}
	return &DoWhileStatementNode{baseNode: par.newBase(), Body: body, Condition: cond}
}

// parseOptionalLabel reads the label of a continue/break statement. The
// label must start on the same line as the keyword (restricted production).
func (par *Parser) parseOptionalLabel() string {
	tok := par.peekToken()
	if tok.Type == lexer.IDENTIFIER_ID && !par.isAtNewLineToken() {
		par.nextToken()
		return tok.Literal
	}
	return ""
}

// parseReturnStatement parses the remainder of a return statement. When a
// newline precedes the next token, or the statement ends immediately, the
// return value is the undefined literal. The statement terminator rule is
// applied uniformly in both branches.
func (par *Parser) parseReturnStatement() StatementNode {
	tok := par.peekToken()
	var value ExpressionNode
	if par.isAtNewLineToken() || tok.Type == lexer.SEMICOLON ||
		tok.Type == lexer.RIGHT_BRACE || tok.Type == lexer.EOF_TYPE {
		value = &UndefinedLiteralExpressionNode{baseNode: par.newBase()}
	} else {
		value = par.parseExpression()
		if value == nil {
			return nil
		}
	}
	if !par.consumeStatementSemicolon() {
		return nil
	}
	return &ReturnStatementNode{baseNode: par.newBase(), Value: value}
}

// parseThrowStatement parses the remainder of a throw statement. A newline
// between 'throw' and its expression is an error (restricted production).
func (par *Parser) parseThrowStatement() StatementNode {
	tok := par.peekToken()
	if par.isAtNewLineToken() {
		par.unexpectedToken("no newline allowed after throw", tok)
		return nil
	}
	expr := par.parseExpression()
	if expr == nil {
		return nil
	}
	if !par.consumeStatementSemicolon() {
		return nil
	}
	return &ThrowStatementNode{baseNode: par.newBase(), Expr: expr}
}

// parseTryStatement parses the remainder of a try statement. At least one
// of catch/finally must be present.
func (par *Parser) parseTryStatement(tryTok lexer.Token) StatementNode {
	if _, ok := par.expect(lexer.LEFT_BRACE); !ok {
		return nil
	}
	body := par.parseBlockRest()
	if body == nil {
		return nil
	}

	var catch *CatchClauseNode
	var finally *BlockStatementNode

	if par.peekToken().Type == lexer.CATCH_KEY {
		par.nextToken()
		if _, ok := par.expect(lexer.LEFT_PAREN); !ok {
			return nil
		}
		nameTok, ok := par.expect(lexer.IDENTIFIER_ID)
		if !ok {
			return nil
		}
		param := &ParameterNode{baseNode: par.newBase(), Name: nameTok.Literal}
		if _, ok := par.expect(lexer.RIGHT_PAREN); !ok {
			return nil
		}
		if _, ok := par.expect(lexer.LEFT_BRACE); !ok {
			return nil
		}
		catchBody := par.parseBlockRest()
		if catchBody == nil {
			return nil
		}
		catch = &CatchClauseNode{baseNode: par.newBase(), Param: param, Body: catchBody}
	}

	if par.peekToken().Type == lexer.FINALLY_KEY {
		par.nextToken()
		if _, ok := par.expect(lexer.LEFT_BRACE); !ok {
			return nil
		}
		finally = par.parseBlockRest()
		if finally == nil {
			return nil
		}
	}

	if catch == nil && finally == nil {
		par.syntaxError("try requires catch or finally", tryTok)
		return nil
	}
	return &TryStatementNode{baseNode: par.newBase(), Body: body, Catch: catch, Finally: finally}
}

// parseWithStatement parses the remainder of a with statement.
func (par *Parser) parseWithStatement() StatementNode {
	if _, ok := par.expect(lexer.LEFT_PAREN); !ok {
		return nil
	}
	obj := par.parseExpression()
	if obj == nil {
		return nil
	}
	if _, ok := par.expect(lexer.RIGHT_PAREN); !ok {
		return nil
	}
	body := par.parseStatement()
	if body == nil {
		return nil
	}
	return &WithStatementNode{baseNode: par.newBase(), Object: obj, Body: body}
}

// parseSwitchStatement parses the remainder of a switch statement. Clauses
// alternate case/default with at most one default; each clause's statements
// are wrapped in a block node.
func (par *Parser) parseSwitchStatement() StatementNode {
	if _, ok := par.expect(lexer.LEFT_PAREN); !ok {
		return nil
	}
	key := par.parseExpression()
	if key == nil {
		return nil
	}
	if _, ok := par.expect(lexer.RIGHT_PAREN); !ok {
		return nil
	}
	if _, ok := par.expect(lexer.LEFT_BRACE); !ok {
		return nil
	}

	cases := make([]SwitchClauseNode, 0)
	haveDefault := false
	for {
		tok := par.nextToken()
		switch tok.Type {
		case lexer.RIGHT_BRACE:
			return &SwitchStatementNode{baseNode: par.newBase(), Key: key, Cases: cases}
		case lexer.CASE_KEY:
			expr := par.parseExpression()
			if expr == nil {
				return nil
			}
			if _, ok := par.expect(lexer.COLON_DELIM); !ok {
				return nil
			}
			body := par.parseSwitchClauseBody()
			if body == nil {
				return nil
			}
			cases = append(cases, &CaseClauseNode{baseNode: par.newBase(), Expr: expr, Body: body})
		case lexer.DEFAULT_KEY:
			if haveDefault {
				par.syntaxError("duplicate default clause", tok)
				return nil
			}
			haveDefault = true
			if _, ok := par.expect(lexer.COLON_DELIM); !ok {
				return nil
			}
			body := par.parseSwitchClauseBody()
			if body == nil {
				return nil
			}
			cases = append(cases, &DefaultClauseNode{baseNode: par.newBase(), Body: body})
		default:
			par.unexpectedToken("expected case, default or }", tok)
			return nil
		}
	}
}

// parseSwitchClauseBody collects the statements of one switch clause into
// a block, stopping in front of the next clause or the closing brace.
func (par *Parser) parseSwitchClauseBody() *BlockStatementNode {
	block := &BlockStatementNode{baseNode: par.newBase()}
	block.Statements = make([]StatementNode, 0)
	for {
		tok := par.peekToken()
		if tok.Type == lexer.CASE_KEY || tok.Type == lexer.DEFAULT_KEY ||
			tok.Type == lexer.RIGHT_BRACE {
			return block
		}
		if tok.Type == lexer.EOF_TYPE {
			par.unexpectedToken("expected case, default or }", tok)
			return nil
		}
		stmt := par.parseStatement()
		if stmt == nil {
			return nil
		}
		block.Statements = append(block.Statements, stmt)
	}
}

// parseFunctionDeclaration parses a function declaration at statement
// position; the name is required.
func (par *Parser) parseFunctionDeclaration() StatementNode {
	nameTok, ok := par.expect(lexer.IDENTIFIER_ID)
	if !ok {
		return nil
	}
	name := &VariableDeclarationNode{baseNode: par.newBase(), Name: nameTok.Literal}
	fun := par.parseFunctionRest()
	if fun == nil {
		return nil
	}
	return &FunctionDeclarationNode{baseNode: par.newBase(), Name: name, Function: fun}
}

// parseVariableDeclarationList parses "name [= expr] , ..." behind a 'var'
// keyword. The statement terminator is left to the caller, so the same
// production serves statements and for-loop initializers.
func (par *Parser) parseVariableDeclarationList() *VariableDeclarationListNode {
	list := &VariableDeclarationListNode{baseNode: par.newBase()}
	list.Declarations = make([]*VariableInitializationNode, 0)
	for {
		nameTok, ok := par.expect(lexer.IDENTIFIER_ID)
		if !ok {
			return nil
		}
		decl := &VariableDeclarationNode{baseNode: par.newBase(), Name: nameTok.Literal}
		var value ExpressionNode
		if par.peekToken().Type == lexer.ASSIGN_OP {
			par.nextToken()
			value = par.parseAssignExpression()
			if value == nil {
				return nil
			}
		}
		init := &VariableInitializationNode{baseNode: par.newBase(), Decl: decl, Value: value}
		list.Declarations = append(list.Declarations, init)

		if par.peekToken().Type != lexer.COMMA_DELIM {
			return list
		}
		par.nextToken()
	}
}
