/*
File    : esmix/parser/parser.go
*/

/*
Package parser implements a recursive-descent parser for ECMAScript 5.

The parser converts a stream of tokens from the lexer into an Abstract
Syntax Tree (AST). It handles:
- Expressions (precedence climbing over ten binary levels, assignment,
  conditional, sequence, unary, postfix, new/call/access chains)
- Statements (blocks, control flow, declarations, labels)
- Automatic semicolon insertion driven by NEW_LINE tokens
- The for / for-in ambiguity and the restricted productions
- Context-sensitive regular expression literals

Errors are fatal to the parse: the first lexical or syntax error aborts
parsing, no recovery is attempted, and no partial AST is surfaced. The
collected messages are available through GetErrors for the driver.
*/
package parser

import (
	"fmt"

	"github.com/esmix/esmix/lexer"
)

// pushedToken is a token returned to the parser's push-back buffer together
// with the newline flag that was current when it was first fetched.
type pushedToken struct {
	tok           lexer.Token
	newlineBefore bool
}

// Parser represents the parser state.
// It pulls tokens from the lexer on demand through a small push-back buffer
// and tracks whether a line terminator preceded the most recently fetched
// token, which drives automatic semicolon insertion and the restricted
// productions.
type Parser struct {
	Lex *lexer.Lexer // Lexer instance for tokenizing source code

	// NodeCount is the per-parse node id counter; every constructed node
	// receives the next dense id.
	NodeCount int

	// Collected error messages. The first entry aborts the parse.
	Errors []string

	// inForInit suppresses 'in' as a binary operator while the first part
	// of a for statement is being parsed.
	inForInit bool

	// pushback holds tokens handed back by lookahead, most recent last.
	pushback []pushedToken

	// sawNewline reports whether a line terminator preceded the most
	// recently fetched token.
	sawNewline bool
}

// NewParser creates and initializes a new Parser for the given source code.
// The lexer is built with the default future-reserved policy.
func NewParser(src string) *Parser {
	return NewParserWithLexer(lexer.NewLexer(src, lexer.CareFutureReservedDefault))
}

// NewParserWithLexer creates a Parser reading from an existing lexer; used
// by drivers that configure the lexer themselves.
func NewParserWithLexer(lex *lexer.Lexer) *Parser {
	return &Parser{
		Lex:      lex,
		Errors:   make([]string, 0),
		pushback: make([]pushedToken, 0, 2),
	}
}

// newBase allocates the embedded base of a node, assigning the next dense
// node id.
func (par *Parser) newBase() baseNode {
	id := par.NodeCount
	par.NodeCount++
	return baseNode{id: id}
}

// nextToken returns the next meaningful token. NEW_LINE tokens are consumed
// silently, setting the newline flag for the token they precede. Lexical
// errors surface as an error message and the ERROR token is returned for
// the caller to bail out on.
func (par *Parser) nextToken() lexer.Token {
	if n := len(par.pushback); n > 0 {
		entry := par.pushback[n-1]
		par.pushback = par.pushback[:n-1]
		par.sawNewline = entry.newlineBefore
		return entry.tok
	}
	newline := false
	for {
		tok := par.Lex.NextToken()
		if tok.Type == lexer.NEW_LINE_TYPE {
			newline = true
			continue
		}
		par.sawNewline = newline
		if tok.Type == lexer.ERROR_TYPE {
			par.lexicalError(tok)
		}
		return tok
	}
}

// pushBack returns a token to the buffer, preserving its newline flag.
func (par *Parser) pushBack(tok lexer.Token) {
	par.pushback = append(par.pushback, pushedToken{tok: tok, newlineBefore: par.sawNewline})
}

// peekToken returns the next token without consuming it. After the call the
// newline flag describes the peeked token.
func (par *Parser) peekToken() lexer.Token {
	tok := par.nextToken()
	par.pushBack(tok)
	return tok
}

// isAtNewLineToken reports whether a line terminator preceded the most
// recently fetched token.
func (par *Parser) isAtNewLineToken() bool {
	return par.sawNewline
}

// expect consumes the next token and checks its type. On mismatch an
// unexpected-token error is recorded and ok is false.
func (par *Parser) expect(expected lexer.TokenType) (lexer.Token, bool) {
	tok := par.nextToken()
	if tok.Type != expected {
		par.unexpectedToken(fmt.Sprintf("expected %s", expected), tok)
		return tok, false
	}
	return tok, true
}

// consumeStatementSemicolon terminates a statement. It succeeds when the
// next token is a semicolon (consumed), a closing brace or EOF (left in
// place), or when a newline precedes the next token (automatic semicolon
// insertion). Anything else is an error.
func (par *Parser) consumeStatementSemicolon() bool {
	tok := par.nextToken()
	if tok.Type == lexer.SEMICOLON {
		return true
	}
	if tok.Type == lexer.RIGHT_BRACE || tok.Type == lexer.EOF_TYPE {
		par.pushBack(tok)
		return true
	}
	if par.isAtNewLineToken() {
		par.pushBack(tok)
		return true
	}
	par.unexpectedToken("expected ;", tok)
	return false
}

// addError records an error message. Errors are fatal to the parse, so
// only the first is kept; later messages would describe confusion caused
// by the first.
func (par *Parser) addError(msg string) {
	if par.HasErrors() {
		return
	}
	par.Errors = append(par.Errors, msg)
}

// unexpectedToken records a syntax error in the diagnostic form
// "unexpected token: <context>. <KIND> (<pos>): <value>".
func (par *Parser) unexpectedToken(context string, tok lexer.Token) {
	par.addError(fmt.Sprintf("unexpected token: %s. %s", context, tok.String()))
}

// syntaxError records a non-token-shaped syntax error (bad for-in target,
// duplicate default, try without handlers, ...) anchored at a token.
func (par *Parser) syntaxError(context string, tok lexer.Token) {
	par.addError(fmt.Sprintf("syntax error: %s. %s", context, tok.String()))
}

// lexicalError records a lexical error carried by an ERROR token.
func (par *Parser) lexicalError(tok lexer.Token) {
	par.addError(fmt.Sprintf("lexical error: %s. ERROR (%d)", tok.Literal, tok.Pos))
}

// HasErrors returns true if there are parsing errors.
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0
}

// GetErrors returns all error messages collected during parsing.
func (par *Parser) GetErrors() []string {
	return par.Errors
}

// Parse is the main parsing function that converts source code into an AST.
// It parses statements until end of file and returns the program node, or
// nil when any error occurred (no partial AST is surfaced).
func (par *Parser) Parse() *ProgramNode {
	program := &ProgramNode{baseNode: par.newBase()}
	program.Body = make([]StatementNode, 0)

	for !par.HasErrors() {
		tok := par.peekToken()
		if tok.Type == lexer.EOF_TYPE {
			break
		}
		stmt := par.parseStatement()
		if stmt == nil {
			break
		}
		program.Body = append(program.Body, stmt)
	}

	if par.HasErrors() {
		return nil
	}
	return program
}
