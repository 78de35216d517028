/*
File    : esmix/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// lexAll is a test helper that tokenizes an entire source string with the
// default future-reserved policy.
func lexAll(src string) []Token {
	lex := NewLexer(src, CareFutureReservedDefault)
	return lex.ConsumeTokens()
}

// types projects a token slice to its token types.
func types(tokens []Token) []TokenType {
	result := make([]TokenType, 0, len(tokens))
	for _, tok := range tokens {
		result = append(result, tok.Type)
	}
	return result
}

func TestLexer_NextToken_Punctuators(t *testing.T) {
	tokens := lexAll("{ } ( ) [ ] ; , . : ? ~")
	assert.Equal(t, []TokenType{
		LEFT_BRACE, RIGHT_BRACE, LEFT_PAREN, RIGHT_PAREN,
		LEFT_BRACKET, RIGHT_BRACKET, SEMICOLON, COMMA_DELIM,
		DOT_OP, COLON_DELIM, QUESTION_OP, BIT_NOT_OP,
	}, types(tokens))
}

func TestLexer_NextToken_MaximalMunch(t *testing.T) {
	tokens := lexAll(">>>= >>> >>= >> >= > <<= << <= < === == = !== != ! ++ += + -- -= - && &= & || |= | ^= ^ %= % *= *")
	assert.Equal(t, []TokenType{
		BIT_URIGHT_ASSIGN, BIT_URIGHT_OP, BIT_RIGHT_ASSIGN, BIT_RIGHT_OP, GE_OP, GT_OP,
		BIT_LEFT_ASSIGN, BIT_LEFT_OP, LE_OP, LT_OP,
		STRICT_EQ_OP, EQ_OP, ASSIGN_OP,
		STRICT_NE_OP, NE_OP, NOT_OP,
		INCR_OP, PLUS_ASSIGN, PLUS_OP,
		DECR_OP, MINUS_ASSIGN, MINUS_OP,
		AND_OP, BIT_AND_ASSIGN, BIT_AND_OP,
		OR_OP, BIT_OR_ASSIGN, BIT_OR_OP,
		BIT_XOR_ASSIGN, BIT_XOR_OP,
		MOD_ASSIGN, MOD_OP,
		MUL_ASSIGN, MUL_OP,
	}, types(tokens))
}

func TestLexer_NextToken_DivisionOperators(t *testing.T) {
	tokens := lexAll("a / b /= c")
	assert.Equal(t, []TokenType{
		IDENTIFIER_ID, DIV_OP, IDENTIFIER_ID, DIV_ASSIGN, IDENTIFIER_ID,
	}, types(tokens))
}

func TestLexer_Keywords(t *testing.T) {
	tokens := lexAll("if else while instanceof in function foo typeof")
	assert.Equal(t, []TokenType{
		IF_KEY, ELSE_KEY, WHILE_KEY, INSTANCEOF_KEY, IN_KEY,
		FUNCTION_KEY, IDENTIFIER_ID, TYPEOF_KEY,
	}, types(tokens))
	assert.Equal(t, "instanceof", tokens[3].Literal)
}

func TestLexer_FutureReservedWords(t *testing.T) {
	lex := NewLexer("class", true)
	tok := lex.NextToken()
	assert.Equal(t, TokenType("CLASS"), tok.Type)

	lex = NewLexer("class", false)
	tok = lex.NextToken()
	assert.Equal(t, IDENTIFIER_ID, tok.Type)
	assert.Equal(t, "class", tok.Literal)
}

func TestLexer_Identifiers(t *testing.T) {
	tokens := lexAll("$x _y ab12 $")
	assert.Equal(t, []TokenType{
		IDENTIFIER_ID, IDENTIFIER_ID, IDENTIFIER_ID, IDENTIFIER_ID,
	}, types(tokens))
	assert.Equal(t, "$x", tokens[0].Literal)
	assert.Equal(t, "ab12", tokens[2].Literal)
}

func TestLexer_Numbers(t *testing.T) {
	tokens := lexAll("0 42 3.14 .5 123. 1e9 1E+9 12e-2 0xFF 0X1a")
	expected := []string{"0", "42", "3.14", ".5", "123.", "1e9", "1E+9", "12e-2", "0xFF", "0X1a"}
	assert.Equal(t, len(expected), len(tokens))
	for i, tok := range tokens {
		assert.Equal(t, NUMBER_LIT, tok.Type)
		assert.Equal(t, expected[i], tok.Literal)
	}
}

func TestLexer_NumberErrors(t *testing.T) {
	lex := NewLexer("1e+", CareFutureReservedDefault)
	tok := lex.NextToken()
	assert.Equal(t, ERROR_TYPE, tok.Type)
	assert.Equal(t, "missing digits in exponent", tok.Literal)

	lex = NewLexer("0x", CareFutureReservedDefault)
	tok = lex.NextToken()
	assert.Equal(t, ERROR_TYPE, tok.Type)
	assert.Equal(t, "missing digits in hexadecimal literal", tok.Literal)
}

func TestLexer_Strings(t *testing.T) {
	tokens := lexAll(`"abc" 'd' "he\"llo" 'a\'b'`)
	expected := []string{`"abc"`, `'d'`, `"he\"llo"`, `'a\'b'`}
	assert.Equal(t, len(expected), len(tokens))
	for i, tok := range tokens {
		assert.Equal(t, STRING_LIT, tok.Type)
		assert.Equal(t, expected[i], tok.Literal)
	}
}

func TestLexer_UnterminatedString(t *testing.T) {
	lex := NewLexer(`"abc`, CareFutureReservedDefault)
	tok := lex.NextToken()
	assert.Equal(t, ERROR_TYPE, tok.Type)
	assert.Equal(t, "unterminated string literal", tok.Literal)
	assert.Equal(t, 0, tok.Pos)
}

func TestLexer_NewLineTokens(t *testing.T) {
	tokens := lexAll("a\nb\r\nc")
	assert.Equal(t, []TokenType{
		IDENTIFIER_ID, NEW_LINE_TYPE, IDENTIFIER_ID,
		NEW_LINE_TYPE, NEW_LINE_TYPE, IDENTIFIER_ID,
	}, types(tokens))
}

func TestLexer_SingleLineComment(t *testing.T) {
	tokens := lexAll("a // comment\nb")
	assert.Equal(t, []TokenType{IDENTIFIER_ID, NEW_LINE_TYPE, IDENTIFIER_ID}, types(tokens))
}

func TestLexer_MultiLineComment(t *testing.T) {
	// A block comment without a line terminator disappears entirely.
	tokens := lexAll("a /* x */ b")
	assert.Equal(t, []TokenType{IDENTIFIER_ID, IDENTIFIER_ID}, types(tokens))

	// A block comment spanning lines emits exactly one NEW_LINE token,
	// positioned at the first terminator inside the comment.
	src := "a /* x\ny\nz */ b"
	tokens = lexAll(src)
	assert.Equal(t, []TokenType{IDENTIFIER_ID, NEW_LINE_TYPE, IDENTIFIER_ID}, types(tokens))
	assert.Equal(t, 6, tokens[1].Pos)
}

func TestLexer_UnterminatedBlockComment(t *testing.T) {
	lex := NewLexer("a /* x", CareFutureReservedDefault)
	assert.Equal(t, IDENTIFIER_ID, lex.NextToken().Type)
	tok := lex.NextToken()
	assert.Equal(t, ERROR_TYPE, tok.Type)
	assert.Equal(t, "unterminated block comment", tok.Literal)
	assert.Equal(t, 2, tok.Pos)
}

func TestLexer_LexRegExp(t *testing.T) {
	lex := NewLexer("= /a[/]b\\/c/gi;", CareFutureReservedDefault)
	assert.Equal(t, ASSIGN_OP, lex.NextToken().Type)
	div := lex.NextToken()
	assert.Equal(t, DIV_OP, div.Type)

	regex := lex.LexRegExp(div.Pos)
	assert.Equal(t, REGEXP_LIT, regex.Type)
	assert.Equal(t, `/a[/]b\/c/gi`, regex.Literal)

	// Lexing continues after the flags.
	assert.Equal(t, SEMICOLON, lex.NextToken().Type)
}

func TestLexer_LexRegExp_Unterminated(t *testing.T) {
	lex := NewLexer("/ab", CareFutureReservedDefault)
	div := lex.NextToken()
	assert.Equal(t, DIV_OP, div.Type)
	regex := lex.LexRegExp(div.Pos)
	assert.Equal(t, ERROR_TYPE, regex.Type)
}

func TestLexer_EOFForever(t *testing.T) {
	lex := NewLexer("a", CareFutureReservedDefault)
	assert.Equal(t, IDENTIFIER_ID, lex.NextToken().Type)
	for i := 0; i < 3; i++ {
		assert.Equal(t, EOF_TYPE, lex.NextToken().Type)
	}
}

func TestLexer_TokenPositions(t *testing.T) {
	tokens := lexAll("ab  cd")
	assert.Equal(t, 0, tokens[0].Pos)
	assert.Equal(t, 4, tokens[1].Pos)
}

// Concatenating the literals of non-newline tokens covers the input minus
// whitespace and comments, in order.
func TestLexer_TokenCoverage(t *testing.T) {
	src := "var x = 1; // init\nx += 2;"
	rest := src
	for _, tok := range lexAll(src) {
		if tok.Type == NEW_LINE_TYPE {
			continue
		}
		idx := indexOf(rest, tok.Literal)
		assert.GreaterOrEqual(t, idx, 0, "token %q not found in remaining input", tok.Literal)
		rest = rest[idx+len(tok.Literal):]
	}
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
