/*
File    : esmix/lexer/lexer_utils.go
*/
package lexer

// isBlank checks if the given byte is a blank character skipped between
// tokens: space, tab, or form feed. Line terminators are not blanks; they
// produce NEW_LINE tokens.
func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\f'
}

// isLineTerminator checks if the given byte ends a source line.
func isLineTerminator(c byte) bool {
	return c == '\n' || c == '\r'
}

// isDigitASCII reports whether c is an ASCII decimal digit ('0'..'9').
// This is used in the hot path for number scanning.
func isDigitASCII(c byte) bool {
	return c >= '0' && c <= '9'
}

// isHexDigitASCII reports whether c is an ASCII hexadecimal digit.
// This is used when scanning 0x/0X integer literals.
func isHexDigitASCII(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// isIdentifierStart checks if the given byte can start an identifier.
// The lexer is ASCII-centric: letters, underscore, and dollar sign.
func isIdentifierStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' || c == '$'
}

// isIdentifierPart checks if the given byte can continue an identifier:
// identifier start characters plus decimal digits.
func isIdentifierPart(c byte) bool {
	return isIdentifierStart(c) || isDigitASCII(c)
}

// readStringLiteral reads a string literal opened by ' or ".
// A backslash escapes the next character unconditionally; no interpretation
// is performed and the token's Literal is the raw source slice including
// the surrounding quotes. An unterminated literal is an error.
//
// Example:
//
//	Source: "he\"llo"
//	Returns: Token{Type: STRING_LIT, Literal: `"he\"llo"`}
func readStringLiteral(lex *Lexer) Token {
	start := lex.Position
	quote := lex.Current
	lex.Advance() // opening quote

	for lex.Current != quote {
		if lex.Current == 0 {
			return NewToken(ERROR_TYPE, "unterminated string literal", start)
		}
		if lex.Current == '\\' {
			lex.Advance()
			if lex.Current == 0 {
				return NewToken(ERROR_TYPE, "unterminated string literal", start)
			}
		}
		lex.Advance()
	}

	lex.Advance() // closing quote
	return NewToken(STRING_LIT, lex.Src[start:lex.Position], start)
}

// readNumber reads a numeric literal from the source.
//
// Supported forms:
//   - decimal integers: 0, 10, 123
//   - decimal with fraction: 10.5, .25, 123.
//   - exponent suffix: 1e9, 1.4E+9, 12e-2
//   - hexadecimal integers: 0x16, 0XFF
//
// The token's Literal is the raw source slice (hex prefix and exponent sign
// included). An exponent without digits and a hex prefix without digits are
// errors.
func readNumber(lex *Lexer) Token {
	start := lex.Position

	// Hexadecimal integer literal (0x...)
	if lex.Current == '0' && (lex.Peek() == 'x' || lex.Peek() == 'X') {
		lex.Advance()
		lex.Advance()
		if !isHexDigitASCII(lex.Current) {
			return NewToken(ERROR_TYPE, "missing digits in hexadecimal literal", start)
		}
		for isHexDigitASCII(lex.Current) {
			lex.Advance()
		}
		return NewToken(NUMBER_LIT, lex.Src[start:lex.Position], start)
	}

	for isDigitASCII(lex.Current) {
		lex.Advance()
	}
	if lex.Current == '.' {
		lex.Advance()
		for isDigitASCII(lex.Current) {
			lex.Advance()
		}
	}
	if lex.Current == 'e' || lex.Current == 'E' {
		lex.Advance()
		if lex.Current == '+' || lex.Current == '-' {
			lex.Advance()
		}
		if !isDigitASCII(lex.Current) {
			return NewToken(ERROR_TYPE, "missing digits in exponent", start)
		}
		for isDigitASCII(lex.Current) {
			lex.Advance()
		}
	}

	return NewToken(NUMBER_LIT, lex.Src[start:lex.Position], start)
}

// readIdentifier reads an identifier or reserved word from the source.
// Identifiers start with a letter, underscore, or dollar sign and continue
// with those characters or digits. The finished word is classified through
// lookupIdent, honoring the lexer's future-reserved policy.
func readIdentifier(lex *Lexer) Token {
	start := lex.Position
	lex.Advance()
	for isIdentifierPart(lex.Current) {
		lex.Advance()
	}
	literal := lex.Src[start:lex.Position]
	return NewToken(lookupIdent(literal, lex.CareFutureReserved), literal, start)
}
