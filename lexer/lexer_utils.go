/*
File    : suji/lexer/lexer_utils.go
Author  : The Suji Authors
*/
package lexer

// Advance moves the lexer one byte forward, maintaining the line and
// column counters. Advancing past the end of the source sets Current to 0.
func (lex *Lexer) Advance() {
	if lex.Position < lex.SrcLength && lex.Src[lex.Position] == '\n' {
		lex.Line++
		lex.Column = 0
	}
	lex.Position++
	lex.Column++
	if lex.Position < lex.SrcLength {
		lex.Current = lex.Src[lex.Position]
	} else {
		lex.Current = 0
	}
}

// Peek returns the byte after the current one without consuming anything.
func (lex *Lexer) Peek() byte {
	if lex.Position+1 < lex.SrcLength {
		return lex.Src[lex.Position+1]
	}
	return 0
}

// PeekAt returns the byte n positions ahead of the current one.
func (lex *Lexer) PeekAt(n int) byte {
	if lex.Position+n < lex.SrcLength {
		return lex.Src[lex.Position+n]
	}
	return 0
}

// AtEnd reports whether the lexer has consumed the whole source.
func (lex *Lexer) AtEnd() bool {
	return lex.Position >= lex.SrcLength
}

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsAlpha reports whether b can start an identifier.
func IsAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

// IsAlphaNumeric reports whether b can continue an identifier.
func IsAlphaNumeric(b byte) bool {
	return IsAlpha(b) || IsDigit(b)
}

// IsHexDigit reports whether b is a hexadecimal digit.
func IsHexDigit(b byte) bool {
	return IsDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// tokenEndsExpr reports whether a token of the given type can end an
// expression. The scanner consults the previous token's answer to decide
// whether a following '/' starts a regex literal or is the division
// operator.
func tokenEndsExpr(t TokenType) bool {
	switch t {
	case IDENTIFIER_ID, NUMBER_LIT, STRING_LIT, STRING_END, SHELL_LIT, SHELL_END,
		REGEX_LIT, TRUE_KEY, FALSE_KEY, NIL_LIT,
		RIGHT_PAREN, RIGHT_BRACKET, RIGHT_BRACE, INCR_OP, DECR_OP:
		return true
	}
	return false
}
