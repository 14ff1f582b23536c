/*
File    : suji/parser/parser_helpers.go
Author  : The Suji Authors
*/
package parser

import (
	"github.com/suji-lang/suji/diag"
	"github.com/suji-lang/suji/lexer"
)

// errorf records a parse error.
func (par *Parser) errorf(kind diag.Kind, span diag.Span, format string, args ...interface{}) {
	par.Errors = append(par.Errors, diag.Errorf(kind, span, format, args...))
}

// expectPeek asserts the upcoming token type and consumes it. On mismatch
// it records an UnexpectedToken error and returns false.
func (par *Parser) expectPeek(t lexer.TokenType) bool {
	if par.NextToken.Is(t) {
		par.Advance()
		return true
	}
	par.errorf(diag.UnexpectedToken, par.NextToken.Span,
		"expected %q, found %q", string(t), par.NextToken.Literal)
	return false
}

// skipNewlines consumes any run of newline tokens at the current position.
// Used where the grammar allows line breaks: after commas, opening braces,
// and arrows.
func (par *Parser) skipNewlines() {
	for par.CurrToken.Is(lexer.NEWLINE_TYPE) {
		par.Advance()
	}
}

// skipPeekNewlines consumes newline tokens sitting in the lookahead slot.
func (par *Parser) skipPeekNewlines() {
	for par.NextToken.Is(lexer.NEWLINE_TYPE) {
		par.Advance()
	}
}

// atStatementEnd reports whether the current token can terminate a
// statement.
func (par *Parser) atStatementEnd() bool {
	switch par.CurrToken.Type {
	case lexer.NEWLINE_TYPE, lexer.SEMICOLON_DELIM, lexer.EOF_TYPE, lexer.RIGHT_BRACE:
		return true
	}
	return false
}

// expectStatementEnd steps past a finished statement and checks that it is
// followed by a legal separator.
func (par *Parser) expectStatementEnd() {
	if par.NextToken.Is(lexer.NEWLINE_TYPE) || par.NextToken.Is(lexer.SEMICOLON_DELIM) ||
		par.NextToken.Is(lexer.EOF_TYPE) || par.NextToken.Is(lexer.RIGHT_BRACE) {
		par.Advance()
		return
	}
	par.errorf(diag.UnexpectedToken, par.NextToken.Span,
		"unexpected %q after statement", par.NextToken.Literal)
	par.Advance()
}

// synchronize skips tokens until the next statement boundary so one bad
// statement yields one diagnostic instead of a cascade.
func (par *Parser) synchronize() {
	for !par.CurrToken.Is(lexer.EOF_TYPE) {
		if par.CurrToken.Is(lexer.NEWLINE_TYPE) || par.CurrToken.Is(lexer.SEMICOLON_DELIM) {
			return
		}
		par.Advance()
	}
}

// isInvocation reports whether the expression is syntactically an
// invocation: a call, a method call, or a backtick command. Pipeline
// stages must satisfy this.
func isInvocation(expr ExpressionNode) bool {
	switch expr.(type) {
	case *CallNode, *MethodCallNode, *ShellCommandNode:
		return true
	}
	return false
}

// isAssignable reports whether the expression is a legal assignment
// target: an identifier, an index, or a member access.
func isAssignable(expr ExpressionNode) bool {
	switch expr.(type) {
	case *IdentifierNode, *IndexNode, *MemberNode:
		return true
	}
	return false
}
