/*
File    : suji/parser/parser_match.go
Author  : The Suji Authors
*/
package parser

import (
	"github.com/suji-lang/suji/diag"
	"github.com/suji-lang/suji/lexer"
	"github.com/suji-lang/suji/values"
)

// parseMatch parses a match expression. Two forms exist:
//
//	match scrutinee { pattern => body, ... }
//	match { condition => body, ... }
//
// Arms are separated by commas (newlines also accepted); a trailing comma
// is allowed. Bodies are either an expression or a braced block.
func (par *Parser) parseMatch() ExpressionNode {
	node := &MatchNode{Token: par.CurrToken}
	condForm := par.NextToken.Is(lexer.LEFT_BRACE)
	if !condForm {
		par.Advance()
		scrutinee := par.parseExpression(LOWEST)
		if scrutinee == nil {
			return nil
		}
		node.Scrutinee = scrutinee
	}
	if !par.expectPeek(lexer.LEFT_BRACE) {
		return nil
	}
	par.skipPeekNewlines()
	for !par.NextToken.Is(lexer.RIGHT_BRACE) {
		if par.NextToken.Is(lexer.EOF_TYPE) {
			par.errorf(diag.UnexpectedToken, par.NextToken.Span, "unterminated match expression")
			return nil
		}
		par.Advance()
		arm := &MatchArm{}
		if condForm {
			cond := par.parseExpression(LOWEST)
			if cond == nil {
				return nil
			}
			arm.Cond = cond
		} else {
			pattern := par.parsePattern()
			if pattern == nil {
				return nil
			}
			arm.Pattern = pattern
		}
		if !par.expectPeek(lexer.ARROW_OP) {
			return nil
		}
		if par.NextToken.Is(lexer.LEFT_BRACE) {
			par.Advance()
			block := par.parseBlock()
			if block == nil {
				return nil
			}
			arm.BlockBody = block
		} else {
			par.Advance()
			body := par.parseExpression(LOWEST)
			if body == nil {
				return nil
			}
			arm.ExprBody = body
		}
		node.Arms = append(node.Arms, arm)
		par.skipPeekNewlines()
		if par.NextToken.Is(lexer.COMMA_DELIM) {
			par.Advance()
			par.skipPeekNewlines()
		}
	}
	if !par.expectPeek(lexer.RIGHT_BRACE) {
		return nil
	}
	return node
}

// parsePattern parses one match-arm pattern, including alternations
// p1 | p2 | p3. Alternation branches must not introduce bindings.
func (par *Parser) parsePattern() PatternNode {
	first := par.parseSinglePattern()
	if first == nil {
		return nil
	}
	if !par.NextToken.Is(lexer.PIPE_OP) {
		return first
	}
	alt := &AlternationPatternNode{Token: par.NextToken, Alternatives: []PatternNode{first}}
	for par.NextToken.Is(lexer.PIPE_OP) {
		par.Advance() // '|'
		par.Advance()
		next := par.parseSinglePattern()
		if next == nil {
			return nil
		}
		alt.Alternatives = append(alt.Alternatives, next)
	}
	for _, p := range alt.Alternatives {
		if patternBinds(p) {
			par.errorf(diag.InvalidPattern, p.Span(),
				"alternation branches cannot bind names (%q)", p.Literal())
			return nil
		}
	}
	return alt
}

// parseSinglePattern parses one non-alternation pattern.
func (par *Parser) parseSinglePattern() PatternNode {
	switch par.CurrToken.Type {
	case lexer.NUMBER_LIT:
		expr := par.parseNumberLiteral()
		if expr == nil {
			return nil
		}
		return &LiteralPatternNode{Expr: expr}
	case lexer.MINUS_OP:
		op := par.CurrToken
		if !par.expectPeek(lexer.NUMBER_LIT) {
			return nil
		}
		num := par.parseNumberLiteral()
		if num == nil {
			return nil
		}
		return &LiteralPatternNode{Expr: &UnaryNode{Op: op, Right: num}}
	case lexer.STRING_LIT:
		return &LiteralPatternNode{Expr: par.parseStringLiteral()}
	case lexer.TRUE_KEY, lexer.FALSE_KEY:
		return &LiteralPatternNode{Expr: par.parseBoolLiteral()}
	case lexer.NIL_LIT:
		return &LiteralPatternNode{Expr: par.parseNilLiteral()}
	case lexer.REGEX_LIT:
		re, err := values.NewRegex(par.CurrToken.Literal)
		if err != nil {
			par.errorf(diag.InvalidRegex, par.CurrToken.Span,
				"invalid regex /%s/: %v", par.CurrToken.Literal, err)
			return nil
		}
		return &RegexPatternNode{Token: par.CurrToken, Regex: re}
	case lexer.IDENTIFIER_ID:
		if par.CurrToken.Literal == "_" {
			return &WildcardPatternNode{Token: par.CurrToken}
		}
		return &IdentifierPatternNode{Token: par.CurrToken, Name: par.CurrToken.Literal}
	case lexer.LEFT_PAREN:
		return par.parseTuplePattern()
	}
	par.errorf(diag.InvalidPattern, par.CurrToken.Span,
		"invalid pattern %q", par.CurrToken.Literal)
	return nil
}

// parseTuplePattern parses (p1, p2, ...).
func (par *Parser) parseTuplePattern() PatternNode {
	node := &TuplePatternNode{Token: par.CurrToken}
	for !par.NextToken.Is(lexer.RIGHT_PAREN) {
		par.Advance()
		elem := par.parsePattern()
		if elem == nil {
			return nil
		}
		node.Elements = append(node.Elements, elem)
		if par.NextToken.Is(lexer.COMMA_DELIM) {
			par.Advance()
			continue
		}
		break
	}
	if !par.expectPeek(lexer.RIGHT_PAREN) {
		return nil
	}
	return node
}

// patternBinds reports whether the pattern introduces any bindings.
func patternBinds(p PatternNode) bool {
	switch pat := p.(type) {
	case *IdentifierPatternNode:
		return true
	case *TuplePatternNode:
		for _, elem := range pat.Elements {
			if patternBinds(elem) {
				return true
			}
		}
	case *AlternationPatternNode:
		for _, alt := range pat.Alternatives {
			if patternBinds(alt) {
				return true
			}
		}
	}
	return false
}
