/*
File    : suji/parser/parser_literals.go
Author  : The Suji Authors
*/
package parser

import (
	"github.com/suji-lang/suji/diag"
	"github.com/suji-lang/suji/lexer"
	"github.com/suji-lang/suji/values"
)

// parseNumberLiteral parses a decimal number literal.
func (par *Parser) parseNumberLiteral() ExpressionNode {
	num, ok := values.NumberFromString(par.CurrToken.Literal)
	if !ok {
		par.errorf(diag.InvalidNumber, par.CurrToken.Span,
			"invalid number literal %q", par.CurrToken.Literal)
		return nil
	}
	return &NumberLiteralNode{Token: par.CurrToken, Value: num}
}

// parseBoolLiteral parses true or false.
func (par *Parser) parseBoolLiteral() ExpressionNode {
	return &BoolLiteralNode{Token: par.CurrToken, Value: par.CurrToken.Is(lexer.TRUE_KEY)}
}

// parseNilLiteral parses the nil literal.
func (par *Parser) parseNilLiteral() ExpressionNode {
	return &NilLiteralNode{Token: par.CurrToken}
}

// parseStringLiteral parses a string with no interpolation.
func (par *Parser) parseStringLiteral() ExpressionNode {
	return &StringLiteralNode{Token: par.CurrToken, Value: par.CurrToken.Literal}
}

// parseIdentifier parses a bare identifier reference.
func (par *Parser) parseIdentifier() ExpressionNode {
	return &IdentifierNode{Token: par.CurrToken, Name: par.CurrToken.Literal}
}

// parseRegexLiteral parses and compiles a /pattern/ literal.
func (par *Parser) parseRegexLiteral() ExpressionNode {
	re, err := values.NewRegex(par.CurrToken.Literal)
	if err != nil {
		par.errorf(diag.InvalidRegex, par.CurrToken.Span,
			"invalid regex /%s/: %v", par.CurrToken.Literal, err)
		return nil
	}
	return &RegexLiteralNode{Token: par.CurrToken, Regex: re}
}

// parseTemplateParts parses the segment/interpolation sequence shared by
// template strings and shell templates. CurrToken sits on the *_START
// token; on return it sits on the *_END token.
func (par *Parser) parseTemplateParts(segment, end lexer.TokenType) []ExpressionNode {
	prev := par.sliceColon
	par.sliceColon = false
	defer func() { par.sliceColon = prev }()
	parts := []ExpressionNode{
		&StringLiteralNode{Token: par.CurrToken, Value: par.CurrToken.Literal},
	}
	for {
		if !par.expectPeek(lexer.INTERP_START) {
			return nil
		}
		par.Advance() // move onto the first token of the expression
		expr := par.parseExpression(LOWEST)
		if expr == nil {
			return nil
		}
		parts = append(parts, expr)
		if !par.expectPeek(lexer.INTERP_END) {
			return nil
		}
		switch par.NextToken.Type {
		case segment:
			par.Advance()
			parts = append(parts, &StringLiteralNode{Token: par.CurrToken, Value: par.CurrToken.Literal})
		case end:
			par.Advance()
			parts = append(parts, &StringLiteralNode{Token: par.CurrToken, Value: par.CurrToken.Literal})
			return parts
		default:
			par.errorf(diag.UnexpectedToken, par.NextToken.Span,
				"malformed template: unexpected %q", par.NextToken.Literal)
			return nil
		}
	}
}

// parseTemplateString parses a string literal containing interpolations.
func (par *Parser) parseTemplateString() ExpressionNode {
	tok := par.CurrToken
	parts := par.parseTemplateParts(lexer.STRING_SEGMENT, lexer.STRING_END)
	if parts == nil {
		return nil
	}
	return &TemplateStringNode{Token: tok, Parts: parts}
}

// parseShellCommand parses a backtick command with no interpolation.
func (par *Parser) parseShellCommand() ExpressionNode {
	return &ShellCommandNode{Token: par.CurrToken, Parts: []ExpressionNode{
		&StringLiteralNode{Token: par.CurrToken, Value: par.CurrToken.Literal},
	}}
}

// parseShellTemplate parses a backtick command containing interpolations.
func (par *Parser) parseShellTemplate() ExpressionNode {
	tok := par.CurrToken
	parts := par.parseTemplateParts(lexer.SHELL_SEGMENT, lexer.SHELL_END)
	if parts == nil {
		return nil
	}
	return &ShellCommandNode{Token: tok, Parts: parts}
}

// parseGroupOrTuple parses (expr), the empty tuple (), or a tuple literal
// (a, b, ...). A trailing comma forces a one-element tuple.
func (par *Parser) parseGroupOrTuple() ExpressionNode {
	tok := par.CurrToken
	prev := par.sliceColon
	par.sliceColon = false
	defer func() { par.sliceColon = prev }()
	if par.NextToken.Is(lexer.RIGHT_PAREN) {
		par.Advance()
		return &TupleLiteralNode{Token: tok}
	}
	par.Advance()
	first := par.parseExpression(LOWEST)
	if first == nil {
		return nil
	}
	if par.NextToken.Is(lexer.RIGHT_PAREN) {
		par.Advance()
		return first
	}
	elements := []ExpressionNode{first}
	for par.NextToken.Is(lexer.COMMA_DELIM) {
		par.Advance() // comma
		if par.NextToken.Is(lexer.RIGHT_PAREN) {
			break
		}
		par.Advance()
		elem := par.parseExpression(LOWEST)
		if elem == nil {
			return nil
		}
		elements = append(elements, elem)
	}
	if !par.expectPeek(lexer.RIGHT_PAREN) {
		return nil
	}
	return &TupleLiteralNode{Token: tok, Elements: elements}
}

// parseListLiteral parses [e1, e2, ...].
func (par *Parser) parseListLiteral() ExpressionNode {
	tok := par.CurrToken
	prev := par.sliceColon
	par.sliceColon = false
	defer func() { par.sliceColon = prev }()
	var elements []ExpressionNode
	for !par.NextToken.Is(lexer.RIGHT_BRACKET) {
		par.Advance()
		elem := par.parseExpression(LOWEST)
		if elem == nil {
			return nil
		}
		elements = append(elements, elem)
		if par.NextToken.Is(lexer.COMMA_DELIM) {
			par.Advance()
			continue
		}
		break
	}
	if !par.expectPeek(lexer.RIGHT_BRACKET) {
		return nil
	}
	return &ListLiteralNode{Token: tok, Elements: elements}
}

// parseMapLiteral parses {k1: v1, k2: v2, ...}. Keys are identifiers
// (taken as string keys), string literals or numbers; values are full
// expressions.
func (par *Parser) parseMapLiteral() ExpressionNode {
	tok := par.CurrToken
	prev := par.sliceColon
	par.sliceColon = false
	defer func() { par.sliceColon = prev }()
	node := &MapLiteralNode{Token: tok}
	par.skipPeekNewlines()
	for !par.NextToken.Is(lexer.RIGHT_BRACE) {
		par.Advance()
		key := par.parseMapKey()
		if key == nil {
			return nil
		}
		if !par.expectPeek(lexer.COLON_OP) {
			return nil
		}
		par.Advance()
		value := par.parseExpression(LOWEST)
		if value == nil {
			return nil
		}
		node.Keys = append(node.Keys, key)
		node.Values = append(node.Values, value)
		par.skipPeekNewlines()
		if par.NextToken.Is(lexer.COMMA_DELIM) {
			par.Advance()
			par.skipPeekNewlines()
			continue
		}
		break
	}
	if !par.expectPeek(lexer.RIGHT_BRACE) {
		return nil
	}
	return node
}

// parseMapKey parses one map-literal key. A bare identifier denotes its
// own name as a string key.
func (par *Parser) parseMapKey() ExpressionNode {
	switch par.CurrToken.Type {
	case lexer.IDENTIFIER_ID:
		return &StringLiteralNode{Token: par.CurrToken, Value: par.CurrToken.Literal}
	case lexer.STRING_LIT:
		return &StringLiteralNode{Token: par.CurrToken, Value: par.CurrToken.Literal}
	case lexer.NUMBER_LIT:
		return par.parseNumberLiteral()
	case lexer.TRUE_KEY, lexer.FALSE_KEY:
		return par.parseBoolLiteral()
	}
	par.errorf(diag.UnexpectedToken, par.CurrToken.Span,
		"invalid map key %q", par.CurrToken.Literal)
	return nil
}

// parseLambda parses |params| expr or |params| { stmts }. Parameters may
// carry defaults: |x, y = 10| ... .
func (par *Parser) parseLambda() ExpressionNode {
	tok := par.CurrToken
	node := &LambdaNode{Token: tok}
	for !par.NextToken.Is(lexer.PIPE_OP) {
		if !par.expectPeek(lexer.IDENTIFIER_ID) {
			return nil
		}
		param := &Param{Name: par.CurrToken.Literal}
		if par.NextToken.Is(lexer.ASSIGN_OP) {
			par.Advance() // '='
			par.Advance()
			// Defaults parse above pipeline precedence so the closing '|'
			// is not taken as an operator.
			def := par.parseExpression(PIPELINE)
			if def == nil {
				return nil
			}
			param.Default = def
		}
		node.Params = append(node.Params, param)
		if par.NextToken.Is(lexer.COMMA_DELIM) {
			par.Advance()
			continue
		}
		break
	}
	if !par.expectPeek(lexer.PIPE_OP) {
		return nil
	}
	return par.parseLambdaBody(node)
}

// parseZeroArgLambda parses || expr — an empty parameter list lexed as the
// OR operator in prefix position.
func (par *Parser) parseZeroArgLambda() ExpressionNode {
	return par.parseLambdaBody(&LambdaNode{Token: par.CurrToken})
}

// parseLambdaBody parses the body following a lambda's parameter list.
func (par *Parser) parseLambdaBody(node *LambdaNode) ExpressionNode {
	if par.NextToken.Is(lexer.LEFT_BRACE) {
		par.Advance()
		block := par.parseBlock()
		if block == nil {
			return nil
		}
		node.BlockBody = block
		return node
	}
	par.Advance()
	body := par.parseExpression(LOWEST)
	if body == nil {
		return nil
	}
	node.ExprBody = body
	return node
}
