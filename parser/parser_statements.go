/*
File    : suji/parser/parser_statements.go
Author  : The Suji Authors
*/
package parser

import (
	"github.com/suji-lang/suji/diag"
	"github.com/suji-lang/suji/lexer"
)

// parseStatement parses one statement. CurrToken sits on its first token;
// on success it sits on the statement's last token.
func (par *Parser) parseStatement() StatementNode {
	switch par.CurrToken.Type {
	case lexer.IMPORT_KEY:
		return par.parseImport()
	case lexer.EXPORT_KEY:
		return par.parseExport()
	case lexer.LOOP_KEY:
		return par.parseLoop()
	case lexer.BREAK_KEY:
		return par.parseBreak()
	case lexer.CONTINUE_KEY:
		return par.parseContinue()
	case lexer.RETURN_KEY:
		return par.parseReturn()
	default:
		return par.parseExpressionStatement()
	}
}

// parseExpressionStatement parses an expression statement, recognising the
// destructuring form a, b = expr by the comma following the first
// expression.
func (par *Parser) parseExpressionStatement() StatementNode {
	expr := par.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if par.NextToken.Is(lexer.COMMA_DELIM) {
		return par.parseDestructuring(expr)
	}
	return &ExpressionStatementNode{Expr: expr}
}

// parseDestructuring parses the remainder of a, b, _ = expr after the
// first target. Targets are identifiers (including _), indexes or members.
func (par *Parser) parseDestructuring(first ExpressionNode) StatementNode {
	tok := par.CurrToken
	targets := []ExpressionNode{first}
	for par.NextToken.Is(lexer.COMMA_DELIM) {
		par.Advance() // comma
		par.Advance()
		// Parse each target above assignment precedence so '=' is left
		// for us to consume.
		target := par.parseExpression(ASSIGN)
		if target == nil {
			return nil
		}
		targets = append(targets, target)
	}
	for _, target := range targets {
		if !isAssignable(target) {
			par.errorf(diag.InvalidAssignTarget, target.Span(),
				"cannot assign to %q", target.Literal())
			return nil
		}
	}
	if !par.expectPeek(lexer.ASSIGN_OP) {
		return nil
	}
	par.Advance()
	value := par.parseExpression(LOWEST)
	if value == nil {
		return nil
	}
	return &DestructuringNode{Token: tok, Targets: targets, Value: value}
}

// parseBlock parses { stmt; stmt; ... }. CurrToken sits on '{'; on return
// it sits on '}'.
func (par *Parser) parseBlock() *BlockStatementNode {
	prev := par.sliceColon
	par.sliceColon = false
	defer func() { par.sliceColon = prev }()
	block := &BlockStatementNode{Token: par.CurrToken}
	par.Advance()
	for {
		par.skipNewlines()
		for par.CurrToken.Is(lexer.SEMICOLON_DELIM) {
			par.Advance()
		}
		if par.CurrToken.Is(lexer.RIGHT_BRACE) {
			return block
		}
		if par.CurrToken.Is(lexer.EOF_TYPE) {
			par.errorf(diag.UnexpectedToken, par.CurrToken.Span, "unterminated block")
			return nil
		}
		stmt := par.parseStatement()
		if stmt == nil {
			return nil
		}
		block.Statements = append(block.Statements, stmt)
		par.Advance()
	}
}

// parseImport parses import a:b:c.
func (par *Parser) parseImport() StatementNode {
	tok := par.CurrToken
	if !par.expectPeek(lexer.IDENTIFIER_ID) {
		return nil
	}
	segments := []string{par.CurrToken.Literal}
	for par.NextToken.Is(lexer.COLON_OP) {
		par.Advance() // ':'
		if !par.expectPeek(lexer.IDENTIFIER_ID) {
			return nil
		}
		segments = append(segments, par.CurrToken.Literal)
	}
	return &ImportStatementNode{Token: tok, Segments: segments}
}

// parseExport parses export { name: expr, shorthand, ... } and the bare
// leaf form export name.
func (par *Parser) parseExport() StatementNode {
	tok := par.CurrToken
	node := &ExportStatementNode{Token: tok}
	if par.NextToken.Is(lexer.IDENTIFIER_ID) {
		par.Advance()
		node.Keys = []string{par.CurrToken.Literal}
		node.Values = []ExpressionNode{
			&IdentifierNode{Token: par.CurrToken, Name: par.CurrToken.Literal},
		}
		return node
	}
	if !par.expectPeek(lexer.LEFT_BRACE) {
		return nil
	}
	par.skipPeekNewlines()
	for !par.NextToken.Is(lexer.RIGHT_BRACE) {
		if !par.expectPeek(lexer.IDENTIFIER_ID) {
			return nil
		}
		name := par.CurrToken.Literal
		nameTok := par.CurrToken
		if par.NextToken.Is(lexer.COLON_OP) {
			par.Advance() // ':'
			par.Advance()
			value := par.parseExpression(LOWEST)
			if value == nil {
				return nil
			}
			node.Keys = append(node.Keys, name)
			node.Values = append(node.Values, value)
		} else {
			node.Keys = append(node.Keys, name)
			node.Values = append(node.Values, &IdentifierNode{Token: nameTok, Name: name})
		}
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

// parseLoop parses the loop statement forms: loop { }, loop as L { },
// loop through xs with x { }, loop as L through m with k, v { }.
func (par *Parser) parseLoop() StatementNode {
	node := &LoopStatementNode{Token: par.CurrToken}
	if par.NextToken.Is(lexer.AS_KEY) {
		par.Advance() // 'as'
		if !par.expectPeek(lexer.IDENTIFIER_ID) {
			return nil
		}
		node.Label = par.CurrToken.Literal
	}
	if par.NextToken.Is(lexer.THROUGH_KEY) {
		par.Advance() // 'through'
		par.Advance()
		iterable := par.parseExpression(LOWEST)
		if iterable == nil {
			return nil
		}
		node.Iterable = iterable
		if par.NextToken.Is(lexer.WITH_KEY) {
			par.Advance() // 'with'
			if !par.expectPeek(lexer.IDENTIFIER_ID) {
				return nil
			}
			node.Vars = []string{par.CurrToken.Literal}
			if par.NextToken.Is(lexer.COMMA_DELIM) {
				par.Advance() // comma
				if !par.expectPeek(lexer.IDENTIFIER_ID) {
					return nil
				}
				node.Vars = append(node.Vars, par.CurrToken.Literal)
			}
		}
	}
	if !par.expectPeek(lexer.LEFT_BRACE) {
		return nil
	}
	body := par.parseBlock()
	if body == nil {
		return nil
	}
	node.Body = body
	return node
}

// parseBreak parses break [LABEL].
func (par *Parser) parseBreak() StatementNode {
	node := &BreakStatementNode{Token: par.CurrToken}
	if par.NextToken.Is(lexer.IDENTIFIER_ID) {
		par.Advance()
		node.Label = par.CurrToken.Literal
	}
	return node
}

// parseContinue parses continue [LABEL].
func (par *Parser) parseContinue() StatementNode {
	node := &ContinueStatementNode{Token: par.CurrToken}
	if par.NextToken.Is(lexer.IDENTIFIER_ID) {
		par.Advance()
		node.Label = par.CurrToken.Literal
	}
	return node
}

// parseReturn parses return [expr {, expr}].
func (par *Parser) parseReturn() StatementNode {
	node := &ReturnStatementNode{Token: par.CurrToken}
	if par.NextToken.Is(lexer.NEWLINE_TYPE) || par.NextToken.Is(lexer.SEMICOLON_DELIM) ||
		par.NextToken.Is(lexer.RIGHT_BRACE) || par.NextToken.Is(lexer.EOF_TYPE) {
		return node
	}
	for {
		par.Advance()
		value := par.parseExpression(LOWEST)
		if value == nil {
			return nil
		}
		node.Values = append(node.Values, value)
		if par.NextToken.Is(lexer.COMMA_DELIM) {
			par.Advance()
			continue
		}
		break
	}
	return node
}
