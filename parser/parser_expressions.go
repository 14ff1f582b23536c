/*
File    : suji/parser/parser_expressions.go
Author  : The Suji Authors
*/
package parser

import (
	"github.com/suji-lang/suji/diag"
	"github.com/suji-lang/suji/lexer"
)

// parseUnary parses a prefix operator: -x or !x.
func (par *Parser) parseUnary() ExpressionNode {
	op := par.CurrToken
	par.Advance()
	right := par.parseExpression(UNARY)
	if right == nil {
		return nil
	}
	return &UnaryNode{Op: op, Right: right}
}

// parseBinary parses a left-associative infix operator.
func (par *Parser) parseBinary(left ExpressionNode) ExpressionNode {
	op := par.CurrToken
	prec := precedences[op.Type]
	par.Advance()
	par.skipNewlines()
	right := par.parseExpression(prec)
	if right == nil {
		return nil
	}
	return &BinaryNode{Op: op, Left: left, Right: right}
}

// parseRightAssocBinary parses a right-associative infix operator
// (^ and <|) by lowering the right-hand precedence floor one step.
func (par *Parser) parseRightAssocBinary(left ExpressionNode) ExpressionNode {
	op := par.CurrToken
	prec := precedences[op.Type]
	par.Advance()
	par.skipNewlines()
	right := par.parseExpression(prec - 1)
	if right == nil {
		return nil
	}
	return &BinaryNode{Op: op, Left: left, Right: right}
}

// parseRange parses a..b and a..=b. Ranges do not associate: chaining two
// range operators is a parse error.
func (par *Parser) parseRange(left ExpressionNode) ExpressionNode {
	op := par.CurrToken
	if _, chained := left.(*RangeNode); chained {
		par.errorf(diag.UnexpectedToken, op.Span, "range operators do not chain")
		return nil
	}
	par.Advance()
	end := par.parseExpression(RANGE)
	if end == nil {
		return nil
	}
	return &RangeNode{
		Token:     op,
		Start:     left,
		End:       end,
		Inclusive: op.Is(lexer.RANGE_INCL_OP),
	}
}

// parseAssignment parses target = value and the compound forms. The target
// must be an identifier, an index or a member access.
func (par *Parser) parseAssignment(left ExpressionNode) ExpressionNode {
	op := par.CurrToken
	if !isAssignable(left) {
		par.errorf(diag.InvalidAssignTarget, left.Span(),
			"cannot assign to %q", left.Literal())
		return nil
	}
	par.Advance()
	par.skipNewlines()
	// Right associative: a = b = c assigns b first.
	value := par.parseExpression(ASSIGN - 1)
	if value == nil {
		return nil
	}
	return &AssignmentNode{Op: op, Target: left, Value: value}
}

// parsePipeline parses stage | stage | stage, flattening chained pipes
// into one node. Every stage must syntactically be an invocation; piping a
// bare function value is a parse error, so pipeline topology is known at
// parse time.
func (par *Parser) parsePipeline(left ExpressionNode) ExpressionNode {
	op := par.CurrToken
	pipe, ok := left.(*PipelineNode)
	if !ok {
		if !isInvocation(left) {
			par.errorf(diag.PipelineStageMustBeCall, left.Span(),
				"pipeline stage %q must be a call or a backtick command", left.Literal())
			return nil
		}
		pipe = &PipelineNode{Token: op, Stages: []ExpressionNode{left}}
	}
	par.Advance()
	par.skipNewlines()
	stage := par.parseExpression(PIPELINE)
	if stage == nil {
		return nil
	}
	if !isInvocation(stage) {
		par.errorf(diag.PipelineStageMustBeCall, stage.Span(),
			"pipeline stage %q must be a call or a backtick command", stage.Literal())
		return nil
	}
	pipe.Stages = append(pipe.Stages, stage)
	return pipe
}

// parseCall parses callee(arg, arg, ...).
func (par *Parser) parseCall(left ExpressionNode) ExpressionNode {
	tok := par.CurrToken
	args := par.parseCallArguments()
	if args == nil {
		return nil
	}
	return &CallNode{Token: tok, Callee: left, Args: args}
}

// parseCallArguments parses a parenthesised argument list. CurrToken sits
// on '('; on return it sits on ')'. Returns a non-nil empty slice for ().
func (par *Parser) parseCallArguments() []ExpressionNode {
	prev := par.sliceColon
	par.sliceColon = false
	defer func() { par.sliceColon = prev }()
	args := []ExpressionNode{}
	if par.NextToken.Is(lexer.RIGHT_PAREN) {
		par.Advance()
		return args
	}
	for {
		par.Advance()
		arg := par.parseExpression(LOWEST)
		if arg == nil {
			return nil
		}
		args = append(args, arg)
		if par.NextToken.Is(lexer.COMMA_DELIM) {
			par.Advance()
			continue
		}
		break
	}
	if !par.expectPeek(lexer.RIGHT_PAREN) {
		return nil
	}
	return args
}

// parseIndexOrSlice parses target[i], target[a:b], target[:b], target[a:].
func (par *Parser) parseIndexOrSlice(left ExpressionNode) ExpressionNode {
	tok := par.CurrToken
	prev := par.sliceColon
	par.sliceColon = true
	defer func() { par.sliceColon = prev }()
	// target[:end]
	if par.NextToken.Is(lexer.COLON_OP) {
		par.Advance() // ':'
		return par.parseSliceEnd(left, tok, nil)
	}
	par.Advance()
	index := par.parseExpression(LOWEST)
	if index == nil {
		return nil
	}
	if par.NextToken.Is(lexer.COLON_OP) {
		par.Advance() // ':'
		return par.parseSliceEnd(left, tok, index)
	}
	if !par.expectPeek(lexer.RIGHT_BRACKET) {
		return nil
	}
	return &IndexNode{Token: tok, Target: left, Index: index}
}

// parseSliceEnd finishes a slice after its ':' has been consumed.
func (par *Parser) parseSliceEnd(left ExpressionNode, tok lexer.Token, start ExpressionNode) ExpressionNode {
	var end ExpressionNode
	if !par.NextToken.Is(lexer.RIGHT_BRACKET) {
		par.Advance()
		end = par.parseExpression(LOWEST)
		if end == nil {
			return nil
		}
	}
	if !par.expectPeek(lexer.RIGHT_BRACKET) {
		return nil
	}
	return &SliceNode{Token: tok, Target: left, Start: start, End: end}
}

// parseMember parses target:name — module member access.
func (par *Parser) parseMember(left ExpressionNode) ExpressionNode {
	tok := par.CurrToken
	if !par.expectPeek(lexer.IDENTIFIER_ID) {
		return nil
	}
	return &MemberNode{Token: tok, Target: left, Name: par.CurrToken.Literal}
}

// parseMethodCall parses target::name(args).
func (par *Parser) parseMethodCall(left ExpressionNode) ExpressionNode {
	tok := par.CurrToken
	if !par.expectPeek(lexer.IDENTIFIER_ID) {
		return nil
	}
	name := par.CurrToken.Literal
	if !par.expectPeek(lexer.LEFT_PAREN) {
		return nil
	}
	args := par.parseCallArguments()
	if args == nil {
		return nil
	}
	return &MethodCallNode{Token: tok, Target: left, Name: name, Args: args}
}

// parsePostfix parses target++ and target--. The target must be a bound
// name or element so the mutation has somewhere to land.
func (par *Parser) parsePostfix(left ExpressionNode) ExpressionNode {
	op := par.CurrToken
	if !isAssignable(left) {
		par.errorf(diag.InvalidAssignTarget, left.Span(),
			"%q cannot be incremented", left.Literal())
		return nil
	}
	return &PostfixNode{Op: op, Target: left}
}
