/*
File    : suji/parser/parser_test.go
Author  : The Suji Authors
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseOne parses a single-statement source and returns the statement.
func parseOne(t *testing.T, src string) StatementNode {
	t.Helper()
	par := NewParser(src)
	root := par.Parse()
	require.Empty(t, par.Errors, "unexpected parse errors for %q", src)
	require.Len(t, root.Statements, 1)
	return root.Statements[0]
}

// parseExpr parses a single expression statement.
func parseExpr(t *testing.T, src string) ExpressionNode {
	t.Helper()
	stmt := parseOne(t, src)
	exprStmt, ok := stmt.(*ExpressionStatementNode)
	require.True(t, ok, "statement is %T, not an expression", stmt)
	return exprStmt.Expr
}

func TestParser_Precedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"-a * b", "((-a) * b)"},
		{"!x == y", "((!x) == y)"},
		{"a + b < c * d", "((a + b) < (c * d))"},
		{"a && b || c", "((a && b) || c)"},
		{"2 ^ 3 ^ 2", "(2 ^ (3 ^ 2))"},
		{"a == b ~ c", "((a == b) ~ c)"},
		{"x = y = 1", "x = y = 1"},
		{"a |> f(1)", "(a |> f(1))"},
	}
	for _, test := range tests {
		expr := parseExpr(t, test.input)
		assert.Equal(t, test.expected, expr.Literal(), "input: %s", test.input)
	}
}

func TestParser_Lambdas(t *testing.T) {
	expr := parseExpr(t, "|x, y = 10| x + y")
	lambda, ok := expr.(*LambdaNode)
	require.True(t, ok)
	require.Len(t, lambda.Params, 2)
	assert.Equal(t, "x", lambda.Params[0].Name)
	assert.Nil(t, lambda.Params[0].Default)
	assert.Equal(t, "y", lambda.Params[1].Name)
	assert.Equal(t, "10", lambda.Params[1].Default.Literal())
	assert.NotNil(t, lambda.ExprBody)

	expr = parseExpr(t, "|| { return 1 }")
	lambda, ok = expr.(*LambdaNode)
	require.True(t, ok)
	assert.Empty(t, lambda.Params)
	assert.NotNil(t, lambda.BlockBody)
}

func TestParser_PipelineStagesMustBeInvocations(t *testing.T) {
	// Valid: every stage is a call or backtick.
	expr := parseExpr(t, "producer() | `grep x` | consumer()")
	pipe, ok := expr.(*PipelineNode)
	require.True(t, ok)
	assert.Len(t, pipe.Stages, 3)

	// Invalid: bare identifier stage.
	par := NewParser("producer() | consumer")
	par.Parse()
	require.NotEmpty(t, par.Errors)
	assert.Equal(t, "PipelineStageMustBeCall", string(par.Errors[0].Kind))

	par = NewParser("producer | consumer()")
	par.Parse()
	require.NotEmpty(t, par.Errors)
	assert.Equal(t, "PipelineStageMustBeCall", string(par.Errors[0].Kind))
}

func TestParser_PipeApplyAllowsAnyLeft(t *testing.T) {
	expr := parseExpr(t, "3 |> (|x| x + 1)")
	bin, ok := expr.(*BinaryNode)
	require.True(t, ok)
	assert.Equal(t, "|>", bin.Op.Literal)
}

func TestParser_MatchScrutineeForm(t *testing.T) {
	expr := parseExpr(t, "match n { 0|1 => n, _ => other(n) }")
	m, ok := expr.(*MatchNode)
	require.True(t, ok)
	require.NotNil(t, m.Scrutinee)
	require.Len(t, m.Arms, 2)

	alt, ok := m.Arms[0].Pattern.(*AlternationPatternNode)
	require.True(t, ok)
	assert.Len(t, alt.Alternatives, 2)
	_, ok = m.Arms[1].Pattern.(*WildcardPatternNode)
	assert.True(t, ok)
}

func TestParser_MatchConditionForm(t *testing.T) {
	expr := parseExpr(t, "match { x > 1 => big, true => small }")
	m, ok := expr.(*MatchNode)
	require.True(t, ok)
	assert.Nil(t, m.Scrutinee)
	require.Len(t, m.Arms, 2)
	assert.NotNil(t, m.Arms[0].Cond)
}

func TestParser_MatchPatterns(t *testing.T) {
	expr := parseExpr(t, `match v { (a, b) => a, /ab+c/ => 1, "lit" => 2, _ => 3 }`)
	m := expr.(*MatchNode)
	require.Len(t, m.Arms, 4)
	_, ok := m.Arms[0].Pattern.(*TuplePatternNode)
	assert.True(t, ok)
	_, ok = m.Arms[1].Pattern.(*RegexPatternNode)
	assert.True(t, ok)
	_, ok = m.Arms[2].Pattern.(*LiteralPatternNode)
	assert.True(t, ok)
}

func TestParser_AlternationMustNotBind(t *testing.T) {
	par := NewParser("match v { a | 1 => x, _ => y }")
	par.Parse()
	require.NotEmpty(t, par.Errors)
	assert.Equal(t, "InvalidPattern", string(par.Errors[0].Kind))
}

func TestParser_Loops(t *testing.T) {
	stmt := parseOne(t, "loop through xs with x { f(x) }")
	l, ok := stmt.(*LoopStatementNode)
	require.True(t, ok)
	assert.Equal(t, []string{"x"}, l.Vars)
	assert.NotNil(t, l.Iterable)

	stmt = parseOne(t, "loop as outer through m with k, v { g(k, v) }")
	l = stmt.(*LoopStatementNode)
	assert.Equal(t, "outer", l.Label)
	assert.Equal(t, []string{"k", "v"}, l.Vars)

	stmt = parseOne(t, "loop { tick() }")
	l = stmt.(*LoopStatementNode)
	assert.Nil(t, l.Iterable)
}

func TestParser_BreakContinueReturn(t *testing.T) {
	stmt := parseOne(t, "loop as l { break l }")
	body := stmt.(*LoopStatementNode).Body
	require.Len(t, body.Statements, 1)
	brk := body.Statements[0].(*BreakStatementNode)
	assert.Equal(t, "l", brk.Label)

	ret := parseOne(t, "return 1, 2").(*ReturnStatementNode)
	assert.Len(t, ret.Values, 2)
}

func TestParser_Destructuring(t *testing.T) {
	stmt := parseOne(t, "a, _, c = f()")
	d, ok := stmt.(*DestructuringNode)
	require.True(t, ok)
	assert.Len(t, d.Targets, 3)
	assert.Equal(t, "f()", d.Value.Literal())
}

func TestParser_ImportExport(t *testing.T) {
	imp := parseOne(t, "import std:json").(*ImportStatementNode)
	assert.Equal(t, []string{"std", "json"}, imp.Segments)

	exp := parseOne(t, "export { parse: p, helper }").(*ExportStatementNode)
	assert.Equal(t, []string{"parse", "helper"}, exp.Keys)
	require.Len(t, exp.Values, 2)
	assert.Equal(t, "helper", exp.Values[1].Literal())
}

func TestParser_TemplateString(t *testing.T) {
	expr := parseExpr(t, `"Hello, ${name}!"`)
	tmpl, ok := expr.(*TemplateStringNode)
	require.True(t, ok)
	// literal "Hello, ", expression name, literal "!"
	require.Len(t, tmpl.Parts, 3)
	assert.Equal(t, `"Hello, "`, tmpl.Parts[0].Literal())
	assert.Equal(t, "name", tmpl.Parts[1].Literal())
}

func TestParser_ShellCommand(t *testing.T) {
	expr := parseExpr(t, "`grep ${pat} file.txt`")
	cmd, ok := expr.(*ShellCommandNode)
	require.True(t, ok)
	require.Len(t, cmd.Parts, 3)
}

func TestParser_IndexSliceMemberMethod(t *testing.T) {
	assert.IsType(t, &IndexNode{}, parseExpr(t, "xs[0]"))
	slice := parseExpr(t, "xs[1:3]").(*SliceNode)
	assert.NotNil(t, slice.Start)
	assert.NotNil(t, slice.End)
	slice = parseExpr(t, "xs[:3]").(*SliceNode)
	assert.Nil(t, slice.Start)
	slice = parseExpr(t, "xs[1:]").(*SliceNode)
	assert.Nil(t, slice.End)

	member := parseExpr(t, "std:io:stdout").(*MemberNode)
	assert.Equal(t, "stdout", member.Name)

	method := parseExpr(t, "xs::map(f)").(*MethodCallNode)
	assert.Equal(t, "map", method.Name)
	assert.Len(t, method.Args, 1)
}

func TestParser_RangeDoesNotChain(t *testing.T) {
	expr := parseExpr(t, "0..10")
	r, ok := expr.(*RangeNode)
	require.True(t, ok)
	assert.False(t, r.Inclusive)

	r = parseExpr(t, "0..=10").(*RangeNode)
	assert.True(t, r.Inclusive)

	par := NewParser("1..2..3")
	par.Parse()
	assert.NotEmpty(t, par.Errors)
}

func TestParser_InvalidAssignTarget(t *testing.T) {
	par := NewParser("1 + 2 = 3")
	par.Parse()
	require.NotEmpty(t, par.Errors)
	assert.Equal(t, "InvalidAssignTarget", string(par.Errors[0].Kind))
}

func TestParser_Composition(t *testing.T) {
	expr := parseExpr(t, "f >> g << h")
	bin, ok := expr.(*BinaryNode)
	require.True(t, ok)
	assert.Equal(t, "<<", bin.Op.Literal)
}
