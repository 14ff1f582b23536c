/*
File    : suji/eval/eval_expressions.go
Author  : The Suji Authors
*/
package eval

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/suji-lang/suji/diag"
	"github.com/suji-lang/suji/parser"
	"github.com/suji-lang/suji/values"
)

// evalIdentifier resolves a name in the scope chain, falling back to the
// global builtins.
func (e *Evaluator) evalIdentifier(n *parser.IdentifierNode) values.SujiValue {
	if v, ok := e.Scp.LookUp(n.Name); ok {
		return v
	}
	if builtin, ok := e.Builtins[n.Name]; ok {
		return builtin
	}
	return errorAt(n, diag.Undefined, "undefined name %q", n.Name)
}

// evalTemplateString concatenates the template's literal segments and the
// display form of its interpolated expressions.
func (e *Evaluator) evalTemplateString(n *parser.TemplateStringNode) values.SujiValue {
	var sb strings.Builder
	for _, part := range n.Parts {
		v := e.Eval(part)
		if values.IsError(v) {
			return v
		}
		sb.WriteString(v.ToString())
	}
	return values.NewString(sb.String())
}

func (e *Evaluator) evalListLiteral(n *parser.ListLiteralNode) values.SujiValue {
	elements := make([]values.SujiValue, 0, len(n.Elements))
	for _, elem := range n.Elements {
		v := e.Eval(elem)
		if values.IsError(v) {
			return v
		}
		elements = append(elements, v)
	}
	return values.NewList(elements...)
}

func (e *Evaluator) evalMapLiteral(n *parser.MapLiteralNode) values.SujiValue {
	m := values.NewMap()
	for i := range n.Keys {
		key := e.Eval(n.Keys[i])
		if values.IsError(key) {
			return key
		}
		value := e.Eval(n.Values[i])
		if values.IsError(value) {
			return value
		}
		if !m.Set(key, value) {
			return errorAt(n.Keys[i], diag.TypeError,
				"%s is not a valid map key", key.GetType())
		}
	}
	return m
}

func (e *Evaluator) evalTupleLiteral(n *parser.TupleLiteralNode) values.SujiValue {
	elements := make([]values.SujiValue, 0, len(n.Elements))
	for _, elem := range n.Elements {
		v := e.Eval(elem)
		if values.IsError(v) {
			return v
		}
		elements = append(elements, v)
	}
	return values.NewTuple(elements...)
}

// evalRange materialises a..b / a..=b as a list of numbers. Both bounds
// must be integers; a descending range is empty.
func (e *Evaluator) evalRange(n *parser.RangeNode) values.SujiValue {
	start := e.Eval(n.Start)
	if values.IsError(start) {
		return start
	}
	end := e.Eval(n.End)
	if values.IsError(end) {
		return end
	}
	startNum, ok := start.(*values.Number)
	if !ok {
		return errorAt(n, diag.TypeError, "range bounds must be numbers, got %s", start.GetType())
	}
	endNum, ok := end.(*values.Number)
	if !ok {
		return errorAt(n, diag.TypeError, "range bounds must be numbers, got %s", end.GetType())
	}
	if !startNum.IsInteger() || !endNum.IsInteger() {
		return errorAt(n, diag.TypeError, "range bounds must be integers")
	}
	from, to := startNum.Int(), endNum.Int()
	if n.Inclusive {
		to++
	}
	elements := []values.SujiValue{}
	for i := from; i < to; i++ {
		elements = append(elements, values.NumberFromInt(i))
	}
	return values.NewList(elements...)
}

// evalUnary evaluates -x and !x.
func (e *Evaluator) evalUnary(n *parser.UnaryNode) values.SujiValue {
	right := e.Eval(n.Right)
	if values.IsError(right) {
		return right
	}
	switch n.Op.Literal {
	case "-":
		num, ok := right.(*values.Number)
		if !ok {
			return errorAt(n, diag.TypeError, "cannot negate %s", right.GetType())
		}
		return values.NewNumber(num.Value.Neg())
	case "!":
		b, isBool := values.Truthy(right)
		if !isBool {
			return errorAt(n, diag.TypeError, "cannot apply ! to %s", right.GetType())
		}
		return values.BoolOf(!b)
	}
	return errorAt(n, diag.InvalidOperation, "unknown unary operator %q", n.Op.Literal)
}

// evalBinary evaluates infix operators. Logic operators short-circuit;
// everything else evaluates both sides first.
func (e *Evaluator) evalBinary(n *parser.BinaryNode) values.SujiValue {
	switch n.Op.Literal {
	case "&&", "||":
		return e.evalLogic(n)
	case "|>":
		return e.evalPipeApply(n, n.Left, n.Right)
	case "<|":
		return e.evalPipeApply(n, n.Right, n.Left)
	case ">>", "<<":
		return e.evalComposition(n)
	}

	left := e.Eval(n.Left)
	if values.IsError(left) {
		return left
	}
	right := e.Eval(n.Right)
	if values.IsError(right) {
		return right
	}
	return spanned(e.applyBinary(n.Op.Literal, left, right), n)
}

// applyBinary applies a non-short-circuiting binary operator to two
// evaluated operands. Compound assignments reuse it for their operation.
func (e *Evaluator) applyBinary(op string, left, right values.SujiValue) values.SujiValue {
	switch op {
	case "==":
		return values.BoolOf(values.Equals(left, right))
	case "!=":
		return values.BoolOf(!values.Equals(left, right))
	case "~", "!~":
		return e.evalRegexMatch(op, left, right)
	case "<", "<=", ">", ">=":
		return e.evalComparison(op, left, right)
	}

	// Arithmetic and concatenation.
	if ln, ok := left.(*values.Number); ok {
		rn, ok := right.(*values.Number)
		if !ok {
			return values.NewError(diag.TypeError,
				"cannot apply %s to number and %s", op, right.GetType())
		}
		return numberArith(op, ln, rn)
	}
	if ls, ok := left.(*values.String); ok && op == "+" {
		rs, ok := right.(*values.String)
		if !ok {
			return values.NewError(diag.TypeError,
				"cannot concatenate string and %s", right.GetType())
		}
		return values.NewString(ls.Value + rs.Value)
	}
	if ll, ok := left.(*values.List); ok && op == "+" {
		rl, ok := right.(*values.List)
		if !ok {
			return values.NewError(diag.TypeError,
				"cannot concatenate list and %s", right.GetType())
		}
		joined := append(append([]values.SujiValue{}, ll.Elements...), rl.Elements...)
		return values.NewList(joined...)
	}
	return values.NewError(diag.TypeError,
		"cannot apply %s to %s and %s", op, left.GetType(), right.GetType())
}

// numberArith applies an arithmetic operator to two numbers.
func numberArith(op string, left, right *values.Number) values.SujiValue {
	switch op {
	case "+":
		return values.NewNumber(left.Value.Add(right.Value))
	case "-":
		return values.NewNumber(left.Value.Sub(right.Value))
	case "*":
		return values.NewNumber(left.Value.Mul(right.Value))
	case "/":
		if right.Value.IsZero() {
			return values.NewError(diag.DivideByZero, "division by zero")
		}
		return values.NewNumber(left.Value.Div(right.Value))
	case "%":
		if right.Value.IsZero() {
			return values.NewError(diag.DivideByZero, "modulo by zero")
		}
		return values.NewNumber(left.Value.Mod(right.Value))
	case "^":
		return numberPow(left, right)
	}
	return values.NewError(diag.InvalidOperation, "unknown operator %q", op)
}

// numberPow implements ^. Integral exponents (including negative ones)
// compute exactly in decimal; fractional exponents go through float64 and
// are approximate by nature. 0 to a negative power is a division by zero.
func numberPow(base, exp *values.Number) values.SujiValue {
	if exp.IsInteger() {
		n := exp.Int()
		neg := n < 0
		if neg {
			n = -n
		}
		result := decimal.NewFromInt(1)
		factor := base.Value
		for ; n > 0; n >>= 1 {
			if n&1 == 1 {
				result = result.Mul(factor)
			}
			factor = factor.Mul(factor)
		}
		if neg {
			if result.IsZero() {
				return values.NewError(diag.DivideByZero, "zero to a negative power")
			}
			result = decimal.NewFromInt(1).Div(result)
		}
		return values.NewNumber(result)
	}
	baseF, _ := base.Value.Float64()
	expF, _ := exp.Value.Float64()
	resultF := mathPow(baseF, expF)
	if !isFinite(resultF) {
		return values.NewError(diag.InvalidOperation,
			"%s ^ %s has no real value", base.ToString(), exp.ToString())
	}
	return values.NumberFromFloat(resultF)
}

// evalComparison orders numbers and strings.
func (e *Evaluator) evalComparison(op string, left, right values.SujiValue) values.SujiValue {
	var cmp int
	switch lv := left.(type) {
	case *values.Number:
		rv, ok := right.(*values.Number)
		if !ok {
			return values.NewError(diag.TypeError,
				"cannot compare number and %s", right.GetType())
		}
		cmp = lv.Value.Cmp(rv.Value)
	case *values.String:
		rv, ok := right.(*values.String)
		if !ok {
			return values.NewError(diag.TypeError,
				"cannot compare string and %s", right.GetType())
		}
		cmp = strings.Compare(lv.Value, rv.Value)
	default:
		return values.NewError(diag.TypeError, "cannot compare %s values", left.GetType())
	}
	switch op {
	case "<":
		return values.BoolOf(cmp < 0)
	case "<=":
		return values.BoolOf(cmp <= 0)
	case ">":
		return values.BoolOf(cmp > 0)
	case ">=":
		return values.BoolOf(cmp >= 0)
	}
	return values.NewError(diag.InvalidOperation, "unknown comparison %q", op)
}

// evalRegexMatch evaluates s ~ /re/ and s !~ /re/.
func (e *Evaluator) evalRegexMatch(op string, left, right values.SujiValue) values.SujiValue {
	s, ok := left.(*values.String)
	if !ok {
		return values.NewError(diag.TypeError,
			"left side of %s must be a string, got %s", op, left.GetType())
	}
	re, ok := right.(*values.Regex)
	if !ok {
		return values.NewError(diag.TypeError,
			"right side of %s must be a regex, got %s", op, right.GetType())
	}
	matched := re.Matches(s.Value)
	if op == "!~" {
		matched = !matched
	}
	return values.BoolOf(matched)
}

// evalLogic evaluates && and || with short-circuiting. Both operands must
// be booleans.
func (e *Evaluator) evalLogic(n *parser.BinaryNode) values.SujiValue {
	left := e.Eval(n.Left)
	if values.IsError(left) {
		return left
	}
	lb, isBool := values.Truthy(left)
	if !isBool {
		return errorAt(n.Left, diag.TypeError,
			"%s expects booleans, got %s", n.Op.Literal, left.GetType())
	}
	if n.Op.Literal == "&&" && !lb {
		return values.FALSE
	}
	if n.Op.Literal == "||" && lb {
		return values.TRUE
	}
	right := e.Eval(n.Right)
	if values.IsError(right) {
		return right
	}
	rb, isBool := values.Truthy(right)
	if !isBool {
		return errorAt(n.Right, diag.TypeError,
			"%s expects booleans, got %s", n.Op.Literal, right.GetType())
	}
	return values.BoolOf(rb)
}

// evalPipeApply evaluates the pipe-apply operators: the applied side must
// be callable, the argument side may be anything.
func (e *Evaluator) evalPipeApply(n *parser.BinaryNode, argSide, fnSide parser.ExpressionNode) values.SujiValue {
	arg := e.Eval(argSide)
	if values.IsError(arg) {
		return arg
	}
	fn := e.Eval(fnSide)
	if values.IsError(fn) {
		return fn
	}
	t := fn.GetType()
	if t != values.FunctionType && t != values.BuiltinType {
		return errorAt(n, diag.TypeError,
			"%s needs a callable, got %s", n.Op.Literal, t)
	}
	return spanned(e.CallFunction(fn, arg), n)
}

// evalComposition builds the composed function for f >> g and f << g.
// f >> g yields |x| g(f(x)); << swaps the order. The result is a first-
// class callable.
func (e *Evaluator) evalComposition(n *parser.BinaryNode) values.SujiValue {
	left := e.Eval(n.Left)
	if values.IsError(left) {
		return left
	}
	right := e.Eval(n.Right)
	if values.IsError(right) {
		return right
	}
	for _, fn := range []values.SujiValue{left, right} {
		t := fn.GetType()
		if t != values.FunctionType && t != values.BuiltinType {
			return errorAt(n, diag.TypeError,
				"%s needs callables, got %s", n.Op.Literal, t)
		}
	}
	first, second := left, right
	if n.Op.Literal == "<<" {
		first, second = right, left
	}
	return &values.Builtin{
		Name:    "composed",
		MinArgs: 1,
		MaxArgs: 1,
		Callback: func(rt values.Runtime, args []values.SujiValue) values.SujiValue {
			mid := rt.CallFunction(first, args[0])
			if values.IsError(mid) {
				return mid
			}
			return rt.CallFunction(second, mid)
		},
	}
}
