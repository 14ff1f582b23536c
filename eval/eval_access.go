/*
File    : suji/eval/eval_access.go
Author  : The Suji Authors
*/
package eval

import (
	"math"

	"github.com/suji-lang/suji/diag"
	"github.com/suji-lang/suji/methods"
	"github.com/suji-lang/suji/parser"
	"github.com/suji-lang/suji/values"
)

func mathPow(base, exp float64) float64 { return math.Pow(base, exp) }

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// evalIndex evaluates target[index]. Lists, tuples and strings index by
// integer (negative counts from the end); maps index by key.
func (e *Evaluator) evalIndex(n *parser.IndexNode) values.SujiValue {
	target := e.Eval(n.Target)
	if values.IsError(target) {
		return target
	}
	index := e.Eval(n.Index)
	if values.IsError(index) {
		return index
	}
	switch container := target.(type) {
	case *values.List:
		idx, err := resolveIndex(n, index, container.Len())
		if err != nil {
			return err
		}
		return container.Elements[idx]
	case *values.Tuple:
		idx, err := resolveIndex(n, index, container.Len())
		if err != nil {
			return err
		}
		return container.Elements[idx]
	case *values.String:
		runes := container.Runes()
		idx, err := resolveIndex(n, index, len(runes))
		if err != nil {
			return err
		}
		return values.NewString(string(runes[idx]))
	case *values.Map:
		v, ok := container.Get(index)
		if !ok {
			return errorAt(n, diag.KeyNotFound, "key %s not found", values.Display(index))
		}
		return v
	}
	return errorAt(n, diag.TypeError, "%s is not indexable", target.GetType())
}

// resolveIndex turns an index value into a bounds-checked offset, with
// negative indices counting from the end.
func resolveIndex(n parser.Node, index values.SujiValue, length int) (int, *values.Error) {
	num, ok := index.(*values.Number)
	if !ok || !num.IsInteger() {
		return 0, errorAt(n, diag.TypeError, "index must be an integer")
	}
	idx := int(num.Int())
	if idx < 0 {
		idx += length
	}
	if idx < 0 || idx >= length {
		return 0, errorAt(n, diag.IndexOutOfRange,
			"index %s out of range for length %d", num.ToString(), length)
	}
	return idx, nil
}

// evalSlice evaluates target[a:b] on lists and strings. Bounds clamp to
// the valid range; negative bounds count from the end.
func (e *Evaluator) evalSlice(n *parser.SliceNode) values.SujiValue {
	target := e.Eval(n.Target)
	if values.IsError(target) {
		return target
	}

	length := 0
	switch container := target.(type) {
	case *values.List:
		length = container.Len()
	case *values.String:
		length = len(container.Runes())
	default:
		return errorAt(n, diag.TypeError, "%s is not sliceable", target.GetType())
	}

	start, errV := e.sliceBound(n.Start, 0, length)
	if errV != nil {
		return errV
	}
	end, errV := e.sliceBound(n.End, length, length)
	if errV != nil {
		return errV
	}
	if start > end {
		start = end
	}
	switch container := target.(type) {
	case *values.List:
		elements := append([]values.SujiValue{}, container.Elements[start:end]...)
		return values.NewList(elements...)
	case *values.String:
		return values.NewString(string(container.Runes()[start:end]))
	}
	return values.NIL
}

// sliceBound evaluates one optional slice endpoint, clamped to [0,length].
func (e *Evaluator) sliceBound(expr parser.ExpressionNode, fallback, length int) (int, values.SujiValue) {
	if expr == nil {
		return fallback, nil
	}
	v := e.Eval(expr)
	if values.IsError(v) {
		return 0, v
	}
	num, ok := v.(*values.Number)
	if !ok || !num.IsInteger() {
		return 0, errorAt(expr, diag.TypeError, "slice bound must be an integer")
	}
	bound := int(num.Int())
	if bound < 0 {
		bound += length
	}
	if bound < 0 {
		bound = 0
	}
	if bound > length {
		bound = length
	}
	return bound, nil
}

// evalMember evaluates target:name. Members resolve on module values.
func (e *Evaluator) evalMember(n *parser.MemberNode) values.SujiValue {
	target := e.Eval(n.Target)
	if values.IsError(target) {
		return target
	}
	module, ok := target.(*values.Module)
	if !ok {
		return errorAt(n, diag.TypeError,
			"%s has no members (member access needs a module)", target.GetType())
	}
	// The io streams resolve against the evaluator, not the module, so a
	// pipeline stage observing io:stdout sees its redirected stream.
	if module.Name == "io" {
		switch n.Name {
		case "stdin":
			return e.Stdin
		case "stdout":
			return e.Stdout
		case "stderr":
			return e.Stderr
		}
	}
	member, ok := module.Get(n.Name)
	if !ok {
		return errorAt(n, diag.Undefined,
			"module %s has no member %q", module.Name, n.Name)
	}
	return member
}

// evalMethodCall dispatches target::name(args) through the method table.
func (e *Evaluator) evalMethodCall(n *parser.MethodCallNode) values.SujiValue {
	target := e.Eval(n.Target)
	if values.IsError(target) {
		return target
	}
	args, errV := e.evalArgs(n.Args)
	if errV != nil {
		return errV
	}
	return spanned(methods.Call(e, target, n.Name, args), n)
}

// evalCall evaluates callee(args).
func (e *Evaluator) evalCall(n *parser.CallNode) values.SujiValue {
	callee := e.Eval(n.Callee)
	if values.IsError(callee) {
		return callee
	}
	args, errV := e.evalArgs(n.Args)
	if errV != nil {
		return errV
	}
	return spanned(e.CallFunction(callee, args...), n)
}

// evalArgs evaluates an argument list left to right.
func (e *Evaluator) evalArgs(exprs []parser.ExpressionNode) ([]values.SujiValue, values.SujiValue) {
	args := make([]values.SujiValue, 0, len(exprs))
	for _, expr := range exprs {
		v := e.Eval(expr)
		if values.IsError(v) {
			return nil, v
		}
		args = append(args, v)
	}
	return args, nil
}
