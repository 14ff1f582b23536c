/*
File    : suji/eval/eval_loops.go
Author  : The Suji Authors
*/
package eval

import (
	"github.com/suji-lang/suji/diag"
	"github.com/suji-lang/suji/parser"
	"github.com/suji-lang/suji/scope"
	"github.com/suji-lang/suji/values"
)

// evalLoop evaluates every loop form. Each iteration runs the body in a
// fresh frame; break/continue signals are captured here when unlabelled or
// when their label names this loop, and propagate otherwise.
func (e *Evaluator) evalLoop(n *parser.LoopStatementNode) values.SujiValue {
	if n.Iterable == nil {
		return e.runInfiniteLoop(n)
	}

	iterable := e.Eval(n.Iterable)
	if values.IsError(iterable) {
		return iterable
	}

	switch container := iterable.(type) {
	case *values.List:
		for _, elem := range container.Elements {
			outcome := e.runLoopBody(n, []values.SujiValue{elem})
			if outcome != nil {
				return outcome
			}
		}
	case *values.Tuple:
		for _, elem := range container.Elements {
			outcome := e.runLoopBody(n, []values.SujiValue{elem})
			if outcome != nil {
				return outcome
			}
		}
	case *values.String:
		for _, r := range container.Runes() {
			outcome := e.runLoopBody(n, []values.SujiValue{values.NewString(string(r))})
			if outcome != nil {
				return outcome
			}
		}
	case *values.Map:
		for pair := container.Entries.Oldest(); pair != nil; pair = pair.Next() {
			outcome := e.runLoopBody(n, []values.SujiValue{pair.Value.Key, pair.Value.Value})
			if outcome != nil {
				return outcome
			}
		}
	default:
		return errorAt(n, diag.TypeError, "cannot loop through %s", iterable.GetType())
	}
	return values.NIL
}

// runInfiniteLoop evaluates loop { ... } until a break or error escapes.
func (e *Evaluator) runInfiniteLoop(n *parser.LoopStatementNode) values.SujiValue {
	for {
		outcome := e.runLoopBody(n, nil)
		if outcome != nil {
			return outcome
		}
	}
}

// runLoopBody executes one iteration with the given variable bindings.
// It returns nil to continue iterating, or the value that should end the
// loop (break result, propagating signal, or error).
func (e *Evaluator) runLoopBody(n *parser.LoopStatementNode, bindings []values.SujiValue) values.SujiValue {
	oldScope := e.Scp
	frame := scope.NewScope(oldScope)
	e.Scp = frame

	for i, name := range n.Vars {
		if i < len(bindings) {
			frame.Bind(name, bindings[i])
		} else {
			frame.Bind(name, values.NIL)
		}
	}

	var result values.SujiValue = values.NIL
	for _, stmt := range n.Body.Statements {
		result = e.Eval(stmt)
		if values.IsError(result) || values.IsSignal(result) {
			break
		}
	}
	e.Scp = oldScope

	switch sig := result.(type) {
	case *values.BreakSignal:
		if sig.Label == "" || sig.Label == n.Label {
			return values.NIL
		}
		return sig
	case *values.ContinueSignal:
		if sig.Label == "" || sig.Label == n.Label {
			return nil
		}
		return sig
	case *values.ReturnSignal:
		return sig
	}
	if values.IsError(result) {
		return result
	}
	return nil
}
