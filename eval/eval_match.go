/*
File    : suji/eval/eval_match.go
Author  : The Suji Authors
*/
package eval

import (
	"github.com/suji-lang/suji/diag"
	"github.com/suji-lang/suji/parser"
	"github.com/suji-lang/suji/scope"
	"github.com/suji-lang/suji/values"
)

// evalMatch evaluates a match expression. Arms are tried in source order;
// the first matching arm's body, run in a fresh frame holding the
// pattern's bindings, is the expression's value. No match yields nil.
func (e *Evaluator) evalMatch(n *parser.MatchNode) values.SujiValue {
	var scrutinee values.SujiValue
	if n.Scrutinee != nil {
		scrutinee = e.Eval(n.Scrutinee)
		if values.IsError(scrutinee) {
			return scrutinee
		}
	}

	for _, arm := range n.Arms {
		bindings := map[string]values.SujiValue{}
		var matched bool
		if n.Scrutinee != nil {
			ok, errV := e.patternMatches(arm.Pattern, scrutinee, bindings)
			if errV != nil {
				return errV
			}
			matched = ok
		} else {
			cond := e.Eval(arm.Cond)
			if values.IsError(cond) {
				return cond
			}
			b, isBool := values.Truthy(cond)
			if !isBool {
				return errorAt(arm.Cond, diag.TypeError,
					"match condition must be a bool, got %s", cond.GetType())
			}
			matched = b
		}
		if !matched {
			continue
		}
		return e.runMatchArm(arm, bindings)
	}
	return values.NIL
}

// runMatchArm evaluates the arm body in a fresh frame with the pattern
// bindings installed.
func (e *Evaluator) runMatchArm(arm *parser.MatchArm, bindings map[string]values.SujiValue) values.SujiValue {
	oldScope := e.Scp
	frame := scope.NewScope(oldScope)
	for name, v := range bindings {
		frame.Bind(name, v)
	}
	e.Scp = frame
	defer func() { e.Scp = oldScope }()

	if arm.ExprBody != nil {
		return e.Eval(arm.ExprBody)
	}
	var result values.SujiValue = values.NIL
	for _, stmt := range arm.BlockBody.Statements {
		result = e.Eval(stmt)
		if values.IsError(result) || values.IsSignal(result) {
			return result
		}
	}
	return result
}

// patternMatches tests a pattern against a value, collecting identifier
// bindings. Alternation branches cannot bind (enforced at parse time), so
// the bindings map stays consistent whichever branch matched.
func (e *Evaluator) patternMatches(pattern parser.PatternNode, v values.SujiValue, bindings map[string]values.SujiValue) (bool, values.SujiValue) {
	switch pat := pattern.(type) {
	case *parser.WildcardPatternNode:
		return true, nil

	case *parser.IdentifierPatternNode:
		bindings[pat.Name] = v
		return true, nil

	case *parser.LiteralPatternNode:
		expected := e.Eval(pat.Expr)
		if values.IsError(expected) {
			return false, expected
		}
		return values.Equals(expected, v), nil

	case *parser.RegexPatternNode:
		s, ok := v.(*values.String)
		if !ok {
			return false, nil
		}
		return pat.Regex.Matches(s.Value), nil

	case *parser.TuplePatternNode:
		tuple, ok := v.(*values.Tuple)
		if !ok || tuple.Len() != len(pat.Elements) {
			return false, nil
		}
		for i, sub := range pat.Elements {
			ok, errV := e.patternMatches(sub, tuple.Elements[i], bindings)
			if errV != nil {
				return false, errV
			}
			if !ok {
				return false, nil
			}
		}
		return true, nil

	case *parser.AlternationPatternNode:
		for _, alt := range pat.Alternatives {
			ok, errV := e.patternMatches(alt, v, bindings)
			if errV != nil {
				return false, errV
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	}
	return false, errorAt(pattern, diag.InvalidOperation, "unsupported pattern %T", pattern)
}
