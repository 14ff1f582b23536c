/*
File    : suji/eval/eval_assignments.go
Author  : The Suji Authors
*/
package eval

import (
	"strings"

	"github.com/suji-lang/suji/diag"
	"github.com/suji-lang/suji/parser"
	"github.com/suji-lang/suji/values"
)

// evalAssignment evaluates target = value and the compound forms. An
// assignment expression yields the assigned value.
func (e *Evaluator) evalAssignment(n *parser.AssignmentNode) values.SujiValue {
	value := e.Eval(n.Value)
	if values.IsError(value) {
		return value
	}

	if n.Op.Literal != "=" {
		current := e.Eval(n.Target)
		if values.IsError(current) {
			return current
		}
		op := strings.TrimSuffix(n.Op.Literal, "=")
		value = spanned(e.applyBinary(op, current, value), n)
		if values.IsError(value) {
			return value
		}
	}

	if errV := e.assignTo(n.Target, value); errV != nil {
		return errV
	}
	return value
}

// assignTo stores a value into an assignment target: a name, an indexed
// element, or nothing for the _ discard.
func (e *Evaluator) assignTo(target parser.ExpressionNode, value values.SujiValue) values.SujiValue {
	switch t := target.(type) {
	case *parser.IdentifierNode:
		if t.Name == "_" {
			return nil
		}
		e.Scp.Assign(t.Name, value)
		return nil

	case *parser.IndexNode:
		container := e.Eval(t.Target)
		if values.IsError(container) {
			return container
		}
		index := e.Eval(t.Index)
		if values.IsError(index) {
			return index
		}
		switch c := container.(type) {
		case *values.List:
			idx, errV := resolveIndex(t, index, c.Len())
			if errV != nil {
				return errV
			}
			c.Elements[idx] = value
			return nil
		case *values.Map:
			if !c.Set(index, value) {
				return errorAt(t, diag.TypeError,
					"%s is not a valid map key", index.GetType())
			}
			return nil
		}
		return errorAt(t, diag.TypeError,
			"cannot assign into %s", container.GetType())

	case *parser.MemberNode:
		return errorAt(t, diag.InvalidOperation,
			"cannot assign to module member %q", t.Name)
	}
	return errorAt(target, diag.InvalidOperation, "invalid assignment target")
}

// evalDestructuring evaluates a, b, _ = expr. The right side must be a
// tuple (or a multi-value call, which already surfaces as one) matching
// the target count; any other value, or a count mismatch, is a
// PatternMatchFailed error.
func (e *Evaluator) evalDestructuring(n *parser.DestructuringNode) values.SujiValue {
	value := e.Eval(n.Value)
	if values.IsError(value) {
		return value
	}
	tuple, ok := value.(*values.Tuple)
	if !ok {
		return errorAt(n, diag.PatternMatchFailed,
			"cannot destructure %s into %d names", value.GetType(), len(n.Targets))
	}
	if tuple.Len() != len(n.Targets) {
		return errorAt(n, diag.PatternMatchFailed,
			"cannot destructure %d values into %d names", tuple.Len(), len(n.Targets))
	}
	for i, target := range n.Targets {
		if errV := e.assignTo(target, tuple.Elements[i]); errV != nil {
			return errV
		}
	}
	return value
}

// evalPostfix evaluates target++ and target--, mutating the bound name and
// yielding the value before mutation.
func (e *Evaluator) evalPostfix(n *parser.PostfixNode) values.SujiValue {
	current := e.Eval(n.Target)
	if values.IsError(current) {
		return current
	}
	num, ok := current.(*values.Number)
	if !ok {
		return errorAt(n, diag.TypeError,
			"%s needs a number, got %s", n.Op.Literal, current.GetType())
	}
	delta := values.NumberFromInt(1)
	var updated values.SujiValue
	if n.Op.Literal == "++" {
		updated = values.NewNumber(num.Value.Add(delta.Value))
	} else {
		updated = values.NewNumber(num.Value.Sub(delta.Value))
	}
	if errV := e.assignTo(n.Target, updated); errV != nil {
		return errV
	}
	return num
}
