/*
File    : suji/methods/methods.go
Author  : The Suji Authors
*/

// Package methods implements uniform method dispatch for Suji values.
// expr::name(args) resolves (kind_of(expr), name) in a static table; every
// kind also answers the universal methods (to_string, type, is_* tests).
// Methods return new values unless documented to mutate (list::push,
// map::delete, stream::write, ...).
package methods

import (
	"github.com/suji-lang/suji/diag"
	"github.com/suji-lang/suji/values"
)

// MethodFunc is the implementation signature of a value method. The
// Runtime handle lets higher-order methods (map, filter, sort_by) call
// back into user closures.
type MethodFunc func(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue

// Method couples an implementation with its arity bounds. MaxArgs of -1
// means variadic.
type Method struct {
	Name    string
	MinArgs int
	MaxArgs int
	Func    MethodFunc
}

// table maps (kind, method name) to implementations. Populated by the
// per-kind init functions in this package.
var table = map[values.SujiType]map[string]*Method{}

// register installs methods for a kind.
func register(kind values.SujiType, methods []*Method) {
	kindTable, ok := table[kind]
	if !ok {
		kindTable = make(map[string]*Method)
		table[kind] = kindTable
	}
	for _, m := range methods {
		kindTable[m.Name] = m
	}
}

// Lookup resolves a method for a value kind, consulting the kind's own
// table first and the universal table second.
func Lookup(kind values.SujiType, name string) (*Method, bool) {
	if kindTable, ok := table[kind]; ok {
		if m, ok := kindTable[name]; ok {
			return m, true
		}
	}
	m, ok := universal[name]
	return m, ok
}

// Call dispatches recv::name(args), checking existence and arity.
func Call(rt values.Runtime, recv values.SujiValue, name string, args []values.SujiValue) values.SujiValue {
	m, ok := Lookup(recv.GetType(), name)
	if !ok {
		return values.NewError(diag.InvalidOperation,
			"%s has no method %q", recv.GetType(), name)
	}
	if len(args) < m.MinArgs || (m.MaxArgs >= 0 && len(args) > m.MaxArgs) {
		return values.NewError(diag.ArityMismatch,
			"%s::%s expects %s, got %d", recv.GetType(), name, arityWord(m), len(args))
	}
	return m.Func(rt, recv, args)
}

func arityWord(m *Method) string {
	switch {
	case m.MaxArgs < 0:
		return atLeast(m.MinArgs)
	case m.MinArgs == m.MaxArgs:
		return plural(m.MinArgs)
	default:
		return plural(m.MinArgs) + " to " + plural(m.MaxArgs)
	}
}

func plural(n int) string {
	if n == 1 {
		return "1 argument"
	}
	return itoa(n) + " arguments"
}

func atLeast(n int) string {
	return "at least " + itoa(n) + " arguments"
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

// universal holds the methods every value answers.
var universal = map[string]*Method{}

func init() {
	add := func(name string, fn MethodFunc) {
		universal[name] = &Method{Name: name, MinArgs: 0, MaxArgs: 0, Func: fn}
	}

	add("to_string", func(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
		return values.NewString(recv.ToString())
	})
	add("type", func(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
		return values.NewString(string(recv.GetType()))
	})

	kinds := map[string]values.SujiType{
		"is_number":   values.NumberType,
		"is_string":   values.StringType,
		"is_bool":     values.BoolType,
		"is_nil":      values.NilType,
		"is_list":     values.ListType,
		"is_map":      values.MapType,
		"is_tuple":    values.TupleType,
		"is_regex":    values.RegexType,
		"is_stream":   values.StreamType,
		"is_module":   values.ModuleType,
		"is_function": values.FunctionType,
	}
	for name, kind := range kinds {
		kind := kind
		isFn := func(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
			if kind == values.FunctionType {
				t := recv.GetType()
				return values.BoolOf(t == values.FunctionType || t == values.BuiltinType)
			}
			return values.BoolOf(recv.GetType() == kind)
		}
		add(name, isFn)
	}
}

// typeErr is a shorthand used across the per-kind method files.
func typeErr(format string, args ...interface{}) *values.Error {
	return values.NewError(diag.TypeError, format, args...)
}

// wantNumber coerces an argument to *Number or reports which method needed it.
func wantNumber(v values.SujiValue, method string) (*values.Number, *values.Error) {
	n, ok := v.(*values.Number)
	if !ok {
		return nil, typeErr("%s expects a number argument, got %s", method, v.GetType())
	}
	return n, nil
}

// wantString coerces an argument to *String.
func wantString(v values.SujiValue, method string) (*values.String, *values.Error) {
	s, ok := v.(*values.String)
	if !ok {
		return nil, typeErr("%s expects a string argument, got %s", method, v.GetType())
	}
	return s, nil
}

// wantCallable checks that v is invokable through the runtime.
func wantCallable(v values.SujiValue, method string) *values.Error {
	t := v.GetType()
	if t != values.FunctionType && t != values.BuiltinType {
		return typeErr("%s expects a function argument, got %s", method, t)
	}
	return nil
}
