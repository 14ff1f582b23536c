/*
File    : suji/methods/methods_test.go
Author  : The Suji Authors
*/
package methods

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suji-lang/suji/values"
)

// fakeRuntime runs builtin callbacks directly; enough for testing the
// higher-order methods without a full evaluator.
type fakeRuntime struct{}

func (f *fakeRuntime) CallFunction(fn values.SujiValue, args ...values.SujiValue) values.SujiValue {
	b, ok := fn.(*values.Builtin)
	if !ok {
		panic("fakeRuntime can only call builtins")
	}
	return b.Callback(f, args)
}

func (f *fakeRuntime) StdinStream() *values.Stream  { return nil }
func (f *fakeRuntime) StdoutStream() *values.Stream { return nil }
func (f *fakeRuntime) StderrStream() *values.Stream { return nil }

var rt = &fakeRuntime{}

func call(t *testing.T, recv values.SujiValue, name string, args ...values.SujiValue) values.SujiValue {
	t.Helper()
	result := Call(rt, recv, name, args)
	require.False(t, values.IsError(result), "unexpected error: %s", result.ToString())
	return result
}

func numList(ns ...int64) *values.List {
	elements := make([]values.SujiValue, len(ns))
	for i, n := range ns {
		elements[i] = values.NumberFromInt(n)
	}
	return values.NewList(elements...)
}

func TestUniversalMethods(t *testing.T) {
	assert.Equal(t, "42", call(t, values.NumberFromInt(42), "to_string").ToString())
	assert.Equal(t, "number", call(t, values.NumberFromInt(42), "type").ToString())
	assert.Equal(t, values.TRUE, call(t, values.NewString("x"), "is_string"))
	assert.Equal(t, values.FALSE, call(t, values.NewString("x"), "is_number"))
	assert.Equal(t, values.TRUE, call(t, &values.Builtin{Name: "f"}, "is_function"))
}

func TestUnknownMethodAndArity(t *testing.T) {
	result := Call(rt, values.NumberFromInt(1), "no_such_method", nil)
	require.True(t, values.IsError(result))
	assert.Equal(t, "InvalidOperation", string(result.(*values.Error).Kind))

	result = Call(rt, values.NewString("x"), "split", nil)
	require.True(t, values.IsError(result))
	assert.Equal(t, "ArityMismatch", string(result.(*values.Error).Kind))
}

func TestStringMethods(t *testing.T) {
	s := values.NewString("héllo")
	assert.Equal(t, "5", call(t, s, "len").ToString())
	assert.Equal(t, "ollèh", call(t, values.NewString("hèllo"), "reverse").ToString())
	assert.Equal(t, "HÉLLO", call(t, s, "upper").ToString())
	assert.Equal(t, "1", call(t, s, "index_of", values.NewString("é")).ToString())
	assert.Equal(t, "-1", call(t, s, "index_of", values.NewString("zz")).ToString())
	assert.Equal(t, "3.5", call(t, values.NewString(" 3.5 "), "to_number").ToString())
}

func TestListMethods_MutatingAndPure(t *testing.T) {
	list := numList(1, 2)
	call(t, list, "push", values.NumberFromInt(3))
	assert.Equal(t, 3, list.Len())

	popped := call(t, list, "pop")
	assert.Equal(t, "3", popped.ToString())
	assert.Equal(t, 2, list.Len())

	reversed := call(t, list, "reverse")
	assert.Equal(t, "[2, 1]", reversed.ToString())
	assert.Equal(t, "[1, 2]", list.ToString(), "reverse must not mutate")
}

func TestListHigherOrder(t *testing.T) {
	double := &values.Builtin{Name: "double", MinArgs: 1, MaxArgs: 1,
		Callback: func(rt values.Runtime, args []values.SujiValue) values.SujiValue {
			n := args[0].(*values.Number)
			return values.NewNumber(n.Value.Add(n.Value))
		}}
	assert.Equal(t, "[2, 4, 6]", call(t, numList(1, 2, 3), "map", double).ToString())

	add := &values.Builtin{Name: "add", MinArgs: 2, MaxArgs: 2,
		Callback: func(rt values.Runtime, args []values.SujiValue) values.SujiValue {
			return values.NewNumber(args[0].(*values.Number).Value.Add(args[1].(*values.Number).Value))
		}}
	assert.Equal(t, "6", call(t, numList(1, 2, 3), "reduce", add).ToString())
	assert.Equal(t, "16", call(t, numList(1, 2, 3), "reduce", add, values.NumberFromInt(10)).ToString())
}

func TestListSortAndExtremes(t *testing.T) {
	assert.Equal(t, "[1, 2, 3]", call(t, numList(3, 1, 2), "sort").ToString())
	assert.Equal(t, "1", call(t, numList(3, 1, 2), "min").ToString())
	assert.Equal(t, "3", call(t, numList(3, 1, 2), "max").ToString())
	assert.Equal(t, "6", call(t, numList(1, 2, 3), "sum").ToString())

	mixed := values.NewList(values.NumberFromInt(1), values.NewString("x"))
	result := Call(rt, mixed, "sort", nil)
	require.True(t, values.IsError(result))
}

func TestMapMethods(t *testing.T) {
	m := values.NewMap()
	m.Set(values.NewString("a"), values.NumberFromInt(1))
	m.Set(values.NewString("b"), values.NumberFromInt(2))

	assert.Equal(t, `["a", "b"]`, call(t, m, "keys").ToString())
	assert.Equal(t, "[1, 2]", call(t, m, "values").ToString())
	assert.Equal(t, values.TRUE, call(t, m, "has", values.NewString("a")))
	assert.Equal(t, "9", call(t, m, "get", values.NewString("zz"), values.NumberFromInt(9)).ToString())

	call(t, m, "delete", values.NewString("a"))
	assert.Equal(t, 1, m.Len())

	missing := Call(rt, m, "delete", []values.SujiValue{values.NewString("zz")})
	require.True(t, values.IsError(missing))
	assert.Equal(t, "KeyNotFound", string(missing.(*values.Error).Kind))
}

func TestRegexMethods(t *testing.T) {
	re, err := values.NewRegex(`\d+`)
	require.NoError(t, err)
	assert.Equal(t, "12", call(t, re, "find", values.NewString("a12b34")).ToString())
	assert.Equal(t, `["12", "34"]`, call(t, re, "find_all", values.NewString("a12b34")).ToString())
	assert.Equal(t, "aXbX", call(t, re, "replace", values.NewString("a12b34"), values.NewString("X")).ToString())
	assert.Equal(t, `\d+`, call(t, re, "source").ToString())
}
