/*
File    : suji/values/values_test.go
Author  : The Suji Authors
*/
package values

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func num(s string) *Number {
	n, ok := NumberFromString(s)
	if !ok {
		panic("bad number literal " + s)
	}
	return n
}

func TestNumber_DecimalDisplay(t *testing.T) {
	assert.Equal(t, "1.5", num("1.50").ToString())
	assert.Equal(t, "42", num("42").ToString())
	assert.Equal(t, "0.3", NewNumber(num("0.1").Value.Add(num("0.2").Value)).ToString())
	assert.Equal(t, "0", NewNumber(decimal.Zero.Neg()).ToString())
}

func TestNumber_Equality(t *testing.T) {
	assert.True(t, Equals(num("1.5"), num("1.50")))
	assert.True(t, Equals(num("0.3"), NewNumber(num("0.1").Value.Add(num("0.2").Value))))
	assert.False(t, Equals(num("1"), NewString("1")))
}

func TestEquals_DeepStructures(t *testing.T) {
	a := NewList(num("1"), NewString("x"), NewList(TRUE))
	b := NewList(num("1"), NewString("x"), NewList(TRUE))
	assert.True(t, Equals(a, b))

	b.Elements[2].(*List).Elements[0] = FALSE
	assert.False(t, Equals(a, b))

	m1 := NewMap()
	m1.Set(NewString("k"), num("1"))
	m2 := NewMap()
	m2.Set(NewString("k"), num("1.0"))
	assert.True(t, Equals(m1, m2))
}

func TestEquals_FunctionsByIdentity(t *testing.T) {
	f := &Builtin{Name: "f"}
	g := &Builtin{Name: "f"}
	assert.True(t, Equals(f, f))
	assert.False(t, Equals(f, g))
}

func TestMap_InsertionOrder(t *testing.T) {
	m := NewMap()
	m.Set(NewString("z"), num("1"))
	m.Set(NewString("a"), num("2"))
	m.Set(NewString("z"), num("3")) // update keeps position

	var keys []string
	for pair := m.Entries.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Value.Key.ToString())
	}
	assert.Equal(t, []string{"z", "a"}, keys)

	v, ok := m.Get(NewString("z"))
	require.True(t, ok)
	assert.Equal(t, "3", v.ToString())
}

func TestMap_TypedKeysStayDistinct(t *testing.T) {
	m := NewMap()
	m.Set(NewString("1"), NewString("string key"))
	m.Set(num("1"), NewString("number key"))
	assert.Equal(t, 2, m.Len())
}

func TestDisplay_QuotesStringsInContainers(t *testing.T) {
	list := NewList(NewString("a"), num("1"))
	assert.Equal(t, `["a", 1]`, list.ToString())
	tuple := NewTuple(num("1"), num("2"))
	assert.Equal(t, "(1, 2)", tuple.ToString())
}

func TestTruthy_StrictBooleans(t *testing.T) {
	v, isBool := Truthy(TRUE)
	assert.True(t, v)
	assert.True(t, isBool)
	_, isBool = Truthy(num("1"))
	assert.False(t, isBool)
}

func TestRegex_Matching(t *testing.T) {
	re, err := NewRegex(`^a+b$`)
	require.NoError(t, err)
	assert.True(t, re.Matches("aaab"))
	assert.False(t, re.Matches("ba"))
	assert.Equal(t, "/^a+b$/", re.ToString())

	_, err = NewRegex("(unclosed")
	assert.Error(t, err)
}

func TestReturnSignal_Unwrap(t *testing.T) {
	assert.Equal(t, NIL, (&ReturnSignal{}).Unwrap())
	assert.Equal(t, "1", (&ReturnSignal{Values: []SujiValue{num("1")}}).Unwrap().ToString())
	multi := (&ReturnSignal{Values: []SujiValue{num("1"), num("2")}}).Unwrap()
	assert.Equal(t, TupleType, multi.GetType())
}
