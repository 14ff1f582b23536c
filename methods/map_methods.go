/*
File    : suji/methods/map_methods.go
Author  : The Suji Authors
*/
package methods

import (
	"github.com/suji-lang/suji/diag"
	"github.com/suji-lang/suji/values"
)

func init() {
	register(values.MapType, []*Method{
		{Name: "len", MinArgs: 0, MaxArgs: 0, Func: mapLen},
		{Name: "keys", MinArgs: 0, MaxArgs: 0, Func: mapKeys},
		{Name: "values", MinArgs: 0, MaxArgs: 0, Func: mapValues},
		{Name: "has", MinArgs: 1, MaxArgs: 1, Func: mapHas},
		{Name: "get", MinArgs: 1, MaxArgs: 2, Func: mapGet},
		{Name: "set", MinArgs: 2, MaxArgs: 2, Func: mapSet},
		{Name: "delete", MinArgs: 1, MaxArgs: 1, Func: mapDelete},
		{Name: "merge", MinArgs: 1, MaxArgs: 1, Func: mapMerge},
		{Name: "each", MinArgs: 1, MaxArgs: 1, Func: mapEach},
	})
}

func mapLen(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	return decimalFromInt(recv.(*values.Map).Len())
}

// mapKeys returns the keys in insertion order.
func mapKeys(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	m := recv.(*values.Map)
	keys := make([]values.SujiValue, 0, m.Len())
	for pair := m.Entries.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Value.Key)
	}
	return values.NewList(keys...)
}

// mapValues returns the values in insertion order.
func mapValues(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	m := recv.(*values.Map)
	vals := make([]values.SujiValue, 0, m.Len())
	for pair := m.Entries.Oldest(); pair != nil; pair = pair.Next() {
		vals = append(vals, pair.Value.Value)
	}
	return values.NewList(vals...)
}

func mapHas(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	_, ok := recv.(*values.Map).Get(args[0])
	return values.BoolOf(ok)
}

// mapGet looks up a key; an optional second argument is the fallback,
// otherwise a missing key yields nil.
func mapGet(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	if v, ok := recv.(*values.Map).Get(args[0]); ok {
		return v
	}
	if len(args) == 2 {
		return args[1]
	}
	return values.NIL
}

// mapSet mutates in place and returns the map for chaining.
func mapSet(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	m := recv.(*values.Map)
	if !m.Set(args[0], args[1]) {
		return typeErr("%s is not a valid map key", args[0].GetType())
	}
	return m
}

// mapDelete removes a key in place; a missing key is a KeyNotFound error.
func mapDelete(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	if !recv.(*values.Map).Delete(args[0]) {
		return values.NewError(diag.KeyNotFound, "key %s not found", values.Display(args[0]))
	}
	return recv
}

// mapMerge mutates the receiver with the other map's entries. A key
// present on both sides keeps its original insertion position and takes
// the right side's value; new keys append in the right side's order.
func mapMerge(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	other, ok := args[0].(*values.Map)
	if !ok {
		return typeErr("map::merge expects a map argument, got %s", args[0].GetType())
	}
	m := recv.(*values.Map)
	for pair := other.Entries.Oldest(); pair != nil; pair = pair.Next() {
		m.Set(pair.Value.Key, pair.Value.Value)
	}
	return m
}

// mapEach calls fn(key, value) for every entry in insertion order.
func mapEach(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	if err := wantCallable(args[0], "map::each"); err != nil {
		return err
	}
	m := recv.(*values.Map)
	for pair := m.Entries.Oldest(); pair != nil; pair = pair.Next() {
		if result := rt.CallFunction(args[0], pair.Value.Key, pair.Value.Value); values.IsError(result) {
			return result
		}
	}
	return m
}
