/*
File    : suji/methods/list_methods.go
Author  : The Suji Authors
*/
package methods

import (
	"sort"
	"strings"

	"github.com/suji-lang/suji/diag"
	"github.com/suji-lang/suji/values"
)

func init() {
	register(values.ListType, []*Method{
		{Name: "len", MinArgs: 0, MaxArgs: 0, Func: listLen},
		{Name: "push", MinArgs: 1, MaxArgs: -1, Func: listPush},
		{Name: "pop", MinArgs: 0, MaxArgs: 0, Func: listPop},
		{Name: "insert", MinArgs: 2, MaxArgs: 2, Func: listInsert},
		{Name: "remove", MinArgs: 1, MaxArgs: 1, Func: listRemove},
		{Name: "map", MinArgs: 1, MaxArgs: 1, Func: listMap},
		{Name: "filter", MinArgs: 1, MaxArgs: 1, Func: listFilter},
		{Name: "reduce", MinArgs: 1, MaxArgs: 2, Func: listReduce},
		{Name: "each", MinArgs: 1, MaxArgs: 1, Func: listEach},
		{Name: "sort", MinArgs: 0, MaxArgs: 0, Func: listSort},
		{Name: "sort_by", MinArgs: 1, MaxArgs: 1, Func: listSortBy},
		{Name: "reverse", MinArgs: 0, MaxArgs: 0, Func: listReverse},
		{Name: "contains", MinArgs: 1, MaxArgs: 1, Func: listContains},
		{Name: "index_of", MinArgs: 1, MaxArgs: 1, Func: listIndexOf},
		{Name: "join", MinArgs: 1, MaxArgs: 1, Func: listJoin},
		{Name: "first", MinArgs: 0, MaxArgs: 0, Func: listFirst},
		{Name: "last", MinArgs: 0, MaxArgs: 0, Func: listLast},
		{Name: "unique", MinArgs: 0, MaxArgs: 0, Func: listUnique},
		{Name: "concat", MinArgs: 1, MaxArgs: 1, Func: listConcat},
		{Name: "sum", MinArgs: 0, MaxArgs: 0, Func: listSum},
		{Name: "min", MinArgs: 0, MaxArgs: 0, Func: listMin},
		{Name: "max", MinArgs: 0, MaxArgs: 0, Func: listMax},
	})
}

func listLen(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	return decimalFromInt(recv.(*values.List).Len())
}

// listPush appends in place and returns the list for chaining.
func listPush(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	list := recv.(*values.List)
	list.Elements = append(list.Elements, args...)
	return list
}

// listPop removes and returns the last element.
func listPop(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	list := recv.(*values.List)
	if list.Len() == 0 {
		return indexErr("pop from an empty list")
	}
	last := list.Elements[list.Len()-1]
	list.Elements = list.Elements[:list.Len()-1]
	return last
}

func listInsert(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	list := recv.(*values.List)
	n, err := wantNumber(args[0], "list::insert")
	if err != nil {
		return err
	}
	idx := int(n.Int())
	if idx < 0 || idx > list.Len() {
		return indexErr("insert index %d out of range for length %d", idx, list.Len())
	}
	list.Elements = append(list.Elements[:idx],
		append([]values.SujiValue{args[1]}, list.Elements[idx:]...)...)
	return list
}

// listRemove removes the element at the given index and returns it.
func listRemove(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	list := recv.(*values.List)
	n, err := wantNumber(args[0], "list::remove")
	if err != nil {
		return err
	}
	idx := int(n.Int())
	if idx < 0 || idx >= list.Len() {
		return indexErr("remove index %d out of range for length %d", idx, list.Len())
	}
	removed := list.Elements[idx]
	list.Elements = append(list.Elements[:idx], list.Elements[idx+1:]...)
	return removed
}

func listMap(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	if err := wantCallable(args[0], "list::map"); err != nil {
		return err
	}
	list := recv.(*values.List)
	mapped := make([]values.SujiValue, 0, list.Len())
	for _, elem := range list.Elements {
		result := rt.CallFunction(args[0], elem)
		if values.IsError(result) {
			return result
		}
		mapped = append(mapped, result)
	}
	return values.NewList(mapped...)
}

func listFilter(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	if err := wantCallable(args[0], "list::filter"); err != nil {
		return err
	}
	list := recv.(*values.List)
	kept := []values.SujiValue{}
	for _, elem := range list.Elements {
		result := rt.CallFunction(args[0], elem)
		if values.IsError(result) {
			return result
		}
		keep, isBool := values.Truthy(result)
		if !isBool {
			return typeErr("list::filter predicate must return a bool, got %s", result.GetType())
		}
		if keep {
			kept = append(kept, elem)
		}
	}
	return values.NewList(kept...)
}

// listReduce folds the list with fn(acc, elem). With no initial value the
// first element seeds the accumulator.
func listReduce(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	if err := wantCallable(args[0], "list::reduce"); err != nil {
		return err
	}
	list := recv.(*values.List)
	var acc values.SujiValue
	start := 0
	if len(args) == 2 {
		acc = args[1]
	} else {
		if list.Len() == 0 {
			return typeErr("list::reduce of an empty list needs an initial value")
		}
		acc = list.Elements[0]
		start = 1
	}
	for _, elem := range list.Elements[start:] {
		acc = rt.CallFunction(args[0], acc, elem)
		if values.IsError(acc) {
			return acc
		}
	}
	return acc
}

func listEach(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	if err := wantCallable(args[0], "list::each"); err != nil {
		return err
	}
	for _, elem := range recv.(*values.List).Elements {
		if result := rt.CallFunction(args[0], elem); values.IsError(result) {
			return result
		}
	}
	return recv
}

// listSort sorts a copy: numbers numerically, strings lexicographically.
// Mixed element kinds are a type error.
func listSort(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	list := recv.(*values.List)
	sorted := append([]values.SujiValue{}, list.Elements...)
	var sortErr values.SujiValue
	sort.SliceStable(sorted, func(i, j int) bool {
		if sortErr != nil {
			return false
		}
		less, err := compareValues(sorted[i], sorted[j])
		if err != nil {
			sortErr = err
			return false
		}
		return less < 0
	})
	if sortErr != nil {
		return sortErr
	}
	return values.NewList(sorted...)
}

// listSortBy sorts a copy by the key function's result.
func listSortBy(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	if err := wantCallable(args[0], "list::sort_by"); err != nil {
		return err
	}
	list := recv.(*values.List)
	type keyed struct {
		key  values.SujiValue
		elem values.SujiValue
	}
	pairs := make([]keyed, 0, list.Len())
	for _, elem := range list.Elements {
		key := rt.CallFunction(args[0], elem)
		if values.IsError(key) {
			return key
		}
		pairs = append(pairs, keyed{key: key, elem: elem})
	}
	var sortErr values.SujiValue
	sort.SliceStable(pairs, func(i, j int) bool {
		if sortErr != nil {
			return false
		}
		less, err := compareValues(pairs[i].key, pairs[j].key)
		if err != nil {
			sortErr = err
			return false
		}
		return less < 0
	})
	if sortErr != nil {
		return sortErr
	}
	sorted := make([]values.SujiValue, len(pairs))
	for i, p := range pairs {
		sorted[i] = p.elem
	}
	return values.NewList(sorted...)
}

func listReverse(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	list := recv.(*values.List)
	reversed := make([]values.SujiValue, list.Len())
	for i, elem := range list.Elements {
		reversed[list.Len()-1-i] = elem
	}
	return values.NewList(reversed...)
}

func listContains(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	for _, elem := range recv.(*values.List).Elements {
		if values.Equals(elem, args[0]) {
			return values.TRUE
		}
	}
	return values.FALSE
}

func listIndexOf(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	for i, elem := range recv.(*values.List).Elements {
		if values.Equals(elem, args[0]) {
			return decimalFromInt(i)
		}
	}
	return decimalFromInt(-1)
}

func listJoin(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	sep, err := wantString(args[0], "list::join")
	if err != nil {
		return err
	}
	parts := make([]string, 0, recv.(*values.List).Len())
	for _, elem := range recv.(*values.List).Elements {
		parts = append(parts, elem.ToString())
	}
	return values.NewString(strings.Join(parts, sep.Value))
}

func listFirst(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	list := recv.(*values.List)
	if list.Len() == 0 {
		return values.NIL
	}
	return list.Elements[0]
}

func listLast(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	list := recv.(*values.List)
	if list.Len() == 0 {
		return values.NIL
	}
	return list.Elements[list.Len()-1]
}

func listUnique(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	list := recv.(*values.List)
	unique := []values.SujiValue{}
	for _, elem := range list.Elements {
		seen := false
		for _, kept := range unique {
			if values.Equals(elem, kept) {
				seen = true
				break
			}
		}
		if !seen {
			unique = append(unique, elem)
		}
	}
	return values.NewList(unique...)
}

func listConcat(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	other, ok := args[0].(*values.List)
	if !ok {
		return typeErr("list::concat expects a list argument, got %s", args[0].GetType())
	}
	joined := append(append([]values.SujiValue{}, recv.(*values.List).Elements...), other.Elements...)
	return values.NewList(joined...)
}

func listSum(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	sum := decimalFromInt(0)
	for _, elem := range recv.(*values.List).Elements {
		n, ok := elem.(*values.Number)
		if !ok {
			return typeErr("list::sum expects numbers, found %s", elem.GetType())
		}
		sum = values.NewNumber(sum.Value.Add(n.Value))
	}
	return sum
}

func listMin(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	return listExtreme(recv.(*values.List), -1)
}

func listMax(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	return listExtreme(recv.(*values.List), 1)
}

func listExtreme(list *values.List, direction int) values.SujiValue {
	if list.Len() == 0 {
		return values.NIL
	}
	best := list.Elements[0]
	for _, elem := range list.Elements[1:] {
		cmp, err := compareValues(elem, best)
		if err != nil {
			return err
		}
		if cmp*direction > 0 {
			best = elem
		}
	}
	return best
}

// compareValues orders two values of the same comparable kind, returning
// -1, 0, or 1. Numbers order numerically, strings byte-wise.
func compareValues(a, b values.SujiValue) (int, *values.Error) {
	if an, ok := a.(*values.Number); ok {
		if bn, ok := b.(*values.Number); ok {
			return an.Value.Cmp(bn.Value), nil
		}
	}
	if as, ok := a.(*values.String); ok {
		if bs, ok := b.(*values.String); ok {
			return strings.Compare(as.Value, bs.Value), nil
		}
	}
	return 0, typeErr("cannot order %s and %s", a.GetType(), b.GetType())
}

func indexErr(format string, args ...interface{}) *values.Error {
	return values.NewError(diag.IndexOutOfRange, format, args...)
}
