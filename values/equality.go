/*
File    : suji/values/equality.go
Author  : The Suji Authors
*/
package values

// Equals implements the language's == operator. Numbers compare by decimal
// value (1.50 == 1.5), strings/bools/nil by value, lists and maps by deep
// structural equality, tuples element-wise, and functions, builtins,
// streams and modules by identity.
func Equals(a, b SujiValue) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.GetType() != b.GetType() {
		return false
	}
	switch av := a.(type) {
	case *Number:
		return av.Value.Equal(b.(*Number).Value)
	case *String:
		return av.Value == b.(*String).Value
	case *Bool:
		return av.Value == b.(*Bool).Value
	case *Nil:
		return true
	case *Regex:
		return av.Pattern == b.(*Regex).Pattern
	case *List:
		bv := b.(*List)
		if len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Equals(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *Tuple:
		bv := b.(*Tuple)
		if len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Equals(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *Map:
		bv := b.(*Map)
		if av.Len() != bv.Len() {
			return false
		}
		for pair := av.Entries.Oldest(); pair != nil; pair = pair.Next() {
			other, ok := bv.Get(pair.Value.Key)
			if !ok || !Equals(pair.Value.Value, other) {
				return false
			}
		}
		return true
	}
	// Functions, builtins, streams, modules: identity.
	return a == b
}
