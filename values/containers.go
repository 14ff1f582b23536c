/*
File    : suji/values/containers.go
Author  : The Suji Authors
*/
package values

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// List is an ordered, growable sequence with reference semantics: every
// name bound to the same list shares its mutations.
type List struct {
	Elements []SujiValue
}

// GetType returns ListType.
func (l *List) GetType() SujiType { return ListType }

// ToString renders the list as [e1, e2, ...] with strings quoted.
func (l *List) ToString() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range l.Elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(Display(e))
	}
	sb.WriteByte(']')
	return sb.String()
}

// ToObject returns the inspection form of the list.
func (l *List) ToObject() string { return "<list" + l.ToString() + ">" }

// NewList builds a list value over the given elements.
func NewList(elements ...SujiValue) *List { return &List{Elements: elements} }

// Len returns the number of elements.
func (l *List) Len() int { return len(l.Elements) }

// MapEntry is one key/value pair of a Map. The original key value is kept
// alongside the value so iteration can surface it unchanged.
type MapEntry struct {
	Key   SujiValue
	Value SujiValue
}

// Map is an insertion-ordered mapping from hashable keys (strings, numbers,
// bools) to values. keys()/values()/iteration all follow insertion order.
// Maps have reference semantics like lists.
//
// OnSet and OnDelete, when non-nil, are invoked after a successful
// mutation. The environment map uses them to write through to the OS
// environment so mutations are inherited by child processes.
type Map struct {
	Entries *orderedmap.OrderedMap[string, *MapEntry]

	OnSet    func(key, value SujiValue)
	OnDelete func(key SujiValue)
}

// NewMap builds an empty map value.
func NewMap() *Map {
	return &Map{Entries: orderedmap.New[string, *MapEntry]()}
}

// GetType returns MapType.
func (m *Map) GetType() SujiType { return MapType }

// ToString renders the map as {k1: v1, k2: v2} in insertion order.
func (m *Map) ToString() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for pair := m.Entries.Oldest(); pair != nil; pair = pair.Next() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(pair.Value.Key.ToString())
		sb.WriteString(": ")
		sb.WriteString(Display(pair.Value.Value))
	}
	sb.WriteByte('}')
	return sb.String()
}

// ToObject returns the inspection form of the map.
func (m *Map) ToObject() string { return "<map" + m.ToString() + ">" }

// Len returns the number of entries.
func (m *Map) Len() int { return m.Entries.Len() }

// Set inserts or updates an entry. An existing key keeps its insertion
// position; a new key appends.
func (m *Map) Set(key, value SujiValue) bool {
	hash, ok := HashKey(key)
	if !ok {
		return false
	}
	if existing, present := m.Entries.Get(hash); present {
		existing.Value = value
	} else {
		m.Entries.Set(hash, &MapEntry{Key: key, Value: value})
	}
	if m.OnSet != nil {
		m.OnSet(key, value)
	}
	return true
}

// Get looks up a key. The second result is false when the key is absent or
// not hashable.
func (m *Map) Get(key SujiValue) (SujiValue, bool) {
	hash, ok := HashKey(key)
	if !ok {
		return nil, false
	}
	entry, present := m.Entries.Get(hash)
	if !present {
		return nil, false
	}
	return entry.Value, true
}

// Delete removes a key, reporting whether it was present.
func (m *Map) Delete(key SujiValue) bool {
	hash, ok := HashKey(key)
	if !ok {
		return false
	}
	_, present := m.Entries.Delete(hash)
	if present && m.OnDelete != nil {
		m.OnDelete(key)
	}
	return present
}

// Tuple is an immutable fixed-arity sequence with value semantics. Multi-
// value returns surface as tuples, and tuple patterns destructure them.
type Tuple struct {
	Elements []SujiValue
}

// GetType returns TupleType.
func (t *Tuple) GetType() SujiType { return TupleType }

// ToString renders the tuple as (e1, e2, ...).
func (t *Tuple) ToString() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, e := range t.Elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(Display(e))
	}
	sb.WriteByte(')')
	return sb.String()
}

// ToObject returns the inspection form of the tuple.
func (t *Tuple) ToObject() string { return "<tuple" + t.ToString() + ">" }

// NewTuple builds a tuple over the given elements.
func NewTuple(elements ...SujiValue) *Tuple { return &Tuple{Elements: elements} }

// Len returns the tuple's arity.
func (t *Tuple) Len() int { return len(t.Elements) }

// HashKey returns the canonical map-key form of a value. Only strings,
// numbers, bools and nil are hashable; the key carries a type tag so that
// "1" and 1 stay distinct keys.
func HashKey(v SujiValue) (string, bool) {
	switch val := v.(type) {
	case *String:
		return "s:" + val.Value, true
	case *Number:
		return "n:" + val.ToString(), true
	case *Bool:
		return "b:" + val.ToString(), true
	case *Nil:
		return "nil", true
	}
	return "", false
}
