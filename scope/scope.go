/*
File    : suji/scope/scope.go
Author  : The Suji Authors
*/

// Package scope implements the lexical scope chain of the Suji
// interpreter. A Scope is one frame: a mutable mapping from names to
// values, linked to its parent. Closures capture the frame pointer active
// at their point of construction, so frame entries are the unit of sharing:
// a counter closure observes its own updated binding because the closure
// body and the outer world mutate the same entry.
package scope

import "github.com/suji-lang/suji/values"

// Scope is one frame of the lexical scope chain.
type Scope struct {
	// Variables maps names to their current values in this frame
	Variables map[string]values.SujiValue

	// Parent is the enclosing frame; nil marks the root frame
	Parent *Scope
}

// NewScope creates a frame with the given parent. A nil parent creates a
// root frame (the global scope of a program, or the module root frame of an
// imported file).
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]values.SujiValue),
		Parent:    parent,
	}
}

// LookUp resolves a name by walking the chain from this frame outward.
// Inner bindings shadow outer ones.
func (s *Scope) LookUp(name string) (values.SujiValue, bool) {
	for cur := s; cur != nil; cur = cur.Parent {
		if v, ok := cur.Variables[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Bind creates or replaces a binding in this frame only, without consulting
// parents. Used for parameters, loop variables and pattern bindings.
func (s *Scope) Bind(name string, v values.SujiValue) {
	s.Variables[name] = v
}

// Assign implements assignment semantics: if the name is bound anywhere in
// the chain the nearest binding is mutated in place; otherwise a new
// binding is created in this (innermost) frame.
func (s *Scope) Assign(name string, v values.SujiValue) {
	for cur := s; cur != nil; cur = cur.Parent {
		if _, ok := cur.Variables[name]; ok {
			cur.Variables[name] = v
			return
		}
	}
	s.Variables[name] = v
}

// Has reports whether the name is bound anywhere in the chain.
func (s *Scope) Has(name string) bool {
	_, ok := s.LookUp(name)
	return ok
}

// Root returns the outermost frame of the chain. Module top-level bindings
// live in their module's root frame.
func (s *Scope) Root() *Scope {
	cur := s
	for cur.Parent != nil {
		cur = cur.Parent
	}
	return cur
}
