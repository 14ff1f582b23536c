/*
File    : suji/scope/scope_test.go
Author  : The Suji Authors
*/
package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/suji-lang/suji/values"
)

func TestScope_LookUpWalksChain(t *testing.T) {
	root := NewScope(nil)
	root.Bind("x", values.NumberFromInt(1))
	child := NewScope(root)

	v, ok := child.LookUp("x")
	assert.True(t, ok)
	assert.Equal(t, "1", v.ToString())

	_, ok = child.LookUp("missing")
	assert.False(t, ok)
}

func TestScope_ShadowingDoesNotLeak(t *testing.T) {
	root := NewScope(nil)
	root.Bind("x", values.NumberFromInt(1))
	child := NewScope(root)
	child.Bind("x", values.NumberFromInt(2))

	v, _ := child.LookUp("x")
	assert.Equal(t, "2", v.ToString())
	v, _ = root.LookUp("x")
	assert.Equal(t, "1", v.ToString())
}

// Assignment mutates the nearest enclosing binding; only an unbound name
// creates a fresh entry in the innermost frame.
func TestScope_AssignMutatesEnclosing(t *testing.T) {
	root := NewScope(nil)
	root.Bind("counter", values.NumberFromInt(0))
	inner := NewScope(NewScope(root))

	inner.Assign("counter", values.NumberFromInt(5))
	v, _ := root.LookUp("counter")
	assert.Equal(t, "5", v.ToString())

	inner.Assign("fresh", values.NewString("local"))
	_, ok := root.LookUp("fresh")
	assert.False(t, ok)
	_, ok = inner.LookUp("fresh")
	assert.True(t, ok)
}

// Two closures capturing the same frame observe each other's updates —
// the frame entry is shared, not copied.
func TestScope_SharedCapture(t *testing.T) {
	root := NewScope(nil)
	root.Bind("n", values.NumberFromInt(0))

	captureA := NewScope(root)
	captureB := NewScope(root)

	captureA.Assign("n", values.NumberFromInt(41))
	v, _ := captureB.LookUp("n")
	assert.Equal(t, "41", v.ToString())
}
