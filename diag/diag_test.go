/*
File    : suji/diag/diag_test.go
Author  : The Suji Authors
*/
package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_OneLineForm(t *testing.T) {
	err := Errorf(DivideByZero, Span{Start: 4, End: 5, Line: 2, Column: 5}, "division by zero")
	assert.Equal(t, "DivideByZero at 2:5: division by zero", err.Error())

	unspanned := Errorf(Undefined, Span{}, "undefined name")
	assert.Equal(t, "Undefined: undefined name", unspanned.Error())
}

func TestError_CaretPointsAtColumn(t *testing.T) {
	src := "x = 1\ny = 1/0\n"
	err := Errorf(DivideByZero, Span{Start: 10, End: 11, Line: 2, Column: 5}, "division by zero")
	assert.Equal(t,
		"DivideByZero at 2:5: division by zero\ny = 1/0\n    ^",
		err.Caret(src))
}

func TestSpan_Known(t *testing.T) {
	assert.False(t, Span{}.Known())
	assert.True(t, Span{Line: 1, Column: 1}.Known())
	assert.Equal(t, "?:?", Span{}.String())
	assert.Equal(t, "3:7", Span{Line: 3, Column: 7}.String())
}
