/*
File    : suji/std/errors.go
Author  : The Suji Authors
*/
package std

import (
	"github.com/suji-lang/suji/diag"
	"github.com/suji-lang/suji/values"
)

// Error constructors shared by the std modules.

func typeError(format string, args ...interface{}) *values.Error {
	return values.NewError(diag.TypeError, format, args...)
}

func invalidOp(format string, args ...interface{}) *values.Error {
	return values.NewError(diag.InvalidOperation, format, args...)
}

func streamError(format string, args ...interface{}) *values.Error {
	return values.NewError(diag.StreamError, format, args...)
}

// argString extracts a required string argument.
func argString(args []values.SujiValue, i int, fn string) (string, *values.Error) {
	s, ok := args[i].(*values.String)
	if !ok {
		return "", typeError("%s: argument %d must be a string, got %s", fn, i+1, args[i].GetType())
	}
	return s.Value, nil
}

// argNumber extracts a required number argument.
func argNumber(args []values.SujiValue, i int, fn string) (*values.Number, *values.Error) {
	n, ok := args[i].(*values.Number)
	if !ok {
		return nil, typeError("%s: argument %d must be a number, got %s", fn, i+1, args[i].GetType())
	}
	return n, nil
}

// argBool extracts an optional boolean argument with a default.
func argBool(args []values.SujiValue, i int, fallback bool, fn string) (bool, *values.Error) {
	if i >= len(args) {
		return fallback, nil
	}
	b, ok := args[i].(*values.Bool)
	if !ok {
		return false, typeError("%s: argument %d must be a bool, got %s", fn, i+1, args[i].GetType())
	}
	return b.Value, nil
}
