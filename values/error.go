/*
File    : suji/values/error.go
Author  : The Suji Authors
*/
package values

import (
	"fmt"

	"github.com/suji-lang/suji/diag"
)

// Error is a runtime error flowing through evaluation as a value. Suji has
// no user-level catch: errors propagate to the top-level driver (or the
// REPL line boundary), which renders them and exits non-zero. The Kind and
// Span give the driver enough to print a one-line caret diagnostic.
type Error struct {
	Kind    diag.Kind
	Message string
	Span    diag.Span
}

// GetType returns ErrorType.
func (e *Error) GetType() SujiType { return ErrorType }

// ToString renders the error as "Kind: message".
func (e *Error) ToString() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// ToObject returns the inspection form of the error.
func (e *Error) ToObject() string { return "<error(" + e.ToString() + ")>" }

// Diag converts the error into its diagnostic form for rendering.
func (e *Error) Diag() *diag.Error {
	return &diag.Error{Kind: e.Kind, Message: e.Message, Span: e.Span}
}

// NewError builds an Error value with a formatted message and no span.
// Spans are attached by the evaluator where the source location is known.
func NewError(kind diag.Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WithSpan returns the error annotated with a source span. An error that
// already carries a span keeps it (the innermost location wins).
func (e *Error) WithSpan(span diag.Span) *Error {
	if e.Span.Known() {
		return e
	}
	return &Error{Kind: e.Kind, Message: e.Message, Span: span}
}

// IsError reports whether v is an Error value.
func IsError(v SujiValue) bool {
	if v == nil {
		return false
	}
	return v.GetType() == ErrorType
}
