/*
File    : suji/diag/diag.go
Author  : The Suji Authors
*/

// Package diag defines source spans and the error kinds shared by the
// lexer, parser and evaluator. Every diagnostic the interpreter produces
// carries a Kind, a message, and (when the source location is known) a Span,
// which is enough to render a one-line report with a caret.
package diag

import "fmt"

// Span identifies a byte range in a source file together with the
// line/column of its start. Lines and columns are 1-indexed; a zero Span
// means "no location available".
type Span struct {
	Start  int // byte offset of the first byte, inclusive
	End    int // byte offset past the last byte, exclusive
	Line   int // line of Start (1-indexed)
	Column int // column of Start (1-indexed)
}

// Known reports whether the span carries a real source location.
func (s Span) Known() bool {
	return s.Line > 0
}

// String renders the span as "line:column" for diagnostics.
func (s Span) String() string {
	if !s.Known() {
		return "?:?"
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// Kind is the machine-readable classification of a diagnostic.
type Kind string

// Lexical error kinds.
const (
	UnterminatedString Kind = "UnterminatedString"
	UnterminatedRegex  Kind = "UnterminatedRegex"
	UnterminatedShell  Kind = "UnterminatedShell"
	InvalidEscape      Kind = "InvalidEscape"
	InvalidNumber      Kind = "InvalidNumber"
	InvalidEncoding    Kind = "InvalidEncoding"
	UnexpectedChar     Kind = "UnexpectedChar"
)

// Parse error kinds.
const (
	UnexpectedToken         Kind = "UnexpectedToken"
	ExpectedExpression      Kind = "ExpectedExpression"
	PipelineStageMustBeCall Kind = "PipelineStageMustBeCall"
	InvalidAssignTarget     Kind = "InvalidAssignTarget"
	InvalidPattern          Kind = "InvalidPattern"
	InvalidRegex            Kind = "InvalidRegex"
)

// Runtime error kinds.
const (
	TypeError          Kind = "TypeError"
	DivideByZero       Kind = "DivideByZero"
	IndexOutOfRange    Kind = "IndexOutOfRange"
	KeyNotFound        Kind = "KeyNotFound"
	Undefined          Kind = "Undefined"
	ArityMismatch      Kind = "ArityMismatch"
	InvalidOperation   Kind = "InvalidOperation"
	StreamError        Kind = "StreamError"
	ImportError        Kind = "ImportError"
	PatternMatchFailed Kind = "PatternMatchFailed"
	BadBreakLabel      Kind = "BadBreakLabel"
)

// Error is a diagnostic with a kind, a message and an optional span.
// It satisfies the error interface so scanner-level failures can flow
// through ordinary Go error returns before they are wrapped into
// interpreter error values.
type Error struct {
	Kind    Kind
	Message string
	Span    Span
}

// Errorf builds an Error with a formatted message.
func Errorf(kind Kind, span Span, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Span: span}
}

// Error renders the diagnostic as a single line: "kind at line:col: message".
func (e *Error) Error() string {
	if e.Span.Known() {
		return fmt.Sprintf("%s at %s: %s", e.Kind, e.Span, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Caret renders a two-line diagnostic against the given source text:
// the offending line followed by a caret under the start column.
// Returns only the one-line form when the span is unknown.
func (e *Error) Caret(src string) string {
	if !e.Span.Known() {
		return e.Error()
	}
	line := extractLine(src, e.Span.Line)
	pad := make([]byte, 0, e.Span.Column)
	for i := 1; i < e.Span.Column; i++ {
		if i-1 < len(line) && line[i-1] == '\t' {
			pad = append(pad, '\t')
		} else {
			pad = append(pad, ' ')
		}
	}
	return fmt.Sprintf("%s\n%s\n%s^", e.Error(), line, pad)
}

// extractLine returns the n-th (1-indexed) line of src without its newline.
func extractLine(src string, n int) string {
	start := 0
	line := 1
	for i := 0; i < len(src); i++ {
		if line == n {
			start = i
			break
		}
		if src[i] == '\n' {
			line++
			start = i + 1
		}
	}
	end := start
	for end < len(src) && src[end] != '\n' {
		end++
	}
	return src[start:end]
}
