/*
File    : suji/values/number.go
Author  : The Suji Authors
*/
package values

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Number is Suji's one numeric type: an arbitrary-precision base-10
// decimal. There is no NaN and no infinity; operations that would produce
// them (division by zero) raise errors instead. Base-10 arithmetic keeps
// equalities like 0.1 + 0.2 == 0.3 exact.
type Number struct {
	Value decimal.Decimal
}

// GetType returns NumberType.
func (n *Number) GetType() SujiType { return NumberType }

// ToString returns the canonical decimal form with trailing fractional
// zeros trimmed, so 1.50 displays as 1.5.
func (n *Number) ToString() string {
	s := n.Value.String()
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// ToObject returns the inspection form of the number.
func (n *Number) ToObject() string { return "<number(" + n.ToString() + ")>" }

// NewNumber wraps a decimal in a Number value.
func NewNumber(d decimal.Decimal) *Number { return &Number{Value: d} }

// NumberFromInt builds a Number from an int64.
func NumberFromInt(v int64) *Number { return &Number{Value: decimal.NewFromInt(v)} }

// NumberFromFloat builds a Number from a float64. The float is converted
// through its shortest decimal representation, so 0.1 becomes exactly 0.1.
func NumberFromFloat(v float64) *Number { return &Number{Value: decimal.NewFromFloat(v)} }

// NumberFromString parses a decimal literal. The second result is false
// when the literal is malformed.
func NumberFromString(s string) (*Number, bool) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, false
	}
	return &Number{Value: d}, true
}

// IsInteger reports whether the number has no fractional part.
func (n *Number) IsInteger() bool {
	return n.Value.Equal(n.Value.Truncate(0))
}

// Int returns the integer part of the number as an int64.
func (n *Number) Int() int64 {
	return n.Value.IntPart()
}

// String is Suji's string value. Contents are valid UTF-8; indexing and
// iteration operate on Unicode scalars, not bytes.
type String struct {
	Value string
}

// GetType returns StringType.
func (s *String) GetType() SujiType { return StringType }

// ToString returns the raw string contents.
func (s *String) ToString() string { return s.Value }

// ToObject returns the inspection form with quotes.
func (s *String) ToObject() string { return `<string("` + s.Value + `")>` }

// NewString wraps a Go string in a String value.
func NewString(v string) *String { return &String{Value: v} }

// Runes returns the string's Unicode scalars.
func (s *String) Runes() []rune { return []rune(s.Value) }
