/*
File    : suji/values/regex.go
Author  : The Suji Authors
*/
package values

import "regexp"

// Regex is a compiled regular expression together with its source pattern.
// Regex values are immutable; the same value backs ~ / !~ matching, regex
// patterns in match arms, and the regex method set.
type Regex struct {
	Pattern  string
	Compiled *regexp.Regexp
}

// GetType returns RegexType.
func (r *Regex) GetType() SujiType { return RegexType }

// ToString renders the regex in its literal form.
func (r *Regex) ToString() string { return "/" + r.Pattern + "/" }

// ToObject returns the inspection form of the regex.
func (r *Regex) ToObject() string { return "<regex(" + r.ToString() + ")>" }

// NewRegex compiles a pattern into a Regex value.
func NewRegex(pattern string) (*Regex, error) {
	compiled, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Regex{Pattern: pattern, Compiled: compiled}, nil
}

// Matches reports whether the regex matches anywhere in s.
func (r *Regex) Matches(s string) bool {
	return r.Compiled.MatchString(s)
}
