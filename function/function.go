/*
File    : suji/function/function.go
Author  : The Suji Authors
*/

// Package function defines the user-defined closure value. It lives apart
// from the values package because a closure body is AST and its capture is
// a scope chain, which would otherwise create an import cycle between
// values and parser.
package function

import (
	"fmt"
	"strings"

	"github.com/suji-lang/suji/parser"
	"github.com/suji-lang/suji/scope"
	"github.com/suji-lang/suji/values"
)

// Function is a user-defined closure: a parameter list with optional
// defaults, a body (a single expression or a block), and the scope chain
// captured at the point of construction. Invoking the function pushes a
// fresh frame holding the parameter bindings onto the captured chain, which
// is what makes mutable captured counters behave.
type Function struct {
	Name      string // bound name, if any; "" for anonymous lambdas
	Params    []*parser.Param
	ExprBody  parser.ExpressionNode
	BlockBody *parser.BlockStatementNode
	Scp       *scope.Scope
}

// New builds a Function from a lambda node and the scope active at its
// construction site.
func New(node *parser.LambdaNode, scp *scope.Scope) *Function {
	return &Function{
		Params:    node.Params,
		ExprBody:  node.ExprBody,
		BlockBody: node.BlockBody,
		Scp:       scp,
	}
}

// GetType returns the function kind.
func (f *Function) GetType() values.SujiType {
	return values.FunctionType
}

// ToString renders the function for display.
func (f *Function) ToString() string {
	if f.Name != "" {
		return fmt.Sprintf("function(%s)", f.Name)
	}
	return "function"
}

// ToObject returns the inspection form including parameter names.
func (f *Function) ToObject() string {
	var params []string
	for _, p := range f.Params {
		params = append(params, p.Name)
	}
	name := f.Name
	if name == "" {
		name = "anonymous"
	}
	return fmt.Sprintf("<function[%s(%s)]>", name, strings.Join(params, ", "))
}

// MinArgs returns the number of parameters without defaults; callers must
// supply at least this many arguments.
func (f *Function) MinArgs() int {
	n := 0
	for _, p := range f.Params {
		if p.Default == nil {
			n++
		}
	}
	return n
}
