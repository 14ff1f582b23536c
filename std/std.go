/*
File    : suji/std/std.go
Author  : The Suji Authors
*/

// Package std implements the standard-library registry and the global
// builtins. Each module lives in its own file and registers a builder via
// init(); the registry builds a module on first import and caches it, so
// import std:json parses nothing until a program actually asks for it.
package std

import (
	"io"
	"strings"
	"sync"

	"github.com/suji-lang/suji/values"
)

// builders maps module names to their constructors. Populated by the
// per-module init functions in this package.
var builders = map[string]func() *values.Module{}

var (
	cacheMu sync.Mutex
	cache   = map[string]*values.Module{}
)

// registerModule installs a module builder under its import name.
func registerModule(name string, build func() *values.Module) {
	builders[name] = build
}

// Lookup resolves a standard-library module by name, building it on first
// use and caching the result. Re-imports observe the same Module value.
func Lookup(name string) (*values.Module, bool) {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if module, ok := cache[name]; ok {
		return module, true
	}
	build, ok := builders[name]
	if !ok {
		return nil, false
	}
	module := build()
	cache[name] = module
	return module, true
}

// RootModule materialises the whole std namespace: every module plus the
// top-level print/println builtins. Used by import std.
func RootModule() *values.Module {
	cacheMu.Lock()
	if root, ok := cache["std"]; ok {
		cacheMu.Unlock()
		return root
	}
	cacheMu.Unlock()

	root := values.NewModule("std")
	root.Set("print", builtinPrint)
	root.Set("println", builtinPrintln)
	for name := range builders {
		if module, ok := Lookup(name); ok {
			root.Set(name, module)
		}
	}
	cacheMu.Lock()
	cache["std"] = root
	cacheMu.Unlock()
	return root
}

// GlobalBuiltins returns the natives bound in every root scope without an
// import: the printing functions. Everything else arrives via import.
func GlobalBuiltins() map[string]*values.Builtin {
	return map[string]*values.Builtin{
		"print":   builtinPrint,
		"println": builtinPrintln,
	}
}

// builtin is a shorthand constructor used across this package.
func builtin(name string, min, max int, fn values.CallbackFunc) *values.Builtin {
	return &values.Builtin{Name: name, MinArgs: min, MaxArgs: max, Callback: fn}
}

// printTo renders the print arguments: values joined by a single space,
// written to the stream given as an optional final argument, defaulting to
// the current stdout.
func printTo(rt values.Runtime, args []values.SujiValue, newline bool) values.SujiValue {
	target := rt.StdoutStream()
	if len(args) > 0 {
		if stream, ok := args[len(args)-1].(*values.Stream); ok {
			target = stream
			args = args[:len(args)-1]
		}
	}
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = arg.ToString()
	}
	text := strings.Join(parts, " ")
	if newline {
		text += "\n"
	}
	if target == nil || !target.CanWrite() {
		return streamError("stream is not writable")
	}
	if _, err := io.WriteString(target.Writer, text); err != nil {
		return streamError("write failed: %v", err)
	}
	return values.NIL
}

var builtinPrint = builtin("print", 0, -1, func(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	return printTo(rt, args, false)
})

var builtinPrintln = builtin("println", 0, -1, func(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	return printTo(rt, args, true)
})
