/*
File    : suji/std/env.go
Author  : The Suji Authors
*/
package std

import (
	"os"
	"strings"

	"github.com/suji-lang/suji/values"
)

func init() {
	registerModule("env", func() *values.Module {
		module := values.NewModule("env")
		module.Set("var", envVarMap())
		module.Set("args", envArgs())
		module.Set("argv", envArgs())
		return module
	})
}

// envVarMap builds the process-environment map. Mutations write through
// to the OS environment, so they are visible to the current process and
// inherited by child processes (backtick commands included).
func envVarMap() *values.Map {
	m := values.NewMap()
	for _, entry := range os.Environ() {
		key, value, found := strings.Cut(entry, "=")
		if !found {
			continue
		}
		m.Set(values.NewString(key), values.NewString(value))
	}
	m.OnSet = func(key, value values.SujiValue) {
		os.Setenv(key.ToString(), value.ToString())
	}
	m.OnDelete = func(key values.SujiValue) {
		os.Unsetenv(key.ToString())
	}
	return m
}

// envArgs exposes the process arguments as a list of strings.
func envArgs() *values.List {
	elements := make([]values.SujiValue, len(os.Args))
	for i, arg := range os.Args {
		elements[i] = values.NewString(arg)
	}
	return values.NewList(elements...)
}
