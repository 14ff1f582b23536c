/*
File    : suji/std/toml.go
Author  : The Suji Authors
*/
package std

import (
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/suji-lang/suji/values"
)

func init() {
	registerModule("toml", func() *values.Module {
		module := values.NewModule("toml")
		module.Set("parse", builtin("toml:parse", 1, 1, tomlParse))
		module.Set("generate", builtin("toml:generate", 1, 1, tomlGenerate))
		return module
	})
}

func tomlParse(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	text, errV := argString(args, 0, "toml:parse")
	if errV != nil {
		return errV
	}
	var decoded map[string]interface{}
	if err := toml.Unmarshal([]byte(text), &decoded); err != nil {
		return invalidOp("toml:parse: %v", err)
	}
	return fromGo(decoded)
}

func tomlGenerate(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	if _, ok := args[0].(*values.Map); !ok {
		return typeError("toml:generate expects a map at the top level, got %s", args[0].GetType())
	}
	lowered, errV := toGo(args[0])
	if errV != nil {
		return errV
	}
	encoded, err := toml.Marshal(lowered)
	if err != nil {
		return invalidOp("toml:generate: %v", err)
	}
	return values.NewString(strings.TrimSuffix(string(encoded), "\n"))
}
