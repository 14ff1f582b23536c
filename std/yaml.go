/*
File    : suji/std/yaml.go
Author  : The Suji Authors
*/
package std

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/suji-lang/suji/values"
)

func init() {
	registerModule("yaml", func() *values.Module {
		module := values.NewModule("yaml")
		module.Set("parse", builtin("yaml:parse", 1, 1, yamlParse))
		module.Set("generate", builtin("yaml:generate", 1, 1, yamlGenerate))
		return module
	})
}

func yamlParse(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	text, errV := argString(args, 0, "yaml:parse")
	if errV != nil {
		return errV
	}
	var decoded interface{}
	if err := yaml.Unmarshal([]byte(text), &decoded); err != nil {
		return invalidOp("yaml:parse: %v", err)
	}
	return fromGo(decoded)
}

func yamlGenerate(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	lowered, errV := toGo(args[0])
	if errV != nil {
		return errV
	}
	encoded, err := yaml.Marshal(lowered)
	if err != nil {
		return invalidOp("yaml:generate: %v", err)
	}
	return values.NewString(strings.TrimSuffix(string(encoded), "\n"))
}
