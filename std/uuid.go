/*
File    : suji/std/uuid.go
Author  : The Suji Authors
*/
package std

import (
	"github.com/google/uuid"

	"github.com/suji-lang/suji/values"
)

func init() {
	registerModule("uuid", func() *values.Module {
		module := values.NewModule("uuid")
		module.Set("v4", builtin("uuid:v4", 0, 0, uuidV4))
		module.Set("v5", builtin("uuid:v5", 2, 2, uuidV5))
		module.Set("is_valid", builtin("uuid:is_valid", 1, 1, uuidIsValid))
		return module
	})
}

func uuidV4(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	return values.NewString(uuid.NewString())
}

// uuidV5 derives a name-based UUID: uuid:v5(namespace_uuid, name).
func uuidV5(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	namespace, errV := argString(args, 0, "uuid:v5")
	if errV != nil {
		return errV
	}
	name, errV := argString(args, 1, "uuid:v5")
	if errV != nil {
		return errV
	}
	ns, err := uuid.Parse(namespace)
	if err != nil {
		return invalidOp("uuid:v5: invalid namespace: %v", err)
	}
	return values.NewString(uuid.NewSHA1(ns, []byte(name)).String())
}

func uuidIsValid(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	text, errV := argString(args, 0, "uuid:is_valid")
	if errV != nil {
		return errV
	}
	_, err := uuid.Parse(text)
	return values.BoolOf(err == nil)
}
