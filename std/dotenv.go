/*
File    : suji/std/dotenv.go
Author  : The Suji Authors
*/
package std

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/suji-lang/suji/values"
)

func init() {
	registerModule("dotenv", func() *values.Module {
		module := values.NewModule("dotenv")
		module.Set("load", builtin("dotenv:load", 0, 1, dotenvLoad))
		return module
	})
}

// dotenvLoad reads a .env file (default "./.env"), exports its entries
// into the process environment and returns them as a map. A missing file
// is not an error: it returns {}.
func dotenvLoad(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	path := ".env"
	if len(args) == 1 {
		p, errV := argString(args, 0, "dotenv:load")
		if errV != nil {
			return errV
		}
		path = p
	}
	if _, err := os.Stat(path); err != nil {
		return values.NewMap()
	}
	loaded, err := godotenv.Read(path)
	if err != nil {
		return invalidOp("dotenv:load %s: %v", path, err)
	}
	m := values.NewMap()
	for key, value := range loaded {
		os.Setenv(key, value)
		m.Set(values.NewString(key), values.NewString(value))
	}
	return m
}
