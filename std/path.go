/*
File    : suji/std/path.go
Author  : The Suji Authors
*/
package std

import (
	"path/filepath"

	"github.com/suji-lang/suji/values"
)

func init() {
	registerModule("path", func() *values.Module {
		module := values.NewModule("path")
		module.Set("join", builtin("path:join", 1, -1, pathJoin))
		module.Set("dirname", pathStringBuiltin("path:dirname", filepath.Dir))
		module.Set("basename", pathStringBuiltin("path:basename", filepath.Base))
		module.Set("extname", pathStringBuiltin("path:extname", filepath.Ext))
		module.Set("normalize", pathStringBuiltin("path:normalize", filepath.Clean))
		module.Set("is_abs", builtin("path:is_abs", 1, 1, pathIsAbs))
		return module
	})
}

func pathJoin(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	parts := make([]string, 0, len(args))
	for i := range args {
		part, errV := argString(args, i, "path:join")
		if errV != nil {
			return errV
		}
		parts = append(parts, part)
	}
	return values.NewString(filepath.Join(parts...))
}

func pathStringBuiltin(name string, fn func(string) string) *values.Builtin {
	return builtin(name, 1, 1, func(rt values.Runtime, args []values.SujiValue) values.SujiValue {
		path, errV := argString(args, 0, name)
		if errV != nil {
			return errV
		}
		return values.NewString(fn(path))
	})
}

func pathIsAbs(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	path, errV := argString(args, 0, "path:is_abs")
	if errV != nil {
		return errV
	}
	return values.BoolOf(filepath.IsAbs(path))
}
