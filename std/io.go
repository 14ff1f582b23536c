/*
File    : suji/std/io.go
Author  : The Suji Authors
*/
package std

import (
	"os"

	"github.com/suji-lang/suji/values"
)

func init() {
	registerModule("io", func() *values.Module {
		module := values.NewModule("io")
		// The std streams are placeholders: the evaluator resolves
		// io:stdin / io:stdout / io:stderr against its current streams so
		// pipeline stages observe their redirected endpoints.
		module.Set("stdin", values.NewReaderStream("stdin", os.Stdin))
		module.Set("stdout", values.NewWriterStream("stdout", os.Stdout))
		module.Set("stderr", values.NewWriterStream("stderr", os.Stderr))
		module.Set("open", builtin("io:open", 1, 3, ioOpen))
		return module
	})
}

// ioOpen opens a file as a stream: io:open(path, create=false,
// truncate=false). Without create the file must exist and opens
// read/write; create adds O_CREATE, truncate adds O_TRUNC.
func ioOpen(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	path, errV := argString(args, 0, "io:open")
	if errV != nil {
		return errV
	}
	create, errV := argBool(args, 1, false, "io:open")
	if errV != nil {
		return errV
	}
	truncate, errV := argBool(args, 2, false, "io:open")
	if errV != nil {
		return errV
	}
	flags := os.O_RDWR
	if create {
		flags |= os.O_CREATE
	}
	if truncate {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return streamError("io:open %s: %v", path, err)
	}
	return values.NewFileStream(f)
}
