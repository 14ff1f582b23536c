/*
File    : suji/main.go
Author  : The Suji Authors
*/

// Command suji interprets Suji source files. With a path argument the
// file runs to completion; without one an interactive REPL starts. The
// exit code is 0 on clean completion, 1 on an uncaught error, or whatever
// os:exit requested.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/suji-lang/suji/eval"
	"github.com/suji-lang/suji/parser"
	"github.com/suji-lang/suji/repl"
	"github.com/suji-lang/suji/values"
)

const version = "0.2.0"

const banner = `  ___ _   _  ___ (_)
 / __| | | |/ _ \| |
 \__ \ |_| | (_) | |
 |___/\__,_|\___// |
               |__/`

var errColor = color.New(color.FgRed)

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		r := repl.NewRepl(banner, version, "------------------------------------------", "suji >>> ")
		if err := r.Run(); err != nil {
			errColor.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if args[0] == "--version" || args[0] == "-v" {
		fmt.Println("suji " + version)
		return
	}

	os.Exit(runFile(args[0]))
}

// runFile interprets one source file and returns the process exit code.
func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		errColor.Fprintf(os.Stderr, "suji: cannot read %s: %v\n", path, err)
		return 1
	}

	par := parser.NewParser(string(source))
	root := par.Parse()
	if par.HasErrors() {
		for _, parseErr := range par.Errors {
			errColor.Fprintln(os.Stderr, parseErr.Caret(string(source)))
		}
		return 1
	}

	ev := eval.NewEvaluator()
	ev.SetScriptPath(path)
	result := ev.EvalProgram(root)
	if values.IsError(result) {
		errColor.Fprintln(os.Stderr, result.(*values.Error).Diag().Caret(string(source)))
		return 1
	}
	return 0
}
