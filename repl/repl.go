/*
File    : suji/repl/repl.go
Author  : The Suji Authors

Package repl implements the interactive Read-Eval-Print Loop of the Suji
interpreter. Lines are read with readline (history and line editing
included) and evaluated as statements in one persistent session
environment; results, errors and the banner are colorized.
*/
package repl

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/suji-lang/suji/eval"
	"github.com/suji-lang/suji/parser"
	"github.com/suji-lang/suji/values"
)

// Color definitions for REPL output.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl encapsulates the configuration of an interactive session.
type Repl struct {
	Banner  string // banner displayed at startup
	Version string // interpreter version string
	Line    string // separator line
	Prompt  string // prompt shown to the user
}

// NewRepl creates a REPL with the given presentation strings.
func NewRepl(banner, version, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

// PrintBannerInfo writes the welcome banner and usage hints.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version)
	cyanColor.Fprintln(writer, "Enter statements line by line. Ctrl-D exits.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Run reads lines until EOF, evaluating each in the session environment.
// Errors report and return to the prompt; they never end the session.
func (r *Repl) Run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          r.Prompt,
		HistoryFile:     historyPath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "bye",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	r.PrintBannerInfo(rl.Stdout())

	ev := eval.NewEvaluator()
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			return nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		r.evalLine(rl.Stdout(), ev, line)
	}
}

// evalLine parses and evaluates one input line, printing the result or
// the first diagnostic.
func (r *Repl) evalLine(writer io.Writer, ev *eval.Evaluator, line string) {
	par := parser.NewParser(line)
	root := par.Parse()
	if par.HasErrors() {
		for _, parseErr := range par.Errors {
			redColor.Fprintln(writer, parseErr.Caret(line))
		}
		return
	}
	result := ev.EvalProgram(root)
	if values.IsError(result) {
		redColor.Fprintln(writer, result.(*values.Error).Diag().Caret(line))
		return
	}
	if result != nil && result != values.NIL {
		yellowColor.Fprintln(writer, result.ToString())
	}
}

// historyPath places the readline history file in the user's home.
func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".suji_history")
}
