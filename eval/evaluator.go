/*
File    : suji/eval/evaluator.go
Author  : The Suji Authors
*/

// Package eval implements the tree-walking evaluator for Suji. The
// Evaluator holds the current scope chain, the global builtins, the module
// cache and the three standard streams. Statement evaluation produces
// either an ordinary value or a control-flow signal (break / continue /
// return) that enclosing loops and calls capture; errors are values that
// propagate to the top-level driver.
package eval

import (
	"os"
	"path/filepath"

	"github.com/suji-lang/suji/diag"
	"github.com/suji-lang/suji/function"
	"github.com/suji-lang/suji/parser"
	"github.com/suji-lang/suji/scope"
	"github.com/suji-lang/suji/std"
	"github.com/suji-lang/suji/values"
)

// Evaluator is the execution engine for Suji programs.
type Evaluator struct {
	Scp      *scope.Scope               // current innermost frame
	Builtins map[string]*values.Builtin // globally visible native functions

	Stdin  *values.Stream // current standard input
	Stdout *values.Stream // current standard output
	Stderr *values.Stream // current standard error

	// ScriptDir anchors relative file imports; set from the script path.
	ScriptDir string

	// moduleCache maps resolved import keys to their Module values, so a
	// module parses and evaluates once per interpreter instance.
	moduleCache map[string]*values.Module

	// currentModule is non-nil while evaluating an imported module's
	// source; export statements write into it.
	currentModule *values.Module
}

// NewEvaluator creates an evaluator with the process streams, the global
// builtins, and a fresh root scope.
func NewEvaluator() *Evaluator {
	ev := &Evaluator{
		Scp:         scope.NewScope(nil),
		Builtins:    std.GlobalBuiltins(),
		Stdin:       values.NewReaderStream("stdin", os.Stdin),
		Stdout:      values.NewWriterStream("stdout", os.Stdout),
		Stderr:      values.NewWriterStream("stderr", os.Stderr),
		moduleCache: make(map[string]*values.Module),
	}
	return ev
}

// SetScriptPath records the interpreted file's location so relative
// imports resolve against its directory.
func (e *Evaluator) SetScriptPath(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	e.ScriptDir = filepath.Dir(abs)
}

// StdinStream implements values.Runtime.
func (e *Evaluator) StdinStream() *values.Stream { return e.Stdin }

// StdoutStream implements values.Runtime.
func (e *Evaluator) StdoutStream() *values.Stream { return e.Stdout }

// StderrStream implements values.Runtime.
func (e *Evaluator) StderrStream() *values.Stream { return e.Stderr }

// withStreams returns a shallow copy of the evaluator with the given
// streams. The copy shares scopes and the module cache, so pipeline stages
// observe the same program state while their I/O is redirected.
func (e *Evaluator) withStreams(stdin, stdout, stderr *values.Stream) *Evaluator {
	clone := *e
	if stdin != nil {
		clone.Stdin = stdin
	}
	if stdout != nil {
		clone.Stdout = stdout
	}
	if stderr != nil {
		clone.Stderr = stderr
	}
	return &clone
}

// errorAt builds a runtime error value annotated with a node's span.
func errorAt(node parser.Node, kind diag.Kind, format string, args ...interface{}) *values.Error {
	return values.NewError(kind, format, args...).WithSpan(node.Span())
}

// spanned annotates an existing error value with a node's span when it
// does not already carry one.
func spanned(v values.SujiValue, node parser.Node) values.SujiValue {
	if err, ok := v.(*values.Error); ok {
		return err.WithSpan(node.Span())
	}
	return v
}

// EvalProgram evaluates a parsed program and returns the value of its last
// statement. Signals escaping the program are errors.
func (e *Evaluator) EvalProgram(root *parser.RootNode) values.SujiValue {
	var result values.SujiValue = values.NIL
	for _, stmt := range root.Statements {
		result = e.Eval(stmt)
		if values.IsError(result) {
			return result
		}
		switch sig := result.(type) {
		case *values.BreakSignal, *values.ContinueSignal:
			return errorAt(stmt, diag.BadBreakLabel, "%s outside of a loop", sig.ToString())
		case *values.ReturnSignal:
			return errorAt(stmt, diag.InvalidOperation, "return outside of a function")
		}
	}
	return result
}

// Eval dispatches on the node type. Statement nodes return their value or
// a control-flow signal; expression nodes return their value.
func (e *Evaluator) Eval(node parser.Node) values.SujiValue {
	switch n := node.(type) {
	// statements
	case *parser.ExpressionStatementNode:
		return e.Eval(n.Expr)
	case *parser.BlockStatementNode:
		return e.evalBlock(n)
	case *parser.ImportStatementNode:
		return e.evalImport(n)
	case *parser.ExportStatementNode:
		return e.evalExport(n)
	case *parser.LoopStatementNode:
		return e.evalLoop(n)
	case *parser.BreakStatementNode:
		return &values.BreakSignal{Label: n.Label}
	case *parser.ContinueStatementNode:
		return &values.ContinueSignal{Label: n.Label}
	case *parser.ReturnStatementNode:
		return e.evalReturn(n)
	case *parser.DestructuringNode:
		return e.evalDestructuring(n)

	// literals
	case *parser.NumberLiteralNode:
		return n.Value
	case *parser.BoolLiteralNode:
		return values.BoolOf(n.Value)
	case *parser.NilLiteralNode:
		return values.NIL
	case *parser.StringLiteralNode:
		return values.NewString(n.Value)
	case *parser.TemplateStringNode:
		return e.evalTemplateString(n)
	case *parser.RegexLiteralNode:
		return n.Regex
	case *parser.ListLiteralNode:
		return e.evalListLiteral(n)
	case *parser.MapLiteralNode:
		return e.evalMapLiteral(n)
	case *parser.TupleLiteralNode:
		return e.evalTupleLiteral(n)
	case *parser.RangeNode:
		return e.evalRange(n)
	case *parser.LambdaNode:
		return function.New(n, e.Scp)

	// expressions
	case *parser.IdentifierNode:
		return e.evalIdentifier(n)
	case *parser.UnaryNode:
		return e.evalUnary(n)
	case *parser.BinaryNode:
		return e.evalBinary(n)
	case *parser.PostfixNode:
		return e.evalPostfix(n)
	case *parser.AssignmentNode:
		return e.evalAssignment(n)
	case *parser.IndexNode:
		return e.evalIndex(n)
	case *parser.SliceNode:
		return e.evalSlice(n)
	case *parser.MemberNode:
		return e.evalMember(n)
	case *parser.MethodCallNode:
		return e.evalMethodCall(n)
	case *parser.CallNode:
		return e.evalCall(n)
	case *parser.MatchNode:
		return e.evalMatch(n)
	case *parser.PipelineNode:
		return e.evalPipeline(n)
	case *parser.ShellCommandNode:
		return e.evalBareShell(n)
	}
	return values.NewError(diag.InvalidOperation, "cannot evaluate %T", node)
}

// evalBlock runs a block in a fresh child frame. The block's value is the
// value of its last expression statement; signals and errors cut the block
// short.
func (e *Evaluator) evalBlock(block *parser.BlockStatementNode) values.SujiValue {
	oldScope := e.Scp
	e.Scp = scope.NewScope(oldScope)
	defer func() { e.Scp = oldScope }()

	var result values.SujiValue = values.NIL
	for _, stmt := range block.Statements {
		result = e.Eval(stmt)
		if values.IsError(result) || values.IsSignal(result) {
			return result
		}
	}
	return result
}

// evalReturn packages the return expression values into a signal.
func (e *Evaluator) evalReturn(n *parser.ReturnStatementNode) values.SujiValue {
	sig := &values.ReturnSignal{}
	for _, expr := range n.Values {
		v := e.Eval(expr)
		if values.IsError(v) {
			return v
		}
		sig.Values = append(sig.Values, v)
	}
	return sig
}

// CallFunction invokes a user function or builtin. It implements the
// values.Runtime interface so methods and builtins can run closures.
//
// A user function call pushes a fresh frame with the parameter bindings
// onto the function's captured chain. Missing arguments take their
// defaults, evaluated in the new frame at call time. Break and continue
// signals do not cross call boundaries: one escaping the body is an error.
func (e *Evaluator) CallFunction(fn values.SujiValue, args ...values.SujiValue) values.SujiValue {
	switch callee := fn.(type) {
	case *values.Builtin:
		if !callee.CheckArity(len(args)) {
			return values.NewError(diag.ArityMismatch,
				"%s called with %d arguments", callee.Name, len(args))
		}
		return callee.Callback(e, args)

	case *function.Function:
		if len(args) > len(callee.Params) || len(args) < callee.MinArgs() {
			return values.NewError(diag.ArityMismatch,
				"%s takes %d parameters, called with %d arguments",
				callee.ToString(), len(callee.Params), len(args))
		}
		frame := scope.NewScope(callee.Scp)
		oldScope := e.Scp
		e.Scp = frame
		defer func() { e.Scp = oldScope }()

		for i, param := range callee.Params {
			if i < len(args) {
				frame.Bind(param.Name, args[i])
				continue
			}
			if param.Default == nil {
				return values.NewError(diag.ArityMismatch,
					"missing argument for parameter %q", param.Name)
			}
			def := e.Eval(param.Default)
			if values.IsError(def) {
				return def
			}
			frame.Bind(param.Name, def)
		}

		var result values.SujiValue = values.NIL
		if callee.ExprBody != nil {
			result = e.Eval(callee.ExprBody)
		} else {
			for _, stmt := range callee.BlockBody.Statements {
				result = e.Eval(stmt)
				if values.IsError(result) || values.IsSignal(result) {
					break
				}
			}
		}
		switch sig := result.(type) {
		case *values.ReturnSignal:
			return sig.Unwrap()
		case *values.BreakSignal, *values.ContinueSignal:
			return values.NewError(diag.BadBreakLabel,
				"%s escaped the enclosing function", sig.ToString())
		}
		return result
	}
	return values.NewError(diag.TypeError, "%s is not callable", fn.GetType())
}
