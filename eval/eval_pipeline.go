/*
File    : suji/eval/eval_pipeline.go
Author  : The Suji Authors
*/
package eval

import (
	"bytes"
	"io"
	"os/exec"
	"strings"

	"github.com/suji-lang/suji/diag"
	"github.com/suji-lang/suji/methods"
	"github.com/suji-lang/suji/parser"
	"github.com/suji-lang/suji/pipeline"
	"github.com/suji-lang/suji/values"
)

// evalPipeline evaluates stage | stage | stage. Callees, arguments and
// shell templates are evaluated on the calling fiber before the stages
// start, so user code never runs concurrently with itself; only the stage
// bodies (closure invocations and child processes) run on their own
// goroutines, wired together by the pipeline runtime.
//
// Sink rules: a final closure stage that produced a value yields that
// value; otherwise the final stage's accumulated stdout becomes the
// pipeline result as a string, untrimmed — unlike a bare backtick, whose
// result is trimmed.
func (e *Evaluator) evalPipeline(n *parser.PipelineNode) values.SujiValue {
	stages := make([]pipeline.Stage, 0, len(n.Stages))
	for _, stageNode := range n.Stages {
		stage, errV := e.buildStage(stageNode)
		if errV != nil {
			return errV
		}
		stages = append(stages, stage)
	}

	var initial io.Reader
	if e.Stdin != nil {
		initial = e.Stdin.Reader
	}
	result := pipeline.Run(initial, stages)
	if result.Err != nil {
		return result.Err.WithSpan(n.Span())
	}

	last := len(stages) - 1
	if !stages[last].Shell {
		if v := result.Values[last]; v != nil && v != values.NIL {
			return v
		}
	}
	return values.NewString(result.Output)
}

// buildStage turns one pipeline stage node into a runnable stage.
func (e *Evaluator) buildStage(node parser.ExpressionNode) (pipeline.Stage, values.SujiValue) {
	switch stage := node.(type) {
	case *parser.ShellCommandNode:
		command, errV := e.expandShell(stage)
		if errV != nil {
			return pipeline.Stage{}, errV
		}
		return pipeline.Stage{
			Name:  command,
			Shell: true,
			Run: func(stdin io.Reader, stdout io.Writer) (values.SujiValue, *values.Error) {
				return nil, e.runShellStage(command, stdin, stdout)
			},
		}, nil

	case *parser.CallNode:
		callee := e.Eval(stage.Callee)
		if values.IsError(callee) {
			return pipeline.Stage{}, callee
		}
		args, errV := e.evalArgs(stage.Args)
		if errV != nil {
			return pipeline.Stage{}, errV
		}
		return pipeline.Stage{
			Name: stage.Literal(),
			Run: func(stdin io.Reader, stdout io.Writer) (values.SujiValue, *values.Error) {
				sub := e.withStreams(
					values.NewReaderStream("stdin", stdin),
					values.NewWriterStream("stdout", stdout),
					nil,
				)
				result := sub.CallFunction(callee, args...)
				if err, ok := result.(*values.Error); ok {
					return nil, err
				}
				return result, nil
			},
		}, nil

	case *parser.MethodCallNode:
		target := e.Eval(stage.Target)
		if values.IsError(target) {
			return pipeline.Stage{}, target
		}
		args, errV := e.evalArgs(stage.Args)
		if errV != nil {
			return pipeline.Stage{}, errV
		}
		return pipeline.Stage{
			Name: stage.Literal(),
			Run: func(stdin io.Reader, stdout io.Writer) (values.SujiValue, *values.Error) {
				sub := e.withStreams(
					values.NewReaderStream("stdin", stdin),
					values.NewWriterStream("stdout", stdout),
					nil,
				)
				result := methods.Call(sub, target, stage.Name, args)
				if err, ok := result.(*values.Error); ok {
					return nil, err
				}
				return result, nil
			},
		}, nil
	}
	// The parser guarantees stages are invocations; anything else is a
	// bug surfacing late.
	return pipeline.Stage{}, errorAt(node, diag.InvalidOperation,
		"pipeline stage %q is not an invocation", node.Literal())
}

// runShellStage launches a shell command wired to the given endpoints.
// A non-zero exit is not an error by itself: whatever output was produced
// flows through. Stderr is inherited.
func (e *Evaluator) runShellStage(command string, stdin io.Reader, stdout io.Writer) *values.Error {
	cmd := exec.Command("sh", "-c", command)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	if e.Stderr != nil {
		cmd.Stderr = e.Stderr.Writer
	}
	if err := cmd.Run(); err != nil {
		if _, exited := err.(*exec.ExitError); exited {
			return nil
		}
		return values.NewError(diag.StreamError, "shell command failed to start: %v", err)
	}
	return nil
}

// expandShell evaluates a backtick template's interpolations into the
// command string handed to the host shell.
func (e *Evaluator) expandShell(n *parser.ShellCommandNode) (string, values.SujiValue) {
	var sb strings.Builder
	for _, part := range n.Parts {
		v := e.Eval(part)
		if values.IsError(v) {
			return "", v
		}
		sb.WriteString(v.ToString())
	}
	return sb.String(), nil
}

// evalBareShell evaluates a backtick expression outside a pipeline: the
// command runs against the current streams, and its captured stdout is
// returned with trailing whitespace trimmed. This trim is deliberate and
// differs from the untrimmed terminal-stage behaviour inside pipelines.
func (e *Evaluator) evalBareShell(n *parser.ShellCommandNode) values.SujiValue {
	command, errV := e.expandShell(n)
	if errV != nil {
		return errV
	}
	var out bytes.Buffer
	cmd := exec.Command("sh", "-c", command)
	if e.Stdin != nil {
		cmd.Stdin = e.Stdin.Reader
	}
	cmd.Stdout = &out
	if e.Stderr != nil {
		cmd.Stderr = e.Stderr.Writer
	}
	if err := cmd.Run(); err != nil {
		if _, exited := err.(*exec.ExitError); !exited {
			return errorAt(n, diag.StreamError, "shell command failed to start: %v", err)
		}
	}
	return values.NewString(strings.TrimRight(out.String(), " \t\r\n"))
}
