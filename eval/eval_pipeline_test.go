/*
File    : suji/eval/eval_pipeline_test.go
Author  : The Suji Authors
*/
package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Pipeline and shell tests spawn /bin/sh; they exercise the wiring between
// closure stdout, child processes and the pipeline sink rules.

func TestEval_BareBacktickTrimsTrailingNewline(t *testing.T) {
	result, _ := runOK(t, "out = `printf 'hi\\n'`\nout")
	assert.Equal(t, "hi", result.ToString())
}

func TestEval_BacktickInterpolation(t *testing.T) {
	result, _ := runOK(t, "word = \"suji\"\n`echo ${word}`")
	assert.Equal(t, "suji", result.ToString())
}

// Terminal backtick stage output is untrimmed; printing it adds a second
// newline.
func TestEval_PipelineTerminalBacktickUntrimmed(t *testing.T) {
	_, out := runOK(t, `
producer = || { println("alpha"); println("beta") }
out = producer() | `+"`grep beta`"+`
println(out)
`)
	assert.Equal(t, "beta\n\n", out)
}

func TestEval_PipelineClosureToClosure(t *testing.T) {
	_, out := runOK(t, `
import std:io
producer = || { println("1"); println("2"); println("3") }
doubler = || {
    total = 0
    loop {
        line = io:stdin::read_line()
        match { line == nil => { break }, true => { total += line::to_number() * 2 } }
    }
    return total
}
println(producer() | doubler())
`)
	assert.Equal(t, "12\n", out)
}

// A closure stage that returns nothing contributes its stdout.
func TestEval_PipelineClosureSinkWithoutReturn(t *testing.T) {
	result, _ := runOK(t, `
shout = || { print("loud") }
shout() | (|| {
    import std:io
    print(io:stdin::read_all()::upper())
})()
`)
	assert.Equal(t, "LOUD", result.ToString())
}

func TestEval_PipelineBacktickToBacktick(t *testing.T) {
	result, _ := runOK(t, "`printf 'b\\na\\n'` | `sort`")
	assert.Equal(t, "a\nb\n", result.ToString())
}

func TestEval_PipelineStdoutRedirectionIsScoped(t *testing.T) {
	// println inside the stage goes into the pipe; println outside goes to
	// the program's stdout.
	_, out := runOK(t, `
quiet = || { println("swallowed") }
_ = quiet() | `+"`cat > /dev/null`"+`
println("visible")
`)
	assert.Equal(t, "visible\n", out)
}

func TestEval_PipelineStageErrorSurfaces(t *testing.T) {
	runErr(t, `
boom = || { return 1 / 0 }
boom() | `+"`cat`"+`
`, "DivideByZero")
}

// break inside a pipeline stage closure is captured at the stage boundary,
// not propagated to an enclosing loop.
func TestEval_BreakInsidePipelineStage(t *testing.T) {
	runErr(t, `
loop through [1] with i {
    stage = || { break }
    stage() | `+"`cat`"+`
}
`, "BadBreakLabel")
}

// Non-zero exit status of a backtick stage is not an error by itself.
func TestEval_PipelineNonZeroExitFlowsThrough(t *testing.T) {
	_, out := runOK(t, `
out = (|| { println("nothing matches") })() | `+"`grep zzz`"+`
println(out::len())
`)
	assert.Equal(t, "0\n", out)
}
