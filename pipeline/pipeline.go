/*
File    : suji/pipeline/pipeline.go
Author  : The Suji Authors
*/

// Package pipeline wires the stages of a | pipeline into directed byte
// streams. Stage n's standard output feeds stage n+1's standard input
// through an in-process pipe; the final stage's output is captured so the
// evaluator can apply the sink rules. Stages run concurrently, one
// goroutine each, and the pipeline completes only after every stage has
// finished and all endpoints are closed.
package pipeline

import (
	"bytes"
	"io"
	"strings"
	"sync"

	"github.com/suji-lang/suji/diag"
	"github.com/suji-lang/suji/values"
)

// Stage is one element of a pipeline: a closure invocation or a shell
// command, reduced to a function over its endpoints. Run returns the
// stage's value (nil for shell stages and closures without a result).
type Stage struct {
	Name  string
	Shell bool // true for backtick stages
	Run   func(stdin io.Reader, stdout io.Writer) (values.SujiValue, *values.Error)
}

// Result is the outcome of a pipeline run.
type Result struct {
	// Values holds each stage's returned value, nil where a stage
	// produced none.
	Values []values.SujiValue
	// Output is the final stage's accumulated standard output, untrimmed.
	Output string
	// Err is the first stage error in pipeline order, nil on success.
	Err *values.Error
}

// Run executes the stages concurrently. The first stage reads from
// initial (an empty stream when nil); the last stage's output is captured
// into Result.Output. When a stage fails, its output pipe closes so
// downstream stages observe EOF, and upstream writers receive a broken
// pipe on their next write; the first error in stage order becomes the
// pipeline's error.
func Run(initial io.Reader, stages []Stage) Result {
	n := len(stages)
	if initial == nil {
		initial = strings.NewReader("")
	}

	readers := make([]io.Reader, n)
	writers := make([]io.Writer, n)
	inPipes := make([]*io.PipeReader, n)
	outPipes := make([]*io.PipeWriter, n)

	readers[0] = initial
	for i := 0; i < n-1; i++ {
		pr, pw := io.Pipe()
		writers[i] = pw
		outPipes[i] = pw
		readers[i+1] = pr
		inPipes[i+1] = pr
	}
	var finalOut bytes.Buffer
	writers[n-1] = &finalOut

	results := make([]values.SujiValue, n)
	errs := make([]*values.Error, n)

	var wg sync.WaitGroup
	for i := range stages {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					errs[i] = values.NewError(diag.StreamError,
						"pipeline stage %s panicked: %v", stages[i].Name, r)
				}
				// Closing our endpoints releases the neighbours: the
				// downstream stage sees EOF, the upstream stage gets a
				// broken pipe instead of blocking forever.
				if outPipes[i] != nil {
					outPipes[i].Close()
				}
				if inPipes[i] != nil {
					inPipes[i].Close()
				}
			}()
			value, err := stages[i].Run(readers[i], writers[i])
			results[i] = value
			errs[i] = err
		}(i)
	}
	wg.Wait()

	result := Result{Values: results, Output: finalOut.String()}
	for _, err := range errs {
		if err != nil {
			result.Err = err
			break
		}
	}
	return result
}
