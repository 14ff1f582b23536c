/*
File    : suji/pipeline/pipeline_test.go
Author  : The Suji Authors
*/
package pipeline

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suji-lang/suji/diag"
	"github.com/suji-lang/suji/values"
)

func TestRun_ByteFlowBetweenStages(t *testing.T) {
	producer := Stage{
		Name: "producer",
		Run: func(stdin io.Reader, stdout io.Writer) (values.SujiValue, *values.Error) {
			fmt.Fprintln(stdout, "alpha")
			fmt.Fprintln(stdout, "beta")
			return nil, nil
		},
	}
	filter := Stage{
		Name: "filter",
		Run: func(stdin io.Reader, stdout io.Writer) (values.SujiValue, *values.Error) {
			scanner := bufio.NewScanner(stdin)
			for scanner.Scan() {
				if strings.Contains(scanner.Text(), "beta") {
					fmt.Fprintln(stdout, scanner.Text())
				}
			}
			return nil, nil
		},
	}

	result := Run(nil, []Stage{producer, filter})
	require.Nil(t, result.Err)
	assert.Equal(t, "beta\n", result.Output)
}

func TestRun_InitialStdinReachesFirstStage(t *testing.T) {
	echo := Stage{
		Name: "echo",
		Run: func(stdin io.Reader, stdout io.Writer) (values.SujiValue, *values.Error) {
			data, _ := io.ReadAll(stdin)
			stdout.Write(data)
			return nil, nil
		},
	}
	result := Run(strings.NewReader("hello"), []Stage{echo})
	require.Nil(t, result.Err)
	assert.Equal(t, "hello", result.Output)
}

func TestRun_StageValueSurvives(t *testing.T) {
	stage := Stage{
		Name: "valued",
		Run: func(stdin io.Reader, stdout io.Writer) (values.SujiValue, *values.Error) {
			return values.NumberFromInt(42), nil
		},
	}
	result := Run(nil, []Stage{stage})
	require.Nil(t, result.Err)
	assert.Equal(t, "42", result.Values[0].ToString())
}

// A failing upstream stage must not hang its consumer: the pipe closes
// and the downstream stage observes EOF.
func TestRun_FailedStageReleasesDownstream(t *testing.T) {
	failing := Stage{
		Name: "failing",
		Run: func(stdin io.Reader, stdout io.Writer) (values.SujiValue, *values.Error) {
			return nil, values.NewError(diag.StreamError, "boom")
		},
	}
	consumer := Stage{
		Name: "consumer",
		Run: func(stdin io.Reader, stdout io.Writer) (values.SujiValue, *values.Error) {
			_, _ = io.ReadAll(stdin)
			return nil, nil
		},
	}
	result := Run(nil, []Stage{failing, consumer})
	require.NotNil(t, result.Err)
	assert.Equal(t, diag.StreamError, result.Err.Kind)
}

// First error in stage order wins, even when a later stage also fails.
func TestRun_FirstErrorWins(t *testing.T) {
	first := Stage{
		Name: "first",
		Run: func(stdin io.Reader, stdout io.Writer) (values.SujiValue, *values.Error) {
			return nil, values.NewError(diag.StreamError, "first failure")
		},
	}
	second := Stage{
		Name: "second",
		Run: func(stdin io.Reader, stdout io.Writer) (values.SujiValue, *values.Error) {
			_, _ = io.ReadAll(stdin)
			return nil, values.NewError(diag.StreamError, "second failure")
		},
	}
	result := Run(nil, []Stage{first, second})
	require.NotNil(t, result.Err)
	assert.Equal(t, "first failure", result.Err.Message)
}

func TestRun_PanicBecomesError(t *testing.T) {
	exploding := Stage{
		Name: "exploding",
		Run: func(stdin io.Reader, stdout io.Writer) (values.SujiValue, *values.Error) {
			panic("kaboom")
		},
	}
	result := Run(nil, []Stage{exploding})
	require.NotNil(t, result.Err)
	assert.Contains(t, result.Err.Message, "kaboom")
}
