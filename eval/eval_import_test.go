/*
File    : suji/eval/eval_import_test.go
Author  : The Suji Authors
*/
package eval

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suji-lang/suji/parser"
	"github.com/suji-lang/suji/values"
)

// runIn evaluates src with the evaluator's import root anchored at dir.
func runIn(t *testing.T, dir, src string) (values.SujiValue, string) {
	t.Helper()
	par := parser.NewParser(src)
	root := par.Parse()
	require.Empty(t, par.Errors)

	ev := NewEvaluator()
	ev.ScriptDir = dir
	var out bytes.Buffer
	ev.Stdout = values.NewWriterStream("stdout", &out)
	result := ev.EvalProgram(root)
	return result, out.String()
}

func writeModule(t *testing.T, dir, name, source string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(source), 0o644))
}

func TestImport_FileModule(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "mathx.si", `
double = |x| x * 2
export { double, answer: 42 }
`)
	_, out := runIn(t, dir, `
import mathx
println(mathx:double(21), mathx:answer)
`)
	assert.Equal(t, "42 42\n", out)
}

func TestImport_NestedPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "util"), 0o755))
	writeModule(t, dir, filepath.Join("util", "text.si"), `
shout = |s| s::upper()
export shout
`)
	_, out := runIn(t, dir, `
import util:text
println(text:shout("hey"))
`)
	assert.Equal(t, "HEY\n", out)
}

// Importing the same module twice yields the same Module value, and the
// module body runs once.
func TestImport_ModuleCaching(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "counted.si", `
println("loaded")
export { marker: [1] }
`)
	_, out := runIn(t, dir, `
import counted
first = counted
import counted
println(first == counted, first:marker == counted:marker)
`)
	assert.Equal(t, "loaded\ntrue true\n", out)
}

func TestImport_MissingModule(t *testing.T) {
	result, _ := runIn(t, t.TempDir(), `import nonexistent`)
	err, ok := result.(*values.Error)
	require.True(t, ok)
	assert.Equal(t, "ImportError", string(err.Kind))
}

func TestImport_BuiltinsPrefix(t *testing.T) {
	_, out := runOK(t, `
import __builtins__:println
println("still works")
`)
	assert.Equal(t, "still works\n", out)
}

func TestImport_StdMember(t *testing.T) {
	_, out := runOK(t, `
import std:math
println(math:sqrt(16))
`)
	assert.Equal(t, "4\n", out)
}

func TestExport_OutsideModuleFails(t *testing.T) {
	runErr(t, `export { x: 1 }`, "InvalidOperation")
}
