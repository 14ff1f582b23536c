/*
File    : suji/eval/evaluator_test.go
Author  : The Suji Authors
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suji-lang/suji/parser"
	"github.com/suji-lang/suji/values"
)

// run parses and evaluates src with captured stdout, failing the test on
// parse errors. It returns the program's value and everything printed.
func run(t *testing.T, src string) (values.SujiValue, string) {
	t.Helper()
	par := parser.NewParser(src)
	root := par.Parse()
	require.Empty(t, par.Errors, "parse errors for %q", src)

	ev := NewEvaluator()
	var out bytes.Buffer
	ev.Stdout = values.NewWriterStream("stdout", &out)
	result := ev.EvalProgram(root)
	return result, out.String()
}

// runOK is run plus an assertion that no error escaped.
func runOK(t *testing.T, src string) (values.SujiValue, string) {
	t.Helper()
	result, out := run(t, src)
	if err, ok := result.(*values.Error); ok {
		t.Fatalf("unexpected error for %q: %s", src, err.ToString())
	}
	return result, out
}

// runErr asserts the program fails with the given error kind.
func runErr(t *testing.T, src string, kind string) *values.Error {
	t.Helper()
	result, _ := run(t, src)
	err, ok := result.(*values.Error)
	require.True(t, ok, "expected an error for %q, got %s", src, result.ToString())
	assert.Equal(t, kind, string(err.Kind), "error was: %s", err.ToString())
	return err
}

func TestEval_StringInterpolation(t *testing.T) {
	_, out := runOK(t, `name = "Alice"; println("Hello, ${name}!")`)
	assert.Equal(t, "Hello, Alice!\n", out)
}

func TestEval_FilterMap(t *testing.T) {
	_, out := runOK(t, `numbers = [1,2,3,4,5]; println(numbers::filter(|x| x%2==0)::map(|x| x*x))`)
	assert.Equal(t, "[4, 16]\n", out)
}

func TestEval_FibonacciMatch(t *testing.T) {
	_, out := runOK(t, `fib = |n| match n { 0|1 => n, _ => fib(n-1)+fib(n-2) }; println((0..10)::map(fib))`)
	assert.Equal(t, "[0, 1, 1, 2, 3, 5, 8, 13, 21, 34]\n", out)
}

func TestEval_PipeApply(t *testing.T) {
	_, out := runOK(t, `result = 3 |> (|x| x+1) |> (|x| x*2); println(result)`)
	assert.Equal(t, "8\n", out)

	_, out = runOK(t, `result = (|x| x+1) <| 3; println(result)`)
	assert.Equal(t, "4\n", out)
}

func TestEval_DecimalArithmetic(t *testing.T) {
	_, out := runOK(t, `println(0.1 + 0.2 == 0.3)`)
	assert.Equal(t, "true\n", out)

	_, out = runOK(t, `println(1.50 == 1.5)`)
	assert.Equal(t, "true\n", out)

	result, _ := runOK(t, `1 / 3 * 3`)
	num := result.(*values.Number)
	// Division carries enough precision that the round trip stays near 1.
	f, _ := num.Value.Float64()
	assert.InDelta(t, 1.0, f, 1e-20)
}

func TestEval_NumberIdentities(t *testing.T) {
	for _, src := range []string{
		`println(42 + 0 == 42)`,
		`println(42 * 1 == 42)`,
		`println(-1.5 + 0 == -1.5)`,
	} {
		_, out := runOK(t, src)
		assert.Equal(t, "true\n", out, "src: %s", src)
	}
}

func TestEval_DivideByZero(t *testing.T) {
	runErr(t, `1 / 0`, "DivideByZero")
	runErr(t, `5 % 0`, "DivideByZero")
	runErr(t, `0 ^ -1`, "DivideByZero")
}

func TestEval_Power(t *testing.T) {
	result, _ := runOK(t, `2 ^ 10`)
	assert.Equal(t, "1024", result.ToString())

	result, _ = runOK(t, `2 ^ -2`)
	assert.Equal(t, "0.25", result.ToString())

	result, _ = runOK(t, `4 ^ 0.5`)
	assert.Equal(t, "2", result.ToString())
}

func TestEval_ClosureCounter(t *testing.T) {
	_, out := runOK(t, `
f = (|| { c = 0; return || { c++; return c } })()
println(f(), f(), f())
`)
	assert.Equal(t, "1 2 3\n", out)
}

func TestEval_ClosuresShareCapturedFrame(t *testing.T) {
	_, out := runOK(t, `
make = || { n = 0; inc = || { n += 1; return n }; get = || n; return inc, get }
inc, get = make()
inc(); inc()
println(get())
`)
	assert.Equal(t, "2\n", out)
}

func TestEval_DefaultParameters(t *testing.T) {
	_, out := runOK(t, `add = |x, y = 10| x + y; println(add(1), add(1, 2))`)
	assert.Equal(t, "11 3\n", out)
}

func TestEval_MultiValueReturnAndDestructuring(t *testing.T) {
	_, out := runOK(t, `
divmod = |a, b| { return (a / b)::floor(), a % b }
q, r = divmod(17, 5)
println(q, r)
`)
	assert.Equal(t, "3 2\n", out)

	_, out = runOK(t, `a, _, c = (1, 2, 3); println(a, c)`)
	assert.Equal(t, "1 3\n", out)

	runErr(t, `a, b = (1, 2, 3)`, "PatternMatchFailed")
}

func TestEval_Loops(t *testing.T) {
	_, out := runOK(t, `
total = 0
loop through [1, 2, 3] with x { total += x }
println(total)
`)
	assert.Equal(t, "6\n", out)

	_, out = runOK(t, `
m = {a: 1, b: 2}
loop through m with k, v { println("${k}=${v}") }
`)
	assert.Equal(t, "a=1\nb=2\n", out)

	_, out = runOK(t, `loop through "héllo"[0:2] with c { print(c) }`)
	assert.Equal(t, "hé", out)

	_, out = runOK(t, `
count = 0
loop { count++; match { count == 3 => { break }, true => { continue } } }
println(count)
`)
	assert.Equal(t, "3\n", out)
}

func TestEval_LabelledLoops(t *testing.T) {
	_, out := runOK(t, `
found = nil
loop as outer through [1, 2, 3] with i {
    loop through [10, 20] with j {
        match { i * j == 40 => { found = (i, j); break outer }, true => nil }
    }
}
println(found)
`)
	assert.Equal(t, "(2, 20)\n", out)
}

func TestEval_BreakOutsideLoop(t *testing.T) {
	runErr(t, `break`, "BadBreakLabel")
	runErr(t, `f = || { break }; f()`, "BadBreakLabel")
}

func TestEval_MatchForms(t *testing.T) {
	_, out := runOK(t, `
describe = |v| match v {
    0 => "zero",
    /^h/ => "h-word",
    (a, b) => "pair of ${a} and ${b}",
    _ => "other",
}
println(describe(0))
println(describe("hello"))
println(describe((1, 2)))
println(describe(true))
`)
	assert.Equal(t, "zero\nh-word\npair of 1 and 2\nother\n", out)

	// Condition-only form; no match yields nil.
	result, _ := runOK(t, `x = 5; match { x > 10 => "big" }`)
	assert.Equal(t, values.NIL, result)
}

func TestEval_MatchAlternationDoesNotBind(t *testing.T) {
	// Alternation matches whichever branch fits, without bindings.
	_, out := runOK(t, `
kind = |v| match v { 1 | 2 | 3 => "small", "a" | "b" => "letter", _ => "other" }
println(kind(2), kind("b"), kind(99))
`)
	assert.Equal(t, "small letter other\n", out)
}

func TestEval_RegexOperators(t *testing.T) {
	_, out := runOK(t, `println("hello" ~ /ell/, "hello" !~ /xyz/)`)
	assert.Equal(t, "true true\n", out)
}

func TestEval_Composition(t *testing.T) {
	_, out := runOK(t, `
inc = |x| x + 1
double = |x| x * 2
f = inc >> double
g = inc << double
println(f(3), g(3))
`)
	assert.Equal(t, "8 7\n", out)
}

func TestEval_RangesAreLists(t *testing.T) {
	_, out := runOK(t, `println(1..=5)`)
	assert.Equal(t, "[1, 2, 3, 4, 5]\n", out)

	_, out = runOK(t, `println((0..3)::len())`)
	assert.Equal(t, "3\n", out)
}

func TestEval_IndexingAndSlicing(t *testing.T) {
	_, out := runOK(t, `xs = [10, 20, 30]; println(xs[0], xs[-1], xs[1:3])`)
	assert.Equal(t, "10 30 [20, 30]\n", out)

	_, out = runOK(t, `s = "héllo"; println(s[1], s[1:3], s::len())`)
	assert.Equal(t, "é él 5\n", out)

	runErr(t, `[1][5]`, "IndexOutOfRange")
	runErr(t, `{a: 1}["b"]`, "KeyNotFound")
}

func TestEval_ReferenceSemantics(t *testing.T) {
	_, out := runOK(t, `
a = [1]
b = a
b::push(2)
println(a)
`)
	assert.Equal(t, "[1, 2]\n", out)

	_, out = runOK(t, `
m = {x: 1}
n = m
n["y"] = 2
println(m::len())
`)
	assert.Equal(t, "2\n", out)
}

func TestEval_MapOrderAndMerge(t *testing.T) {
	_, out := runOK(t, `
m = {b: 1, a: 2}
println(m::keys())
`)
	assert.Equal(t, `["b", "a"]`+"\n", out)

	// merge: existing key keeps its position, takes the right value; new
	// keys append.
	_, out = runOK(t, `
m = {b: 1, a: 2}
m::merge({a: 9, c: 3})
println(m)
`)
	assert.Equal(t, "{b: 1, a: 9, c: 3}\n", out)
}

func TestEval_CompoundAssignAndPostfix(t *testing.T) {
	_, out := runOK(t, `x = 10; x += 5; x *= 2; x -= 6; x /= 4; println(x)`)
	assert.Equal(t, "6\n", out)

	_, out = runOK(t, `c = 5; d = c++; println(c, d); c--; println(c)`)
	assert.Equal(t, "6 5\n5\n", out)
}

func TestEval_StringConcatAndListConcat(t *testing.T) {
	_, out := runOK(t, `println("ab" + "cd", [1] + [2, 3])`)
	assert.Equal(t, "abcd [1, 2, 3]\n", out)

	runErr(t, `1 + "a"`, "TypeError")
	runErr(t, `"a" - "b"`, "TypeError")
}

func TestEval_LogicStrictness(t *testing.T) {
	_, out := runOK(t, `println(true && false, false || true)`)
	assert.Equal(t, "false true\n", out)

	runErr(t, `1 && true`, "TypeError")

	// Short-circuit: the right side must not evaluate.
	_, out = runOK(t, `f = || { println("side"); return true }; _ = false && f(); println("done")`)
	assert.Equal(t, "done\n", out)
}

func TestEval_UndefinedName(t *testing.T) {
	err := runErr(t, `nope + 1`, "Undefined")
	assert.True(t, err.Span.Known())
}

func TestEval_UniversalMethods(t *testing.T) {
	_, out := runOK(t, `println(42::to_string(), "x"::is_string(), []::is_list(), nil::is_nil())`)
	assert.Equal(t, "42 true true true\n", out)
}

func TestEval_StringMethods(t *testing.T) {
	_, out := runOK(t, `s = "Hello World"; println(s::upper()::lower(), s::reverse()::reverse() == s)`)
	assert.Equal(t, "hello world true\n", out)

	_, out = runOK(t, `println("a,b,c"::split(","), " x "::trim(), "abc"::contains("b"))`)
	assert.Equal(t, `["a", "b", "c"] x true`+"\n", out)
}

func TestEval_ListMethods(t *testing.T) {
	_, out := runOK(t, `
xs = [3, 1, 2]
println(xs::sort(), xs::reduce(|a, b| a + b), xs::sort_by(|x| -x))
`)
	assert.Equal(t, "[1, 2, 3] 6 [3, 2, 1]\n", out)
}

func TestEval_TemplateNesting(t *testing.T) {
	_, out := runOK(t, `x = "in"; println("a${ "b${x}c" }d")`)
	assert.Equal(t, "abincd\n", out)
}

func TestEval_IoStreams(t *testing.T) {
	_, out := runOK(t, `
import std:io
io:stdout::write("direct\n")
println(io:stdout::is_stream())
`)
	assert.Equal(t, "direct\ntrue\n", out)
}
