/*
File    : suji/eval/eval_std_test.go
Author  : The Suji Authors
*/
package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Round-trip properties for the standard codecs, driven through the
// interpreter end to end.

func TestStd_JsonRoundTrip(t *testing.T) {
	_, out := runOK(t, `
import std:json
x = {name: "suji", version: 0.2, tags: ["lang", "script"], ok: true, missing: nil}
println(json:parse(json:generate(x)) == x)
`)
	assert.Equal(t, "true\n", out)
}

func TestStd_JsonDecimalsSurvive(t *testing.T) {
	_, out := runOK(t, `
import std:json
println(json:parse("0.1") + json:parse("0.2") == 0.3)
`)
	assert.Equal(t, "true\n", out)
}

func TestStd_YamlRoundTrip(t *testing.T) {
	_, out := runOK(t, `
import std:yaml
x = {a: 1, b: [true, "two"]}
println(yaml:parse(yaml:generate(x)) == x)
`)
	assert.Equal(t, "true\n", out)
}

func TestStd_TomlRoundTrip(t *testing.T) {
	_, out := runOK(t, `
import std:toml
x = {title: "demo", count: 3}
println(toml:parse(toml:generate(x)) == x)
`)
	assert.Equal(t, "true\n", out)
}

func TestStd_CsvRoundTrip(t *testing.T) {
	_, out := runOK(t, `
import std:csv
rows = [["a", "b"], ["1", "two, three"]]
println(csv:parse(csv:generate(rows)) == rows)
`)
	assert.Equal(t, "true\n", out)
}

func TestStd_EncodingRoundTrips(t *testing.T) {
	_, out := runOK(t, `
import std:encoding
s = "hello, world / 100%"
ok = encoding:base64_decode(encoding:base64_encode(s)) == s
ok2 = encoding:hex_decode(encoding:hex_encode(s)) == s
ok3 = encoding:percent_decode(encoding:percent_encode(s)) == s
println(ok && ok2 && ok3)
`)
	assert.Equal(t, "true\n", out)
}

func TestStd_Crypto(t *testing.T) {
	_, out := runOK(t, `
import std:crypto
println(crypto:sha256("abc"))
`)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad\n", out)

	_, out = runOK(t, `
import std:crypto
println(crypto:md5("abc"))
`)
	assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72\n", out)
}

func TestStd_Uuid(t *testing.T) {
	_, out := runOK(t, `
import std:uuid
a = uuid:v4()
println(uuid:is_valid(a), uuid:is_valid("nope"), a::len())
`)
	assert.Equal(t, "true false 36\n", out)

	_, out = runOK(t, `
import std:uuid
println(uuid:v5("6ba7b810-9dad-11d1-80b4-00c04fd430c8", "example.com"))
`)
	// Name-based UUIDs are deterministic.
	assert.Equal(t, "cfbff0d1-9375-5685-968c-48ce8b15ae17\n", out)
}

func TestStd_Random(t *testing.T) {
	_, out := runOK(t, `
import std:random
random:seed(7)
n = random:integer(1, 10)
println(n >= 1 && n <= 10, random:hex_string(8)::len())
`)
	assert.Equal(t, "true 8\n", out)

	_, out = runOK(t, `
import std:random
xs = [1, 2, 3, 4, 5]
shuffled = random:shuffle(xs)
println(shuffled::len(), xs == [1, 2, 3, 4, 5], shuffled::sort() == xs)
`)
	assert.Equal(t, "5 true true\n", out)
}

func TestStd_TimeIso(t *testing.T) {
	_, out := runOK(t, `
import std:time
ms = time:parse_iso("2024-03-01T12:00:00Z")
println(time:format_iso(ms))
`)
	assert.Equal(t, "2024-03-01T12:00:00Z\n", out)
}

func TestStd_MathAndPath(t *testing.T) {
	_, out := runOK(t, `
import std:math
import std:path
println(math:sqrt(9), path:join("a", "b", "c.txt"), path:extname("x/y.si"), path:is_abs("/tmp"))
`)
	assert.Equal(t, "3 a/b/c.txt .si true\n", out)
}

func TestStd_EnvWriteThrough(t *testing.T) {
	_, out := runOK(t, `
import std:env
env:var["SUJI_TEST_VAR"] = "set-from-suji"
out = `+"`printf '%s' \"$SUJI_TEST_VAR\"`"+`
println(out)
`)
	assert.Equal(t, "set-from-suji\n", out)
}

func TestStd_DotenvMissingFileIsEmptyMap(t *testing.T) {
	_, out := runOK(t, `
import std:dotenv
println(dotenv:load("definitely-missing.env")::len())
`)
	assert.Equal(t, "0\n", out)
}

func TestStd_OsBasics(t *testing.T) {
	_, out := runOK(t, `
import std:os
println(os:pid() > 0, os:name()::len() > 0, os:tmp_dir()::len() > 0)
`)
	assert.Equal(t, "true true true\n", out)
}

func TestStd_IoOpenReadWrite(t *testing.T) {
	_, out := runOK(t, `
import std:io
import std:os
p = os:tmp_dir() + "/suji_io_test.txt"
f = io:open(p, true, true)
f::write_line("first")
f::write("second")
f::close()
g = io:open(p)
println(g::read_all())
g::close()
os:rm(p)
`)
	assert.Equal(t, "first\nsecond\n", out)
}
