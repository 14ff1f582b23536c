/*
File    : suji/std/json.go
Author  : The Suji Authors
*/
package std

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/suji-lang/suji/values"
)

func init() {
	registerModule("json", func() *values.Module {
		module := values.NewModule("json")
		module.Set("parse", builtin("json:parse", 1, 1, jsonParse))
		module.Set("generate", builtin("json:generate", 1, 2, jsonGenerate))
		return module
	})
}

// jsonParse decodes a JSON document into values. Numbers decode through
// json.Number so decimal values survive exactly.
func jsonParse(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	text, errV := argString(args, 0, "json:parse")
	if errV != nil {
		return errV
	}
	decoder := json.NewDecoder(strings.NewReader(text))
	decoder.UseNumber()
	var decoded interface{}
	if err := decoder.Decode(&decoded); err != nil {
		return invalidOp("json:parse: %v", err)
	}
	return fromGo(normalizeJSONNumbers(decoded))
}

// normalizeJSONNumbers rewrites json.Number leaves into decimals.
func normalizeJSONNumbers(x interface{}) interface{} {
	switch val := x.(type) {
	case json.Number:
		if num, ok := values.NumberFromString(val.String()); ok {
			return num.Value
		}
		return val.String()
	case []interface{}:
		for i, elem := range val {
			val[i] = normalizeJSONNumbers(elem)
		}
		return val
	case map[string]interface{}:
		for k, elem := range val {
			val[k] = normalizeJSONNumbers(elem)
		}
		return val
	}
	return x
}

// jsonGenerate encodes a value as JSON. A true second argument pretty-
// prints with two-space indentation.
func jsonGenerate(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	lowered, errV := toGo(args[0])
	if errV != nil {
		return errV
	}
	pretty, errV := argBool(args, 1, false, "json:generate")
	if errV != nil {
		return errV
	}
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if pretty {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(lowered); err != nil {
		return invalidOp("json:generate: %v", err)
	}
	return values.NewString(strings.TrimSuffix(buf.String(), "\n"))
}
