/*
File    : suji/std/csv.go
Author  : The Suji Authors
*/
package std

import (
	"encoding/csv"
	"strings"

	"github.com/suji-lang/suji/values"
)

func init() {
	registerModule("csv", func() *values.Module {
		module := values.NewModule("csv")
		module.Set("parse", builtin("csv:parse", 1, 1, csvParse))
		module.Set("generate", builtin("csv:generate", 1, 1, csvGenerate))
		return module
	})
}

// csvParse decodes CSV text into a list of row lists of strings.
func csvParse(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	text, errV := argString(args, 0, "csv:parse")
	if errV != nil {
		return errV
	}
	records, err := csv.NewReader(strings.NewReader(text)).ReadAll()
	if err != nil {
		return invalidOp("csv:parse: %v", err)
	}
	rows := make([]values.SujiValue, len(records))
	for i, record := range records {
		fields := make([]values.SujiValue, len(record))
		for j, field := range record {
			fields[j] = values.NewString(field)
		}
		rows[i] = values.NewList(fields...)
	}
	return values.NewList(rows...)
}

// csvGenerate encodes a list of row lists; fields stringify with
// to_string semantics.
func csvGenerate(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	rows, ok := args[0].(*values.List)
	if !ok {
		return typeError("csv:generate expects a list of rows, got %s", args[0].GetType())
	}
	var sb strings.Builder
	writer := csv.NewWriter(&sb)
	for _, row := range rows.Elements {
		rowList, ok := row.(*values.List)
		if !ok {
			return typeError("csv:generate rows must be lists, found %s", row.GetType())
		}
		record := make([]string, rowList.Len())
		for j, field := range rowList.Elements {
			record[j] = field.ToString()
		}
		if err := writer.Write(record); err != nil {
			return invalidOp("csv:generate: %v", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return invalidOp("csv:generate: %v", err)
	}
	return values.NewString(sb.String())
}
