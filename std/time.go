/*
File    : suji/std/time.go
Author  : The Suji Authors
*/
package std

import (
	"time"

	"github.com/suji-lang/suji/values"
)

func init() {
	registerModule("time", func() *values.Module {
		module := values.NewModule("time")
		module.Set("now", builtin("time:now", 0, 0, timeNow))
		module.Set("sleep", builtin("time:sleep", 1, 1, timeSleep))
		module.Set("parse_iso", builtin("time:parse_iso", 1, 1, timeParseISO))
		module.Set("format_iso", builtin("time:format_iso", 1, 1, timeFormatISO))
		return module
	})
}

// timeNow returns the current time as milliseconds since the Unix epoch.
func timeNow(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	return values.NumberFromInt(time.Now().UnixMilli())
}

// timeSleep blocks the current fiber for the given number of milliseconds.
func timeSleep(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	n, errV := argNumber(args, 0, "time:sleep")
	if errV != nil {
		return errV
	}
	f, _ := n.Value.Float64()
	time.Sleep(time.Duration(f * float64(time.Millisecond)))
	return values.NIL
}

// timeParseISO parses an RFC 3339 timestamp into epoch milliseconds.
func timeParseISO(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	text, errV := argString(args, 0, "time:parse_iso")
	if errV != nil {
		return errV
	}
	t, err := time.Parse(time.RFC3339, text)
	if err != nil {
		return invalidOp("time:parse_iso: %v", err)
	}
	return values.NumberFromInt(t.UnixMilli())
}

// timeFormatISO renders epoch milliseconds as an RFC 3339 UTC timestamp.
func timeFormatISO(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	n, errV := argNumber(args, 0, "time:format_iso")
	if errV != nil {
		return errV
	}
	return values.NewString(time.UnixMilli(n.Int()).UTC().Format(time.RFC3339))
}
