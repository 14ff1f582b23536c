/*
File    : suji/methods/string_methods.go
Author  : The Suji Authors
*/
package methods

import (
	"strings"

	"github.com/suji-lang/suji/values"
)

func init() {
	register(values.StringType, []*Method{
		{Name: "len", MinArgs: 0, MaxArgs: 0, Func: stringLen},
		{Name: "upper", MinArgs: 0, MaxArgs: 0, Func: stringUpper},
		{Name: "lower", MinArgs: 0, MaxArgs: 0, Func: stringLower},
		{Name: "trim", MinArgs: 0, MaxArgs: 0, Func: stringTrim},
		{Name: "trim_start", MinArgs: 0, MaxArgs: 0, Func: stringTrimStart},
		{Name: "trim_end", MinArgs: 0, MaxArgs: 0, Func: stringTrimEnd},
		{Name: "split", MinArgs: 1, MaxArgs: 1, Func: stringSplit},
		{Name: "contains", MinArgs: 1, MaxArgs: 1, Func: stringContains},
		{Name: "starts_with", MinArgs: 1, MaxArgs: 1, Func: stringStartsWith},
		{Name: "ends_with", MinArgs: 1, MaxArgs: 1, Func: stringEndsWith},
		{Name: "replace", MinArgs: 2, MaxArgs: 2, Func: stringReplace},
		{Name: "reverse", MinArgs: 0, MaxArgs: 0, Func: stringReverse},
		{Name: "chars", MinArgs: 0, MaxArgs: 0, Func: stringChars},
		{Name: "lines", MinArgs: 0, MaxArgs: 0, Func: stringLines},
		{Name: "repeat", MinArgs: 1, MaxArgs: 1, Func: stringRepeat},
		{Name: "index_of", MinArgs: 1, MaxArgs: 1, Func: stringIndexOf},
		{Name: "to_number", MinArgs: 0, MaxArgs: 0, Func: stringToNumber},
		{Name: "matches", MinArgs: 1, MaxArgs: 1, Func: stringMatches},
	})
}

func stringLen(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	return decimalFromInt(len(recv.(*values.String).Runes()))
}

func stringUpper(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	return values.NewString(strings.ToUpper(recv.(*values.String).Value))
}

func stringLower(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	return values.NewString(strings.ToLower(recv.(*values.String).Value))
}

func stringTrim(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	return values.NewString(strings.TrimSpace(recv.(*values.String).Value))
}

func stringTrimStart(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	return values.NewString(strings.TrimLeft(recv.(*values.String).Value, " \t\r\n"))
}

func stringTrimEnd(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	return values.NewString(strings.TrimRight(recv.(*values.String).Value, " \t\r\n"))
}

func stringSplit(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	sep, err := wantString(args[0], "string::split")
	if err != nil {
		return err
	}
	parts := strings.Split(recv.(*values.String).Value, sep.Value)
	elements := make([]values.SujiValue, len(parts))
	for i, p := range parts {
		elements[i] = values.NewString(p)
	}
	return values.NewList(elements...)
}

func stringContains(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	sub, err := wantString(args[0], "string::contains")
	if err != nil {
		return err
	}
	return values.BoolOf(strings.Contains(recv.(*values.String).Value, sub.Value))
}

func stringStartsWith(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	prefix, err := wantString(args[0], "string::starts_with")
	if err != nil {
		return err
	}
	return values.BoolOf(strings.HasPrefix(recv.(*values.String).Value, prefix.Value))
}

func stringEndsWith(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	suffix, err := wantString(args[0], "string::ends_with")
	if err != nil {
		return err
	}
	return values.BoolOf(strings.HasSuffix(recv.(*values.String).Value, suffix.Value))
}

func stringReplace(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	old, err := wantString(args[0], "string::replace")
	if err != nil {
		return err
	}
	new_, err := wantString(args[1], "string::replace")
	if err != nil {
		return err
	}
	return values.NewString(strings.ReplaceAll(recv.(*values.String).Value, old.Value, new_.Value))
}

func stringReverse(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	runes := recv.(*values.String).Runes()
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return values.NewString(string(runes))
}

func stringChars(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	runes := recv.(*values.String).Runes()
	elements := make([]values.SujiValue, len(runes))
	for i, r := range runes {
		elements[i] = values.NewString(string(r))
	}
	return values.NewList(elements...)
}

func stringLines(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	text := strings.TrimSuffix(recv.(*values.String).Value, "\n")
	if text == "" {
		return values.NewList()
	}
	parts := strings.Split(text, "\n")
	elements := make([]values.SujiValue, len(parts))
	for i, p := range parts {
		elements[i] = values.NewString(strings.TrimSuffix(p, "\r"))
	}
	return values.NewList(elements...)
}

func stringRepeat(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	n, err := wantNumber(args[0], "string::repeat")
	if err != nil {
		return err
	}
	count := int(n.Int())
	if count < 0 {
		return typeErr("string::repeat expects a non-negative count")
	}
	return values.NewString(strings.Repeat(recv.(*values.String).Value, count))
}

// stringIndexOf returns the rune index of the first occurrence, or -1.
func stringIndexOf(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	sub, err := wantString(args[0], "string::index_of")
	if err != nil {
		return err
	}
	byteIdx := strings.Index(recv.(*values.String).Value, sub.Value)
	if byteIdx < 0 {
		return decimalFromInt(-1)
	}
	return decimalFromInt(len([]rune(recv.(*values.String).Value[:byteIdx])))
}

func stringToNumber(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	num, ok := values.NumberFromString(strings.TrimSpace(recv.(*values.String).Value))
	if !ok {
		return typeErr("cannot convert %q to a number", recv.(*values.String).Value)
	}
	return num
}

func stringMatches(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	re, ok := args[0].(*values.Regex)
	if !ok {
		return typeErr("string::matches expects a regex argument, got %s", args[0].GetType())
	}
	return values.BoolOf(re.Matches(recv.(*values.String).Value))
}
