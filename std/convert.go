/*
File    : suji/std/convert.go
Author  : The Suji Authors
*/
package std

import (
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/suji-lang/suji/values"
)

// The structured codecs (json/yaml/toml) translate between Suji values and
// the Go shapes the encoders understand. Numbers travel as decimals where
// the codec allows it and as int64/float64 otherwise.

// toGo lowers a value into encoder-friendly Go data.
func toGo(v values.SujiValue) (interface{}, *values.Error) {
	switch val := v.(type) {
	case *values.Nil:
		return nil, nil
	case *values.Bool:
		return val.Value, nil
	case *values.String:
		return val.Value, nil
	case *values.Number:
		if val.IsInteger() {
			return val.Int(), nil
		}
		f, _ := val.Value.Float64()
		return f, nil
	case *values.List:
		out := make([]interface{}, 0, val.Len())
		for _, elem := range val.Elements {
			lowered, err := toGo(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, lowered)
		}
		return out, nil
	case *values.Tuple:
		out := make([]interface{}, 0, val.Len())
		for _, elem := range val.Elements {
			lowered, err := toGo(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, lowered)
		}
		return out, nil
	case *values.Map:
		out := make(map[string]interface{}, val.Len())
		for pair := val.Entries.Oldest(); pair != nil; pair = pair.Next() {
			lowered, err := toGo(pair.Value.Value)
			if err != nil {
				return nil, err
			}
			out[pair.Value.Key.ToString()] = lowered
		}
		return out, nil
	}
	return nil, typeError("%s cannot be serialised", v.GetType())
}

// fromGo lifts decoded Go data back into values. Map keys sort
// lexicographically because Go maps have no order to preserve.
func fromGo(x interface{}) values.SujiValue {
	switch val := x.(type) {
	case nil:
		return values.NIL
	case bool:
		return values.BoolOf(val)
	case string:
		return values.NewString(val)
	case int:
		return values.NumberFromInt(int64(val))
	case int64:
		return values.NumberFromInt(val)
	case uint64:
		if num, ok := values.NumberFromString(strconv.FormatUint(val, 10)); ok {
			return num
		}
		return values.NIL
	case float64:
		return values.NumberFromFloat(val)
	case decimal.Decimal:
		return values.NewNumber(val)
	case []interface{}:
		elements := make([]values.SujiValue, len(val))
		for i, elem := range val {
			elements[i] = fromGo(elem)
		}
		return values.NewList(elements...)
	case map[string]interface{}:
		m := values.NewMap()
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			m.Set(values.NewString(k), fromGo(val[k]))
		}
		return m
	case map[interface{}]interface{}:
		m := values.NewMap()
		keys := make([]string, 0, len(val))
		lookup := make(map[string]interface{}, len(val))
		for k, v := range val {
			ks, ok := k.(string)
			if !ok {
				ks = fromGo(k).ToString()
			}
			keys = append(keys, ks)
			lookup[ks] = v
		}
		sort.Strings(keys)
		for _, k := range keys {
			m.Set(values.NewString(k), fromGo(lookup[k]))
		}
		return m
	}
	return values.NewString("")
}
