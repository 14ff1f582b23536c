/*
File    : suji/methods/number_methods.go
Author  : The Suji Authors
*/
package methods

import (
	"github.com/shopspring/decimal"

	"github.com/suji-lang/suji/values"
)

func init() {
	register(values.NumberType, []*Method{
		{Name: "abs", MinArgs: 0, MaxArgs: 0, Func: numberAbs},
		{Name: "ceil", MinArgs: 0, MaxArgs: 0, Func: numberCeil},
		{Name: "floor", MinArgs: 0, MaxArgs: 0, Func: numberFloor},
		{Name: "round", MinArgs: 0, MaxArgs: 1, Func: numberRound},
		{Name: "truncate", MinArgs: 0, MaxArgs: 0, Func: numberTruncate},
		{Name: "is_integer", MinArgs: 0, MaxArgs: 0, Func: numberIsInteger},
	})
}

func numberAbs(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	return values.NewNumber(recv.(*values.Number).Value.Abs())
}

func numberCeil(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	return values.NewNumber(recv.(*values.Number).Value.Ceil())
}

func numberFloor(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	return values.NewNumber(recv.(*values.Number).Value.Floor())
}

// numberRound rounds half away from zero; an optional argument gives the
// number of fractional digits.
func numberRound(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	places := int32(0)
	if len(args) == 1 {
		n, err := wantNumber(args[0], "number::round")
		if err != nil {
			return err
		}
		places = int32(n.Int())
	}
	return values.NewNumber(recv.(*values.Number).Value.Round(places))
}

func numberTruncate(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	return values.NewNumber(recv.(*values.Number).Value.Truncate(0))
}

func numberIsInteger(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	return values.BoolOf(recv.(*values.Number).IsInteger())
}

// decimalFromInt is shared by methods that produce numbers from counts.
func decimalFromInt(n int) *values.Number {
	return values.NewNumber(decimal.NewFromInt(int64(n)))
}
