/*
File    : suji/std/math.go
Author  : The Suji Authors
*/
package std

import (
	"math"

	"github.com/suji-lang/suji/values"
)

func init() {
	registerModule("math", func() *values.Module {
		module := values.NewModule("math")
		module.Set("PI", values.NumberFromFloat(math.Pi))
		module.Set("E", values.NumberFromFloat(math.E))
		for name, fn := range map[string]func(float64) float64{
			"sin": math.Sin, "cos": math.Cos, "tan": math.Tan,
			"asin": math.Asin, "acos": math.Acos, "atan": math.Atan,
			"log": math.Log, "log10": math.Log10,
			"exp": math.Exp, "sqrt": math.Sqrt,
		} {
			module.Set(name, floatBuiltin("math:"+name, fn))
		}
		return module
	})
}

// floatBuiltin wraps a float64 math function. Domain violations (sqrt of a
// negative, log of zero) surface as errors rather than NaN/Inf, keeping
// the no-NaN number invariant.
func floatBuiltin(name string, fn func(float64) float64) *values.Builtin {
	return builtin(name, 1, 1, func(rt values.Runtime, args []values.SujiValue) values.SujiValue {
		n, errV := argNumber(args, 0, name)
		if errV != nil {
			return errV
		}
		f, _ := n.Value.Float64()
		result := fn(f)
		if math.IsNaN(result) || math.IsInf(result, 0) {
			return invalidOp("%s(%s) has no finite value", name, n.ToString())
		}
		return values.NumberFromFloat(result)
	})
}
