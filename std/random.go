/*
File    : suji/std/random.go
Author  : The Suji Authors
*/
package std

import (
	"math/rand"
	"time"

	"github.com/suji-lang/suji/values"
)

// rng is the per-execution-context generator: one seed per interpreter
// instance, resettable through random:seed.
var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

func init() {
	registerModule("random", func() *values.Module {
		module := values.NewModule("random")
		module.Set("seed", builtin("random:seed", 1, 1, randomSeed))
		module.Set("random", builtin("random:random", 0, 0, randomFloat))
		module.Set("integer", builtin("random:integer", 2, 2, randomInteger))
		module.Set("pick", builtin("random:pick", 1, 1, randomPick))
		module.Set("shuffle", builtin("random:shuffle", 1, 1, randomShuffle))
		module.Set("sample", builtin("random:sample", 2, 2, randomSample))
		module.Set("string", builtin("random:string", 2, 2, randomString))
		module.Set("hex_string", builtin("random:hex_string", 1, 1, alphabetBuiltin("0123456789abcdef")))
		module.Set("alpha_string", builtin("random:alpha_string", 1, 1,
			alphabetBuiltin("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")))
		module.Set("numeric_string", builtin("random:numeric_string", 1, 1, alphabetBuiltin("0123456789")))
		module.Set("alphanumeric_string", builtin("random:alphanumeric_string", 1, 1,
			alphabetBuiltin("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")))
		return module
	})
}

func randomSeed(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	n, errV := argNumber(args, 0, "random:seed")
	if errV != nil {
		return errV
	}
	rng = rand.New(rand.NewSource(n.Int()))
	return values.NIL
}

func randomFloat(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	return values.NumberFromFloat(rng.Float64())
}

// randomInteger returns a uniform integer in [low, high] inclusive.
func randomInteger(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	low, errV := argNumber(args, 0, "random:integer")
	if errV != nil {
		return errV
	}
	high, errV := argNumber(args, 1, "random:integer")
	if errV != nil {
		return errV
	}
	lo, hi := low.Int(), high.Int()
	if hi < lo {
		return invalidOp("random:integer: empty range %d..%d", lo, hi)
	}
	return values.NumberFromInt(lo + rng.Int63n(hi-lo+1))
}

func randomPick(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	list, ok := args[0].(*values.List)
	if !ok {
		return typeError("random:pick expects a list, got %s", args[0].GetType())
	}
	if list.Len() == 0 {
		return values.NIL
	}
	return list.Elements[rng.Intn(list.Len())]
}

// randomShuffle returns a shuffled copy; the input list is untouched.
func randomShuffle(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	list, ok := args[0].(*values.List)
	if !ok {
		return typeError("random:shuffle expects a list, got %s", args[0].GetType())
	}
	shuffled := append([]values.SujiValue{}, list.Elements...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return values.NewList(shuffled...)
}

// randomSample picks n distinct elements (fewer when the list is shorter).
func randomSample(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	shuffled := randomShuffle(rt, args[:1])
	if values.IsError(shuffled) {
		return shuffled
	}
	n, errV := argNumber(args, 1, "random:sample")
	if errV != nil {
		return errV
	}
	count := int(n.Int())
	list := shuffled.(*values.List)
	if count > list.Len() {
		count = list.Len()
	}
	if count < 0 {
		count = 0
	}
	return values.NewList(list.Elements[:count]...)
}

// randomString draws length characters from the given alphabet.
func randomString(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	n, errV := argNumber(args, 0, "random:string")
	if errV != nil {
		return errV
	}
	alphabet, errV := argString(args, 1, "random:string")
	if errV != nil {
		return errV
	}
	return drawString(int(n.Int()), alphabet)
}

func alphabetBuiltin(alphabet string) values.CallbackFunc {
	return func(rt values.Runtime, args []values.SujiValue) values.SujiValue {
		n, errV := argNumber(args, 0, "random string")
		if errV != nil {
			return errV
		}
		return drawString(int(n.Int()), alphabet)
	}
}

func drawString(length int, alphabet string) values.SujiValue {
	if length < 0 || len(alphabet) == 0 {
		return invalidOp("random string needs a positive length and a non-empty alphabet")
	}
	runes := []rune(alphabet)
	out := make([]rune, length)
	for i := range out {
		out[i] = runes[rng.Intn(len(runes))]
	}
	return values.NewString(string(out))
}
