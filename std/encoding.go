/*
File    : suji/std/encoding.go
Author  : The Suji Authors
*/
package std

import (
	"encoding/base64"
	"encoding/hex"
	"net/url"

	"github.com/suji-lang/suji/values"
)

func init() {
	registerModule("encoding", func() *values.Module {
		module := values.NewModule("encoding")
		module.Set("base64_encode", builtin("encoding:base64_encode", 1, 1, base64Encode))
		module.Set("base64_decode", builtin("encoding:base64_decode", 1, 1, base64Decode))
		module.Set("hex_encode", builtin("encoding:hex_encode", 1, 1, hexEncode))
		module.Set("hex_decode", builtin("encoding:hex_decode", 1, 1, hexDecode))
		module.Set("percent_encode", builtin("encoding:percent_encode", 1, 1, percentEncode))
		module.Set("percent_decode", builtin("encoding:percent_decode", 1, 1, percentDecode))
		return module
	})
}

func base64Encode(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	text, errV := argString(args, 0, "encoding:base64_encode")
	if errV != nil {
		return errV
	}
	return values.NewString(base64.StdEncoding.EncodeToString([]byte(text)))
}

func base64Decode(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	text, errV := argString(args, 0, "encoding:base64_decode")
	if errV != nil {
		return errV
	}
	decoded, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return invalidOp("encoding:base64_decode: %v", err)
	}
	return values.NewString(string(decoded))
}

func hexEncode(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	text, errV := argString(args, 0, "encoding:hex_encode")
	if errV != nil {
		return errV
	}
	return values.NewString(hex.EncodeToString([]byte(text)))
}

func hexDecode(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	text, errV := argString(args, 0, "encoding:hex_decode")
	if errV != nil {
		return errV
	}
	decoded, err := hex.DecodeString(text)
	if err != nil {
		return invalidOp("encoding:hex_decode: %v", err)
	}
	return values.NewString(string(decoded))
}

func percentEncode(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	text, errV := argString(args, 0, "encoding:percent_encode")
	if errV != nil {
		return errV
	}
	return values.NewString(url.QueryEscape(text))
}

func percentDecode(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	text, errV := argString(args, 0, "encoding:percent_decode")
	if errV != nil {
		return errV
	}
	decoded, err := url.QueryUnescape(text)
	if err != nil {
		return invalidOp("encoding:percent_decode: %v", err)
	}
	return values.NewString(decoded)
}
