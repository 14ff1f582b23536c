/*
File    : suji/std/crypto.go
Author  : The Suji Authors
*/
package std

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"

	"github.com/suji-lang/suji/values"
)

func init() {
	registerModule("crypto", func() *values.Module {
		module := values.NewModule("crypto")
		module.Set("md5", digestBuiltin("crypto:md5", md5.New))
		module.Set("sha1", digestBuiltin("crypto:sha1", sha1.New))
		module.Set("sha256", digestBuiltin("crypto:sha256", sha256.New))
		module.Set("sha512", digestBuiltin("crypto:sha512", sha512.New))
		module.Set("hmac_sha256", builtin("crypto:hmac_sha256", 2, 2, hmacSHA256))
		return module
	})
}

// digestBuiltin builds a hex-digest function over the given hash.
func digestBuiltin(name string, constructor func() hash.Hash) *values.Builtin {
	return builtin(name, 1, 1, func(rt values.Runtime, args []values.SujiValue) values.SujiValue {
		text, errV := argString(args, 0, name)
		if errV != nil {
			return errV
		}
		h := constructor()
		h.Write([]byte(text))
		return values.NewString(hex.EncodeToString(h.Sum(nil)))
	})
}

// hmacSHA256 computes crypto:hmac_sha256(key, message) as a hex digest.
func hmacSHA256(rt values.Runtime, args []values.SujiValue) values.SujiValue {
	key, errV := argString(args, 0, "crypto:hmac_sha256")
	if errV != nil {
		return errV
	}
	message, errV := argString(args, 1, "crypto:hmac_sha256")
	if errV != nil {
		return errV
	}
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(message))
	return values.NewString(hex.EncodeToString(mac.Sum(nil)))
}
