package builtins

import (
	"encoding/base64"

	"golang.org/x/crypto/ripemd160"

	"monkey/types"
)

// builtinHash returns the RIPEMD-160 digest of a String, hex-encoded.
// hash(str) -> String
func builtinHash(args ...types.Value) types.Value {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	str, ok := args[0].(*types.String)
	if !ok {
		return newError("argument to `hash` must be String, got %s", args[0].Type())
	}

	h := ripemd160.New()
	h.Write([]byte(str.Value))
	sum := h.Sum(nil)

	const hexDigits = "0123456789abcdef"
	out := make([]byte, len(sum)*2)
	for i, b := range sum {
		out[i*2] = hexDigits[b>>4]
		out[i*2+1] = hexDigits[b&0x0f]
	}
	return &types.String{Value: string(out)}
}

// builtinEncodeBase64 encodes a String as standard base64.
func builtinEncodeBase64(args ...types.Value) types.Value {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	str, ok := args[0].(*types.String)
	if !ok {
		return newError("argument to `encode_base64` must be String, got %s", args[0].Type())
	}
	return &types.String{Value: base64.StdEncoding.EncodeToString([]byte(str.Value))}
}

// builtinDecodeBase64 decodes a standard base64 String, returning an
// Error if the input is not valid base64.
func builtinDecodeBase64(args ...types.Value) types.Value {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	str, ok := args[0].(*types.String)
	if !ok {
		return newError("argument to `decode_base64` must be String, got %s", args[0].Type())
	}
	decoded, err := base64.StdEncoding.DecodeString(str.Value)
	if err != nil {
		return newError("decode_base64: %s", err.Error())
	}
	return &types.String{Value: string(decoded)}
}
