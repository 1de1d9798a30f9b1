// Package builtins implements the table of names the evaluator falls
// back to when an identifier is not bound in the current environment:
// len, first, last, rest, push, puts, plus a small set of encoding
// helpers grounded in the wider example pack.
package builtins

import (
	"fmt"

	"monkey/types"
)

// NULL is returned by builtins whose result is absent (first/last/rest on
// an empty Array). It is a distinct instance from eval's own NULL
// singleton, but Null carries no state, so the two are interchangeable
// everywhere Inspect() or Type() is consulted.
var NULL = &types.Null{}

// Registry holds the built-in function table, looked up by name.
type Registry struct {
	funcs map[string]*types.Builtin
}

// NewRegistry creates a Registry with every built-in registered.
func NewRegistry() *Registry {
	r := &Registry{funcs: make(map[string]*types.Builtin)}

	r.Register("len", builtinLen)
	r.Register("first", builtinFirst)
	r.Register("last", builtinLast)
	r.Register("rest", builtinRest)
	r.Register("push", builtinPush)
	r.Register("puts", builtinPuts)

	r.Register("hash", builtinHash)
	r.Register("encode_base64", builtinEncodeBase64)
	r.Register("decode_base64", builtinDecodeBase64)

	return r
}

// Register adds a builtin function to the registry under name.
func (r *Registry) Register(name string, fn types.BuiltinFunc) {
	r.funcs[name] = &types.Builtin{Fn: fn}
}

// Get retrieves a builtin by name, satisfying eval.BuiltinLookup.
func (r *Registry) Get(name string) (types.Value, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.funcs[name]
	return ok
}

func newError(format string, a ...interface{}) *types.Error {
	return &types.Error{Message: fmt.Sprintf(format, a...)}
}
