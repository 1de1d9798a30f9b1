package types

// BuiltinFunc is the signature every native function in the built-in
// table implements: takes the already-evaluated argument list, returns
// a value (possibly an *Error).
type BuiltinFunc func(args ...Value) Value

// Builtin wraps a native function so it can be handed out as an
// ordinary Value wherever a Function value could appear.
type Builtin struct {
	Fn BuiltinFunc
}

func (b *Builtin) Type() TypeCode  { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string { return "builtin function" }
