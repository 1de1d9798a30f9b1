// Package types defines the runtime value variants the evaluator produces
// and consumes: Integer, Boolean, String, Null, Array, Hash, Function,
// Builtin, Quote, Macro, ReturnValue and Error.
package types

// TypeCode names a runtime value's dynamic type, used in error messages.
type TypeCode string

const (
	INTEGER_OBJ      TypeCode = "Integer"
	BOOLEAN_OBJ      TypeCode = "Boolean"
	STRING_OBJ       TypeCode = "String"
	NULL_OBJ         TypeCode = "Null"
	ARRAY_OBJ        TypeCode = "Array"
	HASH_OBJ         TypeCode = "Hash"
	FUNCTION_OBJ     TypeCode = "Function"
	BUILTIN_OBJ      TypeCode = "Builtin"
	QUOTE_OBJ        TypeCode = "Quote"
	MACRO_OBJ        TypeCode = "Macro"
	RETURN_VALUE_OBJ TypeCode = "ReturnValue"
	ERROR_OBJ        TypeCode = "Error"
)

// Value is the interface every runtime value implements.
type Value interface {
	Type() TypeCode
	Inspect() string // canonical printed form, used by == on mixed-but-equal types and by the REPL
}

// Hashable is implemented by every value variant the hash-key protocol
// accepts as a Hash key: Integer, Boolean, String.
type Hashable interface {
	HashKey() HashKey
}

// HashKey pairs a type tag with a content hash so that keys of different
// types never collide, even if their content hashes happen to coincide.
type HashKey struct {
	Type  TypeCode
	Value uint64
}
