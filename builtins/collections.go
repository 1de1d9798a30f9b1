package builtins

import "monkey/types"

// builtinLen reports the length of a String or Array.
// len(str) -> Integer
// len(arr) -> Integer
func builtinLen(args ...types.Value) types.Value {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}

	switch arg := args[0].(type) {
	case *types.String:
		return &types.Integer{Value: int64(len(arg.Value))}
	case *types.Array:
		return &types.Integer{Value: int64(len(arg.Elements))}
	default:
		return newError("argument to `len` not supported, got %s", arg.Type())
	}
}

// builtinFirst returns an Array's first element, or Null if it is empty.
func builtinFirst(args ...types.Value) types.Value {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	arr, ok := args[0].(*types.Array)
	if !ok {
		return newError("argument to `first` must be Array, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return NULL
	}
	return arr.Elements[0]
}

// builtinLast returns an Array's last element, or Null if it is empty.
func builtinLast(args ...types.Value) types.Value {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	arr, ok := args[0].(*types.Array)
	if !ok {
		return newError("argument to `last` must be Array, got %s", args[0].Type())
	}
	length := len(arr.Elements)
	if length == 0 {
		return NULL
	}
	return arr.Elements[length-1]
}

// builtinRest returns a new Array holding every element but the first, or
// Null if the input is empty.
func builtinRest(args ...types.Value) types.Value {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	arr, ok := args[0].(*types.Array)
	if !ok {
		return newError("argument to `rest` must be Array, got %s", args[0].Type())
	}
	length := len(arr.Elements)
	if length == 0 {
		return NULL
	}
	newElements := make([]types.Value, length-1)
	copy(newElements, arr.Elements[1:length])
	return &types.Array{Elements: newElements}
}

// builtinPush returns a new Array with an element appended; the original
// Array's backing slice is left untouched.
func builtinPush(args ...types.Value) types.Value {
	if len(args) != 2 {
		return newError("wrong number of arguments. got=%d, want=2", len(args))
	}
	arr, ok := args[0].(*types.Array)
	if !ok {
		return newError("argument to `push` must be Array, got %s", args[0].Type())
	}
	length := len(arr.Elements)
	newElements := make([]types.Value, length+1)
	copy(newElements, arr.Elements)
	newElements[length] = args[1]
	return &types.Array{Elements: newElements}
}
