package builtins

import (
	"fmt"

	"monkey/types"
)

// builtinPuts writes each argument's Inspect() form to standard output,
// one per line, and always returns Null.
func builtinPuts(args ...types.Value) types.Value {
	for _, arg := range args {
		fmt.Println(arg.Inspect())
	}
	return NULL
}
