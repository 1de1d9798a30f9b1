package types

import (
	"fmt"
	"hash/fnv"
)

// Integer is a 64-bit signed integer value.
type Integer struct {
	Value int64
}

func (i *Integer) Type() TypeCode  { return INTEGER_OBJ }
func (i *Integer) Inspect() string { return fmt.Sprintf("%d", i.Value) }

func (i *Integer) HashKey() HashKey {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d", i.Value)
	return HashKey{Type: i.Type(), Value: h.Sum64()}
}
