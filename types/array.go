package types

import (
	"bytes"
	"strings"
)

// Array is an ordered, heterogeneous sequence of values.
type Array struct {
	Elements []Value
}

func (a *Array) Type() TypeCode { return ARRAY_OBJ }
func (a *Array) Inspect() string {
	var out bytes.Buffer
	elements := make([]string, 0, len(a.Elements))
	for _, e := range a.Elements {
		elements = append(elements, e.Inspect())
	}
	out.WriteString("[")
	out.WriteString(strings.Join(elements, ", "))
	out.WriteString("]")
	return out.String()
}
