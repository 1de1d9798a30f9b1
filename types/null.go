package types

// Null is the absence of a value.
type Null struct{}

func (n *Null) Type() TypeCode  { return NULL_OBJ }
func (n *Null) Inspect() string { return "null" }
