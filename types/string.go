package types

import "hash/fnv"

// String is a text value.
type String struct {
	Value string
}

func (s *String) Type() TypeCode  { return STRING_OBJ }
func (s *String) Inspect() string { return s.Value }

func (s *String) HashKey() HashKey {
	h := fnv.New64a()
	h.Write([]byte(s.Value))
	return HashKey{Type: s.Type(), Value: h.Sum64()}
}
