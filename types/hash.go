package types

import (
	"bytes"
	"fmt"
	"strings"
)

// HashPair keeps a Hash entry's original (unhashed) key alongside its
// value, so Inspect can print the real key rather than its HashKey.
type HashPair struct {
	Key   Value
	Value Value
}

// Hash maps HashKeys to (original key, value) pairs. Lookup semantics
// are the only contract — insertion order is not preserved or guaranteed
// on Inspect.
type Hash struct {
	Pairs map[HashKey]HashPair
}

func (h *Hash) Type() TypeCode { return HASH_OBJ }
func (h *Hash) Inspect() string {
	var out bytes.Buffer
	pairs := make([]string, 0, len(h.Pairs))
	for _, pair := range h.Pairs {
		pairs = append(pairs, fmt.Sprintf("%s: %s", pair.Key.Inspect(), pair.Value.Inspect()))
	}
	out.WriteString("{")
	out.WriteString(strings.Join(pairs, ", "))
	out.WriteString("}")
	return out.String()
}
