package types

import "monkey/parser"

// Quote carries an AST subtree as an opaque runtime value, produced by
// the `quote` special form. It participates in no operator except == and
// != (which compare printed forms) and re-quoting.
type Quote struct {
	Node parser.Node
}

func (q *Quote) Type() TypeCode  { return QUOTE_OBJ }
func (q *Quote) Inspect() string { return "QUOTE(" + q.Node.String() + ")" }
