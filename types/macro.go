package types

import "monkey/parser"

// Macro is a user-defined AST-rewriting function, installed by a `let`
// statement whose value is a macro literal and applied by the
// macro-expansion pre-pass before Eval ever sees the program.
type Macro struct {
	Parameters []*parser.Identifier
	Body       *parser.BlockStatement
	Env        *Environment
}

func (m *Macro) Type() TypeCode  { return MACRO_OBJ }
func (m *Macro) Inspect() string { return "macro" }
