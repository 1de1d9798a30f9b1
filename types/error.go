package types

// Error is a runtime error value. Errors are ordinary values, not Go
// exceptions: every evaluator site that produces a sub-value checks
// whether it is an Error and returns it immediately, short-circuiting
// enclosing evaluation.
type Error struct {
	Message string
}

func (e *Error) Type() TypeCode  { return ERROR_OBJ }
func (e *Error) Inspect() string { return "ERROR: " + e.Message }
