package conformance

import (
	"fmt"
	"strings"

	"monkey/builtins"
	"monkey/eval"
	"monkey/parser"
	"monkey/types"
)

// Runner evaluates conformance test cases against a fresh environment
// per case, using the real builtin table and macro pre-pass so a
// fixture exercises the same pipeline as cmd/monkey.
type Runner struct {
	registry *builtins.Registry
}

// NewRunner creates a Runner backed by the standard builtin table.
func NewRunner() *Runner {
	return &Runner{registry: builtins.NewRegistry()}
}

// Run evaluates a single test case and reports whether it passed.
func (r *Runner) Run(test LoadedTest) (pass bool, detail string) {
	p := parser.NewParser(test.Test.Code)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) != 0 {
		return false, fmt.Sprintf("parse error: %v", errs)
	}

	env := types.NewEnvironment()
	e := eval.NewEvaluatorWithBuiltins(r.registry.Get)

	eval.DefineMacros(program, env)
	expanded := e.ExpandMacros(program, env)

	result := e.Eval(expanded, env)
	return r.check(test.Test.Expect, result)
}

func (r *Runner) check(expect Expectation, result types.Value) (bool, string) {
	if expect.Error != "" {
		errObj, ok := result.(*types.Error)
		if !ok {
			return false, fmt.Sprintf("expected error containing %q, got %s (%s)",
				expect.Error, result.Type(), result.Inspect())
		}
		if !strings.Contains(errObj.Message, expect.Error) {
			return false, fmt.Sprintf("expected error containing %q, got %q", expect.Error, errObj.Message)
		}
		return true, ""
	}

	if expect.Value != nil {
		want := fmt.Sprintf("%v", expect.Value)
		got := result.Inspect()
		if got != want {
			return false, fmt.Sprintf("got=%q, want=%q", got, want)
		}
		return true, ""
	}

	return true, ""
}
