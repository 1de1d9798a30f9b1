package eval

import (
	"fmt"
	"os"

	"monkey/parser"
	"monkey/types"
)

// DefineMacros scans program's top-level statements for macro definitions
// (let <name> = macro(...) { ... };), binds each one into env, and strips
// the defining statement out of the program. It must run once, before
// ExpandMacros, so macro(...) literals never reach normal evaluation.
func DefineMacros(program *parser.Program, env *types.Environment) {
	definitions := []int{}

	for i, stmt := range program.Statements {
		if isMacroDefinition(stmt) {
			addMacro(stmt, env)
			definitions = append(definitions, i)
		}
	}

	for i := len(definitions) - 1; i >= 0; i-- {
		idx := definitions[i]
		program.Statements = append(program.Statements[:idx], program.Statements[idx+1:]...)
	}
}

func isMacroDefinition(node parser.Stmt) bool {
	letStmt, ok := node.(*parser.LetStatement)
	if !ok {
		return false
	}
	_, ok = letStmt.Value.(*parser.MacroLiteral)
	return ok
}

func addMacro(stmt parser.Stmt, env *types.Environment) {
	letStmt, _ := stmt.(*parser.LetStatement)
	macroLiteral, _ := letStmt.Value.(*parser.MacroLiteral)

	macro := &types.Macro{
		Parameters: macroLiteral.Parameters,
		Env:        env,
		Body:       macroLiteral.Body,
	}

	env.Set(letStmt.Name.Value, macro)
}

// ExpandMacros rewrites every macro call site in program with the result
// of evaluating the macro's body against its arguments, each wrapped in a
// Quote so the macro body sees unevaluated AST rather than values. The
// macro body must itself evaluate to a Quote; anything else is a macro
// author error, reported to standard error, and the call site is left
// unchanged rather than aborting expansion of the rest of the program.
func (e *Evaluator) ExpandMacros(program *parser.Program, env *types.Environment) parser.Node {
	return parser.Modify(program, func(node parser.Node) parser.Node {
		callExpression, ok := node.(*parser.CallExpression)
		if !ok {
			return node
		}

		macro, ok := isMacroCall(callExpression, env)
		if !ok {
			return node
		}

		args := quoteArgs(callExpression)
		evalEnv := extendMacroEnv(macro, args)

		evaluated := e.Eval(macro.Body, evalEnv)

		quote, ok := evaluated.(*types.Quote)
		if !ok {
			got := "no value"
			if evaluated != nil {
				got = string(evaluated.Type())
			}
			fmt.Fprintf(os.Stderr, "macro %q did not return a quoted expression, got %s\n",
				callExpression.Function.TokenLiteral(), got)
			return node
		}

		return quote.Node
	})
}

func isMacroCall(exp *parser.CallExpression, env *types.Environment) (*types.Macro, bool) {
	identifier, ok := exp.Function.(*parser.Identifier)
	if !ok {
		return nil, false
	}

	obj, ok := env.Get(identifier.Value)
	if !ok {
		return nil, false
	}

	macro, ok := obj.(*types.Macro)
	if !ok {
		return nil, false
	}

	return macro, true
}

// quoteArgs wraps every argument expression, unevaluated, in a Quote — a
// macro receives the AST of what was written at the call site, never a
// value.
func quoteArgs(exp *parser.CallExpression) []*types.Quote {
	args := make([]*types.Quote, 0, len(exp.Arguments))

	for _, a := range exp.Arguments {
		args = append(args, &types.Quote{Node: a})
	}

	return args
}

func extendMacroEnv(macro *types.Macro, args []*types.Quote) *types.Environment {
	extended := types.NewEnclosedEnvironment(macro.Env)

	for paramIdx, param := range macro.Parameters {
		if paramIdx >= len(args) {
			break
		}
		extended.Set(param.Value, args[paramIdx])
	}

	return extended
}
