package main

import (
	"bufio"
	"fmt"
	"io"

	"monkey/builtins"
	"monkey/eval"
	"monkey/parser"
	"monkey/types"
)

const prompt = ">> "

// startRepl reads one line at a time from in, evaluating each against a
// persistent environment so let-bindings and macros survive across
// lines, and writes the Inspect form of every result (or the error
// message) to out.
func startRepl(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	env := types.NewEnvironment()
	macroEnv := types.NewEnvironment()
	registry := builtins.NewRegistry()
	e := eval.NewEvaluatorWithBuiltins(registry.Get)

	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			return
		}

		line := scanner.Text()
		p := parser.NewParser(line)
		program := p.ParseProgram()

		if errs := p.Errors(); len(errs) != 0 {
			printParseErrors(out, errs)
			continue
		}

		eval.DefineMacros(program, macroEnv)
		expanded := e.ExpandMacros(program, macroEnv)

		evaluated := e.Eval(expanded, env)
		if evaluated != nil {
			fmt.Fprintln(out, evaluated.Inspect())
		}
	}
}

// runFile evaluates a whole source file in one shot: DefineMacros,
// ExpandMacros, then Eval once, printing the final value or error.
func runFile(src string, out io.Writer) error {
	p := parser.NewParser(src)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) != 0 {
		printParseErrors(out, errs)
		return fmt.Errorf("%d parse error(s)", len(errs))
	}

	env := types.NewEnvironment()
	macroEnv := types.NewEnvironment()
	registry := builtins.NewRegistry()
	e := eval.NewEvaluatorWithBuiltins(registry.Get)

	eval.DefineMacros(program, macroEnv)
	expanded := e.ExpandMacros(program, macroEnv)

	result := e.Eval(expanded, env)
	if result != nil {
		fmt.Fprintln(out, result.Inspect())
	}
	return nil
}

func printParseErrors(out io.Writer, errs []string) {
	fmt.Fprintln(out, "parser errors:")
	for _, msg := range errs {
		fmt.Fprintln(out, "\t"+msg)
	}
}
