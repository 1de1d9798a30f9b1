package eval

import (
	"fmt"

	"monkey/parser"
	"monkey/types"
)

// quote captures expr's AST as a Quote value after splicing in the
// result of every nested unquote() call.
func (e *Evaluator) quote(node parser.Node, env *types.Environment) types.Value {
	node = e.evalUnquoteCalls(node, env)
	return &types.Quote{Node: node}
}

// evalUnquoteCalls walks the quoted tree and replaces every unquote()
// call node with the AST form of its evaluated argument.
func (e *Evaluator) evalUnquoteCalls(quoted parser.Node, env *types.Environment) parser.Node {
	return parser.Modify(quoted, func(node parser.Node) parser.Node {
		if !isUnquoteCall(node) {
			return node
		}

		call, ok := node.(*parser.CallExpression)
		if !ok {
			return node
		}
		if len(call.Arguments) != 1 {
			return node
		}

		unquoted := e.Eval(call.Arguments[0], env)
		if converted := convertValueToASTNode(unquoted); converted != nil {
			return converted
		}
		return node
	})
}

func isUnquoteCall(node parser.Node) bool {
	call, ok := node.(*parser.CallExpression)
	if !ok {
		return false
	}
	return call.Function.TokenLiteral() == "unquote"
}

// convertValueToASTNode converts an evaluated unquote() argument back
// into an AST node so it can be spliced into the surrounding quote.
// Any other value yields nil, and the caller then leaves the unquote()
// call as-is — no substitution is performed.
func convertValueToASTNode(obj types.Value) parser.Node {
	switch obj := obj.(type) {
	case *types.Integer:
		t := parser.Token{Type: parser.TOKEN_INT, Literal: fmt.Sprintf("%d", obj.Value)}
		return &parser.IntegerLiteral{Tok: t, Value: obj.Value}

	case *types.Boolean:
		var t parser.Token
		if obj.Value {
			t = parser.Token{Type: parser.TOKEN_TRUE, Literal: "true"}
		} else {
			t = parser.Token{Type: parser.TOKEN_FALSE, Literal: "false"}
		}
		return &parser.Boolean{Tok: t, Value: obj.Value}

	case *types.Quote:
		return obj.Node

	default:
		return nil
	}
}
