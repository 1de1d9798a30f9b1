package eval

import (
	"monkey/parser"
	"monkey/types"
)

func evalIndexExpression(left, index types.Value) types.Value {
	switch {
	case left.Type() == types.ARRAY_OBJ && index.Type() == types.INTEGER_OBJ:
		return evalArrayIndexExpression(left, index)
	case left.Type() == types.HASH_OBJ:
		return evalHashIndexExpression(left, index)
	default:
		return newError("index operator not supported: %s", left.Type())
	}
}

// evalArrayIndexExpression returns Null for an out-of-range index rather
// than an Error — only a non-Array/non-Integer target is an error.
func evalArrayIndexExpression(array, index types.Value) types.Value {
	arr := array.(*types.Array)
	idx := index.(*types.Integer).Value
	max := int64(len(arr.Elements) - 1)

	if idx < 0 || idx > max {
		return NULL
	}
	return arr.Elements[idx]
}

func evalHashIndexExpression(hash, index types.Value) types.Value {
	hashObj := hash.(*types.Hash)

	key, ok := index.(types.Hashable)
	if !ok {
		return newError("unusable as hash key: %s", index.Type())
	}

	pair, ok := hashObj.Pairs[key.HashKey()]
	if !ok {
		return NULL
	}
	return pair.Value
}

// evalHashLiteral evaluates key/value pairs in source order: a key is
// evaluated before its value, and every pair before the next. Duplicate
// keys resolve to whichever pair was evaluated last.
func (e *Evaluator) evalHashLiteral(node *parser.HashLiteral, env *types.Environment) types.Value {
	pairs := make(map[types.HashKey]types.HashPair, len(node.Pairs))

	for _, p := range node.Pairs {
		key := e.Eval(p.Key, env)
		if isError(key) {
			return key
		}

		hashKey, ok := key.(types.Hashable)
		if !ok {
			return newError("unusable as hash key: %s", key.Type())
		}

		value := e.Eval(p.Value, env)
		if isError(value) {
			return value
		}

		pairs[hashKey.HashKey()] = types.HashPair{Key: key, Value: value}
	}

	return &types.Hash{Pairs: pairs}
}
