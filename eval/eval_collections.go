/*
File   : lull/eval/eval_collections.go
Package: eval
*/

package eval

import (
	"github.com/ashbrook/lull/ast"
	"github.com/ashbrook/lull/object"
)

func (e *Evaluator) evalIndexExpression(node *ast.IndexExpression, env *object.Environment) object.Object {
	left := e.Eval(node.Left, env)
	if object.IsError(left) {
		return left
	}
	index := e.Eval(node.Index, env)
	if object.IsError(index) {
		return index
	}

	switch {
	case left.Type() == object.ARRAY_OBJ && index.Type() == object.INTEGER_OBJ:
		return e.evalArrayIndexExpression(left.(*object.Array), index.(*object.Integer))
	case left.Type() == object.HASH_OBJ:
		return e.evalHashIndexExpression(left.(*object.Hash), index)
	default:
		return newError("index operator not supported: %s", left.Type())
	}
}

// evalArrayIndexExpression rejects negative indices up front rather
// than wrapping them from the end of the array — Go's signed int
// makes explicit rejection the natural fit, and it keeps `arr[-1]`
// from silently aliasing `arr[len(arr)-1]`.
func (e *Evaluator) evalArrayIndexExpression(array *object.Array, index *object.Integer) object.Object {
	i := index.Value
	max := int64(len(array.Elements) - 1)

	if i < 0 || i > max {
		return object.NULL
	}
	return array.Elements[i]
}

func (e *Evaluator) evalHashIndexExpression(hash *object.Hash, index object.Object) object.Object {
	key, ok := index.(object.Hashable)
	if !ok {
		return newError("unusable as hash key: %s", index.Type())
	}

	pair, ok := hash.Pairs[key.HashKey()]
	if !ok {
		return object.NULL
	}
	return pair.Value
}

func (e *Evaluator) evalHashLiteral(node *ast.HashLiteral, env *object.Environment) object.Object {
	pairs := make(map[object.HashKey]object.HashPair, len(node.Pairs))

	for _, pairNode := range node.Pairs {
		key := e.Eval(pairNode.Key, env)
		if object.IsError(key) {
			return key
		}

		hashable, ok := key.(object.Hashable)
		if !ok {
			return newError("unusable as hash key: %s", key.Type())
		}

		value := e.Eval(pairNode.Value, env)
		if object.IsError(value) {
			return value
		}

		pairs[hashable.HashKey()] = object.HashPair{Key: key, Value: value}
	}

	return &object.Hash{Pairs: pairs}
}
