/*
File   : lull/eval/eval_calls.go
Package: eval
*/

package eval

import (
	"github.com/ashbrook/lull/ast"
	"github.com/ashbrook/lull/object"
)

func (e *Evaluator) evalIfExpression(node *ast.IfExpression, env *object.Environment) object.Object {
	condition := e.Eval(node.Condition, env)
	if object.IsError(condition) {
		return condition
	}

	if isTruthy(condition) {
		return e.Eval(node.Consequence, env)
	} else if node.Alternative != nil {
		return e.Eval(node.Alternative, env)
	}
	return object.NULL
}

// evalIdentifier looks the name up in env first, falling back to the
// built-in registry only on a miss — this is what keeps the initial
// environment from ever being able to shadow a built-in by accident,
// while still letting a user `let len = ...` shadow it on purpose.
func (e *Evaluator) evalIdentifier(node *ast.Identifier, env *object.Environment) object.Object {
	if val, ok := env.Get(node.Value); ok {
		return val
	}
	if builtin, ok := e.builtins[node.Value]; ok {
		return builtin
	}
	return newError("identifier not found: %s", node.Value)
}

// applyFunction dispatches a Call to a *object.Function (building a new
// enclosed environment that binds parameters and chains to the
// function's captured definition environment) or to a *object.Builtin.
func (e *Evaluator) applyFunction(fn object.Object, args []object.Object) object.Object {
	switch fn := fn.(type) {
	case *object.Function:
		extendedEnv := extendFunctionEnv(fn, args)
		evaluated := e.Eval(fn.Body, extendedEnv)
		return unwrapReturnValue(evaluated)

	case *object.Builtin:
		return fn.Fn(args...)

	default:
		return newError("not a function: %s", fn.Type())
	}
}

// extendFunctionEnv binds each parameter by position in a fresh frame
// chained to the function's captured definition environment. Ordinary
// calls bind positionally with no arity check (unlike built-ins, which
// do check arity) — so extra arguments are simply unused and missing
// ones are simply left unbound, to be reported as "identifier not
// found" if the body actually references them.
func extendFunctionEnv(fn *object.Function, args []object.Object) *object.Environment {
	env := object.NewEnclosedEnvironment(fn.Env)
	n := len(args)
	if len(fn.Parameters) < n {
		n = len(fn.Parameters)
	}
	for i := 0; i < n; i++ {
		env.Set(fn.Parameters[i].Value, args[i])
	}
	return env
}

// unwrapReturnValue strips the ReturnValue wrapper a function body's
// block may have produced — a Call is, along with Program, one of the
// two places a `return` is finally resolved rather than just
// propagated.
func unwrapReturnValue(obj object.Object) object.Object {
	if rv, ok := obj.(*object.ReturnValue); ok {
		return rv.Value
	}
	return obj
}
