/*
File   : lull/eval/evaluator.go
Package: eval
*/

// Package eval implements the tree-walking evaluator: Eval(node, env)
// is total (it always returns an object.Object) and threads the
// universal short-circuit rule through every multi-part evaluation —
// once a sub-evaluation yields an *object.Error, nothing after it is
// evaluated.
package eval

import (
	"io"
	"os"

	"github.com/ashbrook/lull/ast"
	"github.com/ashbrook/lull/object"
)

// Evaluator carries the configuration a tree walk needs beyond the AST
// and environment it's given per call: where `puts` writes its output.
// Swapping Writer for a bytes.Buffer is what makes built-in output
// observable in tests without touching os.Stdout.
type Evaluator struct {
	Writer   io.Writer
	builtins map[string]*object.Builtin
}

// New creates an Evaluator that writes `puts` output to os.Stdout by
// default.
func New() *Evaluator {
	e := &Evaluator{Writer: os.Stdout}
	e.rebuildBuiltins()
	return e
}

// SetWriter redirects built-in output (currently only `puts`) to w.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
	e.rebuildBuiltins()
}

func (e *Evaluator) rebuildBuiltins() {
	e.builtins = make(map[string]*object.Builtin, len(object.Builtins)+1)
	for name, b := range object.Builtins {
		e.builtins[name] = b
	}
	e.builtins["puts"] = object.NewPuts(e.Writer)
}

// Eval dispatches on the concrete type of node and returns the
// resulting runtime value. It is the single entry point every other
// file in this package's dispatch functions (evalProgram,
// evalInfixExpression, applyFunction, ...) calls back into for
// sub-evaluation.
func (e *Evaluator) Eval(node ast.Node, env *object.Environment) object.Object {
	switch node := node.(type) {

	case *ast.Program:
		return e.evalProgram(node, env)

	case *ast.ExpressionStatement:
		return e.Eval(node.Expression, env)

	case *ast.BlockStatement:
		return e.evalBlockStatement(node, env)

	case *ast.ReturnStatement:
		if node.Value == nil {
			return &object.ReturnValue{Value: object.NULL}
		}
		val := e.Eval(node.Value, env)
		if object.IsError(val) {
			return val
		}
		return &object.ReturnValue{Value: val}

	case *ast.LetStatement:
		val := e.Eval(node.Value, env)
		if object.IsError(val) {
			return val
		}
		env.Set(node.Name.Value, val)
		return object.NULL

	case *ast.IntegerLiteral:
		return &object.Integer{Value: node.Value}

	case *ast.StringLiteral:
		return &object.String{Value: node.Value}

	case *ast.BooleanLiteral:
		return object.NativeBoolToBooleanObject(node.Value)

	case *ast.PrefixExpression:
		right := e.Eval(node.Right, env)
		if object.IsError(right) {
			return right
		}
		return e.evalPrefixExpression(node.Operator, right)

	case *ast.InfixExpression:
		left := e.Eval(node.Left, env)
		if object.IsError(left) {
			return left
		}
		right := e.Eval(node.Right, env)
		if object.IsError(right) {
			return right
		}
		return e.evalInfixExpression(node.Operator, left, right)

	case *ast.IfExpression:
		return e.evalIfExpression(node, env)

	case *ast.Identifier:
		return e.evalIdentifier(node, env)

	case *ast.FunctionLiteral:
		return &object.Function{Parameters: node.Parameters, Body: node.Body, Env: env}

	case *ast.CallExpression:
		fn := e.Eval(node.Function, env)
		if object.IsError(fn) {
			return fn
		}
		args := e.evalExpressions(node.Arguments, env)
		if len(args) == 1 && object.IsError(args[0]) {
			return args[0]
		}
		return e.applyFunction(fn, args)

	case *ast.ArrayLiteral:
		elements := e.evalExpressions(node.Elements, env)
		if len(elements) == 1 && object.IsError(elements[0]) {
			return elements[0]
		}
		return &object.Array{Elements: elements}

	case *ast.IndexExpression:
		return e.evalIndexExpression(node, env)

	case *ast.HashLiteral:
		return e.evalHashLiteral(node, env)
	}

	return object.NULL
}

// evalProgram evaluates each top-level statement in order and returns
// the value of the last one. Unlike evalBlockStatement, a ReturnValue
// reaching this level is unwrapped immediately and ends evaluation of
// the whole program (a Call is the other place a ReturnValue is
// unwrapped, ending only that call).
func (e *Evaluator) evalProgram(program *ast.Program, env *object.Environment) object.Object {
	var result object.Object = object.NULL

	for _, stmt := range program.Statements {
		result = e.Eval(stmt, env)

		switch result := result.(type) {
		case *object.ReturnValue:
			return result.Value
		case *object.Error:
			return result
		}
	}

	return result
}

// evalBlockStatement evaluates each statement in order and returns the
// last value, but — unlike evalProgram — leaves a ReturnValue wrapped
// so it keeps propagating up through nested blocks until Eval's
// *ast.Program or *ast.CallExpression case unwraps it.
func (e *Evaluator) evalBlockStatement(block *ast.BlockStatement, env *object.Environment) object.Object {
	var result object.Object = object.NULL

	for _, stmt := range block.Statements {
		result = e.Eval(stmt, env)

		if result != nil {
			kind := result.Type()
			if kind == object.RETURN_VALUE_OBJ || kind == object.ERROR_OBJ {
				return result
			}
		}
	}

	return result
}

// evalExpressions evaluates each expression left-to-right, stopping
// immediately and returning a single-element slice holding the error
// the instant one is produced (the call sites above special-case a
// length-1 error slice to implement that short-circuit).
func (e *Evaluator) evalExpressions(exprs []ast.Expression, env *object.Environment) []object.Object {
	result := make([]object.Object, 0, len(exprs))

	for _, expr := range exprs {
		evaluated := e.Eval(expr, env)
		if object.IsError(evaluated) {
			return []object.Object{evaluated}
		}
		result = append(result, evaluated)
	}

	return result
}

// isTruthy implements the truthiness rule: false and NULL are falsy,
// everything else — including Integer(0) and empty strings/arrays —
// is truthy.
func isTruthy(obj object.Object) bool {
	switch obj {
	case object.NULL:
		return false
	case object.TRUE:
		return true
	case object.FALSE:
		return false
	default:
		return true
	}
}
