/*
File   : lull/object/builtins.go
Package: object
*/

// This file defines the built-ins len, puts, first, last, rest, push.
// All but puts live in the fixed, process-wide Builtins registry; puts
// is built per writer by NewPuts. Built-ins are reified as *Builtin
// values only when an identifier lookup misses the environment, so
// nothing here ever shadows a user binding of the same name.
package object

import (
	"fmt"
	"io"
)

// Builtins holds every built-in except puts, keyed by name. puts needs
// a writer, so each Evaluator adds its own from NewPuts.
var Builtins = map[string]*Builtin{
	"len":   {Fn: builtinLen},
	"first": {Fn: builtinFirst},
	"last":  {Fn: builtinLast},
	"rest":  {Fn: builtinRest},
	"push":  {Fn: builtinPush},
}

// NewPuts builds the `puts` builtin bound to w, so its output can be
// redirected (e.g. to a bytes.Buffer in tests) instead of always
// writing to os.Stdout.
func NewPuts(w io.Writer) *Builtin {
	return &Builtin{Fn: func(args ...Object) Object {
		for _, arg := range args {
			fmt.Fprintln(w, arg.Inspect())
		}
		return NULL
	}}
}

func newError(format string, a ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, a...)}
}

func wrongArgCount(got, want int) *Error {
	return newError("wrong number of arguments. got=%d, want=%d", got, want)
}

func builtinLen(args ...Object) Object {
	if len(args) != 1 {
		return wrongArgCount(len(args), 1)
	}
	switch arg := args[0].(type) {
	case *String:
		return &Integer{Value: int64(len(arg.Value))}
	case *Array:
		return &Integer{Value: int64(len(arg.Elements))}
	default:
		return newError("argument to `len` not supported, got %s", args[0].Type())
	}
}

func builtinFirst(args ...Object) Object {
	if len(args) != 1 {
		return wrongArgCount(len(args), 1)
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return newError("argument to `first` must be ARRAY, got %s", args[0].Type())
	}
	if len(arr.Elements) > 0 {
		return arr.Elements[0]
	}
	return NULL
}

// builtinLast returns NULL for an array with zero or one elements,
// matching the reference implementation's bounds check, rather than
// returning the sole element in the one-element case.
func builtinLast(args ...Object) Object {
	if len(args) != 1 {
		return wrongArgCount(len(args), 1)
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return newError("argument to `last` must be ARRAY, got %s", args[0].Type())
	}
	if len(arr.Elements) > 1 {
		return arr.Elements[len(arr.Elements)-1]
	}
	return NULL
}

func builtinRest(args ...Object) Object {
	if len(args) != 1 {
		return wrongArgCount(len(args), 1)
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return newError("argument to `rest` must be ARRAY, got %s", args[0].Type())
	}
	length := len(arr.Elements)
	if length == 0 {
		return NULL
	}
	newElements := make([]Object, length-1)
	copy(newElements, arr.Elements[1:length])
	return &Array{Elements: newElements}
}

func builtinPush(args ...Object) Object {
	if len(args) != 2 {
		return wrongArgCount(len(args), 2)
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return newError("argument to `push` must be ARRAY, got %s", args[0].Type())
	}
	length := len(arr.Elements)
	newElements := make([]Object, length+1)
	copy(newElements, arr.Elements)
	newElements[length] = args[1]
	return &Array{Elements: newElements}
}
