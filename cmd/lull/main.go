/*
File   : lull/cmd/lull/main.go
Package: main
*/

// Command lull is the lull interpreter's command-line entry point. It
// supports three modes of operation:
//
//	lull                 start an interactive REPL
//	lull -e EXPR         evaluate a single expression and print its result
//	lull file.lull       evaluate a file
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ashbrook/lull/eval"
	"github.com/ashbrook/lull/lexer"
	"github.com/ashbrook/lull/object"
	"github.com/ashbrook/lull/parser"
	"github.com/ashbrook/lull/repl"
)

const (
	banner = `
888      888     888 888      888
888      888     888 888      888
888      888     888 888      888
888      888     888 888      888
888      Y88b. .d88P 888      888
888       "Y88888P"  88888888 88888888`
	version = "0.1.0"
	author  = "ashbrook"
	line    = "----------------------------------------"
	license = "MIT"
	prompt  = "lull >> "
)

func main() {
	expression := flag.String("e", "", "evaluate a single expression and exit")
	flag.Parse()

	switch {
	case *expression != "":
		evalExpression(*expression)
	case flag.NArg() > 0:
		evalFile(flag.Arg(0))
	default:
		startREPL()
	}
}

func startREPL() {
	r := repl.NewRepl(banner, version, author, line, license, prompt)
	r.Start(os.Stdout)
}

func evalFile(filename string) {
	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lull: %v\n", err)
		os.Exit(1)
	}
	run(string(content))
}

func evalExpression(expr string) {
	run(expr)
}

// run parses and evaluates src against a fresh environment, printing
// parser errors or the final value's Inspect() to stdout/stderr and
// setting a non-zero exit status on either kind of failure.
func run(src string) {
	p := parser.New(lexer.New(src))
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, msg := range errs {
			fmt.Fprintf(os.Stderr, "lull: %s\n", msg)
		}
		os.Exit(1)
	}

	env := object.NewEnvironment()
	ev := eval.New()
	result := ev.Eval(program, env)

	if result != nil && result.Type() == object.ERROR_OBJ {
		fmt.Fprintf(os.Stderr, "lull: %s\n", result.Inspect())
		os.Exit(1)
	}

	if result != nil {
		fmt.Println(result.Inspect())
	}
}
