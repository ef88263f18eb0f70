package repl

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"

	"github.com/griezmannFromJavic/scheme-interpreter/lisp"
	"github.com/griezmannFromJavic/scheme-interpreter/parser"
	"github.com/griezmannFromJavic/scheme-interpreter/parser/rdparser"
)

// ContinuationPrompt is shown while an entered expression is still missing
// closing parentheses.
const ContinuationPrompt = "... "

// RunRepl creates a fresh global environment and runs the interactive loop
// over it until end of input.
func RunRepl(prompt string) {
	env := lisp.NewEnv(nil, lisp.WithReader(rdparser.NewReader()))
	lisp.InitializeUserEnv(env)
	Run(env, prompt)
}

// Run drives a read-eval-print loop against env.  Lines accumulate until
// their parentheses balance, then every completed form is evaluated and
// its result printed.  Ctrl-C discards the accumulated buffer; Ctrl-D
// exits.
func Run(env *lisp.LEnv, prompt string) {
	rl, err := readline.New(prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	var buf []byte
	for {
		var line []byte
		line, err = rl.ReadSlice()
		if err == readline.ErrInterrupt {
			buf = nil
			rl.SetPrompt(prompt)
			continue
		}
		if err != nil {
			break
		}
		if len(buf) != 0 {
			buf = append(buf, '\n')
			line = append(buf, line...)
			buf = nil
			rl.SetPrompt(prompt)
		}
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		if !parser.Complete(line) {
			buf = append(buf[:0], line...)
			rl.SetPrompt(ContinuationPrompt)
			continue
		}
		exprs, _, err := parser.ParseLVal(line)
		if err != nil {
			fmt.Fprintln(env.Runtime.Stderr, err)
			continue
		}
		for _, expr := range exprs {
			fmt.Fprintln(env.Runtime.Stdout, env.Eval(expr))
		}
	}
	if err != io.EOF {
		fmt.Fprintln(os.Stderr, err)
	}
}
