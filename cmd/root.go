package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/griezmannFromJavic/scheme-interpreter/lisp"
	"github.com/griezmannFromJavic/scheme-interpreter/parser"
	"github.com/griezmannFromJavic/scheme-interpreter/parser/rdparser"
	"github.com/griezmannFromJavic/scheme-interpreter/repl"
)

// rootCmd represents the bare command.  On a terminal it starts the
// interactive loop; otherwise it evaluates standard input as a program.
var rootCmd = &cobra.Command{
	Use:   "scheme-interpreter",
	Short: "A small scheme interpreter",
	Long: `A small scheme interpreter with lexical scope, first class
functions, and a fixed set of special forms (quote, if, define, lambda).`,
	Run: func(cmd *cobra.Command, args []string) {
		if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			repl.RunRepl("scheme> ")
			return
		}
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := evalSource(source); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

// evalSource evaluates a whole program buffer against a fresh global
// environment.  Blank input is fine; a buffer holding an unfinished
// expression is a syntax error, as in the run command.
func evalSource(source []byte) error {
	if len(bytes.TrimSpace(source)) == 0 {
		return nil
	}
	env := newEnv()
	complete, err := parser.Parse(env, false, source)
	if err != nil {
		return err
	}
	if !complete {
		return errors.New("syntax error")
	}
	return nil
}

func newEnv() *lisp.LEnv {
	env := lisp.NewEnv(nil, lisp.WithReader(rdparser.NewReader()))
	lisp.InitializeUserEnv(env)
	return env
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
