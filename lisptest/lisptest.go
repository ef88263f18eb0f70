package lisptest

import (
	"bytes"
	"testing"

	"github.com/griezmannFromJavic/scheme-interpreter/lisp"
	"github.com/griezmannFromJavic/scheme-interpreter/parser"
	"github.com/griezmannFromJavic/scheme-interpreter/parser/rdparser"
)

// TestSequence is a sequence of lisp expressions which are evaluated
// sequentially against a single environment.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // the printed form of the evaluated result
	Output string // text written to the environment's output streams
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// NewEnv returns a fresh global environment with display and diagnostic
// output both redirected into buf.
func NewEnv(buf *bytes.Buffer) *lisp.LEnv {
	env := lisp.NewEnv(nil,
		lisp.WithReader(rdparser.NewReader()),
		lisp.WithStdout(buf),
		lisp.WithStderr(buf),
	)
	lisp.InitializeUserEnv(env)
	return env
}

// RunTestSuite runs each TestSequence in tests on an isolated environment.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		var output bytes.Buffer
		env := NewEnv(&output)
		for j, expr := range test.TestSequence {
			v, _, err := parser.ParseLVal([]byte(expr.Expr))
			if err != nil {
				t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
				continue
			}
			if len(v) == 0 {
				t.Errorf("test %d %q: expr %d: no expression parsed", i, test.Name, j)
				continue
			}
			if len(v) != 1 {
				t.Errorf("test %d %q: expr %d: more than one expression parsed (%d)", i, test.Name, j, len(v))
				continue
			}
			output.Reset()
			result := env.Eval(v[0]).String()
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
			if output.String() != expr.Output {
				t.Errorf("test %d %q: expr %d: expected output %q (got %q)", i, test.Name, j, expr.Output, output.String())
			}
		}
	}
}
