package parser_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/griezmannFromJavic/scheme-interpreter/lisp"
	"github.com/griezmannFromJavic/scheme-interpreter/parser"
	"github.com/griezmannFromJavic/scheme-interpreter/parser/rdparser"
	"github.com/griezmannFromJavic/scheme-interpreter/parser/token"
)

func TestComplete(t *testing.T) {
	complete := []string{
		"x",
		"42",
		"(+ 1 2)",
		"(define f (lambda (x) x))",
		"(a) (b c)",
		")", // lenient, parses as the empty list
	}
	for _, src := range complete {
		assert.True(t, parser.Complete([]byte(src)), "%q", src)
	}
	incomplete := []string{
		"",
		"   \n\t",
		"(define x",
		"(a (b)",
		"((",
	}
	for _, src := range incomplete {
		assert.False(t, parser.Complete([]byte(src)), "%q", src)
	}
}

func TestParseLVal(t *testing.T) {
	vs, _, err := parser.ParseLVal([]byte("(define a 1) (+ a 1)"))
	require.NoError(t, err)
	require.Len(t, vs, 2)
	assert.Equal(t, "(define a 1)", vs[0].String())
	assert.Equal(t, "(+ a 1)", vs[1].String())

	vs, _, err = parser.ParseLVal([]byte("#t #f 2.5 foo"))
	require.NoError(t, err)
	require.Len(t, vs, 4)
	assert.Equal(t, "#t", vs[0].String())
	assert.True(t, vs[1].IsNil())
	assert.Equal(t, "2.5", vs[2].String())
	assert.Equal(t, lisp.LSymbol, vs[3].Type)
}

// The goparsec grammar and the recursive descent parser accept the same
// language and must produce identical trees.
func TestParserEquivalence(t *testing.T) {
	sources := []string{
		"42",
		"-3.5",
		"foo",
		"#t",
		"#f",
		"()",
		"(+ 1 2)",
		"(define f (lambda (x y) (+ x y)))",
		"(a (b (c)) 1.5 #t)",
		")",
		"(#t#t)",
		"(#f5)",
		"(#too)",
	}
	for _, src := range sources {
		vs, _, err := parser.ParseLVal([]byte(src))
		require.NoError(t, err, "%q", src)
		require.Len(t, vs, 1, "%q", src)

		p := rdparser.New(token.NewScannerBytes("test", []byte(src)))
		want, err := p.ParseExpression()
		require.NoError(t, err, "%q", src)

		assert.Equal(t, want.String(), vs[0].String(), "%q", src)
	}
}

func TestParseStrayCloseParen(t *testing.T) {
	// a close parenthesis with no matching open reads as nil
	vs, _, err := parser.ParseLVal([]byte(")"))
	require.NoError(t, err)
	require.Len(t, vs, 1)
	assert.True(t, vs[0].IsNil())

	vs, _, err = parser.ParseLVal([]byte("(a))"))
	require.NoError(t, err)
	require.Len(t, vs, 2)
	assert.Equal(t, "(a)", vs[0].String())
	assert.True(t, vs[1].IsNil())
}

func TestBooleanAtomBoundary(t *testing.T) {
	// #t and #f are complete tokens no matter what follows them
	vs, _, err := parser.ParseLVal([]byte("(#t#t)"))
	require.NoError(t, err)
	require.Len(t, vs, 1)
	assert.Equal(t, "(#t #t)", vs[0].String())

	vs, _, err = parser.ParseLVal([]byte("#foo"))
	require.NoError(t, err)
	require.Len(t, vs, 2)
	assert.True(t, vs[0].IsNil())
	assert.Equal(t, "oo", vs[1].String())
}

func TestParseEval(t *testing.T) {
	var buf bytes.Buffer
	env := lisp.NewEnv(nil,
		lisp.WithReader(rdparser.NewReader()),
		lisp.WithStdout(&buf),
		lisp.WithStderr(&buf),
	)
	lisp.InitializeUserEnv(env)

	complete, err := parser.Parse(env, true, []byte("(define x 2) (+ x 1)"))
	require.NoError(t, err)
	assert.True(t, complete)
	assert.Equal(t, "x\n3\n", buf.String())

	// a stray close parenthesis evaluates and prints as nil
	buf.Reset()
	complete, err = parser.Parse(env, true, []byte(")"))
	require.NoError(t, err)
	assert.True(t, complete)
	assert.Equal(t, "()\n", buf.String())

	// an unfinished expression parses nothing at all
	buf.Reset()
	complete, err = parser.Parse(env, true, []byte("(+ x"))
	require.NoError(t, err)
	assert.False(t, complete)
	assert.Equal(t, "", buf.String())
}
