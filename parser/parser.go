/*
Package parser provides a buffer-oriented lisp parser built on goparsec,
used by the REPL and the command line front end.

	expr := atom | '(' expr* ')'
	atom := '#t' | '#f' | number | symbol
	number := /[+-]?[0-9]+(.[0-9]+)?/
	symbol := any other maximal run of non-space, non-paren characters

The stream-oriented recursive descent parser lives in parser/rdparser; the
two parsers tokenize identically and produce identical value trees for
complete input, including a stray close parenthesis reading as nil.  They
differ only on an unfinished list: rdparser closes it at the end of input
while ParseLVal reports it so the caller can buffer more text.
*/
package parser

import (
	"fmt"
	"io"
	"strconv"
	"unicode"

	parsec "github.com/prataprc/goparsec"

	"github.com/griezmannFromJavic/scheme-interpreter/lisp"
	"github.com/griezmannFromJavic/scheme-interpreter/parser/lexer"
)

const (
	nodeInvalid nodeType = iota
	nodeTerm
	nodeSExpr
)

var nodeTypeStrings = []string{
	nodeInvalid: "INVALID",
	nodeTerm:    "TERM",
	nodeSExpr:   "SEXPR",
}

// Parse parses the expressions in text and evaluates them against env,
// printing each result to the environment's stdout when print is true.
// The returned bool reports whether at least one expression was parsed and
// evaluated -- a buffer holding only an unfinished expression returns
// false so the caller can read more input.
func Parse(env *lisp.LEnv, print bool, text []byte) (bool, error) {
	s := parsec.NewScanner(text)
	parser := newParsecParser()

	evaled := false
	for {
		var root parsec.ParsecNode
		root, s = parseRoot(parser, s)
		if root == nil {
			break
		}
		v := getLVal(root)
		if v != nil {
			res := env.Eval(v)
			if print {
				fmt.Fprintln(env.Runtime.Stdout, res)
			}
			evaled = true
		}
	}
	return evaled, nil
}

// ParseLVal parses LVal values from text and returns them.  The number of
// bytes read is returned along with any error encountered in parsing.
func ParseLVal(text []byte) ([]*lisp.LVal, int, error) {
	var v []*lisp.LVal
	s := parsec.NewScanner(text)
	parser := newParsecParser()
	for {
		var root parsec.ParsecNode
		root, s = parseRoot(parser, s)
		if root == nil {
			break
		}
		if lval := getLVal(root); lval != nil {
			v = append(v, lval)
		}
	}
	if !s.Endof() {
		return v, s.GetCursor(), io.ErrUnexpectedEOF
	}
	return v, s.GetCursor(), nil
}

// Complete reports whether text can be handed to the evaluator: it holds
// some non-blank input and its parentheses are balanced.  This is the
// line-buffering heuristic of the interactive loop -- it knows nothing
// about the grammar beyond parenthesis counting.
func Complete(text []byte) bool {
	open, closed := 0, 0
	blank := true
	for _, c := range string(text) {
		switch {
		case c == '(':
			open++
		case c == ')':
			closed++
		case !unicode.IsSpace(c):
			blank = false
		}
	}
	if open == 0 {
		return !blank
	}
	return open == closed
}

var strayCloseP = parsec.Atom(")", "CLOSEP")

// parseRoot reads the next top-level form from s.  A close parenthesis
// with no matching open is tolerated and reads as nil, matching the
// stream parser.  A nil node means no further form can be read.
func parseRoot(parser parsec.Parser, s parsec.Scanner) (parsec.ParsecNode, parsec.Scanner) {
	root, s := parser(s)
	if root != nil {
		return root, s
	}
	root, s = strayCloseP(s)
	if root == nil {
		return nil, s
	}
	return lisp.Nil(), s
}

func newParsecParser() parsec.Parser {
	openP := parsec.Atom("(", "OPENP")
	closeP := parsec.Atom(")", "CLOSEP")
	// #t and #f are complete tokens no matter what follows them, so they
	// are split off ahead of the maximal atom run.
	boolean := parsec.Token(`#[tf]`, "BOOL")
	atom := parsec.Token(`[^\s()]+`, "ATOM")
	term := parsec.OrdChoice(astNode(nodeTerm), boolean, atom)
	var expr parsec.Parser // forward declaration allows for recursive parsing
	exprList := parsec.Kleene(nil, &expr)
	sexpr := parsec.And(astNode(nodeSExpr), openP, exprList, closeP)
	expr = parsec.OrdChoice(nil, term, sexpr)
	return expr
}

type nodeType uint

func (t nodeType) String() string {
	if int(t) >= len(nodeTypeStrings) {
		return nodeTypeStrings[nodeInvalid]
	}
	return nodeTypeStrings[t]
}

func newAST(typ nodeType, nodes []parsec.ParsecNode) parsec.ParsecNode {
	nodes = cleanParsecNodeList(nodes)
	switch typ {
	case nodeTerm:
		term, ok := nodes[0].(*parsec.Terminal)
		if !ok {
			return nil
		}
		return atomLVal(term.Value)
	case nodeSExpr:
		// The terminal parsec nodes '(' and ')' are dropped.
		var cells []*lisp.LVal
		for _, c := range nodes {
			if lval, ok := c.(*lisp.LVal); ok {
				cells = append(cells, lval)
			}
		}
		return lisp.List(cells...)
	default:
		panic(fmt.Sprintf("unknown nodeType: %s (%d)", typ, typ))
	}
}

// atomLVal classifies an atom exactly the way the stream lexer does: the
// boolean literals first, then numbers, then symbols.
func atomLVal(text string) *lisp.LVal {
	switch {
	case text == "#t":
		return lisp.True()
	case text == "#f":
		return lisp.Nil()
	case lexer.IsNumber(text):
		x, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return lisp.Symbol(text)
		}
		return lisp.Number(x)
	default:
		return lisp.Symbol(text)
	}
}

func cleanParsecNodeList(lis []parsec.ParsecNode) []parsec.ParsecNode {
	var nodes []parsec.ParsecNode
	for _, n := range lis {
		switch node := n.(type) {
		case []parsec.ParsecNode:
			nodes = append(nodes, cleanParsecNodeList(node)...)
		default:
			nodes = append(nodes, node)
		}
	}
	return nodes
}

func astNode(t nodeType) parsec.Nodify {
	return func(nodes []parsec.ParsecNode) parsec.ParsecNode {
		return newAST(t, nodes)
	}
}

func getLVal(root parsec.ParsecNode) *lisp.LVal {
	nodes := cleanParsecNodeList([]parsec.ParsecNode{root})
	if len(nodes) == 0 {
		// only whitespace was consumed
		return nil
	}
	lval, ok := nodes[0].(*lisp.LVal)
	if !ok {
		return nil
	}
	return lval
}
