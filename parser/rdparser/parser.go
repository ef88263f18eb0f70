package rdparser

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/griezmannFromJavic/scheme-interpreter/lisp"
	"github.com/griezmannFromJavic/scheme-interpreter/parser/lexer"
	"github.com/griezmannFromJavic/scheme-interpreter/parser/token"
)

type reader struct {
}

// NewReader returns a lisp.Reader to configure a lisp.Runtime with.
func NewReader() lisp.Reader {
	return &reader{}
}

// Read implements lisp.Reader.
func (*reader) Read(name string, r io.Reader) ([]*lisp.LVal, error) {
	s := token.NewScanner(name, r)
	p := New(s)
	return p.ParseProgram()
}

// Parser is a recursive descent parser producing lisp values.  The parser
// is lenient: an unmatched close parenthesis parses as nil and an open
// list terminated by the end of input is simply closed.  Malformed input
// is not otherwise detected.
type Parser struct {
	lex  *lexer.Lexer
	curr *token.Token
	peek *token.Token
}

// New initializes and returns a new Parser that reads tokens from scanner.
func New(scanner *token.Scanner) *Parser {
	p := &Parser{
		lex: lexer.New(scanner),
	}
	// Setup the peek token so the parser is in the proper state when the
	// first parse function is called.
	p.ReadToken()
	return p
}

// ParseProgram parses forms repeatedly until the lexer reports a clean end
// of input.  This is the mode used by the load builtin.
func (p *Parser) ParseProgram() ([]*lisp.LVal, error) {
	var exprs []*lisp.LVal
	for {
		if p.expect(token.EOF) {
			return exprs, nil
		}
		expr, err := p.ParseExpression()
		if err != nil {
			return exprs, err
		}
		exprs = append(exprs, expr)
	}
}

// ParseExpression parses exactly one expression, leaving any remaining
// input unread.
func (p *Parser) ParseExpression() (*lisp.LVal, error) {
	switch p.PeekType() {
	case token.NUMBER:
		return p.parseNumber()
	case token.TRUE:
		p.ReadToken()
		return lisp.True(), nil
	case token.FALSE:
		// #f and the empty list are the same value.
		p.ReadToken()
		return lisp.Nil(), nil
	case token.SYMBOL:
		p.ReadToken()
		return lisp.Symbol(p.Token().Text), nil
	case token.PAREN_L:
		p.ReadToken()
		return p.parseList()
	case token.PAREN_R:
		p.ReadToken()
		return lisp.Nil(), nil
	case token.ERROR:
		p.ReadToken()
		return nil, errors.New(p.Token().Text)
	case token.EOF:
		return nil, io.EOF
	default:
		p.ReadToken()
		return nil, fmt.Errorf("%s unexpected %s", p.Token().Source, p.Token().Type)
	}
}

func (p *Parser) parseNumber() (*lisp.LVal, error) {
	p.ReadToken()
	text := p.Token().Text
	x, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, fmt.Errorf("%s invalid number literal: %s", p.Token().Source, text)
	}
	return lisp.Number(x), nil
}

// parseList reads expressions up to the matching close parenthesis and
// returns them as a chain of pairs terminated by nil.
func (p *Parser) parseList() (*lisp.LVal, error) {
	if p.expect(token.PAREN_R, token.EOF) {
		return lisp.Nil(), nil
	}
	head, err := p.ParseExpression()
	if err != nil {
		return lisp.Nil(), err
	}
	tail, err := p.parseList()
	if err != nil {
		return lisp.Nil(), err
	}
	return lisp.Cons(head, tail), nil
}

// ReadToken advances the token stream.
func (p *Parser) ReadToken() *token.Token {
	p.curr = p.peek
	p.peek = p.lex.NextToken()
	return p.curr
}

// Token returns the most recently read token.
func (p *Parser) Token() *token.Token {
	return p.curr
}

// Peek returns the next unread token.
func (p *Parser) Peek() *token.Token {
	return p.peek
}

// PeekType returns the type of the next unread token.
func (p *Parser) PeekType() token.Type {
	return p.peek.Type
}

func (p *Parser) expect(typ ...token.Type) bool {
	for _, typ := range typ {
		if typ == p.peek.Type {
			p.ReadToken()
			return true
		}
	}
	return false
}
