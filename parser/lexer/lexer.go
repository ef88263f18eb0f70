package lexer

import (
	"unicode"

	"github.com/griezmannFromJavic/scheme-interpreter/parser/token"
)

// Lexer splits a source stream into tokens.  The grammar has three token
// shapes: single-character parentheses, the two-character literals #t and
// #f, and maximal runs of everything else (atoms).
type Lexer struct {
	scanner *token.Scanner
	errored bool
}

// New initializes and returns a new Lexer reading tokens from s.
func New(s *token.Scanner) *Lexer {
	return &Lexer{
		scanner: s,
	}
}

// NextToken scans and returns the next token in the stream.  At the end of
// input NextToken returns EOF tokens forever.
func (lex *Lexer) NextToken() *token.Token {
	lex.skipWhitespace()
	if err := lex.scanner.Err(); err != nil && !lex.errored {
		lex.errored = true
		return lex.emit(token.ERROR, err.Error())
	}
	c := lex.scanner.Scan()
	switch c {
	case token.RuneEOF:
		return lex.scanner.EmitToken(token.EOF)
	case '(':
		return lex.scanner.EmitToken(token.PAREN_L)
	case ')':
		return lex.scanner.EmitToken(token.PAREN_R)
	}
	if c == '#' {
		// #t and #f are complete tokens no matter what follows them.
		switch lex.scanner.Peek() {
		case 't':
			lex.scanner.Scan()
			return lex.scanner.EmitToken(token.TRUE)
		case 'f':
			lex.scanner.Scan()
			return lex.scanner.EmitToken(token.FALSE)
		}
	}
	for isAtomRune(lex.scanner.Peek()) {
		lex.scanner.Scan()
	}
	if IsNumber(lex.scanner.Text()) {
		return lex.scanner.EmitToken(token.NUMBER)
	}
	return lex.scanner.EmitToken(token.SYMBOL)
}

func (lex *Lexer) emit(typ token.Type, text string) *token.Token {
	tok := &token.Token{
		Type:   typ,
		Text:   text,
		Source: lex.scanner.LocStart(),
	}
	lex.scanner.Ignore()
	return tok
}

func (lex *Lexer) skipWhitespace() {
	for unicode.IsSpace(lex.scanner.Peek()) {
		lex.scanner.Scan()
	}
	lex.scanner.Ignore()
}

// isAtomRune returns true for runes that extend an atom: anything that is
// not whitespace, a parenthesis, or the end of input.
func isAtomRune(c rune) bool {
	return c != token.RuneEOF && c != '(' && c != ')' && !unicode.IsSpace(c)
}

// IsNumber reports whether an atom is a numeric literal: an optional
// leading sign, digits, and at most one decimal point.  No exponents and
// no digit-leading symbols -- anything else is a symbol.
func IsNumber(text string) bool {
	i := 0
	if i < len(text) && (text[i] == '+' || text[i] == '-') {
		i++
	}
	digits := false
	dot := false
	for ; i < len(text); i++ {
		switch {
		case '0' <= text[i] && text[i] <= '9':
			digits = true
		case text[i] == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return digits
}
