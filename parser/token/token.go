package token

import "fmt"

// Token is a single lexical token of source text.
type Token struct {
	Type   Type
	Text   string
	Source *Location
}

type Type uint

// Type constants used by the lexer and parser.
const (
	INVALID Type = iota
	ERROR
	EOF

	// Atomic tokens.  An atom is any maximal run of characters that are
	// neither whitespace nor parentheses; the lexer classifies runs that
	// look like numeric literals as NUMBER and everything else as SYMBOL.
	SYMBOL
	NUMBER

	// Boolean literals #t and #f, always exactly two characters.
	TRUE
	FALSE

	// Delimiters
	PAREN_L
	PAREN_R

	numTokenTypes
)

func (typ Type) String() string {
	typeStrings := [numTokenTypes]string{
		INVALID: "invalid",
		ERROR:   "error",
		EOF:     "EOF",
		SYMBOL:  "symbol",
		NUMBER:  "number",
		TRUE:    "#t",
		FALSE:   "#f",
		PAREN_L: "(",
		PAREN_R: ")",
	}
	if typ >= numTokenTypes {
		return typeStrings[INVALID]
	}
	return typeStrings[typ]
}

// Location identifies a position in a source stream.
type Location struct {
	File string
	Pos  int
	Line int // line number (starting at 1)
}

func (loc *Location) String() string {
	if loc.Line == 0 {
		return fmt.Sprintf("%s[%d]", loc.File, loc.Pos)
	}
	return fmt.Sprintf("%s:%d", loc.File, loc.Line)
}
