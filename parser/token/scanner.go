package token

import (
	"io"
	"unicode/utf8"
)

// RuneEOF is the rune returned by Scanner.Peek and Scanner.Scan once the
// input is exhausted.
const RuneEOF rune = -1

// Scanner facilitates construction of tokens from a source stream.  The
// stream is consumed whole before scanning begins -- the language the
// scanner serves reads entire buffers and entire files, never partial
// streams.
type Scanner struct {
	file      string
	buf       []byte
	start     int // start of the pending token
	pos       int // index of the next unread byte
	line      int // line number at pos
	startLine int
	readErr   error
}

// NewScanner initializes and returns a new Scanner reading from r.
func NewScanner(file string, r io.Reader) *Scanner {
	buf, err := io.ReadAll(r)
	return &Scanner{
		file:      file,
		buf:       buf,
		line:      1,
		startLine: 1,
		readErr:   err,
	}
}

// NewScannerBytes initializes and returns a new Scanner over a byte
// buffer.
func NewScannerBytes(file string, buf []byte) *Scanner {
	return &Scanner{
		file:      file,
		buf:       buf,
		line:      1,
		startLine: 1,
	}
}

// Err returns the error encountered reading the source stream, if any.
func (s *Scanner) Err() error {
	return s.readErr
}

// Peek returns the next rune in the input without consuming it.
func (s *Scanner) Peek() rune {
	if s.pos >= len(s.buf) {
		return RuneEOF
	}
	c, _ := utf8.DecodeRune(s.buf[s.pos:])
	return c
}

// Scan consumes the next rune in the input and returns it, extending the
// pending token.
func (s *Scanner) Scan() rune {
	if s.pos >= len(s.buf) {
		return RuneEOF
	}
	c, n := utf8.DecodeRune(s.buf[s.pos:])
	s.pos += n
	if c == '\n' {
		s.line++
	}
	return c
}

// Text returns the text scanned since the last call to either EmitToken or
// Ignore.
func (s *Scanner) Text() string {
	return string(s.buf[s.start:s.pos])
}

// Ignore causes the scanner to discard all text scanned since the last
// call to either EmitToken or Ignore.
func (s *Scanner) Ignore() {
	s.start = s.pos
	s.startLine = s.line
}

// EmitToken returns a token containing the text scanned since the last
// call to either EmitToken or Ignore.
func (s *Scanner) EmitToken(typ Type) *Token {
	tok := &Token{
		Type:   typ,
		Text:   s.Text(),
		Source: s.LocStart(),
	}
	s.Ignore()
	return tok
}

// LocStart returns a Location referencing the beginning of the pending
// token.
func (s *Scanner) LocStart() *Location {
	return &Location{
		File: s.file,
		Pos:  s.start,
		Line: s.startLine,
	}
}
