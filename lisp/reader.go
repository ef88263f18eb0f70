package lisp

import "io"

// Reader abstracts the parser so that the load builtin can parse source
// streams without the lisp package importing the parser directly.  Read
// parses top-level forms from r until a clean end of input and returns
// them in order.
type Reader interface {
	Read(name string, r io.Reader) ([]*LVal, error)
}
