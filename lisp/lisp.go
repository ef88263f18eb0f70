package lisp

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// LValType is the type of an LVal
type LValType uint

// Possible LValType values
const (
	LInvalid LValType = iota
	LNil
	LNumber
	LSymbol
	LPair
	LFun
)

var lvalTypeStrings = []string{
	LInvalid: "INVALID",
	LNil:     "nil",
	LNumber:  "number",
	LSymbol:  "symbol",
	LPair:    "pair",
	LFun:     "function",
}

func (t LValType) String() string {
	if int(t) >= len(lvalTypeStrings) {
		return lvalTypeStrings[LInvalid]
	}
	return lvalTypeStrings[t]
}

// TrueSymbol is the name of the canonical true value.  The reader produces
// the symbol for a ``#t'' token and the symbol is bound to itself in the
// global environment.  The canonical false value is Nil -- false and the
// empty list are the same value in this language.
const TrueSymbol = "#t"

// LVal is a lisp value.  An LVal is never mutated after construction; pairs
// are freely aliased and may be shared between independent structures.
type LVal struct {
	Type LValType
	Num  float64
	Str  string // symbol name, or the name of a builtin function
	Car  *LVal
	Cdr  *LVal

	// Fields needed for function values
	Builtin LBuiltin
	Formals *LVal
	Body    *LVal
	Env     *LEnv
}

// Nil returns an LVal representing nil, the empty list, the false value.
func Nil() *LVal {
	return &LVal{
		Type: LNil,
	}
}

// Number returns an LVal representing the number x.
func Number(x float64) *LVal {
	return &LVal{
		Type: LNumber,
		Num:  x,
	}
}

// Symbol returns an LVal representing the symbol s.  Symbols are equal when
// their names are equal, not when they alias the same LVal.
func Symbol(s string) *LVal {
	return &LVal{
		Type: LSymbol,
		Str:  s,
	}
}

// True returns the canonical true value, the symbol #t.
func True() *LVal {
	return Symbol(TrueSymbol)
}

// Bool returns True when b and Nil otherwise.
func Bool(b bool) *LVal {
	if b {
		return True()
	}
	return Nil()
}

// Cons returns an LVal representing the pair (car . cdr).
func Cons(car, cdr *LVal) *LVal {
	return &LVal{
		Type: LPair,
		Car:  car,
		Cdr:  cdr,
	}
}

// List returns a list containing the given values, a chain of pairs
// terminated by nil.
func List(vs ...*LVal) *LVal {
	lis := Nil()
	for i := len(vs) - 1; i >= 0; i-- {
		lis = Cons(vs[i], lis)
	}
	return lis
}

// Lambda returns an anonymous function with the given list of formal
// argument symbols and a single body expression.  The returned function
// holds env by reference -- definitions made in env after the lambda is
// built are visible when the function is eventually called.
func Lambda(formals *LVal, body *LVal, env *LEnv) *LVal {
	return &LVal{
		Type:    LFun,
		Formals: formals,
		Body:    body,
		Env:     env,
	}
}

// Fun returns an LVal representing the builtin function fn.
func Fun(name string, fn LBuiltin) *LVal {
	return &LVal{
		Type:    LFun,
		Str:     name,
		Builtin: fn,
	}
}

// IsNil returns true if v is the nil value, which doubles as the false
// value.  Every other value is true in a boolean context.
func (v *LVal) IsNil() bool {
	return v == nil || v.Type == LNil
}

// IsSymbol returns true if v is the symbol named s.
func (v *LVal) IsSymbol(s string) bool {
	return v != nil && v.Type == LSymbol && v.Str == s
}

// Len returns the number of pairs in the list v.  A non-nil tail does not
// contribute to the length.
func (v *LVal) Len() int {
	n := 0
	for v.Type == LPair {
		n++
		v = v.Cdr
	}
	return n
}

// car returns the head of pair v, or nil when v is not a pair.  Builtins
// use car and cadr to pick apart argument lists without crashing on short
// input.
func car(v *LVal) *LVal {
	if v.Type != LPair {
		return Nil()
	}
	return v.Car
}

// cdr returns the tail of pair v, or nil when v is not a pair.
func cdr(v *LVal) *LVal {
	if v.Type != LPair {
		return Nil()
	}
	return v.Cdr
}

func cadr(v *LVal) *LVal {
	return car(cdr(v))
}

func caddr(v *LVal) *LVal {
	return car(cdr(cdr(v)))
}

func (v *LVal) String() string {
	switch v.Type {
	case LNil:
		return "()"
	case LNumber:
		return numberString(v.Num)
	case LSymbol:
		return v.Str
	case LPair:
		return pairString(v)
	case LFun:
		if v.Builtin != nil {
			return fmt.Sprintf("<builtin ``%s''>", v.Str)
		}
		return "<lambda>"
	default:
		return fmt.Sprintf("%#v", v)
	}
}

// numberString renders integral numbers without a decimal point and
// everything else in general floating point form.
func numberString(x float64) string {
	if x == math.Trunc(x) && !math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// pairString renders the list v with elements separated by spaces and an
// improper tail preceded by ``.''.
func pairString(v *LVal) string {
	var buf bytes.Buffer
	buf.WriteString("(")
	for first := true; v.Type == LPair; v = v.Cdr {
		if !first {
			buf.WriteString(" ")
		}
		buf.WriteString(v.Car.String())
		first = false
	}
	if !v.IsNil() {
		buf.WriteString(" . ")
		buf.WriteString(v.String())
	}
	buf.WriteString(")")
	return buf.String()
}
