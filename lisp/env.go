package lisp

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LEnv is one frame of a lisp environment: a set of local bindings plus a
// reference to the enclosing frame.  Frames are created during evaluation
// and never destroyed; every closure holding a frame reference observes
// later definitions made in that frame.
type LEnv struct {
	Scope   map[string]*LVal
	Parent  *LEnv
	Runtime *Runtime
}

// NewEnv initializes and returns a new LEnv chained to parent.  A root
// environment (nil parent) is given a fresh Runtime which may be adjusted
// with config; child frames share their parent's Runtime.
func NewEnv(parent *LEnv, config ...Config) *LEnv {
	env := &LEnv{
		Scope:  make(map[string]*LVal),
		Parent: parent,
	}
	if parent != nil {
		env.Runtime = parent.Runtime
	} else {
		env.Runtime = StandardRuntime()
	}
	for _, fn := range config {
		fn(env)
	}
	return env
}

// InitializeUserEnv installs the default builtins in env and binds the
// canonical true symbol to itself.
func InitializeUserEnv(env *LEnv, config ...Config) {
	for _, fn := range config {
		fn(env)
	}
	env.AddBuiltins()
	env.Put(True(), True())
}

// Get takes an LSymbol k and returns the LVal it is bound to along with
// true, or nil and false when k is unbound.  The bound value is returned by
// reference -- lookup never copies, so a value reached through a captured
// frame is the same value every other holder of the frame sees.
func (env *LEnv) Get(k *LVal) (*LVal, bool) {
	if k.Type != LSymbol {
		return nil, false
	}
	for ; env != nil; env = env.Parent {
		if v, ok := env.Scope[k.Str]; ok {
			return v, true
		}
	}
	return nil, false
}

// Put takes an LSymbol k and binds it to v in env.  The binding shadows
// any binding of k in an enclosing frame and replaces a previous binding
// in env itself (the most recent definition wins).
func (env *LEnv) Put(k, v *LVal) {
	if k.Type != LSymbol {
		return
	}
	env.Scope[k.Str] = v
}

// Reportf writes a diagnostic message to the runtime's Stderr and returns
// nil.  Failures never unwind: the failing step produces nil and
// evaluation continues around it.
func (env *LEnv) Reportf(format string, v ...interface{}) *LVal {
	fmt.Fprintf(env.Runtime.Stderr, format+"\n", v...)
	return Nil()
}

// Eval evaluates v in the context (scope) of env and returns the resulting
// LVal.  Nil, numbers, and functions evaluate to themselves.  Evaluation
// recurses on the native stack with no tail call elimination -- deeply
// recursive lisp code exhausts the goroutine stack.
func (env *LEnv) Eval(v *LVal) *LVal {
	switch v.Type {
	case LSymbol:
		val, ok := env.Get(v)
		if !ok {
			return env.Reportf("unbound symbol: %s", v.Str)
		}
		return val
	case LPair:
		return env.evalPair(v)
	default:
		return v
	}
}

// evalPair evaluates a compound expression: one of the four special forms
// when the head is the matching symbol, a function call otherwise.
// Special forms are recognized before symbol resolution, so binding the
// name of one has no effect.
func (env *LEnv) evalPair(expr *LVal) *LVal {
	op, args := expr.Car, expr.Cdr
	if op.Type == LSymbol {
		switch op.Str {
		case "quote":
			return car(args)
		case "if":
			if !env.Eval(car(args)).IsNil() {
				return env.Eval(cadr(args))
			}
			return env.Eval(caddr(args))
		case "define":
			sym := car(args)
			if sym.Type != LSymbol {
				return env.Reportf("define: first argument is not a symbol: %s", sym)
			}
			env.Put(sym, env.Eval(cadr(args)))
			return sym
		case "lambda":
			return Lambda(car(args), cadr(args), env)
		}
	}
	fun := env.Eval(op)
	return env.Call(fun, env.evalList(args))
}

// evalList evaluates the elements of lis left to right and returns a fresh
// list of the results.  The argument list is never reused -- aliased
// argument expressions stay intact.
func (env *LEnv) evalList(lis *LVal) *LVal {
	if lis.Type != LPair {
		return Nil()
	}
	head := env.Eval(lis.Car)
	return Cons(head, env.evalList(lis.Cdr))
}

// Call invokes the function fun on the already-evaluated argument list
// args.  Builtins run against the calling environment.  A lambda gets a
// child frame of its captured environment with each formal bound to the
// matching argument, and its body is evaluated in that frame.
func (env *LEnv) Call(fun *LVal, args *LVal) *LVal {
	if fun.Type != LFun {
		return env.Reportf("not a function: %s", fun)
	}
	if fun.Builtin != nil {
		return fun.Builtin(env, args)
	}
	fenv := NewEnv(fun.Env)
	formals := fun.Formals
	for ; formals.Type == LPair; formals = formals.Cdr {
		if args.Type != LPair {
			return env.Reportf("wrong number of arguments: expected %d", fun.Formals.Len())
		}
		if formals.Car.Type != LSymbol {
			return env.Reportf("formal argument is not a symbol: %s", formals.Car)
		}
		fenv.Put(formals.Car, args.Car)
		args = args.Cdr
	}
	if !args.IsNil() {
		return env.Reportf("wrong number of arguments: expected %d", fun.Formals.Len())
	}
	return fenv.Eval(fun.Body)
}

// Load reads top-level forms from r using the runtime's Reader and
// evaluates them in order against env.  The value of the last form is
// returned, or nil when the stream holds no forms.
func (env *LEnv) Load(name string, r io.Reader) *LVal {
	if env.Runtime.Reader == nil {
		return env.Reportf("load: no reader configured")
	}
	exprs, err := env.Runtime.Reader.Read(name, r)
	if err != nil {
		return env.Reportf("load: %v", err)
	}
	res := Nil()
	for _, expr := range exprs {
		res = env.Eval(expr)
	}
	return res
}

// LoadFile evaluates the forms in the named file against env.  A file that
// cannot be opened is reported and yields nil.
func (env *LEnv) LoadFile(path string) *LVal {
	f, err := os.Open(path)
	if err != nil {
		return env.Reportf("load: %v", err)
	}
	defer f.Close()
	return env.Load(filepath.Base(path), f)
}

// LoadString evaluates the forms in the given source text against env.
func (env *LEnv) LoadString(name, source string) *LVal {
	return env.Load(name, strings.NewReader(source))
}
