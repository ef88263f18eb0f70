package lisp

import "fmt"

// LBuiltin is a function that executes a builtin lisp function.  The
// argument list is already evaluated; env is the calling environment,
// which most builtins ignore.
type LBuiltin func(env *LEnv, args *LVal) *LVal

// LBuiltinDef is a builtin function definition.
type LBuiltinDef interface {
	Name() string
	Eval(env *LEnv, args *LVal) *LVal
}

type langBuiltin struct {
	name string
	fun  LBuiltin
}

func (fun *langBuiltin) Name() string {
	return fun.name
}

func (fun *langBuiltin) Eval(env *LEnv, args *LVal) *LVal {
	return fun.fun(env, args)
}

var userBuiltins []*langBuiltin
var langBuiltins = []*langBuiltin{
	{"+", builtinAdd},
	{"-", builtinSub},
	{"*", builtinMul},
	{"/", builtinDiv},
	{"=", builtinEqNum},
	{"<", builtinLT},
	{">", builtinGT},
	{"cons", builtinCons},
	{"car", builtinCAR},
	{"cdr", builtinCDR},
	{"list", builtinList},
	{"null?", builtinNullP},
	{"display", builtinDisplay},
	{"eval", builtinEval},
	{"load", builtinLoad},
}

// RegisterDefaultBuiltin adds the given function to the list returned by
// DefaultBuiltins.
func RegisterDefaultBuiltin(name string, fn LBuiltin) {
	userBuiltins = append(userBuiltins, &langBuiltin{name, fn})
}

// DefaultBuiltins returns the default set of LBuiltinDefs added to LEnv
// objects when LEnv.AddBuiltins is called without arguments.
func DefaultBuiltins() []LBuiltinDef {
	funs := make([]LBuiltinDef, 0, len(langBuiltins)+len(userBuiltins))
	for _, f := range langBuiltins {
		funs = append(funs, f)
	}
	for _, f := range userBuiltins {
		funs = append(funs, f)
	}
	return funs
}

// AddBuiltins binds the given funs to their names in env.  When called
// with no arguments AddBuiltins adds the DefaultBuiltins to env.
func (env *LEnv) AddBuiltins(funs ...LBuiltinDef) {
	if len(funs) == 0 {
		funs = DefaultBuiltins()
	}
	for _, f := range funs {
		k := Symbol(f.Name())
		if _, ok := env.Get(k); ok {
			panic(fmt.Sprintf("symbol already defined: %s", f.Name()))
		}
		env.Put(k, Fun(f.Name(), f.Eval))
	}
}

// foldArith folds args left to right with the given operator.  The first
// argument seeds the accumulator, so (- 10 3 2) is 5 and (- 5) is 5.  An
// empty argument list yields 0 for every operator.
func foldArith(env *LEnv, args *LVal, op rune) *LVal {
	acc := 0.0
	first := true
	for ; args.Type == LPair; args = args.Cdr {
		x := args.Car
		if x.Type != LNumber {
			return env.Reportf("%c: argument is not a number: %s", op, x)
		}
		if first {
			acc = x.Num
			first = false
			continue
		}
		switch op {
		case '+':
			acc += x.Num
		case '-':
			acc -= x.Num
		case '*':
			acc *= x.Num
		case '/':
			acc /= x.Num
		}
	}
	return Number(acc)
}

func builtinAdd(env *LEnv, args *LVal) *LVal {
	return foldArith(env, args, '+')
}

func builtinSub(env *LEnv, args *LVal) *LVal {
	return foldArith(env, args, '-')
}

func builtinMul(env *LEnv, args *LVal) *LVal {
	return foldArith(env, args, '*')
}

func builtinDiv(env *LEnv, args *LVal) *LVal {
	return foldArith(env, args, '/')
}

// numCompare implements the strictly binary numeric comparisons.
func numCompare(env *LEnv, args *LVal, op string) *LVal {
	a, b := car(args), cadr(args)
	if a.Type != LNumber || b.Type != LNumber {
		return env.Reportf("%s: arguments are not numbers", op)
	}
	switch op {
	case "=":
		return Bool(a.Num == b.Num)
	case "<":
		return Bool(a.Num < b.Num)
	case ">":
		return Bool(a.Num > b.Num)
	}
	return Nil()
}

func builtinEqNum(env *LEnv, args *LVal) *LVal {
	return numCompare(env, args, "=")
}

func builtinLT(env *LEnv, args *LVal) *LVal {
	return numCompare(env, args, "<")
}

func builtinGT(env *LEnv, args *LVal) *LVal {
	return numCompare(env, args, ">")
}

func builtinCons(env *LEnv, args *LVal) *LVal {
	return Cons(car(args), cadr(args))
}

func builtinCAR(env *LEnv, args *LVal) *LVal {
	a := car(args)
	if a.Type != LPair {
		return env.Reportf("car: argument is not a pair: %s", a)
	}
	return a.Car
}

func builtinCDR(env *LEnv, args *LVal) *LVal {
	a := car(args)
	if a.Type != LPair {
		return env.Reportf("cdr: argument is not a pair: %s", a)
	}
	return a.Cdr
}

// builtinList is the identity on the already-evaluated argument list.
func builtinList(env *LEnv, args *LVal) *LVal {
	return args
}

func builtinNullP(env *LEnv, args *LVal) *LVal {
	return Bool(car(args).IsNil())
}

func builtinDisplay(env *LEnv, args *LVal) *LVal {
	fmt.Fprintln(env.Runtime.Stdout, car(args))
	return Nil()
}

// builtinEval evaluates its (already once-evaluated) argument a second
// time in the calling environment.
func builtinEval(env *LEnv, args *LVal) *LVal {
	return env.Eval(car(args))
}

// builtinLoad reads the file named by its bare-symbol argument and
// evaluates every top-level form in it against the calling environment.
func builtinLoad(env *LEnv, args *LVal) *LVal {
	sym := car(args)
	if sym.Type != LSymbol {
		return env.Reportf("load: filename is not a symbol: %s", sym)
	}
	return env.LoadFile(sym.Str)
}
