package lisptest

import "testing"

func TestErrorContainment(t *testing.T) {
	tests := TestSuite{
		{"unbound symbols", TestSequence{
			{"nope", "()", "unbound symbol: nope\n"},
			// an unbound symbol in argument position poisons only its own
			// result; the consumer then reports a second error
			{"(+ 1 nope)", "()", "unbound symbol: nope\n+: argument is not a number: ()\n"},
			// evaluation continues after a failure
			{"(+ 1 2)", "3", ""},
		}},
		{"type errors", TestSequence{
			{"(car 5)", "()", "car: argument is not a pair: 5\n"},
			{"(cdr 5)", "()", "cdr: argument is not a pair: 5\n"},
			{"(car (list))", "()", "car: argument is not a pair: ()\n"},
			{"(+ 1 (quote a))", "()", "+: argument is not a number: a\n"},
			{"(* (list 1) 2)", "()", "*: argument is not a number: (1)\n"},
			{"(= 1 (quote a))", "()", "=: arguments are not numbers\n"},
		}},
		{"application errors", TestSequence{
			{"(1 2 3)", "()", "not a function: 1\n"},
			{"((list) 1)", "()", "not a function: ()\n"},
		}},
		{"arity errors", TestSequence{
			{"(define f (lambda (x y) (+ x y)))", "f", ""},
			{"(f 1)", "()", "wrong number of arguments: expected 2\n"},
			{"(f 1 2 3)", "()", "wrong number of arguments: expected 2\n"},
			{"(f 1 2)", "3", ""},
		}},
		{"malformed special forms", TestSequence{
			{"(define 1 2)", "()", "define: first argument is not a symbol: 1\n"},
			{"(define (quote a) 2)", "()", "define: first argument is not a symbol: (quote a)\n"},
		}},
		{"failures carry on at the top level", TestSequence{
			{"(define x nope)", "x", "unbound symbol: nope\n"},
			{"x", "()", ""},
			{"(define x 1)", "x", ""},
			{"x", "1", ""},
		}},
	}
	RunTestSuite(t, tests)
}
