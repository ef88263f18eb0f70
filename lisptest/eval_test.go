package lisptest

import "testing"

func TestEval(t *testing.T) {
	tests := TestSuite{
		{"self evaluating", TestSequence{
			{"3", "3", ""},
			{"2.5", "2.5", ""},
			{"-4", "-4", ""},
			{"()", "()", ""},
			{"#t", "#t", ""},
			{"#f", "()", ""},
		}},
		{"number printing", TestSequence{
			{"5.0", "5", ""},
			{"(/ 5 2)", "2.5", ""},
			{"(/ 12 2 3)", "2", ""},
			{"1234567.0", "1234567", ""},
		}},
		{"quote", TestSequence{
			{"(quote a)", "a", ""},
			{"(quote (1 2 3))", "(1 2 3)", ""},
			{"(quote ())", "()", ""},
			{"(quote (quote a))", "(quote a)", ""},
		}},
		{"arithmetic", TestSequence{
			{"(+)", "0", ""},
			{"(-)", "0", ""},
			{"(*)", "0", ""},
			{"(+ 2)", "2", ""},
			{"(- 5)", "5", ""},
			{"(+ 1 2 3)", "6", ""},
			{"(* 2 3 4)", "24", ""},
			{"(- 10 3 2)", "5", ""},
			{"(+ 1 (* 2 3))", "7", ""},
			{"(+ 1 1.5)", "2.5", ""},
		}},
		{"comparisons", TestSequence{
			{"(= 1 1)", "#t", ""},
			{"(= 1 2)", "()", ""},
			{"(< 1 2)", "#t", ""},
			{"(< 2 1)", "()", ""},
			{"(> 2 1)", "#t", ""},
			{"(> 1 2)", "()", ""},
			{"(= 5 (+ 1 4))", "#t", ""},
		}},
		{"lists", TestSequence{
			{"(cons 1 2)", "(1 . 2)", ""},
			{"(car (cons 1 2))", "1", ""},
			{"(cdr (cons 1 2))", "2", ""},
			{"(list 1 2 3)", "(1 2 3)", ""},
			{"(list)", "()", ""},
			{"(cons 1 (cons 2 (cons 3 (list))))", "(1 2 3)", ""},
			{"(car (cdr (list 1 2 3)))", "2", ""},
			{"(null? (list))", "#t", ""},
			{"(null? (list 1))", "()", ""},
			{"(null? 0)", "()", ""},
		}},
		{"truthiness", TestSequence{
			// only nil is false
			{"(if 0 1 2)", "1", ""},
			{"(if (null? (list)) 1 2)", "1", ""},
			{"(if #t 1 2)", "1", ""},
			{"(if #f 1 2)", "2", ""},
			{"(if (list) 1 2)", "2", ""},
			{"(if (quote a) 1 2)", "1", ""},
		}},
		{"function basics", TestSequence{
			{"(lambda (x) x)", "<lambda>", ""},
			{"+", "<builtin ``+''>", ""},
			{"((lambda (x) x) 1)", "1", ""},
			{"((lambda () (+ 1 1)))", "2", ""},
			{"((lambda (n) (+ n 1)) 1)", "2", ""},
			{"((lambda (x y) (+ x y)) 1 2)", "3", ""},
		}},
		{"define", TestSequence{
			// define evaluates the value but returns the symbol
			{"(define x 1)", "x", ""},
			{"x", "1", ""},
			{"(define sq (lambda (n) (* n n)))", "sq", ""},
			{"(sq 5)", "25", ""},
			{"(sq (sq 2))", "16", ""},
		}},
		{"eval builtin", TestSequence{
			{"(eval (quote (+ 1 2)))", "3", ""},
			{"(define form (quote (* 2 3)))", "form", ""},
			{"(eval form)", "6", ""},
			{"(eval 3)", "3", ""},
		}},
		{"display", TestSequence{
			{"(display 1)", "()", "1\n"},
			{"(display (list 1 2))", "()", "(1 2)\n"},
			{"(display (cons 1 2))", "()", "(1 . 2)\n"},
		}},
	}
	RunTestSuite(t, tests)
}

func TestEvalRecursion(t *testing.T) {
	tests := TestSuite{
		{"recursive closures", TestSequence{
			{"(define fact (lambda (n) (if (= n 0) 1 (* n (fact (- n 1))))))", "fact", ""},
			{"(fact 5)", "120", ""},
			{"(define fib (lambda (n) (if (< n 2) n (+ (fib (- n 1)) (fib (- n 2))))))", "fib", ""},
			{"(fib 10)", "55", ""},
			{"(define len (lambda (l) (if (null? l) 0 (+ 1 (len (cdr l))))))", "len", ""},
			{"(len (list 1 2 3 4))", "4", ""},
		}},
	}
	RunTestSuite(t, tests)
}
