package internal

import (
	"strings"
	"testing"
)

func checkTree(t *testing.T, source string, expected ...string) {
	t.Helper()
	tp := &testPrinter{}
	if !PrintTree(source, tp) {
		t.Errorf("%q should parse, got:\n%s", source, tp.printed)
		return
	}
	result := strings.Join(expected, "\n") + "\n"
	if !tp.Equals(result) {
		t.Errorf("\nSource:\n----\n%s\n----\nExpected:\n----\n%s----\nFound:\n----\n%s----", source, result, tp.printed)
	}
}

func checkCompileError(t *testing.T, source string, expected ...string) {
	t.Helper()
	tp := &testPrinter{}
	status := RunSourceWithPrinter(source, tp)
	if status != StatusCompileError {
		t.Errorf("\nSource:\n----\n%s\n----\nshould fail to compile, got %s", source, status)
	}
	result := strings.Join(expected, "\n") + "\n"
	if !tp.Equals(result) {
		t.Errorf("\nSource:\n----\n%s\n----\nExpected:\n----\n%s----\nFound:\n----\n%s----", source, result, tp.printed)
	}
}

func TestParsePrecedence(t *testing.T) {
	checkTree(t, "print 1 + 2 * 3;", "(print (+ 1 (* 2 3)))")
	checkTree(t, "print (1 + 2) * 3;", "(print (* (group (+ 1 2)) 3))")
	checkTree(t, "print 1 - 2 - 3;", "(print (- (- 1 2) 3))")
	checkTree(t, "print -a == !b or c and d;", "(print (or (== (- a) (! b)) (and c d)))")
	checkTree(t, "print 1 < 2 == 3 >= 4;", "(print (== (< 1 2) (>= 3 4)))")
	checkTree(t, "a = b = 1;", "(; (= a (= b 1)))")
	checkTree(t, `print "a" + nil;`, `(print (+ "a" nil))`)
}

func TestParseStatements(t *testing.T) {
	checkTree(t, "var a; var b = 1.5;", "(var a)", "(var b 1.5)")
	checkTree(t, "{ var a = 1; print a; }", "(block (var a 1) (print a))")
	checkTree(t, "if (a) print 1; else print 2;", "(if a (print 1) (print 2))")
	checkTree(t, "if (a) if (b) print 1; else print 2;", "(if a (if b (print 1) (print 2)))")
	checkTree(t, "while (true) {}", "(while true (block))")
	checkTree(t, "fun add(a, b) { return a + b; }", "(fun add (a b) (return (+ a b)))")
	checkTree(t, "fun f() { return; }", "(fun f () (return))")
	checkTree(t,
		"class B < A { init(x) { this.x = x; } get() { return super.get(); } }",
		"(class B < A (fun init (x) (; (= (. this x) x))) (fun get () (return (call (super get)))))",
	)
	checkTree(t, "a.b(1).c = 2;", "(; (= (. (call (. a b) 1) c) 2))")
	checkTree(t, "f(1)(2, 3);", "(; (call (call f 1) 2 3))")
}

func TestParseFor(t *testing.T) {
	checkTree(t,
		"for (var i = 0; i < 3; i = i + 1) print i;",
		"(block (var i 0) (while (< i 3) (block (print i) (; (= i (+ i 1))))))",
	)
	checkTree(t, "for (;;) print 1;", "(while true (print 1))")
	checkTree(t, "for (i = 0; i < 1;) print i;", "(block (; (= i 0)) (while (< i 1) (print i)))")
}

func TestParseErrors(t *testing.T) {
	checkCompileError(t, "print ;", "[line 1] Error at ';': Expect expression.")
	checkCompileError(t, "print 1", "[line 1] Error at end: Expect ';' after value.")
	checkCompileError(t, "1 = 2;", "[line 1] Error at '=': Invalid assignment target.")
	checkCompileError(t, "a + b = c;", "[line 1] Error at '=': Invalid assignment target.")
	checkCompileError(t, "var 1 = 2;", "[line 1] Error at '1': Expect variable name.")
	checkCompileError(t, "fun () {}", "[line 1] Error at '(': Expect function name.")
	checkCompileError(t, "class A { m { } }", "[line 1] Error at '{': Expect '(' after method name.")
	checkCompileError(t, "print (1;", "[line 1] Error at ';': Expect ')' after expression.")
	checkCompileError(t, "{ print 1;", "[line 1] Error at end: Expect '}' after block.")

	// Scan errors do not stop parsing
	checkCompileError(t, "print @;",
		"[line 1] Error: Unexpected character.",
		"[line 1] Error at ';': Expect expression.",
	)

	// Nothing runs if any statement is invalid
	checkCompileError(t, "print 1; @", "[line 1] Error: Unexpected character.")
	checkCompileError(t, "print 1; é", "[line 1] Error: Unexpected character.")
}

func TestParseRecovery(t *testing.T) {
	state := newInterpreterState(nil)
	stmts := parse(state, scan(state, "var = 1;\nprint \"one\";\nprint \"two\";"))
	if len(state.errors) != 1 {
		t.Fatalf("Exactly one error expected, got %v", state.errors)
	}
	if state.errors[0].Error() != "[line 1] Error at '=': Expect variable name." {
		t.Errorf("Unexpected error %s", state.errors[0])
	}
	if len(stmts) != 2 {
		t.Errorf("Parsing should resume after the bad declaration, got %d statements", len(stmts))
	}

	// Errors on separate lines are all reported
	checkCompileError(t, "print ;\nvar a = ;\nprint 1;",
		"[line 1] Error at ';': Expect expression.",
		"[line 2] Error at ';': Expect expression.",
	)
}

func TestParseLimits(t *testing.T) {
	args := strings.Repeat("1, ", 255) + "1"
	checkCompileError(t, "fun f() {}\nf("+args+");", "[line 2] Error at '1': Can't have more than 255 arguments.")

	params := make([]string, 256)
	for i := range params {
		params[i] = "p" + strings.Repeat("x", i)
	}
	last := params[255]
	checkCompileError(t, "fun f("+strings.Join(params, ", ")+") {}", "[line 1] Error at '"+last+"': Can't have more than 255 parameters.")

	// 255 is still fine
	state := newInterpreterState(nil)
	parse(state, scan(state, "f("+strings.Repeat("1, ", 254)+"1);"))
	if !state.Valid() {
		t.Errorf("255 arguments should be accepted, got %v", state.errors)
	}
}
