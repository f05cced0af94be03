package internal

import (
	"testing"
)

func compile(t *testing.T, source string) ([]stmt, map[expr]int) {
	t.Helper()
	state := newInterpreterState(nil)
	stmts := parse(state, scan(state, source))
	if !state.Valid() {
		t.Fatalf("%q should parse, got %v", source, state.errors)
	}
	locals := resolve(state, stmts)
	if !state.Valid() {
		t.Fatalf("%q should resolve, got %v", source, state.errors)
	}
	return stmts, locals
}

func TestResolveDistances(t *testing.T) {
	// Globals are left to dynamic lookup
	{
		_, locals := compile(t, "var g = 1; print g; g = 2;")
		if len(locals) != 0 {
			t.Errorf("Globals should not be resolved, got %d entries", len(locals))
		}
	}

	// Nested blocks
	{
		stmts, locals := compile(t, "{ var a = 1; { print a; } }")
		inner := stmts[0].(*blockStmt).stmts[1].(*blockStmt)
		variable := inner.stmts[0].(*printStmt).expression
		if d, ok := locals[variable]; !ok || d != 1 {
			t.Errorf("a should resolve at distance 1, got %d (%v)", d, ok)
		}
	}

	// Parameters live in the function scope
	{
		stmts, locals := compile(t, "fun f(x) { return x; }")
		ret := stmts[0].(*fnStmt).body[0].(*returnStmt)
		if d, ok := locals[ret.value]; !ok || d != 0 {
			t.Errorf("x should resolve at distance 0, got %d (%v)", d, ok)
		}
	}

	// Assignments are resolved like reads
	{
		stmts, locals := compile(t, "{ var a; fun set() { a = 1; } }")
		fn := stmts[0].(*blockStmt).stmts[1].(*fnStmt)
		assign := fn.body[0].(*exprStmt).expression
		if d, ok := locals[assign]; !ok || d != 1 {
			t.Errorf("assignment should resolve at distance 1, got %d (%v)", d, ok)
		}
	}

	// this and super inside methods
	{
		stmts, locals := compile(t, "class A {} class B < A { m() { return super.m(this); } }")
		m := stmts[1].(*classStmt).methods[0]
		call := m.body[0].(*returnStmt).value.(*callExpr)
		if d, ok := locals[call.callee]; !ok || d != 2 {
			t.Errorf("super should resolve at distance 2, got %d (%v)", d, ok)
		}
		if d, ok := locals[call.arguments[0]]; !ok || d != 1 {
			t.Errorf("this should resolve at distance 1, got %d (%v)", d, ok)
		}
	}

	// Each use of the same name is a distinct node
	{
		stmts, locals := compile(t, "var a = 1; { var a = 2; print a; } print a;")
		local := stmts[1].(*blockStmt).stmts[1].(*printStmt).expression
		global := stmts[2].(*printStmt).expression
		if _, ok := locals[local]; !ok {
			t.Error("Inner a should be resolved")
		}
		if _, ok := locals[global]; ok {
			t.Error("Outer a should be global")
		}
	}
}

func TestResolveErrors(t *testing.T) {
	checkCompileError(t, "return 1;", "[line 1] Error at 'return': Can't return from top-level code.")
	checkCompileError(t, "{ var a = a; }", "[line 1] Error at 'a': Can't read local variable in its own initializer.")
	checkCompileError(t, "{ var a = 1; var a = 2; }", "[line 1] Error at 'a': Already a variable with this name in this scope.")
	checkCompileError(t, "fun f(a, a) {}", "[line 1] Error at 'a': Already a variable with this name in this scope.")
	checkCompileError(t, "print this;", "[line 1] Error at 'this': Can't use 'this' outside of a class.")
	checkCompileError(t, "fun f() { return this; }", "[line 1] Error at 'this': Can't use 'this' outside of a class.")
	checkCompileError(t, "class A { init() { return 1; } }", "[line 1] Error at 'return': Can't return a value from an initializer.")
	checkCompileError(t, "class A < A {}", "[line 1] Error at 'A': A class can't inherit from itself.")
	checkCompileError(t, "print super.x;", "[line 1] Error at 'super': Can't use 'super' outside of a class.")
	checkCompileError(t, "class A { m() { super.m(); } }", "[line 1] Error at 'super': Can't use 'super' in a class with no superclass.")

	// Every error is reported
	checkCompileError(t, "return;\nprint this;",
		"[line 1] Error at 'return': Can't return from top-level code.",
		"[line 2] Error at 'this': Can't use 'this' outside of a class.",
	)

	// Allowed forms
	checkOutput(t, "var a = 1; var a = 2; print a;", "2")
	checkOutput(t, "class A { init() { return; } } print A();", "A instance")
	checkOutput(t, "var a = 1; { var b = a; print b; }", "1")
}
