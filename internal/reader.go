package internal

import (
	"fmt"
	"strconv"
	"strings"
)

// PrintTree parses source and prints each statement as an s-expression.
// It returns false if the source does not parse.
func PrintTree(source string, p IPrinter) bool {
	state := newInterpreterState(p)
	stmts := parse(state, scan(state, source))
	if state.PrintErrors() {
		return false
	}
	for _, s := range stmts {
		p.Println(formatStmt(s))
	}
	return true
}

func formatStmt(s stmt) string {
	switch s := s.(type) {
	case *blockStmt:
		return parenthesizeStmts("block", s.stmts)
	case *classStmt:
		out := "(class " + s.name.lexeme
		if s.superclass != nil {
			out += " < " + s.superclass.name.lexeme
		}
		for _, method := range s.methods {
			out += " " + formatStmt(method)
		}
		return out + ")"
	case *exprStmt:
		return parenthesize(";", s.expression)
	case *fnStmt:
		params := make([]string, len(s.params))
		for i, param := range s.params {
			params[i] = param.lexeme
		}
		out := fmt.Sprintf("(fun %s (%s)", s.name.lexeme, strings.Join(params, " "))
		for _, st := range s.body {
			out += " " + formatStmt(st)
		}
		return out + ")"
	case *ifStmt:
		if s.elseBranch == nil {
			return fmt.Sprintf("(if %s %s)", formatExpr(s.condition), formatStmt(s.thenBranch))
		}
		return fmt.Sprintf("(if %s %s %s)", formatExpr(s.condition), formatStmt(s.thenBranch), formatStmt(s.elseBranch))
	case *printStmt:
		return parenthesize("print", s.expression)
	case *returnStmt:
		if s.value == nil {
			return "(return)"
		}
		return parenthesize("return", s.value)
	case *varStmt:
		if s.initializer == nil {
			return fmt.Sprintf("(var %s)", s.name.lexeme)
		}
		return fmt.Sprintf("(var %s %s)", s.name.lexeme, formatExpr(s.initializer))
	case *whileStmt:
		return fmt.Sprintf("(while %s %s)", formatExpr(s.condition), formatStmt(s.body))
	}
	return "<unknown stmt>"
}

func formatExpr(e expr) string {
	switch e := e.(type) {
	case *assignExpr:
		return fmt.Sprintf("(= %s %s)", e.name.lexeme, formatExpr(e.value))
	case *binaryExpr:
		return parenthesize(e.operator.lexeme, e.left, e.right)
	case *callExpr:
		return parenthesize("call", append([]expr{e.callee}, e.arguments...)...)
	case *getExpr:
		return fmt.Sprintf("(. %s %s)", formatExpr(e.object), e.name.lexeme)
	case *groupingExpr:
		return parenthesize("group", e.expression)
	case *literalExpr:
		if str, ok := e.value.(string); ok {
			return strconv.Quote(str)
		}
		return stringify(e.value)
	case *logicalExpr:
		return parenthesize(e.operator.lexeme, e.left, e.right)
	case *setExpr:
		return fmt.Sprintf("(= (. %s %s) %s)", formatExpr(e.object), e.name.lexeme, formatExpr(e.value))
	case *superExpr:
		return fmt.Sprintf("(super %s)", e.method.lexeme)
	case *thisExpr:
		return "this"
	case *unaryExpr:
		return parenthesize(e.operator.lexeme, e.right)
	case *variableExpr:
		return e.name.lexeme
	}
	return "<unknown expr>"
}

func parenthesize(name string, exprs ...expr) string {
	out := "(" + name
	for _, e := range exprs {
		out += " " + formatExpr(e)
	}
	return out + ")"
}

func parenthesizeStmts(name string, stmts []stmt) string {
	out := "(" + name
	for _, s := range stmts {
		out += " " + formatStmt(s)
	}
	return out + ")"
}
