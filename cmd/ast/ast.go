package main

import (
	"flag"
	"go/format"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

//go:generate go run . -dir ../../internal

const generatedHeader = "// Code generated by cmd/ast (go run . -dir ../../internal); DO NOT EDIT."

var exprTypes = []string{
	"Assign: name *token, value expr",
	"Binary: left expr, operator *token, right expr",
	"Call: callee expr, paren *token, arguments []expr",
	"Get: object expr, name *token",
	"Grouping: expression expr",
	"Literal: value interface{}",
	"Logical: left expr, operator *token, right expr",
	"Set: object expr, name *token, value expr",
	"Super: keyword *token, method *token",
	"This: keyword *token",
	"Unary: operator *token, right expr",
	"Variable: name *token",
}

var stmtTypes = []string{
	"Expr: expression expr",
	"Print: expression expr",
	"Var: name *token, initializer expr",
	"Block: stmts []stmt",
	"If: condition expr, thenBranch stmt, elseBranch stmt",
	"While: condition expr, body stmt",
	"Fn: name *token, params []*token, body []stmt",
	"Return: keyword *token, value expr",
	"Class: name *token, superclass *variableExpr, methods []*fnStmt",
}

func main() {
	dir := flag.String("dir", ".", "directory of the internal package")
	flag.Parse()

	for _, def := range []struct {
		baseName string
		types    []string
	}{
		{"Expr", exprTypes},
		{"Stmt", stmtTypes},
	} {
		src, err := format.Source([]byte(generateAst(def.baseName, def.types)))
		if err != nil {
			logrus.WithError(err).WithField("base", def.baseName).Fatal("generated code does not format")
		}
		path := filepath.Join(*dir, strings.ToLower(def.baseName)+".go")
		if err := os.WriteFile(path, src, 0o644); err != nil {
			logrus.WithError(err).WithField("path", path).Fatal("cannot write generated file")
		}
		logrus.WithField("path", path).Info("generated")
	}
}

func generateAst(baseName string, types []string) string {
	out := generatedHeader + "\n\n"
	out += "package internal\n\n"

	// Start base interface
	base := strings.ToLower(baseName)
	out += "type " + base + " interface {\n"
	out += "\t" + base + "Node()\n"
	out += "}\n\n"
	// End base interface

	// Start structs
	for _, t := range types {
		typeDef := strings.SplitN(t, ":", 2)
		structName := strings.TrimSpace(typeDef[0])
		structFields := strings.TrimSpace(typeDef[1])
		out += generateType(baseName, structName, structFields)
	}
	// End structs

	return out
}

func generateType(baseName, name, fields string) string {
	// Start Structure Definition
	structName := strings.ToLower(string(name[0])) + name[1:] + baseName
	out := "type " + structName + " struct {\n"
	for _, field := range strings.Split(fields, ",") {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"
	// End Structure Definition

	// Start marker method
	out += "func (*" + structName + ") " + strings.ToLower(baseName) + "Node() {}\n\n"
	// End marker method

	return out
}
