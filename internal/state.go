package internal

import (
	"errors"
	"fmt"
	"os"
)

// compileError is a problem found while scanning, parsing or resolving.
type compileError struct {
	err   error
	line  int
	where string
}

func (e *compileError) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.line, e.where, e.err)
}

func (e *compileError) Unwrap() error {
	return e.err
}

// runtimeError aborts the execution of a unit of source.
type runtimeError struct {
	token *token
	err   error
}

func (e *runtimeError) Error() string {
	return e.err.Error()
}

func (e *runtimeError) Unwrap() error {
	return e.err
}

type arityError struct {
	expected int
	got      int
}

func (e *arityError) Error() string {
	return fmt.Sprintf("Expected %d arguments but got %d.", e.expected, e.got)
}

// interpreterState is the compile session of one unit of source. Every
// phase reports into it and the caller inspects it before executing.
type interpreterState struct {
	errors []*compileError
	logger IPrinter
}

func newInterpreterState(p IPrinter) *interpreterState {
	return &interpreterState{
		errors: make([]*compileError, 0),
		logger: p,
	}
}

func (s *interpreterState) setError(err error, line int, where string) {
	s.errors = append(s.errors, &compileError{
		err:   err,
		line:  line,
		where: where,
	})
}

func (s *interpreterState) tokenError(err error, tk *token) {
	if tk.token == tkEOF {
		s.setError(err, tk.line, " at end")
		return
	}
	s.setError(err, tk.line, fmt.Sprintf(" at '%s'", tk.lexeme))
}

// Valid returns true if no compile error was recorded
func (s *interpreterState) Valid() bool {
	return len(s.errors) == 0
}

// PrintErrors prints all errors and returns true if there was any
func (s *interpreterState) PrintErrors() bool {
	if s.logger == nil {
		return !s.Valid()
	}
	for _, e := range s.errors {
		s.logger.Fprintln(os.Stderr, e.Error())
	}
	return !s.Valid()
}

func (s *interpreterState) printRuntimeError(err *runtimeError) {
	if s.logger == nil {
		return
	}
	s.logger.Fprintln(os.Stderr, fmt.Sprintf("%s\n[line %d]", err.Error(), err.token.line))
}

// Lexer errors
var errUnexpectedChar = errors.New("Unexpected character.")
var errUnterminatedString = errors.New("Unterminated string.")

// Parser errors
var errExpectExpression = errors.New("Expect expression.")
var errInvalidAssignment = errors.New("Invalid assignment target.")
var errMaxArguments = errors.New("Can't have more than 255 arguments.")
var errMaxParameters = errors.New("Can't have more than 255 parameters.")
var errExpectSemicolonValue = errors.New("Expect ';' after value.")
var errExpectSemicolonExpr = errors.New("Expect ';' after expression.")
var errExpectSemicolonVar = errors.New("Expect ';' after variable declaration.")
var errExpectSemicolonReturn = errors.New("Expect ';' after return value.")
var errExpectSemicolonCondition = errors.New("Expect ';' after loop condition.")
var errExpectVariableName = errors.New("Expect variable name.")
var errExpectBlockEnd = errors.New("Expect '}' after block.")
var errUnclosedParen = errors.New("Expect ')' after expression.")
var errExpectParenIf = errors.New("Expect '(' after 'if'.")
var errExpectParenIfEnd = errors.New("Expect ')' after if condition.")
var errExpectParenWhile = errors.New("Expect '(' after 'while'.")
var errExpectParenCondition = errors.New("Expect ')' after condition.")
var errExpectParenFor = errors.New("Expect '(' after 'for'.")
var errExpectParenForEnd = errors.New("Expect ')' after for clauses.")
var errExpectClassName = errors.New("Expect class name.")
var errExpectSuperclassName = errors.New("Expect superclass name.")
var errExpectClassBody = errors.New("Expect '{' before class body.")
var errExpectClassBodyEnd = errors.New("Expect '}' after class body.")
var errExpectParamName = errors.New("Expect parameter name.")
var errExpectParamsEnd = errors.New("Expect ')' after parameters.")
var errExpectArgumentsEnd = errors.New("Expect ')' after arguments.")
var errExpectProp = errors.New("Expect property name after '.'.")
var errExpectSuperDot = errors.New("Expect '.' after 'super'.")
var errExpectSuperMethod = errors.New("Expect superclass method name.")

// Resolver errors
var errReadInInitializer = errors.New("Can't read local variable in its own initializer.")
var errAlreadyDeclared = errors.New("Already a variable with this name in this scope.")
var errTopLevelReturn = errors.New("Can't return from top-level code.")
var errInitializerReturn = errors.New("Can't return a value from an initializer.")
var errThisOutsideClass = errors.New("Can't use 'this' outside of a class.")
var errSuperOutsideClass = errors.New("Can't use 'super' outside of a class.")
var errSuperWithoutSuperclass = errors.New("Can't use 'super' in a class with no superclass.")
var errInheritFromSelf = errors.New("A class can't inherit from itself.")

// Runtime errors
var errUndefinedVar = errors.New("Undefined variable")
var errUndefinedProp = errors.New("Undefined property")
var errOperandNumber = errors.New("Operand must be a number.")
var errOperandsNumbers = errors.New("Operands must be numbers.")
var errOperandsAdd = errors.New("Operands must be two numbers or two strings.")
var errOnlyCallable = errors.New("Can only call functions and classes.")
var errOnlyInstanceProps = errors.New("Only instances have properties.")
var errOnlyInstanceFields = errors.New("Only instances have fields.")
var errSuperclassNotClass = errors.New("Superclass must be a class.")
