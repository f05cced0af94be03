package internal

import (
	"github.com/sirupsen/logrus"
)

// returnValue carries a return statement's value to the enclosing call.
// A nil *returnValue means the statement completed normally.
type returnValue struct {
	value interface{}
}

type exec struct {
	printer IPrinter
	log     logrus.FieldLogger

	globals *env
	env     *env
	locals  map[expr]int
}

func newExec(p IPrinter, log logrus.FieldLogger) *exec {
	globals := newEnv(nil)
	defineGlobals(globals)
	return &exec{
		printer: p,
		log:     log,
		globals: globals,
		env:     globals,
		locals:  make(map[expr]int),
	}
}

// resolved merges the scope distances computed by the resolver.
func (e *exec) resolved(locals map[expr]int) {
	for ex, depth := range locals {
		e.locals[ex] = depth
	}
}

// interpret executes stmts in order and stops at the first runtime error.
func (e *exec) interpret(stmts []stmt) *runtimeError {
	for _, s := range stmts {
		if _, err := e.execute(s); err != nil {
			runErr, ok := err.(*runtimeError)
			if !ok {
				runErr = &runtimeError{token: &token{}, err: err}
			}
			e.log.WithFields(logrus.Fields{
				"line":  runErr.token.line,
				"error": runErr.Error(),
			}).Debug("runtime error")
			return runErr
		}
	}
	return nil
}

func (e *exec) execute(s stmt) (*returnValue, error) {
	switch s := s.(type) {
	case *blockStmt:
		return e.executeBlock(s.stmts, newEnv(e.env))
	case *classStmt:
		return nil, e.executeClass(s)
	case *exprStmt:
		_, err := e.evaluate(s.expression)
		return nil, err
	case *fnStmt:
		e.env.define(s.name.lexeme, &loxFunction{
			declaration:   s,
			closure:       e.env,
			isInitializer: false,
		})
		return nil, nil
	case *ifStmt:
		cond, err := e.evaluate(s.condition)
		if err != nil {
			return nil, err
		}
		if truthy(cond) {
			return e.execute(s.thenBranch)
		}
		if s.elseBranch != nil {
			return e.execute(s.elseBranch)
		}
		return nil, nil
	case *printStmt:
		value, err := e.evaluate(s.expression)
		if err != nil {
			return nil, err
		}
		e.printer.Println(stringify(value))
		return nil, nil
	case *returnStmt:
		var value interface{}
		if s.value != nil {
			var err error
			if value, err = e.evaluate(s.value); err != nil {
				return nil, err
			}
		}
		return &returnValue{value: value}, nil
	case *varStmt:
		var value interface{}
		if s.initializer != nil {
			var err error
			if value, err = e.evaluate(s.initializer); err != nil {
				return nil, err
			}
		}
		e.env.define(s.name.lexeme, value)
		return nil, nil
	case *whileStmt:
		for {
			cond, err := e.evaluate(s.condition)
			if err != nil {
				return nil, err
			}
			if !truthy(cond) {
				return nil, nil
			}
			ret, err := e.execute(s.body)
			if err != nil || ret != nil {
				return ret, err
			}
		}
	}
	return nil, nil
}

// executeBlock runs stmts inside environment and restores the previous
// environment however the block exits.
func (e *exec) executeBlock(stmts []stmt, environment *env) (*returnValue, error) {
	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = environment
	for _, s := range stmts {
		ret, err := e.execute(s)
		if err != nil || ret != nil {
			return ret, err
		}
	}
	return nil, nil
}

func (e *exec) executeClass(s *classStmt) error {
	var superclass *loxClass
	if s.superclass != nil {
		value, err := e.evaluate(s.superclass)
		if err != nil {
			return err
		}
		class, ok := value.(*loxClass)
		if !ok {
			return &runtimeError{token: s.superclass.name, err: errSuperclassNotClass}
		}
		superclass = class
	}

	e.env.define(s.name.lexeme, nil)

	if superclass != nil {
		e.env = newEnv(e.env)
		e.env.define("super", superclass)
	}

	methods := make(map[string]*loxFunction, len(s.methods))
	for _, method := range s.methods {
		methods[method.name.lexeme] = &loxFunction{
			declaration:   method,
			closure:       e.env,
			isInitializer: method.name.lexeme == "init",
		}
	}

	class := &loxClass{
		name:       s.name.lexeme,
		superclass: superclass,
		methods:    methods,
	}

	if superclass != nil {
		e.env = e.env.enclosing
	}

	return e.env.assign(s.name, class)
}

func (e *exec) evaluate(ex expr) (interface{}, error) {
	switch ex := ex.(type) {
	case *assignExpr:
		value, err := e.evaluate(ex.value)
		if err != nil {
			return nil, err
		}
		if distance, ok := e.locals[ex]; ok {
			e.env.assignAt(distance, ex.name, value)
			return value, nil
		}
		if err := e.globals.assign(ex.name, value); err != nil {
			return nil, err
		}
		return value, nil
	case *binaryExpr:
		return e.evaluateBinary(ex)
	case *callExpr:
		return e.evaluateCall(ex)
	case *getExpr:
		object, err := e.evaluate(ex.object)
		if err != nil {
			return nil, err
		}
		if instance, ok := object.(*loxInstance); ok {
			return instance.get(ex.name)
		}
		return nil, &runtimeError{token: ex.name, err: errOnlyInstanceProps}
	case *groupingExpr:
		return e.evaluate(ex.expression)
	case *literalExpr:
		return ex.value, nil
	case *logicalExpr:
		left, err := e.evaluate(ex.left)
		if err != nil {
			return nil, err
		}
		if ex.operator.token == tkOr {
			if truthy(left) {
				return left, nil
			}
		} else if !truthy(left) {
			return left, nil
		}
		return e.evaluate(ex.right)
	case *setExpr:
		object, err := e.evaluate(ex.object)
		if err != nil {
			return nil, err
		}
		instance, ok := object.(*loxInstance)
		if !ok {
			return nil, &runtimeError{token: ex.name, err: errOnlyInstanceFields}
		}
		value, err := e.evaluate(ex.value)
		if err != nil {
			return nil, err
		}
		instance.set(ex.name, value)
		return value, nil
	case *superExpr:
		return e.evaluateSuper(ex)
	case *thisExpr:
		return e.lookUpVariable(ex.keyword, ex)
	case *unaryExpr:
		right, err := e.evaluate(ex.right)
		if err != nil {
			return nil, err
		}
		switch ex.operator.token {
		case tkBang:
			return !truthy(right), nil
		case tkMinus:
			n, err := numberOperand(ex.operator, right)
			if err != nil {
				return nil, err
			}
			return -n, nil
		}
		return nil, nil
	case *variableExpr:
		return e.lookUpVariable(ex.name, ex)
	}
	return nil, nil
}

func (e *exec) lookUpVariable(name *token, ex expr) (interface{}, error) {
	if distance, ok := e.locals[ex]; ok {
		return e.env.getAt(distance, name.lexeme), nil
	}
	return e.globals.get(name)
}

func (e *exec) evaluateBinary(ex *binaryExpr) (interface{}, error) {
	left, err := e.evaluate(ex.left)
	if err != nil {
		return nil, err
	}
	right, err := e.evaluate(ex.right)
	if err != nil {
		return nil, err
	}

	switch ex.operator.token {
	case tkEqualEqual:
		return isEqual(left, right), nil
	case tkBangEqual:
		return !isEqual(left, right), nil
	case tkPlus:
		return add(ex.operator, left, right)
	}

	leftNum, rightNum, err := numberOperands(ex.operator, left, right)
	if err != nil {
		return nil, err
	}
	switch ex.operator.token {
	case tkGreater:
		return leftNum > rightNum, nil
	case tkGreaterEqual:
		return leftNum >= rightNum, nil
	case tkLess:
		return leftNum < rightNum, nil
	case tkLessEqual:
		return leftNum <= rightNum, nil
	case tkMinus:
		return leftNum - rightNum, nil
	case tkSlash:
		return leftNum / rightNum, nil
	case tkStar:
		return leftNum * rightNum, nil
	}
	return nil, nil
}

func (e *exec) evaluateCall(ex *callExpr) (interface{}, error) {
	callee, err := e.evaluate(ex.callee)
	if err != nil {
		return nil, err
	}

	arguments := make([]interface{}, len(ex.arguments))
	for i, argument := range ex.arguments {
		if arguments[i], err = e.evaluate(argument); err != nil {
			return nil, err
		}
	}

	fn, isFn := callee.(callable)
	if !isFn {
		return nil, &runtimeError{token: ex.paren, err: errOnlyCallable}
	}

	if len(arguments) != fn.arity() {
		return nil, &runtimeError{
			token: ex.paren,
			err:   &arityError{expected: fn.arity(), got: len(arguments)},
		}
	}

	return fn.call(e, arguments)
}

func (e *exec) evaluateSuper(ex *superExpr) (interface{}, error) {
	distance := e.locals[ex]
	superclass := e.env.getAt(distance, "super").(*loxClass)
	// "this" is always one environment closer than "super".
	object := e.env.getAt(distance-1, "this").(*loxInstance)

	method := superclass.findMethod(ex.method.lexeme)
	if method == nil {
		return nil, undefinedProp(ex.method)
	}
	return method.bind(object), nil
}
