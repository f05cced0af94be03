package internal

import "fmt"

type loxFunction struct {
	declaration   *fnStmt
	closure       *env
	isInitializer bool
}

func (f *loxFunction) arity() int {
	return len(f.declaration.params)
}

// call runs the body in a fresh environment enclosed by the closure, never
// by the caller's environment.
func (f *loxFunction) call(exec *exec, arguments []interface{}) (interface{}, error) {
	environment := newEnv(f.closure)
	for i, param := range f.declaration.params {
		environment.define(param.lexeme, arguments[i])
	}

	ret, err := exec.executeBlock(f.declaration.body, environment)
	if err != nil {
		return nil, err
	}

	if f.isInitializer {
		return f.closure.getAt(0, "this"), nil
	}
	if ret != nil {
		return ret.value, nil
	}
	return nil, nil
}

// bind returns a copy of f whose closure defines "this" as object.
func (f *loxFunction) bind(object *loxInstance) *loxFunction {
	environment := newEnv(f.closure)
	environment.define("this", object)
	return &loxFunction{
		declaration:   f.declaration,
		closure:       environment,
		isInitializer: f.isInitializer,
	}
}

func (f *loxFunction) String() string {
	return fmt.Sprintf("<fn %s>", f.declaration.name.lexeme)
}
