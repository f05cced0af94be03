package internal

type callable interface {
	arity() int
	call(exec *exec, arguments []interface{}) (interface{}, error)
}

type nativeFn struct {
	arityValue int
	callFn     func(exec *exec, arguments []interface{}) (interface{}, error)
}

func (n *nativeFn) arity() int {
	return n.arityValue
}

func (n *nativeFn) call(exec *exec, arguments []interface{}) (interface{}, error) {
	return n.callFn(exec, arguments)
}

func (n *nativeFn) String() string {
	return "<native fn>"
}
