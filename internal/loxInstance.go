package internal

import "fmt"

type loxInstance struct {
	class  *loxClass
	fields map[string]interface{}
}

func (o *loxInstance) get(tk *token) (interface{}, error) {
	if val, ok := o.fields[tk.lexeme]; ok {
		return val, nil
	}
	if method := o.class.findMethod(tk.lexeme); method != nil {
		return method.bind(o), nil
	}
	return nil, undefinedProp(tk)
}

func (o *loxInstance) set(name *token, value interface{}) {
	o.fields[name.lexeme] = value
}

func (o *loxInstance) String() string {
	return o.class.name + " instance"
}

func undefinedProp(name *token) error {
	return &runtimeError{
		token: name,
		err:   fmt.Errorf("%w '%s'.", errUndefinedProp, name.lexeme),
	}
}
