package internal

import (
	"strconv"
)

// numberOperand checks the operand of a unary numeric operator.
func numberOperand(operator *token, operand interface{}) (float64, error) {
	if n, ok := operand.(float64); ok {
		return n, nil
	}
	return 0, &runtimeError{token: operator, err: errOperandNumber}
}

// numberOperands checks both operands of a binary numeric operator before
// the arithmetic is performed.
func numberOperands(operator *token, left, right interface{}) (float64, float64, error) {
	leftNum, leftOk := left.(float64)
	rightNum, rightOk := right.(float64)
	if !leftOk || !rightOk {
		return 0, 0, &runtimeError{token: operator, err: errOperandsNumbers}
	}
	return leftNum, rightNum, nil
}

func add(operator *token, left, right interface{}) (interface{}, error) {
	switch l := left.(type) {
	case float64:
		if r, ok := right.(float64); ok {
			return l + r, nil
		}
	case string:
		if r, ok := right.(string); ok {
			return l + r, nil
		}
	}
	return nil, &runtimeError{token: operator, err: errOperandsAdd}
}

func truthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if valueBool, isBool := value.(bool); isBool {
		return valueBool
	}
	return true
}

func isEqual(left, right interface{}) bool {
	if left == nil && right == nil {
		return true
	}
	if left == nil || right == nil {
		return false
	}
	return left == right
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	case interface{ String() string }:
		return v.String()
	}
	return "<unknown>"
}
