package internal

import "time"

func defineGlobals(e *env) {
	defineClock(e)
}

// defineClock binds clock(), the seconds elapsed since the Unix epoch.
func defineClock(e *env) {
	var clock nativeFn
	clock.callFn = func(exec *exec, arguments []interface{}) (interface{}, error) {
		return float64(time.Now().UnixNano()) / float64(time.Second), nil
	}

	e.define("clock", &clock)
}
