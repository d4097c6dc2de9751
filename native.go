package lox

// native.go
//
// Builtins surfaced:
//  1. clock() -> Number — wall-clock seconds since the Unix epoch.
//
// Grounded on the teacher's registerTimeBuiltins pattern
// (builtin_time.go): one registration function called once at
// interpreter construction, each builtin a small closure stored directly
// in the global environment rather than behind a separate dispatch table.

import "time"

// registerNatives installs the host-provided builtins into in.globals.
func registerNatives(in *Interpreter) {
	in.globals.Define("clock", &NativeFunction{
		name:  "clock",
		arity: 0,
		fn: func(in *Interpreter, args []Value) (Value, error) {
			return float64(time.Now().UnixNano()) / float64(time.Second), nil
		},
	})
}
