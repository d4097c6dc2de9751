package lox

import "fmt"

// Callable is anything that can appear on the left of a call expression:
// a user-defined function/closure or a native function registered by the
// host.
type Callable interface {
	Arity() int
	Call(in *Interpreter, args []Value) (Value, error)
	String() string
}

// newUserFunction binds a Function declaration to the environment that was
// live when it was declared, making it a lexical closure.
func newUserFunction(decl *Function, closure *Env) *UserFunction {
	return &UserFunction{
		name:    decl.Name.Lexeme,
		params:  decl.Params,
		body:    decl.Body,
		closure: closure,
	}
}

// UserFunction is the Callable produced by a Lox function declaration.
type UserFunction struct {
	name    string
	params  []Token
	body    []Stmt
	closure *Env
}

func (f *UserFunction) Arity() int { return len(f.params) }

func (f *UserFunction) String() string {
	return fmt.Sprintf("<fn %s>", f.name)
}

// Call runs the function body in a fresh environment enclosing the
// closure, not the caller's environment — this is what makes a Lox
// function a lexical closure rather than a dynamically scoped one.
func (f *UserFunction) Call(in *Interpreter, args []Value) (Value, error) {
	callEnv := NewEnclosedEnv(f.closure)
	for i, p := range f.params {
		callEnv.Define(p.Lexeme, args[i])
	}
	err := in.executeBlock(f.body, callEnv)
	if ret, ok := err.(*returnSignal); ok {
		return ret.value, nil
	}
	if err != nil {
		return nil, err
	}
	return nil, nil
}

// NativeFunction wraps a Go function as a Lox Callable, for host-provided
// builtins such as clock().
type NativeFunction struct {
	name  string
	arity int
	fn    func(in *Interpreter, args []Value) (Value, error)
}

func (n *NativeFunction) Arity() int { return n.arity }

func (n *NativeFunction) String() string {
	return fmt.Sprintf("<native fn %s>", n.name)
}

func (n *NativeFunction) Call(in *Interpreter, args []Value) (Value, error) {
	return n.fn(in, args)
}
