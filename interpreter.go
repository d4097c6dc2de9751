package lox

import (
	"fmt"
	"io"
)

// returnSignal carries a `return` statement's value up through the normal
// error-return path until it reaches the Call that should catch it. It
// implements error only so it can travel through the same channel as a
// genuine RuntimeError; Call unwraps it before it ever reaches user-visible
// error reporting.
type returnSignal struct {
	value Value
	line  int
}

func (r *returnSignal) Error() string { return "return" }

// RuntimeError is a Lox-level error raised during evaluation: a type
// mismatch, an undefined variable, calling a non-callable, wrong arity.
// Reported as "<message>\n[line N]" per the runtime error format.
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Line)
}

func newRuntimeError(line int, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Line: line, Message: fmt.Sprintf(format, args...)}
}

// Interpreter walks an AST and evaluates it directly, with no compilation
// step. One Interpreter owns the global environment and the native
// registry, and is reused across every statement fed to it by the REPL or
// file runner so top-level bindings persist between lines.
type Interpreter struct {
	globals *Env
	env     *Env
	out     io.Writer
	log     *Logger
}

// NewInterpreter creates an Interpreter with a fresh global environment and
// the standard native registry (currently just clock()) installed.
func NewInterpreter(out io.Writer, log *Logger) *Interpreter {
	in := &Interpreter{
		globals: NewEnv(),
		out:     out,
		log:     log,
	}
	in.env = in.globals
	registerNatives(in)
	return in
}

// Interpret executes a full program (a slice of top-level statements). A
// runtime error in one top-level statement is collected and the next
// top-level statement still runs — only the statement that raised the
// error is abandoned, not the whole program.
func (in *Interpreter) Interpret(stmts []Stmt) []error {
	var errs []error
	for _, s := range stmts {
		err := in.execute(s)
		if ret, ok := err.(*returnSignal); ok {
			err = newRuntimeError(ret.line, "Can't return from top-level code.")
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func (in *Interpreter) execute(s Stmt) error {
	switch node := s.(type) {
	case *ExprStmt:
		_, err := in.eval(node.Expression)
		return err

	case *PrintStmt:
		v, err := in.eval(node.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.out, stringify(v))
		return nil

	case *VarDecl:
		var v Value
		if node.Initializer != nil {
			var err error
			v, err = in.eval(node.Initializer)
			if err != nil {
				return err
			}
		}
		in.env.Define(node.Name.Lexeme, v)
		return nil

	case *Block:
		return in.executeBlock(node.Statements, NewEnclosedEnv(in.env))

	case *If:
		cond, err := in.eval(node.Cond)
		if err != nil {
			return err
		}
		if isTruthy(cond) {
			return in.execute(node.Then)
		}
		if node.Else != nil {
			return in.execute(node.Else)
		}
		return nil

	case *While:
		for {
			cond, err := in.eval(node.Cond)
			if err != nil {
				return err
			}
			if !isTruthy(cond) {
				return nil
			}
			if err := in.execute(node.Body); err != nil {
				return err
			}
		}

	case *Function:
		fn := newUserFunction(node, in.env)
		in.env.Define(node.Name.Lexeme, fn)
		return nil

	case *Return:
		var v Value
		if node.Value != nil {
			var err error
			v, err = in.eval(node.Value)
			if err != nil {
				return err
			}
		}
		return &returnSignal{value: v, line: node.Line}

	default:
		return newRuntimeError(0, "unknown statement type %T", s)
	}
}

// executeBlock runs stmts inside env, restoring the interpreter's previous
// environment on every exit path (normal completion, error, or a
// non-local return unwinding through it).
func (in *Interpreter) executeBlock(stmts []Stmt, env *Env) error {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, s := range stmts {
		if err := in.execute(s); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) eval(e Expr) (Value, error) {
	switch node := e.(type) {
	case *Literal:
		return node.Value, nil

	case *Grouping:
		return in.eval(node.Expression)

	case *Variable:
		if v, ok := in.env.Get(node.Name.Lexeme); ok {
			return v, nil
		}
		return nil, newRuntimeError(node.Name.Line, "Undefined variable '%s'.", node.Name.Lexeme)

	case *Assign:
		v, err := in.eval(node.Value)
		if err != nil {
			return nil, err
		}
		if !in.env.Assign(node.Name.Lexeme, v) {
			return nil, newRuntimeError(node.Name.Line, "Undefined variable '%s'.", node.Name.Lexeme)
		}
		return v, nil

	case *Logical:
		left, err := in.eval(node.Left)
		if err != nil {
			return nil, err
		}
		if node.Op.Type == Or {
			if isTruthy(left) {
				return left, nil
			}
		} else {
			if !isTruthy(left) {
				return left, nil
			}
		}
		return in.eval(node.Right)

	case *Unary:
		operand, err := in.eval(node.Operand)
		if err != nil {
			return nil, err
		}
		switch node.Op.Type {
		case Minus:
			n, ok := operand.(float64)
			if !ok {
				return nil, newRuntimeError(node.Op.Line, "Operand must be a number.")
			}
			return -n, nil
		case Bang:
			return !isTruthy(operand), nil
		}
		return nil, newRuntimeError(node.Op.Line, "unknown unary operator %s", node.Op.Type)

	case *Binary:
		return in.evalBinary(node)

	case *Call:
		return in.evalCall(node)

	default:
		return nil, newRuntimeError(0, "unknown expression type %T", e)
	}
}

func (in *Interpreter) evalBinary(node *Binary) (Value, error) {
	left, err := in.eval(node.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.eval(node.Right)
	if err != nil {
		return nil, err
	}
	line := node.Op.Line

	switch node.Op.Type {
	case Plus:
		if ln, ok := left.(float64); ok {
			if rn, ok := right.(float64); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs, nil
			}
		}
		// The one coercion rule: if either operand is a string, concatenate
		// both operands' display forms.
		if _, ok := left.(string); ok {
			return stringify(left) + stringify(right), nil
		}
		if _, ok := right.(string); ok {
			return stringify(left) + stringify(right), nil
		}
		return nil, newRuntimeError(line, "Operands must be two numbers or at least one string.")

	case Minus:
		ln, rn, err := numberOperands(left, right, line)
		if err != nil {
			return nil, err
		}
		return ln - rn, nil

	case Star:
		ln, rn, err := numberOperands(left, right, line)
		if err != nil {
			return nil, err
		}
		return ln * rn, nil

	case Slash:
		ln, rn, err := numberOperands(left, right, line)
		if err != nil {
			return nil, err
		}
		return ln / rn, nil

	case Greater:
		ln, rn, err := numberOperands(left, right, line)
		if err != nil {
			return nil, err
		}
		return ln > rn, nil

	case GreaterEqual:
		ln, rn, err := numberOperands(left, right, line)
		if err != nil {
			return nil, err
		}
		return ln >= rn, nil

	case Less:
		ln, rn, err := numberOperands(left, right, line)
		if err != nil {
			return nil, err
		}
		return ln < rn, nil

	case LessEqual:
		ln, rn, err := numberOperands(left, right, line)
		if err != nil {
			return nil, err
		}
		return ln <= rn, nil

	case EqualEqual:
		return valuesEqual(left, right), nil

	case BangEqual:
		return !valuesEqual(left, right), nil
	}

	return nil, newRuntimeError(line, "unknown binary operator %s", node.Op.Type)
}

func numberOperands(left, right Value, line int) (float64, float64, error) {
	ln, ok := left.(float64)
	if !ok {
		return 0, 0, newRuntimeError(line, "Operands must be numbers.")
	}
	rn, ok := right.(float64)
	if !ok {
		return 0, 0, newRuntimeError(line, "Operands must be numbers.")
	}
	return ln, rn, nil
}

func (in *Interpreter) evalCall(node *Call) (Value, error) {
	callee, err := in.eval(node.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(node.Args))
	for i, a := range node.Args {
		v, err := in.eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, newRuntimeError(node.Paren.Line, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, newRuntimeError(node.Paren.Line, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}
	in.log.Debugf("call %s with %d args", fn.String(), len(args))
	return fn.Call(in, args)
}
