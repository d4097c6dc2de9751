package lox

// Env is a lexical scope: a flat table of bindings plus a link to the
// enclosing scope. Variable lookup walks outward through Parent until a
// binding is found or the chain is exhausted, the same shape as the
// teacher's scope type in interpreter.go, generalized from MindScript's
// value set to Lox's.
type Env struct {
	parent *Env
	table  map[string]Value
}

// NewEnv creates a top-level environment with no enclosing scope.
func NewEnv() *Env {
	return &Env{table: make(map[string]Value)}
}

// NewEnclosedEnv creates a scope nested inside parent, e.g. a block body or
// a function call frame.
func NewEnclosedEnv(parent *Env) *Env {
	return &Env{parent: parent, table: make(map[string]Value)}
}

// Define creates or overwrites a binding in this exact scope. Redeclaring a
// name already defined here (e.g. "var a = 1; var a = 2;") is allowed.
func (e *Env) Define(name string, v Value) {
	e.table[name] = v
}

// Get looks up name starting at this scope and walking outward. The second
// return value is false if no enclosing scope defines it.
func (e *Env) Get(name string) (Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.table[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Assign stores v under name in the nearest scope (this one or an
// enclosing one) that already defines it. It never creates a new binding;
// the caller is responsible for reporting "undefined variable" when this
// returns false.
func (e *Env) Assign(name string, v Value) bool {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.table[name]; ok {
			env.table[name] = v
			return true
		}
	}
	return false
}
