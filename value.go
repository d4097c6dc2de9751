package lox

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is anything a Lox expression can evaluate to: nil, bool, float64,
// string, or Callable. A plain interface{} (rather than a tagged struct) is
// the grounded choice here: Go's interface already gives us the type switch
// we need at every use site, and the teacher's own richer value set
// (printer.go's VT* tags) exists only because MindScript has many more
// value kinds than Lox does.
type Value interface{}

// isTruthy implements Lox's truthiness rule: nil and false are falsey,
// everything else (including 0 and "") is truthy.
func isTruthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// valuesEqual implements Lox's "==": nil equals only nil, and values of
// different dynamic types are never equal (no implicit coercion in
// comparison, unlike "+").
func valuesEqual(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		return a == b
	}
}

// stringify renders a Value the way `print` and the REPL display it.
// Numbers drop a trailing ".0" so integral results print as integers.
func stringify(v Value) string {
	if v == nil {
		return "nil"
	}
	switch x := v.(type) {
	case float64:
		s := strconv.FormatFloat(x, 'f', -1, 64)
		if strings.HasSuffix(s, ".0") {
			s = s[:len(s)-2]
		}
		return s
	case string:
		return x
	case bool:
		if x {
			return "true"
		}
		return "false"
	case Callable:
		return x.String()
	default:
		return fmt.Sprintf("%v", x)
	}
}
