package lox

import (
	"bytes"
	"strings"
	"testing"
)

func runSource(t *testing.T, src string) (stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	in := NewInterpreter(&out, NewLogger(&errOut))
	Run(in, &errOut, src)
	return out.String(), errOut.String()
}

func TestInterpreter_ArithmeticPrecedence(t *testing.T) {
	out, _ := runSource(t, "print 1 + 2 * 3;")
	if strings.TrimSpace(out) != "7" {
		t.Fatalf("got %q, want 7", out)
	}
}

func TestInterpreter_GroupingOverridesPrecedence(t *testing.T) {
	out, _ := runSource(t, "print (1 + 2) * 3;")
	if strings.TrimSpace(out) != "9" {
		t.Fatalf("got %q, want 9", out)
	}
}

func TestInterpreter_NumberDisplayDropsTrailingZero(t *testing.T) {
	out, _ := runSource(t, "print 3.0;")
	if strings.TrimSpace(out) != "3" {
		t.Fatalf("got %q, want 3", out)
	}
}

func TestInterpreter_PlusCoercesToStringConcat(t *testing.T) {
	out, _ := runSource(t, `print "one " + 1;`)
	if strings.TrimSpace(out) != "one 1" {
		t.Fatalf("got %q, want %q", out, "one 1")
	}
}

func TestInterpreter_AssignmentExpressionValueEqualsSubsequentRead(t *testing.T) {
	out, _ := runSource(t, "var x=10; var r=(x=42); print r; print x;")
	got := strings.Fields(out)
	want := []string{"42", "42"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestInterpreter_ClosureCapturesSharedEnvironment(t *testing.T) {
	src := `
fun makeCounter(){
  var i=0;
  fun c(){ i=i+1; return i; }
  return c;
}
var c=makeCounter();
print c();
print c();
`
	out, _ := runSource(t, src)
	got := strings.Fields(out)
	want := []string{"1", "2"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestInterpreter_Recursion(t *testing.T) {
	src := `
fun fact(n){ if(n<=1) return 1; return n*fact(n-1); }
print fact(6);
`
	out, _ := runSource(t, src)
	if strings.TrimSpace(out) != "720" {
		t.Fatalf("got %q, want 720", out)
	}
}

func TestInterpreter_ShortCircuitOr(t *testing.T) {
	src := `var sc=false; true or (sc=true); print sc;`
	out, _ := runSource(t, src)
	if strings.TrimSpace(out) != "false" {
		t.Fatalf("got %q, want false (side effect must not occur)", out)
	}
}

func TestInterpreter_ShortCircuitAnd(t *testing.T) {
	src := `var sc=false; false and (sc=true); print sc;`
	out, _ := runSource(t, src)
	if strings.TrimSpace(out) != "false" {
		t.Fatalf("got %q, want false (side effect must not occur)", out)
	}
}

func TestInterpreter_BlockShadowing(t *testing.T) {
	src := `var v=11; { var v=60; print v; } print v;`
	out, _ := runSource(t, src)
	got := strings.Fields(out)
	want := []string{"60", "11"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestInterpreter_UndefinedVariableIsRuntimeError(t *testing.T) {
	_, errOut := runSource(t, "print before_decl;")
	if !strings.Contains(errOut, "Undefined variable 'before_decl'.") {
		t.Fatalf("stderr = %q, missing expected message", errOut)
	}
}

func TestInterpreter_CallingNonCallableIsRuntimeError(t *testing.T) {
	_, errOut := runSource(t, `"x"();`)
	if !strings.Contains(errOut, "Can only call functions and classes.") {
		t.Fatalf("stderr = %q, missing expected message", errOut)
	}
}

func TestInterpreter_WrongArityIsRuntimeError(t *testing.T) {
	_, errOut := runSource(t, "clock(1);")
	if !strings.Contains(errOut, "Expected 0 arguments but got 1.") {
		t.Fatalf("stderr = %q, missing expected message", errOut)
	}
}

func TestInterpreter_NestedBlockCommentThenStatement(t *testing.T) {
	out, _ := runSource(t, `/* a /* b */ c */ print "ok";`)
	if strings.TrimSpace(out) != "ok" {
		t.Fatalf("got %q, want ok", out)
	}
}

func TestInterpreter_RuntimeErrorDoesNotAbandonRemainingTopLevelStatements(t *testing.T) {
	out, errOut := runSource(t, "print before_decl; print 1;")
	if !strings.Contains(errOut, "Undefined variable") {
		t.Fatalf("expected a reported runtime error, got stderr = %q", errOut)
	}
	if strings.TrimSpace(out) != "1" {
		t.Fatalf("second statement should still run; got stdout = %q", out)
	}
}

func TestInterpreter_ForLoop(t *testing.T) {
	src := `for (var i = 0; i < 3; i = i + 1) print i;`
	out, _ := runSource(t, src)
	got := strings.Fields(out)
	want := []string{"0", "1", "2"}
	if len(got) != 3 || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestInterpreter_WhileLoop(t *testing.T) {
	src := `var i = 0; while (i < 3) { print i; i = i + 1; }`
	out, _ := runSource(t, src)
	got := strings.Fields(out)
	want := []string{"0", "1", "2"}
	if len(got) != 3 || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestInterpreter_FunctionFallsOffEndReturnsNil(t *testing.T) {
	src := `fun noop(){} print noop();`
	out, _ := runSource(t, src)
	if strings.TrimSpace(out) != "nil" {
		t.Fatalf("got %q, want nil", out)
	}
}

func TestInterpreter_ClockTakesZeroArgsReturnsNumber(t *testing.T) {
	out, errOut := runSource(t, "print clock() >= 0;")
	if errOut != "" {
		t.Fatalf("unexpected stderr: %q", errOut)
	}
	if strings.TrimSpace(out) != "true" {
		t.Fatalf("got %q, want true", out)
	}
}
