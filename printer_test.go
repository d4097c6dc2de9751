package lox

import "testing"

func mustParse(t *testing.T, src string) []Stmt {
	t.Helper()
	l := NewLexer(src)
	toks, errs := l.Scan()
	if len(errs) != 0 {
		t.Fatalf("scan errors: %v", errs)
	}
	p := NewParser(toks)
	stmts := p.ParseProgram()
	if p.HadError() {
		t.Fatalf("parse errors: %v", p.Errors())
	}
	return stmts
}

// The printer's s-expression form is test-only and isn't itself valid Lox
// source, so idempotence is checked the way the invariant states it
// ("modulo whitespace"): two source texts that differ only in formatting
// must parse to the same printed form.
func TestPrinter_SyntacticFormIsWhitespaceIndependent(t *testing.T) {
	cases := []struct{ a, b string }{
		{`print 1 + 2 * 3;`, "print   1+2*3 ;"},
		{`var x = 1; x = x + 1;`, "var x=1;\nx = x + 1;"},
		{`if (x < 2) print "a"; else print "b";`, "if(x<2)print \"a\";else print \"b\";"},
		{`fun add(a, b) { return a + b; }`, "fun add(a,b){return a+b;}"},
	}
	for _, c := range cases {
		pa := printProgram(mustParse(t, c.a))
		pb := printProgram(mustParse(t, c.b))
		if pa != pb {
			t.Fatalf("not whitespace-independent:\n%s -> %s\n%s -> %s", c.a, pa, c.b, pb)
		}
	}
}
