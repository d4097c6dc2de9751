package lox

import "testing"

func TestEnv_DefineAndGet(t *testing.T) {
	e := NewEnv()
	e.Define("x", 1.0)
	v, ok := e.Get("x")
	if !ok || v != 1.0 {
		t.Fatalf("Get(x) = %v, %v", v, ok)
	}
}

func TestEnv_GetWalksParentChain(t *testing.T) {
	parent := NewEnv()
	parent.Define("x", 1.0)
	child := NewEnclosedEnv(parent)
	v, ok := child.Get("x")
	if !ok || v != 1.0 {
		t.Fatalf("Get(x) via parent = %v, %v", v, ok)
	}
}

func TestEnv_GetUndefinedFails(t *testing.T) {
	e := NewEnv()
	if _, ok := e.Get("missing"); ok {
		t.Fatalf("expected Get(missing) to fail")
	}
}

func TestEnv_AssignUpdatesNearestDefiningScope(t *testing.T) {
	parent := NewEnv()
	parent.Define("x", 1.0)
	child := NewEnclosedEnv(parent)

	if !child.Assign("x", 2.0) {
		t.Fatalf("Assign(x) should succeed via parent")
	}
	v, _ := parent.Get("x")
	if v != 2.0 {
		t.Fatalf("parent sees %v, want 2.0 (shared binding)", v)
	}
}

func TestEnv_AssignUndefinedFailsAndCreatesNoBinding(t *testing.T) {
	e := NewEnv()
	if e.Assign("ghost", 1.0) {
		t.Fatalf("Assign to an undefined name should fail")
	}
	if _, ok := e.Get("ghost"); ok {
		t.Fatalf("Assign must not create a binding on failure")
	}
}

func TestEnv_RedeclareInSameScopeOverwrites(t *testing.T) {
	e := NewEnv()
	e.Define("x", 1.0)
	e.Define("x", 2.0)
	v, _ := e.Get("x")
	if v != 2.0 {
		t.Fatalf("got %v, want 2.0", v)
	}
}

func TestEnv_ShadowingDoesNotAffectParent(t *testing.T) {
	parent := NewEnv()
	parent.Define("v", 11.0)
	child := NewEnclosedEnv(parent)
	child.Define("v", 60.0)

	got, _ := child.Get("v")
	if got != 60.0 {
		t.Fatalf("child sees %v, want 60.0", got)
	}
	got, _ = parent.Get("v")
	if got != 11.0 {
		t.Fatalf("parent sees %v, want 11.0 (unaffected by shadowing)", got)
	}
}
