package types

import "testing"

func TestEnvironmentGetSet(t *testing.T) {
	env := NewEnvironment()
	env.Set("x", &Integer{Value: 5})

	val, ok := env.Get("x")
	if !ok {
		t.Fatalf("expected x to be bound")
	}
	if val.(*Integer).Value != 5 {
		t.Errorf("expected 5, got %v", val.Inspect())
	}
}

func TestEnclosedEnvironmentLooksOutward(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("x", &Integer{Value: 5})

	inner := NewEnclosedEnvironment(outer)
	if _, ok := inner.Get("x"); !ok {
		t.Fatalf("expected inner to find x in outer")
	}

	inner.Set("y", &Integer{Value: 10})
	if _, ok := outer.Get("y"); ok {
		t.Errorf("outer should not see bindings set in inner")
	}
}

func TestSetShadowsOuterBinding(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("x", &Integer{Value: 5})

	inner := NewEnclosedEnvironment(outer)
	inner.Set("x", &Integer{Value: 99})

	val, _ := inner.Get("x")
	if val.(*Integer).Value != 99 {
		t.Errorf("expected inner binding to shadow outer, got %v", val.Inspect())
	}

	outerVal, _ := outer.Get("x")
	if outerVal.(*Integer).Value != 5 {
		t.Errorf("outer binding should be unaffected, got %v", outerVal.Inspect())
	}
}
