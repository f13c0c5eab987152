package eval_test

import (
	"testing"

	"github.com/pdk/mplot/eval"
)

func TestBindNoReplace(t *testing.T) {
	env := eval.NewEnv()
	a, b := 1.0, 2.0

	if !env.Bind("x", &a) {
		t.Fatalf("first bind of x should succeed")
	}
	if env.Bind("x", &b) {
		t.Fatalf("re-bind of an already-bound name should fail")
	}

	ref, ok := env.Lookup("x")
	if !ok || ref != &a {
		t.Errorf("lookup should still see the first binding after a rejected re-bind")
	}
}

func TestUnbindThenRebind(t *testing.T) {
	env := eval.NewEnv()
	a, b := 1.0, 2.0

	env.Bind("x", &a)
	env.Unbind("x")

	if !env.Bind("x", &b) {
		t.Fatalf("bind after unbind should succeed")
	}
	if ref, _ := env.Lookup("x"); ref != &b {
		t.Errorf("expected the second binding to take effect")
	}
}

func TestIsBound(t *testing.T) {
	env := eval.NewEnv()
	if env.IsBound("x") {
		t.Errorf("fresh env should report x unbound")
	}
	v := 1.0
	env.Bind("x", &v)
	if !env.IsBound("x") {
		t.Errorf("expected x to report bound after Bind")
	}
}
