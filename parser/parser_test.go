package parser_test

import (
	"testing"

	"github.com/pdk/mplot/parser"
)

func TestSetExpressionAndValue(t *testing.T) {
	p := parser.New(parser.NewContext(nil))
	if !p.SetExpression("2+3*4") {
		t.Fatalf("SetExpression failed: %s", p.Status())
	}
	r := p.Value()
	if !r.AllOK() || r.Value != 14 {
		t.Fatalf("value = %+v, want 14", r)
	}
}

func TestExpressionRoundTrip(t *testing.T) {
	p := parser.New(parser.NewContext(nil))
	if !p.SetExpression("2(x+1)") {
		t.Fatalf("SetExpression failed: %s", p.Status())
	}
	if got, want := p.Expression(), "2 * ( x + 1 )"; got != want {
		t.Errorf("Expression() = %q, want %q", got, want)
	}

	x := 3.0
	p.Env().Bind("x", &x)
	r := p.Value()
	if !r.AllOK() || r.Value != 8 {
		t.Fatalf("value at x=3 = %+v, want 8", r)
	}
}

func TestConstantSubstitution(t *testing.T) {
	p := parser.New(parser.NewContext(nil))
	if !p.SetExpression("pi*2") {
		t.Fatalf("SetExpression failed: %s", p.Status())
	}
	r := p.Value()
	if !r.AllOK() {
		t.Fatalf("unexpected error: %+v", r)
	}
	want := 2 * 3.141592653589793
	if r.Value < want-1e-9 || r.Value > want+1e-9 {
		t.Errorf("pi*2 = %v, want %v", r.Value, want)
	}
}

func TestVariablesInExpression(t *testing.T) {
	p := parser.New(parser.NewContext(nil))
	p.SetExpression("x+y*x")
	vars := p.VariablesInExpression()
	if len(vars) != 2 {
		t.Fatalf("expected 2 distinct variables, got %v", vars)
	}
}

func TestCloneSharedIndependentEnv(t *testing.T) {
	p := parser.New(parser.NewContext(nil))
	p.SetExpression("x")

	clone := p.CloneShared()
	x := 5.0
	clone.Env().Bind("x", &x)

	if p.Env().IsBound("x") {
		t.Errorf("binding in a shared clone's env must not leak back to the original")
	}
	r := clone.Value()
	if !r.AllOK() || r.Value != 5 {
		t.Fatalf("clone value = %+v, want 5", r)
	}
}

func TestCloneDeepIndependentTree(t *testing.T) {
	p := parser.New(parser.NewContext(nil))
	p.SetExpression("2+3")

	clone := p.CloneDeep()
	clone.Expand(false)

	if got := p.Expression(); got != "2 + 3" {
		t.Errorf("original tree should be unaffected by cloned Expand, got %q", got)
	}
	if got := clone.Expression(); got != "5" {
		t.Errorf("clone should fold to %q, got %q", "5", got)
	}
}

func TestReparse(t *testing.T) {
	p := parser.New(parser.NewContext(nil))
	p.SetExpression("1+1")
	if !p.Reparse() {
		t.Fatalf("Reparse failed: %s", p.Status())
	}
	r := p.Value()
	if !r.AllOK() || r.Value != 2 {
		t.Fatalf("value = %+v, want 2", r)
	}
}
