package eval_test

import (
	"testing"

	"github.com/pdk/mplot/eval"
	"github.com/pdk/mplot/exprtree"
	"github.com/pdk/mplot/lexer"
	"github.com/pdk/mplot/token"
)

func TestExpandFoldsConstantSubtree(t *testing.T) {
	toks, status := lexer.Lex("2+3+x", nil)
	if !status.OK() {
		t.Fatalf("lex error: %s", status)
	}
	root, status := exprtree.Build(toks)
	if !status.OK() {
		t.Fatalf("build error: %s", status)
	}

	env := eval.NewEnv()
	x := 4.0
	env.Bind("x", &x)

	folded, res := eval.Expand(root, env, nil, false)
	if !res.AllOK() {
		t.Fatalf("unexpected error: %+v", res)
	}
	if res.Value != 9 {
		t.Errorf("value = %v, want 9", res.Value)
	}

	// The root itself still references x, so it cannot fold into a leaf,
	// but its "2+3" sibling subtree should have.
	if folded.Tok.Kind == token.Number {
		t.Fatalf("root should not fold away while it still references x")
	}
	if folded.Left.Tok.Kind != token.Number || folded.Left.Tok.Number != 5 {
		t.Errorf("left child should fold to the constant 5, got %+v", folded.Left.Tok)
	}
}

func TestExpandFullyConstant(t *testing.T) {
	toks, status := lexer.Lex("2+3*4", nil)
	if !status.OK() {
		t.Fatalf("lex error: %s", status)
	}
	root, status := exprtree.Build(toks)
	if !status.OK() {
		t.Fatalf("build error: %s", status)
	}

	folded, res := eval.Expand(root, eval.NewEnv(), nil, false)
	if !res.AllOK() || res.Value != 14 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if folded.Tok.Kind != token.Number {
		t.Errorf("expected a fully-constant expression to fold to a single Number leaf")
	}
}

func TestExpandUnboundVariableDoesNotFold(t *testing.T) {
	toks, status := lexer.Lex("x+1", nil)
	if !status.OK() {
		t.Fatalf("lex error: %s", status)
	}
	root, status := exprtree.Build(toks)
	if !status.OK() {
		t.Fatalf("build error: %s", status)
	}

	folded, res := eval.Expand(root, eval.NewEnv(), nil, false)
	if !res.VariableErr {
		t.Errorf("expected VariableErr for an unbound identifier")
	}
	if folded.Tok.Kind == token.Number {
		t.Errorf("an expression over an unbound variable must not fold")
	}
}

func TestExpandOneStepFoldsInnermostNodeOnly(t *testing.T) {
	toks, status := lexer.Lex("(2+3)*4", nil)
	if !status.OK() {
		t.Fatalf("lex error: %s", status)
	}
	root, status := exprtree.Build(toks)
	if !status.OK() {
		t.Fatalf("build error: %s", status)
	}

	// Step 1 folds only the innermost ready node -- the "2+3" subtree --
	// leaving the root Multiply node and its now-constant left child
	// intact. The step's own result reports the value of what it just
	// folded (5), not the whole expression's value.
	root, res := eval.Expand(root, eval.NewEnv(), nil, true)
	if !res.AllOK() || res.Value != 5 {
		t.Fatalf("step 1 result = %+v, want value 5", res)
	}
	if root.Tok.Kind == token.Number {
		t.Fatalf("root should not fold away after a single step")
	}
	if root.Left.Tok.Kind != token.Number || root.Left.Tok.Number != 5 {
		t.Errorf("left child should have folded to 5, got %+v", root.Left.Tok)
	}
	if root.Right.Tok.Kind != token.Number || root.Right.Tok.Number != 4 {
		t.Errorf("right child should be untouched, got %+v", root.Right.Tok)
	}

	// Step 2: both children are now leaves, so this step folds the root
	// itself.
	root, res = eval.Expand(root, eval.NewEnv(), nil, true)
	if !res.AllOK() || res.Value != 20 {
		t.Fatalf("step 2 result = %+v, want value 20", res)
	}
	if root.Tok.Kind != token.Number || root.Tok.Number != 20 {
		t.Errorf("root should have folded to 20 after step 2, got %+v", root.Tok)
	}
}
