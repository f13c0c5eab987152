package exprtree_test

import (
	"testing"

	"github.com/pdk/mplot/exprtree"
	"github.com/pdk/mplot/lexer"
	"github.com/pdk/mplot/token"
)

func parse(t *testing.T, input string) *exprtree.Node {
	t.Helper()

	toks, status := lexer.Lex(input, nil)
	if !status.OK() {
		t.Fatalf("%q: lex error: %s", input, status)
	}

	root, status := exprtree.Build(toks)
	if !status.OK() {
		t.Fatalf("%q: build error: %s", input, status)
	}
	return root
}

func TestImplicitMultiply(t *testing.T) {
	cases := map[string]string{
		"2(x+1)": "2 * ( x + 1 )",
		"2x":     "2 * x",
		"x(x+1)": "x * ( x + 1 )",
	}
	for in, want := range cases {
		root := parse(t, in)
		got := exprtree.Stringify(root, nil)
		if got != want {
			t.Errorf("%q: stringify = %q, want %q", in, got, want)
		}
	}
}

func TestSplitPrecedence(t *testing.T) {
	root := parse(t, "2+3*4")
	if root.Tok.Kind != token.Add {
		t.Fatalf("root kind = %v, want Add", root.Tok.Kind)
	}
	if root.Right.Tok.Kind != token.Multiply {
		t.Fatalf("right child kind = %v, want Multiply", root.Right.Tok.Kind)
	}
}

func TestMinMaxLifting(t *testing.T) {
	root := parse(t, "min(2,3)")
	if root.Tok.Kind != token.Min {
		t.Fatalf("root kind = %v, want Min", root.Tok.Kind)
	}
	if root.Left == nil || root.Right == nil {
		t.Fatalf("expected Min to have both children lifted from its Comma argument")
	}
	if root.Left.Tok.Number != 2 || root.Right.Tok.Number != 3 {
		t.Errorf("min children = %v, %v; want 2, 3", root.Left.Tok.Number, root.Right.Tok.Number)
	}
}

func TestEnclosingBracketsStrippedNotReemitted(t *testing.T) {
	root := parse(t, "(2+3)")
	if root.Bracketed {
		t.Errorf("outermost bracket hint should be cleared on the root")
	}
	got := exprtree.Stringify(root, nil)
	if got != "2 + 3" {
		t.Errorf("stringify = %q, want %q", got, "2 + 3")
	}
}

func TestNestedBracketsPreserved(t *testing.T) {
	root := parse(t, "2*(3+4)")
	got := exprtree.Stringify(root, nil)
	if got != "2 * ( 3 + 4 )" {
		t.Errorf("stringify = %q, want %q", got, "2 * ( 3 + 4 )")
	}
}

func TestMismatchedBrackets(t *testing.T) {
	_, status := exprtreeBuild(t, "(2+3")
	if status.Error != token.MismatchedBrackets {
		t.Errorf("error = %v, want MismatchedBrackets", status.Error)
	}
}

func TestMisplacedComma(t *testing.T) {
	_, status := exprtreeBuild(t, "2,3")
	if status.Error != token.MisplacedComma {
		t.Errorf("error = %v, want MisplacedComma", status.Error)
	}
}

func TestMissingArgument(t *testing.T) {
	_, status := exprtreeBuild(t, "2+")
	if status.Error != token.MissingArgument {
		t.Errorf("error = %v, want MissingArgument", status.Error)
	}
}

func exprtreeBuild(t *testing.T, input string) (*exprtree.Node, token.ParseStatus) {
	t.Helper()
	toks, status := lexer.Lex(input, nil)
	if !status.OK() {
		return nil, status
	}
	return exprtree.Build(toks)
}
