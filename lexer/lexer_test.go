package lexer_test

import (
	"testing"

	"github.com/pdk/mplot/lexer"
	"github.com/pdk/mplot/token"
)

func TestNumbers(t *testing.T) {
	checkKinds(t, "3", token.Number)
	checkKinds(t, ".5", token.Number)
	checkKinds(t, "3.", token.Number)
	checkKinds(t, "1e10", token.Number)
	checkKinds(t, "1.5e-3", token.Number)
}

func TestInvalidNumbers(t *testing.T) {
	checkError(t, "1..2", token.InvalidNumber)
	checkError(t, "1e2e3", token.InvalidNumber)
	checkError(t, "1e", token.InvalidNumber)
}

func TestOperators(t *testing.T) {
	checkKinds(t, "2+3*4",
		token.Number, token.Add, token.Number, token.Multiply, token.Number)
	checkKinds(t, "(x)",
		token.LeftBracket, token.Identifier, token.RightBracket)
	checkKinds(t, "min(2,3)",
		token.Min, token.LeftBracket, token.Number, token.Comma, token.Number, token.RightBracket)
}

func TestIdentifierAliases(t *testing.T) {
	checkKinds(t, "arcsin(x)", token.Asin, token.LeftBracket, token.Identifier, token.RightBracket)
	checkKinds(t, "tg(x)", token.Tan, token.LeftBracket, token.Identifier, token.RightBracket)
}

func TestIdentifierCaseFolded(t *testing.T) {
	toks, status := lexer.Lex("SIN(X)", nil)
	if !status.OK() {
		t.Fatalf("unexpected error: %s", status)
	}
	if toks[2].Name != "x" {
		t.Errorf("expected identifier folded to lower case, got %q", toks[2].Name)
	}
}

func TestInvalidCharacter(t *testing.T) {
	checkError(t, "2 @ 3", token.InvalidCharacter)
}

type stubResolver map[string]bool

func (s stubResolver) IsFunction(name string) bool {
	return s[name]
}

func TestExternalFunctionResolution(t *testing.T) {
	toks, status := lexer.Lex("f(x)", stubResolver{"f": true})
	if !status.OK() {
		t.Fatalf("unexpected error: %s", status)
	}
	if toks[0].Kind != token.ExternalFunction {
		t.Errorf("expected ExternalFunction, got %v", toks[0].Kind)
	}
}

func checkKinds(t *testing.T, input string, kinds ...token.Kind) {
	t.Helper()

	toks, status := lexer.Lex(input, nil)
	if !status.OK() {
		t.Fatalf("%q: unexpected error: %s", input, status)
	}

	if len(toks) != len(kinds) {
		t.Fatalf("%q: expected %d tokens, got %d (%v)", input, len(kinds), len(toks), toks)
	}

	for i, k := range kinds {
		if toks[i].Kind != k {
			t.Errorf("%q: token %d: expected kind %v, got %v", input, i, k, toks[i].Kind)
		}
	}
}

func checkError(t *testing.T, input string, want token.ParseError) {
	t.Helper()

	_, status := lexer.Lex(input, nil)
	if status.Error != want {
		t.Errorf("%q: expected error %v, got %v", input, want, status.Error)
	}
}
