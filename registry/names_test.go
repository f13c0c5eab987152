package registry

import "testing"

func TestGenerateNameSequence(t *testing.T) {
	taken := map[string]bool{}
	want := []string{"f", "g", "h"}
	for _, w := range want {
		got := generateName(taken)
		if got != w {
			t.Fatalf("generateName = %q, want %q", got, w)
		}
		taken[got] = true
	}
}

func TestGenerateNameSkipsTaken(t *testing.T) {
	taken := map[string]bool{"f": true, "g": true}
	got := generateName(taken)
	if got != "h" {
		t.Errorf("generateName = %q, want %q", got, "h")
	}
}

func TestGenerateNameWrapsToTwoLetters(t *testing.T) {
	taken := map[string]bool{}
	for _, ch := range "fghijklmnopqrstuvwxyzabcde" {
		taken[string(ch)] = true
	}
	got := generateName(taken)
	if got != "aa" {
		t.Errorf("generateName after exhausting single letters = %q, want %q", got, "aa")
	}
}

func TestIsValidName(t *testing.T) {
	valid := []string{"f", "my_func", "a_b_c"}
	invalid := []string{"", "F", "1f", "my-func", "_f"}

	for _, n := range valid {
		if !isValidName(n) {
			t.Errorf("isValidName(%q) = false, want true", n)
		}
	}
	for _, n := range invalid {
		if isValidName(n) {
			t.Errorf("isValidName(%q) = true, want false", n)
		}
	}
}
