package registry

// isValidName applies the corrected identifier predicate from spec §9: a
// non-empty run of lowercase letters, with '_' allowed after the first
// character. The original C++ source's equivalent check
// (`(ch>='a' || ch<='z') || (ch=='_' && i!=0)`) is a standing `||` bug that
// is trivially true for any character; this is the intended tightening,
// and it governs every identifier-validating path in this package:
// function names and renames. The call-site lookups in resolver.go match
// names against the registry map and do not call it.
func isValidName(name string) bool {
	if name == "" {
		return false
	}
	for i, ch := range name {
		if ch == '_' && i > 0 {
			continue
		}
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}
