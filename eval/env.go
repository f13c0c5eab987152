package eval

// Env is a parser instance's variable environment: a mapping from
// identifier to a pointer to a live number. Variables are bound by
// reference -- Env does not own the storage; callers (renderers) mutate the
// bound cell between successive evaluations (spec §3, §5).
type Env struct {
	vars map[string]*float64
}

// NewEnv returns an empty environment.
func NewEnv() *Env {
	return &Env{vars: make(map[string]*float64)}
}

// Bind associates name with ref, but only if name is not already bound --
// the "no-replace bind" used for recursion detection (spec §5, §9). It
// returns false, leaving the environment untouched, if name is already
// bound.
func (e *Env) Bind(name string, ref *float64) bool {
	if _, bound := e.vars[name]; bound {
		return false
	}
	e.vars[name] = ref
	return true
}

// Unbind removes name's binding, if any. Safe to call on an unbound name.
func (e *Env) Unbind(name string) {
	delete(e.vars, name)
}

// Lookup returns the pointer bound to name, or false if unbound.
func (e *Env) Lookup(name string) (*float64, bool) {
	ref, ok := e.vars[name]
	return ref, ok
}

// IsBound reports whether name currently has a binding.
func (e *Env) IsBound(name string) bool {
	_, ok := e.vars[name]
	return ok
}
