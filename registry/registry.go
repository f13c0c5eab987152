// Package registry implements the function registry of spec component C5:
// a named collection of Cartesian/Parametric/Implicit functions, name
// generation and identifier enforcement, and the FunctionResolver
// capability object that closes the loop back into the parser package
// (spec §9's replacement for the original's process-wide C-function
// hooks).
package registry

import (
	"fmt"
	"image/color"

	"github.com/pdk/mplot/parser"
)

// Registry owns every Function exclusively: it is the only code that
// constructs or destroys one. One Registry corresponds to the original's
// process-wide singleton, but is an ordinary value here -- callers decide
// how many to keep alive.
type Registry struct {
	ctx          *parser.Context
	funcs        map[string]*Function
	order        []string
	recursionErr bool
}

// New returns an empty Registry with its own parser.Context, whose
// FunctionResolver is the registry itself.
func New() *Registry {
	r := &Registry{funcs: make(map[string]*Function)}
	r.ctx = parser.NewContext(r)
	return r
}

// Context returns the shared parser context every owned function's
// formula parsers are constructed against.
func (r *Registry) Context() *parser.Context {
	return r.ctx
}

// RecursionDetected reports whether the registry-wide recursion flag has
// been set by a failed no-replace bind during evaluation (spec.md §5).
func (r *Registry) RecursionDetected() bool {
	return r.recursionErr
}

// ClearRecursionFlag resets the recursion flag; call before each render
// pass (spec.md §4.4).
func (r *Registry) ClearRecursionFlag() {
	r.recursionErr = false
}

// Add creates a new Function of kind, with name if non-empty (validated
// and required unique) or an auto-generated name otherwise.
func (r *Registry) Add(kind Kind, name string) (*Function, error) {
	if name == "" {
		name = generateName(r.taken())
	} else if err := r.checkNewName(name); err != nil {
		return nil, err
	}

	fn := &Function{
		Name:    name,
		Kind:    kind,
		Enabled: true,
		Color:   color.RGBA{R: 0, G: 0, B: 0, A: 255},
		Width:   1,
	}

	switch kind {
	case Cartesian:
		fn.Formula = parser.New(r.ctx)
	case Parametric:
		fn.XFormula = parser.New(r.ctx)
		fn.YFormula = parser.New(r.ctx)
		fn.ParamStep = 0.01
	case Implicit:
		fn.Formula = parser.New(r.ctx)
		fn.DrawAccuracy = 4
	}

	r.funcs[name] = fn
	r.order = append(r.order, name)
	return fn, nil
}

// Remove deletes the named function, if present.
func (r *Registry) Remove(name string) {
	if _, ok := r.funcs[name]; !ok {
		return
	}
	delete(r.funcs, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Clear removes every function.
func (r *Registry) Clear() {
	r.funcs = make(map[string]*Function)
	r.order = nil
}

// Rename renames oldName to newName, validating identifier rules and
// uniqueness.
func (r *Registry) Rename(oldName, newName string) error {
	fn, ok := r.funcs[oldName]
	if !ok {
		return fmt.Errorf("registry: no function named %q", oldName)
	}
	if newName == oldName {
		return nil
	}
	if err := r.checkNewName(newName); err != nil {
		return err
	}

	delete(r.funcs, oldName)
	fn.Name = newName
	r.funcs[newName] = fn
	for i, n := range r.order {
		if n == oldName {
			r.order[i] = newName
			break
		}
	}
	return nil
}

// ListNames returns every function name in registry order.
func (r *Registry) ListNames() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// ListFunctions returns every Function in registry order (render order,
// spec.md §5).
func (r *Registry) ListFunctions() []*Function {
	out := make([]*Function, 0, len(r.order))
	for _, n := range r.order {
		out = append(out, r.funcs[n])
	}
	return out
}

// Find returns the named function, if present.
func (r *Registry) Find(name string) (*Function, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

// ReparseAll re-runs every owned function's formula parser(s) against
// their stored source text.
func (r *Registry) ReparseAll() {
	for _, fn := range r.funcs {
		switch fn.Kind {
		case Cartesian, Implicit:
			if fn.Formula != nil {
				fn.Formula.Reparse()
			}
		case Parametric:
			if fn.XFormula != nil {
				fn.XFormula.Reparse()
			}
			if fn.YFormula != nil {
				fn.YFormula.Reparse()
			}
		}
	}
}

// DisableAll sets every function's Enabled flag to false -- the response
// to a detected recursion (spec.md §4.4).
func (r *Registry) DisableAll() {
	for _, fn := range r.funcs {
		fn.Enabled = false
	}
}

func (r *Registry) taken() map[string]bool {
	t := make(map[string]bool, len(r.funcs))
	for n := range r.funcs {
		t[n] = true
	}
	return t
}

func (r *Registry) checkNewName(name string) error {
	if !isValidName(name) {
		return fmt.Errorf("registry: invalid name %q: must be lowercase letters and '_' after the first character", name)
	}
	if _, taken := r.funcs[name]; taken {
		return fmt.Errorf("registry: name %q already taken", name)
	}
	return nil
}
