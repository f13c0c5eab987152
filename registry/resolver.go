package registry

import (
	"strings"

	"github.com/pdk/mplot/parser"
)

// IsFunction reports whether name is callable as an ExternalFunction: a
// bare Cartesian function's name, or a Parametric function's name suffixed
// with "_x"/"_y" (spec.md §4.4). It is the lexer-facing half of the
// FunctionResolver capability object named in spec §9.
func (r *Registry) IsFunction(name string) bool {
	_, _, _, ok := r.resolveCall(name)
	return ok
}

// CallFunction dispatches one call of an ExternalFunction site: it binds
// the target formula's scanning variable to arg using the environment's
// no-replace semantics, evaluates, and unbinds on every exit path. A failed
// bind means the target is already mid-evaluation -- a cycle -- and sets
// the registry-wide recursion flag (spec.md §4.4, §5).
func (r *Registry) CallFunction(name string, arg float64) (float64, bool) {
	_, varName, formula, ok := r.resolveCall(name)
	if !ok {
		return 0, false
	}

	ref := arg
	if !formula.Env().Bind(varName, &ref) {
		r.recursionErr = true
		return 0, false
	}
	defer formula.Env().Unbind(varName)

	result := formula.Value()
	if !result.AllOK() {
		return 0, false
	}
	return result.Value, true
}

// resolveCall maps an ExternalFunction call-site name to the owning
// Function, the variable name to bind it through, and the specific formula
// parser to evaluate.
func (r *Registry) resolveCall(name string) (*Function, string, *parser.Parser, bool) {
	if fn, ok := r.funcs[name]; ok && fn.Kind == Cartesian {
		v := "x"
		if fn.SubKind == YToX {
			v = "y"
		}
		return fn, v, fn.Formula, true
	}

	if base, ok := strings.CutSuffix(name, "_x"); ok {
		if fn, ok := r.funcs[base]; ok && fn.Kind == Parametric {
			return fn, "t", fn.XFormula, true
		}
	}
	if base, ok := strings.CutSuffix(name, "_y"); ok {
		if fn, ok := r.funcs[base]; ok && fn.Kind == Parametric {
			return fn, "t", fn.YFormula, true
		}
	}

	return nil, "", nil, false
}
