package registry

import "github.com/pdk/mplot/parser"

// VerifyError is the static free-variable check's outcome (spec.md §7,
// granularity supplemented from original_source/function.h's VerifyError
// enum -- see SPEC_FULL.md §12).
type VerifyError int

const (
	NoVerifyError VerifyError = iota
	MissingVariable
	UnresolvedVariable
	OtherVerifyError
)

func (e VerifyError) String() string {
	switch e {
	case NoVerifyError:
		return "ok"
	case MissingVariable:
		return "missing variable"
	case UnresolvedVariable:
		return "unresolved variable"
	case OtherVerifyError:
		return "other error"
	default:
		return "unknown verify error"
	}
}

// Verify reparses every owned function, then statically checks name's free
// variables against its kind: an Implicit formula needs at least one of
// x/y and no foreign name; a Cartesian formula's only free variable must be
// its sub-kind's scanning variable; a Parametric formula's only free
// variable must be t.
func (r *Registry) Verify(name string) VerifyError {
	r.ReparseAll()

	fn, ok := r.funcs[name]
	if !ok {
		return OtherVerifyError
	}

	switch fn.Kind {
	case Cartesian:
		return verifySingle(fn.Formula, fn.expectedVariable())
	case Implicit:
		return verifyImplicit(fn.Formula)
	case Parametric:
		if v := verifySingle(fn.XFormula, "t"); v != NoVerifyError {
			return v
		}
		return verifySingle(fn.YFormula, "t")
	default:
		return OtherVerifyError
	}
}

func verifySingle(p *parser.Parser, want string) VerifyError {
	if p == nil {
		return OtherVerifyError
	}

	vars := p.VariablesInExpression()
	if len(vars) == 0 {
		return MissingVariable
	}
	for _, v := range vars {
		if v != want {
			return UnresolvedVariable
		}
	}
	return NoVerifyError
}

func verifyImplicit(p *parser.Parser) VerifyError {
	if p == nil {
		return OtherVerifyError
	}

	vars := p.VariablesInExpression()
	if len(vars) == 0 {
		return MissingVariable
	}
	for _, v := range vars {
		if v != "x" && v != "y" {
			return UnresolvedVariable
		}
	}
	return NoVerifyError
}
