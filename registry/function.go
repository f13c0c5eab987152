package registry

import (
	"image/color"

	"github.com/pdk/mplot/parser"
)

// Kind identifies which of the three function families a Function belongs
// to (spec.md §3).
type Kind int

const (
	Cartesian Kind = iota
	Parametric
	Implicit
)

func (k Kind) String() string {
	switch k {
	case Cartesian:
		return "cartesian"
	case Parametric:
		return "parametric"
	case Implicit:
		return "implicit"
	default:
		return "unknown"
	}
}

// CartesianSubKind distinguishes y=f(x) from x=f(y) -- it swaps the roles
// of the scanning axis and the dependent axis.
type CartesianSubKind int

const (
	XToY CartesianSubKind = iota
	YToX
)

func (s CartesianSubKind) String() string {
	if s == YToX {
		return "y_to_x"
	}
	return "x_to_y"
}

// Function is one registry entry. Only the registry ever constructs one;
// every other piece of code holds it through a *Function obtained from the
// registry (the Go expression of the original's "no public copy
// constructor" discipline -- see SPEC_FULL.md §12).
type Function struct {
	Name    string
	Kind    Kind
	Enabled bool
	Color   color.RGBA
	Width   float64

	// Cartesian fields.
	SubKind    CartesianSubKind
	Formula    *parser.Parser
	MinEnabled bool
	Min        float64
	MaxEnabled bool
	Max        float64

	// Parametric fields.
	XFormula  *parser.Parser
	YFormula  *parser.Parser
	MinParam  float64
	MaxParam  float64
	ParamStep float64

	// Implicit fields (reuses Formula for the single f(x,y) parser).
	DrawAccuracy int
}

// expectedVariable returns the single free variable name a Cartesian
// formula is expected to depend on, per its sub-kind. It returns "" for
// Implicit formulas (which may use x and y) and for Parametric ones (whose
// two formulas always expect "t").
func (f *Function) expectedVariable() string {
	switch f.Kind {
	case Cartesian:
		if f.SubKind == YToX {
			return "y"
		}
		return "x"
	default:
		return ""
	}
}
