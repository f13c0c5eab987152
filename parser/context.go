// Package parser implements the stateful parser facade of spec component
// C4: a tree root, its originating source text, the last parse status, a
// per-instance variable environment, and a reference to shared,
// read-mostly process state (constants, number format, the function
// resolver) held as an explicit *Context rather than package globals
// (spec §9 design note on global state).
package parser

import (
	"math"

	"github.com/pdk/mplot/eval"
	"github.com/pdk/mplot/lexer"
)

// FunctionResolver is the capability object the registry implements in
// place of the original's two process-wide C-function hooks
// (`is_function`/`call_function`, spec §3, §9): IsFunction lets the lexer
// recognise a call site, CallFunction lets the evaluator dispatch it.
type FunctionResolver interface {
	lexer.Resolver
	eval.CallResolver
}

// NumberFormat selects how a folded Number node's value is rendered back to
// text by Parser.Expression.
type NumberFormat int

const (
	Auto NumberFormat = iota
	Fixed
	Scientific
)

func (f NumberFormat) String() string {
	switch f {
	case Fixed:
		return "fixed"
	case Scientific:
		return "scientific"
	default:
		return "auto"
	}
}

// Context is the process-wide parser state of spec.md §3: a constants
// table seeded with pi/e, the shared number format and precision, and the
// function resolver. It is read-mostly after construction, so many Parser
// instances may safely share one Context (spec §5).
type Context struct {
	Constants map[string]float64
	Format    NumberFormat
	Precision int
	Resolver  FunctionResolver
}

// NewContext returns a Context seeded with the standard constants (pi, e)
// and the Auto number format, bound to resolver (nil is valid: a plain
// calculator context with no external functions).
func NewContext(resolver FunctionResolver) *Context {
	return &Context{
		Constants: map[string]float64{
			"pi": math.Pi,
			"e":  math.E,
		},
		Format:    Auto,
		Precision: 6,
		Resolver:  resolver,
	}
}
