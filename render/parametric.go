package render

import (
	"github.com/pdk/mplot/registry"
)

// Parametric sweeps t from fn.MinParam to fn.MaxParam in steps of
// fn.ParamStep, evaluating both component formulas at each step and
// connecting consecutive valid samples (spec.md §4.4). It is a no-op if
// the parameter range is empty or either formula failed to parse.
func Parametric(c Canvas, fn *registry.Function, p Params) {
	if fn.MinParam >= fn.MaxParam || fn.ParamStep <= 0 {
		return
	}
	if !fn.XFormula.Status().OK() || !fn.YFormula.Status().OK() {
		return
	}

	tx, ty := 0.0, 0.0
	fn.XFormula.Env().Bind("t", &tx)
	fn.YFormula.Env().Bind("t", &ty)
	defer fn.XFormula.Env().Unbind("t")
	defer fn.YFormula.Env().Unbind("t")

	havePrev := false
	prevPX, prevPY := 0, 0

	for t := fn.MinParam; t <= fn.MaxParam; t += fn.ParamStep {
		tx, ty = t, t

		xr := fn.XFormula.Value()
		yr := fn.YFormula.Value()
		if !xr.AllOK() || !yr.AllOK() {
			havePrev = false
			continue
		}

		px, py := p.PixelX(xr.Value), p.PixelY(yr.Value)
		if abs(px) > maxPixelExtent || abs(py) > maxPixelExtent {
			havePrev = false
			continue
		}

		if havePrev {
			c.DrawLine(prevPX, prevPY, px, py, fn.Color, fn.Width)
		} else {
			c.SetPixel(px, py, fn.Color)
		}

		prevPX, prevPY = px, py
		havePrev = true
	}
}
