package render

import (
	"math"

	"github.com/pdk/mplot/registry"
)

// maxNewtonSteps bounds the Newton iterations attempted inside one
// draw-accuracy block before giving up on that block (spec.md §4.4 guard
// (d)).
const maxNewtonSteps = 5

// Implicit traces fn's f(x,y)=0 curve one pixel column at a time,
// bottom-to-top, using Newton's method to jump toward the next row where
// |f| is within the resolving threshold tau = 0.5/scale (spec.md §4.4, the
// implicit-curve tracing algorithm). Pixel rows are addressed through a
// "row" counter that grows upward from the bottom of the viewport, mapped
// to the canvas's top-down pixel coordinate only when painting.
func Implicit(c Canvas, fn *registry.Function, p Params) {
	if !fn.Formula.Status().OK() {
		return
	}

	env := fn.Formula.Env()
	x, y := 0.0, 0.0
	env.Bind("x", &x)
	env.Bind("y", &y)
	defer env.Unbind("x")
	defer env.Unbind("y")

	tau := 0.5 / p.Scale
	blockSize := fn.DrawAccuracy
	if blockSize <= 0 {
		blockSize = 1
	}

	for px := 0; px < p.Width; px++ {
		x = p.WorldX(px)
		implicitColumn(c, fn, p, px, blockSize, tau, &y)
	}
}

func implicitColumn(c Canvas, fn *registry.Function, p Params, px, blockSize int, tau float64, y *float64) {
	doneY := 0
	jumps := 0

	for row := 0; row < p.Height; {
		*y = p.YMin + float64(row)/p.Scale

		f1 := fn.Formula.Value()
		if !f1.AllOK() {
			row++
			continue
		}

		if math.Abs(f1.Value) <= tau {
			c.SetPixel(px, p.Height-1-row, fn.Color)
			doneY = row + 1
			jumps = 0
			row += blockSize
			continue
		}

		worldY := p.YMin + float64(row)/p.Scale
		*y = worldY + tau
		f2 := fn.Formula.Value()
		if !f2.AllOK() {
			row++
			continue
		}

		deriv := (f2.Value - f1.Value) / tau
		if deriv == 0 {
			row++
			continue
		}

		yNew := worldY - f1.Value/deriv
		rowNew := int((yNew - p.YMin) * p.Scale)

		jumps++
		// Skipping a block also moves the watermark past the current row,
		// so a later Newton step cannot fall back into an abandoned block.
		switch {
		case rowNew < doneY:
			doneY = row + 1
			row += blockSize
			jumps = 0
		case rowNew < row-blockSize:
			doneY = row + 1
			row += blockSize
			jumps = 0
		case rowNew > row+blockSize:
			doneY = row + 1
			row += blockSize
			jumps = 0
		case jumps > maxNewtonSteps:
			doneY = row + 1
			row += blockSize
			jumps = 0
		default:
			row = rowNew
		}
	}
}
