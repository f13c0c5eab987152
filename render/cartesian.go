package render

import (
	"github.com/pdk/mplot/registry"
)

// maxPixelExtent is the vertical/horizontal clip spec.md §4.4 names: a
// mapped coordinate further than this from the viewport drops the segment
// instead of drawing a wildly out-of-frame line.
const maxPixelExtent = 32000

// Cartesian paints one Cartesian function (XToY or YToX) into canvas
// according to p, scanning one pixel column (or row, for YToX) per sample
// and connecting consecutive successful samples with a line (spec.md
// §4.4).
func Cartesian(c Canvas, fn *registry.Function, p Params) {
	if fn.SubKind == registry.YToX {
		cartesianYToX(c, fn, p)
		return
	}
	cartesianXToY(c, fn, p)
}

func cartesianXToY(c Canvas, fn *registry.Function, p Params) {
	env := fn.Formula.Env()
	x := 0.0
	env.Bind("x", &x)
	defer env.Unbind("x")

	havePrev := false
	prevPX, prevPY := 0, 0

	for px := 0; px < p.Width; px++ {
		x = p.WorldX(px)

		if fn.MinEnabled && x < fn.Min {
			havePrev = false
			continue
		}
		if fn.MaxEnabled && x > fn.Max {
			havePrev = false
			continue
		}

		result := fn.Formula.Value()
		if !result.AllOK() {
			havePrev = false
			continue
		}

		py := p.PixelY(result.Value)
		if abs(py) > maxPixelExtent {
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

func cartesianYToX(c Canvas, fn *registry.Function, p Params) {
	env := fn.Formula.Env()
	y := 0.0
	env.Bind("y", &y)
	defer env.Unbind("y")

	havePrev := false
	prevPX, prevPY := 0, 0

	for py := 0; py < p.Height; py++ {
		y = p.WorldY(py)

		if fn.MinEnabled && y < fn.Min {
			havePrev = false
			continue
		}
		if fn.MaxEnabled && y > fn.Max {
			havePrev = false
			continue
		}

		result := fn.Formula.Value()
		if !result.AllOK() {
			havePrev = false
			continue
		}

		px := p.PixelX(result.Value)
		if abs(px) > maxPixelExtent {
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
