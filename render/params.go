package render

// Params carries the viewport a renderer paints one function into: the
// world-to-pixel scale (pixels per world unit), the world x at pixel column
// 0 and the world y at the bottom edge (pixel row Height), and the canvas
// size in pixels. Renderers take this explicitly
// rather than reading ambient globals, adapted from original_source's
// FunctionPaintParams (SPEC_FULL.md §12).
type Params struct {
	Scale  float64
	XMin   float64
	YMin   float64
	Width  int
	Height int
}

// PixelX maps a world-space x to a pixel column.
func (p Params) PixelX(x float64) int {
	return int((x - p.XMin) * p.Scale)
}

// WorldX maps a pixel column back to world-space x.
func (p Params) WorldX(px int) float64 {
	return p.XMin + float64(px)/p.Scale
}

// PixelY maps a world-space y to a pixel row; pixel rows grow downward
// while world y grows upward.
func (p Params) PixelY(y float64) int {
	return p.Height - int((y-p.YMin)*p.Scale)
}

// WorldY maps a pixel row back to world-space y.
func (p Params) WorldY(py int) float64 {
	return p.YMin + float64(p.Height-py)/p.Scale
}
