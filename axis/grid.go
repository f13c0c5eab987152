package axis

import "math"

// GridLines returns the world-space coordinates of every tick between
// yMin and yMax, spaced by u and starting at floor(yMin/u)*u (spec.md
// §4.5).
func GridLines(yMin, yMax, u float64) []float64 {
	if u <= 0 {
		return nil
	}

	start := math.Floor(yMin/u) * u
	var lines []float64
	for v := start; v <= yMax+u*1e-9; v += u {
		lines = append(lines, v)
	}
	return lines
}

// LabelPosition selects where an axis's labels are drawn: adjacent to the
// axis itself when it is inside the viewport, or along the viewport border
// when the axis has scrolled off-screen (spec.md §4.5).
type LabelPosition int

const (
	AdjacentToAxis LabelPosition = iota
	BorderAligned
)

// ChooseLabelPosition picks the label position for one axis given whether
// it is currently within [0, extent) of the viewport.
func ChooseLabelPosition(axisPixel float64, extent int) LabelPosition {
	if axisPixel >= 0 && axisPixel < float64(extent) {
		return AdjacentToAxis
	}
	return BorderAligned
}
