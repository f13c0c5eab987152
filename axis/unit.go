// Package axis implements the adaptive axis-unit selection and grid/label
// layout of spec component C7: given a pixel scale and measured label
// widths, choose a world-space tick spacing that neither collides nor
// spreads absurdly far apart, then lay out gridlines and label positions
// from it.
package axis

import "math"

// ladderMantissas is one decade of the 1-2-2.5-5-10 tick-spacing ladder
// named in spec.md §4.5/GLOSSARY; the next decade's "1" is the same value
// as this decade's trailing "10" and is represented by wrapping, never
// duplicated.
var ladderMantissas = []float64{1, 2, 2.5, 5}

// LabelWidths reports the rendered pixel width of the two labels that
// would sit at the tick positions used to evaluate a candidate axis unit
// near the far extreme of the viewport.
type LabelWidths func(u float64) (w1, w2 float64)

const (
	tooCloseGapPx = 15
)

// SelectUnit searches the tick-spacing ladder for a unit whose rendered
// label gap is neither cramped nor sparse, starting from the scale-derived
// seed of spec.md §4.5 step 1. measure is queried once per candidate unit.
// The search always terminates: a direction flip (having just grown, the
// next candidate calls for shrinking, or vice versa) stops it immediately,
// and a hard iteration cap guards against any unexpected oscillation.
func SelectUnit(scale float64, measure LabelWidths) float64 {
	u := math.Pow(10, math.Ceil(-math.Log10(scale*0.5))+1)

	direction := 0 // 0 = undecided, +1 = growing, -1 = shrinking

	for i := 0; i < 64; i++ {
		w1, w2 := measure(u)
		gap := u*scale - (w1+w2)/4

		switch {
		case gap < tooCloseGapPx:
			if direction == -1 {
				return u
			}
			direction = 1
			u = stepUp(u)

		case gap > 5*(w1+w2)/2:
			if direction == 1 {
				return u
			}
			direction = -1
			u = stepDown(u)

		default:
			return u
		}
	}

	return u
}

// ManualUnit validates a caller-supplied override, bypassing the search
// (spec.md §4.5 step 4). Units below 10^-12 are rejected.
func ManualUnit(u float64) (float64, bool) {
	if u < 1e-12 {
		return 0, false
	}
	return u, true
}

func locate(u float64) (decade float64, idx int) {
	decade = math.Pow(10, math.Floor(math.Log10(u)))
	mantissa := u / decade

	best, bestDiff := 0, math.Inf(1)
	for i, m := range ladderMantissas {
		diff := math.Abs(mantissa - m)
		if diff < bestDiff {
			bestDiff, best = diff, i
		}
	}
	return decade, best
}

func stepUp(u float64) float64 {
	decade, idx := locate(u)
	idx++
	if idx >= len(ladderMantissas) {
		idx = 0
		decade *= 10
	}
	return decade * ladderMantissas[idx]
}

func stepDown(u float64) float64 {
	decade, idx := locate(u)
	idx--
	if idx < 0 {
		idx = len(ladderMantissas) - 1
		decade /= 10
	}
	return decade * ladderMantissas[idx]
}
