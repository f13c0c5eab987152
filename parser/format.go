package parser

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/pdk/mplot/exprtree"
)

// numberFormatter builds the exprtree.NumberFormatter driven by a Context's
// Format/Precision, used to stringify folded Number leaves when printing an
// expression back to text (spec.md §4.6, §6).
func numberFormatter(ctx *Context) exprtree.NumberFormatter {
	if ctx == nil {
		return exprtree.DefaultNumberFormatter
	}

	switch ctx.Format {
	case Fixed:
		precision := ctx.Precision
		return func(v float64) string {
			return decimal.NewFromFloat(v).StringFixed(int32(precision))
		}
	case Scientific:
		precision := ctx.Precision
		return func(v float64) string {
			return strconv.FormatFloat(v, 'e', precision, 64)
		}
	default:
		return exprtree.DefaultNumberFormatter
	}
}
