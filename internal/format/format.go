// Package format renders conversion results and unit names for display.
package format

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AppendFloat appends v to b with prec digits after the decimal point.
// If prec is negative, the shortest representation that round-trips is used.
func AppendFloat(b []byte, v float64, prec int) []byte {
	if prec < 0 {
		return strconv.AppendFloat(b, v, 'g', -1, 64)
	}
	return strconv.AppendFloat(b, v, 'f', prec, 64)
}

// Float returns v formatted as by [AppendFloat].
func Float(v float64, prec int) string {
	return string(AppendFloat(nil, v, prec))
}

// Round rounds v to prec digits after the decimal point. If prec is negative
// or v is not finite, v is returned unchanged.
func Round(v float64, prec int) float64 {
	if prec < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', prec, 64), 64)
	if err != nil {
		return v
	}
	return r
}

var title = cases.Title(language.English)

// Label returns a human readable name for a quantity or unit name,
// e.g. "square_meter" -> "Square Meter".
func Label(name string) string {
	return title.String(strings.ReplaceAll(name, "_", " "))
}
