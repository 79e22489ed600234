package thali

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatFixed renders x with exactly digits decimal places, rounding the exact
// binary value of x half away from zero. NaN, infinities and magnitudes of
// 1e21 or more fall back to FormatNumber.
//
// EXAMPLES:
//
//	FormatFixed(250, 2)   -> "250.00"
//	FormatFixed(0.125, 2) -> "0.13"
//	FormatFixed(1.005, 2) -> "1.00" (1.005 is stored as 1.00499999...)
func FormatFixed(x float64, digits int32) string {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.Abs(x) >= 1e21 {
		return FormatNumber(x)
	}

	sign := ""
	if x < 0 {
		sign = "-"
		x = -x
	}

	// 1074 fractional digits is enough to spell out any float64 exactly.
	exact := strconv.FormatFloat(x, 'f', 1074, 64)
	d, err := decimal.NewFromString(exact)
	if err != nil {
		return sign + strconv.FormatFloat(x, 'f', int(digits), 64)
	}

	return sign + d.StringFixed(digits)
}

// FormatNumber renders x as its shortest round-trip decimal string, switching
// to exponent notation ("1e+21", "1.5e-7") outside [1e-6, 1e21).
func FormatNumber(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		return "0"
	}

	abs := math.Abs(x)
	if abs < 1e21 && abs >= 1e-6 {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}

	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(x, 'e', -1, 64), "e")
	return mantissa + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
}
