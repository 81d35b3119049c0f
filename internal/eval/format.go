package eval

import (
	"math"
	"strconv"
	"strings"
)

// DefaultPrecision is the number of significant digits used for display.
const DefaultPrecision = 4

// Format renders a value for display with prec significant digits.
// Very small and very large magnitudes switch to scientific notation;
// zero is always "0".
func Format(v float64, prec int) string {
	if prec <= 0 {
		prec = DefaultPrecision
	}
	if v == 0 {
		return "0"
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		// Evaluate never produces these; kept so Format is total.
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	a := math.Abs(v)
	if a < 1e-4 || a >= 1e9 {
		return strconv.FormatFloat(v, 'e', prec, 64)
	}
	// Round to prec significant digits via the scientific form, then move
	// the decimal point textually. Re-multiplying through a float power of
	// ten would reintroduce rounding error.
	s := strconv.FormatFloat(v, 'e', prec-1, 64)
	mant, expStr, _ := strings.Cut(s, "e")
	exp, _ := strconv.Atoi(expStr)
	neg := strings.HasPrefix(mant, "-")
	mant = strings.TrimPrefix(mant, "-")
	digits := strings.Replace(mant, ".", "", 1)

	var b strings.Builder
	point := exp + 1 // digits before the decimal point
	switch {
	case point >= len(digits):
		b.WriteString(digits)
		b.WriteString(strings.Repeat("0", point-len(digits)))
	case point <= 0:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -point))
		b.WriteString(digits)
	default:
		b.WriteString(digits[:point])
		b.WriteByte('.')
		b.WriteString(digits[point:])
	}

	out := b.String()
	if strings.Contains(out, ".") {
		out = strings.TrimRight(out, "0")
		out = strings.TrimSuffix(out, ".")
	}
	if neg {
		out = "-" + out
	}
	return out
}

// FormatDefault renders a value with the default display precision.
func FormatDefault(v float64) string {
	return Format(v, DefaultPrecision)
}
