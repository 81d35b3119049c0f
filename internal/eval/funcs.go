package eval

import (
	"math"
	"math/rand"
	"strings"
)

// function is an allow-listed math function with a fixed arity.
type function struct {
	arity int
	call  func(args []float64) float64
}

var functions = map[string]function{
	"sqrt":  {1, func(a []float64) float64 { return math.Sqrt(a[0]) }},
	"cbrt":  {1, func(a []float64) float64 { return math.Cbrt(a[0]) }},
	"abs":   {1, func(a []float64) float64 { return math.Abs(a[0]) }},
	"sign":  {1, sign},
	"floor": {1, func(a []float64) float64 { return math.Floor(a[0]) }},
	"ceil":  {1, func(a []float64) float64 { return math.Ceil(a[0]) }},
	"round": {1, func(a []float64) float64 { return math.Round(a[0]) }},
	"trunc": {1, func(a []float64) float64 { return math.Trunc(a[0]) }},

	"sin":   {1, func(a []float64) float64 { return math.Sin(a[0]) }},
	"cos":   {1, func(a []float64) float64 { return math.Cos(a[0]) }},
	"tan":   {1, func(a []float64) float64 { return math.Tan(a[0]) }},
	"asin":  {1, func(a []float64) float64 { return math.Asin(a[0]) }},
	"acos":  {1, func(a []float64) float64 { return math.Acos(a[0]) }},
	"atan":  {1, func(a []float64) float64 { return math.Atan(a[0]) }},
	"atan2": {2, func(a []float64) float64 { return math.Atan2(a[0], a[1]) }},

	"sinh":  {1, func(a []float64) float64 { return math.Sinh(a[0]) }},
	"cosh":  {1, func(a []float64) float64 { return math.Cosh(a[0]) }},
	"tanh":  {1, func(a []float64) float64 { return math.Tanh(a[0]) }},
	"asinh": {1, func(a []float64) float64 { return math.Asinh(a[0]) }},
	"acosh": {1, func(a []float64) float64 { return math.Acosh(a[0]) }},
	"atanh": {1, func(a []float64) float64 { return math.Atanh(a[0]) }},

	"log":   {1, func(a []float64) float64 { return math.Log(a[0]) }},
	"ln":    {1, func(a []float64) float64 { return math.Log(a[0]) }}, // alias for log
	"log10": {1, func(a []float64) float64 { return math.Log10(a[0]) }},
	"log2":  {1, func(a []float64) float64 { return math.Log2(a[0]) }},
	"exp":   {1, func(a []float64) float64 { return math.Exp(a[0]) }},
	"expm1": {1, func(a []float64) float64 { return math.Expm1(a[0]) }},

	"pow": {2, func(a []float64) float64 { return math.Pow(a[0], a[1]) }},
	"min": {2, func(a []float64) float64 { return math.Min(a[0], a[1]) }},
	"max": {2, func(a []float64) float64 { return math.Max(a[0], a[1]) }},

	"random": {0, func([]float64) float64 { return rand.Float64() }},
}

var constants = map[string]float64{
	"PI":      math.Pi,
	"E":       math.E,
	"LN2":     math.Ln2,
	"LN10":    math.Log(10),
	"LOG2E":   math.Log2E,
	"LOG10E":  math.Log10E,
	"SQRT2":   math.Sqrt2,
	"SQRT1_2": math.Sqrt(0.5),
}

// lookupConstant resolves a constant name. PI and E match case-insensitively;
// every other constant is case-sensitive. The asymmetry is kept on purpose:
// existing content relies on it.
func lookupConstant(name string) (float64, bool) {
	if v, ok := constants[name]; ok {
		return v, true
	}
	switch strings.ToUpper(name) {
	case "PI":
		return math.Pi, true
	case "E":
		return math.E, true
	}
	return 0, false
}

func sign(a []float64) float64 {
	switch {
	case a[0] > 0:
		return 1
	case a[0] < 0:
		return -1
	default:
		return a[0] // preserves ±0 and NaN
	}
}
