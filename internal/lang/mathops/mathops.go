// Package mathops implements the constant table and the 0/1/2/3-arity
// numeric operator table of the substitution engine's math
// mini-language, grounded on original_source/src/substitution.c's
// _math function.
package mathops

import (
	"math"
	"math/rand"
)

// Constant 0-arity values. TIMESTAMP is not in this table: the
// substitution engine reads the wall clock (time.Now) for it itself.
const (
	PI    = math.Pi
	Euler = 0.5772156649015328
	True  = 1.0
	False = 0.0
)

// Unary evaluates a 1-arity operator by name (as classified by
// token.Kind's String form; callers pass the operator's textual kind
// name to keep this package independent of the token package).
func Unary(op string, a float64) (float64, bool) {
	switch op {
	case "Sqrt":
		return math.Sqrt(a), true
	case "Cbrt":
		return math.Cbrt(a), true
	case "Abs":
		return math.Abs(a), true
	case "Ceil":
		return math.Ceil(a), true
	case "Floor":
		return math.Floor(a), true
	case "Round":
		return math.Round(a), true
	case "Cos":
		return math.Cos(a), true
	case "Sin":
		return math.Sin(a), true
	case "Tan":
		return math.Tan(a), true
	case "Acos":
		return math.Acos(a), true
	case "Asin":
		return math.Asin(a), true
	case "Atan":
		return math.Atan(a), true
	case "Cosh":
		return math.Cosh(a), true
	case "Sinh":
		return math.Sinh(a), true
	case "Ln":
		return math.Log(a), true
	case "Log10":
		return math.Log10(a), true
	default:
		return 0, false
	}
}

// Binary evaluates a 2-arity operator. rng is used only by Random and
// may be nil for any other operator.
func Binary(op string, a, b float64, rng *rand.Rand) (float64, bool) {
	switch op {
	case "Add":
		return a + b, true
	case "Sub":
		return a - b, true
	case "Mul":
		return a * b, true
	case "Div":
		return a / b, true
	case "Mod":
		return math.Mod(a, b), true
	case "Pow":
		return math.Pow(a, b), true
	case "Max":
		return math.Max(a, b), true
	case "Min":
		return math.Min(a, b), true
	case "Random":
		lo, hi := a, b
		if hi < lo {
			lo, hi = hi, lo
		}
		if rng == nil {
			rng = rand.New(rand.NewSource(1))
		}
		return lo + rng.Float64()*(hi-lo), true
	default:
		return 0, false
	}
}

// Ternary evaluates a 3-arity operator.
func Ternary(op string, a, b, c float64) (float64, bool) {
	switch op {
	case "Limit":
		return Limit(a, b, c), true
	case "Interpolate":
		return Interpolate(a, b, c), true
	default:
		return 0, false
	}
}

// Interpolate returns the value at ratio t between a and b (t=0 -> a,
// t=1 -> b), unclamped.
func Interpolate(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Limit clamps value v to the inclusive range [lo, hi].
func Limit(v, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
