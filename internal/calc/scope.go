package calc

import (
	"math"

	"github.com/JackWReid/reckon/internal/mathexpr"
)

// AngleMode selects how trigonometric functions interpret angles.
type AngleMode int

const (
	Radians AngleMode = iota
	Degrees
)

func (m AngleMode) String() string {
	if m == Degrees {
		return "DEG"
	}
	return "RAD"
}

// Toggle returns the other mode.
func (m AngleMode) Toggle() AngleMode {
	if m == Degrees {
		return Radians
	}
	return Degrees
}

const degToRad = math.Pi / 180

// BuildScope returns the identifiers visible to an evaluation.
func BuildScope(mode AngleMode, ans float64) mathexpr.Scope {
	deg := mode == Degrees
	in := func(fn func(float64) float64) mathexpr.Func {
		return mathexpr.Unary(func(x float64) float64 {
			if deg {
				x *= degToRad
			}
			return fn(x)
		})
	}
	out := func(fn func(float64) float64) mathexpr.Func {
		return mathexpr.Unary(func(x float64) float64 {
			if deg {
				return fn(x) / degToRad
			}
			return fn(x)
		})
	}

	return mathexpr.Scope{
		Vars: map[string]float64{
			"Ans":      ans,
			"pi":       math.Pi,
			"e":        math.E,
			"NaN":      math.NaN(),
			"Infinity": math.Inf(1),
		},
		Funcs: map[string]mathexpr.Func{
			"sin":   in(math.Sin),
			"cos":   in(math.Cos),
			"tan":   in(math.Tan),
			"asin":  out(math.Asin),
			"acos":  out(math.Acos),
			"atan":  out(math.Atan),
			"sinh":  mathexpr.Unary(math.Sinh),
			"cosh":  mathexpr.Unary(math.Cosh),
			"tanh":  mathexpr.Unary(math.Tanh),
			"sqrt":  mathexpr.Unary(math.Sqrt),
			"ln":    mathexpr.Unary(math.Log),
			"log10": mathexpr.Unary(math.Log10),
			"abs":   mathexpr.Unary(math.Abs),
			"exp":   mathexpr.Unary(math.Exp),
			"factorial": {Arity: 1, Fn: func(a ...float64) (float64, error) {
				return Factorial(a[0])
			}},
			"comb": {Arity: 2, Fn: func(a ...float64) (float64, error) {
				return Comb(a[0], a[1])
			}},
			"logb": {Arity: 2, Fn: func(a ...float64) (float64, error) {
				return LogBase(a[0], a[1])
			}},
		},
	}
}

// Factorial returns n! for non-negative integers, NaN for non-integers and
// ErrNegativeFactorial for negative input. Results beyond float64 range
// are +Inf.
func Factorial(n float64) (float64, error) {
	if n < 0 {
		return 0, ErrNegativeFactorial
	}
	if n != math.Trunc(n) {
		return math.NaN(), nil
	}
	if n > 170 {
		return math.Inf(1), nil
	}
	return factorial(int(n)), nil
}

func factorial(n int) float64 {
	if n <= 1 {
		return 1
	}
	return float64(n) * factorial(n-1)
}

// Comb returns the number of ways to choose k items from n.
func Comb(n, k float64) (float64, error) {
	fn, err := Factorial(n)
	if err != nil {
		return 0, err
	}
	fk, err := Factorial(k)
	if err != nil {
		return 0, err
	}
	fnk, err := Factorial(n - k)
	if err != nil {
		return 0, err
	}
	return fn / (fk * fnk), nil
}

// LogBase returns the base-b logarithm of x.
func LogBase(x, b float64) (float64, error) {
	if !(b > 0) || b == 1 {
		return 0, ErrInvalidLogBase
	}
	return math.Log(x) / math.Log(b), nil
}
