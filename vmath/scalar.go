package vmath

import "math"

// Scalar is the component type of every value in this package.
type Scalar = float64

const (
	Pi               Scalar = math.Pi
	HalfPi           Scalar = math.Pi / 2
	QuarterPi        Scalar = math.Pi / 4
	TwoPi            Scalar = math.Pi * 2
	DegreesPerRadian Scalar = 180 / math.Pi
	RadiansPerDegree Scalar = math.Pi / 180

	// Epsilon is the absolute tolerance used by every approximate comparison.
	Epsilon Scalar = 0.0001
)

// ApproxEqual reports whether a and b differ by less than Epsilon.
// It is reflexive and symmetric but not transitive.
func ApproxEqual(a, b Scalar) bool {
	return math.Abs(a-b) < Epsilon
}

// Radians converts degrees to radians.
func Radians(deg Scalar) Scalar {
	return deg * RadiansPerDegree
}

// Degrees converts radians to degrees.
func Degrees(rad Scalar) Scalar {
	return rad * DegreesPerRadian
}

func Clamp(v, lo, hi Scalar) Scalar {
	return math.Max(lo, math.Min(hi, v))
}
