package model

import "math"

// DefaultTolerance absorbs floating-point rounding in host-reported geometry.
const DefaultTolerance = 0.1

// AtLeast reports value >= threshold, allowing value to fall short by up to
// tolerance.
func AtLeast(value, threshold, tolerance float64) bool {
	return value >= threshold-math.Abs(tolerance)
}

// WithinTolerance reports whether a and b differ by no more than tolerance.
func WithinTolerance(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= math.Abs(tolerance)
}
