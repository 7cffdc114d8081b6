package internal

import "math"

// Machine epsilon (2^-52). Points closer than this along both axes to the
// previously inserted point are treated as the same point.
const Epsilon = 2.220446049250313e-16

// Loose tolerance for comparisons in tests and validation, where we compare
// derived quantities like areas rather than making topological decisions.
const Tolerance = 1e-9

func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func squaredDistance(ax, ay, bx, by float64) float64 {
	dx := ax - bx
	dy := ay - by
	return dx*dx + dy*dy
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
