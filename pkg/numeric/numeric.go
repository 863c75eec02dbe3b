package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number represents numeric types accepted by the clamp helpers.
type Number interface {
	constraints.Integer | constraints.Float
}

const (
	// MaxSafeInteger is the largest integer n such that n and n+1 are both
	// exactly representable as float64 (2^53-1).
	MaxSafeInteger = 1<<53 - 1
	// MinSafeInteger is the negation of MaxSafeInteger.
	MinSafeInteger = -MaxSafeInteger
)

// IsSafeInteger reports whether f is an integral value within
// [MinSafeInteger, MaxSafeInteger].
func IsSafeInteger(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return f == math.Trunc(f) && math.Abs(f) <= MaxSafeInteger
}
