package numeric

// Clamp constrains value to the range [low, high].
// If low is greater than high the bounds are swapped first, so the call never
// fails on inverted bounds. Equal bounds clamp every value to that bound.
func Clamp[T Number](value T, low T, high T) T {
	if low > high {
		low, high = high, low
	}
	return ClampMax(ClampMin(value, low), high)
}

// ClampMin ensures a numeric value is not less than the specified minimum.
func ClampMin[T Number](value T, min T) T {
	if value < min {
		return min
	}
	return value
}

// ClampMax ensures a numeric value is not greater than the specified maximum.
func ClampMax[T Number](value T, max T) T {
	if value > max {
		return max
	}
	return value
}
