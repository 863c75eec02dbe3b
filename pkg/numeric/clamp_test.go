package numeric_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/primkit/pkg/numeric"
)

func TestClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    float64
		low      float64
		high     float64
		expected float64
	}{
		{name: "value within range", value: 5, low: -10, high: 10, expected: 5},
		{name: "value above maximum", value: 11, low: 0, high: 10, expected: 10},
		{name: "value below minimum", value: -11, low: -10, high: 0, expected: -10},
		{name: "value equals maximum", value: 10, low: -10, high: 10, expected: 10},
		{name: "value equals minimum", value: -10, low: -10, high: 10, expected: -10},
		{name: "max safe integer", value: numeric.MaxSafeInteger, low: -10, high: 10, expected: 10},
		{name: "min safe integer", value: numeric.MinSafeInteger, low: -10, high: 10, expected: -10},
		{name: "safe integer bounds", value: 1e300, low: numeric.MinSafeInteger, high: numeric.MaxSafeInteger, expected: numeric.MaxSafeInteger},
		{name: "well above maximum", value: 15, low: 0, high: 10, expected: 10},
		{name: "equal bounds below", value: -3, low: 4, high: 4, expected: 4},
		{name: "equal bounds above", value: 9, low: 4, high: 4, expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := numeric.Clamp(tt.value, tt.low, tt.high)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestClampSwappedBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    float64
		low      float64
		high     float64
		expected float64
	}{
		{name: "within swapped range", value: 5, low: 10, high: -10, expected: 5},
		{name: "above swapped max", value: 11, low: 10, high: -10, expected: 10},
		{name: "below swapped min", value: -11, low: 10, high: -10, expected: -10},
		{name: "inside inverted zero range", value: 5, low: 10, high: 0, expected: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := numeric.Clamp(tt.value, tt.low, tt.high)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestClampWithFloats(t *testing.T) {
	t.Parallel()

	assert.Equal(t, -2.4, numeric.Clamp(-2.4, -2.5, 3))
	assert.Equal(t, 12.1, numeric.Clamp(12.2, -3, 12.1))
	assert.Equal(t, -2.5, numeric.Clamp(-5, -2.5, 3))
	assert.Equal(t, 3.7, numeric.Clamp(3.7, 1.5, 10.2))
}

func TestClampWithIntegers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 10, numeric.Clamp(15, 0, 10))
	assert.Equal(t, 5, numeric.Clamp(5, 10, 0))
	assert.Equal(t, int64(-3), numeric.Clamp(int64(-7), int64(-3), int64(3)))
	assert.Equal(t, uint8(200), numeric.Clamp(uint8(255), uint8(200), uint8(100)))
}

func TestClampProperties(t *testing.T) {
	t.Parallel()

	points := []float64{
		numeric.MinSafeInteger, -100, -10.5, -1, 0, 0.25, 1, 7, 10, 99.9, numeric.MaxSafeInteger,
	}

	for _, x := range points {
		for _, a := range points {
			for _, b := range points {
				clamped := numeric.Clamp(x, a, b)

				assert.Equal(t, clamped, numeric.Clamp(x, b, a), "swap invariance for x=%v a=%v b=%v", x, a, b)
				assert.Equal(t, clamped, numeric.Clamp(clamped, a, b), "idempotence for x=%v a=%v b=%v", x, a, b)
				assert.GreaterOrEqual(t, clamped, min(a, b))
				assert.LessOrEqual(t, clamped, max(a, b))
			}
		}
	}
}

func TestClampMin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    int
		min      int
		expected int
	}{
		{name: "value above minimum", value: 5, min: 1, expected: 5},
		{name: "value below minimum", value: -5, min: 1, expected: 1},
		{name: "value equals minimum", value: 1, min: 1, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, numeric.ClampMin(tt.value, tt.min))
		})
	}
}

func TestClampMax(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    int
		max      int
		expected int
	}{
		{name: "value below maximum", value: 5, max: 10, expected: 5},
		{name: "value above maximum", value: 15, max: 10, expected: 10},
		{name: "value equals maximum", value: 10, max: 10, expected: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, numeric.ClampMax(tt.value, tt.max))
		})
	}
}
