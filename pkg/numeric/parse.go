package numeric

import (
	"errors"
	"strconv"
)

// ParseOption configures ToSafeInteger.
type ParseOption func(*parseConfig)

type parseConfig struct {
	normalizeNegativeZero bool
}

func defaultParseConfig() *parseConfig {
	return &parseConfig{
		normalizeNegativeZero: true,
	}
}

// WithNormalizeNegativeZero controls whether "-0" is returned as 0 (true, the
// default) or as a negative zero (false).
func WithNormalizeNegativeZero(normalize bool) ParseOption {
	return func(c *parseConfig) {
		c.normalizeNegativeZero = normalize
	}
}

// ToInteger converts a decimal digit string with an optional leading minus sign
// to its numeric value. The second return value is false when s does not match
// "-?[0-9]+" exactly.
//
// The conversion is a float64 conversion: "-0" yields a negative zero, values
// beyond 2^53 are rounded to the nearest representable double and values beyond
// the float64 range become ±Inf. Use ToSafeInteger when exactness matters.
func ToInteger(s string) (float64, bool) {
	if !digitStringRegex.MatchString(s) {
		return 0, false
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return n, true
}

// ToSafeInteger works like ToInteger but only succeeds when the parsed value is
// within [MinSafeInteger, MaxSafeInteger].
func ToSafeInteger(s string, opts ...ParseOption) (float64, bool) {
	cfg := defaultParseConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	n, ok := ToInteger(s)
	if !ok || !IsSafeInteger(n) {
		return 0, false
	}

	// -0 == 0, so this covers the negative zero as well
	if cfg.normalizeNegativeZero && n == 0 {
		return 0, true
	}
	return n, true
}

// ToSafeInt64 parses s with ToSafeInteger and returns the result as int64.
func ToSafeInt64(s string) (int64, bool) {
	n, ok := ToSafeInteger(s)
	if !ok {
		return 0, false
	}
	return int64(n), true
}
