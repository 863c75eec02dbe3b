package numeric

import "math"

// SumOption configures Sum and SumNullable.
type SumOption func(*sumConfig)

type sumConfig struct {
	ignoreNaN     bool
	ignoreMissing bool
}

func defaultSumConfig() *sumConfig {
	return &sumConfig{
		ignoreNaN:     true,
		ignoreMissing: true,
	}
}

// WithIgnoreNaN controls NaN entries. When true (default) they are skipped,
// when false the sum is NaN.
func WithIgnoreNaN(ignore bool) SumOption {
	return func(c *sumConfig) {
		c.ignoreNaN = ignore
	}
}

// WithIgnoreMissing controls missing (nil) entries of SumNullable. When true
// (default) they are skipped, when false the sum is NaN.
func WithIgnoreMissing(ignore bool) SumOption {
	return func(c *sumConfig) {
		c.ignoreMissing = ignore
	}
}

// accumulator adds values left to right according to sumConfig.
type accumulator struct {
	cfg   *sumConfig
	total float64
}

func newAccumulator(opts []SumOption) *accumulator {
	cfg := defaultSumConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &accumulator{cfg: cfg}
}

// add returns false once the total has been poisoned and accumulation must stop.
func (a *accumulator) add(v float64) bool {
	if math.IsNaN(v) {
		if a.cfg.ignoreNaN {
			return true
		}
		a.total = math.NaN()
		return false
	}
	a.total += v
	return true
}

func (a *accumulator) missing() bool {
	if a.cfg.ignoreMissing {
		return true
	}
	a.total = math.NaN()
	return false
}

// Sum returns the left-to-right sum of values. An empty slice sums to 0.
// Infinities follow IEEE-754 arithmetic, so +Inf and -Inf together give NaN.
// The input slice is never modified.
func Sum(values []float64, opts ...SumOption) float64 {
	acc := newAccumulator(opts)
	for _, v := range values {
		if !acc.add(v) {
			break
		}
	}
	return acc.total
}

// SumNullable works like Sum over a sequence where nil marks a missing entry.
func SumNullable(values []*float64, opts ...SumOption) float64 {
	acc := newAccumulator(opts)
	for _, v := range values {
		var ok bool
		if v == nil {
			ok = acc.missing()
		} else {
			ok = acc.add(*v)
		}
		if !ok {
			break
		}
	}
	return acc.total
}
