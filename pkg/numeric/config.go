package numeric

// Config holds the defaults for parsing and summation options.
// Load it with the config package, usually under an application prefix.
type Config struct {
	SumIgnoreNaN          bool `env:"SUM_IGNORE_NAN" envDefault:"true"`          // Skip NaN entries instead of returning NaN.
	SumIgnoreMissing      bool `env:"SUM_IGNORE_MISSING" envDefault:"true"`      // Skip missing entries instead of returning NaN.
	NormalizeNegativeZero bool `env:"NORMALIZE_NEGATIVE_ZERO" envDefault:"true"` // Return "-0" as 0 from ToSafeInteger.
}

// DefaultConfig returns the same defaults the options use when none are given.
func DefaultConfig() Config {
	return Config{
		SumIgnoreNaN:          true,
		SumIgnoreMissing:      true,
		NormalizeNegativeZero: true,
	}
}

func (c Config) SumOptions() []SumOption {
	return []SumOption{
		WithIgnoreNaN(c.SumIgnoreNaN),
		WithIgnoreMissing(c.SumIgnoreMissing),
	}
}

func (c Config) ParseOptions() []ParseOption {
	return []ParseOption{
		WithNormalizeNegativeZero(c.NormalizeNegativeZero),
	}
}
