// Package numeric provides strict integer parsing, range clamping and
// configurable summation for float64-based numeric data.
//
// The helpers follow IEEE-754 double-precision semantics throughout, which makes
// them a drop-in match for values exchanged with JavaScript clients and JSON
// payloads where every number is a double.
//
// # Parsing
//
// ToInteger accepts only strings of the form "-?[0-9]+": no leading plus sign,
// no decimal point, no exponent, no whitespace and no digit separators. Leading
// zeros are allowed. Invalid input is reported through the second (ok) return
// value, never through a panic:
//
//	n, ok := numeric.ToInteger("007")   // 7, true
//	_, ok = numeric.ToInteger("1_000")  // 0, false
//
// ToSafeInteger additionally rejects values whose magnitude exceeds
// MaxSafeInteger (2^53-1), the largest integer a float64 represents exactly.
// By default "-0" is normalised to 0; pass WithNormalizeNegativeZero(false) to
// keep the negative zero.
//
// # Clamping
//
// Clamp bounds a value into [low, high]. Swapped bounds are accepted and
// reordered, so Clamp(x, a, b) == Clamp(x, b, a).
//
// # Summation
//
// Sum and SumNullable add values left to right. NaN entries and missing (nil)
// entries are skipped by default; disable that with WithIgnoreNaN(false) or
// WithIgnoreMissing(false) and the result becomes NaN as soon as such an entry
// is seen:
//
//	total := numeric.Sum([]float64{1, math.NaN(), 2})                          // 3
//	total = numeric.Sum([]float64{1, math.NaN(), 2}, numeric.WithIgnoreNaN(false)) // NaN
//
// # Configuration
//
// Config carries env-tagged defaults for all options so that applications can
// load them with the config package and pass Config.SumOptions or
// Config.ParseOptions along.
//
// All functions are stateless and safe for concurrent use.
package numeric
