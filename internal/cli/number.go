package cli

import (
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Number is a float64 that prints the way JavaScript prints numbers for the
// values the commands produce: integers without exponent, "-0" for negative
// zero and NaN/Infinity by name.
type Number float64

func (n Number) String() string {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0 && math.Signbit(f):
		return "-0"
	case math.Abs(f) < 1e21:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// MarshalJSON writes finite values as JSON numbers and non-finite values as
// strings, since JSON has no NaN or Infinity.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte(strconv.Quote(n.String())), nil
	}
	return []byte(n.String()), nil
}

// MarshalYAML writes the value as a plain scalar using the YAML spellings for
// non-finite floats.
func (n Number) MarshalYAML() (any, error) {
	f := float64(n)
	value := n.String()
	switch {
	case math.IsNaN(f):
		value = ".nan"
	case math.IsInf(f, 1):
		value = ".inf"
	case math.IsInf(f, -1):
		value = "-.inf"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Value: value}, nil
}

// parseNumber reads a command argument as float64. It accepts everything
// strconv.ParseFloat does, including NaN and Inf.
func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
