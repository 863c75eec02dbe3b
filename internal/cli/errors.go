package cli

import "errors"

var (
	// ErrAbsent is returned when a parser rejects its input.
	ErrAbsent = errors.New("no integer value")

	// ErrInvalidInput is returned when a command argument is not a number.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidFormat is returned for an unknown --format value.
	ErrInvalidFormat = errors.New("invalid format")
)

// Error codes reported in structured output.
const (
	ErrCodeInvalidInput = "E001" // Argument could not be read as a number
	ErrCodeAbsent       = "E002" // Parser rejected the input
)
