package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // The operation produced no value (e.g. rejected integer)
	ExitCommandError = 2 // Usage error (bad arguments, unknown flags, invalid format)
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{FormatText, FormatJSON, FormatYAML}

// ExitError is an error that has already been reported to the user and
// carries the process exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error. Errors that are not
// ExitErrors come from argument or flag parsing and map to ExitCommandError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// Response is the envelope for structured (json/yaml) output.
type Response struct {
	Status string     `json:"status" yaml:"status"`
	Data   any        `json:"data,omitempty" yaml:"data,omitempty"`
	Error  *ErrorBody `json:"error,omitempty" yaml:"error,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// OutputFormatter writes command results in the selected format.
// Text errors go to ErrWriter so that stdout only carries results.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer
}

// Success writes data. In text mode data is printed with fmt.Fprintln, so
// result types implement fmt.Stringer.
func (f *OutputFormatter) Success(data any) error {
	switch f.Format {
	case FormatJSON, FormatYAML:
		return f.encode(Response{Status: "ok", Data: data})
	}
	_, err := fmt.Fprintln(f.Writer, data)
	return err
}

// Error reports a failed operation.
func (f *OutputFormatter) Error(code, message string) error {
	switch f.Format {
	case FormatJSON, FormatYAML:
		return f.encode(Response{
			Status: "error",
			Error:  &ErrorBody{Code: code, Message: message},
		})
	}

	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	_, err := fmt.Fprintf(w, "Error [%s]: %s\n", code, message)
	return err
}

func (f *OutputFormatter) encode(resp Response) error {
	if f.Format == FormatYAML {
		enc := yaml.NewEncoder(f.Writer)
		enc.SetIndent(2)
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("encoding yaml output: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(f.Writer)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("encoding json output: %w", err)
	}
	return nil
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
