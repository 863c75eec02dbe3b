package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/primkit/pkg/logger"
	"github.com/dmitrymomot/primkit/pkg/numeric"
)

// ParseResult is the output of the int and safe-int commands.
type ParseResult struct {
	Input string `json:"input" yaml:"input"`
	Value Number `json:"value" yaml:"value"`
}

func (r ParseResult) String() string {
	return r.Value.String()
}

// NewIntCommand creates the int command.
func NewIntCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "int <digits>",
		Short: "Parse a decimal digit string",
		Long: `Parse a string of the form -?[0-9]+ as a number.

Leading zeros are allowed. Signs other than a leading minus, decimal points,
exponents, whitespace and digit separators are rejected. Values beyond 2^53
are rounded to the nearest double; use safe-int to reject them instead.
Exits with code 1 when the input is rejected.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			value, ok := numeric.ToInteger(args[0])
			return outputParse(rootOpts, cmd, args[0], value, ok, "integer")
		},
	}
}

// NewSafeIntCommand creates the safe-int command.
func NewSafeIntCommand(rootOpts *RootOptions) *cobra.Command {
	var normalize bool

	cmd := &cobra.Command{
		Use:   "safe-int <digits>",
		Short: "Parse a decimal digit string within ±(2^53-1)",
		Long: `Parse a string like the int command, additionally rejecting values whose
magnitude exceeds 2^53-1. "-0" is printed as 0 unless
--normalize-negative-zero=false is given.
Exits with code 1 when the input is rejected.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			value, ok := numeric.ToSafeInteger(args[0], numeric.WithNormalizeNegativeZero(normalize))
			return outputParse(rootOpts, cmd, args[0], value, ok, "safe integer")
		},
	}

	cmd.Flags().BoolVar(&normalize, "normalize-negative-zero", rootOpts.Numeric.NormalizeNegativeZero,
		`return "-0" as 0`)

	return cmd
}

func outputParse(opts *RootOptions, cmd *cobra.Command, input string, value float64, ok bool, kind string) error {
	f := opts.formatter(cmd)
	ctx := cmd.Context()

	if !ok {
		opts.log().DebugContext(ctx, "input rejected", logger.Input(input))
		msg := fmt.Sprintf("%q is not a valid %s", input, kind)
		if err := f.Error(ErrCodeAbsent, msg); err != nil {
			return err
		}
		return WrapExitError(ExitFailure, msg, ErrAbsent)
	}

	opts.log().DebugContext(ctx, "input parsed", logger.Input(input), logger.Result(value))
	return f.Success(ParseResult{Input: input, Value: Number(value)})
}
