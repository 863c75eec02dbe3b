package cli

import (
	"log/slog"
	"math"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/primkit/pkg/logger"
	"github.com/dmitrymomot/primkit/pkg/numeric"
)

// MissingToken marks a missing entry on the sum command line.
const MissingToken = "_"

// SumResult is the output of the sum command.
type SumResult struct {
	Inputs  int    `json:"inputs" yaml:"inputs"`
	Missing int    `json:"missing" yaml:"missing"`
	Result  Number `json:"result" yaml:"result"`
}

func (r SumResult) String() string {
	return r.Result.String()
}

type sumFlags struct {
	ignoreNaN     bool
	ignoreMissing bool
}

// NewSumCommand creates the sum command.
func NewSumCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &sumFlags{}

	cmd := &cobra.Command{
		Use:   "sum [values...]",
		Short: "Add numbers left to right",
		Long: `Add numbers left to right. No arguments sum to 0.

NaN, Inf and -Inf are accepted. "_" marks a missing entry.
NaN and missing entries are skipped unless --ignore-nan=false or
--ignore-missing=false is given, in which case the result is NaN.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSum(rootOpts, flags, cmd, args)
		},
	}

	cmd.Flags().BoolVar(&flags.ignoreNaN, "ignore-nan", rootOpts.Numeric.SumIgnoreNaN, "skip NaN entries")
	cmd.Flags().BoolVar(&flags.ignoreMissing, "ignore-missing", rootOpts.Numeric.SumIgnoreMissing, `skip missing ("_") entries`)

	return cmd
}

func runSum(opts *RootOptions, flags *sumFlags, cmd *cobra.Command, args []string) error {
	f := opts.formatter(cmd)

	values := make([]*float64, len(args))
	missing := 0
	for i, arg := range args {
		if arg == MissingToken {
			missing++
			continue
		}
		n, err := parseNumber(arg)
		if err != nil {
			return reportInvalid(f, arg, err)
		}
		values[i] = &n
	}

	result := numeric.SumNullable(values,
		numeric.WithIgnoreNaN(flags.ignoreNaN),
		numeric.WithIgnoreMissing(flags.ignoreMissing),
	)

	log := opts.log()
	log.DebugContext(cmd.Context(), "values summed",
		logger.Inputs(len(args)),
		logger.Result(result),
	)
	if math.IsNaN(result) {
		log.DebugContext(cmd.Context(), "sum is NaN",
			logger.Group("policy",
				slog.Bool("ignore_nan", flags.ignoreNaN),
				slog.Bool("ignore_missing", flags.ignoreMissing),
			),
		)
	}

	return f.Success(SumResult{
		Inputs:  len(args),
		Missing: missing,
		Result:  Number(result),
	})
}
