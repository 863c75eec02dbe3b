package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/primkit/pkg/logger"
	"github.com/dmitrymomot/primkit/pkg/numeric"
)

// ClampResult is the output of the clamp command.
type ClampResult struct {
	Value  Number `json:"value" yaml:"value"`
	Low    Number `json:"low" yaml:"low"`
	High   Number `json:"high" yaml:"high"`
	Result Number `json:"result" yaml:"result"`
}

func (r ClampResult) String() string {
	return r.Result.String()
}

// NewClampCommand creates the clamp command.
func NewClampCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clamp <value> <low> <high>",
		Short: "Bound a number into [low, high]",
		Long: `Bound a number into the inclusive range [low, high].
The bounds may be given in either order.`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClamp(rootOpts, cmd, args)
		},
	}
}

func runClamp(opts *RootOptions, cmd *cobra.Command, args []string) error {
	f := opts.formatter(cmd)

	nums := make([]float64, len(args))
	for i, arg := range args {
		n, err := parseNumber(arg)
		if err != nil {
			return reportInvalid(f, arg, err)
		}
		nums[i] = n
	}

	result := numeric.Clamp(nums[0], nums[1], nums[2])
	opts.log().DebugContext(cmd.Context(), "value clamped",
		logger.Operation("clamp"),
		logger.Result(result),
	)

	return f.Success(ClampResult{
		Value:  Number(nums[0]),
		Low:    Number(nums[1]),
		High:   Number(nums[2]),
		Result: Number(result),
	})
}
