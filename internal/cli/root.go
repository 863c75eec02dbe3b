package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/primkit/pkg/logger"
	"github.com/dmitrymomot/primkit/pkg/numeric"
)

// RootOptions holds global flags and shared dependencies for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json" | "yaml"

	// Numeric holds option defaults, usually loaded from PRIMKIT_* env vars.
	Numeric numeric.Config
	Logger  *slog.Logger
}

type commandKey struct{}

// NewRootCommand creates the root command. cfg provides the defaults for the
// option flags of the sum and safe-int commands.
func NewRootCommand(cfg numeric.Config) *cobra.Command {
	opts := &RootOptions{Numeric: cfg}

	cmd := &cobra.Command{
		Use:   "primkit",
		Short: "Strict integer parsing, clamping, summation and HTML escaping",
		Long: `primkit exposes the numeric and sanitizer packages on the command line.

Arguments that start with a minus sign must follow "--", for example:

  primkit int -- -42
  primkit sum -- -1.5 2 NaN _`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("%w %q: must be one of %v", ErrInvalidFormat, opts.Format, ValidFormats)
			}

			opts.Logger = logger.New(
				logger.WithService("primkit"),
				logger.WithVerbose(opts.Verbose),
				logger.WithOutput(cmd.ErrOrStderr()),
				logger.WithContextValue("command", commandKey{}),
			)
			cmd.SetContext(context.WithValue(cmd.Context(), commandKey{}, cmd.Name()))
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log diagnostics to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", FormatText, "output format (text|json|yaml)")

	cmd.AddCommand(NewIntCommand(opts))
	cmd.AddCommand(NewSafeIntCommand(opts))
	cmd.AddCommand(NewClampCommand(opts))
	cmd.AddCommand(NewSumCommand(opts))
	cmd.AddCommand(NewEscapeCommand(opts))

	return cmd
}

func (o *RootOptions) log() *slog.Logger {
	if o.Logger == nil {
		return logger.Discard()
	}
	return o.Logger
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
	}
}

// reportInvalid writes an invalid-argument error and returns the matching ExitError.
func reportInvalid(f *OutputFormatter, arg string, err error) error {
	msg := fmt.Sprintf("%q is not a number", arg)
	if ferr := f.Error(ErrCodeInvalidInput, msg); ferr != nil {
		return ferr
	}
	return WrapExitError(ExitCommandError, msg, fmt.Errorf("%w: %w", ErrInvalidInput, err))
}
