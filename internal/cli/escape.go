package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/primkit/pkg/logger"
	"github.com/dmitrymomot/primkit/pkg/sanitizer"
)

// EscapeResult is the output of the escape command.
type EscapeResult struct {
	Input  string `json:"input" yaml:"input"`
	Result string `json:"result" yaml:"result"`
}

func (r EscapeResult) String() string {
	return r.Result
}

// NewEscapeCommand creates the escape command.
func NewEscapeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "escape [text...]",
		Short: "Escape HTML special characters",
		Long: `Replace & < > " ' with &amp; &lt; &gt; &quot; &#039;.

Arguments are joined with single spaces. Without arguments the text is read
from stdin and one trailing newline is dropped.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEscape(rootOpts, cmd, args)
		},
	}
}

func runEscape(opts *RootOptions, cmd *cobra.Command, args []string) error {
	input := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return WrapExitError(ExitCommandError, "reading stdin", err)
		}
		input = strings.TrimSuffix(string(data), "\n")
	}

	result := sanitizer.EscapeHTML(input)
	opts.log().DebugContext(cmd.Context(), "text escaped",
		logger.Operation("escape"),
		slog.Int("bytes_in", len(input)),
		slog.Int("bytes_out", len(result)),
	)

	if err := opts.formatter(cmd).Success(EscapeResult{Input: input, Result: result}); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
