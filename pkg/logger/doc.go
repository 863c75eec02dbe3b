// Package logger builds *slog.Logger instances from functional options.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the configured
// Format and wraps it in a ContextHandler that copies selected context values
// into every record logged through the *Context methods.
//
// Defaults are text output at INFO level on stderr, so that command output on
// stdout stays clean.
//
// # Usage
//
//	import "github.com/dmitrymomot/primkit/pkg/logger"
//
//	log := logger.New(
//	    logger.WithService("primkit"),
//	    logger.WithVerbose(verbose),
//	    logger.WithContextValue("command", commandKey{}),
//	)
//	log.DebugContext(ctx, "rejected input",
//	    logger.Operation("safe-int"),
//	    logger.Input(raw),
//	)
//
// # Error Handling
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally:
//
//	log.Info("done", logger.Error(err))
package logger
