package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dmitrymomot/primkit/internal/cli"
	"github.com/dmitrymomot/primkit/pkg/config"
	"github.com/dmitrymomot/primkit/pkg/numeric"
)

var buildtime, version string

func main() {
	var cfg numeric.Config
	if err := config.Load(&cfg, config.WithPrefix("PRIMKIT_")); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitCommandError)
	}

	cmd := cli.NewRootCommand(cfg)
	cmd.Version = fmt.Sprintf("ver %s, build-time %s", version, buildtime)

	if err := cmd.Execute(); err != nil {
		// ExitErrors have already been reported by the command
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
