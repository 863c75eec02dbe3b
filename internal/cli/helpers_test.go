package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/dmitrymomot/primkit/pkg/numeric"
)

type execResult struct {
	stdout string
	stderr string
	err    error
}

// execute runs the root command with default numeric options.
func execute(t *testing.T, args ...string) execResult {
	t.Helper()
	return executeWith(t, numeric.DefaultConfig(), "", args...)
}

func executeWith(t *testing.T, cfg numeric.Config, stdin string, args ...string) execResult {
	t.Helper()

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	cmd := NewRootCommand(cfg)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return execResult{stdout: out.String(), stderr: errOut.String(), err: err}
}

func assertGolden(t *testing.T, name string, actual string) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(actual))
}
