package cli_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"gitlingo.dev/gitlingo/internal/cli"
	"gitlingo.dev/gitlingo/internal/runtime"
	"gitlingo.dev/gitlingo/testhelpers"
)

type cliResult struct {
	Stdout string
	Stderr string
	Err    error
}

// runCLI executes the root command in-process with English detection and a fixed clock.
func runCLI(t *testing.T, base runtime.Options, stdin string, args ...string) cliResult {
	t.Helper()
	if base.Detect == nil {
		base.Detect = func(string) (string, error) { return "en", nil }
	}
	if base.Now == nil {
		base.Now = func() time.Time { return testhelpers.FixedTime }
	}

	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmdWithOptions("test", base)
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(t.Context())
	return cliResult{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}
