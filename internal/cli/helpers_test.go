package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/roach88/typedemo/internal/convert"
	"github.com/roach88/typedemo/internal/testutil"
)

const testRunID = "0190f0e4-0000-7000-8000-000000000001"

// testRuntime uses a fixed clock, a fixed run id and the built-in converter.
func testRuntime() Runtime {
	return Runtime{
		Clock:     testutil.NewFixedClock(testutil.GoldenTime()),
		RunIDs:    testutil.NewFixedRunIDGenerator(testRunID),
		Converter: convert.NewDefault(),
	}
}

// execute runs the root command with testRuntime and an empty stdin.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	return executeWith(t, testRuntime(), args...)
}

// executeWith runs the root command with rt and an empty stdin.
func executeWith(t *testing.T, rt Runtime, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewRootCommandWithRuntime(rt)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}
