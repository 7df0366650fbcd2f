// Command typedemo prints sample values of Go's primitive types and the
// conversions between them.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/typedemo/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "typedemo:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
