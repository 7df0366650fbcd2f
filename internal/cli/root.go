package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/typedemo/internal/convert"
	"github.com/roach88/typedemo/internal/demo"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json" | "yaml"
	Lang    string // "en" | "zh"
	NoWait  bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// Runtime holds the collaborators that vary between production and tests.
type Runtime struct {
	Clock     demo.Clock
	RunIDs    RunIDGenerator
	Converter *convert.Converter
}

// DefaultRuntime reads the system clock, issues UUIDv7 run ids and uses the
// built-in converter.
func DefaultRuntime() Runtime {
	return Runtime{
		Clock:     demo.SystemClock{},
		RunIDs:    UUIDv7Generator{},
		Converter: convert.NewDefault(),
	}
}

// NewRootCommand creates the root command for the typedemo CLI.
func NewRootCommand() *cobra.Command {
	return NewRootCommandWithRuntime(DefaultRuntime())
}

// NewRootCommandWithRuntime creates the root command with explicit collaborators.
func NewRootCommandWithRuntime(rt Runtime) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "typedemo",
		Short: "Go data types demo",
		Long: `Print sample values of Go's primitive types and the conversions between them.

Running typedemo with no subcommand prints the full demo: integers, floating
point, runes and strings, booleans, date/time, widening and narrowing
conversions, text-to-value conversion and constants. Arguments are ignored.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if !slices.Contains(demo.Languages, opts.Lang) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid language %q: must be one of %v", opts.Lang, demo.Languages))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(opts, rt, cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.Lang, "lang", demo.LangEnglish, "label language (en|zh)")

	cmd.Flags().BoolVar(&opts.NoWait, "no-wait", false, "exit without waiting for Enter")

	cmd.AddCommand(NewConvertCommand(opts, rt))

	return cmd
}
