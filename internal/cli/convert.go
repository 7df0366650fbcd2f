package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/typedemo/internal/convert"
)

// ConversionDetails is attached to conversion errors in structured output.
type ConversionDetails struct {
	Kind      string `json:"kind" yaml:"kind"`
	Input     string `json:"input" yaml:"input"`
	Mechanism string `json:"mechanism" yaml:"mechanism"`
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions, rt Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <kind> <text>",
		Short: "Convert text with both the general converter and strconv",
		Long: `Convert text to a value of the given kind twice: once with the general
converter and once with the type-specific parser, then report whether the two
results agree.

Kinds: int, float, bool, decimal.

Exit status is 1 if either mechanism rejects the input or the results differ.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(rootOpts, rt, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runConvert(opts *RootOptions, rt Runtime, kindName, text string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, rt, cmd)
	logger := formatter.Logger()

	kind, err := convert.ParseKind(kindName)
	if err != nil {
		formatter.StructuredError(ErrCodeUsage, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid kind", err)
	}

	conv := rt.Converter
	if conv == nil {
		conv = convert.NewDefault()
	}

	cmp, err := convert.Compare(conv, kind, text)
	if err != nil {
		var details interface{}
		var convErr *convert.ConversionError
		if errors.As(err, &convErr) {
			details = ConversionDetails{
				Kind:      string(convErr.Kind),
				Input:     convErr.Input,
				Mechanism: string(convErr.Mechanism),
			}
		}
		formatter.StructuredError(ErrCodeConversion, err.Error(), details)
		return WrapExitError(ExitFailure, "conversion failed", err)
	}

	logger.Debug("converted", "kind", kind, "input", text, "converted", cmp.Converted, "parsed", cmp.Parsed)

	if !cmp.Agree {
		message := fmt.Sprintf("converter returned %s, parser returned %s", cmp.Converted, cmp.Parsed)
		formatter.StructuredError(ErrCodeDisagree, message, cmp)
		return NewExitError(ExitFailure, "conversion mechanisms disagree: "+message)
	}

	return formatter.Success(cmp)
}
