package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/typedemo/internal/demo"
	"github.com/roach88/typedemo/internal/report"
)

// runDemo builds the report, writes it in the configured format and then
// waits for Enter unless --no-wait is set.
func runDemo(opts *RootOptions, rt Runtime, cmd *cobra.Command) error {
	formatter := newFormatter(opts, rt, cmd)
	logger := formatter.Logger()

	loc, err := demo.NewLocale(opts.Lang)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid language", err)
	}

	logger.Debug("building report", "lang", opts.Lang, "format", opts.Format, "run_id", formatter.TraceID)

	r, err := demo.Build(demo.Options{
		Clock:     rt.Clock,
		Locale:    loc,
		Converter: rt.Converter,
		Logger:    logger,
	})
	if err != nil {
		formatter.StructuredError(ErrCodeConversion, err.Error(), nil)
		return WrapExitError(ExitFailure, "demo failed", err)
	}

	if err := writeReport(formatter, r, loc); err != nil {
		return err
	}

	if opts.NoWait {
		return nil
	}
	return waitForEnter(cmd.InOrStdin(), formatter.GetErrWriter(), loc.Prompt())
}

func writeReport(formatter *OutputFormatter, r *report.Report, loc *demo.Locale) error {
	if !formatter.Structured() {
		return demo.RenderText(formatter.Writer, r, loc)
	}

	validator, err := report.NewValidator()
	if err != nil {
		return WrapExitError(ExitFailure, "load report schema", err)
	}
	if err := validator.Validate(r); err != nil {
		var vErr *report.ValidationError
		if errors.As(err, &vErr) {
			formatter.StructuredError(ErrCodeSchema, "report failed schema validation", vErr.Problems)
		}
		return WrapExitError(ExitFailure, "invalid report", err)
	}
	return formatter.Success(r)
}

// waitForEnter prints prompt and blocks until a line or EOF arrives on in.
func waitForEnter(in io.Reader, out io.Writer, prompt string) error {
	fmt.Fprintln(out, prompt)

	_, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return WrapExitError(ExitFailure, "read stdin", err)
	}
	return nil
}
