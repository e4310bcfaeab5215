package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

// ReportOptions holds flags for the report command.
type ReportOptions struct {
	*RootOptions
	Dec int
}

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "report <nameplate.yaml>",
		Short: "Derive motor characteristics from a nameplate file",
		Long: `Derive DC motor performance characteristics from a YAML nameplate file.

The file is validated against the nameplate schema before any formula is
evaluated. Metrics that depend on an optional field absent from the file
are left out of the report.

Example:
  motorbench report re25.yaml
  motorbench report re25.yaml --dec 4 --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Dec, "dec", 1, "decimal places in the report")

	return cmd
}

func runReport(opts *ReportOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	np, err := LoadNameplate(path)
	if err != nil {
		return outputLoadError(formatter, err)
	}
	formatter.VerboseLog("Loaded nameplate %q from %s", np.Name, path)

	return outputReport(formatter, np.Name, np.Params(), opts.Dec)
}

// outputLoadError reports a nameplate loading failure. Missing or
// unreadable files are command errors; syntax and schema problems are
// validation failures.
func outputLoadError(f *OutputFormatter, err error) error {
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		_ = f.Error(ErrCodeGeneric, err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}

	_ = f.Error(loadErr.Code, loadErr.Message, nil)
	switch loadErr.Code {
	case ErrCodeNotFound, ErrCodeReadError:
		return NewExitError(ExitCommandError, loadErr.Message)
	default:
		return NewExitError(ExitFailure, loadErr.Message)
	}
}
