package cli

import (
	"errors"
	"math"

	"github.com/spf13/cobra"

	"github.com/torqlab/motorbench/characteristics"
)

// ComputeOptions holds flags for the compute command.
type ComputeOptions struct {
	*RootOptions
	Voltage    float64
	Speed      float64
	Resistance float64
	Inductance float64
	Power      float64
	Current    float64
	Inertia    float64
	Dec        int
}

// NewComputeCommand creates the compute command.
func NewComputeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ComputeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Derive motor characteristics from flag values",
		Long: `Derive DC motor performance characteristics from nameplate values
given as flags.

Voltage, no-load speed and terminal resistance are required; inductance,
power rating, no-load current and rotor inertia are optional. Metrics that
depend on an omitted optional value are left out of the report.

Example:
  motorbench compute --voltage 24 --no-load-speed 754 --resistance 2
  motorbench compute --voltage 24 --no-load-speed 754 --resistance 2 \
      --inductance 0.001 --power 50 --no-load-current 0.1 --inertia 1e-5 --dec 4`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompute(opts, cmd)
		},
	}

	cmd.Flags().Float64Var(&opts.Voltage, "voltage", 0, "nominal voltage [V] (required)")
	cmd.Flags().Float64Var(&opts.Speed, "no-load-speed", 0, "no-load speed [rad/s] (required)")
	cmd.Flags().Float64Var(&opts.Resistance, "resistance", 0, "terminal resistance [Ohm] (required)")
	cmd.Flags().Float64Var(&opts.Inductance, "inductance", 0, "terminal inductance [H]")
	cmd.Flags().Float64Var(&opts.Power, "power", 0, "power rating [W]")
	cmd.Flags().Float64Var(&opts.Current, "no-load-current", 0, "no-load current [A]")
	cmd.Flags().Float64Var(&opts.Inertia, "inertia", 0, "rotor inertia [kg·m²]")
	cmd.Flags().IntVar(&opts.Dec, "dec", 1, "decimal places in the report")
	_ = cmd.MarkFlagRequired("voltage")
	_ = cmd.MarkFlagRequired("no-load-speed")
	_ = cmd.MarkFlagRequired("resistance")

	return cmd
}

func runCompute(opts *ComputeOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	params := characteristics.Params{
		NominalVoltage:     opts.Voltage,
		NoLoadSpeed:        opts.Speed,
		TerminalResistance: opts.Resistance,
		TerminalInductance: flagOrNaN(cmd, "inductance", opts.Inductance),
		PowerRating:        flagOrNaN(cmd, "power", opts.Power),
		NoLoadCurrent:      flagOrNaN(cmd, "no-load-current", opts.Current),
		RotorInertia:       flagOrNaN(cmd, "inertia", opts.Inertia),
	}

	return outputReport(formatter, "", params, opts.Dec)
}

// flagOrNaN returns NaN when an optional flag was not set, so that an
// omitted value is distinguishable from an explicit zero.
func flagOrNaN(cmd *cobra.Command, name string, value float64) float64 {
	if !cmd.Flags().Changed(name) {
		return math.NaN()
	}
	return value
}

// outputReport characterizes params and writes the rounded report in the
// configured format. Shared by compute and report.
func outputReport(f *OutputFormatter, name string, params characteristics.Params, dec int) error {
	rep, err := characteristics.Characterize(params)
	if err != nil {
		return outputParamError(f, err)
	}
	rounded := rep.Rounded(dec)

	if f.Format == "json" {
		if err := f.Success(newReportPayload(name, rounded, dec)); err != nil {
			return WrapExitError(ExitCommandError, "writing report", err)
		}
		return nil
	}
	if err := renderReportText(f.Writer, name, rounded); err != nil {
		return WrapExitError(ExitCommandError, "writing report", err)
	}
	return nil
}

// outputParamError reports a violated physical precondition and maps it to
// a validation-failure exit code.
func outputParamError(f *OutputFormatter, err error) error {
	var perr *characteristics.ParamError
	if errors.As(err, &perr) {
		_ = f.Error(ErrCodeBadParams, perr.Error(), map[string]string{
			"field": perr.Field,
			"code":  string(perr.Code),
		})
		return NewExitError(ExitFailure, perr.Error())
	}
	_ = f.Error(ErrCodeGeneric, err.Error(), nil)
	return NewExitError(ExitFailure, err.Error())
}
