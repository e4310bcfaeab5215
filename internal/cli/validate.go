package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ValidationResult holds validation results for a nameplate file.
type ValidationResult struct {
	Valid bool   `json:"valid"`
	Name  string `json:"name,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <nameplate.yaml>",
		Short: "Validate a nameplate file without computing anything",
		Long: `Validate a YAML nameplate file against the nameplate schema and the
physical preconditions, without evaluating any formula.

Faster feedback than report when editing nameplate files by hand.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
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

	// Schema validation has passed; check physical preconditions too so a
	// structurally valid but unphysical nameplate is caught here rather
	// than at report time.
	if err := np.Params().Validate(); err != nil {
		return outputParamError(formatter, err)
	}

	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true, Name: np.Name})
	}
	if np.Name != "" {
		fmt.Fprintf(formatter.Writer, "OK: %s (%s)\n", path, np.Name)
	} else {
		fmt.Fprintf(formatter.Writer, "OK: %s\n", path)
	}
	return nil
}
