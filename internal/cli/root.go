package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
}

// validFormats are the accepted values for --format.
var validFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the motorbench CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "motorbench",
		Short: "motorbench - DC motor characterization",
		Long:  "Derive DC motor performance characteristics from nameplate parameters.",
		// Reject a bad --format before any subcommand runs, so the
		// formatter never sees an unknown value.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if slices.Contains(validFormats, opts.Format) {
				return nil
			}
			return fmt.Errorf("invalid format %q: must be one of %s", opts.Format, strings.Join(validFormats, ", "))
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	for _, sub := range []*cobra.Command{
		NewComputeCommand(opts),
		NewReportCommand(opts),
		NewValidateCommand(opts),
	} {
		cmd.AddCommand(sub)
	}

	return cmd
}
