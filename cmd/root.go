// Package cmd provides the cobra commands for the tagcell CLI.
package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for the tagcell CLI.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tagcell",
		Short: "Run and validate cell workloads",
		Long: `tagcell executes declarative workloads against an ownership domain.

A workload file names a set of cells and a set of ordered mutation stages.
Every step flows through the domain's borrow API, so running a workload is
an end-to-end exercise of the shared-aliasing primitive.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add persistent flags available to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	cmd.AddCommand(NewRunCommand())
	cmd.AddCommand(NewValidateCommand())
	cmd.AddCommand(NewVersionCommand())

	return cmd
}
