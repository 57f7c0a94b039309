package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lex00/tagcell-go/version"
)

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tagcell version",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(os.Stdout, version.Version())
		},
	}
}
