package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lex00/tagcell-go/workload"
)

// NewValidateCommand creates the validate command, which checks a workload
// file without executing it.
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate a workload file",
		Long: `Validate loads a workload file and checks structural consistency:
cell and stage names, step operands, and stage dependency ordering.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}

			w, err := workload.Load(path)
			if err != nil {
				return fmt.Errorf("validate failed: %w", err)
			}

			if err := w.Validate(); err != nil {
				return fmt.Errorf("validate failed: %w", err)
			}

			order, err := w.StageOrder()
			if err != nil {
				return fmt.Errorf("validate failed: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Workload %q is valid\n", w.Name)
			if len(order) > 0 {
				_, _ = fmt.Fprintf(os.Stdout, "Stage order: %s\n", strings.Join(order, " -> "))
			}

			return nil
		},
	}

	return cmd
}
