package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lex00/tagcell-go/workload"
)

// NewRunCommand creates the run command, which executes a workload file.
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [path]",
		Short: "Execute a workload against a fresh ownership domain",
		Long: `Run loads a workload file, validates it, and executes its stages in
dependency order. Each run uses its own ownership domain; all cell access
flows through the domain's borrow API.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			verbose, _ := cmd.Flags().GetBool("verbose")
			log := newLogger(verbose)

			w, err := workload.Load(path)
			if err != nil {
				return fmt.Errorf("run failed: %w", err)
			}

			log.Info().Str("workload", w.Name).Int("cells", len(w.Cells)).Int("stages", len(w.Stages)).Msg("starting run")

			report, err := workload.Run(w)
			if err != nil {
				return fmt.Errorf("run failed: %w", err)
			}

			for _, step := range report.Steps {
				log.Debug().
					Str("stage", step.Stage).
					Int("step", step.Index).
					Str("op", step.Op).
					Msg(step.Detail)
			}

			for name, value := range report.Final {
				log.Info().Str("cell", name).Int64("value", value).Msg("final")
			}
			log.Info().Str("workload", report.Workload).Int("steps", len(report.Steps)).Msg("run complete")

			return nil
		},
	}

	return cmd
}
