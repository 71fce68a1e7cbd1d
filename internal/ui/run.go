package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/payweek/internal/summary"
)

func (a *App) runCmd() *cobra.Command {
	var printJSON bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compute summaries for all stored shifts",
		Long: `Compute weekly summaries from every shift in the database and replace
the stored summaries with the result.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}
			b, err := a.builder()
			if err != nil {
				return err
			}

			summaries, err := summary.Run(context.Background(), a.store, a.store, b)
			if err != nil {
				return err
			}

			if printJSON {
				return summary.EncodeJSON(cmd.OutOrStdout(), summaries, a.config.Output.Indent)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Computed %d summaries for %d employees\n",
				len(summaries), countEmployees(summaries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&printJSON, "json", false, "Print the summaries as JSON")
	return cmd
}

func countEmployees(summaries []*summary.Summary) int {
	seen := make(map[int64]struct{})
	for _, s := range summaries {
		seen[s.EmployeeID] = struct{}{}
	}
	return len(seen)
}
