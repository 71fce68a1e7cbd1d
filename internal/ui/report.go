package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/payweek/internal/dateutil"
	"github.com/javiermolinar/payweek/internal/summary"
)

func (a *App) reportCmd() *cobra.Command {
	var (
		employee  int64
		startDate string
		endDate   string
		asJSON    bool
		noColor   bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show stored weekly summaries",
		Long: `Display the summaries computed by 'payweek run' as a table.

Filter by employee and by the week start date (inclusive range).`,
		Example: `  payweek report
  payweek report --employee 36172660
  payweek report --start=2021-08-22 --end=2021-09-05 --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			dateRange, err := dateutil.NewDateRange(startDate, endDate)
			if err != nil {
				return err
			}

			filter := summary.Filter{}
			if cmd.Flags().Changed("employee") {
				filter.EmployeeID = &employee
			}
			if !dateRange.Start.IsZero() {
				filter.From = dateRange.Start.Format(dateutil.DateLayout)
			}
			if !dateRange.End.IsZero() {
				filter.To = dateRange.End.Format(dateutil.DateLayout)
			}

			if err := a.ensureStore(); err != nil {
				return err
			}
			summaries, err := a.store.ListSummaries(context.Background(), filter)
			if err != nil {
				return fmt.Errorf("listing summaries: %w", err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return summary.EncodeJSON(out, summaries, a.config.Output.Indent)
			}

			if len(summaries) == 0 {
				fmt.Fprintln(out, "No summaries found. Import shifts and run 'payweek run' first.")
				return nil
			}

			fmt.Fprintf(out, "\n  %s\n", formatHeader(fmt.Sprintf("PAY WEEKS (%s, overtime after %sh)",
				a.config.Payroll.Timezone, FormatHours(a.config.Payroll.OvertimeThreshold))))
			fmt.Fprintln(out, RenderReport(summaries, termWidth()))
			PrintStats(out, Stats(summaries))
			fmt.Fprintln(out)
			return nil
		},
	}

	cmd.Flags().Int64Var(&employee, "employee", 0, "Only show this employee ID")
	cmd.Flags().StringVar(&startDate, "start", "", "First week start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "Last week start date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print summaries as JSON")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")

	return cmd
}
