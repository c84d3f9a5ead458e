package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spendsense/spendsense/internal/cli"
	"github.com/spendsense/spendsense/internal/currency"
	"github.com/spendsense/spendsense/internal/model"
	"github.com/spendsense/spendsense/internal/report"
	"github.com/spf13/cobra"
)

func summaryCmd() *cobra.Command {
	var (
		periodFlag string
		trendFlag  bool
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize spending for a period",
		Long: `Show income, expense, and per-category totals for the selected period.
Periods are anchored at today: daily is the current date, weekly the last
7 days inclusive, monthly/quarterly/yearly the current calendar unit.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			period := report.Period(periodFlag)
			if !period.Valid() {
				return fmt.Errorf("invalid period %q (daily, weekly, monthly, quarterly, yearly)", periodFlag)
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			txns, err := store.Transactions(ctx)
			if err != nil {
				return fmt.Errorf("failed to get transactions: %w", err)
			}
			curr, err := displayCurrency(ctx, store)
			if err != nil {
				return err
			}

			now := time.Now()
			filtered := report.FilterByPeriod(txns, now, period)

			var totalExpense, totalIncome float64
			for _, t := range filtered {
				if t.Type == model.TypeExpense {
					totalExpense += t.Amount
				} else {
					totalIncome += t.Amount
				}
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Summary (%s)", period)))
			fmt.Printf("Income   %s\n", cli.IncomeStyle.Render("+"+renderAmount(totalIncome, curr)))
			fmt.Printf("Expense  %s\n", cli.ExpenseStyle.Render("-"+renderAmount(totalExpense, curr)))
			fmt.Printf("Net      %s\n", renderAmount(totalIncome-totalExpense, curr))
			fmt.Println()

			totals := report.CategoryTotals(filtered)
			if len(totals) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No expenses in this period."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, cli.HeaderStyle.Render("Category\tSpent\tShare"))
			for _, ct := range totals {
				share := 0.0
				if totalExpense > 0 {
					share = ct.Total / totalExpense * 100
				}
				fmt.Fprintf(w, "%s %s\t%s\t%.1f%%\n",
					ct.Icon, ct.Name, renderAmount(ct.Total, curr), share)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if trendFlag {
				fmt.Println()
				renderTrend(txns, period, now, curr)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&periodFlag, "period", "p", string(report.PeriodMonthly), "analysis period (daily, weekly, monthly, quarterly, yearly)")
	cmd.Flags().BoolVar(&trendFlag, "trend", false, "include a spending trend chart")

	return cmd
}

// renderTrend prints a horizontal bar chart. Short periods get a 7-day
// daily series; longer ones get the monthly series for the year.
func renderTrend(txns []model.Transaction, period report.Period, now time.Time, curr currency.Currency) {
	var points []report.TrendPoint
	switch period {
	case report.PeriodDaily, report.PeriodWeekly:
		points = report.DailyTrend(txns, now, 7)
	default:
		points = report.MonthlyTrend(txns, now)
	}

	var max float64
	for _, p := range points {
		if p.Amount > max {
			max = p.Amount
		}
	}

	fmt.Println(cli.TitleStyle.Render(cli.ChartIcon + " Spending trend"))
	for _, p := range points {
		width := 0
		if max > 0 {
			width = int(p.Amount / max * float64(progressBarWidth))
		}
		bar := ""
		for i := 0; i < width; i++ {
			bar += "▇"
		}
		fmt.Printf("%-4s %s %s\n", p.Label, cli.InfoStyle.Render(bar), renderAmount(p.Amount, curr))
	}
}
