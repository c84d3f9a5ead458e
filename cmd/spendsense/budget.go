package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spendsense/spendsense/internal/cli"
	"github.com/spendsense/spendsense/internal/report"
	"github.com/spf13/cobra"
)

const progressBarWidth = 30

func budgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "budget",
		Short: "Show monthly budget and savings goal progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			txns, err := store.Transactions(ctx)
			if err != nil {
				return fmt.Errorf("failed to get transactions: %w", err)
			}
			settings, err := store.Settings(ctx)
			if err != nil {
				return fmt.Errorf("failed to get settings: %w", err)
			}
			curr, err := displayCurrency(ctx, store)
			if err != nil {
				return err
			}

			now := time.Now()
			expense := report.MonthlyExpense(txns, now)
			income := report.MonthlyIncome(txns, now)

			fmt.Println(cli.FormatTitle("Budget — " + now.Format("January 2006")))

			budget := report.BudgetProgress(expense, settings.MonthlyBudget)
			fmt.Printf("Monthly budget  %s of %s (%.1f%%)\n",
				renderAmount(budget.Spent, curr), renderAmount(budget.Budget, curr), budget.Percent)
			fmt.Println(renderBar(budget.Percent, budget.Over))
			if budget.Over {
				fmt.Println(cli.FormatWarning("Over budget this month"))
			}
			fmt.Println()

			savings := report.SavingsProgress(income, expense, settings.SavingsGoal)
			fmt.Printf("%s Savings goal  %s of %s (%.1f%%)\n",
				cli.TargetIcon, renderAmount(savings.Savings, curr), renderAmount(savings.Goal, curr), savings.Percent)
			fmt.Println(renderBar(savings.Clamped, false))
			if savings.Reached {
				fmt.Println(cli.FormatSuccess("Savings goal reached"))
			}
			fmt.Println()

			// Per-category budgets for this month's spending.
			month := report.FilterByPeriod(txns, now, report.PeriodMonthly)
			totals := report.CategoryTotals(month)
			if len(totals) == 0 {
				return nil
			}

			cats, err := store.Categories(ctx)
			if err != nil {
				return fmt.Errorf("failed to get categories: %w", err)
			}
			limits := make(map[string]float64, len(cats))
			for _, c := range cats {
				limits[c.Name] = c.BudgetLimit
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintln(w, cli.HeaderStyle.Render("Category\tSpent\tLimit\t"))
			for _, ct := range totals {
				limit := limits[ct.Name]
				status := report.BudgetProgress(ct.Total, limit)

				limitCell := "-"
				if limit > 0 {
					limitCell = renderAmount(limit, curr)
				}
				marker := ""
				if limit > 0 && status.Over {
					marker = cli.ErrorStyle.Render("over")
				}
				fmt.Fprintf(w, "%s %s\t%s\t%s\t%s\n",
					ct.Icon, ct.Name, renderAmount(ct.Total, curr), limitCell, marker)
			}

			return nil
		},
	}
}

// renderBar draws a fixed-width progress bar. Percent is clamped for drawing
// only.
func renderBar(percent float64, over bool) string {
	p := percent
	if p > 100 {
		p = 100
	}
	if p < 0 {
		p = 0
	}
	filled := int(p / 100 * progressBarWidth)

	bar := strings.Repeat("█", filled) + strings.Repeat("░", progressBarWidth-filled)
	if over {
		return cli.ErrorStyle.Render(bar)
	}
	return cli.SuccessStyle.Render(bar)
}
