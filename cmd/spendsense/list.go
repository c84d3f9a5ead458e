package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spendsense/spendsense/internal/cli"
	"github.com/spendsense/spendsense/internal/model"
	"github.com/spendsense/spendsense/internal/report"
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	var (
		searchFlag string
		groupFlag  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions grouped by day, week, or month",
		Long: `Display transactions bucketed by date, most recent group first, with
per-group expense and income totals. The search term matches notes, category
names, and dates.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			mode := report.GroupMode(groupFlag)
			if !mode.Valid() {
				return fmt.Errorf("invalid group mode %q (daily, weekly, monthly)", groupFlag)
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

			groups := report.GroupTransactions(txns, searchFlag, mode, time.Now())
			if len(groups) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No transactions found."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			for _, g := range groups {
				header := cli.TitleStyle.Render(g.Title)
				if g.TotalExpense > 0 {
					header += "  " + cli.ExpenseStyle.Render("-"+renderAmount(g.TotalExpense, curr))
				}
				if g.TotalIncome > 0 {
					header += "  " + cli.IncomeStyle.Render("+"+renderAmount(g.TotalIncome, curr))
				}
				fmt.Fprintln(w, header)

				for _, t := range g.Transactions {
					amount := renderAmount(t.Amount, curr)
					if t.Type == model.TypeExpense {
						amount = cli.ExpenseStyle.Render("-" + amount)
					} else {
						amount = cli.IncomeStyle.Render("+" + amount)
					}
					fmt.Fprintf(w, "  %s %s\t%s\t%s %s\t%s\t%s\n",
						t.CategoryIcon, t.CategoryName, amount,
						t.Date, t.Time, t.PaymentMethod,
						cli.SubtleStyle.Render(t.Notes))
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&searchFlag, "search", "s", "", "filter by notes, category, or date")
	cmd.Flags().StringVarP(&groupFlag, "group", "g", "daily", "grouping granularity (daily, weekly, monthly)")

	return cmd
}
