package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spendsense/spendsense/internal/cli"
	"github.com/spendsense/spendsense/internal/common"
	"github.com/spendsense/spendsense/internal/model"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage spending and income categories",
	}

	cmd.AddCommand(categoriesListCmd())
	cmd.AddCommand(categoriesAddCmd())
	cmd.AddCommand(categoriesDeleteCmd())
	cmd.AddCommand(categoriesIconsCmd())

	return cmd
}

func categoriesIconsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "icons",
		Short: "Show suggested category icons",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(strings.Join(model.EmojiPicker, " "))
		},
	}
}

func categoriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			cats, err := store.Categories(ctx)
			if err != nil {
				return fmt.Errorf("failed to get categories: %w", err)
			}

			curr, err := displayCurrency(ctx, store)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatTitle("Categories"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintln(w, cli.HeaderStyle.Render("ID\tName\tType\tBudget\tCustom"))
			for _, c := range cats {
				budget := "-"
				if c.BudgetLimit > 0 {
					budget = renderAmount(c.BudgetLimit, curr)
				}
				custom := ""
				if c.IsCustom {
					custom = "yes"
				}
				fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\t%s\n",
					c.ID, c.Icon, c.Name, c.Type, budget, custom)
			}

			return nil
		},
	}
}

func categoriesAddCmd() *cobra.Command {
	var (
		iconFlag   string
		typeFlag   string
		budgetFlag float64
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a custom category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			catType := model.TransactionType(typeFlag)
			if catType != model.TypeExpense && catType != model.TypeIncome {
				return fmt.Errorf("invalid category type %q (EXPENSE or INCOME)", typeFlag)
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			cat := model.Category{
				ID:          model.NewCategoryID(),
				Name:        args[0],
				Icon:        iconFlag,
				BudgetLimit: budgetFlag,
				IsCustom:    true,
				Type:        catType,
			}

			if err := store.SaveCategory(ctx, cat); err != nil {
				return fmt.Errorf("failed to save category: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added category %s %s (%s)", cat.Icon, cat.Name, cat.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&iconFlag, "icon", "i", "📁", "emoji icon for the category")
	cmd.Flags().StringVarP(&typeFlag, "type", "t", string(model.TypeExpense), "category type (EXPENSE or INCOME)")
	cmd.Flags().Float64VarP(&budgetFlag, "budget", "b", 0, "monthly budget limit in base currency")

	return cmd
}

func categoriesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a custom category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			cat, err := store.CategoryByID(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get category: %w", err)
			}
			if cat == nil {
				return fmt.Errorf("%w: %s", common.ErrUnknownCategory, args[0])
			}
			if !cat.IsCustom {
				return common.NewUserError(fmt.Sprintf("built-in category %q cannot be deleted", cat.Name), nil)
			}

			if err := store.DeleteCategory(ctx, cat.ID); err != nil {
				return fmt.Errorf("failed to delete category: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted category %s %s", cat.Icon, cat.Name)))
			return nil
		},
	}
}
