package main

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spendsense/spendsense/internal/cli"
	"github.com/spendsense/spendsense/internal/common"
	"github.com/spendsense/spendsense/internal/currency"
	"github.com/spendsense/spendsense/internal/model"
	"github.com/spf13/cobra"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View and change application settings",
	}

	cmd.AddCommand(settingsShowCmd())
	cmd.AddCommand(settingsSetCmd())
	cmd.AddCommand(settingsCurrenciesCmd())

	return cmd
}

func settingsCurrenciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "currencies",
		Short: "List selectable display currencies",
		RunE: func(_ *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintln(w, cli.HeaderStyle.Render("Code\tName\tSymbol\tRate (per INR)"))
			for _, c := range currency.All() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%g\n", c.Code, c.Name, c.Symbol, c.Rate)
			}
			return nil
		},
	}
}

func settingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			settings, err := store.Settings(ctx)
			if err != nil {
				return fmt.Errorf("failed to get settings: %w", err)
			}
			curr := currency.Lookup(settings.CurrencyCode)

			fmt.Println(cli.FormatTitle("Settings"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			resolved := model.ResolveTheme(settings.Theme, lipgloss.HasDarkBackground())

			fmt.Fprintf(w, "currency\t%s, %s (%s)\n", curr.Code, curr.Name, curr.Symbol)
			fmt.Fprintf(w, "theme\t%s (renders as %s)\n", settings.Theme, resolved)
			fmt.Fprintf(w, "budget\t%s\n", renderAmount(settings.MonthlyBudget, curr))
			fmt.Fprintf(w, "goal\t%s\n", renderAmount(settings.SavingsGoal, curr))
			fmt.Fprintf(w, "name\t%s\n", settings.Profile.Name)
			fmt.Fprintf(w, "username\t%s\n", settings.Profile.Username)
			fmt.Fprintf(w, "avatar\t%s\n", settings.Profile.AvatarID)

			return nil
		},
	}
}

func settingsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change a setting",
		Long: `Change one setting. Keys: currency, theme, budget, goal, name,
username, avatar. Budget and goal are amounts in the base currency.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			key, value := args[0], args[1]

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			settings, err := store.Settings(ctx)
			if err != nil {
				return fmt.Errorf("failed to get settings: %w", err)
			}

			switch key {
			case "currency":
				if !currency.Known(value) {
					return fmt.Errorf("%w: %s", common.ErrUnknownCurrency, value)
				}
				settings.CurrencyCode = value
			case "theme":
				theme := model.Theme(value)
				if theme != model.ThemeDark && theme != model.ThemeLight && theme != model.ThemeSystem {
					return common.NewUserError(fmt.Sprintf("invalid theme %q (dark, light, system)", value), nil)
				}
				settings.Theme = theme
			case "budget":
				amount, err := parseAmountSetting(value)
				if err != nil {
					return err
				}
				settings.MonthlyBudget = amount
			case "goal":
				amount, err := parseAmountSetting(value)
				if err != nil {
					return err
				}
				settings.SavingsGoal = amount
			case "name":
				settings.Profile.Name = value
			case "username":
				settings.Profile.Username = value
			case "avatar":
				if !slices.Contains(model.Avatars, value) {
					return common.NewUserError(fmt.Sprintf("unknown avatar %q (one of %s)", value, strings.Join(model.Avatars, " ")), nil)
				}
				settings.Profile.AvatarID = value
			default:
				return common.NewUserError(fmt.Sprintf("unknown setting %q", key), nil)
			}

			if err := store.SaveSettings(ctx, settings); err != nil {
				return fmt.Errorf("failed to save settings: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Set %s to %s", key, value)))
			return nil
		},
	}
}

func parseAmountSetting(value string) (float64, error) {
	amount, err := strconv.ParseFloat(value, 64)
	if err != nil || amount < 0 {
		return 0, common.NewUserError(fmt.Sprintf("invalid amount %q", value), err)
	}
	return amount, nil
}
