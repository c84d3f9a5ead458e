package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spendsense/spendsense/internal/cli"
	"github.com/spendsense/spendsense/internal/common"
	"github.com/spendsense/spendsense/internal/model"
	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	var (
		categoryFlag string
		notesFlag    string
		dateFlag     string
		timeFlag     string
		paymentFlag  string
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Record a transaction",
		Long: `Record a new transaction in base currency. The category decides whether
it counts as expense or income; its name and icon are captured as of now, so
renaming the category later leaves this entry untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil || amount < 0 {
				return fmt.Errorf("invalid amount %q", args[0])
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			cats, err := store.Categories(ctx)
			if err != nil {
				return fmt.Errorf("failed to get categories: %w", err)
			}
			cat := findCategory(cats, categoryFlag)
			if cat == nil {
				return fmt.Errorf("%w: %q", common.ErrUnknownCategory, categoryFlag)
			}

			txn := model.Transaction{
				ID:            model.NewTransactionID(),
				Amount:        amount,
				CategoryID:    cat.ID,
				CategoryName:  cat.Name,
				CategoryIcon:  cat.Icon,
				Notes:         notesFlag,
				Date:          dateFlag,
				Time:          timeFlag,
				Type:          cat.Type,
				PaymentMethod: paymentFlag,
			}

			if err := store.SaveTransaction(ctx, txn); err != nil {
				return fmt.Errorf("failed to save transaction: %w", err)
			}

			curr, err := displayCurrency(ctx, store)
			if err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s %s %s (%s)",
				cat.Icon, cat.Name, renderAmount(txn.Amount, curr), txn.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&categoryFlag, "category", "c", "", "category id or name (required)")
	cmd.Flags().StringVarP(&notesFlag, "notes", "n", "", "free-text notes")
	cmd.Flags().StringVar(&dateFlag, "date", todayDate(), "calendar date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&timeFlag, "time", nowTime(), "time of day (HH:MM)")
	cmd.Flags().StringVarP(&paymentFlag, "payment", "p", model.PaymentMethods[0],
		fmt.Sprintf("payment method (%s, or free text)", strings.Join(model.PaymentMethods, ", ")))
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func editCmd() *cobra.Command {
	var (
		amountFlag   string
		categoryFlag string
		notesFlag    string
		dateFlag     string
		timeFlag     string
		paymentFlag  string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing transaction",
		Long: `Update fields of an existing transaction. The id and list position are
preserved; only the provided flags change.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			txns, err := store.Transactions(ctx)
			if err != nil {
				return fmt.Errorf("failed to get transactions: %w", err)
			}

			var txn *model.Transaction
			for i := range txns {
				if txns[i].ID == id {
					txn = &txns[i]
					break
				}
			}
			if txn == nil {
				return fmt.Errorf("transaction %q: %w", id, common.ErrNotFound)
			}

			if cmd.Flags().Changed("amount") {
				amount, err := strconv.ParseFloat(amountFlag, 64)
				if err != nil || amount < 0 {
					return fmt.Errorf("invalid amount %q", amountFlag)
				}
				txn.Amount = amount
			}
			if cmd.Flags().Changed("category") {
				cats, err := store.Categories(ctx)
				if err != nil {
					return fmt.Errorf("failed to get categories: %w", err)
				}
				cat := findCategory(cats, categoryFlag)
				if cat == nil {
					return fmt.Errorf("%w: %q", common.ErrUnknownCategory, categoryFlag)
				}
				txn.CategoryID = cat.ID
				txn.CategoryName = cat.Name
				txn.CategoryIcon = cat.Icon
				txn.Type = cat.Type
			}
			if cmd.Flags().Changed("notes") {
				txn.Notes = notesFlag
			}
			if cmd.Flags().Changed("date") {
				txn.Date = dateFlag
			}
			if cmd.Flags().Changed("time") {
				txn.Time = timeFlag
			}
			if cmd.Flags().Changed("payment") {
				txn.PaymentMethod = paymentFlag
			}

			if err := store.SaveTransaction(ctx, *txn); err != nil {
				return fmt.Errorf("failed to save transaction: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Updated " + id))
			return nil
		},
	}

	cmd.Flags().StringVarP(&amountFlag, "amount", "a", "", "amount in base currency")
	cmd.Flags().StringVarP(&categoryFlag, "category", "c", "", "category id or name")
	cmd.Flags().StringVarP(&notesFlag, "notes", "n", "", "free-text notes")
	cmd.Flags().StringVar(&dateFlag, "date", "", "calendar date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&timeFlag, "time", "", "time of day (HH:MM)")
	cmd.Flags().StringVarP(&paymentFlag, "payment", "p", "", "payment method")

	return cmd
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteTransaction(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete transaction: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Deleted " + args[0]))
			return nil
		},
	}
}
