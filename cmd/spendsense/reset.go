package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spendsense/spendsense/internal/cli"
	"github.com/spf13/cobra"
)

func resetCmd() *cobra.Command {
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all transactions, categories, and settings",
		Long: `Delete all stored data. Default categories and settings come back on
next use. The login session, if any, is preserved.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if !forceFlag {
				fmt.Print(cli.FormatWarning("This deletes all data. Type 'yes' to continue: "))
				reader := bufio.NewReader(os.Stdin)
				answer, _ := reader.ReadString('\n')
				if strings.TrimSpace(answer) != "yes" {
					fmt.Println("Aborted.")
					return nil
				}
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.ClearAll(ctx); err != nil {
				return fmt.Errorf("failed to clear store: %w", err)
			}

			fmt.Println(cli.FormatSuccess("All data cleared"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&forceFlag, "force", false, "skip the confirmation prompt")

	return cmd
}
