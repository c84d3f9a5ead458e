package main

import (
	"fmt"
	"os"

	"github.com/spendsense/spendsense/internal/cli"
	"github.com/spendsense/spendsense/internal/portability"
	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var (
		formatFlag string
		outFlag    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export data as a JSON backup or CSV table",
		Long: `Export all data. JSON produces a complete backup (transactions,
categories, settings) that import restores losslessly. CSV produces a
spreadsheet-friendly transaction table.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			var content string
			switch formatFlag {
			case "json":
				content, err = portability.ExportJSON(ctx, store)
			case "csv":
				content, err = portability.ExportCSV(ctx, store)
			default:
				return fmt.Errorf("invalid format %q (json or csv)", formatFlag)
			}
			if err != nil {
				return fmt.Errorf("failed to export: %w", err)
			}

			if outFlag == "" {
				fmt.Print(content)
				return nil
			}

			if err := os.WriteFile(outFlag, []byte(content), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outFlag, err)
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %s to %s", formatFlag, outFlag)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "json", "export format (json or csv)")
	cmd.Flags().StringVarP(&outFlag, "out", "o", "", "write to file instead of stdout")

	return cmd
}
