package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spendsense/spendsense/internal/cli"
	"github.com/spendsense/spendsense/internal/common"
	"github.com/spendsense/spendsense/internal/portability"
	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a JSON backup or CSV file",
		Long: `Import data from a file. A JSON backup replaces all existing data;
a CSV file has its rows added to the existing transactions. Unrecognized
content leaves the store untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			content, err := readWithProgress(args[0])
			if err != nil {
				return err
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			summary, err := portability.Import(ctx, store, content)
			if err != nil {
				return fmt.Errorf("failed to import: %w", err)
			}

			common.LogInfo("import complete", common.Fields{
				"mode":         string(summary.Mode),
				"transactions": summary.Transactions,
			})

			switch summary.Mode {
			case portability.ModeBackup:
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Restored backup with %d transactions", summary.Transactions)))
			case portability.ModeCSV:
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d transactions from CSV", summary.Transactions)))
			}
			return nil
		},
	}
}

// readWithProgress reads the whole file, showing a byte progress bar on
// stderr for large files.
func readWithProgress(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}

	bar := progressbar.DefaultBytes(info.Size(), "reading")
	defer func() { _ = bar.Close() }()

	var buf bytes.Buffer
	if _, err := io.Copy(io.MultiWriter(&buf, bar), f); err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return buf.String(), nil
}
