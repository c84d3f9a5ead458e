package portability

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spendsense/spendsense/internal/common"
	"github.com/spendsense/spendsense/internal/model"
)

// ImportMode names which codec path accepted the content.
type ImportMode string

const (
	// ModeBackup means a full JSON backup replaced the store.
	ModeBackup ImportMode = "backup"
	// ModeCSV means rows were appended from an external CSV file.
	ModeCSV ImportMode = "csv"
)

// ImportSummary reports what an import did.
type ImportSummary struct {
	Mode         ImportMode
	Transactions int
}

// Import parses raw text as either a JSON backup or an external CSV file.
// A backup replaces the whole store atomically; CSV rows are prepended to
// existing transactions. Returns common.ErrInvalidFormat when neither format
// is recognized.
func Import(ctx context.Context, store Store, content string) (*ImportSummary, error) {
	trimmed := strings.TrimSpace(content)

	if strings.HasPrefix(trimmed, "{") {
		if summary, ok, err := importBackup(ctx, store, trimmed); ok {
			return summary, err
		}
	}

	return importCSV(ctx, store, content)
}

// importBackup handles the JSON path. The middle return is false when the
// content was not a recognizable backup and the CSV path should be tried.
func importBackup(ctx context.Context, store Store, content string) (*ImportSummary, bool, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &keys); err != nil {
		return nil, false, nil
	}
	if keys["transactions"] == nil || keys["categories"] == nil || keys["settings"] == nil {
		return nil, false, nil
	}

	var backup Backup
	if err := json.Unmarshal([]byte(content), &backup); err != nil {
		return nil, true, fmt.Errorf("%w: malformed backup: %v", common.ErrInvalidFormat, err)
	}
	if backup.Transactions == nil {
		backup.Transactions = []model.Transaction{}
	}
	if backup.Categories == nil {
		backup.Categories = []model.Category{}
	}

	if err := store.ReplaceAll(ctx, backup.Transactions, backup.Categories, backup.Settings); err != nil {
		return nil, true, err
	}

	slog.Info("imported backup",
		"transactions", len(backup.Transactions),
		"categories", len(backup.Categories))
	return &ImportSummary{Mode: ModeBackup, Transactions: len(backup.Transactions)}, true, nil
}

// importCSV handles the lenient external path: skip the header, take date,
// amount, and note from the first three columns, and default everything
// else. Rows that don't yield a positive amount are dropped rather than
// failing the whole file.
func importCSV(ctx context.Context, store Store, content string) (*ImportSummary, error) {
	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	cats, err := store.Categories(ctx)
	if err != nil {
		return nil, err
	}
	if len(cats) == 0 {
		return nil, fmt.Errorf("%w: no category to assign imports to", common.ErrUnknownCategory)
	}
	defaultCat := cats[0]

	today := time.Now().Format(model.DateLayout)
	// External files map the first three columns to date, amount, note.
	// Our own CSV export puts the base amount and notes further right; its
	// header identifies it.
	dateCol, amountCol, noteCol := 0, 1, 2
	var imported []model.Transaction

	for line := 0; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed line: skip it, keep going.
			slog.Debug("skipping malformed CSV line", "line", line, "error", err)
			continue
		}
		if line == 0 {
			if len(row) > 4 && row[4] == "Amount (Base)" {
				amountCol, noteCol = 4, 7
			}
			continue
		}
		if len(row) < 3 || len(row) <= amountCol {
			continue
		}

		date := strings.TrimSpace(row[dateCol])
		if _, err := time.Parse(model.DateLayout, date); err != nil {
			// Blank or unusable date defaults to today.
			date = today
		}
		amount, _ := strconv.ParseFloat(strings.TrimSpace(row[amountCol]), 64)
		if amount <= 0 {
			continue
		}
		note := ""
		if len(row) > noteCol {
			note = strings.TrimSpace(row[noteCol])
		}
		if note == "" {
			note = "Imported Entry"
		}

		imported = append(imported, model.Transaction{
			ID:            "import_" + uuid.NewString(),
			Amount:        amount,
			CategoryID:    defaultCat.ID,
			CategoryName:  defaultCat.Name,
			CategoryIcon:  defaultCat.Icon,
			Notes:         note,
			Date:          date,
			Time:          "12:00",
			Type:          model.TypeExpense,
			PaymentMethod: "Cash",
		})
	}

	if len(imported) == 0 {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidFormat, common.ErrNothingToImport)
	}

	if err := store.PrependTransactions(ctx, imported); err != nil {
		return nil, err
	}

	slog.Info("imported CSV rows", "count", len(imported))
	return &ImportSummary{Mode: ModeCSV, Transactions: len(imported)}, nil
}
