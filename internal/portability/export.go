// Package portability serializes the store to the JSON backup format and a
// CSV table, and parses both back. The JSON backup round-trips losslessly;
// CSV import is a lenient best-effort path for external files.
package portability

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spendsense/spendsense/internal/currency"
	"github.com/spendsense/spendsense/internal/model"
)

// Store is the slice of the persistence layer the codec needs.
type Store interface {
	Transactions(ctx context.Context) ([]model.Transaction, error)
	Categories(ctx context.Context) ([]model.Category, error)
	Settings(ctx context.Context) (model.Settings, error)
	ReplaceAll(ctx context.Context, txns []model.Transaction, cats []model.Category, settings model.Settings) error
	PrependTransactions(ctx context.Context, txns []model.Transaction) error
}

// Backup is the canonical backup document: all three collections in one JSON
// object.
type Backup struct {
	Transactions []model.Transaction `json:"transactions"`
	Categories   []model.Category    `json:"categories"`
	Settings     model.Settings      `json:"settings"`
}

// ExportJSON serializes the full store as a backup document.
func ExportJSON(ctx context.Context, store Store) (string, error) {
	txns, err := store.Transactions(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read transactions: %w", err)
	}
	cats, err := store.Categories(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read categories: %w", err)
	}
	settings, err := store.Settings(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read settings: %w", err)
	}

	data, err := json.Marshal(Backup{Transactions: txns, Categories: cats, Settings: settings})
	if err != nil {
		return "", fmt.Errorf("failed to marshal backup: %w", err)
	}
	return string(data), nil
}

// ExportCSV renders all transactions as an 8-column CSV table. Amounts carry
// two decimals; the display-currency column uses the currency from settings.
func ExportCSV(ctx context.Context, store Store) (string, error) {
	txns, err := store.Transactions(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read transactions: %w", err)
	}
	settings, err := store.Settings(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read settings: %w", err)
	}
	curr := currency.Lookup(settings.CurrencyCode)

	var sb strings.Builder
	w := csv.NewWriter(&sb)

	header := []string{
		"Date", "Time", "Type", "Category",
		"Amount (Base)", fmt.Sprintf("Amount (%s)", curr.Code),
		"Payment Method", "Notes",
	}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, t := range txns {
		row := []string{
			t.Date,
			t.Time,
			string(t.Type),
			t.CategoryName,
			fmt.Sprintf("%.2f", t.Amount),
			fmt.Sprintf("%.2f", currency.Convert(t.Amount, curr)),
			t.PaymentMethod,
			t.Notes,
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV: %w", err)
	}
	return sb.String(), nil
}
