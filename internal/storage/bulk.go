package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spendsense/spendsense/internal/model"
)

// ReplaceAll overwrites all three collections in a single SQL transaction.
// This backs the JSON backup import: from the caller's perspective the
// replacement is atomic, and exactly one change signal fires.
func (s *SQLiteStore) ReplaceAll(ctx context.Context, txns []model.Transaction, cats []model.Category, settings model.Settings) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if txns == nil {
		return fmt.Errorf("%w: transactions", ErrNilParameter)
	}
	if cats == nil {
		return fmt.Errorf("%w: categories", ErrNilParameter)
	}

	txnData, err := json.Marshal(txns)
	if err != nil {
		return fmt.Errorf("failed to marshal transactions: %w", err)
	}
	catData, err := json.Marshal(cats)
	if err != nil {
		return fmt.Errorf("failed to marshal categories: %w", err)
	}
	setData, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := putRecordTx(ctx, tx, keyTransactions, string(txnData)); err != nil {
		return err
	}
	if err := putRecordTx(ctx, tx, keyCategories, string(catData)); err != nil {
		return err
	}
	if err := putRecordTx(ctx, tx, keySettings, string(setData)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit replace: %w", err)
	}

	slog.Info("replaced store contents", "transactions", len(txns), "categories", len(cats))
	s.notifyChanged()
	return nil
}

// ClearAll deletes transactions, categories, and settings entirely, reverting
// to defaults on next read. The separately stored authentication session
// token survives.
func (s *SQLiteStore) ClearAll(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, key := range []string{keyTransactions, keyCategories, keySettings} {
		if err := deleteRecordTx(ctx, tx, key); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit clear: %w", err)
	}

	slog.Info("cleared all data")
	s.notifyChanged()
	return nil
}
