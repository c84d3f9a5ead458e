package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spendsense/spendsense/internal/model"
)

// Transactions returns all stored transactions. New transactions sit at the
// head of the list; edits keep their position, so the order is
// insertion-derived rather than sorted. Returns an empty list when nothing is
// stored, and also when the stored document is corrupt: a broken collection
// is logged and treated as absent rather than poisoning every read.
func (s *SQLiteStore) Transactions(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	raw, ok, err := s.getRecord(ctx, keyTransactions)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.Transaction{}, nil
	}

	var txns []model.Transaction
	if err := json.Unmarshal([]byte(raw), &txns); err != nil {
		slog.Warn("stored transactions are corrupt, treating as empty", "error", err)
		return []model.Transaction{}, nil
	}
	if txns == nil {
		txns = []model.Transaction{}
	}
	return txns, nil
}

// SaveTransaction upserts by id: an existing transaction is replaced in
// place, a new one is prepended.
func (s *SQLiteStore) SaveTransaction(ctx context.Context, txn model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := txn.Validate(); err != nil {
		return err
	}

	txns, err := s.Transactions(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range txns {
		if txns[i].ID == txn.ID {
			txns[i] = txn
			replaced = true
			break
		}
	}
	if !replaced {
		txns = append([]model.Transaction{txn}, txns...)
	}

	if err := s.writeTransactions(ctx, txns); err != nil {
		return err
	}

	slog.Debug("saved transaction", "id", txn.ID, "replaced", replaced)
	s.notifyChanged()
	return nil
}

// DeleteTransaction removes the matching record; no-op if absent. The change
// signal fires either way, matching the one-signal-per-mutating-call
// contract.
func (s *SQLiteStore) DeleteTransaction(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	txns, err := s.Transactions(ctx)
	if err != nil {
		return err
	}

	kept := txns[:0]
	for _, t := range txns {
		if t.ID != id {
			kept = append(kept, t)
		}
	}

	if err := s.writeTransactions(ctx, kept); err != nil {
		return err
	}

	s.notifyChanged()
	return nil
}

// PrependTransactions inserts a batch ahead of the existing list in a single
// write. Used by the CSV import path, which appends to existing data rather
// than replacing it.
func (s *SQLiteStore) PrependTransactions(ctx context.Context, newTxns []model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if newTxns == nil {
		return fmt.Errorf("%w: transactions", ErrNilParameter)
	}
	for i := range newTxns {
		if err := newTxns[i].Validate(); err != nil {
			return fmt.Errorf("transaction at index %d: %w", i, err)
		}
	}

	current, err := s.Transactions(ctx)
	if err != nil {
		return err
	}

	combined := make([]model.Transaction, 0, len(newTxns)+len(current))
	combined = append(combined, newTxns...)
	combined = append(combined, current...)

	if err := s.writeTransactions(ctx, combined); err != nil {
		return err
	}

	slog.Info("prepended transactions", "count", len(newTxns))
	s.notifyChanged()
	return nil
}

func (s *SQLiteStore) writeTransactions(ctx context.Context, txns []model.Transaction) error {
	data, err := json.Marshal(txns)
	if err != nil {
		return fmt.Errorf("failed to marshal transactions: %w", err)
	}
	return s.putRecord(ctx, keyTransactions, string(data))
}
