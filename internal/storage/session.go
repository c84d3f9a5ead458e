package storage

import (
	"context"

	"github.com/spendsense/spendsense/internal/common"
)

// Session returns the stored authentication session token. The token is
// written and read by the external auth layer only; the core never inspects
// it.
func (s *SQLiteStore) Session(ctx context.Context) (string, error) {
	if err := validateContext(ctx); err != nil {
		return "", err
	}

	token, ok, err := s.getRecord(ctx, keySession)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", common.ErrNotFound
	}
	return token, nil
}

// SaveSession stores the authentication session token. Session changes are
// not data changes and do not broadcast on the bus.
func (s *SQLiteStore) SaveSession(ctx context.Context, token string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(token, "token"); err != nil {
		return err
	}
	return s.putRecord(ctx, keySession, token)
}

// ClearSession removes the session token; no-op if absent.
func (s *SQLiteStore) ClearSession(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := deleteRecordTx(ctx, tx, keySession); err != nil {
		return err
	}
	return tx.Commit()
}
