// Package storage provides the data persistence layer: three JSON record
// collections (transactions, categories, settings) plus the auth session
// token, stored under fixed keys in a single SQLite table. Every mutating
// operation publishes a change notification on the event bus after the write
// lands.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spendsense/spendsense/internal/events"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Record keys. Each key addresses one independently stored JSON document.
const (
	keyTransactions = "transactions"
	keyCategories   = "categories"
	keySettings     = "settings"
	keySession      = "session"
)

// SQLiteStore implements the persistent store using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	bus    *events.Bus
	dbPath string
}

// NewSQLiteStore creates a new SQLite store instance. The bus may be nil when
// no consumer needs change notifications.
func NewSQLiteStore(dbPath string, bus *events.Bus) (*SQLiteStore, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		bus:    bus,
		dbPath: dbPath,
	}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// notifyChanged broadcasts the fire-and-forget change signal. Best effort:
// consumers not listening at this moment miss it, there is no replay.
func (s *SQLiteStore) notifyChanged() {
	if s.bus != nil {
		s.bus.Publish(events.StoreChanged)
	}
}
