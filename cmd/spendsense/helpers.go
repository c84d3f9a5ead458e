package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spendsense/spendsense/internal/config"
	"github.com/spendsense/spendsense/internal/currency"
	"github.com/spendsense/spendsense/internal/events"
	"github.com/spendsense/spendsense/internal/model"
	"github.com/spendsense/spendsense/internal/storage"
)

// initStore opens the database at the configured path, runs migrations, and
// wires the change bus. Callers must Close the returned store.
func initStore(ctx context.Context) (*storage.SQLiteStore, error) {
	dbPath := config.DatabasePath()

	bus := events.NewBus()
	bus.Subscribe(events.StoreChanged, func() {
		slog.Debug("store changed")
	})

	store, err := storage.NewSQLiteStore(dbPath, bus)
	if err != nil {
		return nil, fmt.Errorf("failed to open store at %s: %w", dbPath, err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate store: %w", err)
	}

	return store, nil
}

// displayCurrency returns the currency selected in settings.
func displayCurrency(ctx context.Context, store *storage.SQLiteStore) (currency.Currency, error) {
	settings, err := store.Settings(ctx)
	if err != nil {
		return currency.Currency{}, err
	}
	return currency.Lookup(settings.CurrencyCode), nil
}

// renderAmount formats a base-currency amount in the display currency with
// its symbol prepended.
func renderAmount(amountBase float64, curr currency.Currency) string {
	return curr.Symbol + currency.Format(amountBase, curr)
}

// findCategory resolves a category by id or, failing that, by
// case-sensitive name.
func findCategory(cats []model.Category, idOrName string) *model.Category {
	for i := range cats {
		if cats[i].ID == idOrName {
			return &cats[i]
		}
	}
	for i := range cats {
		if cats[i].Name == idOrName {
			return &cats[i]
		}
	}
	return nil
}

// todayDate and nowTime give flag defaults for new transactions.
func todayDate() string {
	return time.Now().Format(model.DateLayout)
}

func nowTime() string {
	return time.Now().Format(model.TimeLayout)
}
