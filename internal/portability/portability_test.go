package portability

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spendsense/spendsense/internal/common"
	"github.com/spendsense/spendsense/internal/events"
	"github.com/spendsense/spendsense/internal/model"
	"github.com/spendsense/spendsense/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestStore(t *testing.T) *storage.SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := storage.NewSQLiteStore(dbPath, events.NewBus())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func seedTransaction(t *testing.T, store *storage.SQLiteStore, id string, amount float64, notes string) model.Transaction {
	t.Helper()
	txn := model.Transaction{
		ID:            id,
		Amount:        amount,
		CategoryID:    "cat_1",
		CategoryName:  "Food",
		CategoryIcon:  "🍔",
		Notes:         notes,
		Date:          "2024-01-15",
		Time:          "12:00",
		Type:          model.TypeExpense,
		PaymentMethod: "Cash",
	}
	require.NoError(t, store.SaveTransaction(context.Background(), txn))
	return txn
}

func TestExportImport_JSONRoundTrip(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	saved := seedTransaction(t, store, "txn_rt", 150, `lunch with "friends"`)
	settings, err := store.Settings(ctx)
	require.NoError(t, err)
	settings.CurrencyCode = "EUR"
	settings.MonthlyBudget = 30000
	require.NoError(t, store.SaveSettings(ctx, settings))

	exported, err := ExportJSON(ctx, store)
	require.NoError(t, err)

	// Import into a fresh store.
	fresh := createTestStore(t)
	summary, err := Import(ctx, fresh, exported)
	require.NoError(t, err)
	assert.Equal(t, ModeBackup, summary.Mode)
	assert.Equal(t, 1, summary.Transactions)

	txns, err := fresh.Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, saved, txns[0])

	cats, err := fresh.Categories(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, 9)

	gotSettings, err := fresh.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "EUR", gotSettings.CurrencyCode)
	assert.Equal(t, float64(30000), gotSettings.MonthlyBudget)
}

func TestImport_BackupReplacesExistingData(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	seedTransaction(t, store, "txn_keep", 10, "kept")
	exported, err := ExportJSON(ctx, store)
	require.NoError(t, err)

	seedTransaction(t, store, "txn_extra", 20, "dropped by restore")

	_, err = Import(ctx, store, exported)
	require.NoError(t, err)

	txns, err := store.Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "txn_keep", txns[0].ID)
}

func TestExportCSV_HeaderAndEscaping(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	seedTransaction(t, store, "txn_csv", 100, `He said "hi"`)

	out, err := ExportCSV(ctx, store)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t,
		"Date,Time,Type,Category,Amount (Base),Amount (INR),Payment Method,Notes",
		lines[0])
	// RFC4180: embedded quotes doubled, field wrapped in quotes.
	assert.Contains(t, lines[1], `"He said ""hi"""`)
	assert.Contains(t, lines[1], "100.00")
	assert.Equal(t, "2024-01-15", lines[1][:10])
}

func TestExportCSV_UsesDisplayCurrency(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	seedTransaction(t, store, "txn_usd", 100, "converted")
	settings, err := store.Settings(ctx)
	require.NoError(t, err)
	settings.CurrencyCode = "USD"
	require.NoError(t, store.SaveSettings(ctx, settings))

	out, err := ExportCSV(ctx, store)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, lines[0], "Amount (USD)")
	assert.Contains(t, lines[1], "1.20") // 100 * 0.012
}

func TestImport_CSVAppendsAsExpenses(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	existing := seedTransaction(t, store, "txn_existing", 5, "existing")

	csvContent := "Date,Amount,Note\n" +
		"2024-02-01,100,Office supplies\n" +
		",50,\n" + // blank date defaults to today, blank note defaults
		"2024-02-03,0,free stuff\n" + // non-positive amount: dropped
		"2024-02-04,-3,refund\n" + // negative: dropped
		"short,row\n" // fewer than 3 fields: dropped

	summary, err := Import(ctx, store, csvContent)
	require.NoError(t, err)
	assert.Equal(t, ModeCSV, summary.Mode)
	assert.Equal(t, 2, summary.Transactions)

	txns, err := store.Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 3)

	// Imported rows are prepended; existing data survives.
	assert.Equal(t, existing.ID, txns[2].ID)

	first := txns[0]
	assert.Equal(t, float64(100), first.Amount)
	assert.Equal(t, "Office supplies", first.Notes)
	assert.Equal(t, model.TypeExpense, first.Type)
	assert.Equal(t, "12:00", first.Time)
	assert.Equal(t, "Cash", first.PaymentMethod)
	// Forced to the store's first category.
	assert.Equal(t, "cat_1", first.CategoryID)
	assert.Equal(t, "Food", first.CategoryName)

	second := txns[1]
	assert.Equal(t, "Imported Entry", second.Notes)
	assert.NotEmpty(t, second.Date)
}

func TestImport_CSVRoundTripThroughExport(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	seedTransaction(t, store, "txn_src", 100, `He said "hi"`)
	out, err := ExportCSV(ctx, store)
	require.NoError(t, err)

	fresh := createTestStore(t)
	summary, err := Import(ctx, fresh, out)
	require.NoError(t, err)
	require.Equal(t, 1, summary.Transactions)

	txns, err := fresh.Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 1)

	// Our own export header is recognized, so the base amount and notes
	// columns survive; everything else is forced to import defaults.
	got := txns[0]
	assert.Equal(t, "2024-01-15", got.Date)
	assert.Equal(t, float64(100), got.Amount)
	assert.Equal(t, `He said "hi"`, got.Notes)
	assert.Equal(t, model.TypeExpense, got.Type)
	assert.Equal(t, "cat_1", got.CategoryID)
}

func TestImport_UnrecognizedContent(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	_, err := Import(ctx, store, "just some prose with no structure")
	assert.ErrorIs(t, err, common.ErrInvalidFormat)

	// JSON missing the required keys is not a backup, and not CSV either.
	_, err = Import(ctx, store, `{"transactions": []}`)
	assert.ErrorIs(t, err, common.ErrInvalidFormat)
}
