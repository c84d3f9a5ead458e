package report

import (
	"testing"
	"time"

	"github.com/spendsense/spendsense/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txnOn(date string, typ model.TransactionType, amount float64) model.Transaction {
	return model.Transaction{
		ID:            "txn_" + date,
		Amount:        amount,
		CategoryID:    "cat_1",
		CategoryName:  "Food",
		CategoryIcon:  "🍔",
		Date:          date,
		Time:          "12:00",
		Type:          typ,
		PaymentMethod: "Cash",
	}
}

func TestFilterByPeriod_Daily(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)
	txns := []model.Transaction{
		txnOn("2024-03-15", model.TypeExpense, 10),
		txnOn("2024-03-14", model.TypeExpense, 20),
	}

	got := FilterByPeriod(txns, now, PeriodDaily)
	require.Len(t, got, 1)
	assert.Equal(t, "2024-03-15", got[0].Date)
}

func TestFilterByPeriod_WeeklyBoundary(t *testing.T) {
	now := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)
	txns := []model.Transaction{
		txnOn("2024-03-15", model.TypeExpense, 1),
		txnOn("2024-03-08", model.TypeExpense, 2), // exactly 7 days ago: in
		txnOn("2024-03-07", model.TypeExpense, 3), // 8 days ago: out
		txnOn("2024-03-20", model.TypeExpense, 4), // future dates stay in
	}

	got := FilterByPeriod(txns, now, PeriodWeekly)
	require.Len(t, got, 3)

	dates := []string{got[0].Date, got[1].Date, got[2].Date}
	assert.Contains(t, dates, "2024-03-08")
	assert.NotContains(t, dates, "2024-03-07")
}

func TestFilterByPeriod_Monthly(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	txns := []model.Transaction{
		txnOn("2024-03-01", model.TypeExpense, 1),
		txnOn("2024-03-31", model.TypeExpense, 2),
		txnOn("2024-02-29", model.TypeExpense, 3),
		txnOn("2023-03-15", model.TypeExpense, 4), // same month, other year
	}

	got := FilterByPeriod(txns, now, PeriodMonthly)
	assert.Len(t, got, 2)
}

func TestFilterByPeriod_Quarterly(t *testing.T) {
	now := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC) // Q2
	txns := []model.Transaction{
		txnOn("2024-04-01", model.TypeExpense, 1), // Q2
		txnOn("2024-06-30", model.TypeExpense, 2), // Q2
		txnOn("2024-03-31", model.TypeExpense, 3), // Q1
		txnOn("2024-07-01", model.TypeExpense, 4), // Q3
		txnOn("2023-05-10", model.TypeExpense, 5), // Q2, other year
	}

	got := FilterByPeriod(txns, now, PeriodQuarterly)
	assert.Len(t, got, 2)
}

func TestFilterByPeriod_Yearly(t *testing.T) {
	now := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	txns := []model.Transaction{
		txnOn("2024-01-01", model.TypeExpense, 1),
		txnOn("2024-12-31", model.TypeExpense, 2),
		txnOn("2023-12-31", model.TypeExpense, 3),
	}

	got := FilterByPeriod(txns, now, PeriodYearly)
	assert.Len(t, got, 2)
}

func TestFilterByPeriod_SkipsUnparseableDates(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	bad := txnOn("15/03/2024", model.TypeExpense, 1)

	for _, p := range Periods {
		assert.Empty(t, FilterByPeriod([]model.Transaction{bad}, now, p), string(p))
	}
}

func TestPeriod_Valid(t *testing.T) {
	for _, p := range Periods {
		assert.True(t, p.Valid())
	}
	assert.False(t, Period("hourly").Valid())
}
