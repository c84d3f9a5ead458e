package report

import (
	"testing"
	"time"

	"github.com/spendsense/spendsense/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupTransactions_DailyTotalsAndTitle(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	txns := []model.Transaction{
		txnOn("2024-01-01", model.TypeExpense, 10),
		txnOn("2024-01-01", model.TypeIncome, 5),
	}

	groups := GroupTransactions(txns, "", GroupDaily, now)
	require.Len(t, groups, 1)

	g := groups[0]
	assert.Equal(t, "2024-01-01", g.Key)
	assert.Equal(t, "Today", g.Title)
	assert.Equal(t, float64(10), g.TotalExpense)
	assert.Equal(t, float64(5), g.TotalIncome)
	assert.Len(t, g.Transactions, 2)
}

func TestGroupTransactions_DailyTitles(t *testing.T) {
	now := time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)
	txns := []model.Transaction{
		txnOn("2024-01-10", model.TypeExpense, 1),
		txnOn("2024-01-09", model.TypeExpense, 1),
		txnOn("2024-01-05", model.TypeExpense, 1),
	}

	groups := GroupTransactions(txns, "", GroupDaily, now)
	require.Len(t, groups, 3)

	// Most recent group first.
	assert.Equal(t, "Today", groups[0].Title)
	assert.Equal(t, "Yesterday", groups[1].Title)
	assert.Equal(t, "5 January, Fri", groups[2].Title)
}

func TestGroupTransactions_WeeklyISOWeeks(t *testing.T) {
	now := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	txns := []model.Transaction{
		txnOn("2024-01-15", model.TypeExpense, 1), // ISO week 3
		txnOn("2024-01-08", model.TypeExpense, 2), // ISO week 2
		txnOn("2024-01-10", model.TypeExpense, 4), // ISO week 2
	}

	groups := GroupTransactions(txns, "", GroupWeekly, now)
	require.Len(t, groups, 2)

	assert.Equal(t, "2024-W03", groups[0].Key)
	assert.Equal(t, "Week 3, 2024", groups[0].Title)
	assert.Equal(t, "2024-W02", groups[1].Key)
	assert.Equal(t, float64(6), groups[1].TotalExpense)
}

func TestGroupTransactions_WeeklyThursdayAnchor(t *testing.T) {
	// Dec 31 2024 is a Tuesday; the ISO algorithm assigns it to week 1 of
	// 2025 because that week's Thursday falls in 2025.
	now := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	txns := []model.Transaction{txnOn("2024-12-31", model.TypeExpense, 1)}

	groups := GroupTransactions(txns, "", GroupWeekly, now)
	require.Len(t, groups, 1)
	assert.Equal(t, "2025-W01", groups[0].Key)
	assert.Equal(t, "Week 1, 2025", groups[0].Title)
}

func TestGroupTransactions_Monthly(t *testing.T) {
	now := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	txns := []model.Transaction{
		txnOn("2024-02-01", model.TypeExpense, 7),
		txnOn("2024-01-20", model.TypeIncome, 3),
	}

	groups := GroupTransactions(txns, "", GroupMonthly, now)
	require.Len(t, groups, 2)

	assert.Equal(t, "2024-02", groups[0].Key)
	assert.Equal(t, "February 2024", groups[0].Title)
	assert.Equal(t, "January 2024", groups[1].Title)
	assert.Equal(t, float64(3), groups[1].TotalIncome)
}

func TestGroupTransactions_Search(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	groceries := txnOn("2024-01-08", model.TypeExpense, 10)
	groceries.Notes = "Weekly Groceries"
	taxi := txnOn("2024-01-09", model.TypeExpense, 5)
	taxi.CategoryName = "Transport"

	txns := []model.Transaction{groceries, taxi}

	// Case-insensitive substring on notes.
	groups := GroupTransactions(txns, "grocer", GroupDaily, now)
	require.Len(t, groups, 1)
	assert.Equal(t, "2024-01-08", groups[0].Key)

	// Matches category name.
	groups = GroupTransactions(txns, "TRANSPORT", GroupDaily, now)
	require.Len(t, groups, 1)
	assert.Equal(t, "2024-01-09", groups[0].Key)

	// Matches the raw date string.
	groups = GroupTransactions(txns, "2024-01", GroupDaily, now)
	assert.Len(t, groups, 2)

	// No match.
	assert.Empty(t, GroupTransactions(txns, "flights", GroupDaily, now))

	// Empty term matches everything.
	assert.Len(t, GroupTransactions(txns, "", GroupDaily, now), 2)
}

func TestGroupTransactions_MemberOrderPreserved(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	first := txnOn("2024-01-05", model.TypeExpense, 1)
	first.ID = "txn_first"
	second := txnOn("2024-01-05", model.TypeExpense, 2)
	second.ID = "txn_second"

	groups := GroupTransactions([]model.Transaction{first, second}, "", GroupDaily, now)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Transactions, 2)
	assert.Equal(t, "txn_first", groups[0].Transactions[0].ID)
	assert.Equal(t, "txn_second", groups[0].Transactions[1].ID)
}
