package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTransaction() Transaction {
	return Transaction{
		ID:            "txn_1",
		Amount:        150,
		CategoryID:    "cat_1",
		CategoryName:  "Food",
		CategoryIcon:  "🍔",
		Notes:         "lunch",
		Date:          "2024-01-15",
		Time:          "13:30",
		Type:          TypeExpense,
		PaymentMethod: "Cash",
	}
}

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		mutate  func(*Transaction)
		name    string
		wantErr string
	}{
		{name: "valid expense", mutate: func(_ *Transaction) {}},
		{
			name:   "valid income with custom payment method",
			mutate: func(tx *Transaction) { tx.Type = TypeIncome; tx.PaymentMethod = "Bank Transfer" },
		},
		{
			name:   "zero amount is allowed",
			mutate: func(tx *Transaction) { tx.Amount = 0 },
		},
		{
			name:    "missing id",
			mutate:  func(tx *Transaction) { tx.ID = "  " },
			wantErr: "missing ID",
		},
		{
			name:    "negative amount",
			mutate:  func(tx *Transaction) { tx.Amount = -1 },
			wantErr: "negative amount",
		},
		{
			name:    "missing category",
			mutate:  func(tx *Transaction) { tx.CategoryID = "" },
			wantErr: "missing category",
		},
		{
			name:    "malformed date",
			mutate:  func(tx *Transaction) { tx.Date = "15/01/2024" },
			wantErr: "bad date",
		},
		{
			name:    "malformed time",
			mutate:  func(tx *Transaction) { tx.Time = "1pm" },
			wantErr: "bad time",
		},
		{
			name:    "unknown type",
			mutate:  func(tx *Transaction) { tx.Type = "TRANSFER" },
			wantErr: "bad type",
		},
		{
			name:    "blank payment method",
			mutate:  func(tx *Transaction) { tx.PaymentMethod = "" },
			wantErr: "missing payment method",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTransaction()
			tt.mutate(&tx)

			err := tx.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidTransaction)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewTransactionID_Unique(t *testing.T) {
	a := NewTransactionID()
	b := NewTransactionID()

	assert.True(t, strings.HasPrefix(a, "txn_"))
	assert.NotEqual(t, a, b)
}

func TestCategory_Validate(t *testing.T) {
	valid := Category{ID: "cat_x", Name: "Pets", Icon: "🐶", BudgetLimit: 500, IsCustom: true, Type: TypeExpense}
	assert.NoError(t, valid.Validate())

	missingName := valid
	missingName.Name = ""
	assert.ErrorIs(t, missingName.Validate(), ErrInvalidCategory)

	negativeLimit := valid
	negativeLimit.BudgetLimit = -10
	assert.ErrorIs(t, negativeLimit.Validate(), ErrInvalidCategory)
}

func TestDefaultCategories_Shape(t *testing.T) {
	cats := DefaultCategories()
	require.Len(t, cats, 9)

	var expense, income int
	for _, c := range cats {
		require.NoError(t, c.Validate())
		assert.False(t, c.IsCustom)
		switch c.Type {
		case TypeExpense:
			expense++
		case TypeIncome:
			income++
			assert.Zero(t, c.BudgetLimit)
		}
	}
	assert.Equal(t, 6, expense)
	assert.Equal(t, 3, income)
}
