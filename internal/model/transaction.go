// Package model defines the core domain types: transactions, categories,
// settings. JSON field names mirror the on-disk backup format, so exported
// backups remain importable verbatim.
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-date format used everywhere a date is stored.
const DateLayout = "2006-01-02"

// TimeLayout is the hour:minute format used everywhere a time is stored.
const TimeLayout = "15:04"

// TransactionType indicates whether a transaction is money in or money out.
type TransactionType string

const (
	// TypeExpense represents money leaving the user's pocket.
	TypeExpense TransactionType = "EXPENSE"
	// TypeIncome represents money coming in.
	TypeIncome TransactionType = "INCOME"
)

// PaymentMethods are the built-in payment method choices. A transaction may
// also carry a free-text custom method.
var PaymentMethods = []string{"Cash", "Card", "UPI"}

// Transaction is a single money movement. Amount is always expressed in the
// base currency regardless of the display currency preference; conversion
// happens only at render time. The category name and icon are a snapshot
// taken at creation time, so renaming a category later does not rewrite
// history.
type Transaction struct {
	ID            string          `json:"id"`
	Amount        float64         `json:"amount"`
	CategoryID    string          `json:"categoryId"`
	CategoryName  string          `json:"categoryName"`
	CategoryIcon  string          `json:"categoryIcon"`
	Notes         string          `json:"notes"`
	Date          string          `json:"date"`
	Time          string          `json:"time"`
	Type          TransactionType `json:"type"`
	PaymentMethod string          `json:"paymentMethod"`
}

// Transaction validation errors.
var (
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidCategory    = errors.New("invalid category")
)

// NewTransactionID returns a fresh unique transaction identifier.
func NewTransactionID() string {
	return "txn_" + uuid.NewString()
}

// Validate checks the transaction's shape invariants.
func (t *Transaction) Validate() error {
	if t == nil {
		return fmt.Errorf("%w: nil", ErrInvalidTransaction)
	}
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidTransaction)
	}
	if t.Amount < 0 {
		return fmt.Errorf("%w: negative amount", ErrInvalidTransaction)
	}
	if t.CategoryID == "" {
		return fmt.Errorf("%w: missing category", ErrInvalidTransaction)
	}
	if _, err := time.Parse(DateLayout, t.Date); err != nil {
		return fmt.Errorf("%w: bad date %q", ErrInvalidTransaction, t.Date)
	}
	if _, err := time.Parse(TimeLayout, t.Time); err != nil {
		return fmt.Errorf("%w: bad time %q", ErrInvalidTransaction, t.Time)
	}
	if t.Type != TypeExpense && t.Type != TypeIncome {
		return fmt.Errorf("%w: bad type %q", ErrInvalidTransaction, t.Type)
	}
	if strings.TrimSpace(t.PaymentMethod) == "" {
		return fmt.Errorf("%w: missing payment method", ErrInvalidTransaction)
	}
	return nil
}

// ParsedDate returns the transaction's calendar date. The boolean is false
// when the stored date string does not parse.
func (t *Transaction) ParsedDate() (time.Time, bool) {
	d, err := time.Parse(DateLayout, t.Date)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
