package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Category is a spending or income bucket. BudgetLimit is a monthly cap in
// base currency and is zero (meaningless) for income categories. Built-in
// categories have IsCustom false and cannot be deleted by the UI layer.
type Category struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Icon        string          `json:"icon"`
	BudgetLimit float64         `json:"budgetLimit"`
	IsCustom    bool            `json:"isCustom"`
	Type        TransactionType `json:"type"`
}

// NewCategoryID returns a fresh unique category identifier.
func NewCategoryID() string {
	return "cat_" + uuid.NewString()
}

// Validate checks the category's shape invariants.
func (c *Category) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil", ErrInvalidCategory)
	}
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidCategory)
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidCategory)
	}
	if c.BudgetLimit < 0 {
		return fmt.Errorf("%w: negative budget limit", ErrInvalidCategory)
	}
	if c.Type != TypeExpense && c.Type != TypeIncome {
		return fmt.Errorf("%w: bad type %q", ErrInvalidCategory, c.Type)
	}
	return nil
}

// DefaultCategories returns the built-in category set seeded on first run:
// six expense buckets with monthly limits and three income buckets.
func DefaultCategories() []Category {
	return []Category{
		{ID: "cat_1", Name: "Food", Icon: "🍔", BudgetLimit: 5000, IsCustom: false, Type: TypeExpense},
		{ID: "cat_2", Name: "Transport", Icon: "🚕", BudgetLimit: 2000, IsCustom: false, Type: TypeExpense},
		{ID: "cat_3", Name: "Shopping", Icon: "🛍️", BudgetLimit: 3000, IsCustom: false, Type: TypeExpense},
		{ID: "cat_4", Name: "Bills", Icon: "🧾", BudgetLimit: 4000, IsCustom: false, Type: TypeExpense},
		{ID: "cat_5", Name: "Entertainment", Icon: "🎬", BudgetLimit: 1500, IsCustom: false, Type: TypeExpense},
		{ID: "cat_6", Name: "Health", Icon: "💊", BudgetLimit: 1000, IsCustom: false, Type: TypeExpense},
		{ID: "cat_inc_1", Name: "Salary", Icon: "💰", BudgetLimit: 0, IsCustom: false, Type: TypeIncome},
		{ID: "cat_inc_2", Name: "Freelance", Icon: "💻", BudgetLimit: 0, IsCustom: false, Type: TypeIncome},
		{ID: "cat_inc_3", Name: "Investments", Icon: "📈", BudgetLimit: 0, IsCustom: false, Type: TypeIncome},
	}
}

// EmojiPicker lists the icon choices offered for custom categories.
var EmojiPicker = []string{
	"🍔", "🍕", "🍣", "☕", "🍻", "🚕", "✈️", "⛽", "🚑", "🏋️",
	"🎬", "🎮", "📱", "📚", "🎁", "🐶", "👶", "💅", "👕", "🏠",
	"💡", "📡", "🎓", "💸", "🏦", "🔧", "🧹", "🪴", "🎰", "🏳️‍🌈",
}
