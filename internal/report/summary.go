package report

import (
	"sort"
	"strings"
	"time"

	"github.com/spendsense/spendsense/internal/model"
)

// MonthlyExpense sums expense amounts for the calendar month containing now.
func MonthlyExpense(txns []model.Transaction, now time.Time) float64 {
	return monthlyTotal(txns, now, model.TypeExpense)
}

// MonthlyIncome sums income amounts for the calendar month containing now.
func MonthlyIncome(txns []model.Transaction, now time.Time) float64 {
	return monthlyTotal(txns, now, model.TypeIncome)
}

func monthlyTotal(txns []model.Transaction, now time.Time, typ model.TransactionType) float64 {
	prefix := now.Format("2006-01")
	var sum float64
	for _, t := range txns {
		if t.Type == typ && strings.HasPrefix(t.Date, prefix) {
			sum += t.Amount
		}
	}
	return sum
}

// CategoryTotal is one category's accumulated expense total.
type CategoryTotal struct {
	Name  string
	Icon  string
	Total float64
}

// CategoryTotals sums expense amounts per category name over the given set,
// sorted descending by total. Income transactions are ignored. The caller is
// expected to have applied any period filter already.
func CategoryTotals(txns []model.Transaction) []CategoryTotal {
	totals := make(map[string]*CategoryTotal)
	order := make([]string, 0)

	for _, t := range txns {
		if t.Type != model.TypeExpense {
			continue
		}
		ct, ok := totals[t.CategoryName]
		if !ok {
			ct = &CategoryTotal{Name: t.CategoryName, Icon: t.CategoryIcon}
			totals[t.CategoryName] = ct
			order = append(order, t.CategoryName)
		}
		ct.Total += t.Amount
	}

	out := make([]CategoryTotal, 0, len(order))
	for _, name := range order {
		out = append(out, *totals[name])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})
	return out
}

// BudgetStatus describes monthly spend against the monthly budget limit.
type BudgetStatus struct {
	Spent   float64
	Budget  float64
	Percent float64 // unclamped; may exceed 100
	Over    bool
}

// BudgetProgress computes spend-versus-budget for the month. Percent is zero
// when no budget is set.
func BudgetProgress(monthlyExpense, monthlyBudget float64) BudgetStatus {
	status := BudgetStatus{
		Spent:  monthlyExpense,
		Budget: monthlyBudget,
		Over:   monthlyExpense > monthlyBudget,
	}
	if monthlyBudget > 0 {
		status.Percent = monthlyExpense / monthlyBudget * 100
	}
	return status
}

// SavingsStatus describes progress toward the savings goal.
type SavingsStatus struct {
	Savings float64 // monthly income minus monthly expense
	Goal    float64
	Percent float64 // unclamped; may exceed 100 or go negative
	Clamped float64 // Percent clamped to [0,100] for display
	Reached bool
}

// SavingsProgress computes savings-goal progress from the month's income and
// expense totals. The clamped value is what a progress bar renders; the raw
// percentage survives so "goal exceeded" remains detectable.
func SavingsProgress(monthlyIncome, monthlyExpense, goal float64) SavingsStatus {
	savings := monthlyIncome - monthlyExpense
	status := SavingsStatus{
		Savings: savings,
		Goal:    goal,
		Reached: savings >= goal,
	}
	if goal > 0 {
		status.Percent = savings / goal * 100
	}
	status.Clamped = status.Percent
	if status.Clamped > 100 {
		status.Clamped = 100
	}
	if status.Clamped < 0 {
		status.Clamped = 0
	}
	return status
}
