package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spendsense/spendsense/internal/model"
)

// GroupMode selects the granularity used to bucket transactions.
type GroupMode string

const (
	// GroupDaily buckets by calendar date.
	GroupDaily GroupMode = "daily"
	// GroupWeekly buckets by ISO-8601 week.
	GroupWeekly GroupMode = "weekly"
	// GroupMonthly buckets by calendar month.
	GroupMonthly GroupMode = "monthly"
)

// Valid reports whether m is a known grouping mode.
func (m GroupMode) Valid() bool {
	switch m {
	case GroupDaily, GroupWeekly, GroupMonthly:
		return true
	}
	return false
}

// Group is a bucket of transactions sharing a date-derived key, with running
// expense and income totals in base currency. Member order preserves the
// input order.
type Group struct {
	Key          string
	Title        string
	TotalExpense float64
	TotalIncome  float64
	Transactions []model.Transaction
}

// GroupTransactions buckets transactions by the given mode, most recent group
// first. The search term is matched case-insensitively against notes,
// category name, and the raw date string; an empty term matches everything.
// Transactions with unparseable dates are skipped.
func GroupTransactions(txns []model.Transaction, search string, mode GroupMode, now time.Time) []Group {
	groups := make(map[string]*Group)
	lowerSearch := strings.ToLower(search)

	for _, t := range txns {
		if lowerSearch != "" && !matchesSearch(t, lowerSearch) {
			continue
		}

		d, ok := t.ParsedDate()
		if !ok {
			continue
		}

		var key, title string
		switch mode {
		case GroupDaily:
			key = t.Date
			title = dayTitle(d, now)
		case GroupWeekly:
			year, week := d.ISOWeek()
			// Zero-padded week keeps lexicographic order chronological.
			key = fmt.Sprintf("%d-W%02d", year, week)
			title = fmt.Sprintf("Week %d, %d", week, year)
		case GroupMonthly:
			key = t.Date[:7]
			title = d.Format("January 2006")
		default:
			continue
		}

		g, ok := groups[key]
		if !ok {
			g = &Group{Key: key, Title: title}
			groups[key] = g
		}
		g.Transactions = append(g.Transactions, t)
		if t.Type == model.TypeExpense {
			g.TotalExpense += t.Amount
		} else {
			g.TotalIncome += t.Amount
		}
	}

	out := make([]Group, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key > out[j].Key
	})
	return out
}

func matchesSearch(t model.Transaction, lowerSearch string) bool {
	return strings.Contains(strings.ToLower(t.Notes), lowerSearch) ||
		strings.Contains(strings.ToLower(t.CategoryName), lowerSearch) ||
		strings.Contains(t.Date, lowerSearch)
}

// dayTitle renders a daily group heading: "Today" and "Yesterday" relative to
// now, otherwise "2 January, Mon".
func dayTitle(d, now time.Time) string {
	today := now.Format(model.DateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(model.DateLayout)

	switch d.Format(model.DateLayout) {
	case today:
		return "Today"
	case yesterday:
		return "Yesterday"
	}
	return d.Format("2 January, Mon")
}
