// Package report computes display-ready aggregates over a transaction list:
// period filtering, date-based grouping, totals, and budget progress. All
// functions are pure; "now" is always an explicit parameter so behavior is
// reproducible in tests.
package report

import (
	"time"

	"github.com/spendsense/spendsense/internal/model"
)

// Period selects the time window to analyze, always anchored at "now".
type Period string

const (
	// PeriodDaily covers the current calendar date.
	PeriodDaily Period = "daily"
	// PeriodWeekly covers the 7 days ending at now, inclusive.
	PeriodWeekly Period = "weekly"
	// PeriodMonthly covers the current calendar month.
	PeriodMonthly Period = "monthly"
	// PeriodQuarterly covers the current 3-month quarter.
	PeriodQuarterly Period = "quarterly"
	// PeriodYearly covers the current calendar year.
	PeriodYearly Period = "yearly"
)

// Periods lists all selectable periods in display order.
var Periods = []Period{PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodQuarterly, PeriodYearly}

// Valid reports whether p is a known period selector.
func (p Period) Valid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodQuarterly, PeriodYearly:
		return true
	}
	return false
}

// FilterByPeriod returns the subset of transactions whose date falls in the
// current instance of the period. Transactions with unparseable dates are
// excluded.
func FilterByPeriod(txns []model.Transaction, now time.Time, p Period) []model.Transaction {
	out := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		d, ok := t.ParsedDate()
		if !ok {
			continue
		}
		if inPeriod(d, now, p) {
			out = append(out, t)
		}
	}
	return out
}

func inPeriod(d, now time.Time, p Period) bool {
	switch p {
	case PeriodDaily:
		return d.Year() == now.Year() && d.YearDay() == now.YearDay()
	case PeriodWeekly:
		// Inclusive 7-day window: a transaction dated exactly 7 days ago
		// is in, 8 days ago is out. Future dates stay in.
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, d.Location()).AddDate(0, 0, -7)
		return !d.Before(start)
	case PeriodMonthly:
		return d.Year() == now.Year() && d.Month() == now.Month()
	case PeriodQuarterly:
		return d.Year() == now.Year() && quarterOf(d.Month()) == quarterOf(now.Month())
	case PeriodYearly:
		return d.Year() == now.Year()
	}
	return false
}

// quarterOf maps a month to its calendar quarter: Jan-Mar is 1, Oct-Dec is 4.
func quarterOf(m time.Month) int {
	return (int(m)-1)/3 + 1
}
