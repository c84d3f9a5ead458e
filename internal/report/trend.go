package report

import (
	"time"

	"github.com/spendsense/spendsense/internal/model"
)

// TrendPoint is one bar in a spending trend series. Amount is in base
// currency.
type TrendPoint struct {
	Label  string
	Amount float64
}

// DailyTrend returns expense totals for the last `days` days ending at now,
// oldest first, labeled by weekday abbreviation.
func DailyTrend(txns []model.Transaction, now time.Time, days int) []TrendPoint {
	points := make([]TrendPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		dateStr := day.Format(model.DateLayout)

		var total float64
		for _, t := range txns {
			if t.Type == model.TypeExpense && t.Date == dateStr {
				total += t.Amount
			}
		}
		points = append(points, TrendPoint{Label: day.Format("Mon"), Amount: total})
	}
	return points
}

// MonthlyTrend returns expense totals per month of the year containing now,
// January through December, labeled by month abbreviation.
func MonthlyTrend(txns []model.Transaction, now time.Time) []TrendPoint {
	points := make([]TrendPoint, 12)
	for i := range points {
		points[i].Label = time.Month(i + 1).String()[:3]
	}

	for _, t := range txns {
		if t.Type != model.TypeExpense {
			continue
		}
		d, ok := t.ParsedDate()
		if !ok || d.Year() != now.Year() {
			continue
		}
		points[int(d.Month())-1].Amount += t.Amount
	}
	return points
}
