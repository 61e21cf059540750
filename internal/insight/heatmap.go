package insight

import (
	"math"
	"time"

	"github.com/centsible/centsible/internal/model"
)

// DayCell is one day of the spending heatmap: total spend for the day and
// its intensity relative to the busiest day in the window.
type DayCell struct {
	Date      string
	Weekday   time.Weekday
	Amount    float64
	Intensity float64
}

// DailyIntensity builds a per-day heatmap over the `days` days ending at
// end (inclusive). Intensity is normalized by the maximum day total, with a
// floor of 1 so an all-zero window stays at zero intensity.
func DailyIntensity(transactions []model.Transaction, end time.Time, days int) []DayCell {
	if days <= 0 {
		return nil
	}

	byDate := make(map[string]float64)
	for _, txn := range transactions {
		byDate[txn.Date] += math.Abs(txn.Amount)
	}

	cells := make([]DayCell, 0, days)
	start := end.AddDate(0, 0, -(days - 1))
	maxSpend := 1.0
	for d := 0; d < days; d++ {
		day := start.AddDate(0, 0, d)
		key := day.Format(model.DateLayout)
		amount := byDate[key]
		if amount > maxSpend {
			maxSpend = amount
		}

		cells = append(cells, DayCell{
			Date:    key,
			Weekday: day.Weekday(),
			Amount:  amount,
		})
	}

	// Normalize against the busiest day inside the window only; spend
	// outside the window must not flatten it.
	for i := range cells {
		cells[i].Intensity = cells[i].Amount / maxSpend
	}

	return cells
}
