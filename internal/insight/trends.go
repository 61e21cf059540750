package insight

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/centsible/centsible/internal/model"
)

const (
	// A month-over-month change above this percentage is worth flagging.
	trendIncreaseLimit = 20.0
	// A reduction beyond this (negative) percentage is worth celebrating.
	trendDecreaseLimit = -10.0

	trendConfidence = 0.7
)

// MonthOverMonth compares total spend in the month containing now against
// the previous calendar month and emits a trend insight when the change
// crosses either limit. Months are matched by date-string prefix.
func MonthOverMonth(transactions []model.Transaction, now time.Time) []model.Insight {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	thisPrefix := firstOfMonth.Format("2006-01")
	lastPrefix := firstOfMonth.AddDate(0, -1, 0).Format("2006-01")

	thisTotal := monthTotal(transactions, thisPrefix)
	lastTotal := monthTotal(transactions, lastPrefix)

	// A zero previous month would divide to infinity; fall back to an
	// absolute comparison base of 1.
	base := lastTotal
	if base == 0 {
		base = 1
	}
	change := (thisTotal - lastTotal) / base * 100

	switch {
	case change > trendIncreaseLimit:
		return []model.Insight{{
			Type:        model.InsightTrend,
			Title:       "Spending increase",
			Description: fmt.Sprintf("Your spending increased by %.1f%% compared to last month", change),
			Confidence:  trendConfidence,
		}}
	case change < trendDecreaseLimit:
		return []model.Insight{{
			Type:        model.InsightTrend,
			Title:       "Spending decrease",
			Description: fmt.Sprintf("You reduced spending by %.1f%% this month", math.Abs(change)),
			Confidence:  trendConfidence,
		}}
	}

	return nil
}

// monthTotal sums absolute amounts for transactions in the YYYY-MM month.
func monthTotal(transactions []model.Transaction, prefix string) float64 {
	var total float64
	for _, txn := range transactions {
		if strings.HasPrefix(txn.Date, prefix) {
			total += math.Abs(txn.Amount)
		}
	}
	return total
}
