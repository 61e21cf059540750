// Package insight computes portfolio-level spending statistics: dominant
// categories, daily spending spikes, month-over-month trends, and budget
// alerts. All functions are pure and total over any finite transaction
// collection, including empty ones.
package insight

import (
	"fmt"
	"math"
	"sort"

	"github.com/centsible/centsible/internal/model"
)

const (
	// dominanceShare is the percentage of total spend above which a
	// category is reported as dominant.
	dominanceShare      = 40.0
	dominanceConfidence = 0.9

	// spikeMultiplier flags a day whose total exceeds this multiple of the
	// mean daily total.
	spikeMultiplier = 2.0
	spikeConfidence = 0.8
)

// runningTotal is an aggregation bucket that remembers first-seen order so
// insight detection order stays deterministic.
type runningTotal struct {
	key   string
	total float64
}

// accumulate sums absolute amounts per key, keeping first-seen key order.
func accumulate(transactions []model.Transaction, keyOf func(model.Transaction) string) []runningTotal {
	index := make(map[string]int)
	var totals []runningTotal

	for _, txn := range transactions {
		key := keyOf(txn)
		amount := math.Abs(txn.Amount)
		if math.IsNaN(amount) {
			amount = 0
		}

		if i, ok := index[key]; ok {
			totals[i].total += amount
			continue
		}
		index[key] = len(totals)
		totals = append(totals, runningTotal{key: key, total: amount})
	}

	return totals
}

// Compute derives ranked insights from the transaction collection: one
// pattern insight per dominant category plus at most one anomaly insight
// covering all spike days. Output is sorted by confidence descending with
// ties in detection order.
func Compute(transactions []model.Transaction) []model.Insight {
	insights := categoryDominance(transactions)

	if spike := dailySpikes(transactions); spike != nil {
		insights = append(insights, *spike)
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Confidence > insights[j].Confidence
	})

	return insights
}

// categoryDominance reports every category whose share of total spend
// exceeds dominanceShare. A zero total yields no insights rather than a
// division error.
func categoryDominance(transactions []model.Transaction) []model.Insight {
	byCategory := accumulate(transactions, func(t model.Transaction) string { return t.Category })

	var total float64
	for _, entry := range byCategory {
		total += entry.total
	}
	if total <= 0 {
		return nil
	}

	var insights []model.Insight
	for _, entry := range byCategory {
		percentage := entry.total / total * 100
		if percentage <= dominanceShare {
			continue
		}
		insights = append(insights, model.Insight{
			Type:        model.InsightPattern,
			Title:       fmt.Sprintf("High %s spending", entry.key),
			Description: fmt.Sprintf("%s accounts for %.1f%% of your total spending", entry.key, percentage),
			Confidence:  dominanceConfidence,
		})
	}

	return insights
}

// dailySpikes groups spend by exact date string and reports a single
// anomaly insight counting days above spikeMultiplier times the mean.
// Returns nil when there are no days or no spikes.
func dailySpikes(transactions []model.Transaction) *model.Insight {
	byDay := accumulate(transactions, func(t model.Transaction) string { return t.Date })
	if len(byDay) == 0 {
		return nil
	}

	var total float64
	for _, day := range byDay {
		total += day.total
	}
	mean := total / float64(len(byDay))

	spikes := 0
	for _, day := range byDay {
		if day.total > mean*spikeMultiplier {
			spikes++
		}
	}
	if spikes == 0 {
		return nil
	}

	return &model.Insight{
		Type:        model.InsightAnomaly,
		Title:       "Spending spikes detected",
		Description: fmt.Sprintf("Found %d days with unusually high spending", spikes),
		Confidence:  spikeConfidence,
	}
}
