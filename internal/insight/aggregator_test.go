package insight

import (
	"testing"

	"github.com/centsible/centsible/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_EmptyTransactions(t *testing.T) {
	assert.Empty(t, Compute(nil))
	assert.Empty(t, Compute([]model.Transaction{}))
}

func TestCompute_ZeroAmounts(t *testing.T) {
	// Zero spend must not divide to NaN insights.
	transactions := []model.Transaction{
		{Date: "2024-03-01", Category: "food", Amount: 0},
		{Date: "2024-03-02", Category: "transport", Amount: 0},
	}

	assert.Empty(t, Compute(transactions))
}

func TestCompute_CategoryDominance(t *testing.T) {
	// food is 1000 of 1200 total spend = 83.3%.
	transactions := []model.Transaction{
		{Date: "2024-03-01", Category: "food", Amount: 500},
		{Date: "2024-03-02", Category: "food", Amount: 500},
		{Date: "2024-03-03", Category: "transport", Amount: 200},
	}

	insights := Compute(transactions)

	require.Len(t, insights, 1)
	assert.Equal(t, model.InsightPattern, insights[0].Type)
	assert.Equal(t, "High food spending", insights[0].Title)
	assert.Contains(t, insights[0].Description, "83.3%")
	assert.InDelta(t, 0.9, insights[0].Confidence, 1e-9)
}

func TestCompute_DominanceUsesAbsoluteAmounts(t *testing.T) {
	transactions := []model.Transaction{
		{Date: "2024-03-01", Category: "food", Amount: -500},
		{Date: "2024-03-02", Category: "transport", Amount: 100},
	}

	insights := Compute(transactions)

	require.Len(t, insights, 1)
	assert.Equal(t, "High food spending", insights[0].Title)
}

func TestCompute_SpendingSpikes(t *testing.T) {
	// Per-day totals 10, 10, 10, 100: mean 32.5, spike threshold 65.
	transactions := []model.Transaction{
		{Date: "2024-03-01", Category: "food", Amount: 10},
		{Date: "2024-03-02", Category: "food", Amount: 10},
		{Date: "2024-03-03", Category: "food", Amount: 10},
		{Date: "2024-03-04", Category: "food", Amount: 100},
	}

	insights := Compute(transactions)

	// Day totals are also dominated by the spike day (100/130 = 76.9%),
	// but dominance is per category: food is 100% of spend here, so one
	// pattern insight plus exactly one anomaly insight.
	require.Len(t, insights, 2)
	assert.Equal(t, model.InsightPattern, insights[0].Type)
	assert.Equal(t, model.InsightAnomaly, insights[1].Type)
	assert.Equal(t, "Spending spikes detected", insights[1].Title)
	assert.Contains(t, insights[1].Description, "Found 1 days")
	assert.InDelta(t, 0.8, insights[1].Confidence, 1e-9)
}

func TestCompute_NoSpikesOnFlatSpending(t *testing.T) {
	transactions := []model.Transaction{
		{Date: "2024-03-01", Category: "food", Amount: 30},
		{Date: "2024-03-02", Category: "transport", Amount: 30},
		{Date: "2024-03-03", Category: "fuel", Amount: 30},
	}

	insights := Compute(transactions)

	for _, ins := range insights {
		assert.NotEqual(t, model.InsightAnomaly, ins.Type)
	}
}

func TestCompute_SingleSpikeInsightForMultipleSpikeDays(t *testing.T) {
	transactions := []model.Transaction{
		{Date: "2024-03-01", Category: "food", Amount: 1},
		{Date: "2024-03-02", Category: "food", Amount: 1},
		{Date: "2024-03-03", Category: "food", Amount: 1},
		{Date: "2024-03-04", Category: "food", Amount: 1},
		{Date: "2024-03-05", Category: "food", Amount: 1},
		{Date: "2024-03-06", Category: "food", Amount: 1},
		{Date: "2024-03-07", Category: "food", Amount: 50},
		{Date: "2024-03-08", Category: "food", Amount: 60},
	}

	anomalies := 0
	for _, ins := range Compute(transactions) {
		if ins.Type == model.InsightAnomaly {
			anomalies++
			assert.Contains(t, ins.Description, "Found 2 days")
		}
	}
	assert.Equal(t, 1, anomalies)
}

func TestCompute_SortedByConfidenceDescending(t *testing.T) {
	// Pattern insights (0.9) must precede the anomaly insight (0.8).
	transactions := []model.Transaction{
		{Date: "2024-03-01", Category: "food", Amount: 10},
		{Date: "2024-03-02", Category: "food", Amount: 10},
		{Date: "2024-03-03", Category: "food", Amount: 200},
	}

	insights := Compute(transactions)

	require.NotEmpty(t, insights)
	for i := 1; i < len(insights); i++ {
		assert.GreaterOrEqual(t, insights[i-1].Confidence, insights[i].Confidence)
	}
	assert.Equal(t, model.InsightPattern, insights[0].Type)
}

func TestCompute_DateGroupingIsByExactString(t *testing.T) {
	// Different string representations of the same day are distinct
	// groups; a known limitation, but deterministic.
	transactions := []model.Transaction{
		{Date: "2024-03-01", Category: "food", Amount: 10},
		{Date: "2024-3-1", Category: "food", Amount: 10},
		{Date: "2024-03-02", Category: "food", Amount: 10},
		{Date: "2024-03-03", Category: "food", Amount: 100},
	}

	// Mean over four groups (10+10+10+100)/4 = 32.5; only the 100 day
	// exceeds 65.
	found := false
	for _, ins := range Compute(transactions) {
		if ins.Type == model.InsightAnomaly {
			found = true
			assert.Contains(t, ins.Description, "Found 1 days")
		}
	}
	assert.True(t, found)
}
