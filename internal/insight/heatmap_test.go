package insight

import (
	"testing"
	"time"

	"github.com/centsible/centsible/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyIntensity(t *testing.T) {
	end, err := time.Parse("2006-01-02", "2024-03-10")
	require.NoError(t, err)

	transactions := []model.Transaction{
		{Date: "2024-03-09", Category: "food", Amount: 25},
		{Date: "2024-03-10", Category: "food", Amount: 50},
		// Outside the window.
		{Date: "2024-03-01", Category: "food", Amount: 999},
	}

	cells := DailyIntensity(transactions, end, 3)

	require.Len(t, cells, 3)
	assert.Equal(t, "2024-03-08", cells[0].Date)
	assert.Equal(t, "2024-03-10", cells[2].Date)

	assert.InDelta(t, 0.0, cells[0].Intensity, 1e-9)
	assert.InDelta(t, 0.5, cells[1].Intensity, 1e-9)
	assert.InDelta(t, 1.0, cells[2].Intensity, 1e-9)
}

func TestDailyIntensity_AllZeroWindow(t *testing.T) {
	end, err := time.Parse("2006-01-02", "2024-03-10")
	require.NoError(t, err)

	cells := DailyIntensity(nil, end, 7)

	require.Len(t, cells, 7)
	for _, cell := range cells {
		assert.Zero(t, cell.Intensity)
		assert.Zero(t, cell.Amount)
	}
}

func TestDailyIntensity_InvalidWindow(t *testing.T) {
	assert.Nil(t, DailyIntensity(nil, time.Now(), 0))
	assert.Nil(t, DailyIntensity(nil, time.Now(), -5))
}

func TestDailyIntensity_Weekdays(t *testing.T) {
	// 2024-03-10 is a Sunday.
	end, err := time.Parse("2006-01-02", "2024-03-10")
	require.NoError(t, err)

	cells := DailyIntensity(nil, end, 2)

	require.Len(t, cells, 2)
	assert.Equal(t, time.Saturday, cells[0].Weekday)
	assert.Equal(t, time.Sunday, cells[1].Weekday)
}
