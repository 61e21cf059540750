package insight

import (
	"testing"

	"github.com/centsible/centsible/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateBudgets_Levels(t *testing.T) {
	budgets := []model.Budget{
		{Category: "food", Amount: 500},
		{Category: "transport", Amount: 200},
		{Category: "coffee", Amount: 50},
	}
	transactions := []model.Transaction{
		{Date: "2024-03-01", Category: "food", Amount: 450, Type: model.TypeExpense},
		{Date: "2024-03-02", Category: "transport", Amount: 160, Type: model.TypeExpense},
		{Date: "2024-03-03", Category: "coffee", Amount: 10, Type: model.TypeExpense},
	}

	statuses := EvaluateBudgets(budgets, transactions, "2024-03")

	require.Len(t, statuses, 3)

	assert.Equal(t, LevelDanger, statuses[0].Level)
	assert.InDelta(t, 90.0, statuses[0].Percentage, 1e-9)
	assert.InDelta(t, 50.0, statuses[0].Remaining, 1e-9)

	assert.Equal(t, LevelWarning, statuses[1].Level)
	assert.InDelta(t, 80.0, statuses[1].Percentage, 1e-9)

	assert.Equal(t, LevelSafe, statuses[2].Level)
}

func TestEvaluateBudgets_OnlyCurrentMonthExpensesCount(t *testing.T) {
	budgets := []model.Budget{{Category: "food", Amount: 100}}
	transactions := []model.Transaction{
		// Wrong month.
		{Date: "2024-02-20", Category: "food", Amount: 95, Type: model.TypeExpense},
		// Income, not spend.
		{Date: "2024-03-01", Category: "food", Amount: 95, Type: model.TypeIncome},
		// Wrong category.
		{Date: "2024-03-02", Category: "coffee", Amount: 95, Type: model.TypeExpense},
		{Date: "2024-03-03", Category: "food", Amount: 20, Type: model.TypeExpense},
	}

	statuses := EvaluateBudgets(budgets, transactions, "2024-03")

	require.Len(t, statuses, 1)
	assert.InDelta(t, 20.0, statuses[0].Spent, 1e-9)
	assert.Equal(t, LevelSafe, statuses[0].Level)
}

func TestEvaluateBudgets_SkipsNonPositiveLimits(t *testing.T) {
	budgets := []model.Budget{
		{Category: "food", Amount: 0},
		{Category: "coffee", Amount: -5},
	}

	assert.Empty(t, EvaluateBudgets(budgets, nil, "2024-03"))
}

func TestEvaluateBudgets_NoBudgets(t *testing.T) {
	assert.Empty(t, EvaluateBudgets(nil, nil, "2024-03"))
}

func TestBreaches(t *testing.T) {
	statuses := []BudgetStatus{
		{Category: "food", Level: LevelSafe},
		{Category: "coffee", Level: LevelWarning},
		{Category: "housing", Level: LevelDanger},
	}

	breaches := Breaches(statuses)

	require.Len(t, breaches, 2)
	assert.Equal(t, "coffee", breaches[0].Category)
	assert.Equal(t, "housing", breaches[1].Category)
}
