package insight

import (
	"math"
	"strings"

	"github.com/centsible/centsible/internal/model"
)

// AlertLevel grades how close a budget is to its limit.
type AlertLevel string

// Alert level constants.
const (
	LevelSafe    AlertLevel = "safe"
	LevelWarning AlertLevel = "warning"
	LevelDanger  AlertLevel = "danger"
)

const (
	warningPercentage = 75.0
	dangerPercentage  = 90.0
)

// BudgetStatus reports month-to-date spend against one category budget.
type BudgetStatus struct {
	Category   string
	Level      AlertLevel
	Limit      float64
	Spent      float64
	Remaining  float64
	Percentage float64
}

// EvaluateBudgets computes the status of every budget for the given YYYY-MM
// month. Only expense transactions count toward a budget. Budgets with a
// non-positive limit are skipped. Output keeps budget input order.
func EvaluateBudgets(budgets []model.Budget, transactions []model.Transaction, month string) []BudgetStatus {
	statuses := make([]BudgetStatus, 0, len(budgets))

	for _, budget := range budgets {
		if budget.Amount <= 0 {
			continue
		}

		var spent float64
		for _, txn := range transactions {
			if txn.Category != budget.Category || txn.Type != model.TypeExpense {
				continue
			}
			if !strings.HasPrefix(txn.Date, month) {
				continue
			}
			spent += math.Abs(txn.Amount)
		}

		percentage := spent / budget.Amount * 100

		level := LevelSafe
		switch {
		case percentage >= dangerPercentage:
			level = LevelDanger
		case percentage >= warningPercentage:
			level = LevelWarning
		}

		statuses = append(statuses, BudgetStatus{
			Category:   budget.Category,
			Limit:      budget.Amount,
			Spent:      spent,
			Remaining:  budget.Amount - spent,
			Percentage: percentage,
			Level:      level,
		})
	}

	return statuses
}

// Breaches filters statuses down to those past the warning threshold.
func Breaches(statuses []BudgetStatus) []BudgetStatus {
	var breaches []BudgetStatus
	for _, status := range statuses {
		if status.Level != LevelSafe {
			breaches = append(breaches, status)
		}
	}
	return breaches
}
