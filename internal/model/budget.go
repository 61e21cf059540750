package model

import "fmt"

// Budget is a monthly spending limit for a single category.
type Budget struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// Validate ensures the budget has a category and a positive limit.
func (b *Budget) Validate() error {
	if b.Category == "" {
		return fmt.Errorf("budget category is required")
	}
	if b.Amount <= 0 {
		return fmt.Errorf("budget amount must be positive, got %.2f", b.Amount)
	}
	return nil
}
