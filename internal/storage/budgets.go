package storage

import (
	"context"
	"fmt"

	"github.com/centsible/centsible/internal/common"
	"github.com/centsible/centsible/internal/model"
)

// UpsertBudget creates or replaces the budget for a category.
func (s *SQLiteStorage) UpsertBudget(ctx context.Context, budget model.Budget) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := budget.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO budgets (category, amount, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(category) DO UPDATE SET
			amount = excluded.amount,
			updated_at = CURRENT_TIMESTAMP`,
		budget.Category, budget.Amount)
	if err != nil {
		return fmt.Errorf("failed to upsert budget: %w", err)
	}

	return nil
}

// ListBudgets returns all budgets ordered by category.
func (s *SQLiteStorage) ListBudgets(ctx context.Context) ([]model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT category, amount FROM budgets ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var budgets []model.Budget
	for rows.Next() {
		var budget model.Budget
		if err := rows.Scan(&budget.Category, &budget.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets = append(budgets, budget)
	}

	return budgets, rows.Err()
}

// DeleteBudget removes the budget for a category.
func (s *SQLiteStorage) DeleteBudget(ctx context.Context, category string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(category, "category"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM budgets WHERE category = ?`, category)
	if err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}

	return nil
}
