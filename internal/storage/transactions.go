package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/centsible/centsible/internal/common"
	"github.com/centsible/centsible/internal/model"
)

// SaveTransactions inserts transactions, skipping IDs that already exist so
// re-importing the same statement is idempotent. Returns the number saved.
func (s *SQLiteStorage) SaveTransactions(ctx context.Context, transactions []model.Transaction) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO transactions (id, date, description, amount, category, type)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	saved := 0
	for _, txn := range transactions {
		if txn.ID == "" {
			txn.ID = txn.GenerateID()
		}
		res, execErr := stmt.ExecContext(ctx,
			txn.ID, txn.Date, txn.Description, txn.Amount, txn.Category, string(txn.Type))
		if execErr != nil {
			return 0, fmt.Errorf("failed to insert transaction %s: %w", txn.ID, execErr)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			saved++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transactions: %w", err)
	}

	return saved, nil
}

// ListTransactions returns all stored transactions ordered by date, oldest
// first, with insertion order breaking date ties.
func (s *SQLiteStorage) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	return s.queryTransactions(ctx, `
		SELECT id, date, description, amount, category, type
		FROM transactions
		ORDER BY date, rowid`)
}

// ListTransactionsByMonth returns transactions whose date falls in the
// given YYYY-MM month.
func (s *SQLiteStorage) ListTransactionsByMonth(ctx context.Context, month string) ([]model.Transaction, error) {
	if err := validateString(month, "month"); err != nil {
		return nil, err
	}
	return s.queryTransactions(ctx, `
		SELECT id, date, description, amount, category, type
		FROM transactions
		WHERE date LIKE ? || '%'
		ORDER BY date, rowid`, month)
}

func (s *SQLiteStorage) queryTransactions(ctx context.Context, query string, args ...any) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []model.Transaction
	for rows.Next() {
		var txn model.Transaction
		var txnType string
		if err := rows.Scan(&txn.ID, &txn.Date, &txn.Description, &txn.Amount, &txn.Category, &txnType); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txn.Type = model.TransactionType(txnType)
		transactions = append(transactions, txn)
	}

	return transactions, rows.Err()
}

// GetTransaction fetches a single transaction by ID.
func (s *SQLiteStorage) GetTransaction(ctx context.Context, id string) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	var txn model.Transaction
	var txnType string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, date, description, amount, category, type
		FROM transactions WHERE id = ?`, id).
		Scan(&txn.ID, &txn.Date, &txn.Description, &txn.Amount, &txn.Category, &txnType)
	if err == sql.ErrNoRows {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	txn.Type = model.TransactionType(txnType)

	return &txn, nil
}

// UpdateTransactionCategory rewrites the category of a stored transaction,
// used when a batch suggestion is accepted.
func (s *SQLiteStorage) UpdateTransactionCategory(ctx context.Context, id, category string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE transactions SET category = ? WHERE id = ?`, category, id)
	if err != nil {
		return fmt.Errorf("failed to update transaction category: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}

	return nil
}

// DeleteTransaction removes a transaction by ID.
func (s *SQLiteStorage) DeleteTransaction(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}

	return nil
}
