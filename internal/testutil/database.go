// Package testutil provides test helpers for packages that need a real
// local store: an in-memory database with migrations applied and optional
// seed transactions.
package testutil

import (
	"context"
	"testing"

	"github.com/centsible/centsible/internal/model"
	"github.com/centsible/centsible/internal/storage"
)

// SetupTestDB creates an in-memory store with the schema applied and any
// seed transactions saved. Cleanup is registered automatically.
func SetupTestDB(t *testing.T, seed ...model.Transaction) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	if len(seed) > 0 {
		if _, err := store.SaveTransactions(ctx, seed); err != nil {
			t.Fatalf("failed to seed transactions: %v", err)
		}
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

// Txn builds a seed transaction with a generated ID.
func Txn(date, description string, amount float64, category string, txnType model.TransactionType) model.Transaction {
	txn := model.Transaction{
		Date:        date,
		Description: description,
		Amount:      amount,
		Category:    category,
		Type:        txnType,
	}
	txn.ID = txn.GenerateID()
	return txn
}
