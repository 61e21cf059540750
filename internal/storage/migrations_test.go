package storage_test

import (
	"context"
	"testing"

	"github.com/centsible/centsible/internal/storage"
	"github.com/stretchr/testify/require"
)

func TestMigrate_Idempotent(t *testing.T) {
	store, err := storage.NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx))
	// Running again must be a no-op, not a failure.
	require.NoError(t, store.Migrate(ctx))
}

func TestNewSQLiteStorage_EmptyPath(t *testing.T) {
	_, err := storage.NewSQLiteStorage("")
	require.Error(t, err)
}
