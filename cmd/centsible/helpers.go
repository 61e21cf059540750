package main

import (
	"context"
	"fmt"

	"github.com/centsible/centsible/internal/config"
	"github.com/centsible/centsible/internal/engine"
	"github.com/centsible/centsible/internal/model"
	"github.com/centsible/centsible/internal/rules"
	"github.com/centsible/centsible/internal/storage"
	"github.com/spf13/viper"
)

// openStorage opens the configured database and brings the schema current.
func openStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", dbPath, err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// loadRuleTable returns the configured rule table, falling back to the
// built-in defaults when no custom file is configured.
func loadRuleTable() ([]model.Rule, error) {
	path := viper.GetString("rules.path")
	if path == "" {
		return rules.Default(), nil
	}

	table, err := rules.Load(config.ExpandPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to load rules from %s: %w", path, err)
	}

	return table, nil
}

// newClassifier builds a classifier over the configured rule table.
func newClassifier() (*engine.Classifier, error) {
	table, err := loadRuleTable()
	if err != nil {
		return nil, err
	}
	return engine.New(table), nil
}
