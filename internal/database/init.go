package database

import (
	"context"
	"fmt"

	"github.com/yourusername/lotto-better/internal/config"
)

// Initialize creates a database connection pool and verifies the schema
func Initialize(ctx context.Context, cfg *config.Config) (*DB, error) {
	db, err := NewDB(ctx, &cfg.Database)
	if err != nil {
		return nil, err
	}

	// Verify the draws table exists before anything tries to query it
	var tableName string
	err = db.pool.QueryRow(ctx,
		"SELECT tablename FROM pg_tables WHERE schemaname = 'public' AND tablename = 'draws'",
	).Scan(&tableName)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf(
			"draws table not found, run database migrations first: %w", err,
		)
	}

	// Check that migrations have been applied
	var migrationCount int
	err = db.pool.QueryRow(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&migrationCount)
	if err != nil {
		// Table might not exist yet, which is OK for initial setup
		return db, nil
	}

	if migrationCount == 0 {
		fmt.Println("Warning: No migrations have been applied. Please run database migrations.")
	}

	return db, nil
}
