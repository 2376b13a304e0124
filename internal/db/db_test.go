package db

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Dhyey-19/VaaniBill/internal/logger"
)

// TestConnectPostgres exercises the real pool against a live database.
// Skipped unless DATABASE_URL is set.
func TestConnectPostgres(t *testing.T) {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	logger.Init()

	pool := ConnectPostgres()
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		t.Fatalf("ping failed: %v", err)
	}
}

func TestInitSchemaIdempotent(t *testing.T) {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	logger.Init()

	config, err := pgxpool.ParseConfig(os.Getenv("DATABASE_URL"))
	if err != nil {
		t.Fatalf("invalid DATABASE_URL: %v", err)
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	defer pool.Close()

	// CREATE TABLE IF NOT EXISTS must tolerate repeated runs.
	if err := initSchema(pool); err != nil {
		t.Fatalf("first init failed: %v", err)
	}
	if err := initSchema(pool); err != nil {
		t.Fatalf("second init failed: %v", err)
	}
}
