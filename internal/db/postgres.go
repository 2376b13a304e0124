package db

import (
	"context"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Dhyey-19/VaaniBill/internal/logger"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Fatal("invalid DATABASE_URL", logger.Err(err))
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		logger.Fatal("failed to create pool", logger.Err(err))
	}

	if err := pool.Ping(context.Background()); err != nil {
		logger.Fatal("postgres connection failed", logger.Err(err))
	}

	logger.Info("connected to PostgreSQL")

	if err := initSchema(pool); err != nil {
		logger.Fatal("failed to initialize schema", logger.Err(err))
	}

	return pool
}

// initSchema creates or updates the database schema
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	usersSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			username VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			business_name VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, usersSQL); err != nil {
		return err
	}

	// -------------------------------
	// PRODUCTS (per-merchant catalog)
	// -------------------------------
	productsSQL := `
		CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			name_en VARCHAR(255) NOT NULL,
			name_gu VARCHAR(255) NOT NULL DEFAULT '',
			rate NUMERIC(12,2) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, productsSQL); err != nil {
		return err
	}

	// -------------------------------
	// BILLS + BILL ITEMS
	// -------------------------------
	billsSQL := `
		CREATE TABLE IF NOT EXISTS bills (
			id SERIAL PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			bill_number VARCHAR(50) NOT NULL,
			total NUMERIC(12,2) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, billsSQL); err != nil {
		return err
	}

	billItemsSQL := `
		CREATE TABLE IF NOT EXISTS bill_items (
			id SERIAL PRIMARY KEY,
			bill_id INT NOT NULL REFERENCES bills(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			rate NUMERIC(12,2) NOT NULL,
			quantity NUMERIC(12,3) NOT NULL,
			total NUMERIC(12,2) NOT NULL
		)
	`
	if _, err := pool.Exec(ctx, billItemsSQL); err != nil {
		return err
	}

	logger.Info("schema initialized")
	return nil
}
