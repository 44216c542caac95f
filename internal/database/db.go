package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"projectmgmt/internal/config"
)

// EnsureDatabaseExists connects to the maintenance database with the admin
// credentials and creates the application database if it is missing.
func EnsureDatabaseExists(ctx context.Context, cfg config.PostgresConfig, logger *zap.Logger) error {
	if cfg.AdminUser == "" {
		return fmt.Errorf("DB_ADMIN_USER environment variable is required")
	}
	if cfg.Database == "" {
		return fmt.Errorf("DB_DATABASE environment variable is required")
	}

	logger.Info("Checking if database exists", zap.String("db", cfg.Database))

	poolCfg, err := pgxpool.ParseConfig(cfg.AdminDSN())
	if err != nil {
		return fmt.Errorf("failed to parse connection string: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)"
	if err := pool.QueryRow(ctx, query, cfg.Database).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}

	if exists {
		logger.Info("Database already exists", zap.String("db", cfg.Database))
		return nil
	}

	// CREATE DATABASE cannot run inside a transaction.
	quotedDBName := pgx.Identifier{cfg.Database}.Sanitize()
	if _, err := pool.Exec(ctx, fmt.Sprintf("CREATE DATABASE %s", quotedDBName)); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	logger.Info("Database created", zap.String("db", cfg.Database))

	return nil
}

func Connect(ctx context.Context, cfg config.PostgresConfig, logger *zap.Logger) (*pgxpool.Pool, error) {
	logger.Info("Initializing PostgreSQL connection pool",
		zap.String("host", cfg.Host),
		zap.String("port", cfg.Port),
		zap.String("db", cfg.Database),
	)

	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string (check your .env file): %w", err)
	}

	poolCfg.MaxConns = 25
	poolCfg.MinConns = 5
	poolCfg.MaxConnLifetime = 5 * time.Minute
	poolCfg.MaxConnIdleTime = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Database connection pool established successfully")
	return pool, nil
}
