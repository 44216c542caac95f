package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func RunMigrations(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	migrations := []string{
		createEnumTypes,
		createClientsTable,
		createProjectsTable,
	}

	for i, migration := range migrations {
		logger.Debug("Running migration", zap.Int("step", i+1), zap.Int("total", len(migrations)))
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	logger.Info("All migrations completed successfully")
	return nil
}

const createEnumTypes = `
DO $$
BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'project_status_t') THEN
    CREATE TYPE project_status_t AS ENUM ('Not Started', 'In Progress', 'Completed');
  END IF;
END$$;
`

const createClientsTable = `
CREATE TABLE IF NOT EXISTS clients (
  id UUID PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  phone TEXT NOT NULL,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);
`

// client_id has no foreign key: deleting a client leaves its projects in place.
const createProjectsTable = `
CREATE TABLE IF NOT EXISTS projects (
  id UUID PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT NOT NULL,
  status project_status_t NOT NULL DEFAULT 'Not Started',
  client_id UUID NOT NULL,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_projects_client_id ON projects(client_id);
`
