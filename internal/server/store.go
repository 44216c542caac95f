package server

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"projectmgmt/internal/config"
	"projectmgmt/internal/database"
	"projectmgmt/internal/repositories"
)

type store struct {
	clients  repositories.ClientRepository
	projects repositories.ProjectRepository
	close    func()
}

// openStore connects the repositories selected by cfg.StoreDriver. The
// returned close func releases the underlying connection.
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*store, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		if cfg.Postgres.AdminUser != "" {
			if err := database.EnsureDatabaseExists(ctx, cfg.Postgres, logger); err != nil {
				return nil, err
			}
		}

		pool, err := database.Connect(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, err
		}
		if err := database.RunMigrations(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, err
		}

		return &store{
			clients:  repositories.NewPostgresClientRepository(pool),
			projects: repositories.NewPostgresProjectRepository(pool),
			close: func() {
				pool.Close()
				logger.Info("Database connection pool closed")
			},
		}, nil

	case config.DriverMongo:
		client, err := database.ConnectMongo(ctx, cfg.Mongo, logger)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.Mongo.Database)

		return &store{
			clients:  repositories.NewMongoClientRepository(db),
			projects: repositories.NewMongoProjectRepository(db),
			close: func() {
				if err := client.Disconnect(context.Background()); err != nil {
					logger.Warn("MongoDB disconnect failed", zap.Error(err))
				}
			},
		}, nil

	case config.DriverMemory:
		logger.Warn("Using in-memory store; data is lost on restart")
		return &store{
			clients:  repositories.NewMemoryClientRepository(),
			projects: repositories.NewMemoryProjectRepository(),
			close:    func() {},
		}, nil
	}

	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
