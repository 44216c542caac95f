package config

import (
	"fmt"
	"net/url"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload"
)

const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

type Config struct {
	Port               int      `env:"PORT" envDefault:"8080"`
	Env                string   `env:"APP_ENV" envDefault:"development"`
	StoreDriver        string   `env:"STORE_DRIVER" envDefault:"postgres"`
	GraphiQLEnabled    bool     `env:"GRAPHIQL_ENABLED" envDefault:"false"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	Postgres           PostgresConfig
	Mongo              MongoConfig
}

type PostgresConfig struct {
	URL           string `env:"DATABASE_URL"`
	Host          string `env:"DB_HOST"`
	Port          string `env:"DB_PORT" envDefault:"5432"`
	User          string `env:"DB_USERNAME"`
	Password      string `env:"DB_PASSWORD"`
	Database      string `env:"DB_DATABASE"`
	AdminUser     string `env:"DB_ADMIN_USER"`
	AdminPassword string `env:"DB_ADMIN_PASSWORD"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DATABASE" envDefault:"projectmgmt"`
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverPostgres:
		if c.Postgres.URL != "" {
			return nil
		}
		if c.Postgres.Host == "" {
			return fmt.Errorf("DB_HOST or DATABASE_URL environment variable is required")
		}
		if c.Postgres.User == "" {
			return fmt.Errorf("DB_USERNAME environment variable is required")
		}
		if c.Postgres.Database == "" {
			return fmt.Errorf("DB_DATABASE environment variable is required")
		}
	case DriverMongo:
		if c.Mongo.URI == "" {
			return fmt.Errorf("MONGO_URI environment variable is required")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q: must be %q, %q or %q",
			c.StoreDriver, DriverPostgres, DriverMongo, DriverMemory)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// DSN returns the postgres:// connection string for the application database.
func (p PostgresConfig) DSN() string {
	if p.URL != "" {
		return p.URL
	}
	return p.dsn(p.User, p.Password, url.PathEscape(p.Database))
}

// AdminDSN points at the maintenance "postgres" database with admin credentials.
func (p PostgresConfig) AdminDSN() string {
	return p.dsn(p.AdminUser, p.AdminPassword, "postgres")
}

func (p PostgresConfig) dsn(user, password, database string) string {
	userInfo := url.UserPassword(user, password)
	return fmt.Sprintf(
		"postgres://%s@%s:%s/%s?sslmode=disable",
		userInfo.String(),
		p.Host,
		p.Port,
		database,
	)
}
