package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cineverse/catalog/pkg/catalog"
	"github.com/cineverse/catalog/pkg/catalog/repo/memory"
	mongorepo "github.com/cineverse/catalog/pkg/catalog/repo/mongo"
	repopg "github.com/cineverse/catalog/pkg/catalog/repo/postgres"
)

// Option applies configuration to a ServerConfig instance.
type Option func(*ServerConfig) error

// Load constructs a ServerConfig by applying the supplied options on top of library defaults.
func Load(opts ...Option) (*ServerConfig, error) {
	cfg := defaults()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func defaults() ServerConfig {
	return ServerConfig{
		Port:          "8080",
		Environment:   "development",
		DatabaseType:  "memory",
		MongoDatabase: "cineverse",
		AdminSecret:   "dev-secret",
		LogLevel:      "info",
	}
}

// ServerConfig represents server configuration for the catalog service
type ServerConfig struct {
	Port        string
	Environment string // development, production, testing

	// Database configuration
	DatabaseURL   string
	DatabaseType  string // "memory", "postgres", "mongo"
	MongoDatabase string // Mongo database name (default: cineverse)

	// Admin capability check. The HS256 secret must match whatever the
	// external auth collaborator signs its bearer tokens with; the server
	// only verifies, it never issues.
	AdminSecret string

	// Logging
	LogLevel string
	LogFile  string
}

// Validate validates the server configuration
func (c *ServerConfig) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}

	switch c.DatabaseType {
	case "memory", "postgres", "mongo":
	default:
		return errors.New("database_type must be 'memory', 'postgres' or 'mongo'")
	}

	if c.DatabaseType != "memory" && c.DatabaseURL == "" {
		return fmt.Errorf("database_url is required when using %s", c.DatabaseType)
	}

	if c.AdminSecret == "" {
		return errors.New("admin_secret is required")
	}
	if c.Environment == "production" && c.AdminSecret == "dev-secret" {
		return errors.New("admin_secret must be set explicitly in production")
	}

	return nil
}

// BuildService creates a Service instance from the server configuration
func (c *ServerConfig) BuildService() (catalog.Service, error) {
	repo, err := c.buildRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to build repository: %w", err)
	}

	return catalog.New(catalog.WithRepository(repo))
}

// buildRepository creates a Repository based on the configuration
func (c *ServerConfig) buildRepository() (catalog.Repository, error) {
	switch c.DatabaseType {
	case "memory":
		return memory.New(), nil
	case "postgres":
		cfg, err := pgxpool.ParseConfig(c.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse DATABASE_URL: %w", err)
		}
		pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create pgx pool: %w", err)
		}
		return repopg.NewWithPool(pool), nil
	case "mongo":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(c.DatabaseURL))
		if err != nil {
			return nil, fmt.Errorf("failed to connect to mongo: %w", err)
		}
		return mongorepo.New(client.Database(c.MongoDatabase)), nil
	default:
		return nil, fmt.Errorf("unsupported database type: %s", c.DatabaseType)
	}
}

// PingPostgres verifies connectivity to Postgres before the server starts
// taking traffic.
func PingPostgres(databaseURL string) error {
	if databaseURL == "" {
		return errors.New("database_url is required")
	}
	pool, err := pgxpool.New(context.Background(), databaseURL)
	if err != nil {
		return fmt.Errorf("failed to create pgx pool: %w", err)
	}
	defer pool.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}
