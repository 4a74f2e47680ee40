package config

import (
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// envConfig is the flat environment mapping read by cleanenv.
type envConfig struct {
	Port          string `env:"PORT" env-default:""`
	Environment   string `env:"ENVIRONMENT" env-default:""`
	DatabaseURL   string `env:"DATABASE_URL" env-default:""`
	MongoDatabase string `env:"MONGO_DATABASE" env-default:""`
	AdminSecret   string `env:"ADMIN_SECRET" env-default:""`
	LogLevel      string `env:"LOG_LEVEL" env-default:""`
	LogFile       string `env:"LOG_FILE" env-default:""`
}

// WithEnv applies environment variable overrides.
//
// Environment variable mapping:
//
//	PORT           - Server port (default: "8080")
//	ENVIRONMENT    - Runtime environment (default: "development")
//	DATABASE_URL   - Connection string. Scheme selects the adapter:
//	                 empty or "memory" keeps the in-memory store,
//	                 "postgres://..." / "postgresql://..." selects Postgres,
//	                 "mongodb://..." / "mongodb+srv://..." selects MongoDB.
//	MONGO_DATABASE - Mongo database name (default: "cineverse")
//	ADMIN_SECRET   - HS256 secret shared with the auth collaborator
//	LOG_LEVEL      - zerolog level (default: "info")
//	LOG_FILE       - optional rotating log file path
func WithEnv() Option {
	return func(c *ServerConfig) error {
		var env envConfig
		if err := cleanenv.ReadEnv(&env); err != nil {
			return fmt.Errorf("failed to read environment: %w", err)
		}

		if env.Port != "" {
			c.Port = env.Port
		}
		if env.Environment != "" {
			c.Environment = env.Environment
		}
		if env.MongoDatabase != "" {
			c.MongoDatabase = env.MongoDatabase
		}
		if env.AdminSecret != "" {
			c.AdminSecret = env.AdminSecret
		}
		if env.LogLevel != "" {
			c.LogLevel = env.LogLevel
		}
		if env.LogFile != "" {
			c.LogFile = env.LogFile
		}

		return applyDatabaseURL(env.DatabaseURL, c)
	}
}

// applyDatabaseURL auto-detects the adapter from the URL scheme.
func applyDatabaseURL(dbURL string, c *ServerConfig) error {
	switch {
	case dbURL == "" || dbURL == "memory":
		c.DatabaseType = "memory"
		c.DatabaseURL = ""
	case strings.HasPrefix(dbURL, "postgres://"), strings.HasPrefix(dbURL, "postgresql://"):
		c.DatabaseType = "postgres"
		c.DatabaseURL = dbURL
	case strings.HasPrefix(dbURL, "mongodb://"), strings.HasPrefix(dbURL, "mongodb+srv://"):
		c.DatabaseType = "mongo"
		c.DatabaseURL = dbURL
	default:
		return fmt.Errorf("unsupported DATABASE_URL format: %s (use 'memory', 'postgresql://...' or 'mongodb://...')", dbURL)
	}
	return nil
}
