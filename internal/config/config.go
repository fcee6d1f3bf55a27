// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the full service configuration.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Logging   LoggingConfig
	RateLimit RateLimitConfig
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig controls the PostgreSQL connection pool.
type DatabaseConfig struct {
	User            string
	Password        string
	Name            string
	Host            string
	Port            int
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string
	Format string
}

// RateLimitConfig controls per-client request throttling.
type RateLimitConfig struct {
	RequestsPerSecond int
	Burst             int
}

// DSN assembles the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

// Load reads configuration from environment variables, applying defaults for
// anything unset.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:            envString("SERVER_HOST", "0.0.0.0"),
			Port:            envInt("SERVER_PORT", 8080),
			ReadTimeout:     envDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    envDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: envDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			User:            envString("POSTGRES_USER", "postgres"),
			Password:        envString("POSTGRES_PASSWORD", "postgres"),
			Name:            envString("POSTGRES_DB", "items"),
			Host:            envString("POSTGRES_HOST", "localhost"),
			Port:            envInt("POSTGRES_PORT", 5432),
			SSLMode:         envString("POSTGRES_SSLMODE", "disable"),
			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Logging: LoggingConfig{
			Level:  envString("LOG_LEVEL", "info"),
			Format: envString("LOG_FORMAT", "text"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: envInt("RATE_LIMIT_RPS", 100),
			Burst:             envInt("RATE_LIMIT_BURST", 200),
		},
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("invalid SERVER_PORT %d", cfg.Server.Port)
	}
	if cfg.Database.Port <= 0 || cfg.Database.Port > 65535 {
		return nil, fmt.Errorf("invalid POSTGRES_PORT %d", cfg.Database.Port)
	}
	return cfg, nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
