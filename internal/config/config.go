// Package config provides environment-driven configuration for caseboard.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/caseboard/caseboard/internal/graph"
)

// Secret wraps a sensitive string to prevent accidental logging or marshalling.
type Secret string

// String implements fmt.Stringer, returning a redacted placeholder.
func (s Secret) String() string { return "[REDACTED]" }

// GoString implements fmt.GoStringer, returning a redacted placeholder.
func (s Secret) GoString() string { return "[REDACTED]" }

// MarshalText implements encoding.TextMarshaler, returning a redacted placeholder.
func (s Secret) MarshalText() ([]byte, error) { return []byte("[REDACTED]"), nil }

// Value returns the underlying secret string.
func (s Secret) Value() string { return string(s) }

// maxExploreDepthCeiling bounds how high MAX_EXPLORE_DEPTH may be configured.
const maxExploreDepthCeiling = 10

// Config holds all application configuration values.
type Config struct {
	DatabaseURL     Secret
	Port            string
	ListenHost      string
	CORSOrigins     []string
	LogLevel        string
	MaxExploreDepth int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL: Secret(envOrDefault("DATABASE_URL", "")),
		Port:        envOrDefault("PORT", "3030"),
		ListenHost:  envOrDefault("LISTEN_HOST", "127.0.0.1"),
		LogLevel:    envOrDefault("LOG_LEVEL", "info"),
	}

	depth, err := strconv.Atoi(envOrDefault("MAX_EXPLORE_DEPTH", strconv.Itoa(graph.DefaultMaxDepth)))
	if err != nil || depth < 1 || depth > maxExploreDepthCeiling {
		return nil, fmt.Errorf("MAX_EXPLORE_DEPTH must be an integer between 1 and %d", maxExploreDepthCeiling)
	}
	cfg.MaxExploreDepth = depth

	origins := envOrDefault("CORS_ORIGINS", "http://localhost:3002")
	cfg.CORSOrigins = strings.Split(origins, ",")

	for i, o := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(o)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address in host:port format.
func (c *Config) Addr() string {
	return c.ListenHost + ":" + c.Port
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
