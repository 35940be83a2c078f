package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// Backend selects the document store implementation.
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendFile   Backend = "file"
	BackendRedis  Backend = "redis"
)

// Config holds the daemon's environment-driven settings.
type Config struct {
	// ListenAddr is the HTTP listen address, e.g. ":8080".
	ListenAddr string

	// Backend selects where role records live.
	Backend Backend

	// DocumentFile is the path for the file backend (JSON or YAML).
	DocumentFile string

	// RedisAddr and RedisPassword configure the redis backend.
	RedisAddr     string
	RedisPassword string

	// TokenSecret signs identity tokens.
	TokenSecret string

	// TokenTTL is the identity token lifetime.
	TokenTTL time.Duration

	// MetricsEnabled exposes /metrics when true.
	MetricsEnabled bool
}

// Load reads configuration from the environment, applying defaults.
// A malformed value is an error, not a silent fallback.
func Load() (Config, error) {
	cfg := Config{
		ListenAddr:     getenv("ROLEKIT_LISTEN_ADDR", ":8080"),
		Backend:        Backend(getenv("ROLEKIT_BACKEND", string(BackendMemory))),
		DocumentFile:   os.Getenv("ROLEKIT_DOCUMENT_FILE"),
		RedisAddr:      os.Getenv("ROLEKIT_REDIS_ADDR"),
		RedisPassword:  os.Getenv("ROLEKIT_REDIS_PASSWORD"),
		TokenSecret:    os.Getenv("ROLEKIT_TOKEN_SECRET"),
		TokenTTL:       12 * time.Hour,
		MetricsEnabled: os.Getenv("ROLEKIT_METRICS") != "off",
	}
	if ttl := os.Getenv("ROLEKIT_TOKEN_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return Config{}, fmt.Errorf("ROLEKIT_TOKEN_TTL: %w", err)
		}
		cfg.TokenTTL = d
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.TokenSecret == "" {
		return errors.New("ROLEKIT_TOKEN_SECRET is required")
	}
	switch c.Backend {
	case BackendMemory:
	case BackendFile:
		if c.DocumentFile == "" {
			return errors.New("ROLEKIT_DOCUMENT_FILE is required for the file backend")
		}
	case BackendRedis:
		if c.RedisAddr == "" {
			return errors.New("ROLEKIT_REDIS_ADDR is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown backend %q, must be memory, file, or redis", c.Backend)
	}
	if c.TokenTTL <= 0 {
		return errors.New("token TTL must be positive")
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
