package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds everything the service needs at startup. Values come
// from an optional YAML file overridden by AUTH_-prefixed environment
// variables, e.g. AUTH_JWT_SECRET, AUTH_DATABASE_FILE.
type Config struct {
	Issuer    string        `koanf:"issuer"`     // Issuer claim for tokens (default: crediya-auth)
	Audience  string        `koanf:"audience"`   // Audience claim for tokens (default: crediya-platform)
	JWTSecret string        `koanf:"jwt_secret"` // Required: HMAC signing secret, at least 32 bytes
	TokenTTL  time.Duration `koanf:"token_ttl"`  // Token lifetime (default: 24h)

	DatabaseFile string `koanf:"database_file"` // Path to SQLite database file (default: ./auth.db)

	Env       string `koanf:"env"`        // Environment (dev, staging, prod) (default: dev)
	LogLevel  string `koanf:"log_level"`  // Log level (debug, info, warn, error) (default: info)
	LogFormat string `koanf:"log_format"` // Log format (json, text) (default: json)

	Port                int           `koanf:"port"`                  // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration `koanf:"shutdown_grace_period"` // Graceful shutdown timeout (default: 10s)
}

// LoadConfig reads the optional config file named by AUTH_CONFIG_FILE
// (default ./config.yaml, skipped when absent), then layers AUTH_-
// prefixed environment variables on top.
func LoadConfig() (Config, error) {
	k := koanf.New(".")

	path := os.Getenv("AUTH_CONFIG_FILE")
	if path == "" {
		path = "config.yaml"
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("config: loading %s: %w", path, err)
		}
	}

	// AUTH_JWT_SECRET -> jwt_secret, AUTH_LOG_LEVEL -> log_level
	err := k.Load(env.ProviderWithValue("AUTH_", ".", func(key, value string) (string, interface{}) {
		return strings.ToLower(strings.TrimPrefix(key, "AUTH_")), value
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("config: loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.applyDefaults()

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("config: jwt_secret is required (set AUTH_JWT_SECRET)")
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Issuer == "" {
		c.Issuer = "crediya-auth"
	}
	if c.Audience == "" {
		c.Audience = "crediya-platform"
	}
	if c.TokenTTL <= 0 {
		c.TokenTTL = 24 * time.Hour
	}
	if c.DatabaseFile == "" {
		c.DatabaseFile = "auth.db"
	}
	if c.Env == "" {
		c.Env = "dev"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "json"
	}
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.ShutdownGracePeriod <= 0 {
		c.ShutdownGracePeriod = 10 * time.Second
	}
}
