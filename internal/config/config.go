// Package config handles environment variable parsing and validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// AuthMode represents the SSH authentication mode.
type AuthMode string

const (
	AuthModeAllowlist AuthMode = "allowlist"
	AuthModePublic    AuthMode = "public"
)

// CartBackend selects where carts are persisted.
type CartBackend string

const (
	CartBackendFile   CartBackend = "file"
	CartBackendMemory CartBackend = "memory"
	CartBackendRedis  CartBackend = "redis"
)

// Config holds all application configuration.
type Config struct {
	// SSH server settings
	SSHAddr        string
	SSHHostKeyPath string
	SSHAuthMode    AuthMode
	AllowlistPath  string
	RatePerSecond  float64
	RateBurst      int

	// Cart storage
	CartBackend   CartBackend
	CartDir       string
	CartTTL       time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Page timing
	MessageClearDelay time.Duration
	GalleryFadeDelay  time.Duration

	// Logging
	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables with defaults. Values
// from the given .env files (default ".env") fill in variables that are not
// already set; missing files are ignored.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	cfg := &Config{
		SSHAddr:        getEnv("SSH_ADDR", ":23234"),
		SSHHostKeyPath: getEnv("SSH_HOSTKEY_PATH", "./.ssh_host_ed25519_key"),
		SSHAuthMode:    AuthMode(getEnv("SSH_AUTH_MODE", "allowlist")),
		AllowlistPath:  getEnv("SSH_ALLOWLIST_PATH", "./allowlist_authorized_keys"),
		CartBackend:    CartBackend(getEnv("CART_BACKEND", "file")),
		CartDir:        getEnv("CART_DIR", "./carts"),
		RedisAddr:      getEnv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "console"),
	}

	var err error
	if cfg.RatePerSecond, err = strconv.ParseFloat(getEnv("SSH_RATE_PER_SECOND", "1"), 64); err != nil || cfg.RatePerSecond <= 0 {
		return nil, errors.New("SSH_RATE_PER_SECOND must be a positive number")
	}
	if cfg.RateBurst, err = getInt("SSH_RATE_BURST", 5); err != nil || cfg.RateBurst < 1 {
		return nil, errors.New("SSH_RATE_BURST must be a positive integer")
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", 0); err != nil || cfg.RedisDB < 0 {
		return nil, errors.New("REDIS_DB must be a non-negative integer")
	}

	ttl, err := getInt("CART_TTL_SECONDS", 86400)
	if err != nil {
		return nil, errors.New("CART_TTL_SECONDS must be a valid integer")
	}
	cfg.CartTTL = time.Duration(ttl) * time.Second

	clearMS, err := getInt("MESSAGE_CLEAR_MS", 3000)
	if err != nil || clearMS < 1 {
		return nil, errors.New("MESSAGE_CLEAR_MS must be a positive integer")
	}
	cfg.MessageClearDelay = time.Duration(clearMS) * time.Millisecond

	fadeMS, err := getInt("GALLERY_FADE_MS", 150)
	if err != nil || fadeMS < 1 {
		return nil, errors.New("GALLERY_FADE_MS must be a positive integer")
	}
	cfg.GalleryFadeDelay = time.Duration(fadeMS) * time.Millisecond

	if cfg.SSHAuthMode != AuthModeAllowlist && cfg.SSHAuthMode != AuthModePublic {
		return nil, errors.New("SSH_AUTH_MODE must be 'allowlist' or 'public'")
	}
	switch cfg.CartBackend {
	case CartBackendFile, CartBackendMemory, CartBackendRedis:
	default:
		return nil, errors.New("CART_BACKEND must be 'file', 'memory' or 'redis'")
	}
	if cfg.LogFormat != "console" && cfg.LogFormat != "json" {
		return nil, errors.New("LOG_FORMAT must be 'console' or 'json'")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	return strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
}
