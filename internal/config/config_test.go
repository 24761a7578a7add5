package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []string{
	"SSH_ADDR", "SSH_HOSTKEY_PATH", "SSH_AUTH_MODE", "SSH_ALLOWLIST_PATH",
	"SSH_RATE_PER_SECOND", "SSH_RATE_BURST", "CART_BACKEND", "CART_DIR",
	"CART_TTL_SECONDS", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
	"MESSAGE_CLEAR_MS", "GALLERY_FADE_MS", "LOG_LEVEL", "LOG_FORMAT",
}

// clearEnv blanks every key; getEnv treats empty values as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allKeys {
		t.Setenv(k, "")
	}
}

func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, ":23234", cfg.SSHAddr)
	assert.Equal(t, AuthModeAllowlist, cfg.SSHAuthMode)
	assert.Equal(t, CartBackendFile, cfg.CartBackend)
	assert.Equal(t, "./carts", cfg.CartDir)
	assert.Equal(t, 24*time.Hour, cfg.CartTTL)
	assert.Equal(t, 3*time.Second, cfg.MessageClearDelay)
	assert.Equal(t, 150*time.Millisecond, cfg.GalleryFadeDelay)
	assert.Equal(t, 1.0, cfg.RatePerSecond)
	assert.Equal(t, 5, cfg.RateBurst)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SSH_AUTH_MODE", "public")
	t.Setenv("CART_BACKEND", "redis")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("MESSAGE_CLEAR_MS", "500")
	t.Setenv("SSH_RATE_PER_SECOND", "0.5")

	cfg, err := Load(noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, AuthModePublic, cfg.SSHAuthMode)
	assert.Equal(t, CartBackendRedis, cfg.CartBackend)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 500*time.Millisecond, cfg.MessageClearDelay)
	assert.Equal(t, 0.5, cfg.RatePerSecond)
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CART_DIR", "/from/env")
	// godotenv only fills variables that are absent, not empty.
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CART_DIR=/from/file\nLOG_LEVEL=debug\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.CartDir, "environment wins over the file")
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		key, value, want string
	}{
		{"SSH_AUTH_MODE", "open", "SSH_AUTH_MODE"},
		{"CART_BACKEND", "s3", "CART_BACKEND"},
		{"CART_TTL_SECONDS", "soon", "CART_TTL_SECONDS"},
		{"MESSAGE_CLEAR_MS", "-1", "MESSAGE_CLEAR_MS"},
		{"MESSAGE_CLEAR_MS", "0", "MESSAGE_CLEAR_MS"},
		{"GALLERY_FADE_MS", "fast", "GALLERY_FADE_MS"},
		{"GALLERY_FADE_MS", "0", "GALLERY_FADE_MS"},
		{"SSH_RATE_PER_SECOND", "0", "SSH_RATE_PER_SECOND"},
		{"SSH_RATE_BURST", "0", "SSH_RATE_BURST"},
		{"REDIS_DB", "x", "REDIS_DB"},
		{"LOG_FORMAT", "xml", "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load(noEnvFile(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
