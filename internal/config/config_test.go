package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/openleap-io/crypto-vault-service/internal/errors"
)

const testSeed = "ThisIsATestInitializationVector123456789012345678901234567890"

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name:    "load default configuration",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "0.0.0.0", cfg.ServerHost)
				assert.Equal(t, 8080, cfg.ServerPort)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Empty(t, cfg.EncryptionKeyPath)
				assert.Empty(t, cfg.AESInitializationVector)
				assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
				assert.True(t, cfg.RateLimitEnabled)
				assert.Equal(t, 50.0, cfg.RateLimitRequestsPerSec)
				assert.Equal(t, 100, cfg.RateLimitBurst)
				assert.False(t, cfg.CORSEnabled)
				assert.True(t, cfg.MetricsEnabled)
				assert.Equal(t, "cvs", cfg.MetricsNamespace)
				assert.Equal(t, 8081, cfg.MetricsPort)
			},
		},
		{
			name: "load custom server configuration",
			envVars: map[string]string{
				"SERVER_HOST": "localhost",
				"SERVER_PORT": "9090",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "localhost", cfg.ServerHost)
				assert.Equal(t, 9090, cfg.ServerPort)
			},
		},
		{
			name: "load key material configuration",
			envVars: map[string]string{
				"CVS_ENCRYPTION_KEY_PATH":       "/etc/cvs/secret.key",
				"CVS_AES_INITIALIZATION_VECTOR": testSeed,
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/etc/cvs/secret.key", cfg.EncryptionKeyPath)
				assert.Equal(t, testSeed, cfg.AESInitializationVector)
			},
		},
		{
			name: "load custom rate limit and shutdown configuration",
			envVars: map[string]string{
				"RATE_LIMIT_ENABLED":          "false",
				"RATE_LIMIT_REQUESTS_PER_SEC": "2.5",
				"RATE_LIMIT_BURST":            "5",
				"SHUTDOWN_TIMEOUT_SECONDS":    "5",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.False(t, cfg.RateLimitEnabled)
				assert.Equal(t, 2.5, cfg.RateLimitRequestsPerSec)
				assert.Equal(t, 5, cfg.RateLimitBurst)
				assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
			},
		},
		{
			name: "load custom log level",
			envVars: map[string]string{
				"LOG_LEVEL": "debug",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, "debug", cfg.GetGinMode())
				assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()

			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg := Load()

			tt.validate(t, cfg)
		})
	}
}

func validConfig(t *testing.T) *Config {
	t.Helper()
	keyPath := filepath.Join(t.TempDir(), "secret.key")
	require.NoError(t, os.WriteFile(keyPath, []byte("ThisIsATestSecretKeyForAESEncryption"), 0o600))

	return &Config{
		ServerHost:              "0.0.0.0",
		ServerPort:              8080,
		LogLevel:                "info",
		EncryptionKeyPath:       keyPath,
		AESInitializationVector: testSeed,
		ShutdownTimeout:         30 * time.Second,
		RateLimitEnabled:        true,
		RateLimitRequestsPerSec: 50,
		RateLimitBurst:          100,
		MetricsEnabled:          true,
		MetricsNamespace:        "cvs",
		MetricsPort:             8081,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(cfg *Config)
		errContains string
	}{
		{
			name:   "valid configuration",
			mutate: func(cfg *Config) {},
		},
		{
			name:        "missing key path",
			mutate:      func(cfg *Config) { cfg.EncryptionKeyPath = "" },
			errContains: "EncryptionKeyPath",
		},
		{
			name:        "blank key path",
			mutate:      func(cfg *Config) { cfg.EncryptionKeyPath = "   " },
			errContains: "EncryptionKeyPath",
		},
		{
			name: "missing secret file",
			mutate: func(cfg *Config) {
				cfg.EncryptionKeyPath = filepath.Join(filepath.Dir(cfg.EncryptionKeyPath), "missing.key")
			},
			errContains: "must be an existing regular file",
		},
		{
			name:        "secret path is a directory",
			mutate:      func(cfg *Config) { cfg.EncryptionKeyPath = filepath.Dir(cfg.EncryptionKeyPath) },
			errContains: "must be an existing regular file",
		},
		{
			name:        "missing IV seed",
			mutate:      func(cfg *Config) { cfg.AESInitializationVector = "" },
			errContains: "AESInitializationVector",
		},
		{
			name:        "short IV seed",
			mutate:      func(cfg *Config) { cfg.AESInitializationVector = "too-short" },
			errContains: "at least 32 bytes",
		},
		{
			name:        "unknown log level",
			mutate:      func(cfg *Config) { cfg.LogLevel = "verbose" },
			errContains: "LogLevel",
		},
		{
			name:        "invalid server port",
			mutate:      func(cfg *Config) { cfg.ServerPort = 70000 },
			errContains: "ServerPort",
		},
		{
			name:        "metrics port equals server port",
			mutate:      func(cfg *Config) { cfg.MetricsPort = cfg.ServerPort },
			errContains: "must differ from the server port",
		},
		{
			name: "metrics port ignored when disabled",
			mutate: func(cfg *Config) {
				cfg.MetricsEnabled = false
				cfg.MetricsPort = cfg.ServerPort
			},
		},
		{
			name:        "zero burst with rate limiting",
			mutate:      func(cfg *Config) { cfg.RateLimitBurst = 0 },
			errContains: "RateLimitBurst",
		},
		{
			name:        "cors enabled without origins",
			mutate:      func(cfg *Config) { cfg.CORSEnabled = true },
			errContains: "CORSAllowOrigins",
		},
		{
			name:        "zero shutdown timeout",
			mutate:      func(cfg *Config) { cfg.ShutdownTimeout = 0 },
			errContains: "ShutdownTimeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestConfig_SlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"unknown": slog.LevelInfo,
	}

	for level, expected := range tests {
		cfg := &Config{LogLevel: level}
		assert.Equal(t, expected, cfg.SlogLevel(), level)
	}
}

func TestConfig_GetGinMode(t *testing.T) {
	assert.Equal(t, "debug", (&Config{LogLevel: "debug"}).GetGinMode())
	assert.Equal(t, "release", (&Config{LogLevel: "info"}).GetGinMode())
	assert.Equal(t, "release", (&Config{LogLevel: "error"}).GetGinMode())
}
