// Package config provides application configuration through environment variables.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"

	cryptoDomain "github.com/openleap-io/crypto-vault-service/internal/crypto/domain"
	customValidation "github.com/openleap-io/crypto-vault-service/internal/validation"
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the server will bind to.
	ServerHost string
	// ServerPort is the port number the server will listen on.
	ServerPort int

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// EncryptionKeyPath is the path of the secret file. Its first 32 bytes are the AES key.
	EncryptionKeyPath string
	// AESInitializationVector is the seed of the default IV. Its last 32 bytes are used.
	AESInitializationVector string

	// ShutdownTimeout bounds graceful shutdown of the servers.
	ShutdownTimeout time.Duration

	// RateLimitEnabled indicates whether per-IP rate limiting of the crypto endpoints is enabled.
	RateLimitEnabled bool
	// RateLimitRequestsPerSec is the number of requests allowed per second per client IP.
	RateLimitRequestsPerSec float64
	// RateLimitBurst is the burst size per client IP.
	RateLimitBurst int

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Server configuration
		ServerHost: env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort: env.GetInt("SERVER_PORT", 8080),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Key material
		EncryptionKeyPath:       env.GetString("CVS_ENCRYPTION_KEY_PATH", ""),
		AESInitializationVector: env.GetString("CVS_AES_INITIALIZATION_VECTOR", ""),

		ShutdownTimeout: env.GetDuration("SHUTDOWN_TIMEOUT_SECONDS", 30, time.Second),

		// Rate Limiting (crypto endpoints, IP-based)
		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 50.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 100),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "cvs"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),
	}
}

// Validate checks the configuration before any component is built.
// Key material settings are required and the secret path must name a regular
// file; its content is checked when the key material is loaded.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.ServerPort, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.EncryptionKeyPath,
			validation.Required,
			customValidation.NotBlank,
			customValidation.NoWhitespace,
			customValidation.RegularFile,
		),
		validation.Field(&c.AESInitializationVector,
			validation.Required,
			customValidation.NotBlank,
			customValidation.MinBytes(cryptoDomain.IVSize),
		),
		validation.Field(&c.ShutdownTimeout, validation.Required, validation.Min(time.Second)),
		validation.Field(&c.RateLimitRequestsPerSec,
			validation.When(c.RateLimitEnabled, validation.Required, validation.Min(0.0)),
		),
		validation.Field(&c.RateLimitBurst,
			validation.When(c.RateLimitEnabled, validation.Required, validation.Min(1)),
		),
		validation.Field(&c.CORSAllowOrigins,
			validation.When(c.CORSEnabled, validation.Required, customValidation.NotBlank),
		),
		validation.Field(&c.MetricsNamespace,
			validation.When(c.MetricsEnabled, validation.Required, customValidation.NoWhitespace),
		),
		validation.Field(&c.MetricsPort,
			validation.When(c.MetricsEnabled,
				validation.Required,
				validation.Min(1),
				validation.Max(65535),
				validation.NotIn(c.ServerPort).Error("must differ from the server port"),
			),
		),
	)
	return customValidation.WrapValidationError(err)
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	if c.LogLevel == "debug" {
		return "debug"
	}
	return "release"
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
