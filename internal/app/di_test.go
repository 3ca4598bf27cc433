package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openleap-io/crypto-vault-service/internal/config"
	cryptoDomain "github.com/openleap-io/crypto-vault-service/internal/crypto/domain"
)

const testSeed = "ThisIsTheSeedForTheDefaultInitializationVector"

func writeSecretFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "secret.key")
	require.NoError(t, os.WriteFile(path, []byte("ThisIsATestSecretKeyForAESEncryption"), 0o600))
	return path
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		ServerHost:              "127.0.0.1",
		ServerPort:              0,
		LogLevel:                "info",
		EncryptionKeyPath:       writeSecretFile(t),
		AESInitializationVector: testSeed,
		ShutdownTimeout:         5 * time.Second,
		RateLimitEnabled:        true,
		RateLimitRequestsPerSec: 50,
		RateLimitBurst:          100,
		MetricsEnabled:          true,
		MetricsNamespace:        "cvs_test",
		MetricsPort:             0,
	}
}

func newTestContainer(t *testing.T, cfg *config.Config) *Container {
	t.Helper()
	container := NewContainer(cfg)
	container.SetLogOutput(io.Discard)
	t.Cleanup(func() {
		assert.NoError(t, container.Shutdown(context.Background()))
	})
	return container
}

// TestNewContainer verifies that a new container can be created with a valid configuration.
func TestNewContainer(t *testing.T) {
	cfg := testConfig(t)

	container := NewContainer(cfg)

	require.NotNil(t, container)
	assert.Same(t, cfg, container.Config())
}

// TestContainerLogger verifies that the logger is a lazily built singleton.
func TestContainerLogger(t *testing.T) {
	container := newTestContainer(t, &config.Config{LogLevel: "debug"})

	assert.Nil(t, container.logger)

	logger := container.Logger()
	require.NotNil(t, logger)
	assert.Same(t, logger, container.Logger())
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
}

// TestContainerLoggerDefaultLevel verifies that an unknown level falls back to info.
func TestContainerLoggerDefaultLevel(t *testing.T) {
	container := newTestContainer(t, &config.Config{LogLevel: "invalid"})

	logger := container.Logger()
	require.NotNil(t, logger)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestContainerKeyMaterial(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		container := newTestContainer(t, testConfig(t))

		km, err := container.KeyMaterial()
		require.NoError(t, err)
		assert.Equal(t, []byte("ThisIsATestSecretKeyForAESEncryp"), km.Key())
		assert.Equal(t, []byte(testSeed[len(testSeed)-cryptoDomain.IVSize:]), km.DefaultIV())

		km2, err := container.KeyMaterial()
		require.NoError(t, err)
		assert.Same(t, km, km2)
	})

	t.Run("Error_MissingFile", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.EncryptionKeyPath = filepath.Join(t.TempDir(), "missing.key")
		container := newTestContainer(t, cfg)

		_, err := container.KeyMaterial()
		require.Error(t, err)
		assert.ErrorIs(t, err, cryptoDomain.ErrConfig)

		// The stored error is returned on later calls.
		_, err = container.KeyMaterial()
		assert.ErrorIs(t, err, cryptoDomain.ErrConfig)
	})

	t.Run("Error_PropagatesToServer", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.AESInitializationVector = "short"
		container := newTestContainer(t, cfg)

		_, err := container.HTTPServer()
		assert.ErrorIs(t, err, cryptoDomain.ErrConfig)
	})
}

func TestContainerCryptoUseCase(t *testing.T) {
	container := newTestContainer(t, testConfig(t))

	useCase, err := container.CryptoUseCase()
	require.NoError(t, err)

	session := "user123"
	ciphertext, err := useCase.Encrypt(context.Background(), "Hello, World!", &session)
	require.NoError(t, err)

	plaintext, err := useCase.Decrypt(context.Background(), ciphertext, &session)
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!", plaintext)

	useCase2, err := container.CryptoUseCase()
	require.NoError(t, err)
	assert.Same(t, useCase, useCase2)
}

func TestContainerMetrics(t *testing.T) {
	t.Run("Enabled", func(t *testing.T) {
		container := newTestContainer(t, testConfig(t))

		provider, err := container.MetricsProvider()
		require.NoError(t, err)
		require.NotNil(t, provider)
		assert.Equal(t, "cvs_test", provider.Namespace())

		metricsServer, err := container.MetricsServer()
		require.NoError(t, err)
		assert.NotNil(t, metricsServer)
	})

	t.Run("Disabled", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.MetricsEnabled = false
		container := newTestContainer(t, cfg)

		provider, err := container.MetricsProvider()
		require.NoError(t, err)
		assert.Nil(t, provider)

		businessMetrics, err := container.BusinessMetrics()
		require.NoError(t, err)
		assert.NotNil(t, businessMetrics)

		metricsServer, err := container.MetricsServer()
		require.NoError(t, err)
		assert.Nil(t, metricsServer)
	})
}

// TestContainerHTTPServer wires the full stack and checks business metrics are recorded.
func TestContainerHTTPServer(t *testing.T) {
	container := newTestContainer(t, testConfig(t))

	server, err := container.HTTPServer()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(
		http.MethodPost,
		"/api/cvs/encrypt",
		strings.NewReader(`{"value":"Hello, World!","iv":"user123"}`),
	)
	req.Header.Set("Content-Type", "application/json")
	server.GetHandler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	metricsServer, err := container.MetricsServer()
	require.NoError(t, err)

	w = httptest.NewRecorder()
	metricsServer.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cvs_test_operations_total")
	assert.Contains(t, w.Body.String(), `operation="encrypt"`)
}

// TestContainerShutdown verifies that the shutdown method can be called safely.
func TestContainerShutdown(t *testing.T) {
	t.Run("NothingInitialized", func(t *testing.T) {
		container := NewContainer(&config.Config{LogLevel: "info"})
		assert.NoError(t, container.Shutdown(context.Background()))
	})

	t.Run("ZeroesKeyMaterial", func(t *testing.T) {
		container := NewContainer(testConfig(t))
		container.SetLogOutput(io.Discard)

		km, err := container.KeyMaterial()
		require.NoError(t, err)

		require.NoError(t, container.Shutdown(context.Background()))
		assert.Equal(t, make([]byte, cryptoDomain.KeySize), km.Key())
	})
}
