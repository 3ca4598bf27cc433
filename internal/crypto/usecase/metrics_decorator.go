package usecase

import (
	"context"
	"time"

	"github.com/openleap-io/crypto-vault-service/internal/metrics"
)

// cryptoUseCaseWithMetrics decorates CryptoUseCase with metrics instrumentation.
type cryptoUseCaseWithMetrics struct {
	next    CryptoUseCase
	metrics metrics.BusinessMetrics
}

// NewCryptoUseCaseWithMetrics wraps a CryptoUseCase with metrics recording.
func NewCryptoUseCaseWithMetrics(useCase CryptoUseCase, m metrics.BusinessMetrics) CryptoUseCase {
	return &cryptoUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (c *cryptoUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.Status(err)
	c.metrics.RecordOperation(ctx, metrics.DomainCrypto, operation, status)
	c.metrics.RecordDuration(ctx, metrics.DomainCrypto, operation, time.Since(start), status)
}

// Encrypt records metrics for single-value encryption.
func (c *cryptoUseCaseWithMetrics) Encrypt(ctx context.Context, plaintext string, sessionID *string) (string, error) {
	start := time.Now()
	out, err := c.next.Encrypt(ctx, plaintext, sessionID)
	c.record(ctx, "encrypt", start, err)
	return out, err
}

// Decrypt records metrics for single-value decryption.
func (c *cryptoUseCaseWithMetrics) Decrypt(ctx context.Context, ciphertext string, sessionID *string) (string, error) {
	start := time.Now()
	out, err := c.next.Decrypt(ctx, ciphertext, sessionID)
	c.record(ctx, "decrypt", start, err)
	return out, err
}

// EncryptFields records metrics for map encryption.
func (c *cryptoUseCaseWithMetrics) EncryptFields(
	ctx context.Context,
	fields map[string]string,
	sessionID *string,
) (map[string]string, error) {
	start := time.Now()
	out, err := c.next.EncryptFields(ctx, fields, sessionID)
	c.record(ctx, "encrypt_fields", start, err)
	return out, err
}

// DecryptFields records metrics for map decryption.
func (c *cryptoUseCaseWithMetrics) DecryptFields(
	ctx context.Context,
	fields map[string]string,
	sessionID *string,
) (map[string]string, error) {
	start := time.Now()
	out, err := c.next.DecryptFields(ctx, fields, sessionID)
	c.record(ctx, "decrypt_fields", start, err)
	return out, err
}
