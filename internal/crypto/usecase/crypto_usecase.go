package usecase

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	cryptoDomain "github.com/openleap-io/crypto-vault-service/internal/crypto/domain"
	cryptoService "github.com/openleap-io/crypto-vault-service/internal/crypto/service"
)

// cryptoUseCase implements CryptoUseCase over a single AEAD built from the
// process key material.
type cryptoUseCase struct {
	cipher    cryptoService.AEAD
	ivDeriver cryptoService.IVDeriver
}

// NewCryptoUseCase builds the engine from key material. The cipher is created
// once here; the returned use case holds no reference to the raw key.
func NewCryptoUseCase(km *cryptoDomain.KeyMaterial, aeadManager cryptoService.AEADManager) (CryptoUseCase, error) {
	if km == nil {
		return nil, fmt.Errorf("%w: key material is required", cryptoDomain.ErrConfig)
	}

	key := km.Key()
	defer cryptoDomain.Zero(key)

	cipher, err := aeadManager.CreateCipher(key, km.Algorithm())
	if err != nil {
		return nil, err
	}

	return &cryptoUseCase{
		cipher:    cipher,
		ivDeriver: cryptoService.NewSHA256IVDeriver(km),
	}, nil
}

// Encrypt seals the UTF-8 bytes of plaintext under the session IV.
func (c *cryptoUseCase) Encrypt(_ context.Context, plaintext string, sessionID *string) (string, error) {
	iv := c.ivDeriver.DeriveIV(sessionID)

	ciphertext, err := c.cipher.Seal([]byte(plaintext), iv)
	if err != nil {
		return "", err
	}

	return cryptoService.EncodeCiphertext(ciphertext), nil
}

// Decrypt decodes and opens ciphertext under the session IV.
func (c *cryptoUseCase) Decrypt(_ context.Context, ciphertext string, sessionID *string) (string, error) {
	raw, err := cryptoService.DecodeCiphertext(ciphertext)
	if err != nil {
		return "", err
	}

	iv := c.ivDeriver.DeriveIV(sessionID)

	plaintext, err := c.cipher.Open(raw, iv)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(plaintext) {
		return "", fmt.Errorf("%w: plaintext is not valid UTF-8", cryptoDomain.ErrInvalidIV)
	}

	return string(plaintext), nil
}

// EncryptFields encrypts every non-reserved value of fields.
func (c *cryptoUseCase) EncryptFields(
	ctx context.Context,
	fields map[string]string,
	sessionID *string,
) (map[string]string, error) {
	return c.transformFields(ctx, fields, sessionID, c.Encrypt)
}

// DecryptFields decrypts every non-reserved value of fields.
func (c *cryptoUseCase) DecryptFields(
	ctx context.Context,
	fields map[string]string,
	sessionID *string,
) (map[string]string, error) {
	return c.transformFields(ctx, fields, sessionID, c.Decrypt)
}

type transformFunc func(ctx context.Context, value string, sessionID *string) (string, error)

// transformFields applies fn to each non-reserved entry in parallel, bounded
// by GOMAXPROCS. The first failure cancels pending entries and no partial map
// is returned.
func (c *cryptoUseCase) transformFields(
	ctx context.Context,
	fields map[string]string,
	sessionID *string,
	fn transformFunc,
) (map[string]string, error) {
	result := make(map[string]string, len(fields))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for key, value := range fields {
		if key == cryptoDomain.ReservedKey {
			mu.Lock()
			result[key] = value
			mu.Unlock()
			continue
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return cryptoDomain.NewFieldError(key, err)
			}

			out, err := fn(gctx, value, sessionID)
			if err != nil {
				return cryptoDomain.NewFieldError(key, err)
			}

			mu.Lock()
			result[key] = out
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}
