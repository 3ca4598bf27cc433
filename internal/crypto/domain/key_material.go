// Package domain defines the key material, constants and errors of the field
// encryption engine.
//
// Key material is provisioned once at startup from a secret file and an IV
// seed, then shared read-only by every engine built from it.
package domain

import (
	"fmt"
	"os"
	"strings"
)

// KeyMaterial holds the AES key and the default IV used when a caller supplies
// no session identifier. It is immutable after construction; accessors return
// copies so callers cannot alter the shared bytes.
type KeyMaterial struct {
	key       []byte
	defaultIV []byte
}

// NewKeyMaterial builds key material from raw bytes. The key must be exactly
// KeySize bytes and the default IV exactly IVSize bytes. Inputs are copied.
func NewKeyMaterial(key, defaultIV []byte) (*KeyMaterial, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key must be %d bytes, got %d", ErrConfig, KeySize, len(key))
	}
	if len(defaultIV) != IVSize {
		return nil, fmt.Errorf("%w: wrong IV length: must be %d bytes long", ErrConfig, IVSize)
	}

	return &KeyMaterial{
		key:       append([]byte(nil), key...),
		defaultIV: append([]byte(nil), defaultIV...),
	}, nil
}

// LoadKeyMaterial reads the secret file at secretPath and derives the key and
// default IV.
//
// The first KeySize bytes of the file content become the key. The default IV
// is the last IVSize bytes of ivSeed, not the first: longer seeds are
// tail-truncated. Every failure wraps ErrConfig.
func LoadKeyMaterial(secretPath, ivSeed string) (*KeyMaterial, error) {
	if strings.TrimSpace(secretPath) == "" {
		return nil, fmt.Errorf("%w: encryption key path must not be blank", ErrConfig)
	}
	if strings.TrimSpace(ivSeed) == "" {
		return nil, fmt.Errorf("%w: initialization vector must not be blank", ErrConfig)
	}

	seed := []byte(ivSeed)
	if len(seed) < IVSize {
		return nil, fmt.Errorf("%w: wrong IV length: must be %d bytes long", ErrConfig, IVSize)
	}

	secret, err := os.ReadFile(secretPath) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read secret file: %v", ErrConfig, err)
	}
	defer Zero(secret)

	if len(secret) < KeySize {
		return nil, fmt.Errorf(
			"%w: secret must be at least %d bytes, got %d",
			ErrConfig,
			KeySize,
			len(secret),
		)
	}

	return NewKeyMaterial(secret[:KeySize], seed[len(seed)-IVSize:])
}

// Algorithm returns the cipher the key is meant for.
func (k *KeyMaterial) Algorithm() Algorithm {
	return AESGCM
}

// Key returns a copy of the raw key bytes.
func (k *KeyMaterial) Key() []byte {
	return append([]byte(nil), k.key...)
}

// DefaultIV returns a copy of the default IV.
func (k *KeyMaterial) DefaultIV() []byte {
	return append([]byte(nil), k.defaultIV...)
}

// Close zeroes the key material. Engines built earlier keep working because
// they hold their own cipher state.
func (k *KeyMaterial) Close() {
	Zero(k.key)
	Zero(k.defaultIV)
}
