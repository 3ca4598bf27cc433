package service

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	cryptoDomain "github.com/openleap-io/crypto-vault-service/internal/crypto/domain"
)

// AESGCMCipher implements the AEAD interface using AES-256-GCM with a 32-byte
// nonce and a 16-byte tag.
//
// Unlike random-nonce usage, the nonce here is derived from the session
// identifier, so the same plaintext under the same session always yields the
// same ciphertext. Tag verification on Open still detects any tampering.
//
// Thread safety:
//
//	The underlying cipher.AEAD is built once and is safe for concurrent use.
type AESGCMCipher struct {
	aead cipher.AEAD
}

// NewAESGCM creates a new AES-256-GCM cipher instance.
//
// The key must be exactly 32 bytes. Failures wrap ErrCrypto.
func NewAESGCM(key []byte) (*AESGCMCipher, error) {
	if len(key) != cryptoDomain.KeySize {
		return nil, fmt.Errorf("%w: key must be exactly %d bytes", cryptoDomain.ErrCrypto, cryptoDomain.KeySize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create AES cipher: %v", cryptoDomain.ErrCrypto, err)
	}

	aead, err := cipher.NewGCMWithNonceSize(block, cryptoDomain.IVSize)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create GCM: %v", cryptoDomain.ErrCrypto, err)
	}

	return &AESGCMCipher{aead: aead}, nil
}

// Seal encrypts plaintext under iv. The returned ciphertext carries the
// authentication tag in its last TagSize bytes.
func (a *AESGCMCipher) Seal(plaintext, iv []byte) ([]byte, error) {
	if len(iv) != a.aead.NonceSize() {
		return nil, fmt.Errorf(
			"%w: IV must be %d bytes, got %d",
			cryptoDomain.ErrCrypto,
			a.aead.NonceSize(),
			len(iv),
		)
	}

	return a.aead.Seal(nil, iv, plaintext, nil), nil
}

// Open decrypts ciphertext under iv. Any failure, including a short
// ciphertext, a wrong IV, or a modified tag, returns ErrInvalidIV.
func (a *AESGCMCipher) Open(ciphertext, iv []byte) ([]byte, error) {
	if len(iv) != a.aead.NonceSize() || len(ciphertext) < a.aead.Overhead() {
		return nil, cryptoDomain.ErrInvalidIV
	}

	plaintext, err := a.aead.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrInvalidIV, err)
	}
	return plaintext, nil
}
