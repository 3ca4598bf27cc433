// Package service provides the cryptographic primitives of the field encryption
// engine: AES-256-GCM with caller-supplied IVs, deterministic IV derivation from
// session identifiers, and the wire-safe ciphertext text codec.
package service

import (
	cryptoDomain "github.com/openleap-io/crypto-vault-service/internal/crypto/domain"
)

// AEAD defines authenticated encryption with an explicit IV.
//
// The IV is never generated or stored by the cipher; callers derive it and
// must supply the same IV to Open.
type AEAD interface {
	// Seal encrypts plaintext and returns ciphertext with the tag appended.
	Seal(plaintext, iv []byte) ([]byte, error)

	// Open verifies and decrypts ciphertext produced by Seal with the same IV.
	Open(ciphertext, iv []byte) ([]byte, error)
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	// CreateCipher creates an AEAD cipher instance for the specified algorithm.
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}

// IVDeriver maps an optional session identifier to an IV.
type IVDeriver interface {
	// DeriveIV returns the IV for sessionID, or the default IV when it is nil.
	DeriveIV(sessionID *string) []byte
}
