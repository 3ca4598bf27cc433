package service

import (
	"crypto/sha256"

	cryptoDomain "github.com/openleap-io/crypto-vault-service/internal/crypto/domain"
)

// SHA256IVDeriver derives IVs by hashing session identifiers with SHA-256.
type SHA256IVDeriver struct {
	defaultIV []byte
}

// NewSHA256IVDeriver creates a deriver that falls back to the key material's
// default IV when no session identifier is given.
func NewSHA256IVDeriver(km *cryptoDomain.KeyMaterial) *SHA256IVDeriver {
	return &SHA256IVDeriver{defaultIV: km.DefaultIV()}
}

// DeriveIV returns the first IVSize bytes of SHA-256 over the UTF-8 bytes of
// sessionID. A nil sessionID yields a copy of the default IV; an empty string
// is hashed like any other value.
func (d *SHA256IVDeriver) DeriveIV(sessionID *string) []byte {
	if sessionID == nil {
		return append([]byte(nil), d.defaultIV...)
	}

	digest := sha256.Sum256([]byte(*sessionID))
	iv := make([]byte, cryptoDomain.IVSize)
	copy(iv, digest[:])
	return iv
}
