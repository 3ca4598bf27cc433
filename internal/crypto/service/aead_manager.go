package service

import (
	"fmt"

	cryptoDomain "github.com/openleap-io/crypto-vault-service/internal/crypto/domain"
)

// AEADManagerService implements the AEADManager interface for creating AEAD cipher instances.
type AEADManagerService struct{}

// NewAEADManager creates a new AEADManagerService.
func NewAEADManager() *AEADManagerService {
	return &AEADManagerService{}
}

// CreateCipher creates an AEAD cipher instance for the specified algorithm.
// Only AES-256-GCM is supported; anything else wraps ErrCrypto.
func (am *AEADManagerService) CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error) {
	switch alg {
	case cryptoDomain.AESGCM:
		return NewAESGCM(key)
	default:
		return nil, fmt.Errorf("%w: unsupported algorithm %q", cryptoDomain.ErrCrypto, alg)
	}
}
