// Package usecase defines the business logic interfaces for field encryption.
package usecase

import "context"

// CryptoUseCase defines the field encryption engine.
//
// A nil sessionID selects the default IV. Any non-nil value, including the
// empty string, is hashed into a per-session IV, so the same plaintext and
// session always produce the same ciphertext.
//
// Map operations copy the value under domain.ReservedKey unchanged and apply
// the single-value operation to every other entry. They are all-or-nothing:
// on error the returned map is nil and the error is a *domain.FieldError that
// names the failing key and unwraps to its cause.
//
// Implementations are safe for concurrent use.
type CryptoUseCase interface {
	// Encrypt encrypts plaintext and returns transport-safe ciphertext text.
	Encrypt(ctx context.Context, plaintext string, sessionID *string) (string, error)

	// Decrypt reverses Encrypt. Malformed text, a wrong session, or a modified
	// ciphertext all return domain.ErrInvalidIV.
	Decrypt(ctx context.Context, ciphertext string, sessionID *string) (string, error)

	// EncryptFields encrypts every value of fields except the reserved key.
	EncryptFields(ctx context.Context, fields map[string]string, sessionID *string) (map[string]string, error)

	// DecryptFields decrypts every value of fields except the reserved key.
	DecryptFields(ctx context.Context, fields map[string]string, sessionID *string) (map[string]string, error)
}
