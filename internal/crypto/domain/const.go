package domain

// Algorithm represents the cryptographic algorithm used for field encryption.
type Algorithm string

// AESGCM is AES-256 in Galois/Counter Mode with a 32-byte IV and a 128-bit tag.
// It is the only mode the service encrypts with.
const AESGCM Algorithm = "aes-256-gcm"

const (
	// KeySize is the AES-256 key length in bytes. The key is the first KeySize
	// bytes of the secret file.
	KeySize = 32

	// IVSize is the length of both the default IV and every derived IV.
	// GCM accepts nonces longer than the usual 12 bytes by hashing them into
	// the initial counter block.
	IVSize = 32

	// TagSize is the GCM authentication tag length (128 bits).
	TagSize = 16

	// ReservedKey is the field name that bulk operations pass through verbatim.
	ReservedKey = "objectId"

	// SlashReplacement stands in for every "/" of the base64 ciphertext so that
	// ciphertexts can travel as a single URL path segment.
	SlashReplacement = "+_01+"
)
