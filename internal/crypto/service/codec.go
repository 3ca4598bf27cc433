package service

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	cryptoDomain "github.com/openleap-io/crypto-vault-service/internal/crypto/domain"
)

// EncodeCiphertext renders ciphertext bytes as transport-safe text:
// standard base64, every "/" replaced by SlashReplacement, then URL query
// escaping. The base64 alphabet has no "_", so the replacement is unambiguous.
func EncodeCiphertext(ciphertext []byte) string {
	encoded := base64.StdEncoding.EncodeToString(ciphertext)
	replaced := strings.ReplaceAll(encoded, "/", cryptoDomain.SlashReplacement)
	return url.QueryEscape(replaced)
}

// DecodeCiphertext reverses EncodeCiphertext. Empty or malformed text returns
// ErrInvalidIV.
func DecodeCiphertext(text string) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: empty ciphertext", cryptoDomain.ErrInvalidIV)
	}

	unescaped, err := url.QueryUnescape(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrInvalidIV, err)
	}

	restored := strings.ReplaceAll(unescaped, cryptoDomain.SlashReplacement, "/")
	// Strict rejects non-zero padding bits, so no two texts decode to the same bytes.
	ciphertext, err := base64.StdEncoding.Strict().DecodeString(restored)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrInvalidIV, err)
	}
	return ciphertext, nil
}
