package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	cryptoUseCase "github.com/openleap-io/crypto-vault-service/internal/crypto/usecase"
)

// cryptResult is the JSON output of the encrypt and decrypt commands.
type cryptResult struct {
	Value string `json:"value"`
}

// RunEncrypt encrypts a single value with the configured key material and
// writes the wire-safe ciphertext. A nil sessionID selects the default IV.
func RunEncrypt(
	ctx context.Context,
	useCase cryptoUseCase.CryptoUseCase,
	logger *slog.Logger,
	writer io.Writer,
	value string,
	sessionID *string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	ciphertext, err := useCase.Encrypt(ctx, value, sessionID)
	if err != nil {
		return fmt.Errorf("failed to encrypt value: %w", err)
	}

	logger.Debug("value encrypted", slog.Bool("session", sessionID != nil))

	return writeCryptResult(writer, ciphertext, format)
}

// RunDecrypt decrypts a single wire-safe ciphertext. Decryption with a session
// other than the one used to encrypt fails with ErrInvalidIV.
func RunDecrypt(
	ctx context.Context,
	useCase cryptoUseCase.CryptoUseCase,
	logger *slog.Logger,
	writer io.Writer,
	value string,
	sessionID *string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	plaintext, err := useCase.Decrypt(ctx, value, sessionID)
	if err != nil {
		return fmt.Errorf("failed to decrypt value: %w", err)
	}

	logger.Debug("value decrypted", slog.Bool("session", sessionID != nil))

	return writeCryptResult(writer, plaintext, format)
}

func writeCryptResult(writer io.Writer, value, format string) error {
	if format == "json" {
		return writeJSON(writer, cryptResult{Value: value})
	}
	_, _ = fmt.Fprintln(writer, value)
	return nil
}
