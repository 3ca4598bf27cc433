package commands

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"os"

	cryptoDomain "github.com/openleap-io/crypto-vault-service/internal/crypto/domain"
	apperrors "github.com/openleap-io/crypto-vault-service/internal/errors"
)

// DefaultSecretLength is the number of random bytes generate-secret draws
// unless told otherwise.
const DefaultSecretLength = 48

// RunGenerateSecret writes a new random secret file for CVS_ENCRYPTION_KEY_PATH.
// length random bytes are base64url encoded, so the file always holds more than
// the KeySize bytes the service reads from it. An existing file is never
// overwritten. The secret itself is not printed.
func RunGenerateSecret(logger *slog.Logger, writer io.Writer, outputPath string, length int) error {
	if outputPath == "" {
		return fmt.Errorf("%w: --output is required", apperrors.ErrInvalidInput)
	}
	if length < cryptoDomain.KeySize {
		return fmt.Errorf(
			"%w: length must be at least %d bytes, got %d",
			apperrors.ErrInvalidInput,
			cryptoDomain.KeySize,
			length,
		)
	}

	raw := make([]byte, length)
	if _, err := rand.Read(raw); err != nil {
		return fmt.Errorf("failed to generate secret: %w", err)
	}
	defer cryptoDomain.Zero(raw)

	encoded := []byte(base64.RawURLEncoding.EncodeToString(raw))
	defer cryptoDomain.Zero(encoded)

	file, err := os.OpenFile(outputPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600) //nolint:gosec // operator supplied path
	if err != nil {
		if os.IsExist(err) {
			return apperrors.Wrapf(apperrors.ErrConflict, "secret file %s already exists", outputPath)
		}
		return fmt.Errorf("failed to create secret file: %w", err)
	}

	if _, err := file.Write(encoded); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write secret file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close secret file: %w", err)
	}

	logger.Info("secret file generated", slog.String("path", outputPath), slog.Int("length", length))

	_, _ = fmt.Fprintf(writer, "Secret written to %s\n", outputPath)
	_, _ = fmt.Fprintf(writer, "CVS_ENCRYPTION_KEY_PATH=\"%s\"\n", outputPath)
	_, _ = fmt.Fprintln(writer, "\nIMPORTANT: Losing this file makes existing ciphertexts unrecoverable.")

	return nil
}
