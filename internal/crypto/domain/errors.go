package domain

import (
	"fmt"

	"github.com/openleap-io/crypto-vault-service/internal/errors"
)

// Field encryption error definitions.
//
// ErrInvalidIV and ErrInvalidArgument wrap errors.ErrInvalidInput so callers can
// treat them as client errors. ErrConfig and ErrCrypto are internal faults.
var (
	// ErrConfig indicates the key material could not be provisioned at startup:
	// unreadable or short secret file, blank path, or a seed shorter than IVSize.
	// It is fatal; the service must not accept requests.
	ErrConfig = errors.New("invalid key configuration")

	// ErrInvalidIV indicates a ciphertext could not be decrypted. Wrong session
	// id, tampered ciphertext, and malformed encoding are deliberately reported
	// the same way.
	//
	// HTTP Status: 400 Bad Request
	ErrInvalidIV = fmt.Errorf("%w: invalid initialization vector", errors.ErrInvalidInput)

	// ErrInvalidArgument indicates a missing (null) value where one is required.
	//
	// HTTP Status: 422 Unprocessable Entity
	ErrInvalidArgument = fmt.Errorf("%w: invalid argument", errors.ErrInvalidInput)

	// ErrCrypto indicates the cipher primitive rejected the key or IV during
	// encryption. Unreachable with validated key material.
	//
	// HTTP Status: 500 Internal Server Error
	ErrCrypto = errors.New("cryptographic operation failed")

	// ErrFieldOperation classifies any failure of a bulk field operation.
	ErrFieldOperation = errors.New("field operation failed")
)

// FieldError reports which entry aborted a bulk field operation.
// It matches both ErrFieldOperation and the underlying cause with errors.Is.
type FieldError struct {
	Field string
	Err   error
}

// NewFieldError wraps err with the key of the field that failed.
func NewFieldError(field string, err error) *FieldError {
	return &FieldError{Field: field, Err: err}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: field %q: %v", ErrFieldOperation.Error(), e.Field, e.Err)
}

// Unwrap exposes both the aggregate classification and the cause.
func (e *FieldError) Unwrap() []error {
	return []error{ErrFieldOperation, e.Err}
}
