// Package validation provides custom validation rules for the application.
package validation

import (
	"os"
	"strconv"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/openleap-io/crypto-vault-service/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// MinBytes validates that a string is at least n bytes long once UTF-8 encoded.
// Unlike validation.Length it counts bytes, not runes.
func MinBytes(n int) validation.Rule {
	return validation.NewStringRuleWithError(
		func(s string) bool {
			return len(s) >= n
		},
		validation.NewError(
			"validation_min_bytes",
			"must be at least "+strconv.Itoa(n)+" bytes long",
		),
	)
}

// RegularFile validates that a string names an existing regular file.
var RegularFile = validation.NewStringRuleWithError(
	func(s string) bool {
		info, err := os.Stat(s)
		return err == nil && info.Mode().IsRegular()
	},
	validation.NewError("validation_regular_file", "must be an existing regular file"),
)
