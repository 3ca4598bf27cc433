// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"fmt"

	validation "github.com/jellydator/validation"

	cryptoDomain "github.com/openleap-io/crypto-vault-service/internal/crypto/domain"
)

// ValueRequest carries a single value to encrypt or decrypt.
// IV is the session identifier; null or absent selects the default IV.
type ValueRequest struct {
	Value *string `json:"value"`
	IV    *string `json:"iv"`
}

// Validate checks if the value request is valid. An empty value is allowed;
// a null one is not. Failures wrap ErrInvalidArgument.
func (r *ValueRequest) Validate() error {
	return invalidArgument(validation.ValidateStruct(r,
		validation.Field(&r.Value, validation.NotNil),
	))
}

// FieldsRequest carries a flat map of fields to encrypt or decrypt.
type FieldsRequest struct {
	Data map[string]*string `json:"data"`
	IV   *string            `json:"iv"`
}

// Validate checks if the fields request is valid. Every value must be
// non-null except the one under the reserved key. Failures wrap
// ErrInvalidArgument.
func (r *FieldsRequest) Validate() error {
	return invalidArgument(validation.ValidateStruct(r,
		validation.Field(&r.Data, validation.NotNil, validation.By(validateFieldValues)),
	))
}

// Fields returns the request data as engine input. A null reserved value is
// left out; MapFieldsResponse restores it.
func (r *FieldsRequest) Fields() map[string]string {
	fields := make(map[string]string, len(r.Data))
	for key, value := range r.Data {
		if value == nil {
			continue
		}
		fields[key] = *value
	}
	return fields
}

// validateFieldValues reports every non-reserved key holding null.
func validateFieldValues(value interface{}) error {
	data, ok := value.(map[string]*string)
	if !ok {
		return validation.NewError("validation_fields_type", "must be an object of strings")
	}

	errs := validation.Errors{}
	for key, v := range data {
		if v == nil && key != cryptoDomain.ReservedKey {
			errs[key] = validation.NewError("validation_not_null", "must not be null")
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// invalidArgument keeps the field-level validation errors reachable with
// errors.As while classifying them as ErrInvalidArgument.
func invalidArgument(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", cryptoDomain.ErrInvalidArgument, err)
}
