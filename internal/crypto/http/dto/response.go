package dto

import (
	cryptoDomain "github.com/openleap-io/crypto-vault-service/internal/crypto/domain"
)

// MapFieldsResponse converts engine output to the response body. A reserved
// key that was null in the request is echoed back as null.
func MapFieldsResponse(fields map[string]string, req *FieldsRequest) map[string]*string {
	response := make(map[string]*string, len(fields)+1)
	for key, value := range fields {
		response[key] = &value
	}

	if reserved, ok := req.Data[cryptoDomain.ReservedKey]; ok && reserved == nil {
		response[cryptoDomain.ReservedKey] = nil
	}

	return response
}
