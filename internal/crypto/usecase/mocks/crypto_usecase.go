// Package mocks provides mock implementations of the crypto use cases for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCryptoUseCase is a mock implementation of CryptoUseCase for testing.
type MockCryptoUseCase struct {
	mock.Mock
}

// Encrypt mocks the Encrypt method of CryptoUseCase.
func (m *MockCryptoUseCase) Encrypt(ctx context.Context, plaintext string, sessionID *string) (string, error) {
	args := m.Called(ctx, plaintext, sessionID)
	return args.String(0), args.Error(1)
}

// Decrypt mocks the Decrypt method of CryptoUseCase.
func (m *MockCryptoUseCase) Decrypt(ctx context.Context, ciphertext string, sessionID *string) (string, error) {
	args := m.Called(ctx, ciphertext, sessionID)
	return args.String(0), args.Error(1)
}

// EncryptFields mocks the EncryptFields method of CryptoUseCase.
func (m *MockCryptoUseCase) EncryptFields(
	ctx context.Context,
	fields map[string]string,
	sessionID *string,
) (map[string]string, error) {
	args := m.Called(ctx, fields, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

// DecryptFields mocks the DecryptFields method of CryptoUseCase.
func (m *MockCryptoUseCase) DecryptFields(
	ctx context.Context,
	fields map[string]string,
	sessionID *string,
) (map[string]string, error) {
	args := m.Called(ctx, fields, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}
