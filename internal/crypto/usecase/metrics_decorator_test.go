package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	cryptoDomain "github.com/openleap-io/crypto-vault-service/internal/crypto/domain"
	"github.com/openleap-io/crypto-vault-service/internal/crypto/usecase"
	usecaseMocks "github.com/openleap-io/crypto-vault-service/internal/crypto/usecase/mocks"
)

// mockBusinessMetrics is a local mock for metrics.BusinessMetrics to avoid dependency issues.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func expectMetrics(ctx context.Context, m *mockBusinessMetrics, operation, status string) {
	m.On("RecordOperation", ctx, "crypto", operation, status).Return().Once()
	m.On("RecordDuration", ctx, "crypto", operation, mock.AnythingOfType("time.Duration"), status).
		Return().
		Once()
}

func TestCryptoUseCaseWithMetrics_Encrypt(t *testing.T) {
	ctx := context.Background()
	session := "user123"

	t.Run("Encrypt_Success", func(t *testing.T) {
		mockNext := &usecaseMocks.MockCryptoUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewCryptoUseCaseWithMetrics(mockNext, mockMetrics)

		mockNext.On("Encrypt", ctx, "hello", &session).Return("ciphertext", nil).Once()
		expectMetrics(ctx, mockMetrics, "encrypt", "success")

		result, err := uc.Encrypt(ctx, "hello", &session)

		assert.NoError(t, err)
		assert.Equal(t, "ciphertext", result)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Encrypt_Error", func(t *testing.T) {
		mockNext := &usecaseMocks.MockCryptoUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewCryptoUseCaseWithMetrics(mockNext, mockMetrics)

		mockNext.On("Encrypt", ctx, "hello", (*string)(nil)).Return("", cryptoDomain.ErrCrypto).Once()
		expectMetrics(ctx, mockMetrics, "encrypt", "error")

		result, err := uc.Encrypt(ctx, "hello", nil)

		assert.ErrorIs(t, err, cryptoDomain.ErrCrypto)
		assert.Empty(t, result)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})
}

func TestCryptoUseCaseWithMetrics_Decrypt(t *testing.T) {
	ctx := context.Background()

	t.Run("Decrypt_Success", func(t *testing.T) {
		mockNext := &usecaseMocks.MockCryptoUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewCryptoUseCaseWithMetrics(mockNext, mockMetrics)

		mockNext.On("Decrypt", ctx, "ciphertext", (*string)(nil)).Return("hello", nil).Once()
		expectMetrics(ctx, mockMetrics, "decrypt", "success")

		result, err := uc.Decrypt(ctx, "ciphertext", nil)

		assert.NoError(t, err)
		assert.Equal(t, "hello", result)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Decrypt_InvalidIV", func(t *testing.T) {
		mockNext := &usecaseMocks.MockCryptoUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewCryptoUseCaseWithMetrics(mockNext, mockMetrics)

		mockNext.On("Decrypt", ctx, "bad", (*string)(nil)).Return("", cryptoDomain.ErrInvalidIV).Once()
		expectMetrics(ctx, mockMetrics, "decrypt", "error")

		_, err := uc.Decrypt(ctx, "bad", nil)

		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidIV)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})
}

func TestCryptoUseCaseWithMetrics_Fields(t *testing.T) {
	ctx := context.Background()
	fields := map[string]string{"field1": "a", "objectId": "12345"}
	encrypted := map[string]string{"field1": "x", "objectId": "12345"}

	t.Run("EncryptFields_Success", func(t *testing.T) {
		mockNext := &usecaseMocks.MockCryptoUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewCryptoUseCaseWithMetrics(mockNext, mockMetrics)

		mockNext.On("EncryptFields", ctx, fields, (*string)(nil)).Return(encrypted, nil).Once()
		expectMetrics(ctx, mockMetrics, "encrypt_fields", "success")

		result, err := uc.EncryptFields(ctx, fields, nil)

		assert.NoError(t, err)
		assert.Equal(t, encrypted, result)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("DecryptFields_Error", func(t *testing.T) {
		mockNext := &usecaseMocks.MockCryptoUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewCryptoUseCaseWithMetrics(mockNext, mockMetrics)

		expectedErr := cryptoDomain.NewFieldError("field1", cryptoDomain.ErrInvalidIV)
		mockNext.On("DecryptFields", ctx, encrypted, (*string)(nil)).Return(nil, expectedErr).Once()
		expectMetrics(ctx, mockMetrics, "decrypt_fields", "error")

		result, err := uc.DecryptFields(ctx, encrypted, nil)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidIV)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})
}
