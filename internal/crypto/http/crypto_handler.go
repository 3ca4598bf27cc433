// Package http provides HTTP handlers for field encryption and decryption.
package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	cryptoDomain "github.com/openleap-io/crypto-vault-service/internal/crypto/domain"
	"github.com/openleap-io/crypto-vault-service/internal/crypto/http/dto"
	cryptoUseCase "github.com/openleap-io/crypto-vault-service/internal/crypto/usecase"
	"github.com/openleap-io/crypto-vault-service/internal/httputil"
)

// CryptoHandler handles HTTP requests for field encryption and decryption.
// Single values are answered as text/plain, maps as JSON objects.
type CryptoHandler struct {
	cryptoUseCase cryptoUseCase.CryptoUseCase
	logger        *slog.Logger
}

// NewCryptoHandler creates a new crypto handler with required dependencies.
func NewCryptoHandler(cryptoUseCase cryptoUseCase.CryptoUseCase, logger *slog.Logger) *CryptoHandler {
	return &CryptoHandler{
		cryptoUseCase: cryptoUseCase,
		logger:        logger,
	}
}

// EncryptHandler encrypts a single value.
// POST /api/cvs/encrypt - Returns 200 OK with the ciphertext as text/plain.
func (h *CryptoHandler) EncryptHandler(c *gin.Context) {
	req, ok := h.bindValueRequest(c)
	if !ok {
		return
	}

	ciphertext, err := h.cryptoUseCase.Encrypt(c.Request.Context(), *req.Value, req.IV)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.String(http.StatusOK, ciphertext)
}

// DecryptHandler decrypts a single value.
// POST /api/cvs/decrypt - Returns 200 OK with the plaintext as text/plain,
// or 400 Bad Request when the value does not decrypt under the session.
func (h *CryptoHandler) DecryptHandler(c *gin.Context) {
	req, ok := h.bindValueRequest(c)
	if !ok {
		return
	}

	plaintext, err := h.cryptoUseCase.Decrypt(c.Request.Context(), *req.Value, req.IV)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.String(http.StatusOK, plaintext)
}

// EncryptListHandler encrypts every field of a map except objectId.
// POST /api/cvs/encryptList - Returns 200 OK with the encrypted map.
func (h *CryptoHandler) EncryptListHandler(c *gin.Context) {
	req, ok := h.bindFieldsRequest(c)
	if !ok {
		return
	}

	fields, err := h.cryptoUseCase.EncryptFields(c.Request.Context(), req.Fields(), req.IV)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MapFieldsResponse(fields, req))
}

// DecryptListHandler decrypts every field of a map except objectId.
// POST /api/cvs/decryptList - Returns 200 OK with the decrypted map, or 400
// naming the first field that did not decrypt.
func (h *CryptoHandler) DecryptListHandler(c *gin.Context) {
	req, ok := h.bindFieldsRequest(c)
	if !ok {
		return
	}

	fields, err := h.cryptoUseCase.DecryptFields(c.Request.Context(), req.Fields(), req.IV)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MapFieldsResponse(fields, req))
}

func (h *CryptoHandler) bindValueRequest(c *gin.Context) (*dto.ValueRequest, bool) {
	var req dto.ValueRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return nil, false
	}

	if err := req.Validate(); err != nil {
		_ = c.Error(err)
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return nil, false
	}

	return &req, true
}

func (h *CryptoHandler) bindFieldsRequest(c *gin.Context) (*dto.FieldsRequest, bool) {
	var req dto.FieldsRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return nil, false
	}

	if err := req.Validate(); err != nil {
		_ = c.Error(err)
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return nil, false
	}

	return &req, true
}

// handleError maps engine errors to responses. ErrInvalidIV is a client
// error; everything else falls through to the shared mapping.
func (h *CryptoHandler) handleError(c *gin.Context, err error) {
	var field string
	var fieldErr *cryptoDomain.FieldError
	if errors.As(err, &fieldErr) {
		field = fieldErr.Field
	}

	if errors.Is(err, cryptoDomain.ErrInvalidIV) {
		httputil.WriteErrorGin(c, http.StatusBadRequest, httputil.ErrorResponse{
			Error:   "invalid_iv",
			Message: "Invalid initialization vector",
			Field:   field,
		}, err, h.logger)
		return
	}

	httputil.HandleErrorGin(c, err, h.logger)
}
