package app

import (
	"fmt"

	cryptoDomain "github.com/openleap-io/crypto-vault-service/internal/crypto/domain"
	cryptoHTTP "github.com/openleap-io/crypto-vault-service/internal/crypto/http"
	cryptoService "github.com/openleap-io/crypto-vault-service/internal/crypto/service"
	cryptoUseCase "github.com/openleap-io/crypto-vault-service/internal/crypto/usecase"
)

// KeyMaterial returns the key material loaded from the configured secret file.
func (c *Container) KeyMaterial() (*cryptoDomain.KeyMaterial, error) {
	var err error
	c.keyMaterialInit.Do(func() {
		c.keyMaterial, err = c.initKeyMaterial()
		if err != nil {
			c.storeInitError("keyMaterial", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("keyMaterial"); storedErr != nil {
		return nil, storedErr
	}
	return c.keyMaterial, nil
}

// AEADManager returns the AEAD manager service.
func (c *Container) AEADManager() cryptoService.AEADManager {
	c.aeadManagerInit.Do(func() {
		c.aeadManager = cryptoService.NewAEADManager()
	})
	return c.aeadManager
}

// CryptoUseCase returns the field encryption engine, wrapped with business metrics.
func (c *Container) CryptoUseCase() (cryptoUseCase.CryptoUseCase, error) {
	var err error
	c.cryptoUseCaseInit.Do(func() {
		c.cryptoUseCase, err = c.initCryptoUseCase()
		if err != nil {
			c.storeInitError("cryptoUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("cryptoUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.cryptoUseCase, nil
}

// CryptoHandler returns the HTTP handler for the crypto API.
func (c *Container) CryptoHandler() (*cryptoHTTP.CryptoHandler, error) {
	var err error
	c.cryptoHandlerInit.Do(func() {
		c.cryptoHandler, err = c.initCryptoHandler()
		if err != nil {
			c.storeInitError("cryptoHandler", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("cryptoHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.cryptoHandler, nil
}

func (c *Container) initKeyMaterial() (*cryptoDomain.KeyMaterial, error) {
	keyMaterial, err := cryptoDomain.LoadKeyMaterial(
		c.config.EncryptionKeyPath,
		c.config.AESInitializationVector,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load key material: %w", err)
	}
	return keyMaterial, nil
}

func (c *Container) initCryptoUseCase() (cryptoUseCase.CryptoUseCase, error) {
	keyMaterial, err := c.KeyMaterial()
	if err != nil {
		return nil, fmt.Errorf("failed to get key material for crypto use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for crypto use case: %w", err)
	}

	useCase, err := cryptoUseCase.NewCryptoUseCase(keyMaterial, c.AEADManager())
	if err != nil {
		return nil, fmt.Errorf("failed to create crypto use case: %w", err)
	}

	return cryptoUseCase.NewCryptoUseCaseWithMetrics(useCase, businessMetrics), nil
}

func (c *Container) initCryptoHandler() (*cryptoHTTP.CryptoHandler, error) {
	useCase, err := c.CryptoUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get crypto use case for crypto handler: %w", err)
	}
	return cryptoHTTP.NewCryptoHandler(useCase, c.Logger()), nil
}
