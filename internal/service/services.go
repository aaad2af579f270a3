package service

import (
	"fmt"

	"github.com/MKhiriev/go-password-vault/internal/config"
	"github.com/MKhiriev/go-password-vault/internal/logger"
	"github.com/MKhiriev/go-password-vault/internal/store"
	"github.com/MKhiriev/go-password-vault/internal/totp"
	"github.com/MKhiriev/go-password-vault/models"
)

type Services struct {
	VaultService VaultService
	Generator    *totp.Generator
	Storages     *store.Storages
}

// NewServices wires the storage layer for cfg and wraps the vault service in
// validation. An empty default algorithm means AES-256-GCM; an unknown one is
// rejected with [config.ErrInvalidAppConfigs].
func NewServices(cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	storages, err := store.NewStorages(cfg.Storage, logger)
	if err != nil {
		return nil, err
	}

	algorithm := models.AES256GCM
	if cfg.App.DefaultAlgorithm != "" {
		if algorithm, err = models.ParseAlgorithm(cfg.App.DefaultAlgorithm); err != nil {
			return nil, fmt.Errorf("%w: %w", config.ErrInvalidAppConfigs, err)
		}
	}

	generator := totp.NewGenerator()
	vaultService := NewVaultValidationService().Wrap(NewVaultService(storages.Vaults, generator, algorithm))

	return &Services{
		VaultService: vaultService,
		Generator:    generator,
		Storages:     storages,
	}, nil
}
