package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-password-vault/internal/validators"
	"github.com/MKhiriev/go-password-vault/models"
)

type VaultValidationService struct {
	inner     VaultService
	validator validators.Validator
}

func NewVaultValidationService() VaultServiceWrapper {
	return &VaultValidationService{
		validator: validators.NewVaultValidator(),
	}
}

func (v *VaultValidationService) LoadRoot(ctx context.Context) (*models.VaultTree, error) {
	return v.inner.LoadRoot(ctx)
}

func (v *VaultValidationService) CreateCollection(ctx context.Context, tree *models.VaultTree, parent models.CollectionID, name string) (models.Collection, error) {
	if err := v.validator.Validate(ctx, validators.CollectionName(name)); err != nil {
		return models.Collection{}, fmt.Errorf("error during collection name validation: %w", err)
	}

	return v.inner.CreateCollection(ctx, tree, parent, name)
}

func (v *VaultValidationService) SaveVault(ctx context.Context, tree *models.VaultTree, parent models.CollectionID, name string, content models.VaultContent, algorithm models.AlgorithmType, password string) (models.Vault, error) {
	if err := v.validator.Validate(ctx, validators.VaultName(name)); err != nil {
		return models.Vault{}, fmt.Errorf("error during vault name validation: %w", err)
	}
	if err := v.validator.Validate(ctx, content); err != nil {
		return models.Vault{}, fmt.Errorf("error during vault content validation before saving: %w", err)
	}

	return v.inner.SaveVault(ctx, tree, parent, name, content, algorithm, password)
}

func (v *VaultValidationService) DecryptVault(ctx context.Context, tree *models.VaultTree, id models.VaultID, password string) (models.VaultContent, error) {
	return v.inner.DecryptVault(ctx, tree, id, password)
}

func (v *VaultValidationService) DeleteVault(ctx context.Context, tree *models.VaultTree, id models.VaultID) (bool, error) {
	return v.inner.DeleteVault(ctx, tree, id)
}

func (v *VaultValidationService) DeleteCollection(ctx context.Context, tree *models.VaultTree, id models.CollectionID) (bool, error) {
	return v.inner.DeleteCollection(ctx, tree, id)
}

func (v *VaultValidationService) GenerateCode(ctx context.Context, content models.VaultContent) (models.OneTimeCode, error) {
	if err := v.validator.Validate(ctx, content, validators.FieldTOTPSecret); err != nil {
		return models.OneTimeCode{}, err
	}

	return v.inner.GenerateCode(ctx, content)
}

func (v *VaultValidationService) Wrap(wrapper VaultService) VaultService {
	v.inner = wrapper
	return v
}
