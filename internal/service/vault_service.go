// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-password-vault/internal/logger"
	"github.com/MKhiriev/go-password-vault/internal/store"
	"github.com/MKhiriev/go-password-vault/internal/totp"
	"github.com/MKhiriev/go-password-vault/internal/utils"
	"github.com/MKhiriev/go-password-vault/models"
)

type vaultService struct {
	vaults           store.VaultStore
	generator        *totp.Generator
	ids              *utils.UUIDGenerator
	defaultAlgorithm models.AlgorithmType
}

func NewVaultService(vaults store.VaultStore, generator *totp.Generator, defaultAlgorithm models.AlgorithmType) VaultService {
	if defaultAlgorithm == "" {
		defaultAlgorithm = models.AES256GCM
	}
	return &vaultService{
		vaults:           vaults,
		generator:        generator,
		ids:              utils.NewUUIDGenerator(),
		defaultAlgorithm: defaultAlgorithm,
	}
}

// trace tags ctx with a fresh trace id and a logger carrying it.
func (s *vaultService) trace(ctx context.Context) (context.Context, *logger.Logger) {
	traceID := s.ids.Generate()
	ctx, log := logger.FromContext(ctx).WithTraceID(ctx, traceID)
	return utils.WithTraceID(ctx, traceID), log
}

func (s *vaultService) LoadRoot(ctx context.Context) (*models.VaultTree, error) {
	ctx, log := s.trace(ctx)

	tree, err := s.vaults.LoadRoot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load vault tree: %w", err)
	}

	collections, vaults := tree.Len()
	log.Debug().Int("collections", collections).Int("vaults", vaults).Msg("vault tree loaded")
	return tree, nil
}

func (s *vaultService) CreateCollection(ctx context.Context, tree *models.VaultTree, parent models.CollectionID, name string) (models.Collection, error) {
	ctx, log := s.trace(ctx)

	id, exists := tree.Child(parent, name)
	if !exists {
		var ok bool
		if id, ok = tree.AddCollection(parent, name); !ok {
			return models.Collection{}, &store.VaultError{Kind: store.ErrVaultCollectionNotFound, Name: name}
		}
	}

	collection, err := s.vaults.CreateCollection(ctx, tree, id)
	if err != nil {
		if !exists {
			tree.RemoveLastCollection(id)
		}
		return models.Collection{}, fmt.Errorf("create collection: %w", err)
	}

	log.Info().Strs("path", tree.PathOf(id)).Msg("collection created")
	return collection, nil
}

func (s *vaultService) SaveVault(ctx context.Context, tree *models.VaultTree, parent models.CollectionID, name string, content models.VaultContent, algorithm models.AlgorithmType, password string) (models.Vault, error) {
	ctx, log := s.trace(ctx)

	if algorithm == "" {
		algorithm = s.defaultAlgorithm
	}

	id, exists := tree.FindVault(parent, name)
	if !exists {
		var ok bool
		if id, ok = tree.AddVault(parent, name); !ok {
			return models.Vault{}, &store.VaultError{Kind: store.ErrVaultCollectionNotFound, Name: name}
		}
	}

	vault, err := s.vaults.SaveOrCreateVault(ctx, tree, id, content, algorithm, password)
	if err != nil {
		if !exists {
			tree.RemoveLastVault(id)
		}
		return models.Vault{}, fmt.Errorf("save vault: %w", err)
	}

	log.Info().Strs("path", tree.VaultPathOf(id)).Str("algorithm", algorithm.String()).Msg("vault saved")
	return vault, nil
}

func (s *vaultService) DecryptVault(ctx context.Context, tree *models.VaultTree, id models.VaultID, password string) (models.VaultContent, error) {
	ctx, _ = s.trace(ctx)

	content, err := s.vaults.DecryptVault(ctx, tree, id, password)
	if err != nil {
		return models.VaultContent{}, fmt.Errorf("decrypt vault: %w", err)
	}
	return content, nil
}

func (s *vaultService) DeleteVault(ctx context.Context, tree *models.VaultTree, id models.VaultID) (bool, error) {
	ctx, log := s.trace(ctx)

	deleted, err := s.vaults.DeleteVault(ctx, tree, id)
	if err != nil {
		return false, fmt.Errorf("delete vault: %w", err)
	}

	log.Info().Strs("path", tree.VaultPathOf(id)).Msg("vault deleted")
	return deleted, nil
}

func (s *vaultService) DeleteCollection(ctx context.Context, tree *models.VaultTree, id models.CollectionID) (bool, error) {
	ctx, log := s.trace(ctx)

	deleted, err := s.vaults.DeleteVaultCollection(ctx, tree, id)
	if err != nil {
		return false, fmt.Errorf("delete collection: %w", err)
	}

	log.Info().Strs("path", tree.PathOf(id)).Msg("collection deleted")
	return deleted, nil
}

func (s *vaultService) GenerateCode(ctx context.Context, content models.VaultContent) (models.OneTimeCode, error) {
	_, log := s.trace(ctx)

	if !content.HasTOTP() {
		return models.OneTimeCode{}, ErrNoTOTPSecret
	}

	now := s.generator.Now()
	code, err := s.generator.GenerateAt(*content.TOTPSecret, now)
	if err != nil {
		log.Err(err).Str("func", "vaultService.GenerateCode").Msg("failed to generate one-time code")
		return models.OneTimeCode{}, fmt.Errorf("%w: %w", ErrInvalidContent, err)
	}

	return models.OneTimeCode{
		Code:      code,
		Remaining: s.generator.RemainingAt(now),
		Period:    s.generator.Period(),
	}, nil
}
