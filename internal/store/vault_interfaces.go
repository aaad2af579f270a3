// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-password-vault/models"
)

//go:generate mockgen -source=vault_interfaces.go -destination=../mock/vault_store_mock.go -package=mock

// VaultStore maps a [models.VaultTree] onto a directory tree: every
// collection is a directory and every vault is one envelope file named
// <vault>.crypto inside its collection's directory. The root collection is
// the configured root directory itself.
//
// Trees passed in must have been produced by LoadRoot of the same store or
// built on top of one.
type VaultStore interface {
	// LoadRoot creates the root directory when missing and rebuilds the whole
	// hierarchy from disk.
	LoadRoot(ctx context.Context) (*models.VaultTree, error)

	// CreateCollection creates the directory of collection id and, recursively,
	// the directories of every child collection listed under it.
	CreateCollection(ctx context.Context, tree *models.VaultTree, id models.CollectionID) (models.Collection, error)

	// SaveOrCreateVault encrypts content and writes it to the vault's file,
	// replacing whatever was there.
	SaveOrCreateVault(ctx context.Context, tree *models.VaultTree, id models.VaultID, content models.VaultContent, algorithm models.AlgorithmType, password string) (models.Vault, error)

	// DecryptVault reads and decrypts the vault's file.
	DecryptVault(ctx context.Context, tree *models.VaultTree, id models.VaultID, password string) (models.VaultContent, error)

	// DeleteVault removes the vault's file.
	DeleteVault(ctx context.Context, tree *models.VaultTree, id models.VaultID) (bool, error)

	// DeleteVaultCollection removes the collection's directory with all its
	// content. The root collection cannot be deleted.
	DeleteVaultCollection(ctx context.Context, tree *models.VaultTree, id models.CollectionID) (bool, error)

	// VaultPath returns the file path of a vault.
	VaultPath(tree *models.VaultTree, id models.VaultID) (string, error)

	// CollectionPath returns the directory path of a collection.
	CollectionPath(tree *models.VaultTree, id models.CollectionID) (string, error)
}
