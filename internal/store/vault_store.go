// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-password-vault/internal/envelope"
	"github.com/MKhiriev/go-password-vault/internal/logger"
	"github.com/MKhiriev/go-password-vault/models"
)

// VaultFileSuffix is the reserved extension of vault files.
const VaultFileSuffix = ".crypto"

const collectionPerm os.FileMode = 0o700

// vaultStore is the filesystem implementation of [VaultStore]. It keeps no
// state besides the root directory: every LoadRoot scans the disk again.
type vaultStore struct {
	root  string
	files envelope.FileService
}

// NewVaultStore returns a [VaultStore] rooted at root that reads and writes
// vault files through files.
func NewVaultStore(root string, files envelope.FileService) VaultStore {
	return &vaultStore{root: root, files: files}
}

func (s *vaultStore) LoadRoot(ctx context.Context) (*models.VaultTree, error) {
	log := logger.FromContext(ctx)

	if err := os.MkdirAll(s.root, collectionPerm); err != nil {
		log.Err(err).Str("func", "vaultStore.LoadRoot").Str("root", s.root).Msg("failed to create vault root directory")
		return nil, &VaultError{Kind: ErrVaultLoad, Name: models.RootCollectionName, Err: err}
	}

	tree := models.NewVaultTree()
	if err := s.scan(ctx, tree, models.RootID, s.root); err != nil {
		log.Err(err).Str("func", "vaultStore.LoadRoot").Str("root", s.root).Msg("failed to scan vault tree")
		return nil, err
	}

	collections, vaults := tree.Len()
	log.Debug().Int("collections", collections).Int("vaults", vaults).Msg("vault tree loaded")
	return tree, nil
}

// scan adds the content of dir under collection id: subdirectories become
// collections, regular *.crypto files become vaults, anything else is
// skipped.
func (s *vaultStore) scan(ctx context.Context, tree *models.VaultTree, id models.CollectionID, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		name := displayName(tree.PathOf(id))
		if errors.Is(err, fs.ErrNotExist) {
			return &VaultError{Kind: ErrVaultCollectionNotFound, Name: name, Err: err}
		}
		return &VaultError{Kind: ErrVaultLoad, Name: name, Err: err}
	}

	for _, entry := range entries {
		name := entry.Name()
		switch {
		case entry.IsDir():
			child, _ := tree.AddCollection(id, name)
			if err = s.scan(ctx, tree, child, filepath.Join(dir, name)); err != nil {
				return err
			}
		case entry.Type().IsRegular() && strings.HasSuffix(name, VaultFileSuffix):
			if stem := strings.TrimSuffix(name, VaultFileSuffix); stem != "" {
				tree.AddVault(id, stem)
			}
		default:
			logger.FromContext(ctx).Debug().Str("entry", filepath.Join(dir, name)).Msg("skipping non-vault entry")
		}
	}
	return nil
}

func (s *vaultStore) CreateCollection(ctx context.Context, tree *models.VaultTree, id models.CollectionID) (models.Collection, error) {
	log := logger.FromContext(ctx)

	collection, ok := tree.Collection(id)
	if !ok {
		return models.Collection{}, &VaultError{Kind: ErrVaultCollectionNotFound, Err: fmt.Errorf("collection id %d", id)}
	}

	path, err := s.CollectionPath(tree, id)
	if err != nil {
		return models.Collection{}, err
	}

	if err = os.MkdirAll(path, collectionPerm); err != nil {
		log.Err(err).Str("func", "vaultStore.CreateCollection").Str("path", path).Msg("failed to create collection directory")
		return models.Collection{}, &VaultError{Kind: ErrVaultCollectionCreate, Name: displayName(tree.PathOf(id)), Err: err}
	}

	for _, child := range collection.Children {
		if _, err = s.CreateCollection(ctx, tree, child); err != nil {
			return models.Collection{}, err
		}
	}
	return collection, nil
}

func (s *vaultStore) SaveOrCreateVault(ctx context.Context, tree *models.VaultTree, id models.VaultID, content models.VaultContent, algorithm models.AlgorithmType, password string) (models.Vault, error) {
	log := logger.FromContext(ctx)

	vault, ok := tree.Vault(id)
	if !ok {
		return models.Vault{}, &VaultError{Kind: ErrVaultNotFound, Err: fmt.Errorf("vault id %d", id)}
	}
	name := displayName(tree.VaultPathOf(id))

	path, err := s.VaultPath(tree, id)
	if err != nil {
		return models.Vault{}, err
	}

	data, err := json.Marshal(content)
	if err != nil {
		return models.Vault{}, &VaultError{Kind: ErrVaultSave, Name: name, Err: err}
	}

	if err = s.files.SaveFile(ctx, path, data, algorithm, password); err != nil {
		log.Err(err).Str("func", "vaultStore.SaveOrCreateVault").Str("vault", name).Msg("failed to save vault file")
		return models.Vault{}, &VaultError{Kind: ErrVaultSave, Name: name, Err: err}
	}

	log.Info().Str("vault", name).Str("algorithm", algorithm.String()).Msg("vault saved")
	return vault, nil
}

func (s *vaultStore) DecryptVault(ctx context.Context, tree *models.VaultTree, id models.VaultID, password string) (models.VaultContent, error) {
	log := logger.FromContext(ctx)

	path, err := s.VaultPath(tree, id)
	if err != nil {
		return models.VaultContent{}, err
	}
	name := displayName(tree.VaultPathOf(id))

	data, err := s.files.ReadFile(ctx, path, password)
	if err != nil {
		log.Err(err).Str("func", "vaultStore.DecryptVault").Str("vault", name).Msg("failed to open vault file")
		return models.VaultContent{}, &VaultError{Kind: ErrVaultDecrypt, Name: name, Err: err}
	}

	var content models.VaultContent
	if err = json.Unmarshal(data, &content); err != nil {
		log.Err(err).Str("func", "vaultStore.DecryptVault").Str("vault", name).Msg("failed to decode vault content")
		return models.VaultContent{}, &VaultError{Kind: ErrVaultDecrypt, Name: name, Err: err}
	}
	return content, nil
}

func (s *vaultStore) DeleteVault(ctx context.Context, tree *models.VaultTree, id models.VaultID) (bool, error) {
	log := logger.FromContext(ctx)

	path, err := s.VaultPath(tree, id)
	if err != nil {
		return false, err
	}
	name := displayName(tree.VaultPathOf(id))

	if err = os.Remove(path); err != nil {
		log.Err(err).Str("func", "vaultStore.DeleteVault").Str("vault", name).Msg("failed to delete vault file")
		if errors.Is(err, fs.ErrNotExist) {
			return false, &VaultError{Kind: ErrVaultNotFound, Name: name, Err: err}
		}
		return false, &VaultError{Kind: ErrVaultDelete, Name: name, Err: err}
	}

	log.Info().Str("vault", name).Msg("vault deleted")
	return true, nil
}

func (s *vaultStore) DeleteVaultCollection(ctx context.Context, tree *models.VaultTree, id models.CollectionID) (bool, error) {
	log := logger.FromContext(ctx)

	collection, ok := tree.Collection(id)
	if !ok {
		return false, &VaultError{Kind: ErrVaultCollectionNotFound, Err: fmt.Errorf("collection id %d", id)}
	}
	if collection.IsRoot() {
		return false, &VaultError{Kind: ErrVaultCollectionDelete, Name: collection.Name, Err: errors.New("the root collection cannot be deleted")}
	}

	path, err := s.CollectionPath(tree, id)
	if err != nil {
		return false, err
	}
	name := displayName(tree.PathOf(id))

	if _, err = os.Stat(path); err != nil {
		log.Err(err).Str("func", "vaultStore.DeleteVaultCollection").Str("collection", name).Msg("collection directory is not accessible")
		if errors.Is(err, fs.ErrNotExist) {
			return false, &VaultError{Kind: ErrVaultCollectionNotFound, Name: name, Err: err}
		}
		return false, &VaultError{Kind: ErrVaultCollectionDelete, Name: name, Err: err}
	}

	if err = os.RemoveAll(path); err != nil {
		log.Err(err).Str("func", "vaultStore.DeleteVaultCollection").Str("collection", name).Msg("failed to delete collection directory")
		return false, &VaultError{Kind: ErrVaultCollectionDelete, Name: name, Err: err}
	}

	log.Info().Str("collection", name).Msg("collection deleted")
	return true, nil
}

func (s *vaultStore) CollectionPath(tree *models.VaultTree, id models.CollectionID) (string, error) {
	if _, ok := tree.Collection(id); !ok {
		return "", &VaultError{Kind: ErrVaultCollectionNotFound, Err: fmt.Errorf("collection id %d", id)}
	}
	return filepath.Join(append([]string{s.root}, tree.PathOf(id)...)...), nil
}

func (s *vaultStore) VaultPath(tree *models.VaultTree, id models.VaultID) (string, error) {
	vault, ok := tree.Vault(id)
	if !ok {
		return "", &VaultError{Kind: ErrVaultNotFound, Err: fmt.Errorf("vault id %d", id)}
	}
	dir, err := s.CollectionPath(tree, vault.Parent)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, vault.Name+VaultFileSuffix), nil
}

// displayName renders a logical path the way users type it.
func displayName(path []string) string {
	if len(path) == 0 {
		return models.RootCollectionName
	}
	return strings.Join(path, "/")
}
