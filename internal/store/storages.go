// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/go-password-vault/internal/config"
	"github.com/MKhiriev/go-password-vault/internal/crypto"
	"github.com/MKhiriev/go-password-vault/internal/envelope"
	"github.com/MKhiriev/go-password-vault/internal/logger"
)

// Storages groups the storage layer into a single value that can be passed
// around the service layer.
type Storages struct {
	// Files reads and writes envelope files.
	Files envelope.FileService

	// Vaults maps the vault tree onto the configured directory.
	Vaults VaultStore
}

// NewStorages wires the storage layer for cfg: a codec over every
// supported cipher strategy, the envelope file service on top of it and the
// vault store rooted at cfg.VaultDir. Nothing is touched on disk until the
// first LoadRoot.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("vault_dir", cfg.VaultDir).Msg("creating new storages...")

	if cfg.VaultDir == "" {
		return nil, fmt.Errorf("%w: vault directory is empty", config.ErrInvalidStorageConfigs)
	}

	files := envelope.NewFileService(envelope.NewCodec(crypto.DefaultStrategies()...))
	return &Storages{
		Files:  files,
		Vaults: NewVaultStore(cfg.VaultDir, files),
	}, nil
}
