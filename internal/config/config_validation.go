// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-password-vault/internal/utils"
	"github.com/MKhiriev/go-password-vault/models"
	"github.com/rs/zerolog"
)

// Default values used for every field no source has set.
const (
	DefaultLogLevel     = "info"
	DefaultTickInterval = time.Second
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DefaultAlgorithm: models.AES256GCM.String(),
			LogLevel:         DefaultLogLevel,
			LogDir:           utils.AppDataPath(),
		},
		Storage: Storage{
			VaultDir: utils.DefaultVaultDir(),
		},
		Workers: Workers{
			TickInterval: DefaultTickInterval,
		},
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. The default
// algorithm is rewritten to its canonical spelling.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.VaultDir == "" {
		return fmt.Errorf("%w: vault directory is empty", ErrInvalidStorageConfigs)
	}

	alg, err := models.ParseAlgorithm(cfg.App.DefaultAlgorithm)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}
	cfg.App.DefaultAlgorithm = alg.String()

	if _, err = zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q: %w", ErrInvalidAppConfigs, cfg.App.LogLevel, err)
	}

	if cfg.Workers.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}
