// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// EnvPrefix is prepended to every environment variable the config reads.
const EnvPrefix = "VAULT_"

// StructuredConfig is the top-level configuration container for the
// go-password-vault application. It aggregates all sub-configurations and is
// populated by merging values from command-line flags, environment variables
// and an optional JSON file, with defaults filling whatever is left empty.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
//
// Every variable additionally carries [EnvPrefix].
type StructuredConfig struct {
	// App holds application-level settings: the default cipher and logging.
	App App `envPrefix:"APP_"`

	// Storage holds the location of the vault tree on disk.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the VAULT_CONFIG environment variable or the -c / --config
	// flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// DefaultAlgorithm is the cipher used for new vaults when none is given
	// explicitly. Matching is case-insensitive; validate stores the
	// canonical name.
	// Env: VAULT_APP_DEFAULT_ALGORITHM
	DefaultAlgorithm string `env:"DEFAULT_ALGORITHM"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: VAULT_APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogDir is the directory receiving the client log file.
	// Env: VAULT_APP_LOG_DIR
	LogDir string `env:"LOG_DIR"`
}

// Storage holds the location of the vault tree.
type Storage struct {
	// VaultDir is the root directory of the vault tree. Every collection is
	// a subdirectory of it.
	// Env: VAULT_STORAGE_VAULT_DIR
	VaultDir string `env:"VAULT_DIR"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// TickInterval is how often the one-time-code ticker refreshes.
	// Env: VAULT_WORKERS_TICK_INTERVAL
	TickInterval time.Duration `env:"TICK_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. flags is the config filled by the flag set returned from
// [BindFlags] after command-line parsing; it may be nil.
//
// Sources in priority order (the first non-zero value wins):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withJSON().
		build()
}

// BindFlags registers the configuration flags on fs and returns the config
// they write into. Values are available once fs has been parsed.
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	return bindFlags(fs)
}
