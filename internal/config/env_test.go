// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"VAULT_CONFIG": "/path/to/config.json",

		"VAULT_APP_DEFAULT_ALGORITHM": "Twofish-CTR",
		"VAULT_APP_LOG_LEVEL":         "debug",
		"VAULT_APP_LOG_DIR":           "/var/log/vault",

		"VAULT_STORAGE_VAULT_DIR": "/srv/vault",

		"VAULT_WORKERS_TICK_INTERVAL": "2s",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "Twofish-CTR", cfg.App.DefaultAlgorithm)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "/var/log/vault", cfg.App.LogDir)
	assert.Equal(t, "/srv/vault", cfg.Storage.VaultDir)
	assert.Equal(t, 2*time.Second, cfg.Workers.TickInterval)
}

func TestParseEnv_IgnoresUnprefixedVariables(t *testing.T) {
	setEnvVars(t, map[string]string{
		"STORAGE_VAULT_DIR": "/not/used",
		"CONFIG":            "/not/used.json",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	setEnvVars(t, nil)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"VAULT_WORKERS_TICK_INTERVAL": "soon"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars blanks every variable the config reads so the host
// environment cannot leak into a test.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"VAULT_CONFIG",
		"VAULT_APP_DEFAULT_ALGORITHM",
		"VAULT_APP_LOG_LEVEL",
		"VAULT_APP_LOG_DIR",
		"VAULT_STORAGE_VAULT_DIR",
		"VAULT_WORKERS_TICK_INTERVAL",
	} {
		t.Setenv(k, "")
	}
}
