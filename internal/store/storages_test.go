package store

import (
	"testing"

	"github.com/MKhiriev/go-password-vault/internal/config"
	"github.com/MKhiriev/go-password-vault/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorages(t *testing.T) {
	st, err := NewStorages(config.Storage{VaultDir: t.TempDir()}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, st.Files)
	assert.NotNil(t, st.Vaults)
}

func TestNewStorages_EmptyDir(t *testing.T) {
	_, err := NewStorages(config.Storage{}, logger.Nop())
	assert.ErrorIs(t, err, config.ErrInvalidStorageConfigs)
}
