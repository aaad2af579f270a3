// Package service is the narrow facade the command-line driver talks to. It
// validates user input, attaches an operation-scoped logger and delegates
// persistence to the vault store.
package service

import (
	"context"

	"github.com/MKhiriev/go-password-vault/models"
)

// VaultService manages collections and vaults of one loaded tree.
//
// Trees are value snapshots: operations that add nodes mutate the given tree,
// deletions only touch the disk and callers reload to observe them.
type VaultService interface {
	// LoadRoot rebuilds the tree from the configured vault directory.
	LoadRoot(ctx context.Context) (*models.VaultTree, error)

	// CreateCollection creates the collection name under parent. An existing
	// collection with the same name is reused.
	CreateCollection(ctx context.Context, tree *models.VaultTree, parent models.CollectionID, name string) (models.Collection, error)

	// SaveVault encrypts content into the vault name under parent, creating
	// the vault when missing. An empty algorithm selects the configured default.
	SaveVault(ctx context.Context, tree *models.VaultTree, parent models.CollectionID, name string, content models.VaultContent, algorithm models.AlgorithmType, password string) (models.Vault, error)

	DecryptVault(ctx context.Context, tree *models.VaultTree, id models.VaultID, password string) (models.VaultContent, error)
	DeleteVault(ctx context.Context, tree *models.VaultTree, id models.VaultID) (bool, error)
	DeleteCollection(ctx context.Context, tree *models.VaultTree, id models.CollectionID) (bool, error)

	// GenerateCode returns the current one-time code for the content's TOTP
	// secret together with its countdown.
	GenerateCode(ctx context.Context, content models.VaultContent) (models.OneTimeCode, error)
}

// VaultServiceWrapper defines middleware composition for VaultService.
// Implementations wrap an existing VaultService to add behavior such as
// validating.
type VaultServiceWrapper interface {
	Wrap(VaultService) VaultService // returns a decorated VaultService applying additional behavior
}
