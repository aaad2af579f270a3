package client

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-password-vault/internal/service"
	"github.com/MKhiriev/go-password-vault/internal/store"
	"github.com/MKhiriev/go-password-vault/models"
)

// splitPath turns "Work/Mail/" into [Work Mail]. Empty elements are
// dropped, so "" and "/" address the root collection.
func splitPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
}

func resolveCollection(tree *models.VaultTree, path string) (models.CollectionID, error) {
	id, ok := tree.FindCollection(splitPath(path)...)
	if !ok {
		return 0, &store.VaultError{Kind: store.ErrVaultCollectionNotFound, Name: path}
	}
	return id, nil
}

// splitVaultPath separates the collection part of a vault path from the
// vault name.
func splitVaultPath(path string) ([]string, string, error) {
	parts := splitPath(path)
	if len(parts) == 0 {
		return nil, "", fmt.Errorf("%w: vault path %q has no name", service.ErrInvalidName, path)
	}
	return parts[:len(parts)-1], parts[len(parts)-1], nil
}

func resolveVault(tree *models.VaultTree, path string) (models.VaultID, error) {
	dir, name, err := splitVaultPath(path)
	if err != nil {
		return 0, err
	}

	parent, ok := tree.FindCollection(dir...)
	if !ok {
		return 0, &store.VaultError{Kind: store.ErrVaultCollectionNotFound, Name: strings.Join(dir, "/")}
	}
	id, ok := tree.FindVault(parent, name)
	if !ok {
		return 0, &store.VaultError{Kind: store.ErrVaultNotFound, Name: path}
	}
	return id, nil
}
