package store

import (
	"errors"
	"strings"
)

// Vault tree errors. Every error returned by [VaultStore] is a *VaultError
// whose Kind is one of these values, so callers match them with [errors.Is].
var (
	// ErrVaultNotFound is returned when a vault or its file does not exist.
	ErrVaultNotFound = errors.New("vault not found")

	// ErrVaultCollectionNotFound is returned when a collection or its
	// directory does not exist.
	ErrVaultCollectionNotFound = errors.New("vault collection not found")

	// ErrVaultCollectionCreate is returned when a collection directory cannot
	// be created.
	ErrVaultCollectionCreate = errors.New("failed to create vault collection")

	// ErrVaultDelete is returned when a vault file exists but cannot be removed.
	ErrVaultDelete = errors.New("failed to delete vault")

	// ErrVaultCollectionDelete is returned when a collection directory exists
	// but cannot be removed, and for any attempt to delete the root.
	ErrVaultCollectionDelete = errors.New("failed to delete vault collection")

	// ErrVaultDecrypt is returned when a vault file cannot be read, opened or
	// decoded. The cause tells which.
	ErrVaultDecrypt = errors.New("failed to decrypt vault")

	// ErrVaultLoad is returned when the vault tree cannot be read from disk.
	ErrVaultLoad = errors.New("failed to load vault tree")

	// ErrVaultSave is returned when a vault cannot be written. Its cause
	// carries the envelope error (unsupported algorithm, file write).
	ErrVaultSave = errors.New("failed to save vault")
)

// VaultError describes a failed vault tree operation on the node named Name.
type VaultError struct {
	Kind error
	Name string
	Err  error
}

func (e *VaultError) Error() string {
	parts := make([]string, 0, 3)
	if e.Kind != nil {
		parts = append(parts, e.Kind.Error())
	}
	if e.Name != "" {
		parts = append(parts, e.Name)
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *VaultError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
