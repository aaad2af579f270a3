// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// go-password-vault command-line driver.
//
// All Msg* constants are human-readable message strings printed to the user
// when an operation fails. Keeping them in one place ensures consistent
// wording across commands.
package app

import (
	"errors"

	"github.com/MKhiriev/go-password-vault/internal/config"
	"github.com/MKhiriev/go-password-vault/internal/crypto"
	"github.com/MKhiriev/go-password-vault/internal/envelope"
	"github.com/MKhiriev/go-password-vault/internal/passgen"
	"github.com/MKhiriev/go-password-vault/internal/service"
	"github.com/MKhiriev/go-password-vault/internal/store"
	"github.com/MKhiriev/go-password-vault/internal/totp"
)

const (
	// MsgWrongPasswordOrCorrupted is shown when authenticated decryption
	// fails. A wrong master password and a tampered file are
	// indistinguishable.
	MsgWrongPasswordOrCorrupted = "wrong master password or the vault file is corrupted"

	// MsgNotEnvelope is shown when a file is not an encrypted vault file.
	MsgNotEnvelope = "file is not an encrypted vault file"

	// MsgUnsupportedAlgorithm is shown for an algorithm the application
	// does not implement.
	MsgUnsupportedAlgorithm = "unsupported encryption algorithm"

	// MsgKeyDerivation is shown when the key cannot be derived from the
	// master password.
	MsgKeyDerivation = "could not derive a key from the master password"

	// MsgFileWrite is shown when a vault file cannot be written.
	MsgFileWrite = "could not write the vault file"

	// MsgFileRead is shown when a vault file cannot be read.
	MsgFileRead = "could not read the vault file"

	// MsgVaultNotFound is shown when the addressed vault does not exist.
	MsgVaultNotFound = "vault not found"

	// MsgCollectionNotFound is shown when the addressed collection does not
	// exist.
	MsgCollectionNotFound = "collection not found"

	// MsgCollectionCreate is shown when a collection directory cannot be
	// created.
	MsgCollectionCreate = "could not create the collection"

	// MsgVaultSave is shown when a vault cannot be saved for a reason other
	// than the ones above.
	MsgVaultSave = "could not save the vault"

	// MsgVaultDelete is shown when a vault file cannot be removed.
	MsgVaultDelete = "could not delete the vault"

	// MsgCollectionDelete is shown when a collection cannot be removed,
	// including attempts to remove the root collection.
	MsgCollectionDelete = "could not delete the collection"

	// MsgVaultDecrypt is shown when a vault cannot be decrypted for a
	// reason other than a failed integrity check.
	MsgVaultDecrypt = "could not decrypt the vault"

	// MsgVaultLoad is shown when the vault directory cannot be scanned.
	MsgVaultLoad = "could not load the vault directory"

	// MsgInvalidName is shown for collection or vault names that cannot be
	// used as a single path element.
	MsgInvalidName = "invalid name: names must be non-empty, must not contain / or \\ and must not be . or .."

	// MsgInvalidContent is shown when vault content fails validation.
	MsgInvalidContent = "invalid vault content"

	// MsgInvalidTOTPSecret is shown when a TOTP secret is not valid base32.
	MsgInvalidTOTPSecret = "invalid TOTP secret: expected a base32 string"

	// MsgNoTOTPSecret is shown when a one-time code is requested for a
	// vault without a secret.
	MsgNoTOTPSecret = "this vault has no TOTP secret"

	// MsgPasswordTooShort is shown when a generated password is requested
	// shorter than the number of enabled character sets allows.
	MsgPasswordTooShort = "requested password is too short"

	// MsgNoCharset is shown when password generation has every character
	// set disabled.
	MsgNoCharset = "at least one character set must be enabled"

	// MsgInvalidConfig is shown when the configuration cannot be loaded or
	// validated.
	MsgInvalidConfig = "invalid configuration"

	// MsgInternalError is shown for any error not listed above.
	MsgInternalError = "internal error"
)

// messages is checked in order; more specific causes come first because
// store errors wrap the envelope and crypto errors that caused them.
var messages = []struct {
	err error
	msg string
}{
	{crypto.ErrIntegrity, MsgWrongPasswordOrCorrupted},
	{crypto.ErrKeyDerivation, MsgKeyDerivation},
	{envelope.ErrNotEnvelope, MsgNotEnvelope},
	{envelope.ErrUnsupportedAlgorithm, MsgUnsupportedAlgorithm},
	{totp.ErrInvalidSecret, MsgInvalidTOTPSecret},
	{service.ErrNoTOTPSecret, MsgNoTOTPSecret},
	{service.ErrInvalidName, MsgInvalidName},
	{service.ErrInvalidContent, MsgInvalidContent},
	{store.ErrVaultNotFound, MsgVaultNotFound},
	{store.ErrVaultCollectionNotFound, MsgCollectionNotFound},
	{envelope.ErrFileWrite, MsgFileWrite},
	{envelope.ErrFileRead, MsgFileRead},
	{store.ErrVaultCollectionCreate, MsgCollectionCreate},
	{store.ErrVaultSave, MsgVaultSave},
	{store.ErrVaultDelete, MsgVaultDelete},
	{store.ErrVaultCollectionDelete, MsgCollectionDelete},
	{store.ErrVaultDecrypt, MsgVaultDecrypt},
	{store.ErrVaultLoad, MsgVaultLoad},
	{passgen.ErrTooShort, MsgPasswordTooShort},
	{passgen.ErrNoCharset, MsgNoCharset},
	{config.ErrInvalidAppConfigs, MsgInvalidConfig},
	{config.ErrInvalidStorageConfigs, MsgInvalidConfig},
	{config.ErrInvalidWorkerConfigs, MsgInvalidConfig},
}

// MessageFor returns the user-facing message for err, or an empty string for
// a nil error.
func MessageFor(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return MsgInternalError
}
