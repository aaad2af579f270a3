// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppTag marks a JSON document as a vault file written by this application.
const AppTag = "PASSWORD_VAULT_ENCRYPTED_FILE"

// SecuredBlob is the base64 text produced by a cipher strategy.
// Only the strategy that produced it knows its internal layout.
type SecuredBlob string

// EncryptedEnvelope is the on-disk record of a single vault file.
type EncryptedEnvelope struct {
	// AppTag must equal [AppTag] for the record to be accepted.
	AppTag string `json:"appTag"`

	// Algorithm routes decryption to the matching cipher strategy.
	Algorithm AlgorithmType `json:"algorithm"`

	// SecuredData is the strategy output: salt, nonce, tag and ciphertext.
	SecuredData SecuredBlob `json:"securedData"`
}
