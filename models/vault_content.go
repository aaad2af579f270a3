// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// VaultContent is the decrypted payload of a single vault.
// It only ever exists in memory after a successful decryption and is
// serialized to JSON right before encryption.
type VaultContent struct {
	// Login is the account name or e-mail used to sign in.
	Login *string `json:"login,omitempty"`

	// Password is never rendered in plain form by the client, only copied.
	Password *string `json:"password,omitempty"`

	// TOTPSecret is the base32 seed used to generate one-time codes.
	TOTPSecret *string `json:"totpSecret,omitempty"`

	// ExtraData holds arbitrary user defined key/value pairs.
	ExtraData map[string]string `json:"extraData,omitempty"`
}

// HasTOTP reports whether the content carries a non-empty TOTP seed.
func (c VaultContent) HasTOTP() bool {
	return c.TOTPSecret != nil && *c.TOTPSecret != ""
}

// StringPtr is a small helper for building optional content fields.
func StringPtr(s string) *string {
	return &s
}

// OneTimeCode is a generated TOTP code together with its countdown.
type OneTimeCode struct {
	// Code is the zero-padded numeric code.
	Code string

	// Remaining is the number of whole seconds until the code rolls over.
	Remaining int

	// Period is the code lifetime in seconds.
	Period int
}
