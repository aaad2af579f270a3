// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the password-based cipher strategies used to
// seal individual vault files.
//
// Every strategy derives a fresh 256-bit key per encryption with scrypt
// (N=16384, r=8, p=1) from the password and a random 16-byte salt, and emits
// a single base64 blob laid out as:
//
//	AES-256-GCM        salt(16) ‖ nonce(12) ‖ tag(16)  ‖ ciphertext
//	Blowfish-CBC       salt(16) ‖ iv(8)     ‖ hmac(32) ‖ ciphertext
//	ChaCha20-Poly1305  salt(16) ‖ nonce(12) ‖ tag(16)  ‖ ciphertext
//	Twofish-CTR        salt(16) ‖ nonce(16) ‖ hmac(32) ‖ ciphertext
//
// A wrong password and a modified blob are reported with the same
// [ErrIntegrity] so callers cannot tell the two apart.
package crypto

import "github.com/MKhiriev/go-password-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_strategy_mock.go -package=mock

// CipherStrategy is one password-based authenticated encryption algorithm.
type CipherStrategy interface {
	// Encrypt seals plaintext under a key derived from password and returns
	// the base64 blob. It fails only if key derivation or the system random
	// source fails.
	Encrypt(plaintext []byte, password string) (models.SecuredBlob, error)

	// Decrypt opens a blob produced by Encrypt. It returns an error matching
	// [ErrIntegrity] when the blob was modified, is malformed, or password is
	// not the one used for encryption.
	Decrypt(blob models.SecuredBlob, password string) ([]byte, error)

	// Algorithm identifies the strategy inside an envelope.
	Algorithm() models.AlgorithmType
}
