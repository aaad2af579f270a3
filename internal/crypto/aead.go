// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/cipher"
	"encoding/base64"
	"fmt"

	"github.com/MKhiriev/go-password-vault/models"
)

// aeadStrategy is the common implementation of the AEAD-based strategies.
// Go's AEAD API appends the tag to the ciphertext while vault blobs keep it
// in front, so Encrypt and Decrypt move it around.
type aeadStrategy struct {
	kdf       KeyDeriver
	algorithm models.AlgorithmType
	nonceLen  int
	tagLen    int
	newAEAD   func(key []byte) (cipher.AEAD, error)
}

func (s *aeadStrategy) Algorithm() models.AlgorithmType {
	return s.algorithm
}

// Encrypt implements [CipherStrategy]: salt ‖ nonce ‖ tag ‖ ciphertext.
func (s *aeadStrategy) Encrypt(plaintext []byte, password string) (models.SecuredBlob, error) {
	salt, err := s.kdf.NewSalt()
	if err != nil {
		return "", err
	}
	key, err := s.kdf.DeriveKey(password, salt)
	if err != nil {
		return "", err
	}

	aead, err := s.newAEAD(key)
	if err != nil {
		return "", fmt.Errorf("create %s cipher: %w", s.algorithm, err)
	}

	nonce, err := randomBytes(s.nonceLen)
	if err != nil {
		return "", err
	}

	sealed := aead.Seal(nil, nonce, plaintext, nil)
	split := len(sealed) - s.tagLen
	ciphertext, tag := sealed[:split], sealed[split:]

	blob := concat(salt, nonce, tag, ciphertext)
	return models.SecuredBlob(base64.StdEncoding.EncodeToString(blob)), nil
}

// Decrypt implements [CipherStrategy].
func (s *aeadStrategy) Decrypt(blob models.SecuredBlob, password string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(string(blob))
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %w", ErrIntegrity, err)
	}

	saltEnd := s.kdf.SaltLen
	nonceEnd := saltEnd + s.nonceLen
	tagEnd := nonceEnd + s.tagLen
	if len(data) < tagEnd {
		return nil, fmt.Errorf("%w: secured blob too short", ErrIntegrity)
	}

	salt := data[:saltEnd]
	nonce := data[saltEnd:nonceEnd]
	tag := data[nonceEnd:tagEnd]
	ciphertext := data[tagEnd:]

	key, err := s.kdf.DeriveKey(password, salt)
	if err != nil {
		return nil, err
	}

	aead, err := s.newAEAD(key)
	if err != nil {
		return nil, fmt.Errorf("create %s cipher: %w", s.algorithm, err)
	}

	plaintext, err := aead.Open(nil, nonce, concat(ciphertext, tag), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrIntegrity, s.algorithm, err)
	}
	return plaintext, nil
}
