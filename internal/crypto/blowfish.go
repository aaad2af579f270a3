// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/cipher"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-password-vault/internal/utils"
	"github.com/MKhiriev/go-password-vault/models"
	"golang.org/x/crypto/blowfish"
)

const macLen = 32

var errBadPadding = errors.New("invalid PKCS#7 padding")

// blowfishStrategy seals with Blowfish-CBC and PKCS#7 padding. CBC carries no
// authentication, so an HMAC-SHA256 over iv ‖ ciphertext keyed with the
// derived key is stored next to it and checked before decryption.
type blowfishStrategy struct {
	kdf KeyDeriver
}

// NewBlowfishCBCStrategy returns the Blowfish-CBC [CipherStrategy].
// Blowfish accepts the full 32-byte derived key.
func NewBlowfishCBCStrategy(kdf KeyDeriver) CipherStrategy {
	return &blowfishStrategy{kdf: kdf}
}

func (s *blowfishStrategy) Algorithm() models.AlgorithmType {
	return models.BlowfishCBC
}

// Encrypt implements [CipherStrategy]: salt ‖ iv ‖ hmac ‖ ciphertext.
func (s *blowfishStrategy) Encrypt(plaintext []byte, password string) (models.SecuredBlob, error) {
	salt, err := s.kdf.NewSalt()
	if err != nil {
		return "", err
	}
	key, err := s.kdf.DeriveKey(password, salt)
	if err != nil {
		return "", err
	}

	block, err := blowfish.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create blowfish cipher: %w", err)
	}

	iv, err := randomBytes(blowfish.BlockSize)
	if err != nil {
		return "", err
	}

	ciphertext := pkcs7Pad(plaintext, blowfish.BlockSize)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, ciphertext)

	mac := utils.HMACSHA256(key, iv, ciphertext)

	blob := concat(salt, iv, mac, ciphertext)
	return models.SecuredBlob(base64.StdEncoding.EncodeToString(blob)), nil
}

// Decrypt implements [CipherStrategy].
func (s *blowfishStrategy) Decrypt(blob models.SecuredBlob, password string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(string(blob))
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %w", ErrIntegrity, err)
	}

	saltEnd := s.kdf.SaltLen
	ivEnd := saltEnd + blowfish.BlockSize
	macEnd := ivEnd + macLen
	if len(data) < macEnd {
		return nil, fmt.Errorf("%w: secured blob too short", ErrIntegrity)
	}

	salt := data[:saltEnd]
	iv := data[saltEnd:ivEnd]
	storedMAC := data[ivEnd:macEnd]
	ciphertext := data[macEnd:]

	key, err := s.kdf.DeriveKey(password, salt)
	if err != nil {
		return nil, err
	}

	if !utils.EqualMAC(storedMAC, utils.HMACSHA256(key, iv, ciphertext)) {
		return nil, fmt.Errorf("%w: %s: hmac mismatch", ErrIntegrity, models.BlowfishCBC)
	}

	if len(ciphertext) == 0 || len(ciphertext)%blowfish.BlockSize != 0 {
		return nil, fmt.Errorf("%w: %s: ciphertext is not a whole number of blocks", ErrIntegrity, models.BlowfishCBC)
	}

	block, err := blowfish.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create blowfish cipher: %w", err)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	plaintext, err = pkcs7Unpad(plaintext, blowfish.BlockSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrIntegrity, models.BlowfishCBC, err)
	}
	return plaintext, nil
}

// pkcs7Pad returns a copy of data padded to a multiple of blockSize.
// A full block of padding is added when data is already aligned.
func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(append(make([]byte, 0, len(data)+n), data...), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, errBadPadding
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, errBadPadding
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, errBadPadding
		}
	}
	return data[:len(data)-n], nil
}
