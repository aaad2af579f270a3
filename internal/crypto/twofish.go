// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/cipher"
	"encoding/base64"
	"encoding/binary"
	"fmt"

	"github.com/MKhiriev/go-password-vault/internal/utils"
	"github.com/MKhiriev/go-password-vault/models"
	"golang.org/x/crypto/twofish"
)

const (
	twofishNonceLen = 16

	// Only the first ctrPrefixLen nonce bytes enter the counter block, the
	// rest of the block is the big-endian block counter.
	ctrPrefixLen = 12
)

// twofishStrategy seals with Twofish in counter mode. Like Blowfish-CBC it is
// authenticated with HMAC-SHA256 over nonce ‖ ciphertext.
type twofishStrategy struct {
	kdf KeyDeriver
}

// NewTwofishCTRStrategy returns the Twofish-CTR [CipherStrategy].
func NewTwofishCTRStrategy(kdf KeyDeriver) CipherStrategy {
	return &twofishStrategy{kdf: kdf}
}

func (s *twofishStrategy) Algorithm() models.AlgorithmType {
	return models.TwofishCTR
}

// Encrypt implements [CipherStrategy]: salt ‖ nonce ‖ hmac ‖ ciphertext.
func (s *twofishStrategy) Encrypt(plaintext []byte, password string) (models.SecuredBlob, error) {
	salt, err := s.kdf.NewSalt()
	if err != nil {
		return "", err
	}
	key, err := s.kdf.DeriveKey(password, salt)
	if err != nil {
		return "", err
	}

	block, err := twofish.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create twofish cipher: %w", err)
	}

	nonce, err := randomBytes(twofishNonceLen)
	if err != nil {
		return "", err
	}

	ciphertext := twofishCTR(block, nonce, plaintext)
	mac := utils.HMACSHA256(key, nonce, ciphertext)

	blob := concat(salt, nonce, mac, ciphertext)
	return models.SecuredBlob(base64.StdEncoding.EncodeToString(blob)), nil
}

// Decrypt implements [CipherStrategy].
func (s *twofishStrategy) Decrypt(blob models.SecuredBlob, password string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(string(blob))
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %w", ErrIntegrity, err)
	}

	saltEnd := s.kdf.SaltLen
	nonceEnd := saltEnd + twofishNonceLen
	macEnd := nonceEnd + macLen
	if len(data) < macEnd {
		return nil, fmt.Errorf("%w: secured blob too short", ErrIntegrity)
	}

	salt := data[:saltEnd]
	nonce := data[saltEnd:nonceEnd]
	storedMAC := data[nonceEnd:macEnd]
	ciphertext := data[macEnd:]

	key, err := s.kdf.DeriveKey(password, salt)
	if err != nil {
		return nil, err
	}

	if !utils.EqualMAC(storedMAC, utils.HMACSHA256(key, nonce, ciphertext)) {
		return nil, fmt.Errorf("%w: %s: hmac mismatch", ErrIntegrity, models.TwofishCTR)
	}

	block, err := twofish.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create twofish cipher: %w", err)
	}

	return twofishCTR(block, nonce, ciphertext), nil
}

// twofishCTR XORs input with the keystream E(nonce[:12] ‖ uint32be(i)) for
// block i = 0, 1, ... The final block may be partial. The same call both
// encrypts and decrypts.
func twofishCTR(block cipher.Block, nonce, input []byte) []byte {
	bs := block.BlockSize()
	out := make([]byte, len(input))
	counter := make([]byte, bs)
	keystream := make([]byte, bs)
	copy(counter, nonce[:ctrPrefixLen])

	for i, offset := uint32(0), 0; offset < len(input); i, offset = i+1, offset+bs {
		binary.BigEndian.PutUint32(counter[ctrPrefixLen:], i)
		block.Encrypt(keystream, counter)

		end := min(offset+bs, len(input))
		for j := offset; j < end; j++ {
			out[j] = input[j] ^ keystream[j-offset]
		}
	}
	return out
}
