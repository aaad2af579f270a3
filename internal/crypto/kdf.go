// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/scrypt"
)

// KeyDeriver turns a password and a salt into a symmetric key with scrypt.
// The tuning parameters are carried in the value so every strategy seals
// with the same cost and tests can use a cheaper one.
type KeyDeriver struct {
	N       int
	R       int
	P       int
	KeyLen  int
	SaltLen int
}

// DefaultKeyDeriver returns the parameters vault files are written with:
//   - N:      16384 (2^14)
//   - r:      8
//   - p:      1
//   - key:    32 bytes (256 bits)
//   - salt:   16 bytes
func DefaultKeyDeriver() KeyDeriver {
	return KeyDeriver{
		N:       16384,
		R:       8,
		P:       1,
		KeyLen:  32,
		SaltLen: 16,
	}
}

// NewSalt reads SaltLen random bytes from the OS CSPRNG.
func (k KeyDeriver) NewSalt() ([]byte, error) {
	return randomBytes(k.SaltLen)
}

// DeriveKey derives KeyLen bytes from password and salt.
// It only fails when the scrypt parameters are invalid.
func (k KeyDeriver) DeriveKey(password string, salt []byte) ([]byte, error) {
	key, err := scrypt.Key([]byte(password), salt, k.N, k.R, k.P, k.KeyLen)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyDerivation, err)
	}
	return key, nil
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}
	return b, nil
}

// concat joins byte slices into a freshly allocated slice.
func concat(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
