// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// AlgorithmType identifies the cipher a vault file was sealed with.
// The string value is written verbatim into the envelope's "algorithm" field,
// so existing values must never change.
type AlgorithmType string

const (
	// AES256GCM is AES with a 256-bit key in Galois/Counter mode.
	AES256GCM AlgorithmType = "AES-256-GCM"

	// BlowfishCBC is Blowfish in CBC mode authenticated with HMAC-SHA256.
	BlowfishCBC AlgorithmType = "Blowfish-CBC"

	// ChaCha20Poly1305 is the IETF ChaCha20-Poly1305 AEAD.
	ChaCha20Poly1305 AlgorithmType = "ChaCha20-Poly1305"

	// TwofishCTR is Twofish in counter mode authenticated with HMAC-SHA256.
	TwofishCTR AlgorithmType = "Twofish-CTR"
)

// AllAlgorithms returns every supported algorithm in a stable order.
func AllAlgorithms() []AlgorithmType {
	return []AlgorithmType{AES256GCM, BlowfishCBC, ChaCha20Poly1305, TwofishCTR}
}

// IsKnown reports whether a is one of the supported algorithms.
func (a AlgorithmType) IsKnown() bool {
	for _, known := range AllAlgorithms() {
		if a == known {
			return true
		}
	}
	return false
}

func (a AlgorithmType) String() string {
	return string(a)
}

// ParseAlgorithm resolves a user supplied algorithm name. Matching is
// case-insensitive so "aes-256-gcm" and "AES-256-GCM" are equivalent.
func ParseAlgorithm(name string) (AlgorithmType, error) {
	for _, known := range AllAlgorithms() {
		if strings.EqualFold(name, string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown algorithm %q", name)
}
