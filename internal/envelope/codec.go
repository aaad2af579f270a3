// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-password-vault/internal/crypto"
	"github.com/MKhiriev/go-password-vault/models"
)

// Codec turns plaintext into envelope bytes and back using a fixed set of
// cipher strategies.
type Codec struct {
	strategies map[models.AlgorithmType]crypto.CipherStrategy
}

// NewCodec registers strategies by their Algorithm. A later strategy for the
// same algorithm replaces an earlier one.
func NewCodec(strategies ...crypto.CipherStrategy) *Codec {
	c := &Codec{strategies: make(map[models.AlgorithmType]crypto.CipherStrategy, len(strategies))}
	for _, s := range strategies {
		c.strategies[s.Algorithm()] = s
	}
	return c
}

// NewDefaultCodec returns a Codec over [crypto.DefaultStrategies].
func NewDefaultCodec() *Codec {
	return NewCodec(crypto.DefaultStrategies()...)
}

// Supports reports whether a strategy is registered for algorithm.
func (c *Codec) Supports(algorithm models.AlgorithmType) bool {
	_, ok := c.strategies[algorithm]
	return ok
}

// Wrap encrypts plaintext with the strategy for algorithm and serializes the
// envelope.
func (c *Codec) Wrap(algorithm models.AlgorithmType, plaintext []byte, password string) ([]byte, error) {
	strategy, ok := c.strategies[algorithm]
	if !ok {
		return nil, &FileError{Kind: ErrUnsupportedAlgorithm, Err: fmt.Errorf("algorithm %q", algorithm)}
	}

	blob, err := strategy.Encrypt(plaintext, password)
	if err != nil {
		return nil, fmt.Errorf("encrypt with %s: %w", algorithm, err)
	}

	data, err := json.Marshal(models.EncryptedEnvelope{
		AppTag:      models.AppTag,
		Algorithm:   algorithm,
		SecuredData: blob,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal envelope: %w", err)
	}
	return data, nil
}

// Unwrap parses an envelope and decrypts its secured data with password.
//
// The error matches [ErrNotEnvelope] when data is not an envelope,
// [ErrUnsupportedAlgorithm] when the recorded algorithm has no strategy,
// [crypto.ErrKeyDerivation] when the KDF rejects its parameters, and
// [ErrIntegrity] when the blob is corrupted or the password is wrong.
func (c *Codec) Unwrap(data []byte, password string) ([]byte, error) {
	if !LooksLikeEnvelope(data) {
		return nil, &FileError{Kind: ErrNotEnvelope}
	}

	var env models.EncryptedEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, &FileError{Kind: ErrNotEnvelope, Err: err}
	}

	strategy, ok := c.strategies[env.Algorithm]
	if !ok {
		return nil, &FileError{Kind: ErrUnsupportedAlgorithm, Err: fmt.Errorf("algorithm %q", env.Algorithm)}
	}

	plaintext, err := strategy.Decrypt(env.SecuredData, password)
	if err != nil {
		if errors.Is(err, crypto.ErrKeyDerivation) {
			return nil, &FileError{Kind: crypto.ErrKeyDerivation, Err: err}
		}
		return nil, &FileError{Kind: ErrIntegrity, Err: err}
	}
	return plaintext, nil
}

// LooksLikeEnvelope reports whether data is a JSON object whose appTag is
// [models.AppTag] and whose algorithm and securedData are strings. The
// algorithm value itself is not checked.
func LooksLikeEnvelope(data []byte) bool {
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return false
	}

	tag, ok := obj["appTag"].(string)
	if !ok || tag != models.AppTag {
		return false
	}
	if _, ok := obj["algorithm"].(string); !ok {
		return false
	}
	_, ok = obj["securedData"].(string)
	return ok
}
