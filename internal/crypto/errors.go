package crypto

import "errors"

var (
	// ErrIntegrity is returned when authentication of a secured blob fails.
	// It covers tampering, truncation and a wrong password alike.
	ErrIntegrity = errors.New("integrity check failed: data is corrupted or wrong password")

	// ErrKeyDerivation is returned when the KDF rejects its parameters.
	ErrKeyDerivation = errors.New("key derivation failed")

	// ErrRandomSource is returned when the system CSPRNG cannot be read.
	ErrRandomSource = errors.New("failed to read random bytes")
)
