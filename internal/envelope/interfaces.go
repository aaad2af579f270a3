// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package envelope frames a secured blob together with the name of the
// algorithm that produced it and reads and writes such envelopes as files.
//
// An envelope is the JSON object
//
//	{"appTag":"PASSWORD_VAULT_ENCRYPTED_FILE","algorithm":"AES-256-GCM","securedData":"<base64>"}
//
// and is the only thing ever written to a vault file.
package envelope

import (
	"context"

	"github.com/MKhiriev/go-password-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/file_service_mock.go -package=mock

// FileService seals bytes into envelope files and opens them again.
type FileService interface {
	// SaveFile wraps data with the strategy for algorithm and writes the
	// envelope to path, creating missing parent directories. An existing
	// file is replaced.
	SaveFile(ctx context.Context, path string, data []byte, algorithm models.AlgorithmType, password string) error

	// ReadFile reads the envelope at path and returns the decrypted bytes.
	ReadFile(ctx context.Context, path string, password string) ([]byte, error)

	// IsEncrypted reports whether path holds something shaped like an
	// envelope. It never fails: unreadable files are reported as false.
	IsEncrypted(ctx context.Context, path string) bool
}
