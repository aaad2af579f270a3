// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-password-vault/internal/logger"
	"github.com/MKhiriev/go-password-vault/models"
)

const (
	dirPerm  os.FileMode = 0o700
	filePerm os.FileMode = 0o600
)

type fileService struct {
	codec *Codec
}

// NewFileService returns the filesystem [FileService] backed by codec.
func NewFileService(codec *Codec) FileService {
	return &fileService{codec: codec}
}

func (f *fileService) SaveFile(ctx context.Context, path string, data []byte, algorithm models.AlgorithmType, password string) error {
	log := logger.FromContext(ctx)

	sealed, err := f.codec.Wrap(algorithm, data, password)
	if err != nil {
		log.Err(err).Str("func", "fileService.SaveFile").Str("path", path).Msg("failed to wrap data into envelope")
		var fe *FileError
		if errors.As(err, &fe) {
			return withPath(err, path)
		}
		return &FileError{Kind: ErrFileWrite, Path: path, Err: err}
	}

	if err = os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		log.Err(err).Str("func", "fileService.SaveFile").Str("path", path).Msg("failed to create parent directories")
		return &FileError{Kind: ErrFileWrite, Path: path, Err: err}
	}

	if err = os.WriteFile(path, sealed, filePerm); err != nil {
		log.Err(err).Str("func", "fileService.SaveFile").Str("path", path).Msg("failed to write envelope file")
		return &FileError{Kind: ErrFileWrite, Path: path, Err: err}
	}

	log.Debug().Str("path", path).Str("algorithm", algorithm.String()).Msg("envelope file saved")
	return nil
}

func (f *fileService) ReadFile(ctx context.Context, path string, password string) ([]byte, error) {
	log := logger.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Err(err).Str("func", "fileService.ReadFile").Str("path", path).Msg("failed to read envelope file")
		return nil, &FileError{Kind: ErrFileRead, Path: path, Err: err}
	}

	plaintext, err := f.codec.Unwrap(data, password)
	if err != nil {
		log.Err(err).Str("func", "fileService.ReadFile").Str("path", path).Msg("failed to unwrap envelope")
		return nil, withPath(err, path)
	}
	return plaintext, nil
}

func (f *fileService) IsEncrypted(ctx context.Context, path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("path", path).Msg("file is not readable, reporting as not encrypted")
		return false
	}
	return LooksLikeEnvelope(data)
}
