package service

import (
	"errors"

	"github.com/MKhiriev/go-password-vault/internal/validators"
)

var (
	ErrNoTOTPSecret = errors.New("vault has no TOTP secret")

	ErrInvalidName    = validators.ErrInvalidName
	ErrInvalidContent = validators.ErrInvalidContent
)
