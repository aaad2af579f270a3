package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-password-vault/internal/totp"
	"github.com/MKhiriev/go-password-vault/models"
)

// VaultFileSuffix mirrors the store's reserved vault file extension.
const VaultFileSuffix = ".crypto"

// Field name constants for field-level scoping of [models.VaultContent].
const (
	// FieldTOTPSecret requires an absent secret or one that decodes as base32.
	FieldTOTPSecret = "totp_secret"

	// FieldExtraData requires non-empty keys in the extra data map.
	FieldExtraData = "extra_data"
)

// CollectionName is a single path element naming a collection.
type CollectionName string

// VaultName is a single path element naming a vault.
type VaultName string

type VaultValidator struct {
}

func NewVaultValidator() Validator {
	return &VaultValidator{}
}

// Validate accepts [CollectionName], [VaultName] and [models.VaultContent]
// (values or pointers). Field names only apply to content.
func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case CollectionName:
		return validateName(string(value))
	case *CollectionName:
		return validateName(string(*value))

	case VaultName:
		return validateVaultName(string(value))
	case *VaultName:
		return validateVaultName(string(*value))

	case models.VaultContent:
		return v.validateContent(ctx, value, fields...)
	case *models.VaultContent:
		return v.validateContent(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateName rejects names that cannot be used as one directory entry.
func validateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q is reserved", ErrInvalidName, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	case strings.ContainsRune(name, 0):
		return fmt.Errorf("%w: name contains a NUL byte", ErrInvalidName)
	}
	return nil
}

func validateVaultName(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if strings.HasSuffix(name, VaultFileSuffix) {
		return fmt.Errorf("%w: %q ends with the reserved suffix %s", ErrInvalidName, name, VaultFileSuffix)
	}
	return nil
}

func (v *VaultValidator) validateContent(ctx context.Context, content models.VaultContent, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTOTPSecret, FieldExtraData}
	}

	for _, f := range fields {
		switch f {
		case FieldTOTPSecret:
			if content.HasTOTP() {
				if _, err := totp.DecodeSecret(*content.TOTPSecret); err != nil {
					return fmt.Errorf("%w: %w", ErrInvalidContent, err)
				}
			}
		case FieldExtraData:
			for key := range content.ExtraData {
				if strings.TrimSpace(key) == "" {
					return fmt.Errorf("%w: extra data key is empty", ErrInvalidContent)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
