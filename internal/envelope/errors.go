package envelope

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-password-vault/internal/crypto"
)

var (
	// ErrUnsupportedAlgorithm is returned when no strategy is registered for
	// the requested or recorded algorithm.
	ErrUnsupportedAlgorithm = errors.New("unsupported encryption algorithm")

	// ErrFileWrite is returned when an envelope cannot be written.
	ErrFileWrite = errors.New("failed to write encrypted file")

	// ErrFileRead is returned when an envelope file cannot be read.
	ErrFileRead = errors.New("failed to read encrypted file")

	// ErrNotEnvelope is returned by Unwrap for bytes that are not an envelope.
	ErrNotEnvelope = errors.New("data is not an encrypted envelope")

	// ErrIntegrity is the same value as [crypto.ErrIntegrity]: corrupted
	// data or a wrong password.
	ErrIntegrity = crypto.ErrIntegrity
)

// FileError describes a failure of the codec or the file service.
//
// Kind is one of the package sentinels (or [ErrIntegrity]); Err is the
// underlying cause. errors.Is matches both.
type FileError struct {
	Kind error
	Path string
	Err  error
}

func (e *FileError) Error() string {
	parts := make([]string, 0, 3)
	if e.Kind != nil {
		parts = append(parts, e.Kind.Error())
	}
	if e.Path != "" {
		parts = append(parts, e.Path)
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *FileError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// withPath fills in the path of a codec error that has none yet.
func withPath(err error, path string) error {
	var fe *FileError
	if errors.As(err, &fe) && fe.Path == "" {
		cp := *fe
		cp.Path = path
		return &cp
	}
	return err
}
