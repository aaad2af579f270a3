package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidName    = errors.New("invalid name")
	ErrInvalidContent = errors.New("invalid vault content")
)
