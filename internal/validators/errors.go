package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyClientID      = errors.New("client id is required")
	ErrUnknownContentKind = errors.New("unknown content kind")
)
