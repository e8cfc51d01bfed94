package essence

import "errors"

var (
	// ErrInvalidDigest is returned for digests containing anything besides
	// digits, ',' and ';'.
	ErrInvalidDigest = errors.New("invalid digest")

	// ErrUnsupportedValueKind is returned when a resource id or version can
	// not be written into a digest.
	ErrUnsupportedValueKind = errors.New("unsupported value kind")
)
