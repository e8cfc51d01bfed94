package essence

import (
	"bytes"
	"fmt"
)

// Validate checks digest syntax. Nil or empty input is valid. Blank and
// control bytes at either end are ignored; any other byte outside
// [0-9,;] fails with ErrInvalidDigest.
func Validate(digest []byte) error {
	trimmed := trimBlank(digest)
	for i, b := range trimmed {
		if !isDigestByte(b) {
			return fmt.Errorf("%w: unexpected byte %q at offset %d", ErrInvalidDigest, b, i)
		}
	}
	return nil
}

func isDigestByte(b byte) bool {
	return (b >= '0' && b <= '9') || b == idSeparator || b == recordSeparator
}

// trimBlank drops bytes <= ' ' from both ends, including NUL padding.
func trimBlank(b []byte) []byte {
	return bytes.TrimFunc(b, func(r rune) bool { return r <= ' ' })
}
