package grpc

import (
	"errors"

	"google.golang.org/grpc/codes"

	"github.com/MKhiriev/go-hivemind/internal/essence"
	"github.com/MKhiriev/go-hivemind/internal/validators"
)

var errorCodeMap = map[error]codes.Code{
	essence.ErrInvalidDigest:         codes.InvalidArgument,
	validators.ErrEmptyClientID:      codes.InvalidArgument,
	validators.ErrUnknownContentKind: codes.InvalidArgument,
	essence.ErrUnsupportedValueKind:  codes.Internal,
}

func codeFromError(err error) codes.Code {
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return code
		}
	}
	return codes.Internal
}
