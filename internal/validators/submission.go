package validators

import (
	"context"

	"github.com/MKhiriev/go-hivemind/internal/essence"
	"github.com/MKhiriev/go-hivemind/models"
)

// Field names accepted by [SubmissionValidator].
const (
	// FieldClientID requires a non-empty traceparent.
	FieldClientID = "client_id"
	// FieldDigest checks digest syntax when the body is a digest.
	FieldDigest = "digest"
	// FieldContentKind rejects bodies without a recognised content kind.
	FieldContentKind = "content_kind"
)

// SubmissionValidator validates [models.Submission] values and raw digests.
type SubmissionValidator struct{}

func NewSubmissionValidator() Validator {
	return &SubmissionValidator{}
}

func (v *SubmissionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Submission:
		return v.validateSubmission(ctx, value, fields...)
	case *models.Submission:
		return v.validateSubmission(ctx, *value, fields...)
	case []byte:
		return essence.Validate(value)
	default:
		return ErrUnsupportedType
	}
}

func (v *SubmissionValidator) validateSubmission(_ context.Context, s models.Submission, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldClientID, FieldDigest}
	}

	for _, f := range fields {
		switch f {
		case FieldClientID:
			if s.ClientID == "" {
				return ErrEmptyClientID
			}
		case FieldDigest:
			if s.Content.Kind != models.ContentKindDigest {
				continue
			}
			if err := essence.Validate(s.Body); err != nil {
				return err
			}
		case FieldContentKind:
			if s.Content.Kind == models.ContentKindUnknown {
				return ErrUnknownContentKind
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
