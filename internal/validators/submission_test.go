package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-hivemind/internal/essence"
	"github.com/MKhiriev/go-hivemind/models"
)

func digestSubmission(body string) models.Submission {
	return models.Submission{
		ClientID: "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-00",
		Body:     []byte(body),
		Content:  models.ContentDescriptor{Kind: models.ContentKindDigest},
	}
}

func TestSubmissionValidator_Validate(t *testing.T) {
	v := NewSubmissionValidator()

	payload := digestSubmission(`{"id": 1}`)
	payload.Content = models.ContentDescriptor{Kind: models.ContentKindJSON, MediaType: models.MediaTypeJSON}

	anonymous := digestSubmission("1,1;")
	anonymous.ClientID = ""

	unknown := digestSubmission("")
	unknown.Content = models.ContentDescriptor{}

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{name: "valid digest", obj: digestSubmission("1,1;2,1;")},
		{name: "valid digest by pointer", obj: ptr(digestSubmission("1,1;"))},
		{name: "empty digest", obj: digestSubmission("")},
		{name: "payload body is not checked as digest", obj: payload},
		{name: "invalid digest", obj: digestSubmission("mock"), wantErr: essence.ErrInvalidDigest},
		{name: "missing client id", obj: anonymous, wantErr: ErrEmptyClientID},
		{name: "missing client id ignored when not requested", obj: anonymous, fields: []string{FieldDigest}},
		{name: "unknown kind", obj: unknown, fields: []string{FieldContentKind}, wantErr: ErrUnknownContentKind},
		{name: "unknown field", obj: digestSubmission(""), fields: []string{"nope"}, wantErr: ErrUnknownField},
		{name: "raw digest", obj: []byte("3,1;")},
		{name: "raw invalid digest", obj: []byte("3,x;"), wantErr: essence.ErrInvalidDigest},
		{name: "unsupported type", obj: 42, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.obj, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func ptr[T any](v T) *T { return &v }
