package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentKindFor(t *testing.T) {
	tests := []struct {
		mediaType string
		want      ContentKind
	}{
		{"application/hive-essence", ContentKindDigest},
		{"APPLICATION/HIVE-ESSENCE", ContentKindDigest},
		{"hive-essence", ContentKindDigest},
		{" application/json; charset=utf-8 ", ContentKindJSON},
		{"json", ContentKindJSON},
		{"application/ser", ContentKindOther},
		{"text/plain", ContentKindOther},
		{"", ContentKindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.mediaType, func(t *testing.T) {
			assert.Equal(t, tt.want, ContentKindFor(tt.mediaType))
		})
	}
}

func TestDescribeContent(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   ContentDescriptor
	}{
		{
			name: "no header",
			want: ContentDescriptor{Kind: ContentKindUnknown},
		},
		{
			name:   "plain digest",
			values: []string{"application/hive-essence"},
			want:   ContentDescriptor{Kind: ContentKindDigest},
		},
		{
			name:   "digest with requested type in one value",
			values: []string{"application/hive-essence, application/json"},
			want:   ContentDescriptor{Kind: ContentKindDigest, RequestedType: "application/json"},
		},
		{
			name:   "digest with requested type in separate values",
			values: []string{"application/ser", "hive-essence"},
			want:   ContentDescriptor{Kind: ContentKindDigest, RequestedType: "application/ser"},
		},
		{
			name:   "json payload",
			values: []string{"application/json"},
			want:   ContentDescriptor{Kind: ContentKindJSON, MediaType: "application/json"},
		},
		{
			name:   "opaque payload",
			values: []string{"application/octet-stream"},
			want:   ContentDescriptor{Kind: ContentKindOther, MediaType: "application/octet-stream"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DescribeContent(tt.values...))
		})
	}
}

func TestContentKind_IsPayload(t *testing.T) {
	assert.True(t, ContentKindJSON.IsPayload())
	assert.True(t, ContentKindOther.IsPayload())
	assert.False(t, ContentKindDigest.IsPayload())
	assert.False(t, ContentKindUnknown.IsPayload())
}
