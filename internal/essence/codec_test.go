package essence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-hivemind/models"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		digest  []byte
		wantErr bool
	}{
		{name: "nil", digest: nil},
		{name: "empty", digest: []byte{}},
		{name: "one record", digest: []byte("1,1;")},
		{name: "separators only", digest: []byte(";;,,")},
		{name: "trailing newline", digest: []byte("1,1;\n")},
		{name: "nul padding", digest: make([]byte, 16)},
		{name: "letters", digest: []byte("mock"), wantErr: true},
		{name: "negative version", digest: []byte("1,-1;"), wantErr: true},
		{name: "inner blank", digest: []byte("1, 1;"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.digest)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDigest)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		digest []byte
		want   []models.Resource
	}{
		{name: "nil", digest: nil, want: []models.Resource{}},
		{name: "nul only", digest: make([]byte, 32), want: []models.Resource{}},
		{
			name:   "one record",
			digest: []byte("1,1;"),
			want:   []models.Resource{{ID: uint64(1), Version: uint64(1)}},
		},
		{
			name:   "two records",
			digest: []byte("1,1;2,1;"),
			want: []models.Resource{
				{ID: uint64(1), Version: uint64(1)},
				{ID: uint64(2), Version: uint64(1)},
			},
		},
		{
			name:   "implicit last record",
			digest: []byte("73,1;72,4"),
			want: []models.Resource{
				{ID: uint64(73), Version: uint64(1)},
				{ID: uint64(72), Version: uint64(4)},
			},
		},
		{
			name:   "version without id",
			digest: []byte("5;"),
			want:   []models.Resource{{Version: uint64(5)}},
		},
		{
			name:   "empty records are skipped",
			digest: []byte(";;1,2;;"),
			want:   []models.Resource{{ID: uint64(1), Version: uint64(2)}},
		},
		{
			name:   "extra fields keep the last two",
			digest: []byte("1,2,3;4,5;"),
			want: []models.Resource{
				{ID: uint64(2), Version: uint64(3)},
				{ID: uint64(4), Version: uint64(5)},
			},
		},
		{
			name:   "overflowing id stays raw",
			digest: []byte("99999999999999999999,1;"),
			want:   []models.Resource{{ID: []byte("99999999999999999999"), Version: uint64(1)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.digest)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("mock"))
	assert.ErrorIs(t, err, ErrInvalidDigest)
}

func TestSerialize(t *testing.T) {
	tests := []struct {
		name      string
		resources []models.Resource
		want      string
		wantErr   error
	}{
		{name: "nil list", resources: nil, want: ""},
		{name: "empty resource", resources: []models.Resource{{}}, want: ""},
		{name: "missing version", resources: []models.Resource{{ID: []byte("1")}}, want: ""},
		{
			name:      "missing field anywhere empties the batch",
			resources: []models.Resource{{ID: 1, Version: 1}, {ID: 2}},
			want:      "",
		},
		{name: "bytes", resources: []models.Resource{{ID: []byte("1"), Version: []byte("1")}}, want: "1,1;"},
		{
			name: "mixed integer kinds",
			resources: []models.Resource{
				{ID: 1, Version: uint64(1)},
				{ID: int32(2), Version: uint8(1)},
			},
			want: "1,1;2,1;",
		},
		{
			name:      "string is unsupported",
			resources: []models.Resource{{ID: "1", Version: 1}},
			wantErr:   ErrUnsupportedValueKind,
		},
		{
			name:      "float is unsupported",
			resources: []models.Resource{{ID: 1, Version: 1.5}},
			wantErr:   ErrUnsupportedValueKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Serialize(tt.resources)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestSerialize_ParseRoundTrip(t *testing.T) {
	resources := []models.Resource{
		{ID: uint64(73), Version: uint64(1)},
		{ID: uint64(72), Version: uint64(12)},
		{ID: uint64(0), Version: uint64(3)},
	}

	digest, err := Serialize(resources)
	require.NoError(t, err)

	parsed, err := Parse(digest)
	require.NoError(t, err)
	assert.Equal(t, resources, parsed)
}
