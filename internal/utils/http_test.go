package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-hivemind/models"
)

func TestWriteJSON(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		data       any
		status     int
		wantBody   string
		wantStatus int
		wantErr    bool
	}{
		{
			name:       "exchange list",
			data:       []models.Exchange{{ID: 1, ClientID: "tp", ContentKind: "digest", Action: "none", BodySize: 4, Fingerprint: "ab", CreatedAt: at}},
			status:     http.StatusOK,
			wantBody:   `[{"id":1,"client_id":"tp","content_kind":"digest","action":"none","body_size":4,"fingerprint":"ab","created_at":"2026-03-01T12:00:00Z"}]`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "empty list",
			data:       []models.Exchange{},
			status:     http.StatusOK,
			wantBody:   `[]`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "custom status",
			data:       map[string]string{"error": "journal disabled"},
			status:     http.StatusNotFound,
			wantBody:   `{"error":"journal disabled"}`,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "not serializable",
			data:       make(chan int),
			status:     http.StatusOK,
			wantStatus: http.StatusInternalServerError,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			_, err := WriteJSON(w, tt.data, tt.status)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteText(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteText(w, "invalid digest", http.StatusBadRequest)
	require.NoError(t, err)

	assert.Equal(t, len("invalid digest"), n)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "invalid digest", w.Body.String())
}
