package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-hivemind/internal/config"
	"github.com/MKhiriev/go-hivemind/internal/utils"
)

func TestWithTraceparent(t *testing.T) {
	tests := []struct {
		name     string
		headers  []string
		want     string
		generate bool
	}{
		{name: "single header is echoed", headers: []string{testTraceparent}, want: testTraceparent},
		{name: "last header wins", headers: []string{"00-first", testTraceparent}, want: testTraceparent},
		{name: "surrounding blanks are trimmed", headers: []string{"  " + testTraceparent + " "}, want: testTraceparent},
		{name: "missing header is generated", generate: true},
		{name: "blank header is generated", headers: []string{"   "}, generate: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t, config.App{})

			var inContext string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var ok bool
				inContext, ok = utils.GetTraceparentFromContext(r.Context())
				require.True(t, ok)
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodPost, "/", nil)
			for _, v := range tt.headers {
				req.Header.Add(headerTraceparent, v)
			}
			rec := httptest.NewRecorder()
			h.withTraceparent(next).ServeHTTP(rec, req)

			echoed := rec.Header().Get(headerTraceparent)
			assert.Equal(t, inContext, echoed)
			if tt.generate {
				assert.Regexp(t, `^00-[0-9a-f]{32}-[0-9a-f]{16}-00$`, echoed)
				return
			}
			assert.Equal(t, tt.want, echoed)
		})
	}
}

func TestWithTraceparent_GeneratedValuesDiffer(t *testing.T) {
	h, _ := newTestHandler(t, config.App{})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	seen := make(map[string]struct{})
	for range 20 {
		rec := httptest.NewRecorder()
		h.withTraceparent(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		seen[rec.Header().Get(headerTraceparent)] = struct{}{}
	}

	assert.Len(t, seen, 20)
}
