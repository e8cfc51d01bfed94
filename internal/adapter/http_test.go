// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-hivemind/internal/config"
	"github.com/MKhiriev/go-hivemind/internal/logger"
	"github.com/MKhiriev/go-hivemind/internal/utils"
	"github.com/MKhiriev/go-hivemind/models"
)

const (
	testHashKey     = "testhashkey"
	testTraceparent = "00-0af7651916cd43dd8448eb211c80319c-b7ad6b7169203331-00"
)

func newTestAdapter(t *testing.T, serverURL, hashKey string) *httpHiveAdapter {
	t.Helper()
	a, err := NewHTTPHiveAdapter(config.SynchronizerConfig{
		HiveAddress:    serverURL,
		HashKey:        hashKey,
		RequestTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpHiveAdapter)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url", raw: "http://localhost:8000/", want: "http://localhost:8000"},
		{name: "no scheme", raw: "localhost:8000", want: "http://localhost:8000"},
		{name: "https", raw: " https://hive.example ", want: "https://hive.example"},
		{name: "empty", raw: "  ", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSendDigest_AdoptsAssignedClientID(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/", r.URL.Path)
		assert.Equal(t, "application/hive-essence, application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "1,1;", string(body))

		mu.Lock()
		seen = append(seen, r.Header.Get(HeaderTraceparent))
		mu.Unlock()
		w.Header().Set(HeaderTraceparent, testTraceparent)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")

	for range 2 {
		reply, err := a.SendDigest(context.Background(), []byte("1,1;"), models.MediaTypeJSON)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, reply.StatusCode)
		assert.Equal(t, testTraceparent, reply.ClientID)
	}

	mu.Lock()
	assert.Equal(t, []string{"", testTraceparent}, seen)
	mu.Unlock()
	assert.Equal(t, testTraceparent, a.ClientID())
}

func TestSendDigest_FetchRequestReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HeaderTraceparent, testTraceparent)
		w.Header().Set("Content-Type", "application/hive-essence, application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("2,1;"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	reply, err := a.SendDigest(context.Background(), []byte(""), "")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, reply.StatusCode)
	assert.Equal(t, models.ContentKindDigest, reply.ContentType.Kind)
	assert.Equal(t, models.MediaTypeJSON, reply.ContentType.RequestedType)
	assert.Equal(t, "2,1;", string(reply.Body))
}

func TestSendPayload_SignsAndVerifies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, utils.HashBytes(body, testHashKey), r.Header.Get(HeaderHash))
		assert.Equal(t, models.MediaTypeJSON, r.Header.Get("Content-Type"))

		w.Header().Set(HeaderHash, utils.HashBytes(nil, testHashKey))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, testHashKey)
	reply, err := a.SendPayload(context.Background(), []byte(`[{"id":1,"version":1}]`), "")

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, reply.StatusCode)
}

func TestSubmit_IntegrityFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HeaderHash, "deadbeef")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("1,1;"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, testHashKey)
	_, err := a.SendDigest(context.Background(), []byte("1,1;"), "")

	assert.ErrorIs(t, err, ErrIntegrity)
}

func TestSubmit_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "conflict is a reply", status: http.StatusConflict},
		{name: "bad request", status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "internal error", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("invalid digest"))
			}))
			defer srv.Close()

			reply, err := newTestAdapter(t, srv.URL, "").SendDigest(context.Background(), []byte("1,1;"), "")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.status, reply.StatusCode)
		})
	}
}

func TestManagerAdapter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get(HeaderAuth))

		switch r.URL.Path {
		case "/manager":
			body, _ := io.ReadAll(r.Body)
			if string(body) != "all" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.WriteHeader(http.StatusOK)
		case "/manager/exchanges":
			assert.Equal(t, "5", r.URL.Query().Get("limit"))
			_, _ = utils.WriteJSON(w, []models.Exchange{{ID: 3, ClientID: testTraceparent, Action: "none"}}, http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	m, err := NewHTTPManagerAdapter(srv.URL, time.Second, "tok", logger.Nop())
	require.NoError(t, err)

	assert.NoError(t, m.Clear(context.Background(), models.ClearAll))
	assert.ErrorIs(t, m.Clear(context.Background(), models.ClearInert), ErrBadRequest)

	exchanges, err := m.RecentExchanges(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, exchanges, 1)
	assert.Equal(t, int64(3), exchanges[0].ID)
}

func TestNewHTTPHiveAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPHiveAdapter(config.SynchronizerConfig{}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAddress)
}
