package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-hivemind/internal/config"
	"github.com/MKhiriev/go-hivemind/internal/essence"
	"github.com/MKhiriev/go-hivemind/internal/logger"
	"github.com/MKhiriev/go-hivemind/internal/mock/servicemock"
	"github.com/MKhiriev/go-hivemind/internal/service"
	"github.com/MKhiriev/go-hivemind/internal/store"
	"github.com/MKhiriev/go-hivemind/internal/utils"
	"github.com/MKhiriev/go-hivemind/models"
)

const testTraceparent = "00-0af7651916cd43dd8448eb211c80319c-b7ad6b7169203331-01"

type testServices struct {
	coordinator *servicemock.MockCoordinator
	sessions    *servicemock.MockSessionManager
	journal     *servicemock.MockJournalService
	appInfo     *servicemock.MockAppInfoService
}

func newTestHandler(t *testing.T, cfg config.App) (*Handler, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := testServices{
		coordinator: servicemock.NewMockCoordinator(ctrl),
		sessions:    servicemock.NewMockSessionManager(ctrl),
		journal:     servicemock.NewMockJournalService(ctrl),
		appInfo:     servicemock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		Coordinator:    mocks.coordinator,
		Sessions:       mocks.sessions,
		JournalService: mocks.journal,
		AppInfoService: mocks.appInfo,
	}

	return NewHandler(services, cfg, logger.Nop()), mocks
}

func serve(h *Handler, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, r)
	return rec
}

func TestNewHandler_StoresSettings(t *testing.T) {
	h, _ := newTestHandler(t, config.App{HashKey: "h", TokenSignKey: "k", TokenIssuer: "hive"})

	assert.Equal(t, "h", h.hashKey)
	assert.Equal(t, "k", h.tokenSignKey)
	assert.Equal(t, "hive", h.tokenIssuer)
}

func TestSubmit_RendersActions(t *testing.T) {
	tests := []struct {
		name            string
		contentType     []string
		body            string
		wantContent     models.ContentDescriptor
		action          models.Action
		wantStatus      int
		wantContentType string
		wantBody        string
	}{
		{
			name:        "none",
			contentType: []string{models.MediaTypeDigest},
			body:        "1,1;",
			wantContent: models.ContentDescriptor{Kind: models.ContentKindDigest},
			action:      models.NoAction(),
			wantStatus:  http.StatusNoContent,
		},
		{
			name:            "fetch request with requested type",
			contentType:     []string{"application/hive-essence, application/json"},
			body:            "1,1;",
			wantContent:     models.ContentDescriptor{Kind: models.ContentKindDigest, RequestedType: "application/json"},
			action:          models.Action{Kind: models.ActionRequestFetch, Body: []byte("2,1;"), RequestedType: "application/json"},
			wantStatus:      http.StatusOK,
			wantContentType: "application/hive-essence, application/json",
			wantBody:        "2,1;",
		},
		{
			name:            "fetch request without requested type",
			contentType:     []string{models.MediaTypeDigestBare},
			body:            "1,1;",
			wantContent:     models.ContentDescriptor{Kind: models.ContentKindDigest},
			action:          models.Action{Kind: models.ActionRequestFetch, Body: []byte("2,1;")},
			wantStatus:      http.StatusOK,
			wantContentType: models.MediaTypeDigest,
			wantBody:        "2,1;",
		},
		{
			name:            "delivered payload echoes its media type",
			contentType:     []string{models.MediaTypeDigest},
			body:            "",
			wantContent:     models.ContentDescriptor{Kind: models.ContentKindDigest},
			action:          models.Action{Kind: models.ActionDeliverPayload, Body: []byte(`[{"id":2}]`), MediaType: models.MediaTypeJSON},
			wantStatus:      http.StatusOK,
			wantContentType: models.MediaTypeJSON,
			wantBody:        `[{"id":2}]`,
		},
		{
			name:            "forced update",
			contentType:     []string{models.MediaTypeDigest},
			body:            "1,1;2,1;",
			wantContent:     models.ContentDescriptor{Kind: models.ContentKindDigest},
			action:          models.Action{Kind: models.ActionForceUpdate, Body: []byte("1,1;")},
			wantStatus:      http.StatusConflict,
			wantContentType: models.MediaTypeDigest,
			wantBody:        "1,1;",
		},
		{
			name:        "payload submission",
			contentType: []string{models.MediaTypeJSON},
			body:        `[{"id":2}]`,
			wantContent: models.ContentDescriptor{Kind: models.ContentKindJSON, MediaType: models.MediaTypeJSON},
			action:      models.NoAction(),
			wantStatus:  http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t, config.App{})

			mocks.coordinator.EXPECT().
				Submit(gomock.Any(), models.Submission{ClientID: testTraceparent, Body: []byte(tt.body), Content: tt.wantContent}).
				Return(tt.action, nil)

			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			req.Header.Set(headerTraceparent, testTraceparent)
			for _, ct := range tt.contentType {
				req.Header.Add(headerContentType, ct)
			}

			rec := serve(h, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, testTraceparent, rec.Header().Get(headerTraceparent))
			if tt.wantContentType != "" {
				assert.Equal(t, tt.wantContentType, rec.Header().Get(headerContentType))
			}
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestSubmit_InvalidDigestIsBadRequest(t *testing.T) {
	h, mocks := newTestHandler(t, config.App{})

	mocks.coordinator.EXPECT().Submit(gomock.Any(), gomock.Any()).
		Return(models.NoAction(), essence.ErrInvalidDigest)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("1,a;"))
	req.Header.Set(headerContentType, models.MediaTypeDigest)

	rec := serve(h, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), essence.ErrInvalidDigest.Error())
}

func TestSubmit_GeneratesTraceparent(t *testing.T) {
	h, mocks := newTestHandler(t, config.App{})

	var seen string
	mocks.coordinator.EXPECT().Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s models.Submission) (models.Action, error) {
			seen = s.ClientID
			return models.NoAction(), nil
		})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("1,1;"))
	req.Header.Set(headerContentType, models.MediaTypeDigest)

	rec := serve(h, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Regexp(t, `^00-[0-9a-f]{32}-[0-9a-f]{16}-00$`, seen)
	assert.Equal(t, seen, rec.Header().Get(headerTraceparent))
}

func TestManagerClear(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantMode   models.ClearMode
		wantStatus int
	}{
		{name: "inert", body: "inert", wantMode: models.ClearInert, wantStatus: http.StatusOK},
		{name: "all in upper case", body: "ALL", wantMode: models.ClearAll, wantStatus: http.StatusOK},
		{name: "unknown token", body: "everything", wantStatus: http.StatusBadRequest},
		{name: "empty body", body: "", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t, config.App{})
			if tt.wantMode != 0 {
				mocks.sessions.EXPECT().Clear(gomock.Any(), tt.wantMode).Return(nil)
			}

			rec := serve(h, httptest.NewRequest(http.MethodPost, "/manager", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestManagerRecentExchanges(t *testing.T) {
	page := []models.Exchange{{ID: 3, ClientID: testTraceparent, ContentKind: "digest", Action: "none"}}

	tests := []struct {
		name       string
		query      string
		wantLimit  uint64
		result     []models.Exchange
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "default limit", query: "", wantLimit: 0, result: page, wantStatus: http.StatusOK, wantBody: `"client_id":"` + testTraceparent + `"`},
		{name: "explicit limit", query: "?limit=5", wantLimit: 5, result: nil, wantStatus: http.StatusOK, wantBody: `[]`},
		{name: "journal disabled", query: "?limit=5", wantLimit: 5, err: store.ErrJournalDisabled, wantStatus: http.StatusNotFound},
		{name: "limit too large", query: "?limit=900", wantLimit: 900, err: service.ErrJournalLimitTooLarge, wantStatus: http.StatusBadRequest},
		{name: "non numeric limit", query: "?limit=ten", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t, config.App{})
			if tt.wantStatus != http.StatusBadRequest || tt.err != nil {
				mocks.journal.EXPECT().Recent(gomock.Any(), tt.wantLimit).Return(tt.result, tt.err)
			}

			rec := serve(h, httptest.NewRequest(http.MethodGet, "/manager/exchanges"+tt.query, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestManagerRoutes_RequireTokenWhenConfigured(t *testing.T) {
	const signKey, issuer = "manager-secret", "hivemind"

	valid, err := utils.GenerateJWTToken(issuer, "ops", time.Hour, signKey)
	require.NoError(t, err)
	foreign, err := utils.GenerateJWTToken("someone-else", "ops", time.Hour, signKey)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid token", header: "Bearer " + valid, wantStatus: http.StatusOK},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + valid, wantStatus: http.StatusUnauthorized},
		{name: "wrong issuer", header: "Bearer " + foreign, wantStatus: http.StatusUnauthorized},
		{name: "garbage", header: "Bearer not-a-jwt", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t, config.App{TokenSignKey: signKey, TokenIssuer: issuer})
			if tt.wantStatus == http.StatusOK {
				mocks.sessions.EXPECT().Clear(gomock.Any(), models.ClearInert).Return(nil)
			}

			req := httptest.NewRequest(http.MethodPost, "/manager", strings.NewReader("inert"))
			if tt.header != "" {
				req.Header.Set(headerAuth, tt.header)
			}

			assert.Equal(t, tt.wantStatus, serve(h, req).Code)
		})
	}
}

func TestGetServerVersion(t *testing.T) {
	h, mocks := newTestHandler(t, config.App{})
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.4.0")

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, "1.4.0", string(body))
	assert.Contains(t, rec.Header().Get(headerContentType), "text/plain")
}

func TestMetricsRoute(t *testing.T) {
	h, _ := newTestHandler(t, config.App{})

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUnknownRoutesAndMethods(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/"},
		{http.MethodDelete, "/manager"},
		{http.MethodPost, "/api/version"},
		{http.MethodGet, "/nowhere"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			h, _ := newTestHandler(t, config.App{})

			rec := serve(h, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}
