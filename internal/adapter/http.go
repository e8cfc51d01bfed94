package adapter

import (
	"context"
	"crypto/hmac"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-hivemind/internal/config"
	"github.com/MKhiriev/go-hivemind/internal/logger"
	"github.com/MKhiriev/go-hivemind/internal/utils"
	"github.com/MKhiriev/go-hivemind/models"
)

// Header names shared with the hive's HTTP transport.
const (
	HeaderTraceparent = "traceparent"
	HeaderHash        = "HashSHA256"
	HeaderContentType = "Content-Type"
	HeaderAuth        = "Authorization"
)

type httpHiveAdapter struct {
	client  *utils.HTTPClient
	hashKey string

	mu       sync.RWMutex
	clientID string

	logger *logger.Logger
}

// NewHTTPHiveAdapter constructs the HTTP implementation of [HiveAdapter]. It
// normalises cfg.HiveAddress and signs bodies when cfg.HashKey is set.
func NewHTTPHiveAdapter(cfg config.SynchronizerConfig, log *logger.Logger) (HiveAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HiveAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpHiveAdapter{
		client:  utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		hashKey: cfg.HashKey,
		logger:  log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpHiveAdapter) SetClientID(clientID string) {
	h.mu.Lock()
	h.clientID = strings.TrimSpace(clientID)
	h.mu.Unlock()
}

func (h *httpHiveAdapter) ClientID() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.clientID
}

func (h *httpHiveAdapter) SendDigest(ctx context.Context, digest []byte, requestedType string) (models.Reply, error) {
	contentType := models.MediaTypeDigest
	if requestedType != "" {
		contentType += ", " + requestedType
	}

	return h.submit(ctx, digest, contentType)
}

func (h *httpHiveAdapter) SendPayload(ctx context.Context, payload []byte, mediaType string) (models.Reply, error) {
	if mediaType == "" {
		mediaType = models.MediaTypeJSON
	}

	return h.submit(ctx, payload, mediaType)
}

func (h *httpHiveAdapter) submit(ctx context.Context, body []byte, contentType string) (models.Reply, error) {
	req := h.client.R().
		SetContext(ctx).
		SetHeader(HeaderContentType, contentType).
		SetBody(body)

	if clientID := h.ClientID(); clientID != "" {
		req.SetHeader(HeaderTraceparent, clientID)
	}
	if h.hashKey != "" {
		req.SetHeader(HeaderHash, utils.HashBytes(body, h.hashKey))
	}

	resp, err := req.Post("/")
	if err != nil {
		return models.Reply{}, fmt.Errorf("submit request: %w", err)
	}
	if !isProtocolStatus(resp.StatusCode()) {
		return models.Reply{}, mapHTTPError(resp)
	}
	if err = h.verify(resp); err != nil {
		return models.Reply{}, err
	}

	reply := models.Reply{
		StatusCode:  resp.StatusCode(),
		Body:        resp.Body(),
		ContentType: models.DescribeContent(resp.Header().Values(HeaderContentType)...),
		ClientID:    resp.Header().Get(HeaderTraceparent),
	}

	if reply.ClientID != "" && h.ClientID() == "" {
		h.SetClientID(reply.ClientID)
		h.logger.Info().Str("client_id", reply.ClientID).Msg("hive assigned client id")
	}

	return reply, nil
}

// verify checks the response signature when both sides hold a hash key.
func (h *httpHiveAdapter) verify(resp *resty.Response) error {
	got := resp.Header().Get(HeaderHash)
	if h.hashKey == "" || got == "" {
		return nil
	}

	want := utils.HashBytes(resp.Body(), h.hashKey)
	if !hmac.Equal([]byte(got), []byte(want)) {
		return ErrIntegrity
	}

	return nil
}

type httpManagerAdapter struct {
	client *utils.HTTPClient
	token  string
	logger *logger.Logger
}

// NewHTTPManagerAdapter constructs the HTTP implementation of
// [ManagerAdapter]. token is sent as a bearer token when non-empty.
func NewHTTPManagerAdapter(address string, timeout time.Duration, token string, log *logger.Logger) (ManagerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpManagerAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		token:  strings.TrimSpace(token),
		logger: log,
	}, nil
}

func (m *httpManagerAdapter) request(ctx context.Context) *resty.Request {
	req := m.client.R().SetContext(ctx)
	if m.token != "" {
		req.SetHeader(HeaderAuth, "Bearer "+m.token)
	}
	return req
}

func (m *httpManagerAdapter) Clear(ctx context.Context, mode models.ClearMode) error {
	resp, err := m.request(ctx).
		SetHeader(HeaderContentType, "text/plain").
		SetBody(mode.String()).
		Post("/manager")
	if err != nil {
		return fmt.Errorf("clear request: %w", err)
	}

	return mapHTTPError(resp)
}

func (m *httpManagerAdapter) RecentExchanges(ctx context.Context, limit uint64) ([]models.Exchange, error) {
	var exchanges []models.Exchange

	resp, err := m.request(ctx).
		SetQueryParam("limit", strconv.FormatUint(limit, 10)).
		SetResult(&exchanges).
		Get("/manager/exchanges")
	if err != nil {
		return nil, fmt.Errorf("exchanges request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return exchanges, nil
}
